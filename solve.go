package binpack3d

import (
	"slices"
	"time"

	"github.com/katalvlaran/binpack3d/bound"
	"github.com/katalvlaran/binpack3d/box"
	"github.com/katalvlaran/binpack3d/heuristic"
)

// Solve packs the given boxes into the fewest possible bins of dimensions
// bin. It always returns a usable Result (seeded from the stronger of two
// packing heuristics) even when a budget in opts cuts the exact search
// short; Result.Proven reports whether the returned Bins count is a proven
// optimum. Grounded on main/solve (3dbpp.c:200-420), adapted to a single
// reentrant call instead of a batch-file driver.
func Solve(bin box.Dims, dims []box.Dims, opts Options) (Result, error) {
	start := time.Now()

	if len(dims) == 0 {
		return Result{}, ErrNoBoxes
	}
	if len(dims) >= maxBoxes {
		return Result{}, ErrTooManyBoxes
	}
	if bin.W <= 0 || bin.H <= 0 || bin.D <= 0 {
		return Result{}, ErrBadBinDims
	}
	for _, d := range dims {
		if d.W <= 0 || d.H <= 0 || d.D <= 0 ||
			d.W > bin.W || d.H > bin.H || d.D > bin.D {
			return Result{}, ErrBadBoxDims
		}
	}

	ordered := make([]box.Dims, len(dims))
	copy(ordered, dims)
	boxesForSort := boxesFromDims(ordered)
	slices.SortFunc(boxesForSort, box.CompareVolDesc)
	for i, b := range boxesForSort {
		ordered[i] = b.Dims
	}

	incumbent := heuristic.Best(bin, ordered)

	s := newState(bin, ordered, opts)
	s.lb = bound.L2(s.boxes, bin)

	if heuristicComplete(incumbent, len(ordered)) {
		s.z = incumbent.Bins
		s.opt = applyHeuristic(s.boxes, incumbent)
	}

	s.recBinpack(0, 0)

	result := Result{
		LowerBound: s.lb,
		NodesUsed:  s.nodeCount,
		IterUsed:   s.iterCount,
		TimeUsed:   time.Since(start),
	}
	if s.opt != nil {
		result.Boxes = reorderByOriginal(s.opt, dims, ordered)
		result.Bins = s.z
		result.Proven = !s.stopped || s.stopReason == "OPTIMAL"
	}
	// A proven optimum means the search either exhausted the tree or hit
	// the z==lb shortcut without ever being cut short by a budget: either
	// way the bound is now known to equal the count found, matching the
	// original's `*lb = (stopped ? a.lb : a.z)`. Short of that, the lower
	// bound can never legitimately exceed a found solution's bin count.
	switch {
	case result.Proven:
		result.LowerBound = result.Bins
	case result.LowerBound > result.Bins:
		result.LowerBound = result.Bins
	}
	return result, nil
}

// heuristicComplete reports whether r assigns a bin to every one of n boxes.
func heuristicComplete(r heuristic.Result, n int) bool {
	if len(r.Placements) != n {
		return false
	}
	for _, p := range r.Placements {
		if p.Bin == 0 {
			return false
		}
	}
	return true
}

// applyHeuristic rebuilds a []box.Box snapshot (matching boxes' No/Dims
// order) from a heuristic.Result computed over the same ordered dims.
func applyHeuristic(boxes []box.Box, r heuristic.Result) []box.Box {
	out := append([]box.Box{}, boxes...)
	for i, p := range r.Placements {
		out[i].Bin = p.Bin
		out[i].Pos = p.Pos
	}
	return out
}

// reorderByOriginal maps the solved (decreasing-volume ordered) boxes back
// to the caller's original input order, matching each by position in
// ordered since dims within that order are unique per index (No was
// assigned 1..n over ordered, not over the caller's dims).
func reorderByOriginal(solved []box.Box, original, ordered []box.Dims) []box.Box {
	byNo := make(map[int]box.Box, len(solved))
	for _, b := range solved {
		byNo[b.No] = b
	}

	used := make([]bool, len(ordered))
	out := make([]box.Box, len(original))
	for i, d := range original {
		for j, od := range ordered {
			if !used[j] && od == d {
				out[i] = byNo[j+1]
				out[i].No = i + 1
				used[j] = true
				break
			}
		}
	}
	return out
}
