package heuristic

import (
	"sort"

	"github.com/katalvlaran/binpack3d/box"
)

// maxBPP bounds the exhaustive recursive 1D bin-packing of layer depths, as
// onedim_binpack is bounded in the original (3dbpp.c, MAXBPP constant):
// past this many recursive expansions the search returns its best
// incumbent rather than continuing to exhaust the tree. This is
// intentionally suboptimal on adversarial inputs; the outer exact search
// reclaims optimality.
const maxBPP = 1_000_000

// shelfItem is one box queued for 2D shelf packing within a layer
// candidate, carrying the caller's original index so results can be
// reported back in input order.
type shelfItem struct {
	idx int
	d   box.Dims
}

// layerRecord is one packed layer: its maximum occupied depth and the
// (index, x, y) placements of the boxes packed into it.
type layerRecord struct {
	depth int
	items []shelfItem
	pos   []box.Point // parallel to items: (x, y, 0) within the layer's face
}

// layerHeuristicOneOrientation runs the depth-first layer heuristic once,
// against boxes already expressed in a single fixed orientation. Grounded
// on onelayer/countarea/remboxes/assignboxes/dfirst_heuristic
// (3dbpp.c:750-959).
func layerHeuristicOneOrientation(bin box.Dims, dims []box.Dims) Result {
	n := len(dims)
	remaining := make([]shelfItem, n)
	for i, d := range dims {
		remaining[i] = shelfItem{idx: i, d: d}
	}
	sort.SliceStable(remaining, func(a, b int) bool {
		return remaining[a].d.D > remaining[b].d.D
	})

	var layers []layerRecord
	for len(remaining) > 0 {
		prefixLen := selectLayerPrefix(bin, remaining)
		prefix := remaining[:prefixLen]
		remaining = remaining[prefixLen:]

		packed, overflow := packShelf(bin, prefix)
		remaining = append(append([]shelfItem{}, overflow...), remaining...)

		if len(packed.items) == 0 {
			// Nothing in this prefix fit at all (a single box wider or
			// taller than the bin face); skip it to the closedBoxes-style
			// incumbent instead of looping forever. The exact search will
			// still consider it via a fresh bin.
			remaining = remaining[len(overflow):]
			continue
		}
		layers = append(layers, packed)
	}

	binAssign, zOffset, binsUsed := packLayerDepths(bin.D, layers)

	placements := make([]Placement, n)
	for li, layer := range layers {
		for k, it := range layer.items {
			p := layer.pos[k]
			p.Z = zOffset[li]
			placements[it.idx] = Placement{Bin: binAssign[li], Pos: p}
		}
	}
	return Result{Bins: binsUsed, Placements: placements}
}

// selectLayerPrefix returns how many leading items of remaining (sorted by
// decreasing depth) form the next layer candidate: as many as fit within a
// combined footprint area of 2*W*H, but always at least one so progress is
// guaranteed. Grounded on countarea (3dbpp.c:780-799).
func selectLayerPrefix(bin box.Dims, remaining []shelfItem) int {
	limit := int64(2) * int64(bin.W) * int64(bin.H)
	var area int64
	for i, it := range remaining {
		a := int64(it.d.W) * int64(it.d.H)
		if i > 0 && area+a > limit {
			return i
		}
		area += a
	}
	return len(remaining)
}

// packShelf packs items into one W x H face using next-fit-decreasing-
// height shelf packing: items are assumed already sorted compatibly with
// decreasing height, re-sorted here to be safe. Items that do not fit
// within the face at all are returned as overflow for a later layer.
func packShelf(bin box.Dims, items []shelfItem) (layerRecord, []shelfItem) {
	sorted := append([]shelfItem{}, items...)
	sort.SliceStable(sorted, func(a, b int) bool { return sorted[a].d.H > sorted[b].d.H })

	var rec layerRecord
	var overflow []shelfItem
	x, y, shelfH := 0, 0, 0
	for _, it := range sorted {
		d := it.d
		if d.W > bin.W || d.H > bin.H {
			overflow = append(overflow, it)
			continue
		}
		if x+d.W > bin.W {
			y += shelfH
			x, shelfH = 0, 0
		}
		if y+d.H > bin.H {
			overflow = append(overflow, it)
			continue
		}
		rec.items = append(rec.items, it)
		rec.pos = append(rec.pos, box.Point{X: x, Y: y})
		if d.D > rec.depth {
			rec.depth = d.D
		}
		x += d.W
		if d.H > shelfH {
			shelfH = d.H
		}
	}
	return rec, overflow
}

// binState is one candidate bin during the 1D depth-packing search: the
// remaining free depth and the layer indices assigned to it so far.
type binState struct {
	free   int
	layers []int
}

// packLayerDepths solves the 1D bin-packing of layer depths into bins of
// capacity binCap by bounded exhaustive recursive enumeration, returning,
// per layer, its assigned bin number (1-based) and z-offset, plus the
// total bin count used. Grounded on onedim_binpack (3dbpp.c:900-959).
func packLayerDepths(binCap int, layers []layerRecord) (binOf []int, zOf []int, binsUsed int) {
	n := len(layers)
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool { return layers[order[a]].depth > layers[order[b]].depth })

	best := make([]binState, 0)
	bestCount := n + 1
	expansions := 0

	var assign func(bins []binState, pos int)
	assign = func(bins []binState, pos int) {
		expansions++
		if expansions > maxBPP {
			return
		}
		if pos == n {
			if len(bins) < bestCount {
				bestCount = len(bins)
				best = cloneBins(bins)
			}
			return
		}
		if len(bins) >= bestCount {
			return // this branch can no longer beat the incumbent
		}
		depth := layers[order[pos]].depth
		for bi := range bins {
			if bins[bi].free >= depth {
				bins[bi].free -= depth
				bins[bi].layers = append(bins[bi].layers, order[pos])
				assign(bins, pos+1)
				bins[bi].layers = bins[bi].layers[:len(bins[bi].layers)-1]
				bins[bi].free += depth
			}
		}
		bins = append(bins, binState{free: binCap - depth, layers: []int{order[pos]}})
		assign(bins, pos+1)
	}
	assign(nil, 0)

	binOf = make([]int, n)
	zOf = make([]int, n)
	for bi, b := range best {
		z := 0
		for _, li := range b.layers {
			binOf[li] = bi + 1
			zOf[li] = z
			z += layers[li].depth
		}
	}
	return binOf, zOf, len(best)
}

func cloneBins(bins []binState) []binState {
	out := make([]binState, len(bins))
	for i, b := range bins {
		out[i] = binState{free: b.free, layers: append([]int{}, b.layers...)}
	}
	return out
}

// Layer runs the layer heuristic across all three axial orientations
// concurrently and returns whichever orientation used fewer bins.
func Layer(bin box.Dims, dims []box.Dims) Result {
	results := runOrientations(func(k int) Result {
		rbin := rotateDims(bin, k)
		rdims := make([]box.Dims, len(dims))
		for i, d := range dims {
			rdims[i] = rotateDims(d, k)
		}
		res := layerHeuristicOneOrientation(rbin, rdims)
		if !res.complete(len(dims)) {
			return Result{Bins: len(dims) + 1}
		}
		for i := range res.Placements {
			res.Placements[i].Pos = rotateCoordsBack(res.Placements[i].Pos, k)
		}
		return res
	})

	best := Result{Bins: len(dims) + 1}
	for _, res := range results {
		if res.complete(len(dims)) && res.Bins < best.Bins {
			best = res
		}
	}
	return best
}
