package binpack3d

import (
	"github.com/katalvlaran/binpack3d/bound"
	"github.com/katalvlaran/binpack3d/box"
	"github.com/katalvlaran/binpack3d/onebin"
)

// recBinpack is the outer exact branch-and-bound search: it decides, box by
// box in the fixed decreasing-volume order, which already-open bin (if any)
// box i joins, or whether it opens a fresh bin. Grounded on rec_binpack
// (3dbpp.c:1917-2050).
//
// i is the index of the next box to place; bno is the number of bins
// opened so far on this path.
func (s *state) recBinpack(i, bno int) {
	if s.budgetExceeded() {
		return
	}
	s.nodeCount++

	if bno >= s.z {
		return
	}
	if s.z == s.lb {
		s.stopped = true
		s.stopReason = "OPTIMAL"
		return
	}

	if i == len(s.boxes) {
		s.saveIncumbent(bno)
		return
	}

	// A close committed here is local to this node: it must be undone
	// before returning, since the caller's remaining sibling branches (its
	// own bin choices for an earlier box) must see the state as it was
	// before this node ran.
	closedHere := false
	var snap closeSnapshot
	if s.closeDepth < maxClose {
		snap = s.snapshot()
		closedHere = s.tryClose()
		s.closeDepth++
		defer func() { s.closeDepth-- }()
		if closedHere {
			// This bound holds only for the subtree below this node, so it
			// is kept local instead of raising the global s.lb.
			remaining := s.remainingDimsFrom(i)
			lb := bound.L2(remaining, s.bin) + s.noc
			if lb >= s.z {
				s.restore(snap)
				return
			}
		}
	}

	for b := 1; b <= bno; b++ {
		if s.isClosed[b] {
			continue
		}
		if s.onebinDecision(i, b) {
			s.recBinpack(i+1, bno)
			s.boxes[i].Bin = 0
			s.boxes[i].Pos = box.Point{}
			if s.budgetExceeded() || s.z == s.lb {
				if closedHere {
					s.restore(snap)
				}
				return
			}
		}
	}

	if bno+1 < s.z {
		s.boxes[i].Bin = bno + 1
		s.boxes[i].Pos = box.Point{}
		s.recBinpack(i+1, bno+1)
		s.boxes[i].Bin = 0
		s.boxes[i].Pos = box.Point{}
	}

	if closedHere {
		s.restore(snap)
	}
}

// onebinDecision tries to place box i into already-open bin b alongside its
// current occupants, writing coordinates back into s.boxes on success.
// Grounded on onebin_decision (3dbpp.c:1274-1311): dispatches to fits2/
// fits3 for small occupant counts, falls back to the general CP engine
// (gated by an L2 pre-check on the combined set, since the full engine is
// the most expensive test available) otherwise.
func (s *state) onebinDecision(i, b int) bool {
	occupants := s.boxesInBin(b)
	var occVol int64
	for _, o := range occupants {
		occVol += o.Vol
	}
	cand := s.boxes[i]
	if occVol+cand.Vol > s.binVol {
		return false
	}

	dims := append(dimsOf(occupants), cand.Dims)

	switch len(dims) {
	case 1:
		if !fitsEnvelopeSimple(cand.Dims, s.bin) {
			return false
		}
		s.boxes[i].Bin = b
		s.boxes[i].Pos = box.Point{}
		return true
	case 2:
		posA, posB, ok := onebin.Fits2(s.bin, dims[0], dims[1])
		if !ok {
			return false
		}
		s.commitPair(occupants, b, posA, posB, i, cand)
		return true
	case 3:
		pos, ok := onebin.Fits3(s.bin, dims[0], dims[1], dims[2])
		if !ok {
			return false
		}
		s.commitTriple(occupants, b, pos, i, cand)
		return true
	default:
		if bound.L2(boxesFromDims(dims), s.bin) > 1 {
			return false
		}
		coords, ok := onebin.Decide(s.bin, dims, false, 0)
		if !ok {
			return false
		}
		s.commitMany(occupants, b, coords, i, cand)
		return true
	}
}

func fitsEnvelopeSimple(d, bin box.Dims) bool {
	return d.W <= bin.W && d.H <= bin.H && d.D <= bin.D
}

func (s *state) commitPair(occupants []box.Box, b int, posA, posB box.Point, i int, cand box.Box) {
	findBox(s, occupants[0].No).Pos = posA
	findBox(s, occupants[0].No).Bin = b
	s.boxes[i].Bin = b
	s.boxes[i].Pos = posB
}

func (s *state) commitTriple(occupants []box.Box, b int, pos [3]box.Point, i int, cand box.Box) {
	findBox(s, occupants[0].No).Pos = pos[0]
	findBox(s, occupants[0].No).Bin = b
	findBox(s, occupants[1].No).Pos = pos[1]
	findBox(s, occupants[1].No).Bin = b
	s.boxes[i].Bin = b
	s.boxes[i].Pos = pos[2]
}

func (s *state) commitMany(occupants []box.Box, b int, coords []box.Point, i int, cand box.Box) {
	for k, o := range occupants {
		fb := findBox(s, o.No)
		fb.Bin = b
		fb.Pos = coords[k]
	}
	s.boxes[i].Bin = b
	s.boxes[i].Pos = coords[len(coords)-1]
}

func boxesFromDims(dims []box.Dims) []box.Box {
	out := make([]box.Box, len(dims))
	for i, d := range dims {
		out[i] = box.NewBox(i+1, d)
	}
	return out
}

func findBox(s *state, no int) *box.Box {
	for k := range s.boxes {
		if s.boxes[k].No == no {
			return &s.boxes[k]
		}
	}
	return nil
}
