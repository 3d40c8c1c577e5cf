package binpack3d

import (
	"github.com/katalvlaran/binpack3d/box"
	"github.com/katalvlaran/binpack3d/onebin"
)

// closeSnapshot is the information restore needs to undo exactly one
// tryClose call: the placements and closed-set before it ran.
type closeSnapshot struct {
	boxes    []box.Box
	isClosed map[int]bool
	noc      int
}

func (s *state) snapshot() closeSnapshot {
	closedCopy := make(map[int]bool, len(s.isClosed))
	for k, v := range s.isClosed {
		closedCopy[k] = v
	}
	return closeSnapshot{
		boxes:    append([]box.Box{}, s.boxes...),
		isClosed: closedCopy,
		noc:      s.noc,
	}
}

func (s *state) restore(snap closeSnapshot) {
	copy(s.boxes, snap.boxes)
	s.isClosed = snap.isClosed
	s.noc = snap.noc
}

// onebinFits decides whether dims fit together in a single bin, dispatching
// to the cheapest applicable test. Grounded on onebin_decision
// (3dbpp.c:1274-1311): fits2/fits3 for exactly two or three boxes, the
// general CP engine otherwise.
func onebinFits(bin box.Dims, dims []box.Dims) bool {
	switch len(dims) {
	case 0:
		return true
	case 1:
		return dims[0].W <= bin.W && dims[0].H <= bin.H && dims[0].D <= bin.D
	case 2:
		_, _, ok := onebin.Fits2(bin, dims[0], dims[1])
		return ok
	case 3:
		_, ok := onebin.Fits3(bin, dims[0], dims[1], dims[2])
		return ok
	default:
		_, ok := onebin.Decide(bin, dims, true, 1000)
		return ok
	}
}

// tryClose is invoked at each exact-search node (up to depth maxClose) to
// try proving that an open bin can never accept more boxes in any way that
// matters to the rest of the search, letting the outer search stop
// branching into it. For every open bin whose committed volume is at least
// half the bin's volume: gather its occupants plus every still-unplaced
// box that individually fits alongside them, stopping once their combined
// volume would exceed the bin's capacity (the bin is then left open, since
// the whole set cannot share one bin); if the combined set admits a
// simultaneous packing, commit it and mark the bin closed. Grounded on
// try_close (3dbpp.c:1807-1871).
func (s *state) tryClose() bool {
	if s.closeDepth >= maxClose {
		return false
	}
	closedAny := false

	openBins := make(map[int]bool)
	for _, bx := range s.boxes {
		if bx.Bin > 0 && !s.isClosed[bx.Bin] {
			openBins[bx.Bin] = true
		}
	}

	for b := range openBins {
		occupants := s.boxesInBin(b)
		var occVol int64
		for _, o := range occupants {
			occVol += o.Vol
		}
		if occVol*2 < s.binVol {
			continue
		}

		combined := append([]box.Box{}, occupants...)
		combinedVol := occVol
		occDims := dimsOf(occupants)
		overflow := false
		for idx := range s.boxes {
			if s.boxes[idx].Bin != 0 {
				continue
			}
			cand := s.boxes[idx]
			trial := append(append([]box.Dims{}, occDims...), cand.Dims)
			if !onebinFits(s.bin, trial) {
				continue
			}
			if combinedVol+cand.Vol > s.binVol {
				overflow = true
				break
			}
			combined = append(combined, cand)
			combinedVol += cand.Vol
		}
		if overflow {
			continue
		}
		idxOf, coords, allPlaced := onebin.Fill(s.bin, dimsOf(combined))
		if !allPlaced {
			continue
		}
		for k, localIdx := range idxOf {
			combined[localIdx].Pos = coords[k]
		}
		s.commitClose(b, combined)
		closedAny = true
	}
	return closedAny
}

// commitClose writes the proven combined placement back into s.boxes and
// marks b closed.
func (s *state) commitClose(b int, combined []box.Box) {
	s.isClosed[b] = true
	s.noc++
	for _, placed := range combined {
		for i := range s.boxes {
			if s.boxes[i].No == placed.No {
				s.boxes[i].Bin = b
				s.boxes[i].Pos = placed.Pos
				break
			}
		}
	}
}

func dimsOf(boxes []box.Box) []box.Dims {
	out := make([]box.Dims, len(boxes))
	for i, b := range boxes {
		out[i] = b.Dims
	}
	return out
}
