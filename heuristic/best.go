package heuristic

import "github.com/katalvlaran/binpack3d/box"

// Best runs both the layer heuristic and the m-cut heuristic and returns
// whichever produced the smaller incumbent bin count. The original source
// wires mcut3_heuristic up but never calls it from its top-level entry
// point, leaving it dead code; this module runs both unconditionally and
// keeps the stronger incumbent, matching a two-heuristics-one-incumbent
// design.
func Best(bin box.Dims, dims []box.Dims) Result {
	layer := Layer(bin, dims)
	mcut := MCut(bin, dims)

	switch {
	case !layer.complete(len(dims)):
		return mcut
	case !mcut.complete(len(dims)):
		return layer
	case mcut.Bins < layer.Bins:
		return mcut
	default:
		return layer
	}
}
