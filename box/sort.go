package box

import "cmp"

// CompareVolDesc orders boxes by strictly decreasing volume, breaking ties
// by increasing No so that iteration order is fully deterministic. This is
// the order the outer branch-and-bound assigns boxes in, and the order a
// solve resets to before sorting.
func CompareVolDesc(a, b Box) int {
	if r := cmp.Compare(b.Vol, a.Vol); r != 0 {
		return r
	}
	return cmp.Compare(a.No, b.No)
}

// CompareHeightDesc orders boxes by strictly decreasing height, ties broken
// by No (grounded on "hcomp" in the original). The layer heuristic's shelf
// packing step sorts by the same key on its own item type and does not call
// this function.
func CompareHeightDesc(a, b Box) int {
	if r := cmp.Compare(b.H, a.H); r != 0 {
		return r
	}
	return cmp.Compare(a.No, b.No)
}

// CompareDepthDesc orders boxes by strictly decreasing depth, ties broken
// by No (grounded on "dcomp" in the original). The layer heuristic's outer
// layer-selection loop sorts by the same key on its own item type and does
// not call this function.
func CompareDepthDesc(a, b Box) int {
	if r := cmp.Compare(b.D, a.D); r != 0 {
		return r
	}
	return cmp.Compare(a.No, b.No)
}
