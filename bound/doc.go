// Package bound computes admissible lower bounds on the number of bins a
// 3D bin-packing instance requires. Every bound here never overestimates
// the true optimum, so the outer exact search (root package binpack3d) can
// safely prune any node whose bound is not below the incumbent's bin count,
// and stop once the incumbent's bin count equals the global bound.
//
// Three bounds are provided, from cheapest/weakest to most expensive/
// tightest: L0 (volume only), L1 (one axis at a time, continuous relaxation
// with a threshold sweep), and L2 (a pair of axes combined). Each is
// evaluated by treating the bin's own three axes in turn as "the"
// projection axis (or axis pair) and taking the maximum — boxes themselves
// are never rotated to compute a bound, since the exact search fixes box
// orientation; only the choice of which bin axis the
// formula projects onto varies.
package bound
