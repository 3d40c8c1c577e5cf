// Package binpack3d solves the three-dimensional bin-packing problem:
// given a multiset of axis-aligned boxes with fixed integer dimensions and
// an unlimited supply of identical bins, it computes a placement using the
// minimum number of bins or, when search limits are exhausted, the best
// placement found together with a proven lower bound.
//
// Solve is the single entry point. It sorts boxes by decreasing volume,
// computes the three lower bounds in package bound, seeds an incumbent
// from both heuristics in package heuristic, and then runs an exact
// branch-and-bound search that dispatches single-bin feasibility to
// package onebin and periodically tries to close bins via tryClose.
package binpack3d
