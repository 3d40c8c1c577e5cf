// Package heuristic computes an initial incumbent packing before the exact
// search begins: a layer heuristic (shelf packing plus a one-dimensional
// bin packing of layer depths) and an m-cut heuristic (repeated calls to
// the corner-point filler, one bin at a time). Both run once per axial
// orientation of the problem and report whichever orientation used fewer
// bins; both are always invoked here, unlike the original C source, which
// wires the m-cut heuristic up but leaves it on a dead code path.
package heuristic
