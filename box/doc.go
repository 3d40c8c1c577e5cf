// Package box defines the geometric primitives shared by every other
// package in this module: the Box and Dims records, axis rotation, the
// pairwise overlap test, and whole-packing validation.
//
// Axes follow the bin's own width (x), height (y) and depth (z). A Box
// occupies the half-open interval [x, x+w) x [y, y+h) x [z, z+d) once it
// has been placed into a bin (Bin > 0); an unplaced Box has Bin == 0 and
// its Pos fields are meaningless.
//
// Complexity: every operation here is O(1) or O(n) in the number of boxes
// except ValidatePacking, the one O(n^2) check (Overlaps is a single
// pairwise test; ValidatePacking compares every pair of boxes).
package box
