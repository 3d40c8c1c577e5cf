// Package onebin decides whether a set of boxes fits together into a
// single bin and, when it does, produces concrete non-overlapping
// coordinates for them. It offers three escalating strategies:
//
//   - Fits2 and Fits3, closed-form tests for exactly two or three boxes;
//   - Decide, a general constraint-propagation (CP) engine that fixes, for
//     every pair of boxes, one of six pairwise relative-position relations
//     and infers coordinates by iterative relaxation;
//   - Fill, a corner-point ("extreme point") enumerator that greedily
//     places boxes at candidate corners with bounded backtracking. It
//     doubles as the m-cut heuristic's single-bin filler and as a
//     best-effort knapsack-style packer when not every box need be placed.
//
// None of these types keep package-level mutable state: every call scopes
// its relation/domain/undo tables, or its placement search state, to a
// fresh value local to the call, so concurrent callers never interfere.
package onebin
