package binpack3d

import (
	"io"
	"time"

	"github.com/katalvlaran/binpack3d/box"
)

// maxBoxes caps the number of boxes a single Solve call accepts, mirroring
// MAXBOXES=101 (so n is in [1,100]) from the original source.
const maxBoxes = 101

// Options configures a Solve call: search budgets and an optional trace
// sink. The zero value (also returned by DefaultOptions) runs unbounded,
// matching the plain-struct Options/DefaultOptions convention of
// lvlath/tsp/types.go rather than a functional-options pattern, since this
// knob set is small and fixed.
type Options struct {
	// NodeLimit caps the number of exact-search nodes visited; 0 disables
	// the limit.
	NodeLimit int

	// IterLimit is a cap on CP-engine recursion entries, in units of
	// IUNIT=1000; 0 disables the limit. The exact search does not count
	// CP-engine recursion entries, so a positive IterLimit never trips.
	IterLimit int

	// TimeLimit caps wall-clock search time; 0 disables the limit.
	TimeLimit time.Duration

	// Trace, if non-nil, receives a single human-readable line
	// ("TIMELIMIT", "NODELIMIT" or "ITERLIMIT") the first time the
	// corresponding budget is exceeded, mirroring the original's
	// termination side channel without requiring every
	// caller to parse stdout.
	Trace io.Writer
}

// DefaultOptions returns the zero-value Options: every budget unlimited,
// no trace sink.
func DefaultOptions() Options { return Options{} }

// Result is what Solve returns: a complete placement for every input box,
// the bin count it uses, and the strength of the proof behind it.
type Result struct {
	// Boxes holds one entry per input box, in input order, with Bin and
	// Pos set to its final placement.
	Boxes []box.Box

	// Bins is the number of distinct bins used (the incumbent upper
	// bound at return time).
	Bins int

	// LowerBound is the strongest lower bound proven on the optimum. It
	// equals Bins exactly when Proven is true.
	LowerBound int

	// Proven is true when the search completed without hitting any
	// budget, so Bins is a proven optimum.
	Proven bool

	// NodesUsed reports the exact-search nodes visited, in the same units
	// as Options.NodeLimit. IterUsed is always 0: CP-engine iterations are
	// not counted.
	NodesUsed int
	IterUsed  int

	// TimeUsed is the wall-clock time the search ran.
	TimeUsed time.Duration
}
