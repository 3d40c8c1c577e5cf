package binpack3d

import (
	"time"

	"github.com/katalvlaran/binpack3d/box"
)

// maxClose bounds how many exact-search recursion levels attempt tryClose
// before it's skipped for the rest of that path, amortizing its cost.
// Grounded on MAXCLOSE=16 (3dbpp.c, try_close).
const maxClose = 16

// state is the problem aggregate threaded through the exact search for a
// single Solve call: never package-level, always owned by one call, so the
// solver is reentrant (grounded on
// lvlath/tsp/bb.go's bbEngine struct-not-globals pattern). It plays the
// role of the original's allinfo struct (3dbpp.c:156-212), with "closed
// bins" modeled as a set of bin numbers rather than a separate
// closedBoxes collection: a box's membership in a closed bin is decided by
// looking up its own Bin field in isClosed.
type state struct {
	bin    box.Dims
	binVol int64

	// boxes holds all n boxes in the fixed decreasing-volume search order.
	// Bin and Pos are mutated in place as the search assigns and
	// backtracks; Bin == 0 means still unplaced.
	boxes []box.Box

	isClosed map[int]bool
	noc      int // number of closed bins

	z  int // current incumbent bin count (upper bound)
	lb int // current global lower bound

	opt []box.Box // snapshot of the incumbent's placement, same order as boxes

	nodeCount int
	iterCount int

	opts     Options
	deadline time.Time
	hasLimit bool

	stopped    bool
	stopReason string

	closeDepth int
}

func newState(bin box.Dims, boxes []box.Dims, opts Options) *state {
	n := len(boxes)
	s := &state{
		bin:      bin,
		binVol:   bin.Vol(),
		boxes:    make([]box.Box, n),
		isClosed: make(map[int]bool),
		z:        n + 1,
		opts:     opts,
	}
	for i, d := range boxes {
		s.boxes[i] = box.NewBox(i+1, d)
	}
	if opts.TimeLimit > 0 {
		s.deadline = time.Now().Add(opts.TimeLimit)
		s.hasLimit = true
	}
	return s
}

// budgetExceeded checks the node, iteration and time budgets, setting
// stopped/stopReason the first time one is crossed. Grounded on the
// discrete node/iter/time checks made at every recursion
// entry.
func (s *state) budgetExceeded() bool {
	if s.stopped {
		return true
	}
	if s.opts.NodeLimit > 0 && s.nodeCount > s.opts.NodeLimit {
		s.trip("NODELIMIT")
		return true
	}
	if s.opts.IterLimit > 0 && s.iterCount > s.opts.IterLimit*1000 {
		s.trip("ITERLIMIT")
		return true
	}
	if s.hasLimit && time.Now().After(s.deadline) {
		s.trip("TIMELIMIT")
		return true
	}
	return false
}

func (s *state) trip(reason string) {
	if s.stopped {
		return
	}
	s.stopped = true
	s.stopReason = reason
	if s.opts.Trace != nil {
		s.opts.Trace.Write([]byte(reason + "\n"))
	}
}

// boxesInBin returns the boxes currently committed to bin b (open or
// closed), in search order.
func (s *state) boxesInBin(b int) []box.Box {
	var out []box.Box
	for _, bx := range s.boxes {
		if bx.Bin == b {
			out = append(out, bx)
		}
	}
	return out
}

// saveIncumbent snapshots the current placement as the new incumbent. The
// caller must already have verified bno < s.z.
func (s *state) saveIncumbent(bno int) {
	s.z = bno
	s.opt = append([]box.Box{}, s.boxes...)
}

// remainingDimsFrom returns every box at or after index i that is still
// unplaced (a tryClose call earlier in this same node may have committed
// some of them into a newly closed bin, in which case they are already
// accounted for via noc and must be excluded here to avoid double-counting
// their volume in the refreshed lower bound).
func (s *state) remainingDimsFrom(i int) []box.Box {
	var out []box.Box
	for _, bx := range s.boxes[i:] {
		if bx.Bin == 0 {
			out = append(out, bx)
		}
	}
	return out
}
