package onebin

import "github.com/katalvlaran/binpack3d/box"

// relation is one of six directional non-overlap predicates between an
// ordered pair of boxes (i,j) with i<j, or relUndef while undecided.
type relation int8

const (
	relUndef relation = -1

	relLeft   relation = 0 // i's right face <= j's left face (i left of j along W)
	relRight  relation = 1 // j's right face <= i's left face
	relUnder  relation = 2 // i's top face <= j's bottom face (i under j along H)
	relAbove  relation = 3 // j's top face <= i's bottom face
	relFront  relation = 4 // i's back face <= j's front face (i in front of j along D)
	relBehind relation = 5 // j's back face <= i's front face
)

const allRelations = 6

func relBit(r relation) uint8 { return 1 << uint(r) }

// fullDomain is the set of all six relations, used to initialize every
// pair before any propagation narrows it.
const fullDomain uint8 = (1 << allRelations) - 1

// undoKind distinguishes the two kinds of mutation cpEngine.reducePair and
// cpEngine.recPack record, so backtracking can restore exactly what changed.
type undoKind int8

const (
	undoDomainClear undoKind = iota
	undoRelationFix
)

type undoEntry struct {
	i, j int
	kind undoKind
	bit  uint8    // undoDomainClear: the bit that was cleared
	prev relation // undoRelationFix: the relation value to restore
}

// cpEngine holds the per-call state of the pairwise-relation constraint
// propagation search: fixed dimensions, the domain and relation tables, and
// an explicit undo log. It is always constructed fresh by Decide and never
// shared across calls, so it carries no process-wide state.
// Grounded on findcoordinates/checkdomain/reducedomain/recpack/general_pack/
// onebin_general (3dbpp.c:1035-1333); struct-scoping modeled on
// lvlath/tsp/bb.go's bbEngine.
type cpEngine struct {
	bin   box.Dims
	dims  []box.Dims
	n     int
	domain   [][]uint8    // domain[i][j], only meaningful for i<j
	relation [][]relation // relation[i][j], only meaningful for i<j

	undo []undoEntry

	fast    bool
	maxIter int
	iters   int

	coords []box.Point
	solved bool
}

func newCPEngine(bin box.Dims, dims []box.Dims, fast bool, maxIter int) *cpEngine {
	n := len(dims)
	domain := make([][]uint8, n)
	rel := make([][]relation, n)
	for i := 0; i < n; i++ {
		domain[i] = make([]uint8, n)
		rel[i] = make([]relation, n)
		for j := 0; j < n; j++ {
			domain[i][j] = fullDomain
			rel[i][j] = relUndef
		}
	}
	// Break the trivial reflection symmetry between boxes 0 and 1: forbid
	// RIGHT/ABOVE/BEHIND for the pair (0,1), i.e. box 1 to the left of,
	// below or in front of box 0, since swapping the two boxes' roles would
	// otherwise be explored twice.
	if n >= 2 {
		domain[0][1] &^= relBit(relRight) | relBit(relAbove) | relBit(relBehind)
	}
	return &cpEngine{
		bin:      bin,
		dims:     dims,
		n:        n,
		domain:   domain,
		relation: rel,
		fast:     fast,
		maxIter:  maxIter,
		coords:   make([]box.Point, n),
	}
}

// findCoordinates infers a coordinate assignment consistent with the
// currently fixed relations by iterative relaxation: start every box at the
// origin and repeatedly push dependents just past their predecessors along
// the constrained axis until a pass makes no change (feasible) or n passes
// are exhausted without quiescence (a directed cycle: infeasible).
// Grounded on findcoordinates (3dbpp.c:1035-1090).
func (e *cpEngine) findCoordinates() ([]box.Point, bool) {
	coords := make([]box.Point, e.n)
	for pass := 0; pass < e.n; pass++ {
		changed := false
		for i := 0; i < e.n; i++ {
			for j := i + 1; j < e.n; j++ {
				r := e.relation[i][j]
				if r == relUndef {
					continue
				}
				if !e.pushPair(coords, i, j, r, &changed) {
					return nil, false
				}
			}
		}
		if !changed {
			return coords, true
		}
	}
	return nil, false
}

// pushPair applies one fixed relation's push rule to coords, reporting
// false immediately if the push would send a box past the bin's extent.
func (e *cpEngine) pushPair(coords []box.Point, i, j int, r relation, changed *bool) bool {
	di, dj := e.dims[i], e.dims[j]
	switch r {
	case relLeft:
		need := coords[i].X + di.W
		if coords[j].X < need {
			coords[j].X = need
			*changed = true
		}
		if coords[j].X+dj.W > e.bin.W {
			return false
		}
	case relRight:
		need := coords[j].X + dj.W
		if coords[i].X < need {
			coords[i].X = need
			*changed = true
		}
		if coords[i].X+di.W > e.bin.W {
			return false
		}
	case relUnder:
		need := coords[i].Y + di.H
		if coords[j].Y < need {
			coords[j].Y = need
			*changed = true
		}
		if coords[j].Y+dj.H > e.bin.H {
			return false
		}
	case relAbove:
		need := coords[j].Y + dj.H
		if coords[i].Y < need {
			coords[i].Y = need
			*changed = true
		}
		if coords[i].Y+di.H > e.bin.H {
			return false
		}
	case relFront:
		need := coords[i].Z + di.D
		if coords[j].Z < need {
			coords[j].Z = need
			*changed = true
		}
		if coords[j].Z+dj.D > e.bin.D {
			return false
		}
	case relBehind:
		need := coords[j].Z + dj.D
		if coords[i].Z < need {
			coords[i].Z = need
			*changed = true
		}
		if coords[i].Z+di.D > e.bin.D {
			return false
		}
	}
	return true
}

// pushUndo records a mutation so backtrack can restore it in reverse order.
func (e *cpEngine) pushUndo(entry undoEntry) { e.undo = append(e.undo, entry) }

// undoTo pops the undo log back to length mark, reversing every recorded
// mutation in LIFO order.
func (e *cpEngine) undoTo(mark int) {
	for len(e.undo) > mark {
		last := e.undo[len(e.undo)-1]
		e.undo = e.undo[:len(e.undo)-1]
		switch last.kind {
		case undoDomainClear:
			e.domain[last.i][last.j] |= last.bit
		case undoRelationFix:
			e.relation[last.i][last.j] = last.prev
		}
	}
}

// reduceDomain runs constraint propagation to a fixed point: for every pair
// still UNDEF, it tentatively fixes each remaining candidate relation and
// tests findCoordinates; a candidate that makes coordinates infeasible is
// cleared from the domain. A pair left with zero candidates is a proof of
// infeasibility; a pair left with exactly one candidate is fixed outright.
// Grounded on reducedomain (3dbpp.c:1092-1170).
func (e *cpEngine) reduceDomain() bool {
	for {
		progressed := false
		for i := 0; i < e.n; i++ {
			for j := i + 1; j < e.n; j++ {
				if e.relation[i][j] != relUndef {
					continue
				}
				if !e.reducePair(i, j, &progressed) {
					return false
				}
			}
		}
		if !progressed {
			return true
		}
	}
}

func (e *cpEngine) reducePair(i, j int, progressed *bool) bool {
	for r := relation(0); r < allRelations; r++ {
		bit := relBit(r)
		if e.domain[i][j]&bit == 0 {
			continue
		}
		saved := e.relation[i][j]
		e.relation[i][j] = r
		_, feasible := e.findCoordinates()
		e.relation[i][j] = saved
		if !feasible {
			e.domain[i][j] &^= bit
			e.pushUndo(undoEntry{i: i, j: j, kind: undoDomainClear, bit: bit})
			*progressed = true
		}
	}
	switch popcount6(e.domain[i][j]) {
	case 0:
		return false
	case 1:
		e.pushUndo(undoEntry{i: i, j: j, kind: undoRelationFix, prev: e.relation[i][j]})
		e.relation[i][j] = soleBit(e.domain[i][j])
		*progressed = true
	}
	return true
}

func popcount6(mask uint8) int {
	n := 0
	for b := uint8(0); b < allRelations; b++ {
		if mask&(1<<b) != 0 {
			n++
		}
	}
	return n
}

func soleBit(mask uint8) relation {
	for b := relation(0); b < allRelations; b++ {
		if mask&relBit(b) != 0 {
			return b
		}
	}
	return relUndef
}

// recPack performs the labeling search: pick the lexicographically first
// (j,i) pair still UNDEF, try each relation remaining in its domain,
// propagate, and recurse; undo on failure. Success is declared once every
// pair is assigned and the resulting coordinates are feasible. Grounded on
// recpack (3dbpp.c:1172-1240).
func (e *cpEngine) recPack() bool {
	e.iters++
	if e.fast && e.maxIter > 0 && e.iters > e.maxIter {
		return false
	}

	i, j, found := e.firstUndef()
	if !found {
		coords, ok := e.findCoordinates()
		if !ok {
			return false
		}
		e.coords = coords
		e.solved = true
		return true
	}

	mark := len(e.undo)
	domainSnapshot := e.domain[i][j]
	for r := relation(0); r < allRelations; r++ {
		bit := relBit(r)
		if domainSnapshot&bit == 0 {
			continue
		}
		e.pushUndo(undoEntry{i: i, j: j, kind: undoRelationFix, prev: relUndef})
		e.relation[i][j] = r

		if e.reduceDomain() && e.recPack() {
			return true
		}
		e.undoTo(mark)
		if e.fast && e.maxIter > 0 && e.iters > e.maxIter {
			return false
		}
	}
	return false
}

// firstUndef returns the lexicographically first (by j, then i) pair whose
// relation is still undecided.
func (e *cpEngine) firstUndef() (i, j int, found bool) {
	for jj := 1; jj < e.n; jj++ {
		for ii := 0; ii < jj; ii++ {
			if e.relation[ii][jj] == relUndef {
				return ii, jj, true
			}
		}
	}
	return 0, 0, false
}

// Decide is the general single-bin feasibility engine: it decides whether
// every box in dims fits simultaneously into bin and, if so, returns their
// coordinates in the same order as dims. When fast is true the search is
// capped at maxIter recursion entries (a false result is then inconclusive
// rather than a proof of infeasibility); pass maxIter <= 0 for an unbounded
// search. Grounded on onebin_general (3dbpp.c:1312-1333).
func Decide(bin box.Dims, dims []box.Dims, fast bool, maxIter int) ([]box.Point, bool) {
	if len(dims) == 0 {
		return nil, true
	}
	for _, d := range dims {
		if !fitsEnvelope(d, bin) {
			return nil, false
		}
	}
	if len(dims) == 1 {
		return []box.Point{{}}, true
	}
	if len(dims) == 2 {
		pa, pb, ok := Fits2(bin, dims[0], dims[1])
		if ok {
			return []box.Point{pa, pb}, true
		}
	}
	e := newCPEngine(bin, dims, fast, maxIter)
	if !e.reduceDomain() {
		return nil, false
	}
	if e.recPack() {
		return e.coords, true
	}
	return nil, false
}
