package textdiff

import "math"

// DiffLines computes the minimal line-level edit script between two line
// sequences. Every input line from both sides appears in the output
// exactly once, tagged Unchanged (consumes one line from each side),
// Removed (original only) or Added (modified only), numbered
// sequentially from 1.
//
// Invariants: added+unchanged == len(modified) and removed+unchanged ==
// len(original); no line is dropped, duplicated, or reordered relative
// to its side. When several minimal scripts exist, the result is
// canonical: each changed run occupies the earliest valid position, and
// a removed run is emitted before the added run that replaces it.
func DiffLines(original, modified []string) []Line {
	a := make([]sourceLine, len(original))
	for i, s := range original {
		a[i] = sourceLine{display: s, key: s}
	}
	b := make([]sourceLine, len(modified))
	for i, s := range modified {
		b[i] = sourceLine{display: s, key: s}
	}
	return diffSource(a, b)
}

// diffSource diffs by comparison key and emits display text.
func diffSource(a, b []sourceLine) []Line {
	akeys := make([]string, len(a))
	for i, ln := range a {
		akeys[i] = ln.key
	}
	bkeys := make([]string, len(b))
	for i, ln := range b {
		bkeys[i] = ln.key
	}
	achg, bchg := diffKeys(akeys, bkeys)
	return buildLines(a, b, achg, bchg)
}

// diffKeys marks the changed positions in both key sequences. Trivial
// inputs (identical, one-sided, or fully disjoint) are resolved without
// running the bidirectional search.
func diffKeys(akeys, bkeys []string) (achanged, bchanged []bool) {
	achanged = make([]bool, len(akeys))
	bchanged = make([]bool, len(bkeys))

	switch {
	case keysEqual(akeys, bkeys):
		return achanged, bchanged
	case len(akeys) == 0:
		markAll(bchanged)
		return achanged, bchanged
	case len(bkeys) == 0:
		markAll(achanged)
		return achanged, bchanged
	case keysDisjoint(akeys, bkeys):
		markAll(achanged)
		markAll(bchanged)
		return achanged, bchanged
	}

	ctx := newDiffContext(akeys, bkeys)
	ctx.compareSeq(0, len(akeys), 0, len(bkeys))
	slideChanges(ctx.xchanged, akeys)
	slideChanges(ctx.ychanged, bkeys)
	return ctx.xchanged, ctx.ychanged
}

func keysEqual(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// keysDisjoint reports whether the sequences share no key at all, in
// which case the minimal script is all removals followed by all
// additions and the search can be skipped.
func keysDisjoint(a, b []string) bool {
	seen := make(map[string]struct{}, len(a))
	for _, k := range a {
		seen[k] = struct{}{}
	}
	for _, k := range b {
		if _, ok := seen[k]; ok {
			return false
		}
	}
	return true
}

func markAll(changed []bool) {
	for i := range changed {
		changed[i] = true
	}
}

// compareSeq is the divide-and-conquer core of the Myers diff
// algorithm. It compares xkeys[xoff:xlim] with ykeys[yoff:ylim] and
// records changes in the context's change marks.
func (ctx *diffContext) compareSeq(xoff, xlim, yoff, ylim int) {
	// Trim matching elements from both ends.
	for xoff < xlim && yoff < ylim && ctx.equal(xoff, yoff) {
		xoff++
		yoff++
	}
	for xoff < xlim && yoff < ylim && ctx.equal(xlim-1, ylim-1) {
		xlim--
		ylim--
	}

	// Base cases: one sequence is exhausted.
	if xoff == xlim {
		ctx.markAdded(yoff, ylim)
		return
	}
	if yoff == ylim {
		ctx.markRemoved(xoff, xlim)
		return
	}

	// Split at a point on a minimal edit path and recurse.
	xmid, ymid := ctx.findMiddleSnake(xoff, xlim, yoff, ylim)
	ctx.compareSeq(xoff, xmid, yoff, ymid)
	ctx.compareSeq(xmid, xlim, ymid, ylim)
}

// findMiddleSnake runs the bidirectional search from Myers' paper
// (section 4b): forward paths from the top-left corner and reverse
// paths from the bottom-right, extended one cost unit at a time until
// they overlap. The overlap point lies on a minimal edit path and is
// returned as the divide-and-conquer split.
//
// Diagonals are numbered d = x - y. fdiag holds the furthest-reaching
// forward x per diagonal, bdiag the furthest-reaching (smallest)
// backward x. Out-of-range neighbors are covered by sentinel values so
// the inner loops need no boundary branches.
func (ctx *diffContext) findMiddleSnake(xoff, xlim, yoff, ylim int) (xmid, ymid int) {
	fd, bd := ctx.fdiag, ctx.bdiag
	off := ctx.diagOffset()

	dmin := xoff - ylim // lowest reachable diagonal
	dmax := xlim - yoff // highest reachable diagonal
	fmid := xoff - yoff // diagonal of the top-left corner
	bmid := xlim - ylim // diagonal of the bottom-right corner
	fmin, fmax := fmid, fmid
	bmin, bmax := bmid, bmid
	odd := (fmid-bmid)&1 != 0

	fd[off+fmid] = xoff
	bd[off+bmid] = xlim

	for {
		// Extend the forward search band by one diagonal on each side,
		// writing a sentinel just outside it.
		if fmin > dmin {
			fmin--
			fd[off+fmin-1] = -1
		} else {
			fmin++
		}
		if fmax < dmax {
			fmax++
			fd[off+fmax+1] = -1
		} else {
			fmax--
		}
		for d := fmax; d >= fmin; d -= 2 {
			tlo, thi := fd[off+d-1], fd[off+d+1]
			x := thi
			if tlo >= thi {
				x = tlo + 1
			}
			y := x - d
			for x < xlim && y < ylim && ctx.equal(x, y) {
				x++
				y++
			}
			fd[off+d] = x
			if odd && bmin <= d && d <= bmax && bd[off+d] <= x {
				return x, y
			}
		}

		// Same for the backward search band.
		if bmin > dmin {
			bmin--
			bd[off+bmin-1] = math.MaxInt
		} else {
			bmin++
		}
		if bmax < dmax {
			bmax++
			bd[off+bmax+1] = math.MaxInt
		} else {
			bmax--
		}
		for d := bmax; d >= bmin; d -= 2 {
			tlo, thi := bd[off+d-1], bd[off+d+1]
			x := tlo
			if tlo >= thi {
				x = thi - 1
			}
			y := x - d
			for x > xoff && y > yoff && ctx.equal(x-1, y-1) {
				x--
				y--
			}
			bd[off+d] = x
			if !odd && fmin <= d && d <= fmax && x <= fd[off+d] {
				return x, y
			}
		}
	}
}

// buildLines walks both sequences and converts the change marks into
// the output line stream. Within each change region, removed lines are
// emitted before added lines.
func buildLines(a, b []sourceLine, achg, bchg []bool) []Line {
	lines := make([]Line, 0, len(a)+len(b))
	num := 0
	i, j := 0, 0

	for i < len(a) || j < len(b) {
		for i < len(a) && j < len(b) && !achg[i] && !bchg[j] {
			num++
			lines = append(lines, Line{Number: num, Content: a[i].display, Type: Unchanged})
			i++
			j++
		}
		for i < len(a) && achg[i] {
			num++
			lines = append(lines, Line{Number: num, Content: a[i].display, Type: Removed})
			i++
		}
		for j < len(b) && bchg[j] {
			num++
			lines = append(lines, Line{Number: num, Content: b[j].display, Type: Added})
			j++
		}
	}

	return lines
}
