package textdiff

// diffContext holds the scratch state for one minimal edit script
// computation over two key sequences.
type diffContext struct {
	xkeys, ykeys []string // sequences being compared
	fdiag, bdiag []int    // forward/backward diagonal arrays
	xchanged     []bool   // marks changed elements in xkeys
	ychanged     []bool   // marks changed elements in ykeys
}

// newDiffContext creates a context for comparing two key sequences.
func newDiffContext(xkeys, ykeys []string) *diffContext {
	n := len(xkeys)
	m := len(ykeys)

	// Diagonals range from -m to n, plus a sentinel slot on either
	// side. Diagonal d is stored at index d + offset, offset = m+1.
	diagSize := n + m + 3

	return &diffContext{
		xkeys:    xkeys,
		ykeys:    ykeys,
		fdiag:    make([]int, diagSize),
		bdiag:    make([]int, diagSize),
		xchanged: make([]bool, n),
		ychanged: make([]bool, m),
	}
}

// diagOffset returns the offset to use when indexing diagonal arrays.
func (ctx *diffContext) diagOffset() int {
	return len(ctx.ykeys) + 1
}

// markRemoved marks xkeys[xoff:xlim] as removed.
func (ctx *diffContext) markRemoved(xoff, xlim int) {
	for i := xoff; i < xlim; i++ {
		ctx.xchanged[i] = true
	}
}

// markAdded marks ykeys[yoff:ylim] as added.
func (ctx *diffContext) markAdded(yoff, ylim int) {
	for i := yoff; i < ylim; i++ {
		ctx.ychanged[i] = true
	}
}

// equal reports whether xkeys[i] equals ykeys[j].
func (ctx *diffContext) equal(i, j int) bool {
	return ctx.xkeys[i] == ctx.ykeys[j]
}
