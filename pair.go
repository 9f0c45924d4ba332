package textdiff

// Line pairing for the two rendering layouts.
//
// Both functions below are pure: they never mutate their input and
// never rewrite a line's classification, so independent renderers (an
// on-screen viewer, a static exporter) fed the same lines produce
// identical output. Character-level pairing composes the ShouldPair
// gate with DiffChars; the two stay separate functions so each can be
// tested on its own.

// LineWithSegments decorates a diff line with character-level segments.
// Segments is nil unless character diffing was enabled and the
// similarity gate accepted the pairing.
type LineWithSegments struct {
	Line     Line
	Segments []CharSegment
}

// LinePair is one row of a side-by-side grid. Either side may be nil
// when the row has no counterpart. The core emits columns, not rows;
// building LinePair rows (and any padding) is a presentation concern.
type LinePair struct {
	Original *LineWithSegments
	Modified *LineWithSegments
}

// SideBySide holds the two columns of a side-by-side layout. Unchanged
// lines appear in both columns; the columns may differ in length.
type SideBySide struct {
	Original []LineWithSegments
	Modified []LineWithSegments
}

// PairForUnified prepares a line stream for unified rendering. Output
// preserves input order and length exactly. Within each change region
// (a maximal run of removed lines followed by a maximal run of added
// lines), removedRun[i] is paired with addedRun[i]; excess lines on the
// longer run stay unpaired. Paired lines that pass the similarity gate
// carry character-level segments when enableCharDiff is set.
func PairForUnified(lines []Line, enableCharDiff bool) []LineWithSegments {
	out := make([]LineWithSegments, 0, len(lines))
	for i := 0; i < len(lines); {
		if lines[i].Type != Removed && lines[i].Type != Added {
			out = append(out, LineWithSegments{Line: lines[i]})
			i++
			continue
		}

		remStart := i
		for i < len(lines) && lines[i].Type == Removed {
			i++
		}
		removed := lines[remStart:i]

		addStart := i
		for i < len(lines) && lines[i].Type == Added {
			i++
		}
		added := lines[addStart:i]

		out = append(out, pairRuns(removed, added, enableCharDiff)...)
	}
	return out
}

// pairRuns emits a removed run followed by its added run, attaching
// segments to index-paired lines that pass the gate.
func pairRuns(removed, added []Line, enableCharDiff bool) []LineWithSegments {
	out := make([]LineWithSegments, 0, len(removed)+len(added))
	remSegs := make([][]CharSegment, len(removed))
	addSegs := make([][]CharSegment, len(added))

	if enableCharDiff {
		n := len(removed)
		if len(added) < n {
			n = len(added)
		}
		for k := 0; k < n; k++ {
			if ShouldPair(removed[k].Content, added[k].Content) {
				remSegs[k], addSegs[k] = DiffChars(removed[k].Content, added[k].Content)
			}
		}
	}

	for k, ln := range removed {
		out = append(out, LineWithSegments{Line: ln, Segments: remSegs[k]})
	}
	for k, ln := range added {
		out = append(out, LineWithSegments{Line: ln, Segments: addSegs[k]})
	}
	return out
}

// PairForSideBySide splits a line stream into the two columns of a
// side-by-side layout: unchanged lines on both sides, removed lines on
// the original side, added lines on the modified side, document order
// throughout. The k-th removed line pairs with the k-th added line (by
// position among the removed/added subsequences) under the same
// gate-and-segment contract as PairForUnified.
func PairForSideBySide(lines []Line, enableCharDiff bool) SideBySide {
	var sbs SideBySide
	var removedAt, addedAt []int

	for _, ln := range lines {
		switch ln.Type {
		case Removed:
			removedAt = append(removedAt, len(sbs.Original))
			sbs.Original = append(sbs.Original, LineWithSegments{Line: ln})
		case Added:
			addedAt = append(addedAt, len(sbs.Modified))
			sbs.Modified = append(sbs.Modified, LineWithSegments{Line: ln})
		default:
			sbs.Original = append(sbs.Original, LineWithSegments{Line: ln})
			sbs.Modified = append(sbs.Modified, LineWithSegments{Line: ln})
		}
	}

	if enableCharDiff {
		n := len(removedAt)
		if len(addedAt) < n {
			n = len(addedAt)
		}
		for k := 0; k < n; k++ {
			o := &sbs.Original[removedAt[k]]
			m := &sbs.Modified[addedAt[k]]
			if ShouldPair(o.Line.Content, m.Line.Content) {
				o.Segments, m.Segments = DiffChars(o.Line.Content, m.Line.Content)
			}
		}
	}

	return sbs
}
