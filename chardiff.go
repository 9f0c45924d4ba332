package textdiff

import "strings"

// SegmentType classifies a character-level segment inside a paired line.
type SegmentType int

const (
	// SegmentUnchanged means the text appears in both lines.
	SegmentUnchanged SegmentType = iota
	// SegmentAdded means the text appears only in the modified line.
	SegmentAdded
	// SegmentRemoved means the text appears only in the original line.
	SegmentRemoved
)

// String returns a string representation of the SegmentType.
func (t SegmentType) String() string {
	switch t {
	case SegmentUnchanged:
		return "Unchanged"
	case SegmentAdded:
		return "Added"
	case SegmentRemoved:
		return "Removed"
	default:
		return "Unknown"
	}
}

// CharSegment is one run of a character-level diff. Concatenating the
// Text of every segment in a list reproduces the source line exactly.
type CharSegment struct {
	Type SegmentType
	Text string
}

// Similarity gate for character-level pairing. Both conditions must
// hold: the lines share at least 60% of the longer line's code points
// as a common subsequence, and the shorter line is at least 30% of the
// longer one. The second condition stops a one-character line from
// "matching" a long line that happens to contain that character.
const (
	pairSimilarityThreshold = 0.6
	pairLengthRatio         = 0.3
)

// ShouldPair reports whether two lines are similar enough for
// character-level sub-diffing. Equal lines always pass.
func ShouldPair(a, b string) bool {
	if a == b {
		return true
	}

	ap := codePoints(a)
	bp := codePoints(b)
	maxLen, minLen := len(ap), len(bp)
	if minLen > maxLen {
		maxLen, minLen = minLen, maxLen
	}
	if maxLen == 0 {
		return true
	}
	if float64(minLen) < pairLengthRatio*float64(maxLen) {
		return false
	}

	achg, _ := diffKeys(ap, bp)
	common := 0
	for _, c := range achg {
		if !c {
			common++
		}
	}
	return float64(common)/float64(maxLen) >= pairSimilarityThreshold
}

// DiffChars computes a minimal character-level edit script over Unicode
// code points, so multi-byte characters are never split. aSegments
// annotates a with Unchanged/Removed runs, bSegments annotates b with
// Unchanged/Added runs. DiffChars always computes a full result; the
// ShouldPair gate is applied by callers, not here.
func DiffChars(a, b string) (aSegments, bSegments []CharSegment) {
	ap := codePoints(a)
	bp := codePoints(b)
	achg, bchg := diffKeys(ap, bp)
	return buildSegments(ap, achg, SegmentRemoved), buildSegments(bp, bchg, SegmentAdded)
}

// buildSegments groups consecutive equally-marked code points into
// segments.
func buildSegments(points []string, changed []bool, changeType SegmentType) []CharSegment {
	var segs []CharSegment
	for i := 0; i < len(points); {
		t := SegmentUnchanged
		if changed[i] {
			t = changeType
		}
		var sb strings.Builder
		j := i
		for j < len(points) && changed[j] == changed[i] {
			sb.WriteString(points[j])
			j++
		}
		segs = append(segs, CharSegment{Type: t, Text: sb.String()})
		i = j
	}
	return segs
}

// codePoints splits a string into its Unicode code points, each as its
// own string, so the line engine can diff them as a sequence.
func codePoints(s string) []string {
	pts := make([]string, 0, len(s))
	for _, r := range s {
		pts = append(pts, string(r))
	}
	return pts
}
