package textdiff

import "strings"

// Symbol returns the canonical one-character prefix for a line type.
// Every renderer shares this mapping; there are no per-renderer copies.
func Symbol(t LineType) string {
	switch t {
	case Added:
		return "+"
	case Removed:
		return "-"
	case Modified:
		return "~"
	default:
		return " "
	}
}

// Markers configures the textual markers wrapped around changed
// character segments in plain-text output.
type Markers struct {
	StartRemoved string
	StopRemoved  string
	StartAdded   string
	StopAdded    string
}

// DefaultMarkers returns the wdiff-style marker set: removed text in
// [-...-], added text in {+...+}.
func DefaultMarkers() Markers {
	return Markers{
		StartRemoved: "[-",
		StopRemoved:  "-]",
		StartAdded:   "{+",
		StopAdded:    "+}",
	}
}

// Annotate renders a segment list as a single string, wrapping changed
// segments in the configured markers.
func (m Markers) Annotate(segs []CharSegment) string {
	var sb strings.Builder
	for _, seg := range segs {
		switch seg.Type {
		case SegmentRemoved:
			sb.WriteString(m.StartRemoved)
			sb.WriteString(seg.Text)
			sb.WriteString(m.StopRemoved)
		case SegmentAdded:
			sb.WriteString(m.StartAdded)
			sb.WriteString(seg.Text)
			sb.WriteString(m.StopAdded)
		default:
			sb.WriteString(seg.Text)
		}
	}
	return sb.String()
}

// FormatUnified renders a unified pairing as plain text, one prefixed
// line per entry. Entries with segments are annotated with the markers;
// all others print their content as-is.
func FormatUnified(entries []LineWithSegments, m Markers) string {
	var sb strings.Builder
	for _, e := range entries {
		sb.WriteString(Symbol(e.Line.Type))
		sb.WriteString(" ")
		if len(e.Segments) > 0 {
			sb.WriteString(m.Annotate(e.Segments))
		} else {
			sb.WriteString(e.Line.Content)
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
