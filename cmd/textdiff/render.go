package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/dacharyc/textdiff"
)

// One style per line type, shared by both layouts. The mapping mirrors
// textdiff.Symbol: one canonical table, injected everywhere.
var lineStyles = map[textdiff.LineType]lipgloss.Style{
	textdiff.Added:     lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	textdiff.Removed:   lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	textdiff.Modified:  lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	textdiff.Unchanged: lipgloss.NewStyle(),
}

var segmentStyles = map[textdiff.SegmentType]lipgloss.Style{
	textdiff.SegmentAdded:     lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Reverse(true),
	textdiff.SegmentRemoved:   lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Reverse(true),
	textdiff.SegmentUnchanged: lipgloss.NewStyle(),
}

func renderUnified(w io.Writer, lines []textdiff.Line, opts cliOptions) {
	entries := textdiff.PairForUnified(lines, opts.charDiff)
	if opts.noColor {
		fmt.Fprint(w, textdiff.FormatUnified(entries, textdiff.DefaultMarkers()))
		return
	}
	for _, e := range entries {
		style := lineStyles[e.Line.Type]
		fmt.Fprintf(w, "%s %s\n", style.Render(textdiff.Symbol(e.Line.Type)), renderContent(e, style))
	}
}

// renderContent renders a line's text, styling changed segments when
// present.
func renderContent(e textdiff.LineWithSegments, style lipgloss.Style) string {
	if len(e.Segments) == 0 {
		return style.Render(e.Line.Content)
	}
	var sb strings.Builder
	for _, seg := range e.Segments {
		if seg.Type == textdiff.SegmentUnchanged {
			sb.WriteString(style.Render(seg.Text))
			continue
		}
		sb.WriteString(segmentStyles[seg.Type].Render(seg.Text))
	}
	return sb.String()
}

func renderSideBySide(w io.Writer, lines []textdiff.Line, opts cliOptions) {
	sbs := textdiff.PairForSideBySide(lines, opts.charDiff)
	colWidth := (opts.width - 3) / 2
	if colWidth < 8 {
		colWidth = 8
	}

	for _, pair := range zipColumns(sbs) {
		left := renderCell(pair.Original, colWidth, opts.noColor)
		right := renderCell(pair.Modified, colWidth, opts.noColor)
		fmt.Fprintf(w, "%s | %s\n", left, right)
	}
}

// zipColumns aligns the two columns into grid rows. Unchanged lines
// anchor both cursors; removed and added lines inside a change region
// share a row, and the excess side pairs with an empty cell.
func zipColumns(sbs textdiff.SideBySide) []textdiff.LinePair {
	var pairs []textdiff.LinePair
	i, j := 0, 0
	for i < len(sbs.Original) || j < len(sbs.Modified) {
		var o, m *textdiff.LineWithSegments
		switch {
		case i < len(sbs.Original) && sbs.Original[i].Line.Type == textdiff.Removed:
			o = &sbs.Original[i]
			i++
			if j < len(sbs.Modified) && sbs.Modified[j].Line.Type == textdiff.Added {
				m = &sbs.Modified[j]
				j++
			}
		case j < len(sbs.Modified) && sbs.Modified[j].Line.Type == textdiff.Added:
			m = &sbs.Modified[j]
			j++
		default:
			// Both cursors are on the same shared line.
			if i < len(sbs.Original) {
				o = &sbs.Original[i]
				i++
			}
			if j < len(sbs.Modified) {
				m = &sbs.Modified[j]
				j++
			}
		}
		pairs = append(pairs, textdiff.LinePair{Original: o, Modified: m})
	}
	return pairs
}

// renderCell formats one grid cell at a fixed display width, truncating
// wide content so CJK and emoji keep the columns aligned.
func renderCell(e *textdiff.LineWithSegments, width int, noColor bool) string {
	if e == nil {
		return strings.Repeat(" ", width)
	}

	text := runewidth.Truncate(e.Line.Content, width-2, "…")
	cell := runewidth.FillRight(textdiff.Symbol(e.Line.Type)+" "+text, width)
	if noColor {
		return cell
	}
	return lineStyles[e.Line.Type].Render(cell)
}
