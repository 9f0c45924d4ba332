package textdiff

import "testing"

func TestSymbol(t *testing.T) {
	tests := []struct {
		lt   LineType
		want string
	}{
		{Added, "+"},
		{Removed, "-"},
		{Modified, "~"},
		{Unchanged, " "},
	}
	for _, tt := range tests {
		if got := Symbol(tt.lt); got != tt.want {
			t.Errorf("Symbol(%v) = %q, want %q", tt.lt, got, tt.want)
		}
	}
}

func TestMarkersAnnotate(t *testing.T) {
	m := DefaultMarkers()
	tests := []struct {
		name string
		segs []CharSegment
		want string
	}{
		{
			name: "empty",
			segs: nil,
			want: "",
		},
		{
			name: "unchanged only",
			segs: []CharSegment{{Type: SegmentUnchanged, Text: "hello"}},
			want: "hello",
		},
		{
			name: "removed",
			segs: []CharSegment{
				{Type: SegmentUnchanged, Text: "hello "},
				{Type: SegmentRemoved, Text: "world"},
			},
			want: "hello [-world-]",
		},
		{
			name: "added",
			segs: []CharSegment{
				{Type: SegmentUnchanged, Text: "hello "},
				{Type: SegmentAdded, Text: "there"},
			},
			want: "hello {+there+}",
		},
		{
			name: "interleaved",
			segs: []CharSegment{
				{Type: SegmentRemoved, Text: "a"},
				{Type: SegmentUnchanged, Text: "b"},
				{Type: SegmentAdded, Text: "c"},
			},
			want: "[-a-]b{+c+}",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := m.Annotate(tt.segs); got != tt.want {
				t.Errorf("Annotate() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestMarkersAnnotate_CustomMarkers(t *testing.T) {
	m := Markers{StartRemoved: "<del>", StopRemoved: "</del>", StartAdded: "<ins>", StopAdded: "</ins>"}
	segs := []CharSegment{
		{Type: SegmentRemoved, Text: "old"},
		{Type: SegmentAdded, Text: "new"},
	}
	want := "<del>old</del><ins>new</ins>"
	if got := m.Annotate(segs); got != want {
		t.Errorf("Annotate() = %q, want %q", got, want)
	}
}

func TestFormatUnified(t *testing.T) {
	entries := []LineWithSegments{
		{Line: Line{Number: 1, Content: "same", Type: Unchanged}},
		{Line: Line{Number: 2, Content: "gone", Type: Removed}},
		{Line: Line{Number: 3, Content: "here", Type: Added}},
	}
	want := "  same\n- gone\n+ here\n"
	if got := FormatUnified(entries, DefaultMarkers()); got != want {
		t.Errorf("FormatUnified() = %q, want %q", got, want)
	}
}

func TestFormatUnified_WithSegments(t *testing.T) {
	lines := DiffLines([]string{"hello world"}, []string{"hello there"})
	entries := PairForUnified(lines, true)

	// The minimal script keeps the "r" shared by "world" and "there".
	got := FormatUnified(entries, DefaultMarkers())
	want := "- hello [-wo-]r[-ld-]\n+ hello {+the+}r{+e+}\n"
	if got != want {
		t.Errorf("FormatUnified() = %q, want %q", got, want)
	}
}

func TestFormatUnified_Empty(t *testing.T) {
	if got := FormatUnified(nil, DefaultMarkers()); got != "" {
		t.Errorf("FormatUnified(nil) = %q, want empty", got)
	}
}
