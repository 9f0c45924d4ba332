package textdiff

import (
	"sort"
	"strings"
)

// sourceLine pairs the text shown to the user with the normalized form
// used for equality. Keeping both means options like IgnoreCase change
// what matches without changing what is displayed.
type sourceLine struct {
	display string
	key     string
}

// Prepare splits text into lines and applies the comparison options,
// returning the normalized comparison keys in order. Empty input yields
// a single empty line. The function is pure and total.
func Prepare(text string, opts Options) []string {
	src := prepareSource(text, opts)
	keys := make([]string, len(src))
	for i, ln := range src {
		keys[i] = ln.key
	}
	return keys
}

func prepareSource(text string, opts Options) []sourceLine {
	raw := splitLines(text, opts.IgnoreTrailingNewlines)
	src := make([]sourceLine, len(raw))
	for i, s := range raw {
		src[i] = sourceLine{display: s, key: normalizeLine(s, opts)}
	}
	if opts.SortLines {
		sort.SliceStable(src, func(i, j int) bool {
			return src[i].key < src[j].key
		})
	}
	return src
}

// splitLines splits on line breaks, preserving interior empty lines.
// CRLF line endings are treated the same as LF. When dropTrailing is
// set, the single empty line produced by a final newline is removed:
// "a\n" becomes ["a"], but "a\n\n" keeps its interior blank and becomes
// ["a", ""].
func splitLines(text string, dropTrailing bool) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	lines := strings.Split(text, "\n")
	if dropTrailing && len(lines) > 1 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

func normalizeLine(s string, opts Options) string {
	if opts.IgnoreWhitespace {
		s = strings.TrimSpace(s)
	}
	if opts.IgnoreCase {
		s = strings.ToLower(s)
	}
	return s
}
