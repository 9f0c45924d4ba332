// Package textdiff computes line-level diffs between two text documents
// and derives the structures a diff viewer needs to render them: a flat
// classified line stream, summary statistics, and pairing structures for
// unified and side-by-side layouts with optional character-level
// highlighting inside paired lines.
//
// The pipeline is purely functional: every call to Compare produces a
// fresh, immutable Result; nothing is shared or mutated across calls.
// The edit script is minimal (Myers bidirectional O(ND) search) and
// deterministic: when several minimal scripts exist, changed runs occupy
// the earliest valid position and removed lines precede the added lines
// that replace them.
package textdiff

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"time"
)

// LineType classifies a line in the diff output.
type LineType int

const (
	// Unchanged means the line appears in both documents.
	Unchanged LineType = iota
	// Added means the line appears only in the modified document.
	Added
	// Removed means the line appears only in the original document.
	Removed
	// Modified is reserved for callers that relabel a paired
	// removed+added run. The engine itself never emits it.
	Modified
)

// String returns a string representation of the LineType.
func (t LineType) String() string {
	switch t {
	case Unchanged:
		return "Unchanged"
	case Added:
		return "Added"
	case Removed:
		return "Removed"
	case Modified:
		return "Modified"
	default:
		return "Unknown"
	}
}

// Line is one classified line of diff output. Number is a dense 1-based
// ordinal over the output sequence, a display position rather than a
// source file line number. Content is always the original, unnormalized
// text of the line.
type Line struct {
	Number  int
	Content string
	Type    LineType
}

// Stats summarizes a diff. Similarity is a percentage in [0, 100]:
// round(unchanged/total*100), or 100 when the diff is empty.
type Stats struct {
	Added      int
	Removed    int
	Modified   int
	Unchanged  int
	Similarity float64
}

// Metadata records when and how a Result was produced.
type Metadata struct {
	Timestamp      time.Time
	ProcessingTime time.Duration
	Algorithm      string
}

// Result is an immutable snapshot of one comparison. It is created once
// per Compare call and superseded wholesale by the next call.
type Result struct {
	Lines    []Line
	Stats    Stats
	Metadata Metadata
}

// Limits bounds input size before the edit-script search runs. The
// underlying algorithm is worst-case quadratic in edit distance, so
// callers needing bounded latency should set a ceiling. Zero values mean
// unlimited.
type Limits struct {
	MaxLines int // per input, in lines
	MaxBytes int // per input, in bytes
}

// Options configures how input text is normalized before comparison.
// Normalization affects only the comparison key of each line; emitted
// Line values always carry the original text. The zero value compares
// texts verbatim.
type Options struct {
	// SortLines sorts each side's lines lexicographically by comparison
	// key before diffing, discarding positional correspondence. Useful
	// for content-set comparison irrespective of order.
	SortLines bool
	// IgnoreCase lower-cases the comparison key of each line.
	IgnoreCase bool
	// IgnoreWhitespace trims leading and trailing whitespace from the
	// comparison key. Interior whitespace is preserved.
	IgnoreWhitespace bool
	// IgnoreTrailingNewlines drops the single trailing empty line
	// produced by a final newline. Interior blank lines are untouched.
	IgnoreTrailingNewlines bool
	// Limits rejects oversized inputs before any comparison work.
	Limits Limits
}

// Sentinel errors reported by the package.
var (
	// ErrInputTooLarge means an input exceeded a configured Limits
	// ceiling. No comparison work was done.
	ErrInputTooLarge = errors.New("textdiff: input too large")
	// ErrMissingInput means a session was asked to compare before both
	// inputs were supplied.
	ErrMissingInput = errors.New("textdiff: missing input")
	// ErrComputationFailed wraps an unexpected internal failure during
	// diff computation. The caller may retry with the same inputs.
	ErrComputationFailed = errors.New("textdiff: diff computation failed")
)

const algorithmName = "myers"

// Compare diffs two documents under the given options and returns a
// fresh Result. Two empty documents yield an empty diff with 100%
// similarity. Pairing structures are derived separately, see
// PairForUnified and PairForSideBySide.
func Compare(original, modified string, opts Options) (*Result, error) {
	start := time.Now()

	if err := checkLimits(original, modified, opts.Limits); err != nil {
		return nil, err
	}

	var lines []Line
	if original != "" || modified != "" {
		a := prepareSource(original, opts)
		b := prepareSource(modified, opts)
		lines = diffSource(a, b)
	}

	return &Result{
		Lines: lines,
		Stats: assembleStats(lines),
		Metadata: Metadata{
			Timestamp:      start,
			ProcessingTime: time.Since(start),
			Algorithm:      algorithmName,
		},
	}, nil
}

// HasDifferences reports whether a result contains any non-unchanged
// line.
func HasDifferences(r *Result) bool {
	if r == nil {
		return false
	}
	return r.Stats.Added+r.Stats.Removed+r.Stats.Modified > 0
}

// assembleStats counts each line type in a single pass.
func assembleStats(lines []Line) Stats {
	var s Stats
	for _, ln := range lines {
		switch ln.Type {
		case Added:
			s.Added++
		case Removed:
			s.Removed++
		case Modified:
			s.Modified++
		case Unchanged:
			s.Unchanged++
		}
	}
	total := s.Added + s.Removed + s.Modified + s.Unchanged
	if total == 0 {
		s.Similarity = 100
		return s
	}
	s.Similarity = math.Round(float64(s.Unchanged) / float64(total) * 100)
	return s
}

func checkLimits(original, modified string, lim Limits) error {
	if lim.MaxBytes > 0 {
		if n := len(original); n > lim.MaxBytes {
			return fmt.Errorf("%w: original is %d bytes, limit %d", ErrInputTooLarge, n, lim.MaxBytes)
		}
		if n := len(modified); n > lim.MaxBytes {
			return fmt.Errorf("%w: modified is %d bytes, limit %d", ErrInputTooLarge, n, lim.MaxBytes)
		}
	}
	if lim.MaxLines > 0 {
		if n := strings.Count(original, "\n") + 1; n > lim.MaxLines {
			return fmt.Errorf("%w: original has %d lines, limit %d", ErrInputTooLarge, n, lim.MaxLines)
		}
		if n := strings.Count(modified, "\n") + 1; n > lim.MaxLines {
			return fmt.Errorf("%w: modified has %d lines, limit %d", ErrInputTooLarge, n, lim.MaxLines)
		}
	}
	return nil
}
