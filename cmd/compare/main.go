// Comparison tool for validating textdiff output quality against other diff implementations
package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/dacharyc/textdiff"
	godiff "github.com/sergi/go-diff/diffmatchpatch"
)

func main() {
	testCases := []struct {
		name string
		a, b string
	}{
		{
			name: "Single line edit",
			a:    "hello world",
			b:    "hello there",
		},
		{
			name: "Scattered changes",
			a:    "alpha\nbeta\ngamma\ndelta\nepsilon",
			b:    "alpha\nBETA\ngamma\ndelta\nzeta",
		},
		{
			name: "Code-like content",
			a:    "func main() {\n\tfmt.Println(\"hello\")\n}",
			b:    "func main() {\n\tlog.Printf(\"world\")\n}",
		},
		{
			name: "Repeated blank lines",
			a:    "a\n\nb\n\nc",
			b:    "a\n\nb\n\nx\n\nc",
		},
	}

	largeA := generateLargeText(500, 0)
	largeB := generateLargeText(500, 42)
	testCases = append(testCases, struct {
		name string
		a, b string
	}{
		name: "Large file (500 lines, scattered changes)",
		a:    strings.Join(largeA, "\n"),
		b:    strings.Join(largeB, "\n"),
	})

	for _, tc := range testCases {
		fmt.Printf("\n=== %s ===\n", tc.name)

		start := time.Now()
		res, err := textdiff.Compare(tc.a, tc.b, textdiff.Options{})
		ourTime := time.Since(start)
		if err != nil {
			fmt.Printf("textdiff error: %v\n", err)
			continue
		}

		dmp := godiff.New()
		start = time.Now()
		goDiffs := dmp.DiffMain(tc.a, tc.b, true)
		goDiffTime := time.Since(start)

		ourStats := analyzeTextdiff(res.Lines)
		goDiffStats := analyzeGoDiff(goDiffs)

		fmt.Printf("\ntextdiff: %v\n", ourTime)
		fmt.Printf("  Lines: %d (Unchanged: %d, Removed: %d, Added: %d)\n",
			ourStats.total, ourStats.unchanged, ourStats.removed, ourStats.added)
		fmt.Printf("  Change regions: %d, similarity: %.0f%%\n",
			ourStats.changeRegions, res.Stats.Similarity)

		fmt.Printf("\ngo-diff:  %v\n", goDiffTime)
		fmt.Printf("  Operations: %d (Equal: %d, Delete: %d, Insert: %d)\n",
			goDiffStats.total, goDiffStats.unchanged, goDiffStats.removed, goDiffStats.added)
		fmt.Printf("  Change regions: %d\n", goDiffStats.changeRegions)

		if len(res.Lines) <= 20 {
			fmt.Println("\ntextdiff output:")
			fmt.Print(textdiff.FormatUnified(textdiff.PairForUnified(res.Lines, true), textdiff.DefaultMarkers()))
		}
	}
}

type diffStats struct {
	total, unchanged, removed, added int
	changeRegions                    int
}

func analyzeTextdiff(lines []textdiff.Line) diffStats {
	var s diffStats
	s.total = len(lines)
	inChange := false
	for _, ln := range lines {
		switch ln.Type {
		case textdiff.Unchanged:
			s.unchanged++
			inChange = false
		case textdiff.Removed:
			s.removed++
			if !inChange {
				s.changeRegions++
				inChange = true
			}
		case textdiff.Added:
			s.added++
			if !inChange {
				s.changeRegions++
				inChange = true
			}
		}
	}
	return s
}

func analyzeGoDiff(diffs []godiff.Diff) diffStats {
	var s diffStats
	s.total = len(diffs)
	inChange := false
	for _, d := range diffs {
		switch d.Type {
		case godiff.DiffEqual:
			s.unchanged++
			inChange = false
		case godiff.DiffDelete:
			s.removed++
			if !inChange {
				s.changeRegions++
				inChange = true
			}
		case godiff.DiffInsert:
			s.added++
			if !inChange {
				s.changeRegions++
				inChange = true
			}
		}
	}
	return s
}

func generateLargeText(lines int, seed int) []string {
	words := []string{"the", "quick", "brown", "fox", "jumps", "over", "lazy", "dog",
		"func", "main", "return", "if", "else", "for", "range", "var", "const",
		"import", "package", "type", "struct", "interface", "map", "slice"}

	result := make([]string, lines)
	for i := 0; i < lines; i++ {
		lineWords := make([]string, 5+i%3)
		for j := range lineWords {
			idx := (i*7 + j*13 + seed) % len(words)
			lineWords[j] = words[idx]
		}
		result[i] = strings.Join(lineWords, " ")
	}

	for i := seed % 10; i < lines; i += 10 + seed%5 {
		result[i] = "CHANGED LINE " + fmt.Sprint(i)
	}

	return result
}
