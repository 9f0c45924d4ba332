// Command textdiff compares two text files and renders the differences
// to the terminal, either as a unified stream or side by side.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/dacharyc/textdiff"
)

type cliOptions struct {
	mode          string
	charDiff      bool
	noColor       bool
	showStats     bool
	width         int
	sortLines     bool
	ignoreCase    bool
	ignoreSpace   bool
	ignoreNewline bool
	maxLines      int
	maxBytes      int
}

func main() {
	var opts cliOptions

	rootCmd := &cobra.Command{
		Use:          "textdiff <original> <modified>",
		Short:        "Compare two text files",
		Args:         cobra.ExactArgs(2),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(args[0], args[1], opts)
		},
	}

	flags := rootCmd.Flags()
	flags.StringVarP(&opts.mode, "mode", "m", "unified", "Output layout: unified or side-by-side.")
	flags.BoolVarP(&opts.charDiff, "char-diff", "c", false, "Highlight character-level changes inside paired lines.")
	flags.BoolVar(&opts.noColor, "no-color", false, "Disable colors; use prefix symbols and text markers instead.")
	flags.BoolVarP(&opts.showStats, "stats", "s", false, "Print summary statistics after the diff.")
	flags.IntVarP(&opts.width, "width", "w", 160, "Total output width for side-by-side layout.")
	flags.BoolVar(&opts.sortLines, "sort-lines", false, "Sort lines before comparing (content-set comparison).")
	flags.BoolVar(&opts.ignoreCase, "ignore-case", false, "Ignore case differences between lines.")
	flags.BoolVar(&opts.ignoreSpace, "ignore-whitespace", false, "Ignore leading and trailing whitespace on each line.")
	flags.BoolVar(&opts.ignoreNewline, "ignore-trailing-newlines", false, "Ignore a trailing newline at the end of input.")
	flags.IntVar(&opts.maxLines, "max-lines", 0, "Reject inputs with more than this many lines (0 = unlimited).")
	flags.IntVar(&opts.maxBytes, "max-bytes", 0, "Reject inputs larger than this many bytes (0 = unlimited).")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(originalPath, modifiedPath string, opts cliOptions) error {
	original, err := readInput(originalPath)
	if err != nil {
		return err
	}
	modified, err := readInput(modifiedPath)
	if err != nil {
		return err
	}

	sess := textdiff.NewSession(textdiff.Options{
		SortLines:              opts.sortLines,
		IgnoreCase:             opts.ignoreCase,
		IgnoreWhitespace:       opts.ignoreSpace,
		IgnoreTrailingNewlines: opts.ignoreNewline,
		Limits: textdiff.Limits{
			MaxLines: opts.maxLines,
			MaxBytes: opts.maxBytes,
		},
	})
	sess.SetOriginal(original)
	sess.SetModified(modified)

	done, err := sess.Compare()
	if err != nil {
		return err
	}
	<-done
	if sess.State() == textdiff.StateError {
		return sess.Err()
	}
	res := sess.Result()

	switch opts.mode {
	case "unified":
		renderUnified(os.Stdout, res.Lines, opts)
	case "side-by-side":
		renderSideBySide(os.Stdout, res.Lines, opts)
	default:
		return fmt.Errorf("unknown mode %q (want unified or side-by-side)", opts.mode)
	}

	if opts.showStats {
		printStats(os.Stdout, res)
	}

	if textdiff.HasDifferences(res) {
		os.Exit(1)
	}
	return nil
}

func readInput(path string) (textdiff.Input, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return textdiff.Input{}, err
	}
	info, err := os.Stat(path)
	if err != nil {
		return textdiff.Input{}, err
	}
	return textdiff.Input{
		Name:         path,
		Content:      string(data),
		Size:         info.Size(),
		LastModified: info.ModTime(),
	}, nil
}

func printStats(w io.Writer, res *textdiff.Result) {
	s := res.Stats
	fmt.Fprintf(w, "\n+%d -%d ~%d =%d, similarity %.0f%% (%s, %v)\n",
		s.Added, s.Removed, s.Modified, s.Unchanged, s.Similarity,
		res.Metadata.Algorithm, res.Metadata.ProcessingTime)
}
