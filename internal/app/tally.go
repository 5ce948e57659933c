// Package app contains the core application logic for the tally CLI tool.
// It handles the main business logic separated from CLI concerns.
package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/chriscorrea/tally/internal/counter"
	"github.com/chriscorrea/tally/internal/display"
	"github.com/chriscorrea/tally/internal/scan"
	"github.com/chriscorrea/tally/internal/source"
)

// Selection is the set of enabled counters.
type Selection struct {
	Lines  bool
	Words  bool
	Chars  bool
	Bytes  bool
	Tokens bool
}

// none reports whether no counter is selected.
func (s Selection) none() bool {
	return !s.Lines && !s.Words && !s.Chars && !s.Bytes && !s.Tokens
}

// Resolve returns the selection to use for a run: the explicit selection,
// or the default set {lines, words, bytes} when nothing was selected.
// Characters and tokens are opt-in only. Resolution is a pure computation
// performed once before any scanning begins.
func (s Selection) Resolve() Selection {
	if s.none() {
		return Selection{Lines: true, Words: true, Bytes: true}
	}
	return s
}

// Kinds returns the enabled counter kinds in display order:
// lines, words, characters, bytes, tokens.
func (s Selection) Kinds() []counter.Kind {
	var kinds []counter.Kind
	if s.Lines {
		kinds = append(kinds, counter.Lines)
	}
	if s.Words {
		kinds = append(kinds, counter.Words)
	}
	if s.Chars {
		kinds = append(kinds, counter.Chars)
	}
	if s.Bytes {
		kinds = append(kinds, counter.Bytes)
	}
	if s.Tokens {
		kinds = append(kinds, counter.Tokens)
	}
	return kinds
}

// Config holds all configuration options for the tally application.
type Config struct {
	Sources []string  // file paths, URLs, or "-" for stdin
	Select  Selection // enabled counters (resolved in Run)
	Quiet   bool      // suppress warnings
	Debug   bool
}

// Result holds the final totals for one source.
type Result struct {
	Label       string   // source name for display; empty for stdin
	Counts      []uint64 // parallel to Selection.Kinds() of the resolved selection
	InvalidUTF8 bool     // only meaningful when the char counter was enabled
}

// Run executes the main tally application logic with the given configuration
// and returns the formatted output.
//
// Each source is scanned in a single pass: open, feed fixed-size chunks to
// the enabled counters, read totals once at end-of-stream. With multiple
// sources a failing source is reported to stderr and skipped; the formatted
// output for the sources that could be read is still returned, together
// with a non-nil error so the process exits nonzero, wc-style. A read error
// never yields partial counts for its source.
//
// ctx allows for cancellation and timeout control of URL fetches.
func Run(ctx context.Context, cfg Config) (string, error) {
	return run(ctx, cfg, os.Stderr)
}

func run(ctx context.Context, cfg Config, errw io.Writer) (string, error) {
	sources := cfg.Sources
	if len(sources) == 0 {
		sources = []string{"-"}
	}

	sel := cfg.Select.Resolve()
	kinds := sel.Kinds()
	slog.Debug("Resolved counter selection", "kinds", len(kinds), "sources", len(sources))

	var results []Result
	var sizes []int64
	var firstErr error
	failed := 0

	for _, src := range sources {
		res, hint, err := countSource(ctx, src, kinds)
		if err != nil {
			failed++
			if firstErr == nil {
				firstErr = err
			}
			// errors are not warnings; quiet never hides them
			fmt.Fprintf(errw, "tally: %v\n", err)
			continue
		}

		if res.InvalidUTF8 && !cfg.Quiet {
			if res.Label == "" {
				fmt.Fprintln(errw, "Warning: Invalid UTF-8 detected")
			} else {
				fmt.Fprintf(errw, "Warning: Invalid UTF-8 detected in file %s\n", res.Label)
			}
		}

		results = append(results, res)
		sizes = append(sizes, hint)
	}

	if len(results) == 0 {
		if len(sources) == 1 {
			return "", firstErr
		}
		return "", fmt.Errorf("no sources could be read: %w", firstErr)
	}

	out := format(results, sizes, len(kinds))
	if failed > 0 {
		return out, fmt.Errorf("%d of %d sources could not be read", failed, len(sources))
	}
	return out, nil
}

// countSource scans one source and returns its totals plus the size hint
// used for output-width formatting.
func countSource(ctx context.Context, name string, kinds []counter.Kind) (Result, int64, error) {
	rc, hint, err := source.Open(ctx, name)
	if err != nil {
		return Result{}, 0, err
	}
	defer rc.Close()

	// counters live for exactly one source
	counters := make([]counter.Counter, 0, len(kinds))
	var chars *counter.CharCounter
	for _, kind := range kinds {
		switch kind {
		case counter.Bytes:
			if hint >= 0 {
				counters = append(counters, counter.NewByteCounterFromSize(hint))
			} else {
				counters = append(counters, counter.NewByteCounter())
			}
		case counter.Chars:
			chars = counter.NewCharCounter()
			counters = append(counters, chars)
		default:
			c, err := counter.New(kind)
			if err != nil {
				return Result{}, 0, fmt.Errorf("failed to create %s counter: %w", kind, err)
			}
			counters = append(counters, c)
		}
	}

	if err := scan.New(rc, counters).Run(); err != nil {
		return Result{}, 0, fmt.Errorf("failed to read %q: %w", name, err)
	}

	counts := make([]uint64, len(counters))
	for i, c := range counters {
		counts[i] = c.Total()
	}

	res := Result{Label: displayLabel(name), Counts: counts}
	if chars != nil {
		res.InvalidUTF8 = chars.Invalid()
	}
	return res, hint, nil
}

// format renders per-source rows plus a total row when more than one source
// was counted, wc-style.
func format(results []Result, sizes []int64, numCounts int) string {
	width := display.Width(sizes, numCounts)

	var out strings.Builder
	for _, res := range results {
		out.WriteString(display.FormatRow(display.Row{Counts: res.Counts, Label: res.Label}, width))
		out.WriteByte('\n')
	}

	if len(results) > 1 {
		totals := make([]uint64, numCounts)
		for _, res := range results {
			for i, c := range res.Counts {
				totals[i] += c
			}
		}
		out.WriteString(display.FormatRow(display.Row{Counts: totals, Label: "total"}, width))
		out.WriteByte('\n')
	}

	return out.String()
}

// displayLabel returns the output label for a source; stdin gets none.
func displayLabel(name string) string {
	if name == "-" || name == "" {
		return ""
	}
	return name
}
