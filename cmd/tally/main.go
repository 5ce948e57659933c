package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"github.com/chriscorrea/tally/internal/app"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// buildConfig constructs an app.Config from command flags and arguments
func buildConfig(cmd *cobra.Command, args []string) (app.Config, error) {
	// get flag values
	lines, _ := cmd.Flags().GetBool("lines")
	words, _ := cmd.Flags().GetBool("words")
	chars, _ := cmd.Flags().GetBool("chars")
	bytesFlag, _ := cmd.Flags().GetBool("bytes")
	tokens, _ := cmd.Flags().GetBool("tokens")
	quiet, _ := cmd.Flags().GetBool("quiet")
	debug, _ := cmd.Flags().GetBool("debug")

	// positional arguments are sources; none means stdin
	sources := args
	if len(sources) == 0 {
		sources = []string{"-"}
	}

	// return constructed config; default-counter resolution happens in app.Run
	return app.Config{
		Sources: sources,
		Select: app.Selection{
			Lines:  lines,
			Words:  words,
			Chars:  chars,
			Bytes:  bytesFlag,
			Tokens: tokens,
		},
		Quiet: quiet,
		Debug: debug,
	}, nil
}

// setupLogger configures the default slog logger based on debug mode
func setupLogger(debug bool) {
	var level slog.Level
	if debug {
		level = slog.LevelDebug
	} else {
		level = slog.LevelError
	}

	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	slog.SetDefault(slog.New(handler))
}

// readingFromTerminal reports whether the run would sit waiting on an
// interactive stdin, so we can tell the user instead of appearing hung.
func readingFromTerminal(sources []string) bool {
	for _, s := range sources {
		if s != "-" && s != "" {
			return false
		}
	}
	return term.IsTerminal(int(os.Stdin.Fd()))
}

var rootCmd = &cobra.Command{
	Use:   "tally [files...]",
	Short: "Count lines, words, characters, and bytes",
	Long: `Tally counts lines, words, characters, bytes, and tokens in files, URLs,
or standard input, streaming each source in a single pass.

With no counting flags, tally prints line, word, and byte counts, wc-style.

Examples:
  tally file.txt
  tally -l -w *.md
  cat notes.txt | tally -m
  tally --tokens https://example.com/article.txt`,
	RunE: func(cmd *cobra.Command, args []string) error {
		// build config from flags and arguments
		config, err := buildConfig(cmd, args)
		if err != nil {
			return fmt.Errorf("configuration error: %w", err)
		}

		// configure logging pending debug flag
		setupLogger(config.Debug)

		// create context with signal handling for graceful shutdown
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()

		if !config.Quiet && readingFromTerminal(config.Sources) {
			fmt.Fprintln(os.Stderr, "reading from standard input; press Ctrl-D to end")
		}

		// run the app; on partial failure counts for the readable
		// sources still come back alongside the error
		result, err := app.Run(ctx, config)
		fmt.Print(result)
		if err != nil {
			return fmt.Errorf("tally failed: %w", err)
		}

		return nil
	},
}

func init() {
	// counting flags; any combination is allowed, wc-style
	rootCmd.Flags().BoolP("lines", "l", false, "Count newline bytes (line terminators)")
	rootCmd.Flags().BoolP("words", "w", false, "Count whitespace-delimited words")
	rootCmd.Flags().BoolP("chars", "m", false, "Count UTF-8 characters")
	rootCmd.Flags().BoolP("bytes", "c", false, "Count bytes")
	rootCmd.Flags().BoolP("tokens", "t", false, "Count cl100k_base tokens (buffers the input)")

	// other flags
	rootCmd.Flags().BoolP("quiet", "q", false, "Suppress warnings")
	rootCmd.Flags().BoolP("debug", "D", false, "Enable debug logging")
	_ = rootCmd.Flags().MarkHidden("debug")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
