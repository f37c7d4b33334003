package cli

import (
	"fmt"
	"log/slog"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/roach88/pregame/internal/analyze"
	"github.com/roach88/pregame/internal/book"
	"github.com/roach88/pregame/internal/store"
)

// AnalyzeOptions holds flags for the analyze command.
type AnalyzeOptions struct {
	*RootOptions
	Database string
	Tag      string

	// TokenGenerator allows overriding run token generation (for testing).
	// If nil, defaults to UUIDv7Generator.
	TokenGenerator analyze.TokenGenerator
}

// AnalyzePairSummary is one classified pair of an analysis run.
type AnalyzePairSummary struct {
	X        string `json:"x"`
	Y        string `json:"y"`
	Ordering string `json:"ordering"`
}

// AnalyzeResult summarizes an analysis run.
type AnalyzeResult struct {
	RunID     string               `json:"run_id"`
	Positions int                  `json:"positions"`
	Pairs     []AnalyzePairSummary `json:"pairs"`
	Counts    map[string]int       `json:"counts"`
}

// NewAnalyzeCommand creates the analyze command.
func NewAnalyzeCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &AnalyzeOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "analyze [dir]",
		Short: "Classify every pair of a position book",
		Long: `Run an all-pairs analysis over a position book. Every unordered pair
(self-pairs included) is classified under a fresh run token. Without a
directory, the embedded standard book is analyzed.

With --db, positions, comparisons, and the run itself are recorded.

Examples:
  pregame analyze
  pregame analyze ./positions --db ./analysis.db
  pregame analyze --tag number --format json`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := ""
			if len(args) == 1 {
				dir = args[0]
			}
			return runAnalyze(opts, dir, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Database, "db", "", "path to SQLite analysis database")
	cmd.Flags().StringVar(&opts.Tag, "tag", "", "only analyze positions carrying this tag")

	return cmd
}

func runAnalyze(opts *AnalyzeOptions, dir string, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	b, err := loadBook(dir)
	if err != nil {
		_ = formatter.Error(ErrCodeBook, err.Error(), nil)
		return WrapExitError(ExitCommandError, "failed to load book", err)
	}
	if opts.Tag != "" {
		b = &book.Book{Positions: b.WithTag(opts.Tag)}
	}
	if b.Len() == 0 {
		return NewExitError(ExitCommandError, "no positions to analyze")
	}

	tokens := opts.TokenGenerator
	if tokens == nil {
		tokens = analyze.UUIDv7Generator{}
	}

	runnerOpts := []analyze.Option{}
	if opts.Database != "" {
		st, err := store.Open(opts.Database)
		if err != nil {
			wrapped := WrapExitError(ExitCommandError, "failed to open database", err)
			_ = formatter.Error(ErrCodeStore, wrapped.Error(), nil)
			return wrapped
		}
		defer func() {
			if closeErr := st.Close(); closeErr != nil {
				slog.Error("error closing database", "error", closeErr)
			}
		}()
		runnerOpts = append(runnerOpts, analyze.WithStore(st))
	}

	runner := analyze.New(tokens, runnerOpts...)
	run, err := runner.AnalyzeBook(cmd.Context(), b)
	if err != nil {
		wrapped := WrapExitError(ExitFailure, "analysis failed", err)
		_ = formatter.Error(ErrCodeGeneric, wrapped.Error(), nil)
		return wrapped
	}

	result := AnalyzeResult{
		RunID:     run.RunID,
		Positions: run.Positions,
		Pairs:     make([]AnalyzePairSummary, 0, len(run.Pairs)),
		Counts:    map[string]int{},
	}
	for _, p := range run.Pairs {
		name := p.Ordering.String()
		result.Pairs = append(result.Pairs, AnalyzePairSummary{
			X:        p.XName,
			Y:        p.YName,
			Ordering: name,
		})
		result.Counts[name]++
	}

	if opts.Format == "json" {
		return formatter.Success(result)
	}

	tw := tabwriter.NewWriter(formatter.Writer, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "X\tY\tORDERING")
	for _, p := range result.Pairs {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", p.X, p.Y, p.Ordering)
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	fmt.Fprintf(formatter.Writer, "run %s: %d position(s), %d pair(s): %d lt, %d equiv, %d gt, %d fuzzy\n",
		result.RunID, result.Positions, len(result.Pairs),
		result.Counts["lt"], result.Counts["equiv"], result.Counts["gt"], result.Counts["fuzzy"])
	return nil
}
