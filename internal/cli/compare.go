package cli

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/roach88/pregame/game"
	"github.com/roach88/pregame/internal/analyze"
	"github.com/roach88/pregame/internal/book"
	"github.com/roach88/pregame/internal/store"
	"github.com/roach88/pregame/notation"
)

// CompareOptions holds flags for the compare command.
type CompareOptions struct {
	*RootOptions
	Database string
}

// CompareResult is the classification of one pair.
type CompareResult struct {
	X        string `json:"x"`
	Y        string `json:"y"`
	Ordering string `json:"ordering"`
	Cached   bool   `json:"cached"` // answered from the database without recomputing
	RunID    string `json:"run_id,omitempty"`
}

// NewCompareCommand creates the compare command.
func NewCompareCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &CompareOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "compare <x> <y>",
		Short: "Classify the ordering of two positions",
		Long: `Classify x against y as one of lt, equiv, gt, or fuzzy.

With --db, a previously recorded answer is reused and new answers are
recorded under a fresh run.

Examples:
  pregame compare 0 "{0|}"
  pregame compare "*" 0 --db ./analysis.db`,
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCompare(opts, args[0], args[1], cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Database, "db", "", "path to SQLite analysis database")

	return cmd
}

func runCompare(opts *CompareOptions, xArg, yArg string, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	x, err := parseGameArg(xArg)
	if err != nil {
		_ = formatter.Error(ErrCodeNotation, err.Error(), nil)
		return err
	}
	y, err := parseGameArg(yArg)
	if err != nil {
		_ = formatter.Error(ErrCodeNotation, err.Error(), nil)
		return err
	}

	result := CompareResult{
		X: notation.Canonical(x),
		Y: notation.Canonical(y),
	}

	if opts.Database == "" {
		result.Ordering = game.Compare(x, y).String()
		return outputCompare(formatter, result)
	}

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

	ctx := cmd.Context()
	ordering, found, err := st.ReadComparison(ctx, x.Digest().String(), y.Digest().String())
	if err != nil {
		wrapped := WrapExitError(ExitCommandError, "failed to read comparison", err)
		_ = formatter.Error(ErrCodeStore, wrapped.Error(), nil)
		return wrapped
	}
	if found {
		formatter.VerboseLog("answer found in %s", opts.Database)
		result.Ordering = ordering.String()
		result.Cached = true
		return outputCompare(formatter, result)
	}

	runner := analyze.New(analyze.UUIDv7Generator{}, analyze.WithStore(st))
	run, err := runner.AnalyzePair(ctx,
		book.Position{Name: result.X, Notation: result.X, Game: x},
		book.Position{Name: result.Y, Notation: result.Y, Game: y},
	)
	if err != nil {
		wrapped := WrapExitError(ExitCommandError, "failed to record comparison", err)
		_ = formatter.Error(ErrCodeStore, wrapped.Error(), nil)
		return wrapped
	}

	result.Ordering = run.Pairs[0].Ordering.String()
	result.RunID = run.RunID
	return outputCompare(formatter, result)
}

func outputCompare(formatter *OutputFormatter, result CompareResult) error {
	if formatter.Format == "json" {
		return formatter.Success(result)
	}
	fmt.Fprintf(formatter.Writer, "%s vs %s: %s\n", result.X, result.Y, result.Ordering)
	return nil
}
