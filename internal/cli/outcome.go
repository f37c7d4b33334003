package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/pregame/game"
	"github.com/roach88/pregame/notation"
)

// OutcomeResult is the outcome classification of one position.
type OutcomeResult struct {
	Position string `json:"position"`
	Outcome  string `json:"outcome"`
}

// NewOutcomeCommand creates the outcome command.
func NewOutcomeCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "outcome <position>",
		Short: "Classify who wins a position",
		Long: `Classify a position into one of four outcome classes:

  left    Left wins regardless of who starts
  right   Right wins regardless of who starts
  first   whoever moves first wins
  second  whoever moves second wins

Examples:
  pregame outcome "*"
  pregame outcome "{1|-1}" --format json`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runOutcome(rootOpts, args[0], cmd)
		},
	}

	return cmd
}

func runOutcome(opts *RootOptions, arg string, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	g, err := parseGameArg(arg)
	if err != nil {
		_ = formatter.Error(ErrCodeNotation, err.Error(), nil)
		return err
	}

	result := OutcomeResult{
		Position: notation.Canonical(g),
		Outcome:  game.OutcomeOf(g).String(),
	}

	if opts.Format == "json" {
		return formatter.Success(result)
	}
	fmt.Fprintf(formatter.Writer, "%s: %s\n", result.Position, result.Outcome)
	return nil
}
