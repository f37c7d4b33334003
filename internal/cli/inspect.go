package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/pregame/game"
	"github.com/roach88/pregame/notation"
)

// InspectResult describes one position.
type InspectResult struct {
	Notation  string `json:"notation"`
	Canonical string `json:"canonical"`
	Digest    string `json:"digest"`
	NumLeft   int    `json:"num_left"`
	NumRight  int    `json:"num_right"`
	Birthday  int    `json:"birthday"`
	Size      int    `json:"size"`
	Outcome   string `json:"outcome"`
}

// NewInspectCommand creates the inspect command.
func NewInspectCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inspect <position>",
		Short: "Describe a position",
		Long: `Describe a position: canonical notation, digest, option counts,
birthday, node count, and outcome class.

Examples:
  pregame inspect "{0|*}"
  pregame inspect "*2" --format json`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInspect(rootOpts, args[0], cmd)
		},
	}

	return cmd
}

func runInspect(opts *RootOptions, arg string, cmd *cobra.Command) error {
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

	result := InspectResult{
		Notation:  notation.Format(g),
		Canonical: notation.Canonical(g),
		Digest:    g.Digest().String(),
		NumLeft:   g.NumLeft(),
		NumRight:  g.NumRight(),
		Birthday:  game.Birthday(g),
		Size:      game.Size(g),
		Outcome:   game.OutcomeOf(g).String(),
	}

	if opts.Format == "json" {
		return formatter.Success(result)
	}

	w := formatter.Writer
	fmt.Fprintf(w, "notation:  %s\n", result.Notation)
	fmt.Fprintf(w, "canonical: %s\n", result.Canonical)
	fmt.Fprintf(w, "digest:    %s\n", result.Digest)
	fmt.Fprintf(w, "options:   %d left, %d right\n", result.NumLeft, result.NumRight)
	fmt.Fprintf(w, "birthday:  %d\n", result.Birthday)
	fmt.Fprintf(w, "size:      %d\n", result.Size)
	fmt.Fprintf(w, "outcome:   %s\n", result.Outcome)
	return nil
}
