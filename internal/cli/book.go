package cli

import (
	"errors"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/roach88/pregame/game"
	"github.com/roach88/pregame/internal/book"
	"github.com/roach88/pregame/notation"
)

// BookOptions holds flags for the book command.
type BookOptions struct {
	*RootOptions
	Tag string
}

// BookEntry is one listed position.
type BookEntry struct {
	Name        string   `json:"name"`
	Notation    string   `json:"notation"`
	Canonical   string   `json:"canonical"`
	Outcome     string   `json:"outcome"`
	Description string   `json:"description,omitempty"`
	Tags        []string `json:"tags,omitempty"`
}

// BookResult lists the positions of a compiled book.
type BookResult struct {
	Positions []BookEntry `json:"positions"`
	Total     int         `json:"total"`
}

// NewBookCommand creates the book command.
func NewBookCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &BookOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "book [dir]",
		Short: "List and validate a position book",
		Long: `Compile a directory of CUE position declarations and list the result.
Without a directory, the embedded standard book is listed.

Compilation validates every declaration against the schema and parses
its notation, so a clean listing doubles as validation.

Examples:
  pregame book
  pregame book ./positions --tag infinitesimal`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := ""
			if len(args) == 1 {
				dir = args[0]
			}
			return runBook(opts, dir, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Tag, "tag", "", "only list positions carrying this tag")

	return cmd
}

func runBook(opts *BookOptions, dir string, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	b, err := loadBook(dir)
	if err != nil {
		var cerr *book.CompileError
		if errors.As(err, &cerr) {
			_ = formatter.Error(ErrCodeBook, cerr.Error(), nil)
			return WrapExitError(ExitFailure, "book compilation failed", err)
		}
		_ = formatter.Error(ErrCodeBook, err.Error(), nil)
		return WrapExitError(ExitCommandError, "failed to load book", err)
	}

	positions := b.Positions
	if opts.Tag != "" {
		positions = b.WithTag(opts.Tag)
	}

	result := BookResult{
		Positions: make([]BookEntry, 0, len(positions)),
		Total:     len(positions),
	}
	for i := range positions {
		p := &positions[i]
		result.Positions = append(result.Positions, BookEntry{
			Name:        p.Name,
			Notation:    p.Notation,
			Canonical:   notation.Canonical(p.Game),
			Outcome:     game.OutcomeOf(p.Game).String(),
			Description: p.Description,
			Tags:        p.Tags,
		})
	}

	if opts.Format == "json" {
		return formatter.Success(result)
	}

	if result.Total == 0 {
		fmt.Fprintln(formatter.Writer, "No positions.")
		return nil
	}

	tw := tabwriter.NewWriter(formatter.Writer, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tNOTATION\tOUTCOME\tTAGS")
	for _, e := range result.Positions {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", e.Name, e.Notation, e.Outcome, strings.Join(e.Tags, ","))
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	fmt.Fprintf(formatter.Writer, "%d position(s)\n", result.Total)
	return nil
}

// loadBook compiles the book at dir, or the embedded standard book when
// dir is empty.
func loadBook(dir string) (*book.Book, error) {
	if dir == "" {
		return book.Standard()
	}
	return book.Load(dir)
}
