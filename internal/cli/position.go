package cli

import (
	"errors"
	"fmt"

	"github.com/roach88/pregame/game"
	"github.com/roach88/pregame/notation"
)

// parseGameArg parses a position given on the command line.
// Bad notation is a command error (exit code 2), reported with the
// parse offset when available.
func parseGameArg(arg string) (*game.Game, error) {
	g, err := notation.Parse(arg)
	if err != nil {
		var perr *notation.ParseError
		if errors.As(err, &perr) {
			return nil, WrapExitError(ExitCommandError, fmt.Sprintf("bad position %q at offset %d", arg, perr.Offset), err)
		}
		return nil, WrapExitError(ExitCommandError, fmt.Sprintf("bad position %q", arg), err)
	}
	return g, nil
}
