package game

import "fmt"

// Outcome classifies who wins a game under optimal play, assuming the
// player with no move loses.
type Outcome uint8

const (
	// OutcomeFirst means whoever moves first wins: the game is fuzzy
	// against zero, like Star.
	OutcomeFirst Outcome = iota
	// OutcomeSecond means whoever moves second wins: the game has value
	// zero.
	OutcomeSecond
	// OutcomeLeft means Left wins no matter who starts: the game is
	// strictly positive.
	OutcomeLeft
	// OutcomeRight means Right wins no matter who starts: the game is
	// strictly negative.
	OutcomeRight
)

var outcomeNames = [...]string{
	OutcomeFirst:  "first",
	OutcomeSecond: "second",
	OutcomeLeft:   "left",
	OutcomeRight:  "right",
}

// String returns the lowercase name: "first", "second", "left" or "right".
func (o Outcome) String() string {
	if int(o) < len(outcomeNames) {
		return outcomeNames[o]
	}
	return fmt.Sprintf("Outcome(%d)", uint8(o))
}

// ParseOutcome converts a name produced by String back to an Outcome.
func ParseOutcome(s string) (Outcome, error) {
	for i, name := range outcomeNames {
		if s == name {
			return Outcome(i), nil
		}
	}
	return 0, fmt.Errorf("unknown outcome %q (want first, second, left or right)", s)
}

// OutcomeOf maps the comparison of g against Zero onto the four outcome
// classes.
func OutcomeOf(g *Game) Outcome {
	return outcomeFromOrdering(Compare(g, zeroGame))
}

func outcomeFromOrdering(o Ordering) Outcome {
	switch o {
	case OrderGt:
		return OutcomeLeft
	case OrderLt:
		return OutcomeRight
	case OrderEquiv:
		return OutcomeSecond
	default:
		return OutcomeFirst
	}
}
