package harness

import (
	"fmt"
	"strconv"

	"github.com/roach88/pregame/game"
	"github.com/roach88/pregame/notation"
)

// Run executes a scenario: it builds every declared position, evaluates
// the checks in order through a fresh comparison cache, and returns a
// Result with one trace event per check. Run itself errors only when the
// scenario is unusable, such as unparseable notation or a reference to a
// name that was never defined. A check whose computed answer differs
// from want fails the Result, not Run.
func Run(scenario *Scenario) (*Result, error) {
	positions, err := buildPositions(scenario.Positions)
	if err != nil {
		return nil, err
	}

	cache := game.NewCache()
	result := NewResult()
	for i, check := range scenario.Checks {
		got, err := evaluateCheck(cache, check, positions)
		if err != nil {
			return nil, fmt.Errorf("checks[%d]: %w", i, err)
		}
		pass := got == check.Want
		result.AddCheckTrace(TraceEvent{
			Op:   check.Op,
			X:    check.X,
			Y:    check.Y,
			Want: check.Want,
			Got:  got,
			Pass: pass,
			Seq:  int64(i + 1),
		})
		if !pass {
			result.AddError(fmt.Sprintf("checks[%d]: %s = %s, want %s", i, describeCheck(check), got, check.Want))
		}
	}

	return result, nil
}

// describeCheck renders a check like "compare(one, star)" or
// "outcome(star)" for failure messages.
func describeCheck(c Check) string {
	if c.Y == "" {
		return fmt.Sprintf("%s(%s)", c.Op, c.X)
	}
	return fmt.Sprintf("%s(%s, %s)", c.Op, c.X, c.Y)
}

// buildPositions evaluates the position definitions in order, so each
// derived definition sees every name declared before it.
func buildPositions(defs []PositionDef) (map[string]*game.Game, error) {
	positions := make(map[string]*game.Game, len(defs))
	for i, def := range defs {
		g, err := buildPosition(def, positions)
		if err != nil {
			return nil, fmt.Errorf("positions[%d] (%s): %w", i, def.Name, err)
		}
		positions[def.Name] = g
	}
	return positions, nil
}

func buildPosition(def PositionDef, positions map[string]*game.Game) (*game.Game, error) {
	switch {
	case def.Notation != "":
		return notation.Parse(def.Notation)
	case def.Neg != "":
		x, err := lookupPosition(positions, def.Neg)
		if err != nil {
			return nil, err
		}
		return game.Neg(x), nil
	case len(def.Add) > 0:
		if len(def.Add) != 2 {
			return nil, fmt.Errorf("add requires exactly two position names")
		}
		x, y, err := lookupPositionPair(positions, def.Add)
		if err != nil {
			return nil, err
		}
		return game.Add(x, y), nil
	case len(def.Sub) > 0:
		if len(def.Sub) != 2 {
			return nil, fmt.Errorf("sub requires exactly two position names")
		}
		x, y, err := lookupPositionPair(positions, def.Sub)
		if err != nil {
			return nil, err
		}
		return game.Sub(x, y), nil
	}
	return nil, fmt.Errorf("exactly one of notation, neg, add or sub is required")
}

func lookupPosition(positions map[string]*game.Game, name string) (*game.Game, error) {
	g, ok := positions[name]
	if !ok {
		return nil, fmt.Errorf("undefined position %q", name)
	}
	return g, nil
}

func lookupPositionPair(positions map[string]*game.Game, names []string) (*game.Game, *game.Game, error) {
	x, err := lookupPosition(positions, names[0])
	if err != nil {
		return nil, nil, err
	}
	y, err := lookupPosition(positions, names[1])
	if err != nil {
		return nil, nil, err
	}
	return x, y, nil
}

// evaluateCheck computes the answer for one check. Every binary op
// derives from a single cached comparison, so a scenario warms the cache
// the same way repeated engine queries would.
func evaluateCheck(cache *game.Cache, c Check, positions map[string]*game.Game) (string, error) {
	x, err := lookupPosition(positions, c.X)
	if err != nil {
		return "", err
	}
	if c.Op == CheckOutcome {
		return cache.Outcome(x).String(), nil
	}

	y, err := lookupPosition(positions, c.Y)
	if err != nil {
		return "", err
	}
	ordering := cache.Compare(x, y)
	switch c.Op {
	case CheckCompare:
		return ordering.String(), nil
	case CheckLe:
		return strconv.FormatBool(ordering == game.OrderLt || ordering == game.OrderEquiv), nil
	case CheckLf:
		return strconv.FormatBool(ordering == game.OrderLt || ordering == game.OrderFuzzy), nil
	case CheckLt:
		return strconv.FormatBool(ordering == game.OrderLt), nil
	case CheckEquiv:
		return strconv.FormatBool(ordering == game.OrderEquiv), nil
	case CheckFuzzy:
		return strconv.FormatBool(ordering == game.OrderFuzzy), nil
	}
	return "", fmt.Errorf("unknown op %q", c.Op)
}
