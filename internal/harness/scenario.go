package harness

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/roach88/pregame/game"
)

// Scenario defines a conformance test scenario.
// Scenarios build a set of named positions and assert on the answers
// the comparison engine gives for them.
type Scenario struct {
	// Name uniquely identifies this scenario. It doubles as the golden
	// file name under testdata/golden.
	Name string `yaml:"name"`

	// Description explains what this scenario validates.
	Description string `yaml:"description"`

	// Positions defines the named positions the checks refer to.
	// Definitions are processed in order, so derived positions may only
	// name positions declared before them.
	Positions []PositionDef `yaml:"positions"`

	// Checks contains the assertions to evaluate, in order.
	Checks []Check `yaml:"checks"`
}

// PositionDef binds a name to a position. Exactly one of Notation, Neg,
// Add or Sub supplies the position.
type PositionDef struct {
	// Name is the identifier checks and later definitions use.
	Name string `yaml:"name"`

	// Notation is a game expression such as "{0|*}", "*2" or "3/4".
	Notation string `yaml:"notation,omitempty"`

	// Neg names an earlier position to negate.
	Neg string `yaml:"neg,omitempty"`

	// Add names exactly two earlier positions to sum.
	Add []string `yaml:"add,omitempty"`

	// Sub names exactly two earlier positions to subtract.
	Sub []string `yaml:"sub,omitempty"`
}

// Check asserts one engine answer.
type Check struct {
	// Op selects the operation: compare, outcome, le, lf, lt, equiv or
	// fuzzy.
	Op string `yaml:"op"`

	// X is the first operand. Every op takes it.
	X string `yaml:"x"`

	// Y is the second operand. Required for every op except outcome.
	Y string `yaml:"y,omitempty"`

	// Want is the expected answer: an ordering name for compare, an
	// outcome name for outcome, "true" or "false" for the relations.
	Want string `yaml:"want"`
}

// Check op constants.
const (
	CheckCompare = "compare"
	CheckOutcome = "outcome"
	CheckLe      = "le"
	CheckLf      = "lf"
	CheckLt      = "lt"
	CheckEquiv   = "equiv"
	CheckFuzzy   = "fuzzy"
)

// LoadScenario reads and parses a scenario YAML file.
// Returns an error if the file doesn't exist, is malformed,
// contains unknown fields (typos), or is missing required fields.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario file: %w", err)
	}

	// Parse YAML with strict field validation (catches typos like "check:" vs "checks:")
	var scenario Scenario
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&scenario); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := validateScenario(&scenario); err != nil {
		return nil, fmt.Errorf("invalid scenario: %w", err)
	}

	return &scenario, nil
}

// LoadDir loads every scenario in dir, in file name order. Files ending
// in .yaml or .yml count as scenarios; everything else is skipped.
func LoadDir(dir string) ([]*Scenario, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario directory: %w", err)
	}

	var paths []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		switch filepath.Ext(entry.Name()) {
		case ".yaml", ".yml":
			paths = append(paths, filepath.Join(dir, entry.Name()))
		}
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("no scenario files found in %s", dir)
	}

	scenarios := make([]*Scenario, 0, len(paths))
	for _, path := range paths {
		scenario, err := LoadScenario(path)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", filepath.Base(path), err)
		}
		scenarios = append(scenarios, scenario)
	}
	return scenarios, nil
}

// validateScenario checks that required fields are present and valid.
func validateScenario(s *Scenario) error {
	if s.Name == "" {
		return fmt.Errorf("name is required")
	}

	if s.Description == "" {
		return fmt.Errorf("description is required")
	}

	if len(s.Positions) == 0 {
		return fmt.Errorf("positions list is required and must be non-empty")
	}

	if len(s.Checks) == 0 {
		return fmt.Errorf("checks list is required and must be non-empty")
	}

	// Validate definitions in order so references only see earlier names
	defined := make(map[string]bool, len(s.Positions))
	for i, def := range s.Positions {
		if err := validatePosition(i, &def, defined); err != nil {
			return err
		}
		defined[def.Name] = true
	}

	for i, check := range s.Checks {
		if err := validateCheck(i, &check, defined); err != nil {
			return err
		}
	}

	return nil
}

// validatePosition validates a single position definition against the
// names defined before it.
func validatePosition(index int, def *PositionDef, defined map[string]bool) error {
	if def.Name == "" {
		return fmt.Errorf("positions[%d]: name is required", index)
	}
	if defined[def.Name] {
		return fmt.Errorf("positions[%d]: duplicate position name %q", index, def.Name)
	}

	sources := 0
	if def.Notation != "" {
		sources++
	}
	if def.Neg != "" {
		sources++
	}
	if len(def.Add) > 0 {
		sources++
	}
	if len(def.Sub) > 0 {
		sources++
	}
	if sources != 1 {
		return fmt.Errorf("positions[%d]: exactly one of notation, neg, add or sub is required", index)
	}

	switch {
	case def.Neg != "":
		if !defined[def.Neg] {
			return fmt.Errorf("positions[%d]: neg references undefined position %q", index, def.Neg)
		}
	case len(def.Add) > 0:
		if len(def.Add) != 2 {
			return fmt.Errorf("positions[%d]: add requires exactly two position names", index)
		}
		for _, name := range def.Add {
			if !defined[name] {
				return fmt.Errorf("positions[%d]: add references undefined position %q", index, name)
			}
		}
	case len(def.Sub) > 0:
		if len(def.Sub) != 2 {
			return fmt.Errorf("positions[%d]: sub requires exactly two position names", index)
		}
		for _, name := range def.Sub {
			if !defined[name] {
				return fmt.Errorf("positions[%d]: sub references undefined position %q", index, name)
			}
		}
	}

	return nil
}

// validateCheck validates a single check based on its op.
func validateCheck(index int, c *Check, defined map[string]bool) error {
	if c.Op == "" {
		return fmt.Errorf("checks[%d]: op is required", index)
	}
	if c.X == "" {
		return fmt.Errorf("checks[%d]: x is required", index)
	}
	if !defined[c.X] {
		return fmt.Errorf("checks[%d]: x references undefined position %q", index, c.X)
	}
	if c.Want == "" {
		return fmt.Errorf("checks[%d]: want is required", index)
	}

	switch c.Op {
	case CheckOutcome:
		if c.Y != "" {
			return fmt.Errorf("checks[%d]: y is not allowed for outcome", index)
		}
		if _, err := game.ParseOutcome(c.Want); err != nil {
			return fmt.Errorf("checks[%d]: %v", index, err)
		}
	case CheckCompare:
		if err := validateCheckY(index, c, defined); err != nil {
			return err
		}
		if _, err := game.ParseOrdering(c.Want); err != nil {
			return fmt.Errorf("checks[%d]: %v", index, err)
		}
	case CheckLe, CheckLf, CheckLt, CheckEquiv, CheckFuzzy:
		if err := validateCheckY(index, c, defined); err != nil {
			return err
		}
		if c.Want != "true" && c.Want != "false" {
			return fmt.Errorf("checks[%d]: want must be \"true\" or \"false\" for %s", index, c.Op)
		}
	default:
		return fmt.Errorf("checks[%d]: unknown op %q", index, c.Op)
	}

	return nil
}

func validateCheckY(index int, c *Check, defined map[string]bool) error {
	if c.Y == "" {
		return fmt.Errorf("checks[%d]: y is required for %s", index, c.Op)
	}
	if !defined[c.Y] {
		return fmt.Errorf("checks[%d]: y references undefined position %q", index, c.Y)
	}
	return nil
}
