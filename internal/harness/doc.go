// Package harness runs YAML conformance scenarios against the
// comparison engine.
//
// # Scenario Format
//
// Scenarios are defined in YAML files with the following structure:
//
//	name: scenario_name
//	description: "What this scenario validates"
//	positions:
//	  - name: zero
//	    notation: "0"
//	  - name: star
//	    notation: "*"
//	  - name: minus-star
//	    neg: star
//	  - name: star-plus-star
//	    add: [star, star]
//	checks:
//	  - op: compare
//	    x: star
//	    y: zero
//	    want: fuzzy
//	  - op: outcome
//	    x: star-plus-star
//	    want: second
//
// Each position is defined by exactly one of notation, neg, add or sub;
// neg, add and sub name previously defined positions, so a scenario
// reads top to bottom like a construction.
//
// # Check Operations
//
// The following check ops are supported:
//
//   - compare: full classification, want is lt, equiv, gt or fuzzy
//   - outcome: who wins under optimal play, want is first, second, left or right
//   - le, lf, lt, equiv, fuzzy: a single relation, want is "true" or "false"
//
// # Deterministic Testing
//
// Checks are evaluated in declaration order with 1-based sequence
// numbers and all comparisons routed through one fresh cache, so a
// scenario produces the identical trace on every run. RunWithGolden
// pins that trace to a golden file; engine regressions show up as
// diffs.
//
// # Usage
//
// Load and run a scenario:
//
//	scenario, err := harness.LoadScenario("testdata/scenarios/star-facts.yaml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	result, err := harness.Run(scenario)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if !result.Pass {
//	    for _, msg := range result.Errors {
//	        log.Println(msg)
//	    }
//	}
package harness
