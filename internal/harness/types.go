package harness

// TraceEvent records a single executed check: the operation, its
// operands, the wanted and computed answers, and a 1-based sequence
// number giving the evaluation order.
type TraceEvent struct {
	Op   string `json:"op"`
	X    string `json:"x"`
	Y    string `json:"y,omitempty"`
	Want string `json:"want"`
	Got  string `json:"got"`
	Pass bool   `json:"pass"`
	Seq  int64  `json:"seq"`
}

// Result is the outcome of a scenario execution.
type Result struct {
	// Pass indicates overall scenario success.
	// True if every check computed the answer it wanted.
	Pass bool `json:"pass"`

	// Trace contains one event per check, in evaluation order.
	// Used for golden comparison.
	Trace []TraceEvent `json:"trace"`

	// Errors contains one message per failed check.
	// Empty if Pass is true.
	Errors []string `json:"errors,omitempty"`
}

// NewResult creates a new passing result.
// Used as the starting point for scenario execution.
func NewResult() *Result {
	return &Result{
		Pass:   true,
		Trace:  []TraceEvent{},
		Errors: []string{},
	}
}

// AddError adds a failure message and marks the result as failed.
func (r *Result) AddError(err string) {
	r.Errors = append(r.Errors, err)
	r.Pass = false
}

// AddCheckTrace appends a check event to the trace.
func (r *Result) AddCheckTrace(event TraceEvent) {
	r.Trace = append(r.Trace, event)
}
