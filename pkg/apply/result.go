package apply

import "github.com/arthur-debert/edir/pkg/types"

// Process exit statuses
const (
	ExitOK        = 0
	ExitMixed     = 1
	ExitAllFailed = 2
	// ExitFatal is used when the run stops before the apply phase
	ExitFatal = 3
)

// Result collects the outcome of every attempted action in a run
type Result struct {
	Outcomes  []types.Outcome
	Succeeded int
	Failed    int
}

func (r *Result) add(o types.Outcome) {
	r.Outcomes = append(r.Outcomes, o)
	if o.Failed() {
		r.Failed++
	} else {
		r.Succeeded++
	}
}

// ExitCode maps the tally to a process exit status
func (r *Result) ExitCode() int {
	switch {
	case r.Failed == 0:
		return ExitOK
	case r.Succeeded > 0:
		return ExitMixed
	default:
		return ExitAllFailed
	}
}

// Failures returns only the failed outcomes
func (r *Result) Failures() []types.Outcome {
	var out []types.Outcome
	for _, o := range r.Outcomes {
		if o.Failed() {
			out = append(out, o)
		}
	}
	return out
}

// NewResult builds a tally from already known outcomes
func NewResult(outcomes ...types.Outcome) *Result {
	r := &Result{}
	for _, o := range outcomes {
		r.add(o)
	}
	return r
}
