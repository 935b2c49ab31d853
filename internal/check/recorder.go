// Package check accumulates the pass/fail verdicts produced while a
// conformance suite runs against a target server.
package check

import "sync"

// Outcome is a single named verdict. Outcomes are immutable once recorded.
type Outcome struct {
	Description string
	Passed      bool
}

// Tally summarises the outcome log.
type Tally struct {
	Passed int
	Failed int
	Total  int
}

// Recorder holds an append-only log of outcomes. Outcomes are never mutated
// or removed; the tally is derived from the log so that
// total == passed + failed always holds.
type Recorder struct {
	mu       sync.Mutex
	outcomes []Outcome
	listener func(Outcome)
}

// Option configures a Recorder.
type Option func(*Recorder)

// WithListener arranges for fn to be called with each outcome as it is
// recorded, before Record returns.
func WithListener(fn func(Outcome)) Option {
	return func(r *Recorder) {
		r.listener = fn
	}
}

// NewRecorder creates an empty Recorder.
func NewRecorder(options ...Option) *Recorder {
	r := &Recorder{}
	for _, opt := range options {
		opt(r)
	}
	return r
}

// Record appends an outcome describing whether condition held.
func (r *Recorder) Record(description string, condition bool) {
	o := Outcome{Description: description, Passed: condition}

	r.mu.Lock()
	r.outcomes = append(r.outcomes, o)
	listener := r.listener
	r.mu.Unlock()

	if listener != nil {
		listener(o)
	}
}

// Outcomes returns a copy of the outcome log in recording order.
func (r *Recorder) Outcomes() []Outcome {
	r.mu.Lock()
	defer r.mu.Unlock()

	outcomes := make([]Outcome, len(r.outcomes))
	copy(outcomes, r.outcomes)
	return outcomes
}

// Tally derives the summary counts from the outcome log. It is stable once
// no further outcomes are recorded.
func (r *Recorder) Tally() Tally {
	r.mu.Lock()
	defer r.mu.Unlock()

	t := Tally{Total: len(r.outcomes)}
	for i := range r.outcomes {
		if r.outcomes[i].Passed {
			t.Passed++
		} else {
			t.Failed++
		}
	}
	return t
}
