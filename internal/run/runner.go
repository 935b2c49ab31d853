// Package run sequences the conformance steps against a target server and
// aggregates their outcomes into a report and an exit code.
package run

import (
	"context"
	"io"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/akam1o/netconf-conformance/internal/check"
	"github.com/akam1o/netconf-conformance/internal/netconf"
	"github.com/akam1o/netconf-conformance/internal/report"
	"github.com/akam1o/netconf-conformance/internal/steps"
	"github.com/akam1o/netconf-conformance/internal/target"
)

var log = logrus.WithField("component", "run")

// Runner drives the full conformance suite. Steps execute strictly
// sequentially, each against its own session, so a fault in one step cannot
// contaminate another.
type Runner struct {
	tgt  *target.Config
	dial netconf.Dialer
	out  io.Writer
}

// Option configures a Runner.
type Option func(*Runner)

// WithDialer overrides how sessions are opened, e.g. with a mock client.
func WithDialer(d netconf.Dialer) Option {
	return func(r *Runner) {
		r.dial = d
	}
}

// WithOutput redirects the console report.
func WithOutput(w io.Writer) Option {
	return func(r *Runner) {
		r.out = w
	}
}

// New creates a Runner for the given target.
func New(tgt *target.Config, options ...Option) *Runner {
	r := &Runner{
		tgt:  tgt,
		dial: netconf.Dial,
		out:  os.Stdout,
	}
	for _, opt := range options {
		opt(r)
	}
	return r
}

// Run executes the suite and returns the process exit code: 0 when the
// connection step succeeded and every recorded outcome passed, 1 otherwise.
func (r *Runner) Run(ctx context.Context) int {
	console := report.NewConsole(r.out)
	rec := check.NewRecorder(check.WithListener(console.Outcome))

	console.Banner(r.tgt.Address(), r.tgt.Username)

	// Hard gate: without a session nothing downstream can be judged, so a
	// connection failure aborts the run rather than producing a cascade of
	// meaningless step failures.
	if !r.runStep(ctx, steps.Connect(), rec, console) {
		console.Abort("Connection failed")
		console.Summary(rec.Tally())
		return 1
	}

	// Everything after the gate is attempted unconditionally; each step
	// carries its own session so failures stay contained.
	for _, st := range steps.Suite() {
		r.runStep(ctx, st, rec, console)
	}

	tally := rec.Tally()
	console.Summary(tally)
	if tally.Failed > 0 {
		return 1
	}
	return 0
}

// runStep opens a session for the step, runs it and releases the session on
// every path. A dial failure or an aborted step is recorded as one failed
// outcome under the step's stated intent.
func (r *Runner) runStep(ctx context.Context, st steps.Step, rec *check.Recorder, console *report.Console) bool {
	console.StepHeader(st.Name)

	c, err := r.dial(ctx, r.tgt)
	if err != nil {
		log.WithError(err).WithField("step", st.Name).Error("failed to establish session")
		console.Infof("Connection failed: %v", err)
		rec.Record(st.Intent, false)
		return false
	}
	defer c.Close()

	if err := st.Run(c, rec); err != nil {
		log.WithError(err).WithField("step", st.Name).Error("step aborted")
		console.Infof("Step aborted: %v", err)
		rec.Record(st.Intent, false)
		return false
	}
	return true
}
