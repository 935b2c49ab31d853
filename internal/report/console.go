// Package report renders the human-readable conformance run report.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/akam1o/netconf-conformance/internal/check"
)

const ruleWidth = 60

// Console writes step headers, per-assertion verdict lines and the final
// summary to a single writer in the order events occur.
type Console struct {
	out  io.Writer
	pass func(format string, a ...interface{}) string
	fail func(format string, a ...interface{}) string
}

// NewConsole creates a report writer. Colour is applied to verdict lines and
// disabled automatically when the writer is not a terminal.
func NewConsole(out io.Writer) *Console {
	return &Console{
		out:  out,
		pass: color.New(color.FgGreen).SprintfFunc(),
		fail: color.New(color.FgRed).SprintfFunc(),
	}
}

// Banner announces the run and its target.
func (c *Console) Banner(address, username string) {
	c.rule()
	fmt.Fprintln(c.out, "NETCONF Conformance Checks")
	fmt.Fprintf(c.out, "Target: %s\n", address)
	fmt.Fprintf(c.out, "User: %s\n", username)
	c.rule()
}

// StepHeader announces the start of a step.
func (c *Console) StepHeader(name string) {
	fmt.Fprintln(c.out)
	c.rule()
	fmt.Fprintf(c.out, "TEST: %s\n", name)
	c.rule()
}

// Outcome prints the verdict line for a recorded outcome.
func (c *Console) Outcome(o check.Outcome) {
	if o.Passed {
		fmt.Fprintln(c.out, c.pass("✓ PASS: %s", o.Description))
	} else {
		fmt.Fprintln(c.out, c.fail("✗ FAIL: %s", o.Description))
	}
}

// Infof prints a free-form diagnostic line within the current step.
func (c *Console) Infof(format string, a ...interface{}) {
	fmt.Fprintf(c.out, format+"\n", a...)
}

// Abort reports that the run stopped before all steps were attempted.
func (c *Console) Abort(reason string) {
	fmt.Fprintln(c.out)
	fmt.Fprintln(c.out, c.fail("✗ %s - aborting remaining tests", reason))
}

// Summary prints the final tally.
func (c *Console) Summary(t check.Tally) {
	fmt.Fprintln(c.out)
	c.rule()
	fmt.Fprintln(c.out, "TEST SUMMARY")
	c.rule()
	fmt.Fprintf(c.out, "Passed: %d\n", t.Passed)
	fmt.Fprintf(c.out, "Failed: %d\n", t.Failed)
	fmt.Fprintf(c.out, "Total:  %d\n", t.Total)
	c.rule()
	if t.Failed == 0 && t.Total > 0 {
		fmt.Fprintln(c.out, c.pass("✓ All tests passed!"))
	}
}

func (c *Console) rule() {
	fmt.Fprintln(c.out, strings.Repeat("=", ruleWidth))
}
