// Package steps defines the discrete protocol exchanges the conformance
// suite runs against a target server. Each step drives exactly one session,
// records its verdicts and never corrects earlier ones.
package steps

import (
	"github.com/damianoneill/net/v2/netconf/common"
	"github.com/sirupsen/logrus"

	"github.com/akam1o/netconf-conformance/internal/check"
	"github.com/akam1o/netconf-conformance/internal/netconf"
)

var log = logrus.WithField("component", "steps")

// Host-name values written during the run. The edit step's value is only
// ever visible in the candidate datastore; the commit step's value reaches
// running and is rolled back before the step returns.
const (
	testHostName   = "test-router"
	commitHostName = "arca-test-commit"

	// Used when the device's current host-name cannot be read back.
	fallbackHostName = "arca-router"
)

// Step is a single request/verify unit. Run records outcomes for the checks
// the step exists to make; a returned error means the step aborted before
// its checks were meaningful and is recorded by the caller under Intent.
type Step struct {
	Name   string
	Intent string
	Run    func(c netconf.Client, rec *check.Recorder) error
}

// Connect verifies the hello/capability exchange of the session the
// orchestrator has already opened.
func Connect() Step {
	return Step{
		Name:   "Connection and Hello Exchange",
		Intent: "Connection successful",
		Run: func(c netconf.Client, rec *check.Recorder) error {
			caps := c.ServerCapabilities()
			log.WithFields(logrus.Fields{
				"session_id":   c.SessionID(),
				"capabilities": len(caps),
			}).Info("session established")

			rec.Record("Server has capabilities", len(caps) > 0)
			rec.Record("Server supports base:1.0", netconf.HasCapability(caps, common.CapBase10))
			rec.Record("Server supports base:1.1", netconf.HasCapability(caps, common.CapBase11))
			rec.Record("Server supports candidate datastore", netconf.HasCapability(caps, netconf.CapCandidate))
			return nil
		},
	}
}

// Suite returns the datastore lifecycle steps in running order. Each is
// independent of the others; the orchestrator attempts all of them.
func Suite() []Step {
	return []Step{
		GetConfig(),
		LockUnlock(),
		EditConfig(),
		Commit(),
		CloseSession(),
	}
}

// GetConfig retrieves both datastores.
func GetConfig() Step {
	return Step{
		Name:   "Get Config (running/candidate)",
		Intent: "Get config successful",
		Run: func(c netconf.Client, rec *check.Recorder) error {
			running, err := c.GetConfig(netconf.Running)
			rec.Record("get-config running successful", err == nil)
			if err == nil {
				log.Infof("running config length: %d bytes", len(running))
			}

			candidate, err := c.GetConfig(netconf.Candidate)
			rec.Record("get-config candidate successful", err == nil)
			if err == nil {
				log.Infof("candidate config length: %d bytes", len(candidate))
			}
			return nil
		},
	}
}

// LockUnlock takes and releases the candidate lock, judging each operation.
func LockUnlock() Step {
	return Step{
		Name:   "Lock/Unlock Candidate",
		Intent: "Lock/unlock successful",
		Run: func(c netconf.Client, rec *check.Recorder) error {
			err := c.Lock(netconf.Candidate)
			rec.Record("Lock candidate successful", err == nil)
			if err != nil {
				// No lock was taken, so there is nothing to release.
				return nil
			}

			err = c.Unlock(netconf.Candidate)
			rec.Record("Unlock candidate successful", err == nil)
			return nil
		},
	}
}

// EditConfig merges a host-name change into the candidate datastore,
// verifies it is visible there and discards it again, all under the
// candidate lock.
func EditConfig() Step {
	return Step{
		Name:   "Edit Config (merge operation)",
		Intent: "Edit config successful",
		Run: func(c netconf.Client, rec *check.Recorder) error {
			return withLock(c, netconf.Candidate, func() error {
				err := c.EditConfig(netconf.Candidate, hostNameFragment(testHostName))
				rec.Record("edit-config successful", err == nil)

				if err == nil {
					content, gerr := c.GetConfig(netconf.Candidate)
					rec.Record("Hostname updated in candidate",
						gerr == nil && containsHostName(content, testHostName))
				}

				err = c.DiscardChanges()
				rec.Record("discard-changes successful", err == nil)
				return nil
			})
		},
	}
}

// Commit pushes a host-name change through the candidate datastore to
// running, verifies it took effect and restores the device's previous
// host-name, all under the candidate lock. The restore is recorded so a
// failed cleanup is visible in the tally rather than silently leaving the
// device modified.
func Commit() Step {
	return Step{
		Name:   "Edit, Commit, Verify, and Restore",
		Intent: "Commit successful",
		Run: func(c netconf.Client, rec *check.Recorder) error {
			restoreTo := fallbackHostName
			if content, err := c.GetConfig(netconf.Running); err == nil {
				if name := hostNameValue(content); name != "" {
					restoreTo = name
				}
			}

			return withLock(c, netconf.Candidate, func() error {
				if err := c.EditConfig(netconf.Candidate, hostNameFragment(commitHostName)); err != nil {
					return err
				}

				err := c.Commit()
				rec.Record("commit successful", err == nil)

				if err == nil {
					content, gerr := c.GetConfig(netconf.Running)
					rec.Record("Hostname committed to running",
						gerr == nil && containsHostName(content, commitHostName))
				}

				rerr := restoreHostName(c, restoreTo)
				rec.Record("Original hostname restored", rerr == nil)
				if rerr == nil {
					log.Infof("restored host-name %q", restoreTo)
				} else {
					log.WithError(rerr).Warn("target left with modified host-name")
				}
				return nil
			})
		},
	}
}

// CloseSession asks the server to end the session gracefully.
func CloseSession() Step {
	return Step{
		Name:   "Close Session",
		Intent: "Close session successful",
		Run: func(c netconf.Client, rec *check.Recorder) error {
			err := c.CloseSession()
			rec.Record("close-session successful", err == nil)
			return nil
		},
	}
}

// withLock holds the datastore lock for the duration of fn, releasing it on
// every exit path. A failed release means the remote datastore is left
// locked, so it fails the step: the unlock error becomes the step's error
// unless fn already aborted with one of its own.
func withLock(c netconf.Client, datastore netconf.Datastore, fn func() error) (err error) {
	if err = c.Lock(datastore); err != nil {
		return err
	}
	defer func() {
		if uerr := c.Unlock(datastore); uerr != nil {
			log.WithError(uerr).Warnf("failed to release %s lock", datastore)
			if err == nil {
				err = uerr
			}
		}
	}()

	return fn()
}

func restoreHostName(c netconf.Client, name string) error {
	if err := c.EditConfig(netconf.Candidate, hostNameFragment(name)); err != nil {
		return err
	}
	return c.Commit()
}
