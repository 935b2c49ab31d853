// Package netconf adapts the management-protocol client library to the
// narrow capability surface the conformance steps drive.
package netconf

import (
	"context"
	"encoding/xml"

	"github.com/damianoneill/net/v2/netconf/client"
	"github.com/damianoneill/net/v2/netconf/ops"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/akam1o/netconf-conformance/internal/target"
)

// Datastore identifies a target configuration store.
type Datastore string

// Configuration datastores exercised by the conformance suite.
const (
	Running   Datastore = ops.RunningCfg
	Candidate Datastore = ops.CandidateCfg
)

// CapCandidate is the capability URI advertising candidate datastore
// support. The base protocol URIs are defined by the client library.
const CapCandidate = "urn:ietf:params:netconf:capability:candidate:1.0"

// Client is one management session with the target server. All operations
// are synchronous; a non-nil error covers both transport failures and
// rpc-error replies, which the conformance suite judges identically.
type Client interface {
	// SessionID delivers the server-allocated session id.
	SessionID() uint64

	// ServerCapabilities delivers the capability set from the hello exchange.
	ServerCapabilities() []string

	// GetConfig retrieves the content of the given datastore.
	GetConfig(datastore Datastore) (string, error)

	// EditConfig merges the supplied config fragment into the given datastore.
	EditConfig(datastore Datastore, fragment string) error

	// Lock takes the lock on the given datastore for this session.
	Lock(datastore Datastore) error

	// Unlock releases the lock on the given datastore.
	Unlock(datastore Datastore) error

	// Commit applies the candidate datastore to the running datastore.
	Commit() error

	// DiscardChanges reverts the candidate datastore to match running.
	DiscardChanges() error

	// CloseSession asks the server to end the session.
	CloseSession() error

	// Close releases the underlying transport.
	Close()
}

// Dialer opens a management session with the target. The production dialer
// is Dial; tests substitute their own.
type Dialer func(ctx context.Context, tgt *target.Config) (Client, error)

// Dial connects to the target, performs the hello/capability exchange and
// returns a Client over the negotiated session.
func Dial(ctx context.Context, tgt *target.Config) (Client, error) {
	ctx = client.WithClientTrace(ctx, Trace(logrus.StandardLogger()))

	s, err := ops.NewSession(ctx, tgt.SSHConfig(), tgt.Address())
	if err != nil {
		return nil, errors.Wrapf(err, "failed to establish session with %s", tgt.Address())
	}
	return &opsClient{s: s}, nil
}

type opsClient struct {
	s ops.OpSession
}

// The ops session surface has no commit operation; issue it as a bare rpc.
type commitReq struct {
	XMLName xml.Name `xml:"commit"`
}

func (c *opsClient) SessionID() uint64 {
	return c.s.ID()
}

func (c *opsClient) ServerCapabilities() []string {
	return c.s.ServerCapabilities()
}

func (c *opsClient) GetConfig(datastore Datastore) (string, error) {
	var content string
	if err := c.s.GetConfigSubtree(nil, string(datastore), &content); err != nil {
		return "", errors.Wrapf(err, "get-config %s failed", datastore)
	}
	return content, nil
}

func (c *opsClient) EditConfig(datastore Datastore, fragment string) error {
	err := c.s.EditConfig(string(datastore), ops.Cfg(fragment), ops.DefaultOperation(ops.MergeOp))
	return errors.Wrapf(err, "edit-config %s failed", datastore)
}

func (c *opsClient) Lock(datastore Datastore) error {
	return errors.Wrapf(c.s.Lock(string(datastore)), "lock %s failed", datastore)
}

func (c *opsClient) Unlock(datastore Datastore) error {
	return errors.Wrapf(c.s.Unlock(string(datastore)), "unlock %s failed", datastore)
}

func (c *opsClient) Commit() error {
	_, err := c.s.Execute(&commitReq{})
	return errors.Wrap(err, "commit failed")
}

func (c *opsClient) DiscardChanges() error {
	return errors.Wrap(c.s.Discard(), "discard-changes failed")
}

func (c *opsClient) CloseSession() error {
	return errors.Wrap(c.s.CloseSession(), "close-session failed")
}

func (c *opsClient) Close() {
	c.s.Close()
}

// HasCapability returns true if the capability list contains uri.
func HasCapability(caps []string, uri string) bool {
	for _, capability := range caps {
		if capability == uri {
			return true
		}
	}
	return false
}
