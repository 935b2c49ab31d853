package netconf

import (
	"errors"
	"testing"

	"github.com/damianoneill/net/v2/netconf/common"
	"github.com/damianoneill/net/v2/netconf/ops"
	assert "github.com/stretchr/testify/require"
)

// fakeOpSession implements the subset of the ops session surface the adapter
// uses; anything else panics through the embedded nil interface.
type fakeOpSession struct {
	ops.OpSession

	source   string
	content  string
	editReq  *ops.EditConfigReq
	executed common.Request
	calls    []string
	err      error
}

func (f *fakeOpSession) ID() uint64 { return 17 }

func (f *fakeOpSession) ServerCapabilities() []string {
	return []string{common.CapBase10, common.CapBase11, CapCandidate}
}

func (f *fakeOpSession) GetConfigSubtree(filter interface{}, source string, result interface{}) error {
	f.calls = append(f.calls, "get-config")
	f.source = source
	if f.err != nil {
		return f.err
	}
	*(result.(*string)) = f.content
	return nil
}

func (f *fakeOpSession) EditConfig(target string, config ops.ConfigOption, options ...ops.EditOption) error {
	f.calls = append(f.calls, "edit-config")
	req := &ops.EditConfigReq{Target: &ops.ConfigType{Type: "<" + target + "/>"}}
	for _, opt := range options {
		opt(req)
	}
	config(req)
	f.editReq = req
	return f.err
}

func (f *fakeOpSession) Lock(target string) error {
	f.calls = append(f.calls, "lock "+target)
	return f.err
}

func (f *fakeOpSession) Unlock(target string) error {
	f.calls = append(f.calls, "unlock "+target)
	return f.err
}

func (f *fakeOpSession) Discard() error {
	f.calls = append(f.calls, "discard")
	return f.err
}

func (f *fakeOpSession) CloseSession() error {
	f.calls = append(f.calls, "close-session")
	return f.err
}

func (f *fakeOpSession) Execute(req common.Request) (*common.RPCReply, error) {
	f.calls = append(f.calls, "execute")
	f.executed = req
	if f.err != nil {
		return nil, f.err
	}
	return &common.RPCReply{}, nil
}

func (f *fakeOpSession) Close() {
	f.calls = append(f.calls, "close")
}

func TestGetConfigUsesRequestedDatastore(t *testing.T) {
	fake := &fakeOpSession{content: "<system/>"}
	c := &opsClient{s: fake}

	content, err := c.GetConfig(Candidate)
	assert.NoError(t, err, "Not expecting get-config to fail")
	assert.Equal(t, "<system/>", content)
	assert.Equal(t, "candidate", fake.source, "Datastore should be passed through as the source")
}

func TestGetConfigError(t *testing.T) {
	fake := &fakeOpSession{err: errors.New("failed")}
	c := &opsClient{s: fake}

	_, err := c.GetConfig(Running)
	assert.Error(t, err, "Expecting get-config to fail")
}

func TestEditConfigMergesFragment(t *testing.T) {
	fake := &fakeOpSession{}
	c := &opsClient{s: fake}

	err := c.EditConfig(Candidate, "<system><host-name>x</host-name></system>")
	assert.NoError(t, err, "Not expecting edit-config to fail")
	assert.Equal(t, "<candidate/>", fake.editReq.Target.Type)
	assert.Equal(t, ops.MergeOp, fake.editReq.DefaultOperation, "Edits should use the merge operation")
	assert.Equal(t, "<system><host-name>x</host-name></system>", fake.editReq.Config.ValueXML)
}

func TestCommitIssuesCommitRPC(t *testing.T) {
	fake := &fakeOpSession{}
	c := &opsClient{s: fake}

	err := c.Commit()
	assert.NoError(t, err, "Not expecting commit to fail")
	assert.Equal(t, &commitReq{}, fake.executed)
}

func TestCommitError(t *testing.T) {
	fake := &fakeOpSession{err: errors.New("failed")}
	c := &opsClient{s: fake}

	assert.Error(t, c.Commit(), "Expecting commit to fail")
}

func TestLockUnlockTargetDatastore(t *testing.T) {
	fake := &fakeOpSession{}
	c := &opsClient{s: fake}

	assert.NoError(t, c.Lock(Candidate))
	assert.NoError(t, c.Unlock(Candidate))
	assert.Equal(t, []string{"lock candidate", "unlock candidate"}, fake.calls)
}

func TestDiscardCloseAndSessionDetails(t *testing.T) {
	fake := &fakeOpSession{}
	c := &opsClient{s: fake}

	assert.NoError(t, c.DiscardChanges())
	assert.NoError(t, c.CloseSession())
	c.Close()

	assert.Equal(t, []string{"discard", "close-session", "close"}, fake.calls)
	assert.Equal(t, uint64(17), c.SessionID())
	assert.Len(t, c.ServerCapabilities(), 3)
}

func TestHasCapability(t *testing.T) {
	caps := []string{common.CapBase10, CapCandidate}

	assert.True(t, HasCapability(caps, common.CapBase10))
	assert.True(t, HasCapability(caps, CapCandidate))
	assert.False(t, HasCapability(caps, common.CapBase11))
	assert.False(t, HasCapability(nil, common.CapBase10))
}
