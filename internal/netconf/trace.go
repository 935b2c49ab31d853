package netconf

import (
	"time"

	"github.com/damianoneill/net/v2/netconf/client"
	"github.com/damianoneill/net/v2/netconf/common"
	"github.com/sirupsen/logrus"
)

// Trace returns client trace hooks that surface session events through the
// supplied logger. Errors are reported at warn level so a failing exchange
// is diagnosable at the point of detection; the rest is debug noise.
func Trace(log *logrus.Logger) *client.ClientTrace {
	return &client.ClientTrace{
		ConnectStart: func(target string) {
			log.WithField("target", target).Debug("connecting")
		},
		ConnectDone: func(target string, err error, d time.Duration) {
			log.WithFields(logrus.Fields{"target": target, "took": d}).
				WithError(err).Debug("connect done")
		},
		HelloDone: func(msg *common.HelloMessage) {
			log.WithFields(logrus.Fields{
				"session_id":   msg.SessionID,
				"capabilities": len(msg.Capabilities),
			}).Debug("hello exchange complete")
		},
		ConnectionClosed: func(target string, err error) {
			log.WithField("target", target).WithError(err).Debug("connection closed")
		},
		ExecuteDone: func(req common.Request, async bool, res *common.RPCReply, err error, d time.Duration) {
			log.WithFields(logrus.Fields{"took": d}).WithError(err).Debug("rpc done")
		},
		Error: func(context, target string, err error) {
			log.WithFields(logrus.Fields{"context": context, "target": target}).
				WithError(err).Warn("netconf error")
		},
	}
}
