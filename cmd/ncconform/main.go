// ncconform runs conformance checks against a NETCONF management server.
//
// The target is taken from flags or the NETCONF_HOST, NETCONF_PORT,
// NETCONF_USER and NETCONF_PASSWORD environment variables. The process
// exits 0 only when the connection succeeded and every check passed.
package main

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/akam1o/netconf-conformance/internal/run"
	"github.com/akam1o/netconf-conformance/internal/target"
)

func main() {
	var code int
	if err := newRootCmd(&code).Execute(); err != nil {
		os.Exit(1)
	}
	os.Exit(code)
}

func newRootCmd(code *int) *cobra.Command {
	v := target.Viper()
	var debug bool

	cmd := &cobra.Command{
		Use:   "ncconform",
		Short: "Conformance checks for a NETCONF management server",
		Long: `ncconform establishes management sessions with a NETCONF server and
exercises its datastore lifecycle: capability exchange, get-config,
lock/unlock, edit-config, commit, discard-changes and close-session.
Every response is judged against RFC 6241 expectations and the verdicts
are tallied into a console report and the process exit code.`,
		Args: cobra.NoArgs,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if debug {
				logrus.SetLevel(logrus.DebugLevel)
			}
		},
		Run: func(cmd *cobra.Command, args []string) {
			*code = run.New(target.FromViper(v)).Run(cmd.Context())
		},
	}

	flags := cmd.Flags()
	flags.String("host", target.DefaultHost, "target host (env "+target.EnvHost+")")
	flags.Int("port", target.DefaultPort, "target port (env "+target.EnvPort+")")
	flags.String("username", target.DefaultUser, "login username (env "+target.EnvUser+")")
	flags.String("password", target.DefaultPassword, "login password (env "+target.EnvPassword+")")
	cmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")

	for _, name := range []string{"host", "port", "username", "password"} {
		_ = v.BindPFlag(name, flags.Lookup(name))
	}

	return cmd
}
