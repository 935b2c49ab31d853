package target

import (
	"testing"

	assert "github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	cfg := FromEnv()

	assert.Equal(t, DefaultHost, cfg.Host)
	assert.Equal(t, DefaultPort, cfg.Port)
	assert.Equal(t, DefaultUser, cfg.Username)
	assert.Equal(t, DefaultPassword, cfg.Password)
}

func TestEnvironmentOverrides(t *testing.T) {
	t.Setenv(EnvHost, "router.lab")
	t.Setenv(EnvPort, "8300")
	t.Setenv(EnvUser, "operator")
	t.Setenv(EnvPassword, "secret")

	cfg := FromEnv()

	assert.Equal(t, "router.lab", cfg.Host)
	assert.Equal(t, 8300, cfg.Port)
	assert.Equal(t, "operator", cfg.Username)
	assert.Equal(t, "secret", cfg.Password)
}

func TestAddress(t *testing.T) {
	cfg := &Config{Host: "router.lab", Port: 830}
	assert.Equal(t, "router.lab:830", cfg.Address())
}

func TestAddressQuotesIPv6Hosts(t *testing.T) {
	cfg := &Config{Host: "fd00::1", Port: 830}
	assert.Equal(t, "[fd00::1]:830", cfg.Address())
}

func TestSSHConfig(t *testing.T) {
	cfg := &Config{Host: "router.lab", Port: 830, Username: "operator", Password: "secret"}

	sshcfg := cfg.SSHConfig()
	assert.Equal(t, "operator", sshcfg.User)
	assert.Len(t, sshcfg.Auth, 1, "Password auth should be configured")
	assert.NotNil(t, sshcfg.HostKeyCallback)
	assert.Equal(t, DialTimeout, sshcfg.Timeout)
}
