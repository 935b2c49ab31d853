// Package target describes the NETCONF server under test and how to reach it.
package target

import (
	"net"
	"strconv"
	"time"

	"github.com/spf13/viper"
	"golang.org/x/crypto/ssh"
)

// Environment variables recognised by FromEnv.
const (
	EnvHost     = "NETCONF_HOST"
	EnvPort     = "NETCONF_PORT"
	EnvUser     = "NETCONF_USER"
	EnvPassword = "NETCONF_PASSWORD"
)

// Defaults applied when neither a flag nor an environment variable is set.
const (
	DefaultHost     = "localhost"
	DefaultPort     = 830
	DefaultUser     = "admin"
	DefaultPassword = "admin"
)

// DialTimeout bounds transport establishment to the target.
const DialTimeout = 30 * time.Second

// Config identifies the target server and the credentials used against it.
type Config struct {
	Host     string
	Port     int
	Username string
	Password string
}

// Viper returns a viper instance with the target defaults and environment
// bindings in place. Callers may layer flag bindings on top before reading
// the configuration with FromViper.
func Viper() *viper.Viper {
	v := viper.New()

	v.SetDefault("host", DefaultHost)
	v.SetDefault("port", DefaultPort)
	v.SetDefault("username", DefaultUser)
	v.SetDefault("password", DefaultPassword)

	_ = v.BindEnv("host", EnvHost)
	_ = v.BindEnv("port", EnvPort)
	_ = v.BindEnv("username", EnvUser)
	_ = v.BindEnv("password", EnvPassword)

	return v
}

// FromViper reads a target configuration from v.
func FromViper(v *viper.Viper) *Config {
	return &Config{
		Host:     v.GetString("host"),
		Port:     v.GetInt("port"),
		Username: v.GetString("username"),
		Password: v.GetString("password"),
	}
}

// FromEnv builds a target configuration from the environment, falling back
// to the defaults for anything unset.
func FromEnv() *Config {
	return FromViper(Viper())
}

// Address returns the host:port dial address of the target.
func (c *Config) Address() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}

// SSHConfig returns the ssh client configuration used to reach the target.
// Host key verification is disabled; conformance targets are lab devices
// whose keys are not expected to be known in advance.
func (c *Config) SSHConfig() *ssh.ClientConfig {
	return &ssh.ClientConfig{
		User:            c.Username,
		Auth:            []ssh.AuthMethod{ssh.Password(c.Password)},
		HostKeyCallback: ssh.InsecureIgnoreHostKey(), // #nosec G106
		Timeout:         DialTimeout,
	}
}
