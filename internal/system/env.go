package system

import (
	"fmt"
	"os"
	"os/user"
	"path/filepath"
	"strings"

	"github.com/kelseyhightower/envconfig"
)

// Environment holds the session variables the segments read.
type Environment struct {
	Home       string `envconfig:"HOME"`
	User       string `envconfig:"USER"`
	SSHClient  string `envconfig:"SSH_CLIENT"`
	SSHTTY     string `envconfig:"SSH_TTY"`
	VirtualEnv string `envconfig:"VIRTUAL_ENV"`
	CondaEnv   string `envconfig:"CONDA_DEFAULT_ENV"`
}

// ReadEnvironment loads Environment from the process environment, filling
// home and user from the OS account database when the variables are unset.
func ReadEnvironment() (Environment, error) {
	var env Environment
	if err := envconfig.Process("", &env); err != nil {
		return Environment{}, fmt.Errorf("read environment: %w", err)
	}

	if env.Home == "" {
		if home, err := os.UserHomeDir(); err == nil {
			env.Home = home
		}
	}
	if env.User == "" {
		if u, err := user.Current(); err == nil {
			env.User = u.Username
		}
	}
	return env, nil
}

// InSSHSession reports whether the shell runs over ssh.
func (e Environment) InSSHSession() bool {
	return e.SSHClient != "" || e.SSHTTY != ""
}

// VirtualEnvName is the basename of the active virtualenv or conda env.
func (e Environment) VirtualEnvName() string {
	env := e.VirtualEnv
	if env == "" {
		env = e.CondaEnv
	}
	if env == "" {
		return ""
	}
	return filepath.Base(env)
}

// IsRoot reports whether the prompt is drawn for the superuser.
func (e Environment) IsRoot() bool {
	return e.User == "root"
}

// Hostname returns the machine name, or an empty string when unknown.
func Hostname() string {
	name, err := os.Hostname()
	if err != nil {
		return ""
	}
	return name
}

// ShortHostname strips the domain part of a hostname.
func ShortHostname(name string) string {
	short, _, _ := strings.Cut(name, ".")
	return short
}
