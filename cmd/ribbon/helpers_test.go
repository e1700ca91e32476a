package main

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/ribbon/internal/kube"
	"github.com/alexisbeaulieu97/ribbon/internal/providers"
	"github.com/alexisbeaulieu97/ribbon/internal/system"
)

type stubFS struct {
	cwd string
	err error
	pwd string
}

func (s stubFS) Getwd() (string, error) { return s.cwd, s.err }

func (s stubFS) Getenv(key string) string {
	if key == "PWD" {
		return s.pwd
	}
	return ""
}

func (s stubFS) Stat(name string) (os.FileInfo, error) { return os.Stat(name) }
func (s stubFS) Chdir(string) error                    { return nil }

type stubKube struct {
	info kube.ContextInfo
	err  error
}

func (s stubKube) CurrentContext() (kube.ContextInfo, error) { return s.info, s.err }

func newTestApp(t *testing.T, fs system.FS) *app {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	return &app{
		fs: fs,
		readEnv: func() (system.Environment, error) {
			return system.Environment{Home: "/home/sam", User: "sam"}, nil
		},
		deps: providers.Deps{
			Kube:     stubKube{err: kube.ErrNoContext},
			Writable: func(string) bool { return true },
			Hostname: "box.example.com",
			Now:      func() time.Time { return time.Date(2024, 5, 1, 9, 30, 0, 0, time.UTC) },
		},
		isTerminal: func(io.Writer) bool { return false },
		executable: func() (string, error) { return "/usr/local/bin/ribbon", nil },
		lookPath: func(name string) (string, bool) {
			if name == "git" {
				return "/usr/bin/git", true
			}
			return "", false
		},
	}
}

// execute runs the root command and returns stdout and stderr separately.
func execute(t *testing.T, a *app, args ...string) (string, string, error) {
	t.Helper()

	root := newRootCmdWithApp(a)
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.SetArgs(args)

	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}
