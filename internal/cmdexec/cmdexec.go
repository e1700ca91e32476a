// Package cmdexec runs the external tools that back the VCS and process
// probes, capturing their output instead of streaming it.
package cmdexec

import (
	"bytes"
	"context"
	"errors"
	"os"
	"os/exec"
	"strings"
)

// Result captures stdout/stderr emitted by a command run.
type Result struct {
	Stdout string
	Stderr string
}

// Lines splits stdout into lines, dropping the trailing newline. Leading
// whitespace is kept since several status formats are column based.
func (r Result) Lines() []string {
	if r.Stdout == "" {
		return nil
	}
	return strings.Split(r.Stdout, "\n")
}

// Runner executes a command in dir.
type Runner interface {
	Run(ctx context.Context, dir, name string, args ...string) (Result, error)
}

// OSRunner runs real processes. The locale is pinned to C so that tools
// print the untranslated output the parsers expect.
type OSRunner struct{}

// Run executes name with args in dir. The process is killed when ctx ends.
func (OSRunner) Run(ctx context.Context, dir, name string, args ...string) (Result, error) {
	var stdoutBuf, stderrBuf bytes.Buffer

	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir
	cmd.Env = append(os.Environ(), "LANG=C", "LC_ALL=C")
	cmd.Stdout = &stdoutBuf
	cmd.Stderr = &stderrBuf

	err := cmd.Run()
	if err == nil && ctx.Err() != nil {
		err = ctx.Err()
	}

	return Result{
		Stdout: strings.TrimRight(stdoutBuf.String(), "\r\n"),
		Stderr: strings.TrimSpace(stderrBuf.String()),
	}, err
}

// PrimaryOutput returns stderr if present, otherwise stdout.
func PrimaryOutput(res Result) string {
	if res.Stderr != "" {
		return res.Stderr
	}
	return res.Stdout
}

// IsNotInstalled reports whether err means the executable is not on PATH.
func IsNotInstalled(err error) bool {
	return errors.Is(err, exec.ErrNotFound)
}

// LookPath reports whether name resolves to an executable.
func LookPath(name string) (string, bool) {
	path, err := exec.LookPath(name)
	return path, err == nil
}
