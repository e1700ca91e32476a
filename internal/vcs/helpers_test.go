package vcs

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/ribbon/internal/cmdexec"
)

type fakeResponse struct {
	res cmdexec.Result
	err error
}

// fakeRunner answers commands by their joined argv. Unknown commands fail
// as if the binary were not installed.
type fakeRunner struct {
	mu        sync.Mutex
	responses map[string]fakeResponse
	calls     []string
}

func newFakeRunner() *fakeRunner {
	return &fakeRunner{responses: map[string]fakeResponse{}}
}

func (f *fakeRunner) on(cmd, stdout string) *fakeRunner {
	f.responses[cmd] = fakeResponse{res: cmdexec.Result{Stdout: stdout}}
	return f
}

func (f *fakeRunner) fail(cmd, stderr string) *fakeRunner {
	f.responses[cmd] = fakeResponse{
		res: cmdexec.Result{Stderr: stderr},
		err: fmt.Errorf("exit status 1"),
	}
	return f
}

func (f *fakeRunner) Run(_ context.Context, _ string, name string, args ...string) (cmdexec.Result, error) {
	key := strings.Join(append([]string{name}, args...), " ")

	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, key)

	resp, ok := f.responses[key]
	if !ok {
		return cmdexec.Result{}, &exec.Error{Name: name, Err: exec.ErrNotFound}
	}
	return resp.res, resp.err
}

func (f *fakeRunner) called(cmd string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, c := range f.calls {
		if c == cmd {
			return true
		}
	}
	return false
}

func initGitRepo(t *testing.T) (string, *gogit.Repository) {
	t.Helper()

	dir := t.TempDir()
	repo, err := gogit.PlainInit(dir, false)
	require.NoError(t, err)

	wt, err := repo.Worktree()
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "README.md"), []byte("hello ribbon\n"), 0o644))
	_, err = wt.Add("README.md")
	require.NoError(t, err)

	_, err = wt.Commit("initial", &gogit.CommitOptions{
		Author: &object.Signature{
			Name:  "Ribbon",
			Email: "ribbon@example.com",
			When:  time.Now(),
		},
	})
	require.NoError(t, err)

	return dir, repo
}
