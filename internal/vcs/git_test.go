package vcs

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	gogit "github.com/go-git/go-git/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePorcelainV2(t *testing.T) {
	tests := []struct {
		name   string
		lines  []string
		expect Status
	}{
		{
			name: "clean with upstream",
			lines: []string{
				"# branch.oid 1234",
				"# branch.head main",
				"# branch.upstream origin/main",
				"# branch.ab +0 -0",
			},
			expect: Status{HasUpstream: true},
		},
		{
			name:   "diverged",
			lines:  []string{"# branch.ab +2 -3"},
			expect: Status{Ahead: 2, Behind: 3, HasUpstream: true},
		},
		{
			name:   "no upstream",
			lines:  []string{"# branch.head main"},
			expect: Status{},
		},
		{
			name:   "modified",
			lines:  []string{"1 .M N... 100644 100644 100644 abc abc file.go"},
			expect: Status{Dirty: true},
		},
		{
			name:   "worktree deletion",
			lines:  []string{"1 .D N... 100644 100644 000000 abc abc gone.go"},
			expect: Status{Dirty: true, MissingFiles: true},
		},
		{
			name:   "rename",
			lines:  []string{"2 R. N... 100644 100644 100644 abc abc R100 new.go\told.go"},
			expect: Status{Dirty: true},
		},
		{
			name:   "unmerged",
			lines:  []string{"u UU N... 100644 100644 100644 100644 a b c conflict.go"},
			expect: Status{Dirty: true},
		},
		{
			name:   "untracked only",
			lines:  []string{"? notes.txt"},
			expect: Status{UntrackedFiles: true},
		},
		{
			name:   "malformed ab line",
			lines:  []string{"# branch.ab +x -1"},
			expect: Status{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got Status
			parsePorcelainV2(tt.lines, &got)
			assert.Equal(t, tt.expect, got)
		})
	}
}

func TestGitProbe_NotARepository(t *testing.T) {
	probe := NewGitProbe(newFakeRunner(), nil)

	_, err := probe.Open(context.Background(), t.TempDir())
	require.ErrorIs(t, err, ErrNotRepository)
}

func TestGitProbe_UsesPorcelainOutput(t *testing.T) {
	dir, _ := initGitRepo(t)

	runner := newFakeRunner().on(
		"git status --porcelain=v2 --branch --ignore-submodules",
		"# branch.head master\n# branch.ab +1 -0\n? scratch.txt",
	)
	probe := NewGitProbe(runner, nil)

	repo, err := probe.Open(context.Background(), dir)
	require.NoError(t, err)

	branch, ok := repo.BranchName()
	require.True(t, ok)
	assert.Equal(t, "master", branch)
	assert.False(t, repo.IsDirty())
	assert.True(t, repo.Untracked())

	ahead, behind, ok := repo.AheadBehind()
	assert.True(t, ok)
	assert.Equal(t, 1, ahead)
	assert.Equal(t, 0, behind)
}

func TestGitProbe_FallsBackToWorktreeStatus(t *testing.T) {
	t.Run("clean", func(t *testing.T) {
		dir, _ := initGitRepo(t)

		repo, err := NewGitProbe(newFakeRunner(), nil).Open(context.Background(), dir)
		require.NoError(t, err)

		assert.False(t, repo.IsDirty())
		assert.False(t, repo.Untracked())
		assert.False(t, repo.Missing())
		_, _, ok := repo.AheadBehind()
		assert.False(t, ok)
	})

	t.Run("untracked", func(t *testing.T) {
		dir, _ := initGitRepo(t)
		require.NoError(t, os.WriteFile(filepath.Join(dir, "new.txt"), []byte("x"), 0o644))

		repo, err := NewGitProbe(newFakeRunner(), nil).Open(context.Background(), dir)
		require.NoError(t, err)

		assert.False(t, repo.IsDirty())
		assert.True(t, repo.Untracked())
	})

	t.Run("modified", func(t *testing.T) {
		dir, _ := initGitRepo(t)
		require.NoError(t, os.WriteFile(filepath.Join(dir, "README.md"), []byte("changed\n"), 0o644))

		repo, err := NewGitProbe(newFakeRunner(), nil).Open(context.Background(), dir)
		require.NoError(t, err)

		assert.True(t, repo.IsDirty())
		assert.False(t, repo.Missing())
	})

	t.Run("deleted", func(t *testing.T) {
		dir, _ := initGitRepo(t)
		require.NoError(t, os.Remove(filepath.Join(dir, "README.md")))

		repo, err := NewGitProbe(newFakeRunner(), nil).Open(context.Background(), dir)
		require.NoError(t, err)

		assert.True(t, repo.IsDirty())
		assert.True(t, repo.Missing())
	})
}

func TestGitProbe_SubdirectoryDiscovery(t *testing.T) {
	dir, _ := initGitRepo(t)
	sub := filepath.Join(dir, "a", "b")
	require.NoError(t, os.MkdirAll(sub, 0o755))

	repo, err := NewGitProbe(newFakeRunner(), nil).Open(context.Background(), sub)
	require.NoError(t, err)

	branch, _ := repo.BranchName()
	assert.Equal(t, "master", branch)
}

func TestGitProbe_DetachedHead(t *testing.T) {
	dir, repo := initGitRepo(t)

	head, err := repo.Head()
	require.NoError(t, err)
	wt, err := repo.Worktree()
	require.NoError(t, err)
	require.NoError(t, wt.Checkout(&gogit.CheckoutOptions{Hash: head.Hash()}))

	got, err := NewGitProbe(newFakeRunner(), nil).Open(context.Background(), dir)
	require.NoError(t, err)

	branch, ok := got.BranchName()
	require.True(t, ok)
	assert.Equal(t, DetachedBranch, branch)
}

func TestGitProbe_SkipsStatusUnderPrefix(t *testing.T) {
	dir, _ := initGitRepo(t)

	runner := newFakeRunner()
	probe := NewGitProbe(runner, []string{filepath.ToSlash(dir) + "/"})

	repo, err := probe.Open(context.Background(), dir)
	require.NoError(t, err)

	assert.True(t, repo.Skipped())
	assert.False(t, runner.called("git status --porcelain=v2 --branch --ignore-submodules"))
	branch, _ := repo.BranchName()
	assert.Equal(t, "master", branch)
}

func TestGitProbe_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewGitProbe(newFakeRunner(), nil).Open(ctx, t.TempDir())
	require.True(t, errors.Is(err, context.Canceled))
}
