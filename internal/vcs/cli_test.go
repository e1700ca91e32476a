package vcs

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHgProbe(t *testing.T) {
	t.Run("not installed", func(t *testing.T) {
		_, err := NewHgProbe(newFakeRunner()).Open(context.Background(), "/work")
		require.ErrorIs(t, err, ErrNotRepository)
	})

	t.Run("not a repository", func(t *testing.T) {
		runner := newFakeRunner().fail("hg branch", "abort: no repository found")
		_, err := NewHgProbe(runner).Open(context.Background(), "/work")
		require.ErrorIs(t, err, ErrNotRepository)
	})

	t.Run("status codes", func(t *testing.T) {
		runner := newFakeRunner().
			on("hg branch", "default\n").
			on("hg status", "? notes.txt\n! gone.txt")

		repo, err := NewHgProbe(runner).Open(context.Background(), "/work")
		require.NoError(t, err)

		branch, ok := repo.BranchName()
		require.True(t, ok)
		assert.Equal(t, "default", branch)
		assert.True(t, repo.Untracked())
		assert.True(t, repo.Missing())
		assert.False(t, repo.IsDirty())
	})

	t.Run("modified", func(t *testing.T) {
		runner := newFakeRunner().
			on("hg branch", "feature").
			on("hg status", "M main.go\nA new.go")

		repo, err := NewHgProbe(runner).Open(context.Background(), "/work")
		require.NoError(t, err)
		assert.True(t, repo.IsDirty())
		_, _, ok := repo.AheadBehind()
		assert.False(t, ok)
	})
}

func TestSvnBranch(t *testing.T) {
	tests := map[string]string{
		"^/trunk":                    "trunk",
		"^/trunk/src":                "trunk",
		"^/branches/release-1":       "release-1",
		"^/project/branches/feature": "feature",
		"^/tags/v1.0":                "v1.0",
		"^/vendor/lib":               "lib",
		"^/":                         "svn",
	}
	for in, want := range tests {
		assert.Equal(t, want, svnBranch(in), in)
	}
}

func TestSvnProbe(t *testing.T) {
	t.Run("not a working copy", func(t *testing.T) {
		runner := newFakeRunner().fail("svn info --show-item relative-url", "svn: E155007: not a working copy")
		_, err := NewSvnProbe(runner).Open(context.Background(), "/work")
		require.ErrorIs(t, err, ErrNotRepository)
	})

	t.Run("status columns", func(t *testing.T) {
		runner := newFakeRunner().
			on("svn info --show-item relative-url", "^/branches/topic\n").
			on("svn status", " M props.txt\n? extra.txt\n! lost.txt")

		repo, err := NewSvnProbe(runner).Open(context.Background(), "/work")
		require.NoError(t, err)

		branch, _ := repo.BranchName()
		assert.Equal(t, "topic", branch)
		assert.True(t, repo.IsDirty())
		assert.True(t, repo.Untracked())
		assert.True(t, repo.Missing())
	})

	t.Run("clean", func(t *testing.T) {
		runner := newFakeRunner().
			on("svn info --show-item relative-url", "^/trunk").
			on("svn status", "")

		repo, err := NewSvnProbe(runner).Open(context.Background(), "/work")
		require.NoError(t, err)
		assert.False(t, repo.IsDirty())
		assert.False(t, repo.Untracked())
	})
}

func TestFossilProbe(t *testing.T) {
	t.Run("not a checkout", func(t *testing.T) {
		runner := newFakeRunner().fail("fossil branch", "current directory is not within an open checkout")
		_, err := NewFossilProbe(runner).Open(context.Background(), "/work")
		require.ErrorIs(t, err, ErrNotRepository)
	})

	t.Run("no current branch", func(t *testing.T) {
		runner := newFakeRunner().on("fossil branch", "  trunk\n  other")
		_, err := NewFossilProbe(runner).Open(context.Background(), "/work")
		require.ErrorIs(t, err, ErrNotRepository)
	})

	t.Run("changes and extras", func(t *testing.T) {
		runner := newFakeRunner().
			on("fossil branch", "  other\n* trunk").
			on("fossil changes", "EDITED     main.c\nMISSING    old.c").
			on("fossil extras", "scratch.txt")

		repo, err := NewFossilProbe(runner).Open(context.Background(), "/work")
		require.NoError(t, err)

		branch, _ := repo.BranchName()
		assert.Equal(t, "trunk", branch)
		assert.True(t, repo.IsDirty())
		assert.True(t, repo.Missing())
		assert.True(t, repo.Untracked())
	})

	t.Run("missing only", func(t *testing.T) {
		runner := newFakeRunner().
			on("fossil branch", "* trunk").
			on("fossil changes", "MISSING    old.c").
			on("fossil extras", "")

		repo, err := NewFossilProbe(runner).Open(context.Background(), "/work")
		require.NoError(t, err)
		assert.False(t, repo.IsDirty())
		assert.True(t, repo.Missing())
		assert.False(t, repo.Untracked())
	})
}
