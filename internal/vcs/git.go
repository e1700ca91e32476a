package vcs

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"

	"github.com/alexisbeaulieu97/ribbon/internal/cmdexec"
)

// DefaultSkipStatusPrefixes are path fragments under which git status is
// not collected.
var DefaultSkipStatusPrefixes = []string{"/media/", "/mnt/"}

// GitProbe detects git working trees. Repository discovery and HEAD come
// from go-git; change detection uses the git binary and falls back to
// go-git's worktree status without it.
type GitProbe struct {
	runner             cmdexec.Runner
	skipStatusPrefixes []string
}

// NewGitProbe creates a git probe. A nil runner uses the OS.
func NewGitProbe(runner cmdexec.Runner, skipStatusPrefixes []string) *GitProbe {
	if runner == nil {
		runner = cmdexec.OSRunner{}
	}
	return &GitProbe{runner: runner, skipStatusPrefixes: skipStatusPrefixes}
}

func (p *GitProbe) Name() string { return "git" }

// Open inspects the repository containing dir.
func (p *GitProbe) Open(ctx context.Context, dir string) (Repository, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	repo, err := gogit.PlainOpenWithOptions(dir, &gogit.PlainOpenOptions{
		DetectDotGit:          true,
		EnableDotGitCommonDir: true,
	})
	if err != nil {
		if errors.Is(err, gogit.ErrRepositoryNotExists) {
			return nil, ErrNotRepository
		}
		return nil, fmt.Errorf("open repository: %w", err)
	}

	status := &Status{Branch: headBranch(repo)}

	if p.skipStatus(dir) {
		status.StatusSkipped = true
		return status, nil
	}

	res, err := p.runner.Run(ctx, dir, "git", "status", "--porcelain=v2", "--branch", "--ignore-submodules")
	if err == nil {
		parsePorcelainV2(res.Lines(), status)
		return status, nil
	}
	if ctxErr := ctx.Err(); ctxErr != nil {
		return nil, ctxErr
	}

	if err := worktreeStatus(repo, status); err != nil {
		return nil, fmt.Errorf("worktree status: %w", err)
	}
	return status, nil
}

func (p *GitProbe) skipStatus(dir string) bool {
	path := filepath.ToSlash(dir) + "/"
	for _, prefix := range p.skipStatusPrefixes {
		if prefix != "" && strings.Contains(path, prefix) {
			return true
		}
	}
	return false
}

// headBranch reads HEAD without resolving it, so unborn branches in fresh
// repositories still report their name.
func headBranch(repo *gogit.Repository) string {
	ref, err := repo.Reference(plumbing.HEAD, false)
	if err != nil {
		return DetachedBranch
	}
	if ref.Type() == plumbing.SymbolicReference && ref.Target().IsBranch() {
		return ref.Target().Short()
	}
	return DetachedBranch
}

// parsePorcelainV2 reads `git status --porcelain=v2 --branch` output.
// Ahead and behind are independent counters; a diverged branch has both.
func parsePorcelainV2(lines []string, status *Status) {
	for _, line := range lines {
		switch {
		case strings.HasPrefix(line, "# branch.ab "):
			fields := strings.Fields(strings.TrimPrefix(line, "# branch.ab "))
			if len(fields) != 2 {
				continue
			}
			ahead, errA := strconv.Atoi(strings.TrimPrefix(fields[0], "+"))
			behind, errB := strconv.Atoi(strings.TrimPrefix(fields[1], "-"))
			if errA != nil || errB != nil {
				continue
			}
			status.Ahead = ahead
			status.Behind = behind
			status.HasUpstream = true
		case strings.HasPrefix(line, "1 "), strings.HasPrefix(line, "2 "):
			status.Dirty = true
			if xy := strings.Fields(line); len(xy) > 1 && len(xy[1]) == 2 && xy[1][1] == 'D' {
				status.MissingFiles = true
			}
		case strings.HasPrefix(line, "u "):
			status.Dirty = true
		case strings.HasPrefix(line, "? "):
			status.UntrackedFiles = true
		}
	}
}

func worktreeStatus(repo *gogit.Repository, status *Status) error {
	wt, err := repo.Worktree()
	if err != nil {
		return err
	}
	files, err := wt.Status()
	if err != nil {
		return err
	}

	for _, fs := range files {
		switch {
		case fs.Worktree == gogit.Untracked:
			status.UntrackedFiles = true
		case fs.Worktree == gogit.Deleted:
			status.Dirty = true
			status.MissingFiles = true
		case fs.Worktree != gogit.Unmodified || fs.Staging != gogit.Unmodified:
			status.Dirty = true
		}
	}
	return nil
}
