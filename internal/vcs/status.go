// Package vcs probes version-control working copies.
//
// Each probe answers the same narrow questions (branch, dirty, ahead/behind,
// untracked, missing) and converts every tool failure into ErrNotRepository,
// so callers only ever see "applicable" or "not applicable".
package vcs

import (
	"context"
	"errors"
	"fmt"
)

// ErrNotRepository means the directory is not a working copy of the probed
// VCS, or the VCS tool is unavailable.
var ErrNotRepository = errors.New("not a repository")

// DetachedBranch is reported when HEAD does not point at a branch.
const DetachedBranch = "(Detached)"

// Repository is the capability set every probe exposes.
type Repository interface {
	BranchName() (string, bool)
	IsDirty() bool
	AheadBehind() (ahead, behind int, ok bool)
	Untracked() bool
	Missing() bool
	// Skipped reports that change detection was deliberately not run, so
	// only the branch is meaningful.
	Skipped() bool
}

// Probe detects one VCS.
type Probe interface {
	Name() string
	Open(ctx context.Context, dir string) (Repository, error)
}

// Status is the snapshot a probe collects.
type Status struct {
	Branch         string
	Dirty          bool
	Ahead          int
	Behind         int
	HasUpstream    bool
	UntrackedFiles bool
	MissingFiles   bool
	StatusSkipped  bool
}

var _ Repository = (*Status)(nil)

func (s *Status) BranchName() (string, bool) { return s.Branch, s.Branch != "" }

func (s *Status) IsDirty() bool { return s.Dirty }

func (s *Status) AheadBehind() (int, int, bool) { return s.Ahead, s.Behind, s.HasUpstream }

func (s *Status) Untracked() bool { return s.UntrackedFiles }

func (s *Status) Missing() bool { return s.MissingFiles }

func (s *Status) Skipped() bool { return s.StatusSkipped }

// notApplicable maps a tool failure onto ErrNotRepository, except for
// context expiry which callers must be able to tell apart.
func notApplicable(ctx context.Context, tool string, err error) error {
	if ctxErr := ctx.Err(); ctxErr != nil {
		return ctxErr
	}
	if err == nil {
		return ErrNotRepository
	}
	return fmt.Errorf("%w: %s: %v", ErrNotRepository, tool, err)
}
