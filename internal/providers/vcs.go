package providers

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/alexisbeaulieu97/ribbon/internal/prompt"
	"github.com/alexisbeaulieu97/ribbon/internal/vcs"
)

// VCS draws the branch segment for one version-control system.
type VCS struct {
	probe vcs.Probe
}

// NewVCS wraps probe as a segment provider named after it.
func NewVCS(probe vcs.Probe) *VCS {
	return &VCS{probe: probe}
}

func (p *VCS) Name() string { return p.probe.Name() }

func (p *VCS) Provide(ctx context.Context, pc *prompt.Context, out *prompt.Sequence) error {
	repo, err := p.probe.Open(ctx, pc.ProbeDir)
	if errors.Is(err, vcs.ErrNotRepository) {
		return nil
	}
	if err != nil {
		return err
	}

	branch, ok := repo.BranchName()
	if !ok {
		return nil
	}

	pal := pc.Palette
	if repo.Skipped() {
		out.Append(prompt.Pad(pc.Shell.Escape(branch)), pal.RepoCleanBG, pal.RepoCleanFG)
		return nil
	}

	fg, bg := pal.RepoCleanFG, pal.RepoCleanBG
	if repo.IsDirty() {
		fg, bg = pal.RepoDirtyFG, pal.RepoDirtyBG
	}
	out.Append(prompt.Pad(pc.Shell.Escape(RepoLabel(branch, repo, pc.Symbols))), fg, bg)
	return nil
}

// RepoLabel formats "branch[ N<ahead>][ N<behind>][ +!]".
func RepoLabel(branch string, repo vcs.Repository, sym prompt.Symbols) string {
	var b strings.Builder
	b.WriteString(branch)

	if ahead, behind, ok := repo.AheadBehind(); ok {
		if ahead > 0 {
			fmt.Fprintf(&b, " %d%s", ahead, sym.Ahead)
		}
		if behind > 0 {
			fmt.Fprintf(&b, " %d%s", behind, sym.Behind)
		}
	}

	var flags string
	if repo.Untracked() {
		flags += "+"
	}
	if repo.Missing() {
		flags += "!"
	}
	if flags != "" {
		b.WriteString(" " + flags)
	}
	return b.String()
}
