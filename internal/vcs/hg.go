package vcs

import (
	"context"
	"strings"

	"github.com/alexisbeaulieu97/ribbon/internal/cmdexec"
)

// HgProbe detects Mercurial working copies through the hg binary.
type HgProbe struct {
	runner cmdexec.Runner
}

// NewHgProbe creates a Mercurial probe. A nil runner uses the OS.
func NewHgProbe(runner cmdexec.Runner) *HgProbe {
	if runner == nil {
		runner = cmdexec.OSRunner{}
	}
	return &HgProbe{runner: runner}
}

func (p *HgProbe) Name() string { return "hg" }

// Open reads the branch with `hg branch` and changes with `hg status`.
// A failing status run leaves the working copy reported as clean.
func (p *HgProbe) Open(ctx context.Context, dir string) (Repository, error) {
	res, err := p.runner.Run(ctx, dir, "hg", "branch")
	branch := strings.TrimSpace(res.Stdout)
	if err != nil || branch == "" {
		return nil, notApplicable(ctx, "hg branch", err)
	}

	status := &Status{Branch: branch}

	res, err = p.runner.Run(ctx, dir, "hg", "status")
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		return status, nil
	}
	parseHgStatus(res.Lines(), status)
	return status, nil
}

func parseHgStatus(lines []string, status *Status) {
	for _, line := range lines {
		if line == "" {
			continue
		}
		switch line[0] {
		case '?':
			status.UntrackedFiles = true
		case '!':
			status.MissingFiles = true
		case 'I', 'C', ' ':
		default:
			status.Dirty = true
		}
	}
}
