package vcs

import (
	"context"
	"strings"

	"github.com/alexisbeaulieu97/ribbon/internal/cmdexec"
)

// FossilProbe detects Fossil checkouts through the fossil binary.
type FossilProbe struct {
	runner cmdexec.Runner
}

// NewFossilProbe creates a Fossil probe. A nil runner uses the OS.
func NewFossilProbe(runner cmdexec.Runner) *FossilProbe {
	if runner == nil {
		runner = cmdexec.OSRunner{}
	}
	return &FossilProbe{runner: runner}
}

func (p *FossilProbe) Name() string { return "fossil" }

// Open reads the current branch (the `*` line of `fossil branch`), edits
// from `fossil changes` and untracked files from `fossil extras`.
func (p *FossilProbe) Open(ctx context.Context, dir string) (Repository, error) {
	res, err := p.runner.Run(ctx, dir, "fossil", "branch")
	if err != nil {
		return nil, notApplicable(ctx, "fossil branch", err)
	}

	branch := ""
	for _, line := range res.Lines() {
		line = strings.TrimSpace(line)
		if strings.HasPrefix(line, "*") {
			branch = strings.TrimSpace(strings.TrimPrefix(line, "*"))
			break
		}
	}
	if branch == "" {
		return nil, notApplicable(ctx, "fossil branch", nil)
	}

	status := &Status{Branch: branch}

	if res, err := p.runner.Run(ctx, dir, "fossil", "changes"); err == nil {
		parseFossilChanges(res.Lines(), status)
	} else if ctxErr := ctx.Err(); ctxErr != nil {
		return nil, ctxErr
	}

	if res, err := p.runner.Run(ctx, dir, "fossil", "extras"); err == nil {
		status.UntrackedFiles = strings.TrimSpace(res.Stdout) != ""
	} else if ctxErr := ctx.Err(); ctxErr != nil {
		return nil, ctxErr
	}

	return status, nil
}

func parseFossilChanges(lines []string, status *Status) {
	for _, line := range lines {
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		if fields[0] == "MISSING" {
			status.MissingFiles = true
			continue
		}
		status.Dirty = true
	}
}
