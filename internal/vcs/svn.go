package vcs

import (
	"context"
	"path"
	"strings"

	"github.com/alexisbeaulieu97/ribbon/internal/cmdexec"
)

// SvnProbe detects Subversion working copies through the svn binary.
type SvnProbe struct {
	runner cmdexec.Runner
}

// NewSvnProbe creates a Subversion probe. A nil runner uses the OS.
func NewSvnProbe(runner cmdexec.Runner) *SvnProbe {
	if runner == nil {
		runner = cmdexec.OSRunner{}
	}
	return &SvnProbe{runner: runner}
}

func (p *SvnProbe) Name() string { return "svn" }

// Open derives the branch from the working copy's repository-relative URL
// and changes from `svn status`. Anything on stderr means not a working copy.
func (p *SvnProbe) Open(ctx context.Context, dir string) (Repository, error) {
	res, err := p.runner.Run(ctx, dir, "svn", "info", "--show-item", "relative-url")
	if err != nil || res.Stderr != "" {
		return nil, notApplicable(ctx, "svn info", err)
	}

	status := &Status{Branch: svnBranch(strings.TrimSpace(res.Stdout))}

	res, err = p.runner.Run(ctx, dir, "svn", "status")
	if err != nil || res.Stderr != "" {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		return status, nil
	}
	parseSvnStatus(res.Lines(), status)
	return status, nil
}

// svnBranch maps ^/trunk, ^/branches/x and ^/tags/x layouts to a name.
func svnBranch(relativeURL string) string {
	rel := strings.Trim(strings.TrimPrefix(relativeURL, "^"), "/")
	if rel == "" {
		return "svn"
	}

	parts := strings.Split(rel, "/")
	for i, part := range parts {
		switch part {
		case "trunk":
			return "trunk"
		case "branches", "tags":
			if i+1 < len(parts) {
				return parts[i+1]
			}
		}
	}
	return path.Base(rel)
}

func parseSvnStatus(lines []string, status *Status) {
	for _, line := range lines {
		if line == "" || strings.HasPrefix(line, "Performing status") {
			continue
		}
		switch line[0] {
		case 'A', 'C', 'D', 'M', 'R', '~':
			status.Dirty = true
		case '?':
			status.UntrackedFiles = true
		case '!':
			status.MissingFiles = true
		case ' ':
			if len(line) > 1 && (line[1] == 'M' || line[1] == 'C') {
				status.Dirty = true
			}
		}
	}
}
