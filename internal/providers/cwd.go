package providers

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/alexisbeaulieu97/ribbon/internal/prompt"
)

const (
	homeToken     = "~"
	ellipsisToken = "…"
)

// ShortenPath splits cwd into display components, replacing the home
// directory prefix with "~". The filesystem root is the single token "/".
func ShortenPath(cwd, home string) []string {
	cwd = filepath.ToSlash(filepath.Clean(cwd))
	if home != "" {
		home = filepath.ToSlash(filepath.Clean(home))
		if home != "/" {
			if cwd == home {
				return []string{homeToken}
			}
			if rest, ok := strings.CutPrefix(cwd, home+"/"); ok {
				return append([]string{homeToken}, splitPath(rest)...)
			}
		}
	}

	names := splitPath(cwd)
	if len(names) == 0 {
		return []string{"/"}
	}
	return names
}

func splitPath(p string) []string {
	var names []string
	for _, name := range strings.Split(p, "/") {
		if name != "" {
			names = append(names, name)
		}
	}
	return names
}

// CollapsePath keeps the first two names and the last max(maxDepth-3, 1)
// names of a path longer than maxDepth, joined by a single ellipsis token.
// Paths the ellipsis would not shorten are returned as is.
func CollapsePath(names []string, maxDepth int) []string {
	if maxDepth < 1 || len(names) <= maxDepth {
		return names
	}

	tail := max(maxDepth-3, 1)
	if len(names) <= 2+1+tail {
		return names
	}

	out := make([]string, 0, 2+1+tail)
	out = append(out, names[:2]...)
	out = append(out, ellipsisToken)
	out = append(out, names[len(names)-tail:]...)
	return out
}

// Cwd draws the working directory, one segment per component.
type Cwd struct{}

func (Cwd) Name() string { return "cwd" }

func (Cwd) Provide(_ context.Context, pc *prompt.Context, out *prompt.Sequence) error {
	names := CollapsePath(ShortenPath(pc.Cwd, pc.Home), pc.CwdMaxDepth)
	pal := pc.Palette

	isHome := func(name string) bool {
		return name == homeToken && pal.HomeSpecialDisplay
	}
	text := func(name string) string {
		return prompt.Pad(pc.Shell.Escape(name))
	}

	if !pc.CwdOnly {
		for _, name := range names[:len(names)-1] {
			if isHome(name) {
				out.Append(text(name), pal.HomeFG, pal.HomeBG)
				continue
			}
			out.Append(text(name), pal.PathFG, pal.PathBG,
				prompt.WithSeparator(pc.Symbols.SeparatorThin, pal.SeparatorFG))
		}
	}

	last := names[len(names)-1]
	if isHome(last) {
		out.Append(text(last), pal.HomeFG, pal.HomeBG)
	} else {
		out.Append(text(last), pal.CwdFG, pal.PathBG)
	}
	return nil
}
