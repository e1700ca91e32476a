package prompt

import (
	"fmt"

	"github.com/alexisbeaulieu97/ribbon/internal/theme"
)

// DefaultCwdMaxDepth is the number of path components shown before the
// middle of the path collapses into an ellipsis.
const DefaultCwdMaxDepth = 5

// Options feeds NewContext.
type Options struct {
	Mode             Mode
	Shell            Shell
	Palette          theme.Palette
	CwdMaxDepth      int
	CwdOnly          bool
	ColorizeHostname bool
	PrevExitCode     int
	Cwd              string
	ProbeDir         string
	Home             string
}

// Context is the per-invocation render configuration. It is built once by
// the driver and shared read-only by every provider.
type Context struct {
	Mode             Mode
	Symbols          Symbols
	Shell            Shell
	Palette          theme.Palette
	CwdMaxDepth      int
	CwdOnly          bool
	ColorizeHostname bool
	PrevExitCode     int

	// Cwd is the directory the interactive shell believes it is in. It may be
	// stale when that directory has been removed.
	Cwd string
	// ProbeDir is where external tools run: Cwd, or its nearest existing
	// ancestor when Cwd is gone.
	ProbeDir string
	Home     string
}

// NewContext validates opts and resolves the glyph set.
func NewContext(opts Options) (*Context, error) {
	mode, err := ParseMode(string(opts.Mode))
	if err != nil {
		return nil, err
	}
	shell, err := ParseShell(string(opts.Shell))
	if err != nil {
		return nil, err
	}

	depth := opts.CwdMaxDepth
	if depth == 0 {
		depth = DefaultCwdMaxDepth
	}
	if depth < 1 {
		return nil, fmt.Errorf("cwd max depth must be positive, got %d", opts.CwdMaxDepth)
	}

	probeDir := opts.ProbeDir
	if probeDir == "" {
		probeDir = opts.Cwd
	}

	return &Context{
		Mode:             mode,
		Symbols:          mode.Symbols(),
		Shell:            shell,
		Palette:          opts.Palette,
		CwdMaxDepth:      depth,
		CwdOnly:          opts.CwdOnly,
		ColorizeHostname: opts.ColorizeHostname,
		PrevExitCode:     opts.PrevExitCode,
		Cwd:              opts.Cwd,
		ProbeDir:         probeDir,
		Home:             opts.Home,
	}, nil
}

// NewSequence returns an empty sequence using the context's separator.
func (c *Context) NewSequence() *Sequence {
	return NewSequence(c.Symbols.Separator)
}

// Pad surrounds text with the single spaces every segment carries.
func Pad(text string) string {
	return " " + text + " "
}
