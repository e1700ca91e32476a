// Package providers implements the prompt segments: working directory,
// version control, session indicators and the exit status.
package providers

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/alexisbeaulieu97/ribbon/internal/cmdexec"
	"github.com/alexisbeaulieu97/ribbon/internal/provider"
	"github.com/alexisbeaulieu97/ribbon/internal/system"
	"github.com/alexisbeaulieu97/ribbon/internal/vcs"
)

// DefaultSegments is the order used when configuration does not pick one.
var DefaultSegments = []string{
	"virtualenv", "ssh", "cwd", "readonly", "git", "hg", "svn", "fossil", "jobs",
}

// Deps are the collaborators shared by the built-in providers. Zero values
// fall back to the real operating system.
type Deps struct {
	Env                system.Environment
	Runner             cmdexec.Runner
	Jobs               JobCounter
	Kube               KubeContextReader
	Writable           func(dir string) bool
	Hostname           string
	Now                func() time.Time
	SkipStatusPrefixes []string
}

type factory func(Deps) provider.Provider

var factories = map[string]factory{
	"virtualenv": func(d Deps) provider.Provider { return NewVirtualEnv(d.Env) },
	"ssh":        func(d Deps) provider.Provider { return NewSSH(d.Env) },
	"cwd":        func(Deps) provider.Provider { return Cwd{} },
	"readonly":   func(d Deps) provider.Provider { return NewReadonly(d.Writable) },
	"git": func(d Deps) provider.Provider {
		return NewVCS(vcs.NewGitProbe(d.Runner, d.SkipStatusPrefixes))
	},
	"hg":       func(d Deps) provider.Provider { return NewVCS(vcs.NewHgProbe(d.Runner)) },
	"svn":      func(d Deps) provider.Provider { return NewVCS(vcs.NewSvnProbe(d.Runner)) },
	"fossil":   func(d Deps) provider.Provider { return NewVCS(vcs.NewFossilProbe(d.Runner)) },
	"jobs":     func(d Deps) provider.Provider { return NewJobs(d.Jobs) },
	"username": func(d Deps) provider.Provider { return NewUsername(d.Env) },
	"hostname": func(d Deps) provider.Provider { return NewHostname(d.Hostname) },
	"time":     func(d Deps) provider.Provider { return NewClock(d.Now) },
	"kube":     func(d Deps) provider.Provider { return NewKube(d.Kube) },
}

// Names lists every configurable segment name, sorted.
func Names() []string {
	names := make([]string, 0, len(factories))
	for name := range factories {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// IsKnown reports whether name is a configurable segment.
func IsKnown(name string) bool {
	_, ok := factories[strings.ToLower(name)]
	return ok
}

// Build creates the named provider.
func Build(name string, deps Deps) (provider.Provider, error) {
	f, ok := factories[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("unknown segment %q (expected one of %s)", name, strings.Join(Names(), ", "))
	}
	return f(deps), nil
}

// NewRegistry registers the named providers in order and installs the exit
// segment as the tail, so it renders last regardless of probe timeouts. An
// empty list selects DefaultSegments.
func NewRegistry(names []string, deps Deps) (*provider.Registry, error) {
	if len(names) == 0 {
		names = DefaultSegments
	}

	reg := provider.NewRegistry()
	for _, name := range names {
		p, err := Build(name, deps)
		if err != nil {
			return nil, err
		}
		if err := reg.Register(p); err != nil {
			return nil, err
		}
	}
	if err := reg.SetTail(Exit{}); err != nil {
		return nil, err
	}
	return reg, nil
}
