package providers

import (
	"context"
	"strconv"

	"github.com/alexisbeaulieu97/ribbon/internal/prompt"
	"github.com/alexisbeaulieu97/ribbon/internal/system"
)

// Readonly shows the lock glyph when the working directory is not
// writable.
type Readonly struct {
	writable func(dir string) bool
}

// NewReadonly creates the provider. A nil check uses access(2).
func NewReadonly(writable func(dir string) bool) *Readonly {
	if writable == nil {
		writable = system.Writable
	}
	return &Readonly{writable: writable}
}

func (*Readonly) Name() string { return "readonly" }

func (p *Readonly) Provide(_ context.Context, pc *prompt.Context, out *prompt.Sequence) error {
	if p.writable(pc.Cwd) {
		return nil
	}
	out.Append(prompt.Pad(pc.Symbols.Lock), pc.Palette.ReadonlyFG, pc.Palette.ReadonlyBG)
	return nil
}

// SSH shows the network glyph inside an ssh session.
type SSH struct {
	env system.Environment
}

func NewSSH(env system.Environment) *SSH { return &SSH{env: env} }

func (*SSH) Name() string { return "ssh" }

func (p *SSH) Provide(_ context.Context, pc *prompt.Context, out *prompt.Sequence) error {
	if !p.env.InSSHSession() {
		return nil
	}
	out.Append(prompt.Pad(pc.Symbols.Network), pc.Palette.SSHFG, pc.Palette.SSHBG)
	return nil
}

// VirtualEnv shows the active Python environment.
type VirtualEnv struct {
	env system.Environment
}

func NewVirtualEnv(env system.Environment) *VirtualEnv { return &VirtualEnv{env: env} }

func (*VirtualEnv) Name() string { return "virtualenv" }

func (p *VirtualEnv) Provide(_ context.Context, pc *prompt.Context, out *prompt.Sequence) error {
	name := p.env.VirtualEnvName()
	if name == "" {
		return nil
	}
	out.Append(prompt.Pad(pc.Shell.Escape(name)), pc.Palette.VirtualEnvFG, pc.Palette.VirtualEnvBG)
	return nil
}

// JobCounter counts background jobs of the interactive shell.
type JobCounter interface {
	Count(ctx context.Context) (int, error)
}

// Jobs shows the number of background jobs, if any.
type Jobs struct {
	counter JobCounter
}

// NewJobs creates the provider. A nil counter reads the process table.
func NewJobs(counter JobCounter) *Jobs {
	if counter == nil {
		counter = system.NewJobCounter(nil)
	}
	return &Jobs{counter: counter}
}

func (*Jobs) Name() string { return "jobs" }

func (p *Jobs) Provide(ctx context.Context, pc *prompt.Context, out *prompt.Sequence) error {
	n, err := p.counter.Count(ctx)
	if err != nil {
		return err
	}
	if n <= 0 {
		return nil
	}
	out.Append(prompt.Pad(strconv.Itoa(n)), pc.Palette.JobsFG, pc.Palette.JobsBG)
	return nil
}

// Exit is the final ready-glyph segment, colored by the previous command's
// exit status. It always emits exactly one segment.
type Exit struct{}

func (Exit) Name() string { return "exit" }

func (Exit) Provide(_ context.Context, pc *prompt.Context, out *prompt.Sequence) error {
	fg, bg := pc.Palette.CmdPassedFG, pc.Palette.CmdPassedBG
	if pc.PrevExitCode != 0 {
		fg, bg = pc.Palette.CmdFailedFG, pc.Palette.CmdFailedBG
	}
	out.Append(ReadyGlyph(pc.Shell), fg, bg)
	return nil
}

// ReadyGlyph is the padded prompt terminator for shell.
func ReadyGlyph(shell prompt.Shell) string {
	token, _ := shell.Placeholder(prompt.PlaceholderReady)
	return prompt.Pad(token)
}
