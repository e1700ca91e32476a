package providers

import (
	"context"
	"time"

	"github.com/alexisbeaulieu97/ribbon/internal/prompt"
	"github.com/alexisbeaulieu97/ribbon/internal/system"
	"github.com/alexisbeaulieu97/ribbon/internal/theme"
)

// Username shows the login name, on the root background for the
// superuser.
type Username struct {
	env system.Environment
}

func NewUsername(env system.Environment) *Username { return &Username{env: env} }

func (*Username) Name() string { return "username" }

func (p *Username) Provide(_ context.Context, pc *prompt.Context, out *prompt.Sequence) error {
	text, ok := pc.Shell.Placeholder(prompt.PlaceholderUser)
	if !ok {
		text = p.env.User
	}

	bg := pc.Palette.UsernameBG
	if p.env.IsRoot() {
		bg = pc.Palette.UsernameRootBG
	}
	out.Append(prompt.Pad(text), pc.Palette.UsernameFG, bg)
	return nil
}

// Hostname shows the machine name, optionally in colors derived from it.
type Hostname struct {
	hostname string
}

// NewHostname creates the provider for hostname. An empty name is looked up.
func NewHostname(hostname string) *Hostname {
	if hostname == "" {
		hostname = system.Hostname()
	}
	return &Hostname{hostname: hostname}
}

func (*Hostname) Name() string { return "hostname" }

func (p *Hostname) Provide(_ context.Context, pc *prompt.Context, out *prompt.Sequence) error {
	short := system.ShortHostname(p.hostname)

	if pc.ColorizeHostname && short != "" {
		fg, bg := theme.HostnameColors(p.hostname)
		out.Append(prompt.Pad(pc.Shell.Escape(short)), fg, bg)
		return nil
	}

	text, ok := pc.Shell.Placeholder(prompt.PlaceholderHost)
	if !ok {
		text = short
	}
	if text == "" {
		return nil
	}
	out.Append(prompt.Pad(text), pc.Palette.HostnameFG, pc.Palette.HostnameBG)
	return nil
}

// Clock shows the time the prompt was drawn.
type Clock struct {
	now func() time.Time
}

// NewClock creates the provider. A nil now uses time.Now.
func NewClock(now func() time.Time) *Clock {
	if now == nil {
		now = time.Now
	}
	return &Clock{now: now}
}

func (*Clock) Name() string { return "time" }

func (p *Clock) Provide(_ context.Context, pc *prompt.Context, out *prompt.Sequence) error {
	text, ok := pc.Shell.Placeholder(prompt.PlaceholderTime)
	if !ok {
		text = p.now().Format(time.TimeOnly)
	}
	out.Append(prompt.Pad(text), pc.Palette.TimeFG, pc.Palette.TimeBG)
	return nil
}
