// Package theme holds the static color tables used by prompt segments.
//
// Colors are xterm-256 indices. The tables mirror the semantic roles a
// segment can ask for (clean repository background, failed command
// foreground, ...) so providers never hard-code numbers.
package theme

import (
	"fmt"
	"sort"
	"strings"
)

// Color is an xterm-256 palette index.
type Color uint8

// Kind selects one of the built-in palettes or the custom palette built from
// configuration overrides.
type Kind string

const (
	KindDefault Kind = "default"
	KindLight   Kind = "light"
	KindCustom  Kind = "custom"
)

// Palette maps semantic roles to colors.
type Palette struct {
	UsernameFG     Color
	UsernameBG     Color
	UsernameRootBG Color

	HostnameFG Color
	HostnameBG Color

	HomeSpecialDisplay bool
	HomeFG             Color
	HomeBG             Color
	PathFG             Color
	PathBG             Color
	CwdFG              Color
	SeparatorFG        Color

	ReadonlyFG Color
	ReadonlyBG Color

	SSHFG Color
	SSHBG Color

	RepoCleanFG Color
	RepoCleanBG Color
	RepoDirtyFG Color
	RepoDirtyBG Color

	JobsFG Color
	JobsBG Color

	CmdPassedFG Color
	CmdPassedBG Color
	CmdFailedFG Color
	CmdFailedBG Color

	VirtualEnvFG Color
	VirtualEnvBG Color

	KubeFG Color
	KubeBG Color

	TimeFG Color
	TimeBG Color
}

// Default is the dark-terminal palette.
func Default() Palette {
	return Palette{
		UsernameFG:     250,
		UsernameBG:     240,
		UsernameRootBG: 124,

		HostnameFG: 250,
		HostnameBG: 238,

		HomeSpecialDisplay: true,
		HomeFG:             15,  // white
		HomeBG:             31,  // blueish
		PathFG:             250, // light grey
		PathBG:             237, // dark grey
		CwdFG:              254, // nearly-white grey
		SeparatorFG:        244,

		ReadonlyFG: 254,
		ReadonlyBG: 124,

		SSHFG: 254,
		SSHBG: 166, // medium orange

		RepoCleanFG: 0,   // black
		RepoCleanBG: 148, // light green
		RepoDirtyFG: 15,  // white
		RepoDirtyBG: 161, // pink/red

		JobsFG: 39,
		JobsBG: 238,

		CmdPassedFG: 15,
		CmdPassedBG: 236,
		CmdFailedFG: 15,
		CmdFailedBG: 161,

		VirtualEnvFG: 0,
		VirtualEnvBG: 35, // mid-tone green

		KubeFG: 15,
		KubeBG: 26,

		TimeFG: 250,
		TimeBG: 238,
	}
}

// Light is the palette for light-background terminals.
func Light() Palette {
	p := Default()

	p.UsernameFG = 237
	p.UsernameBG = 15

	p.HomeBG = 39
	p.PathFG = 237
	p.PathBG = 250
	p.CwdFG = 0

	p.JobsBG = 15

	p.CmdPassedFG = 237
	p.CmdPassedBG = 251

	return p
}

// Resolve returns the palette for kind. Overrides are only honoured for
// KindCustom, which starts from Default.
func Resolve(kind Kind, overrides map[string]int) (Palette, error) {
	switch kind {
	case "", KindDefault:
		return Default(), nil
	case KindLight:
		return Light(), nil
	case KindCustom:
		p := Default()
		if err := p.Override(overrides); err != nil {
			return Palette{}, err
		}
		return p, nil
	default:
		return Palette{}, fmt.Errorf("unknown theme %q (expected one of %s)", kind, strings.Join(KindNames(), ", "))
	}
}

// KindNames lists the accepted theme kinds.
func KindNames() []string {
	return []string{string(KindDefault), string(KindLight), string(KindCustom)}
}

// Override applies role -> color overrides in place.
func (p *Palette) Override(overrides map[string]int) error {
	roles := p.roles()
	names := make([]string, 0, len(overrides))
	for name := range overrides {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		value := overrides[name]
		slot, ok := roles[strings.ToLower(name)]
		if !ok {
			return fmt.Errorf("unknown color role %q", name)
		}
		if value < 0 || value > 255 {
			return fmt.Errorf("color role %q: %d is outside 0..255", name, value)
		}
		*slot = Color(value)
	}
	return nil
}

// IsRole reports whether name is a known color role.
func IsRole(name string) bool {
	var p Palette
	_, ok := p.roles()[strings.ToLower(name)]
	return ok
}

// RoleNames lists all color roles in display order.
func RoleNames() []string {
	swatches := Swatches(Default())
	names := make([]string, len(swatches))
	for i, s := range swatches {
		names[i] = s.Role
	}
	return names
}

func (p *Palette) roles() map[string]*Color {
	return map[string]*Color{
		"username_fg":      &p.UsernameFG,
		"username_bg":      &p.UsernameBG,
		"username_root_bg": &p.UsernameRootBG,
		"hostname_fg":      &p.HostnameFG,
		"hostname_bg":      &p.HostnameBG,
		"home_fg":          &p.HomeFG,
		"home_bg":          &p.HomeBG,
		"path_fg":          &p.PathFG,
		"path_bg":          &p.PathBG,
		"cwd_fg":           &p.CwdFG,
		"separator_fg":     &p.SeparatorFG,
		"readonly_fg":      &p.ReadonlyFG,
		"readonly_bg":      &p.ReadonlyBG,
		"ssh_fg":           &p.SSHFG,
		"ssh_bg":           &p.SSHBG,
		"repo_clean_fg":    &p.RepoCleanFG,
		"repo_clean_bg":    &p.RepoCleanBG,
		"repo_dirty_fg":    &p.RepoDirtyFG,
		"repo_dirty_bg":    &p.RepoDirtyBG,
		"jobs_fg":          &p.JobsFG,
		"jobs_bg":          &p.JobsBG,
		"cmd_passed_fg":    &p.CmdPassedFG,
		"cmd_passed_bg":    &p.CmdPassedBG,
		"cmd_failed_fg":    &p.CmdFailedFG,
		"cmd_failed_bg":    &p.CmdFailedBG,
		"virtual_env_fg":   &p.VirtualEnvFG,
		"virtual_env_bg":   &p.VirtualEnvBG,
		"kube_fg":          &p.KubeFG,
		"kube_bg":          &p.KubeBG,
		"time_fg":          &p.TimeFG,
		"time_bg":          &p.TimeBG,
	}
}
