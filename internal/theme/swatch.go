package theme

// Swatch pairs a role name with its resolved color.
type Swatch struct {
	Role  string
	Color Color
}

var swatchOrder = []string{
	"username_fg", "username_bg", "username_root_bg",
	"hostname_fg", "hostname_bg",
	"home_fg", "home_bg", "path_fg", "path_bg", "cwd_fg", "separator_fg",
	"readonly_fg", "readonly_bg",
	"ssh_fg", "ssh_bg",
	"repo_clean_fg", "repo_clean_bg", "repo_dirty_fg", "repo_dirty_bg",
	"jobs_fg", "jobs_bg",
	"cmd_passed_fg", "cmd_passed_bg", "cmd_failed_fg", "cmd_failed_bg",
	"virtual_env_fg", "virtual_env_bg",
	"kube_fg", "kube_bg",
	"time_fg", "time_bg",
}

// Swatches lists every role of p in a stable, grouped order.
func Swatches(p Palette) []Swatch {
	roles := p.roles()
	out := make([]Swatch, 0, len(swatchOrder))
	for _, name := range swatchOrder {
		out = append(out, Swatch{Role: name, Color: *roles[name]})
	}
	return out
}
