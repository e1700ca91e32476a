package main

import (
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/ribbon/internal/cmdexec"
	"github.com/alexisbeaulieu97/ribbon/internal/config"
	"github.com/alexisbeaulieu97/ribbon/internal/logger"
	"github.com/alexisbeaulieu97/ribbon/internal/prompt"
	"github.com/alexisbeaulieu97/ribbon/internal/providers"
	"github.com/alexisbeaulieu97/ribbon/internal/system"
	"github.com/alexisbeaulieu97/ribbon/internal/theme"
)

// app carries the collaborators the commands reach for, so tests can swap
// the operating system out.
type app struct {
	fs         system.FS
	readEnv    func() (system.Environment, error)
	deps       providers.Deps
	isTerminal func(io.Writer) bool
	executable func() (string, error)
	lookPath   func(name string) (string, bool)
}

func newApp() *app {
	return &app{
		fs:         system.OSFS{},
		readEnv:    system.ReadEnvironment,
		isTerminal: logger.IsTerminal,
		executable: os.Executable,
		lookPath:   cmdexec.LookPath,
	}
}

func (a *app) newLogger(cmd *cobra.Command, flags *rootFlags) *logger.Logger {
	w := cmd.ErrOrStderr()
	opts := logger.Options{Level: "warn", Writer: w, HumanReadable: a.isTerminal(w)}
	if flags.verbose {
		opts.Level = "debug"
	}

	log, err := logger.New(opts)
	if err != nil {
		return logger.Nop()
	}
	return log
}

// loadConfig resolves settings by precedence: explicitly set flags, then
// RIBBON_* variables, then the config file, then defaults. A broken config
// is reported and replaced by the defaults so a prompt is still drawn.
func (a *app) loadConfig(cmd *cobra.Command, flags *rootFlags, log *logger.Logger) *config.Config {
	cfg, err := config.Load(flags.configPath)
	if err != nil {
		log.WithFields(map[string]any{"error": err.Error()}).Warn("ignoring configuration, using defaults")
		cfg = config.Defaults()
	}

	applyFlags(cmd.Flags().Changed, flags, cfg)
	sanitizeConfig(cfg, log)
	return cfg
}

// sanitizeConfig replaces flag values the prompt cannot use with defaults,
// so a typo on the command line still yields a prompt.
func sanitizeConfig(cfg *config.Config, log *logger.Logger) {
	def := config.Defaults()

	if cfg.Cwd.MaxDepth < 1 {
		log.WithFields(map[string]any{"value": cfg.Cwd.MaxDepth, "default": def.Cwd.MaxDepth}).
			Warn("cwd max depth must be positive, using default")
		cfg.Cwd.MaxDepth = def.Cwd.MaxDepth
	}
	if _, err := prompt.ParseMode(cfg.Mode); err != nil {
		log.WithFields(map[string]any{"error": err.Error()}).Warn("invalid mode, using default")
		cfg.Mode = def.Mode
	}
	if _, err := prompt.ParseShell(cfg.Shell); err != nil {
		log.WithFields(map[string]any{"error": err.Error()}).Warn("invalid shell, using default")
		cfg.Shell = def.Shell
	}
}

func applyFlags(changed func(name string) bool, flags *rootFlags, cfg *config.Config) {
	if changed("theme") {
		cfg.Theme = flags.theme
	}
	if changed("mode") {
		cfg.Mode = flags.mode
	}
	if changed("shell") {
		cfg.Shell = flags.shell
	}
	if changed("cwd-only") {
		cfg.Cwd.Only = flags.cwdOnly
	}
	if changed("cwd-max-depth") {
		cfg.Cwd.MaxDepth = flags.cwdMaxDepth
	}
	if changed("colorize-hostname") {
		cfg.Hostname.Colorize = flags.colorizeHostname
	}
	if changed("timeout") {
		cfg.ProbeTimeout = config.Duration(flags.timeout)
	}
	if changed("parallel") {
		cfg.Parallel = flags.parallel
	}
}

func resolvePalette(cfg *config.Config, log *logger.Logger) theme.Palette {
	pal, err := theme.Resolve(theme.Kind(cfg.Theme), cfg.Colors)
	if err != nil {
		log.WithFields(map[string]any{"error": err.Error()}).Warn("unknown theme, using default colors")
		pal = theme.Default()
	}
	if cfg.Cwd.HomeSpecial != nil {
		pal.HomeSpecialDisplay = *cfg.Cwd.HomeSpecial
	}
	return pal
}
