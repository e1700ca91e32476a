package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/ribbon/internal/logger"
	"github.com/alexisbeaulieu97/ribbon/internal/prompt"
	"github.com/alexisbeaulieu97/ribbon/internal/provider"
	"github.com/alexisbeaulieu97/ribbon/internal/providers"
	"github.com/alexisbeaulieu97/ribbon/internal/system"
	"github.com/alexisbeaulieu97/ribbon/internal/vcs"
)

func (a *app) runPrompt(cmd *cobra.Command, flags *rootFlags, args []string) error {
	log := a.newLogger(cmd, flags)
	cfg := a.loadConfig(cmd, flags, log)

	wd, err := system.ResolveCwd(a.fs, log)
	if err != nil {
		return err
	}

	env, err := a.readEnv()
	if err != nil {
		log.WithFields(map[string]any{"error": err.Error()}).Warn("reading environment")
	}

	pc, err := prompt.NewContext(prompt.Options{
		Mode:             prompt.Mode(cfg.Mode),
		Shell:            prompt.Shell(cfg.Shell),
		Palette:          resolvePalette(cfg, log),
		CwdMaxDepth:      cfg.Cwd.MaxDepth,
		CwdOnly:          cfg.Cwd.Only,
		ColorizeHostname: cfg.Hostname.Colorize,
		PrevExitCode:     parseExitCode(args, log),
		Cwd:              wd.Reported,
		ProbeDir:         wd.Actual,
		Home:             env.Home,
	})
	if err != nil {
		return err
	}

	deps := a.deps
	deps.Env = env
	deps.SkipStatusPrefixes = cfg.Git.SkipStatusPrefixes
	if deps.SkipStatusPrefixes == nil {
		deps.SkipStatusPrefixes = vcs.DefaultSkipStatusPrefixes
	}

	reg, err := providers.NewRegistry(cfg.Segments, deps)
	if err != nil {
		log.WithFields(map[string]any{"error": err.Error()}).Warn("invalid segment list, using defaults")
		if reg, err = providers.NewRegistry(nil, deps); err != nil {
			return err
		}
	}

	res := reg.Run(cmd.Context(), pc, provider.RunOptions{
		Parallel: cfg.Parallel,
		Timeout:  cfg.ProbeTimeout.Std(),
		Logger:   log,
	})

	log.WithFields(map[string]any{
		"providers": strings.Join(reg.Names(), ","),
		"segments":  res.Sequence.Len(),
		"skipped":   len(res.Diagnostics),
	}).Debug("prompt rendered")

	_, err = fmt.Fprint(cmd.OutOrStdout(), prompt.NewRenderer(pc.Shell).Render(res.Sequence))
	return err
}

// parseExitCode reads the previous command's status. Anything unparsable
// counts as a failure.
func parseExitCode(args []string, log *logger.Logger) int {
	if len(args) == 0 {
		return 0
	}

	code, err := strconv.Atoi(strings.TrimSpace(args[0]))
	if err != nil {
		log.WithFields(map[string]any{"value": args[0]}).Debug("exit code is not a number")
		return 1
	}
	return code
}
