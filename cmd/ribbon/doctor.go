package main

import (
	"errors"
	"fmt"
	"io"
	"slices"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/ribbon/internal/config"
	"github.com/alexisbeaulieu97/ribbon/internal/kube"
	"github.com/alexisbeaulieu97/ribbon/internal/logger"
	"github.com/alexisbeaulieu97/ribbon/internal/providers"
	"github.com/alexisbeaulieu97/ribbon/internal/system"
)

var (
	doctorHeader  = color.New(color.FgCyan, color.Bold)
	doctorSuccess = color.New(color.FgGreen)
	doctorError   = color.New(color.FgRed)
	doctorWarn    = color.New(color.FgYellow)
	doctorDim     = color.New(color.FgHiBlack)
	doctorLabel   = color.New(color.FgWhite)
)

type checkLevel int

const (
	checkOK checkLevel = iota
	checkWarn
	checkFailed
)

type checkResult struct {
	level  checkLevel
	status string
}

type namedCheck struct {
	label string
	res   checkResult
}

func newDoctorCmd(a *app, flags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "doctor",
		Short: "Check what the prompt can see",
		Long: `Check the configuration file, the working directory, the version control
tools on PATH and the Kubernetes context used by the kube segment.

Examples:
  ribbon doctor
  ribbon doctor --config ./ribbon.yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runDoctor(cmd, flags)
		},
	}

	return cmd
}

func (a *app) runDoctor(cmd *cobra.Command, flags *rootFlags) error {
	out := cmd.OutOrStdout()

	doctorHeader.Fprintln(out, "ribbon doctor")
	fmt.Fprintln(out)

	cfg, cfgResult := a.checkConfig(flags.configPath)
	segments := cfg.Segments
	if len(segments) == 0 {
		segments = providers.DefaultSegments
	}

	results := []namedCheck{
		{"Config", cfgResult},
		{"Directory", a.checkCwd()},
	}
	for _, tool := range []string{"git", "hg", "svn", "fossil"} {
		results = append(results, namedCheck{tool, a.checkTool(tool, slices.Contains(segments, tool))})
	}
	results = append(results, namedCheck{"Kubernetes", a.checkKube(slices.Contains(segments, "kube"))})

	failed, warnings := 0, 0
	for _, r := range results {
		doctorLabel.Fprintf(out, "  %-12s", r.label)
		fmt.Fprintln(out, r.res.status)
		switch r.res.level {
		case checkWarn:
			warnings++
		case checkFailed:
			failed++
		}
	}

	fmt.Fprintln(out)
	printSummary(out, failed, warnings)

	if failed > 0 {
		return fmt.Errorf("%d check(s) failed", failed)
	}
	return nil
}

func printSummary(out io.Writer, failed, warnings int) {
	if failed == 0 && warnings == 0 {
		doctorSuccess.Fprintln(out, "Everything looks good!")
		return
	}
	if failed > 0 {
		doctorError.Fprintf(out, "%d error(s)", failed)
		if warnings > 0 {
			fmt.Fprint(out, ", ")
		}
	}
	if warnings > 0 {
		doctorWarn.Fprintf(out, "%d warning(s)", warnings)
	}
	fmt.Fprintln(out)
}

func (a *app) checkConfig(path string) (*config.Config, checkResult) {
	shown := path
	if shown == "" {
		var err error
		if shown, err = config.DefaultPath(); err != nil {
			return config.Defaults(), checkResult{checkFailed, doctorError.Sprintf("✗ %v", err)}
		}
	}

	cfg, err := config.Load(path)
	if err != nil {
		return config.Defaults(), checkResult{checkFailed, doctorError.Sprintf("✗ %v", err)}
	}
	if !config.Exists(shown) {
		return cfg, checkResult{checkOK, doctorSuccess.Sprint("✓ ") + "defaults " + doctorDim.Sprintf("(%s not found)", shown)}
	}
	return cfg, checkResult{checkOK, doctorSuccess.Sprint("✓ ") + shown}
}

func (a *app) checkCwd() checkResult {
	wd, err := system.ResolveCwd(a.fs, logger.Nop())
	if err != nil {
		return checkResult{checkFailed, doctorError.Sprintf("✗ %v", err)}
	}
	if wd.Reported != wd.Actual {
		return checkResult{checkWarn, doctorWarn.Sprintf("! %s is gone, probing %s", wd.Reported, wd.Actual)}
	}
	return checkResult{checkOK, doctorSuccess.Sprint("✓ ") + wd.Actual}
}

func (a *app) checkTool(name string, enabled bool) checkResult {
	if path, ok := a.lookPath(name); ok {
		return checkResult{checkOK, doctorSuccess.Sprint("✓ ") + path}
	}
	if name == "git" {
		return checkResult{checkOK, doctorSuccess.Sprint("✓ ") + doctorDim.Sprint("built-in reader (git not on PATH)")}
	}
	if enabled {
		return checkResult{checkWarn, doctorWarn.Sprint("! ") + doctorDim.Sprint("not installed, segment stays hidden")}
	}
	return checkResult{checkOK, doctorDim.Sprint("- not installed")}
}

func (a *app) checkKube(enabled bool) checkResult {
	reader := a.deps.Kube
	if reader == nil {
		reader = kube.Loader{}
	}

	info, err := reader.CurrentContext()
	switch {
	case errors.Is(err, kube.ErrNoContext):
		return checkResult{checkOK, doctorDim.Sprint("- no current context")}
	case err != nil && enabled:
		return checkResult{checkWarn, doctorWarn.Sprintf("! %v", err)}
	case err != nil:
		return checkResult{checkOK, doctorDim.Sprintf("- %v", err)}
	}

	status := doctorSuccess.Sprint("✓ ") + info.Label()
	if !enabled {
		status += doctorDim.Sprint(" (segment disabled)")
	}
	return checkResult{checkOK, status}
}
