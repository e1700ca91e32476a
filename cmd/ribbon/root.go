package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/ribbon/internal/prompt"
)

type rootFlags struct {
	configPath string
	theme      string
	verbose    bool

	cwdOnly          bool
	cwdMaxDepth      int
	colorizeHostname bool
	mode             string
	shell            string
	timeout          time.Duration
	parallel         bool
}

func newRootCmd() *cobra.Command {
	return newRootCmdWithApp(newApp())
}

func newRootCmdWithApp(a *app) *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:   "ribbon [flags] [prev_exit_code]",
		Short: "Ribbon draws a powerline-style shell prompt",
		Long: `Ribbon prints a colored, segmented prompt for bash, zsh or any other shell.

Pass the exit status of the previous command ($?) as the only argument, and
install the prompt hook with 'ribbon init bash' or 'ribbon init zsh'.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runPrompt(cmd, flags, args)
		},
	}

	cmd.PersistentFlags().StringVarP(&flags.configPath, "config", "c", "", "Path to configuration file")
	cmd.PersistentFlags().StringVar(&flags.theme, "theme", "default", "Color theme (default, light, custom)")
	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Log provider diagnostics to stderr")

	cmd.Flags().BoolVar(&flags.cwdOnly, "cwd-only", false, "Only show the current directory")
	cmd.Flags().IntVar(&flags.cwdMaxDepth, "cwd-max-depth", prompt.DefaultCwdMaxDepth, "Maximum number of directories to show in path")
	cmd.Flags().BoolVar(&flags.colorizeHostname, "colorize-hostname", false, "Colorize the hostname based on a hash of itself")
	cmd.Flags().StringVar(&flags.mode, "mode", string(prompt.ModePatched), "Glyph mode (patched, compatible, flat, block)")
	cmd.Flags().StringVar(&flags.shell, "shell", string(prompt.ShellBash), "Target shell (bash, zsh, bare)")
	cmd.Flags().DurationVar(&flags.timeout, "timeout", 0, "Time limit for each segment (default from config, 500ms)")
	cmd.Flags().BoolVar(&flags.parallel, "parallel", false, "Collect segments concurrently")

	cmd.AddCommand(newVersionCmd())
	cmd.AddCommand(newPaletteCmd(a, flags))
	cmd.AddCommand(newDoctorCmd(a, flags))
	cmd.AddCommand(newInitCmd(a))

	return cmd
}
