package main

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/ribbon/internal/theme"
)

var (
	paletteTitle = lipgloss.NewStyle().Bold(true)
	paletteRole  = lipgloss.NewStyle().Width(18)
	paletteIndex = lipgloss.NewStyle().Faint(true)
)

func newPaletteCmd(a *app, flags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "palette",
		Short: "Show the colors of the active theme",
		Long: `Print every color role of the resolved theme with a swatch and its
256-color index. The theme comes from --theme, the configuration file and
RIBBON_THEME, in that order.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			log := a.newLogger(cmd, flags)
			cfg := a.loadConfig(cmd, flags, log)
			pal := resolvePalette(cfg, log)

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, paletteTitle.Render("theme: "+cfg.Theme))
			for _, s := range theme.Swatches(pal) {
				fmt.Fprintln(out, renderSwatch(s))
			}
			return nil
		},
	}

	return cmd
}

func renderSwatch(s theme.Swatch) string {
	code := strconv.Itoa(int(s.Color))
	block := lipgloss.NewStyle().Background(lipgloss.Color(code)).Render("    ")
	return lipgloss.JoinHorizontal(lipgloss.Top, block, " ", paletteRole.Render(s.Role), paletteIndex.Render(code))
}
