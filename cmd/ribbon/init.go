package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

const bashHook = `_ribbon_update_ps1() {
    PS1="$(%s $? 2>/dev/null)"
}

if [[ $TERM != linux && ! $PROMPT_COMMAND =~ _ribbon_update_ps1 ]]; then
    PROMPT_COMMAND="_ribbon_update_ps1; $PROMPT_COMMAND"
fi
`

const zshHook = `_ribbon_precmd() {
    PS1="$(%s $? --shell zsh 2>/dev/null)"
}

_ribbon_install_precmd() {
    for s in "${precmd_functions[@]}"; do
        if [ "$s" = "_ribbon_precmd" ]; then
            return
        fi
    done
    precmd_functions+=(_ribbon_precmd)
}

if [ "$TERM" != "linux" ]; then
    _ribbon_install_precmd
fi
`

func newInitCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init <bash|zsh>",
		Short: "Print the shell hook that installs the prompt",
		Long: `Print a snippet that redraws the prompt before each command.

Examples:
  eval "$(ribbon init bash)"   # in ~/.bashrc
  eval "$(ribbon init zsh)"    # in ~/.zshrc`,
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"bash", "zsh"},
		RunE: func(cmd *cobra.Command, args []string) error {
			script, err := hookScript(args[0], a.binaryPath())
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), script)
			return nil
		},
	}

	return cmd
}

func hookScript(shell, binary string) (string, error) {
	switch strings.ToLower(shell) {
	case "bash":
		return fmt.Sprintf(bashHook, shellQuote(binary)), nil
	case "zsh":
		return fmt.Sprintf(zshHook, shellQuote(binary)), nil
	default:
		return "", fmt.Errorf("unsupported shell %q (expected bash or zsh)", shell)
	}
}

func (a *app) binaryPath() string {
	if a.executable != nil {
		if path, err := a.executable(); err == nil && path != "" {
			return path
		}
	}
	return "ribbon"
}

func shellQuote(s string) string {
	if !strings.ContainsAny(s, " \t'\"$`\\") {
		return s
	}
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}
