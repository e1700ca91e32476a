package prompt

import (
	"fmt"
	"strings"

	"github.com/alexisbeaulieu97/ribbon/internal/theme"
)

// Shell selects how escape sequences are wrapped and which prompt
// placeholders the shell expands on its own.
type Shell string

const (
	ShellBash Shell = "bash"
	ShellZsh  Shell = "zsh"
	ShellBare Shell = "bare"
)

// Shells lists the supported shell flavors.
func Shells() []string {
	return []string{string(ShellBash), string(ShellZsh), string(ShellBare)}
}

// ParseShell validates a shell flavor name.
func ParseShell(name string) (Shell, error) {
	switch s := Shell(strings.ToLower(strings.TrimSpace(name))); s {
	case ShellBash, ShellZsh, ShellBare:
		return s, nil
	case "":
		return ShellBash, nil
	default:
		return "", fmt.Errorf("unknown shell %q (expected one of %s)", name, strings.Join(Shells(), ", "))
	}
}

// bash needs \[ \] around non-printing runs and expands \e itself; zsh needs
// %{ %} and a literal ESC byte.
func (s Shell) wrap(code string) string {
	switch s {
	case ShellBash:
		return `\[\e` + code + `\]`
	case ShellZsh:
		return "%{\x1b" + code + "%}"
	default:
		return "\x1b" + code
	}
}

// Reset returns the full color reset escape.
func (s Shell) Reset() string {
	return s.wrap("[0m")
}

// Foreground returns the escape selecting c as the text color.
func (s Shell) Foreground(c theme.Color) string {
	return s.wrap(fmt.Sprintf("[38;5;%dm", c))
}

// Background returns the escape selecting c as the background color.
func (s Shell) Background(c theme.Color) string {
	return s.wrap(fmt.Sprintf("[48;5;%dm", c))
}

var (
	bashEscaper = strings.NewReplacer(`\`, `\\`, "$", `\$`, "`", "\\`")
	zshEscaper  = strings.NewReplacer("%", "%%")
)

// Escape neutralises characters in user-controlled text (directory names,
// branch names) that the shell would otherwise expand inside the prompt.
func (s Shell) Escape(text string) string {
	switch s {
	case ShellBash:
		return bashEscaper.Replace(text)
	case ShellZsh:
		return zshEscaper.Replace(text)
	default:
		return text
	}
}

// Placeholder is a prompt token the shell can expand by itself.
type Placeholder int

const (
	PlaceholderUser Placeholder = iota
	PlaceholderHost
	PlaceholderTime
	PlaceholderReady
)

var placeholders = map[Shell]map[Placeholder]string{
	ShellBash: {
		PlaceholderUser:  `\u`,
		PlaceholderHost:  `\h`,
		PlaceholderTime:  `\t`,
		PlaceholderReady: `\$`,
	},
	ShellZsh: {
		PlaceholderUser:  "%n",
		PlaceholderHost:  "%m",
		PlaceholderTime:  "%*",
		PlaceholderReady: "%#",
	},
	ShellBare: {
		PlaceholderReady: "$",
	},
}

// Placeholder returns the token for p. ok is false when the shell cannot
// expand it and the caller must resolve the value itself.
func (s Shell) Placeholder(p Placeholder) (token string, ok bool) {
	token, ok = placeholders[s][p]
	return token, ok
}
