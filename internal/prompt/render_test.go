package prompt

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/ribbon/internal/theme"
)

func TestRenderEmptySequenceIsJustReset(t *testing.T) {
	t.Parallel()

	for _, shell := range []Shell{ShellBash, ShellZsh, ShellBare} {
		r := NewRenderer(shell)
		require.Equal(t, shell.Reset(), r.Render(NewSequence(">")), shell)
		require.Equal(t, shell.Reset(), r.Render(nil), shell)
	}
}

func TestRenderExactOutputBare(t *testing.T) {
	t.Parallel()

	seq := NewSequence(">")
	seq.Append(" a ", 1, 2)
	seq.Append(" b ", 3, 4)

	got := NewRenderer(ShellBare).Render(seq)
	want := "\x1b[38;5;1m\x1b[48;5;2m a " +
		"\x1b[48;5;4m\x1b[38;5;2m>" +
		"\x1b[38;5;3m\x1b[48;5;4m b " +
		"\x1b[0m\x1b[38;5;4m>" +
		"\x1b[0m"
	require.Equal(t, want, got)
}

func TestRenderBashWrapsEscapes(t *testing.T) {
	t.Parallel()

	seq := NewSequence(">")
	seq.Append(" x ", 15, 236)

	got := NewRenderer(ShellBash).Render(seq)
	want := `\[\e[38;5;15m\]\[\e[48;5;236m\] x \[\e[0m\]\[\e[38;5;236m\]>\[\e[0m\]`
	require.Equal(t, want, got)
}

func TestRenderZshWrapsEscapes(t *testing.T) {
	t.Parallel()

	seq := NewSequence("")
	seq.Append(" x ", 0, 148)

	got := NewRenderer(ShellZsh).Render(seq)
	require.True(t, strings.HasPrefix(got, "%{\x1b[38;5;0m%}%{\x1b[48;5;148m%} x "))
	require.True(t, strings.HasSuffix(got, "%{\x1b[0m%}"))
}

func TestRenderResetCountAndTextOrder(t *testing.T) {
	t.Parallel()

	texts := []string{" ~ ", " project ", " main ", " $ "}
	for n := 1; n <= len(texts); n++ {
		seq := NewSequence("")
		for i := 0; i < n; i++ {
			seq.Append(texts[i], theme.Color(10+i), theme.Color(20+i))
		}

		for _, shell := range []Shell{ShellBash, ShellZsh, ShellBare} {
			out := NewRenderer(shell).Render(seq)
			require.Equal(t, 2, strings.Count(out, shell.Reset()), "n=%d shell=%s", n, shell)
			require.True(t, strings.HasSuffix(out, shell.Reset()))

			last := -1
			for i := 0; i < n; i++ {
				idx := strings.Index(out, texts[i])
				require.Greater(t, idx, last, "segment %d out of order", i)
				last = idx
			}
		}
	}
}

func TestRenderSeparatorUsesNextBackground(t *testing.T) {
	t.Parallel()

	seq := NewSequence("|")
	seq.Append("A", 1, 2, WithSeparator(":", 9))
	seq.Append("B", 3, 4)

	out := NewRenderer(ShellBare).Render(seq)
	require.Contains(t, out, "A\x1b[48;5;4m\x1b[38;5;9m:")
	require.Contains(t, out, "B\x1b[0m\x1b[38;5;4m|")
}
