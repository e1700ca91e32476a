package prompt

import "strings"

// Renderer turns a Sequence into the escape-coded prompt string.
type Renderer struct {
	shell Shell
}

// NewRenderer creates a renderer for shell.
func NewRenderer(shell Shell) Renderer {
	return Renderer{shell: shell}
}

// Render walks seq once. Each separator is painted in the current segment's
// separator color over the next segment's background; after the last
// segment a reset stands in for the missing next background. The output
// always ends with a reset, so an empty sequence renders to just that.
func (r Renderer) Render(seq *Sequence) string {
	var b strings.Builder
	segments := seq.Segments()

	for i, seg := range segments {
		b.WriteString(r.shell.Foreground(seg.Foreground))
		b.WriteString(r.shell.Background(seg.Background))
		b.WriteString(seg.Text)

		if i+1 < len(segments) {
			b.WriteString(r.shell.Background(segments[i+1].Background))
		} else {
			b.WriteString(r.shell.Reset())
		}
		b.WriteString(r.shell.Foreground(seg.SeparatorColor))
		b.WriteString(seg.Separator)
	}

	b.WriteString(r.shell.Reset())
	return b.String()
}
