package prompt

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/ribbon/internal/theme"
)

func TestAppendAppliesDefaults(t *testing.T) {
	t.Parallel()

	seq := NewSequence(">")
	seq.Append(" a ", 1, 2)

	segs := seq.Segments()
	require.Len(t, segs, 1)
	require.Equal(t, Segment{Text: " a ", Foreground: 1, Background: 2, Separator: ">", SeparatorColor: 2}, segs[0])
}

func TestAppendWithSeparatorOverride(t *testing.T) {
	t.Parallel()

	seq := NewSequence(">")
	seq.Append(" a ", 1, 2, WithSeparator(":", 244))

	seg := seq.Segments()[0]
	require.Equal(t, ":", seg.Separator)
	require.Equal(t, theme.Color(244), seg.SeparatorColor)
}

func TestExtendPreservesOrder(t *testing.T) {
	t.Parallel()

	first := NewSequence(">")
	first.Append("1", 0, 0)
	second := NewSequence(">")
	second.Append("2", 0, 0)
	second.Append("3", 0, 0)

	all := NewSequence(">")
	all.Extend(first)
	all.Extend(nil)
	all.Extend(second)

	require.Equal(t, 3, all.Len())
	var texts []string
	for _, s := range all.Segments() {
		texts = append(texts, s.Text)
	}
	require.Equal(t, []string{"1", "2", "3"}, texts)
}

func TestSegmentsReturnsCopy(t *testing.T) {
	t.Parallel()

	seq := NewSequence(">")
	seq.Append("a", 0, 0)

	segs := seq.Segments()
	segs[0].Text = "mutated"
	require.Equal(t, "a", seq.Segments()[0].Text)

	var nilSeq *Sequence
	require.Equal(t, 0, nilSeq.Len())
	require.Nil(t, nilSeq.Segments())
}
