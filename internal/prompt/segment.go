package prompt

import "github.com/alexisbeaulieu97/ribbon/internal/theme"

// Segment is one colored, separator-bounded chunk of prompt text. Text is
// already padded and escaped for the target shell.
type Segment struct {
	Text           string
	Foreground     theme.Color
	Background     theme.Color
	Separator      string
	SeparatorColor theme.Color
}

// SegmentOption customises a segment at append time.
type SegmentOption func(*Segment)

// WithSeparator draws glyph after the segment in color instead of the
// sequence default.
func WithSeparator(glyph string, color theme.Color) SegmentOption {
	return func(s *Segment) {
		s.Separator = glyph
		s.SeparatorColor = color
	}
}

// Sequence is an append-only list of segments; insertion order is render
// order.
type Sequence struct {
	separator string
	segments  []Segment
}

// NewSequence creates an empty sequence whose segments default to separator.
func NewSequence(separator string) *Sequence {
	return &Sequence{separator: separator}
}

// Append adds a segment. Unless overridden, the separator is the sequence
// default drawn in the segment's own background color.
func (s *Sequence) Append(text string, fg, bg theme.Color, opts ...SegmentOption) {
	seg := Segment{
		Text:           text,
		Foreground:     fg,
		Background:     bg,
		Separator:      s.separator,
		SeparatorColor: bg,
	}
	for _, opt := range opts {
		opt(&seg)
	}
	s.segments = append(s.segments, seg)
}

// Extend appends every segment of other, preserving their order.
func (s *Sequence) Extend(other *Sequence) {
	if other == nil {
		return
	}
	s.segments = append(s.segments, other.segments...)
}

// Len returns the number of segments.
func (s *Sequence) Len() int {
	if s == nil {
		return 0
	}
	return len(s.segments)
}

// Segments returns a copy of the segments in order.
func (s *Sequence) Segments() []Segment {
	if s == nil {
		return nil
	}
	out := make([]Segment, len(s.segments))
	copy(out, s.segments)
	return out
}
