package prompt

import (
	"fmt"
	"strings"
)

// Mode selects the glyph set used for separators and indicators.
type Mode string

const (
	ModePatched    Mode = "patched"
	ModeCompatible Mode = "compatible"
	ModeFlat       Mode = "flat"
	ModeBlock      Mode = "block"
)

// Symbols is the glyph set of one Mode.
type Symbols struct {
	Lock          string
	Network       string
	Separator     string
	SeparatorThin string
	Ahead         string
	Behind        string
}

var symbolSets = map[Mode]Symbols{
	ModePatched: {
		Lock:          "\uE0A2",
		Network:       "\uE0A2",
		Separator:     "\uE0B0",
		SeparatorThin: "\uE0B1",
		Ahead:         "⇡",
		Behind:        "⇣",
	},
	ModeCompatible: {
		Lock:          "RO",
		Network:       "SSH",
		Separator:     "▶",
		SeparatorThin: "♯",
		Ahead:         "^",
		Behind:        "v",
	},
	ModeFlat: {
		Ahead:  "^",
		Behind: "v",
	},
	ModeBlock: {
		Lock:          "RO",
		Network:       "SSH",
		Separator:     ">",
		SeparatorThin: ":",
		Ahead:         "^",
		Behind:        "v",
	},
}

// Modes lists the supported glyph modes.
func Modes() []string {
	return []string{string(ModePatched), string(ModeCompatible), string(ModeFlat), string(ModeBlock)}
}

// ParseMode validates a glyph mode name.
func ParseMode(name string) (Mode, error) {
	m := Mode(strings.ToLower(strings.TrimSpace(name)))
	if m == "" {
		return ModePatched, nil
	}
	if _, ok := symbolSets[m]; !ok {
		return "", fmt.Errorf("unknown mode %q (expected one of %s)", name, strings.Join(Modes(), ", "))
	}
	return m, nil
}

// Symbols returns the glyph set for m. Unknown modes fall back to patched.
func (m Mode) Symbols() Symbols {
	if s, ok := symbolSets[m]; ok {
		return s
	}
	return symbolSets[ModePatched]
}
