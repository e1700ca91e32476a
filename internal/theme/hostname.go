package theme

import (
	"crypto/md5"
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"
	"github.com/muesli/termenv"
)

// HostnameColors derives a stable foreground/background pair from a
// hostname. The foreground comes straight from the hash; the background is
// its opposite (hue rotated, lightness flipped, saturation reduced) so the
// text stays readable. Both are snapped to the nearest xterm-256 index.
func HostnameColors(hostname string) (fg, bg Color) {
	sum := md5.Sum([]byte(hostname))
	base := colorful.Color{
		R: float64(sum[0]) / 255,
		G: float64(sum[1]) / 255,
		B: float64(sum[2]) / 255,
	}
	return nearest256(base), nearest256(opposite(base))
}

func opposite(c colorful.Color) colorful.Color {
	h, s, l := c.Hsl()

	h = math.Mod(h+72, 360)
	if l > 0.5 {
		l -= 0.5
	} else {
		l += 0.5
	}
	s = math.Max(s-0.5, 0)

	return colorful.Hsl(h, s, l)
}

func nearest256(c colorful.Color) Color {
	converted := termenv.ANSI256.Color(c.Clamped().Hex())
	if code, ok := converted.(termenv.ANSI256Color); ok {
		return Color(code)
	}
	return 0
}
