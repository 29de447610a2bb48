package theme

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// ErrInvalidColor is returned when a color string cannot be parsed.
var ErrInvalidColor = errors.New("invalid color")

// Color is an opaque or translucent sRGB color.
type Color struct {
	rgb   colorful.Color
	alpha float64
}

// HSB returns an opaque color from hue in degrees and saturation and
// brightness in [0, 1].
func HSB(hue, saturation, brightness float64) Color {
	return HSBA(hue, saturation, brightness, 1)
}

// HSBA is HSB with an alpha in [0, 1].
func HSBA(hue, saturation, brightness, alpha float64) Color {
	return Color{
		rgb:   colorful.Hsv(normalizeHue(hue), clamp01(saturation), clamp01(brightness)).Clamped(),
		alpha: clamp01(alpha),
	}
}

// RGB returns an opaque color from 8-bit components.
func RGB(r, g, b uint8) Color {
	return Color{
		rgb:   colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255},
		alpha: 1,
	}
}

// White and Black are the two achromatic extremes.
var (
	White = RGB(255, 255, 255)
	Black = RGB(0, 0, 0)
)

// Parse reads a color written as "#rgb", "#rrggbb", "hsb(h, s, b)" or
// "hsba(h, s, b, a)". Saturation, brightness and alpha may be fractions or
// percentages ("4%").
func Parse(s string) (Color, error) {
	s = strings.TrimSpace(s)
	lower := strings.ToLower(s)

	switch {
	case strings.HasPrefix(lower, "#"):
		if len(lower) != 4 && len(lower) != 7 {
			return Color{}, fmt.Errorf("%w %q: want #rgb or #rrggbb", ErrInvalidColor, s)
		}
		rgb, err := colorful.Hex(lower)
		if err != nil {
			return Color{}, fmt.Errorf("%w %q: %v", ErrInvalidColor, s, err)
		}
		return Color{rgb: rgb, alpha: 1}, nil
	case strings.HasPrefix(lower, "hsba(") && strings.HasSuffix(lower, ")"):
		v, err := parseArgs(lower[len("hsba(") : len(lower)-1])
		if err != nil || len(v) != 4 {
			return Color{}, fmt.Errorf("%w %q: want hsba(h, s, b, a)", ErrInvalidColor, s)
		}
		return HSBA(v[0], v[1], v[2], v[3]), nil
	case strings.HasPrefix(lower, "hsb(") && strings.HasSuffix(lower, ")"):
		v, err := parseArgs(lower[len("hsb(") : len(lower)-1])
		if err != nil || len(v) != 3 {
			return Color{}, fmt.Errorf("%w %q: want hsb(h, s, b)", ErrInvalidColor, s)
		}
		return HSB(v[0], v[1], v[2]), nil
	default:
		return Color{}, fmt.Errorf("%w %q", ErrInvalidColor, s)
	}
}

// MustParse is Parse for package-level literals. It panics on error.
func MustParse(s string) Color {
	c, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return c
}

func parseArgs(body string) ([]float64, error) {
	parts := strings.Split(body, ",")
	out := make([]float64, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		scale := 1.0
		if strings.HasSuffix(p, "%") {
			p = strings.TrimSuffix(p, "%")
			scale = 0.01
		}
		v, err := strconv.ParseFloat(p, 64)
		if err != nil {
			return nil, err
		}
		out = append(out, v*scale)
	}
	return out, nil
}

// HSB returns the color's hue in degrees and its saturation and brightness.
func (c Color) HSB() (hue, saturation, brightness float64) {
	return c.rgb.Hsv()
}

// RGB255 returns the 8-bit components.
func (c Color) RGB255() (r, g, b uint8) {
	return c.rgb.RGB255()
}

// Alpha returns the opacity in [0, 1].
func (c Color) Alpha() float64 {
	return c.alpha
}

// Hex returns "#rrggbb", ignoring alpha.
func (c Color) Hex() string {
	return c.rgb.Hex()
}

// Equal reports whether two colors agree to 8 bits per channel.
func (c Color) Equal(other Color) bool {
	r1, g1, b1 := c.RGB255()
	r2, g2, b2 := other.RGB255()
	return r1 == r2 && g1 == g2 && b1 == b2 && math.Abs(c.alpha-other.alpha) < 1.0/255
}

// String returns the hex form, or hsba(...) for translucent colors.
func (c Color) String() string {
	if c.alpha >= 1 {
		return c.Hex()
	}
	h, s, b := c.HSB()
	return fmt.Sprintf("hsba(%s, %s, %s, %s)", num(h), num(s), num(b), num(c.alpha))
}

// MarshalText implements encoding.TextMarshaler.
func (c Color) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *Color) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

func num(v float64) string {
	return strconv.FormatFloat(math.Round(v*1000)/1000, 'f', -1, 64)
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}

func normalizeHue(h float64) float64 {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	return h
}
