package theme

import (
	"fmt"
	"sort"

	"github.com/grindlemire/go-kbd/internal/model"
)

// UnknownColorError is returned when a palette color name is not one of
// the nine palette keys.
type UnknownColorError struct {
	Name string
}

func (e *UnknownColorError) Error() string {
	return fmt.Sprintf("unknown palette color %q", e.Name)
}

// Palette is the closed set of colors keys are drawn with.
type Palette struct {
	Light       Color `json:"lightColor" yaml:"lightColor" toml:"lightColor"`
	LightShadow Color `json:"lightShadowColor" yaml:"lightShadowColor" toml:"lightShadowColor"`
	LightText   Color `json:"lightTextColor" yaml:"lightTextColor" toml:"lightTextColor"`
	Dark        Color `json:"darkColor" yaml:"darkColor" toml:"darkColor"`
	DarkShadow  Color `json:"darkShadowColor" yaml:"darkShadowColor" toml:"darkShadowColor"`
	DarkText    Color `json:"darkTextColor" yaml:"darkTextColor" toml:"darkTextColor"`
	Blue        Color `json:"blueColor" yaml:"blueColor" toml:"blueColor"`
	BlueShadow  Color `json:"blueShadowColor" yaml:"blueShadowColor" toml:"blueShadowColor"`
	Border      Color `json:"borderColor" yaml:"borderColor" toml:"borderColor"`
}

// IsZero reports whether no color of p was set.
func (p Palette) IsZero() bool {
	return p == Palette{}
}

// DefaultPalette returns the stock light keyboard palette.
func DefaultPalette() Palette {
	return Palette{
		Light:       White,
		LightShadow: HSB(220, 0.04, 0.56),
		LightText:   Black,
		Dark:        HSB(217, 0.09, 0.75),
		DarkShadow:  HSB(220, 0.04, 0.56),
		DarkText:    White,
		Blue:        HSB(211, 1.0, 1.0),
		BlueShadow:  HSB(216, 0.05, 0.43),
		Border:      HSB(214, 0.04, 0.65),
	}
}

func (p *Palette) fields() map[string]*Color {
	return map[string]*Color{
		"lightColor":       &p.Light,
		"lightShadowColor": &p.LightShadow,
		"lightTextColor":   &p.LightText,
		"darkColor":        &p.Dark,
		"darkShadowColor":  &p.DarkShadow,
		"darkTextColor":    &p.DarkText,
		"blueColor":        &p.Blue,
		"blueShadowColor":  &p.BlueShadow,
		"borderColor":      &p.Border,
	}
}

// Names returns the palette key names in sorted order.
func Names() []string {
	var p Palette
	names := make([]string, 0, 9)
	for name := range p.fields() {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Lookup returns the color with the given key name.
func (p Palette) Lookup(name string) (Color, error) {
	c, ok := p.fields()[name]
	if !ok {
		return Color{}, &UnknownColorError{Name: name}
	}
	return *c, nil
}

// Set assigns the color with the given key name.
func (p *Palette) Set(name string, c Color) error {
	dst, ok := p.fields()[name]
	if !ok {
		return &UnknownColorError{Name: name}
	}
	*dst = c
	return nil
}

// KeyColors are the colors one key is drawn with. The Down colors are nil
// when the key keeps its normal colors while pressed.
type KeyColors struct {
	Color     Color
	Under     Color
	Border    Color
	Text      Color
	Down      *Color
	DownUnder *Color
	DownText  *Color
}

// Pressed returns the colors used while the key is held down.
func (k KeyColors) Pressed() KeyColors {
	out := k
	if k.Down != nil {
		out.Color = *k.Down
	}
	if k.DownUnder != nil {
		out.Under = *k.DownUnder
	}
	if k.DownText != nil {
		out.Text = *k.DownText
	}
	return out
}

// ColorsFor returns the colors for a key of type t. Character-like keys
// are light, function keys are dark.
func (p Palette) ColorsFor(t model.KeyType) KeyColors {
	light := KeyColors{Color: p.Light, Under: p.LightShadow, Border: p.Border, Text: p.LightText}
	dark := KeyColors{Color: p.Dark, Under: p.DarkShadow, Border: p.Border, Text: p.DarkText}

	switch t {
	case model.Space:
		light.Down = ptr(p.Dark)
		return light
	case model.Shift, model.Backspace:
		dark.Down = ptr(p.Light)
		dark.DownUnder = ptr(p.LightShadow)
		dark.DownText = ptr(p.LightText)
		return dark
	case model.ModeChange:
		dark.Text = p.LightText
		return dark
	case model.Return, model.KeyboardChange:
		dark.Text = p.LightText
		dark.Down = ptr(p.Light)
		dark.DownUnder = ptr(p.LightShadow)
		return dark
	default:
		return light
	}
}

func ptr(c Color) *Color {
	return &c
}
