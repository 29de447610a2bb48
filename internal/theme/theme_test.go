package theme

import (
	"errors"
	"testing"

	"github.com/grindlemire/go-kbd/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := map[string]struct {
		in      string
		want    Color
		wantErr bool
	}{
		"long hex":       {in: "#ff8000", want: RGB(255, 128, 0)},
		"short hex":      {in: "#fff", want: White},
		"upper hex":      {in: "#FF8000", want: RGB(255, 128, 0)},
		"hsb":            {in: "hsb(0, 1, 1)", want: RGB(255, 0, 0)},
		"hsb percent":    {in: "hsb(120, 100%, 100%)", want: RGB(0, 255, 0)},
		"hsb black":      {in: "hsb(211, 1, 0)", want: Black},
		"hsba":           {in: "hsba(240, 1, 1, 0.5)", want: HSBA(240, 1, 1, 0.5)},
		"whitespace":     {in: "  #000  ", want: Black},
		"five digit hex": {in: "#12345", wantErr: true},
		"bad hex":        {in: "#zzzzzz", wantErr: true},
		"hsb arity":      {in: "hsb(1, 2)", wantErr: true},
		"hsb number":     {in: "hsb(a, 1, 1)", wantErr: true},
		"name":           {in: "white", wantErr: true},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := Parse(tc.in)
			if tc.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrInvalidColor))
				return
			}
			require.NoError(t, err)
			assert.True(t, tc.want.Equal(got), "got %s want %s", got, tc.want)
		})
	}
}

func TestColor_Text(t *testing.T) {
	c := HSBA(240, 1, 1, 0.5)
	text, err := c.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "hsba(240, 1, 1, 0.5)", string(text))

	var back Color
	require.NoError(t, back.UnmarshalText(text))
	assert.True(t, c.Equal(back))

	assert.Equal(t, "#ff0000", RGB(255, 0, 0).String())
}

func TestHSB_WrapsHue(t *testing.T) {
	assert.True(t, HSB(360, 1, 1).Equal(HSB(0, 1, 1)))
	assert.True(t, HSB(-120, 1, 1).Equal(HSB(240, 1, 1)))
}

func TestDefaultPalette(t *testing.T) {
	p := DefaultPalette()

	assert.Equal(t, "#ffffff", p.Light.Hex())
	assert.Equal(t, "#000000", p.LightText.Hex())
	assert.Equal(t, "#007bff", p.Blue.Hex())
	assert.True(t, p.LightShadow.Equal(p.DarkShadow))

	h, s, b := p.Dark.HSB()
	assert.InDelta(t, 217, h, 1)
	assert.InDelta(t, 0.09, s, 0.01)
	assert.InDelta(t, 0.75, b, 0.01)
}

func TestPalette_Lookup(t *testing.T) {
	p := DefaultPalette()
	assert.Len(t, Names(), 9)

	for _, name := range Names() {
		_, err := p.Lookup(name)
		assert.NoError(t, err, name)
	}

	got, err := p.Lookup("borderColor")
	require.NoError(t, err)
	assert.True(t, got.Equal(p.Border))

	_, err = p.Lookup("accentColor")
	var unknown *UnknownColorError
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, "accentColor", unknown.Name)

	require.NoError(t, p.Set("blueColor", Black))
	assert.True(t, p.Blue.Equal(Black))
	assert.Error(t, p.Set("nope", Black))

	assert.False(t, p.IsZero())
	assert.True(t, Palette{}.IsZero())
	var one Palette
	require.NoError(t, one.Set("borderColor", Black))
	assert.False(t, one.IsZero())
}

func TestPalette_ColorsFor(t *testing.T) {
	p := DefaultPalette()

	tests := map[string]struct {
		typ       model.KeyType
		face      Color
		text      Color
		down      *Color
		downUnder *Color
		downText  *Color
	}{
		"character":         {typ: model.Character, face: p.Light, text: p.LightText},
		"special character": {typ: model.SpecialCharacter, face: p.Light, text: p.LightText},
		"period":            {typ: model.Period, face: p.Light, text: p.LightText},
		"space":             {typ: model.Space, face: p.Light, text: p.LightText, down: &p.Dark},
		"shift": {typ: model.Shift, face: p.Dark, text: p.DarkText,
			down: &p.Light, downUnder: &p.LightShadow, downText: &p.LightText},
		"backspace": {typ: model.Backspace, face: p.Dark, text: p.DarkText,
			down: &p.Light, downUnder: &p.LightShadow, downText: &p.LightText},
		"mode change":     {typ: model.ModeChange, face: p.Dark, text: p.LightText},
		"return":          {typ: model.Return, face: p.Dark, text: p.LightText, down: &p.Light, downUnder: &p.LightShadow},
		"keyboard change": {typ: model.KeyboardChange, face: p.Dark, text: p.LightText, down: &p.Light, downUnder: &p.LightShadow},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			got := p.ColorsFor(tc.typ)
			assert.True(t, tc.face.Equal(got.Color))
			assert.True(t, tc.text.Equal(got.Text))
			assert.True(t, p.Border.Equal(got.Border))
			assert.Equal(t, tc.down, got.Down)
			assert.Equal(t, tc.downUnder, got.DownUnder)
			assert.Equal(t, tc.downText, got.DownText)
		})
	}
}

func TestKeyColors_Pressed(t *testing.T) {
	p := DefaultPalette()

	shift := p.ColorsFor(model.Shift).Pressed()
	assert.True(t, shift.Color.Equal(p.Light))
	assert.True(t, shift.Under.Equal(p.LightShadow))
	assert.True(t, shift.Text.Equal(p.LightText))

	char := p.ColorsFor(model.Character)
	assert.Equal(t, char, char.Pressed())
}
