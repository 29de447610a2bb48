package kbd

import (
	"errors"
	"testing"

	"github.com/grindlemire/go-kbd/internal/config"
	"github.com/grindlemire/go-kbd/internal/element"
	"github.com/grindlemire/go-kbd/internal/model"
	"github.com/grindlemire/go-kbd/internal/solver"
	"github.com/grindlemire/go-kbd/internal/theme"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

const tol = 1e-6

func installed(t *testing.T, kb *Keyboard, bounds Rect) *Container {
	t.Helper()
	c, err := NewContainer(WithBounds(bounds))
	require.NoError(t, err)
	require.NoError(t, c.Install(kb, DefaultParameters()))
	return c
}

func TestContainer_LatinPortrait(t *testing.T) {
	c := installed(t, Latin(), NewRect(0, 0, 320, 216))
	assert.Empty(t, c.Broken())

	keys := c.Keys()
	require.Len(t, keys, 32)

	assert.Equal(t, NewRect(3, 9, 314, 200), c.Content())
	for _, k := range keys {
		assert.True(t, c.Content().ContainsRect(k.Frame, tol), "key %dx%d %+v outside margins", k.Col, k.Row, k.Frame)
		assert.InDelta(t, 39, k.Frame.Height, tol, "key %dx%d height", k.Col, k.Row)

		switch k.Key.Type {
		case Character:
			assert.InDelta(t, 26, k.Frame.Width, tol, "key %dx%d width", k.Col, k.Row)
		case Shift, Backspace:
			assert.InDelta(t, 36, k.Frame.Width, tol)
		case Space:
			assert.InDelta(t, 138, k.Frame.Width, tol)
		case Return:
			assert.InDelta(t, 50, k.Frame.Width, tol)
		case ModeChange, KeyboardChange:
			assert.InDelta(t, 34, k.Frame.Width, tol)
		}
	}

	for i, a := range keys {
		for _, b := range keys[i+1:] {
			assert.False(t, a.Frame.Overlaps(b.Frame, tol), "key %dx%d overlaps key %dx%d", a.Col, a.Row, b.Col, b.Row)
		}
	}

	first, err := c.Frame(KeyAt(0, 0))
	require.NoError(t, err)
	assert.True(t, first.ApproxEqual(NewRect(3, 9, 26, 39), tol), "%+v", first)

	gap, err := c.Frame(RowGapAt(1))
	require.NoError(t, err)
	assert.InDelta(t, 44.0/3.0, gap.Height, tol)

	space, err := c.Frame(KeyAt(2, 3))
	require.NoError(t, err)
	assert.InDelta(t, 3+34+58.0/3+34+58.0/3, space.X, tol)
	assert.InDelta(t, 216-7-39, space.Y, tol)
}

func TestContainer_RowsDoNotOverlap(t *testing.T) {
	c := installed(t, Cyrillic(), NewRect(0, 0, 320, 216))
	kb := c.Keyboard()

	var prevBottom float64
	for row := 0; row < kb.RowCount(); row++ {
		first, err := c.Frame(KeyAt(0, row))
		require.NoError(t, err)
		assert.GreaterOrEqual(t, first.Y, prevBottom-tol, "row %d", row)
		for col := 1; col < kb.ColumnCount(row); col++ {
			f, err := c.Frame(KeyAt(col, row))
			require.NoError(t, err)
			assert.InDelta(t, first.Y, f.Y, tol)
			assert.InDelta(t, first.Height, f.Height, tol)
		}
		prevBottom = first.Bottom()
	}

	canonical, err := c.Frame(KeyAt(0, 0))
	require.NoError(t, err)
	for _, k := range c.Keys() {
		if k.Key.Type == Character {
			assert.InDelta(t, canonical.Width, k.Frame.Width, tol)
		}
	}
	// The side-button row is the widest, so its free gaps close first.
	assert.InDelta(t, 266.0*26/306, canonical.Width, tol)
}

func TestContainer_Degrades(t *testing.T) {
	tests := map[string]struct {
		bounds     Rect
		keyWidth   float64
		keyHeight  float64
		rowGapSize float64
	}{
		"wide": {
			bounds:     NewRect(0, 0, 375, 216),
			keyWidth:   31.5,
			keyHeight:  39,
			rowGapSize: 44.0 / 3,
		},
		"narrow": {
			bounds:     NewRect(0, 0, 200, 216),
			keyWidth:   14,
			keyHeight:  39,
			rowGapSize: 44.0 / 3,
		},
		"short": {
			bounds:     NewRect(0, 0, 320, 150),
			keyWidth:   26,
			keyHeight:  29.75,
			rowGapSize: 5,
		},
		"tall": {
			bounds:     NewRect(0, 0, 320, 300),
			keyWidth:   26,
			keyHeight:  39,
			rowGapSize: (300.0 - 16 - 156) / 3,
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			c := installed(t, Latin(), tc.bounds)
			assert.Empty(t, c.Broken())

			key, err := c.Frame(KeyAt(0, 0))
			require.NoError(t, err)
			assert.InDelta(t, tc.keyWidth, key.Width, tol)
			assert.InDelta(t, tc.keyHeight, key.Height, tol)

			for row := 1; row < 4; row++ {
				gap, err := c.Frame(RowGapAt(row))
				require.NoError(t, err)
				assert.InDelta(t, tc.rowGapSize, gap.Height, tol, "rowGap%d", row)
			}
		})
	}
}

func TestContainer_InstallIdempotent(t *testing.T) {
	c := installed(t, Latin(), DefaultBounds)
	first := c.Constraints()
	frames := c.Keys()

	require.NoError(t, c.Install(Latin(), DefaultParameters()))
	second := c.Constraints()

	assert.Equal(t, first.Len(), second.Len())
	assert.Equal(t, first.Multiset(), second.Multiset())
	assert.Equal(t, frames, c.Keys())
	assert.Equal(t, len(frames)+4+5+36, c.Registry().Len()-1)
}

func TestContainer_InstallErrorLeavesNothing(t *testing.T) {
	badMetrics := DefaultParameters()
	badMetrics.Metrics.KeyHeight = -1

	tests := map[string]struct {
		kb     *Keyboard
		params Parameters
		target error
	}{
		"empty keyboard": {
			kb:     NewKeyboard("empty"),
			params: DefaultParameters(),
			target: model.ErrEmptyKeyboard,
		},
		"empty row": {
			kb:     NewKeyboard("hollow", CharRow("A"), NewRow(RoleDefault)),
			params: DefaultParameters(),
			target: model.ErrEmptyRow,
		},
		"invalid metrics": {
			kb:     Latin(),
			params: badMetrics,
			target: config.ErrInvalidMetric,
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			c := installed(t, Latin(), DefaultBounds)

			err := c.Install(tc.kb, tc.params)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tc.target), "got %v", err)

			assert.False(t, c.Installed())
			assert.Nil(t, c.Constraints())
			assert.Nil(t, c.Keys())
			_, err = c.Frame(KeyAt(0, 0))
			assert.ErrorIs(t, err, ErrNotInstalled)
		})
	}
}

func TestContainer_Resize(t *testing.T) {
	c, err := NewContainer()
	require.NoError(t, err)

	require.NoError(t, c.Resize(NewRect(0, 0, 375, 216)))
	assert.False(t, c.Installed())

	require.NoError(t, c.Install(Latin(), DefaultParameters()))
	key, err := c.Frame(KeyAt(0, 0))
	require.NoError(t, err)
	assert.InDelta(t, 31.5, key.Width, tol)

	require.NoError(t, c.Resize(NewRect(10, 20, 320, 216)))
	key, err = c.Frame(KeyAt(0, 0))
	require.NoError(t, err)
	assert.True(t, key.ApproxEqual(NewRect(13, 29, 26, 39), tol), "%+v", key)

	err = c.Resize(NewRect(0, 0, -1, 216))
	assert.ErrorIs(t, err, ErrInvalidBounds)
	assert.True(t, c.Installed(), "a rejected resize keeps the layout")
	assert.Equal(t, NewRect(10, 20, 320, 216), c.Bounds())
}

func TestContainer_Frame(t *testing.T) {
	c := installed(t, Latin(), DefaultBounds)

	container, err := c.Frame(Superview())
	require.NoError(t, err)
	assert.True(t, container.ApproxEqual(DefaultBounds, tol))

	left, err := c.Frame(LeftSpacer())
	require.NoError(t, err)
	assert.InDelta(t, 3, left.Width, tol)
	assert.InDelta(t, 0, left.X, tol)

	_, err = c.Frame(KeyAt(10, 0))
	var missing *element.MissingElementError
	require.ErrorAs(t, err, &missing)

	hidden := 0
	for _, e := range c.Elements() {
		if e.Hidden {
			hidden++
		}
	}
	assert.Equal(t, c.Registry().Len()-32-1, hidden)
}

func TestContainer_KeyColors(t *testing.T) {
	c := installed(t, Latin(), DefaultBounds)
	params := c.Parameters()

	for _, k := range c.Keys() {
		switch k.Key.Type {
		case Character:
			assert.True(t, k.Colors.Color.Equal(params.Colors.Light))
			assert.Nil(t, k.Colors.Down)
		case Shift:
			require.NotNil(t, k.Colors.Down)
			assert.True(t, k.Colors.Down.Equal(params.Colors.Light))
		}
	}
}

func TestContainer_MissingColorsUseDefaultPalette(t *testing.T) {
	c, err := NewContainer()
	require.NoError(t, err)
	require.NoError(t, c.Install(Latin(), Parameters{Metrics: config.DefaultMetrics()}))

	palette := theme.DefaultPalette()
	assert.Equal(t, palette, c.Parameters().Colors)
	for _, k := range c.Keys() {
		want := palette.ColorsFor(k.Key.Type)
		assert.True(t, k.Colors.Color.Equal(want.Color), "key %dx%d", k.Col, k.Row)
		assert.True(t, k.Colors.Text.Equal(want.Text), "key %dx%d", k.Col, k.Row)
		assert.False(t, k.Colors.Color.Equal(Color{}), "key %dx%d has no color", k.Col, k.Row)
	}
}

func TestContainer_ContentFollowsMargins(t *testing.T) {
	params := DefaultParameters()
	params.Metrics.LeftGap = 10
	params.Metrics.TopGap = 20

	c, err := NewContainer(WithBounds(NewRect(0, 0, 375, 216)))
	require.NoError(t, err)
	assert.Equal(t, c.Bounds(), c.Content(), "no margins before install")

	require.NoError(t, c.Install(Latin(), params))
	assert.Equal(t, NewRect(10, 20, 362, 189), c.Content())

	left, err := c.Frame(LeftSpacer())
	require.NoError(t, err)
	assert.InDelta(t, 10, left.Width, tol)
	top, err := c.Frame(TopSpacer())
	require.NoError(t, err)
	assert.InDelta(t, 20, top.Height, tol)
	for _, k := range c.Keys() {
		assert.True(t, c.Content().ContainsRect(k.Frame, tol), "key %dx%d %+v outside margins", k.Col, k.Row, k.Frame)
	}
}

type brokenSolver struct {
	inner Solver
}

func (b brokenSolver) Solve(p Problem) (Solution, error) {
	sol, err := b.inner.Solve(p)
	if err != nil {
		return sol, err
	}
	sol.Broken = append(sol.Broken, p.Constraints[0])
	return sol, nil
}

type failingSolver struct{}

func (failingSolver) Solve(Problem) (Solution, error) {
	return Solution{}, solver.ErrUnbounded
}

func TestContainer_BrokenConstraintsAreLogged(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	c, err := NewContainer(
		WithSolver(brokenSolver{inner: solver.NewLayoutSolver()}),
		WithLogger(zap.New(core)),
	)
	require.NoError(t, err)
	require.NoError(t, c.Install(Latin(), DefaultParameters()))

	require.Len(t, c.Broken(), 1)
	entries := logs.FilterMessage("unsatisfiable constraint dropped").All()
	require.Len(t, entries, 1)
	assert.Equal(t, "leftSpacer.left == superview.left", entries[0].ContextMap()["constraint"])
}

func TestContainer_SolverError(t *testing.T) {
	c, err := NewContainer(WithSolver(failingSolver{}))
	require.NoError(t, err)

	err = c.Install(Latin(), DefaultParameters())
	assert.ErrorIs(t, err, solver.ErrUnbounded)
	assert.False(t, c.Installed())
}

func TestNewContainer_Options(t *testing.T) {
	tests := map[string]struct {
		opt     Option
		wantErr bool
	}{
		"solver":          {opt: WithSolver(solver.NewLayoutSolver())},
		"nil solver":      {opt: WithSolver(nil), wantErr: true},
		"logger":          {opt: WithLogger(zap.NewNop())},
		"nil logger":      {opt: WithLogger(nil), wantErr: true},
		"bounds":          {opt: WithBounds(NewRect(0, 0, 100, 100))},
		"negative bounds": {opt: WithBounds(NewRect(0, 0, 100, -1)), wantErr: true},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			c, err := NewContainer(tc.opt)
			if tc.wantErr {
				assert.Error(t, err)
				assert.Nil(t, c)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, c)
		})
	}
}
