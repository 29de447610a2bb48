package config

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/grindlemire/go-kbd/internal/layout"
)

// ErrInvalidMetric is returned by Metrics.Validate.
var ErrInvalidMetric = errors.New("invalid metric")

// MinKeyHeight is the smallest height a key may be laid out at.
const MinKeyHeight = 5

// Metrics holds the numeric layout parameters. The key set is closed: a
// file naming any other metric is rejected.
type Metrics struct {
	LeftGap                   float64 `json:"leftGap" yaml:"leftGap" toml:"leftGap"`
	RightGap                  float64 `json:"rightGap" yaml:"rightGap" toml:"rightGap"`
	TopGap                    float64 `json:"topGap" yaml:"topGap" toml:"topGap"`
	BottomGap                 float64 `json:"bottomGap" yaml:"bottomGap" toml:"bottomGap"`
	KeyWidth                  float64 `json:"keyWidth" yaml:"keyWidth" toml:"keyWidth"`
	KeyHeight                 float64 `json:"keyHeight" yaml:"keyHeight" toml:"keyHeight"`
	PopupKeyHeight            float64 `json:"popupKeyHeight" yaml:"popupKeyHeight" toml:"popupKeyHeight"`
	KeyGap                    float64 `json:"keyGap" yaml:"keyGap" toml:"keyGap"`
	ShiftAndBackspaceMaxWidth float64 `json:"shiftAndBackspaceMaxWidth" yaml:"shiftAndBackspaceMaxWidth" toml:"shiftAndBackspaceMaxWidth"`
	SpecialKeyWidth           float64 `json:"specialKeyWidth" yaml:"specialKeyWidth" toml:"specialKeyWidth"`
	DoneKeyWidth              float64 `json:"doneKeyWidth" yaml:"doneKeyWidth" toml:"doneKeyWidth"`
	SpaceWidth                float64 `json:"spaceWidth" yaml:"spaceWidth" toml:"spaceWidth"`
	DebugWidth                float64 `json:"debugWidth" yaml:"debugWidth" toml:"debugWidth"`
}

// DefaultMetrics returns the metrics of the stock phone keyboard.
func DefaultMetrics() Metrics {
	return Metrics{
		LeftGap:                   3,
		RightGap:                  3,
		TopGap:                    9,
		BottomGap:                 7,
		KeyWidth:                  26,
		KeyHeight:                 39,
		PopupKeyHeight:            53,
		KeyGap:                    6,
		ShiftAndBackspaceMaxWidth: 36,
		SpecialKeyWidth:           34,
		DoneKeyWidth:              50,
		SpaceWidth:                138,
		DebugWidth:                2,
	}
}

func (m *Metrics) fields() map[string]*float64 {
	return map[string]*float64{
		"leftGap":                   &m.LeftGap,
		"rightGap":                  &m.RightGap,
		"topGap":                    &m.TopGap,
		"bottomGap":                 &m.BottomGap,
		"keyWidth":                  &m.KeyWidth,
		"keyHeight":                 &m.KeyHeight,
		"popupKeyHeight":            &m.PopupKeyHeight,
		"keyGap":                    &m.KeyGap,
		"shiftAndBackspaceMaxWidth": &m.ShiftAndBackspaceMaxWidth,
		"specialKeyWidth":           &m.SpecialKeyWidth,
		"doneKeyWidth":              &m.DoneKeyWidth,
		"spaceWidth":                &m.SpaceWidth,
		"debugWidth":                &m.DebugWidth,
	}
}

// MetricNames returns the metric key names in sorted order.
func MetricNames() []string {
	var m Metrics
	names := make([]string, 0, 13)
	for name := range m.fields() {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Lookup returns the metric with the given key name.
func (m Metrics) Lookup(name string) (float64, error) {
	p, ok := m.fields()[name]
	if !ok {
		return 0, &UnknownKeyError{Section: "metrics", Key: name}
	}
	return *p, nil
}

// Set assigns the metric with the given key name.
func (m *Metrics) Set(name string, value float64) error {
	p, ok := m.fields()[name]
	if !ok {
		return &UnknownKeyError{Section: "metrics", Key: name}
	}
	*p = value
	return nil
}

// Validate rejects non-finite and negative metrics, a non-positive key
// width and a key height below MinKeyHeight.
func (m Metrics) Validate() error {
	for _, name := range MetricNames() {
		v, _ := m.Lookup(name)
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: %s is not finite (%g)", ErrInvalidMetric, name, v)
		}
		if v < 0 {
			return fmt.Errorf("%w: %s is negative (%g)", ErrInvalidMetric, name, v)
		}
	}
	if m.KeyWidth <= 0 {
		return fmt.Errorf("%w: keyWidth must be positive", ErrInvalidMetric)
	}
	if m.KeyHeight < MinKeyHeight {
		return fmt.Errorf("%w: keyHeight %g is below %d", ErrInvalidMetric, m.KeyHeight, MinKeyHeight)
	}
	return nil
}

// Margins returns the edge spacer thicknesses.
func (m Metrics) Margins() layout.Edges {
	return layout.NewEdges(m.TopGap, m.RightGap, m.BottomGap, m.LeftGap)
}
