package kbd

import (
	"fmt"

	"github.com/grindlemire/go-kbd/internal/config"
	"github.com/grindlemire/go-kbd/internal/theme"
)

// Parameters are everything besides the keyboard model a layout depends
// on.
type Parameters struct {
	Metrics Metrics
	Colors  Palette
}

// DefaultParameters returns the stock metrics and palette.
func DefaultParameters() Parameters {
	return Parameters{
		Metrics: config.DefaultMetrics(),
		Colors:  theme.DefaultPalette(),
	}
}

// ParametersFrom takes the metrics and colors of a loaded config file.
func ParametersFrom(f *config.File) Parameters {
	return Parameters{Metrics: f.Metrics, Colors: f.Colors}
}

// withDefaults fills in the stock palette when p carries no colors.
func (p Parameters) withDefaults() Parameters {
	if p.Colors.IsZero() {
		p.Colors = theme.DefaultPalette()
	}
	return p
}

// Validate checks the metrics.
func (p Parameters) Validate() error {
	if err := p.Metrics.Validate(); err != nil {
		return fmt.Errorf("parameters: %w", err)
	}
	return nil
}
