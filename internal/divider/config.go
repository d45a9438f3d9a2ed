// Package divider holds the drag state of a vertical split divider and the
// arithmetic that turns it into pane heights.
package divider

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is wrapped by every error returned from Config.Validate.
var ErrInvalidConfig = errors.New("invalid divider config")

// Range is a closed interval of fractional divider positions, measured from
// the top of the container.
type Range struct {
	Lo float64
	Hi float64
}

func (r Range) String() string {
	return fmt.Sprintf("%g...%g", r.Lo, r.Hi)
}

// Config is fixed once a State is constructed.
type Config struct {
	Pivot               float64 // resting split fraction, measured from the top
	Range               Range   // allowed fractional divider positions
	MinimumBottomHeight float64 // floor on the rendered bottom pane height
	Expanded            bool    // initial expansion state
}

// DefaultConfig returns a centred pivot with a 0.2...0.8 range.
func DefaultConfig() Config {
	return Config{
		Pivot:               0.5,
		Range:               Range{Lo: 0.2, Hi: 0.8},
		MinimumBottomHeight: 100,
		Expanded:            true,
	}
}

// Validate checks that both range bounds are non-negative and that the pivot
// lies strictly inside the range.
func (c Config) Validate() error {
	if c.Range.Lo < 0 {
		return fmt.Errorf("%w: range lower bound must not be negative, got %g", ErrInvalidConfig, c.Range.Lo)
	}
	if c.Range.Hi < 0 {
		return fmt.Errorf("%w: range upper bound must not be negative, got %g", ErrInvalidConfig, c.Range.Hi)
	}
	if !(c.Range.Lo < c.Pivot && c.Pivot < c.Range.Hi) {
		return fmt.Errorf("%w: pivot %g must be in range %s", ErrInvalidConfig, c.Pivot, c.Range)
	}
	if c.MinimumBottomHeight < 0 {
		return fmt.Errorf("%w: minimum bottom height must not be negative, got %g", ErrInvalidConfig, c.MinimumBottomHeight)
	}
	return nil
}
