package lightsout

import (
	"errors"
	"fmt"
)

const (
	DefaultRows                = 5
	DefaultCols                = 5
	DefaultChanceLightStartsOn = 0.5

	// DefaultShuffleFlips is the number of random flips used by NewSolvable.
	DefaultShuffleFlips = 5

	DefaultMaxRows = 64
	DefaultMaxCols = 64
)

var (
	ErrInvalidDimensions = errors.New("board dimensions must be positive")
	ErrInvalidChance     = errors.New("chance light starts on must be within [0, 1]")
)

// Config describes the board of one game session.
type Config struct {
	Rows                int     `json:"rows"`
	Cols                int     `json:"cols"`
	ChanceLightStartsOn float64 `json:"chance_light_starts_on"`
}

func DefaultConfig() Config {
	return Config{
		Rows:                DefaultRows,
		Cols:                DefaultCols,
		ChanceLightStartsOn: DefaultChanceLightStartsOn,
	}
}

// Validate rejects non-positive dimensions and probabilities outside [0, 1].
// Values are never clamped.
func (that Config) Validate() error {
	if that.Rows < 1 || that.Cols < 1 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, that.Rows, that.Cols)
	}

	// the negated form also catches NaN
	if !(that.ChanceLightStartsOn >= 0 && that.ChanceLightStartsOn <= 1) {
		return fmt.Errorf("%w: %v", ErrInvalidChance, that.ChanceLightStartsOn)
	}

	return nil
}

// Overrides holds the board settings a client chose. Nil fields keep the base value.
type Overrides struct {
	Rows                *int     `json:"rows,omitempty"`
	Cols                *int     `json:"cols,omitempty"`
	ChanceLightStartsOn *float64 `json:"chance_light_starts_on,omitempty"`
}

func (that Config) Overrides() Overrides {
	return Overrides{
		Rows:                &that.Rows,
		Cols:                &that.Cols,
		ChanceLightStartsOn: &that.ChanceLightStartsOn,
	}
}

func (that Overrides) Apply(base Config) Config {
	if that.Rows != nil {
		base.Rows = *that.Rows
	}
	if that.Cols != nil {
		base.Cols = *that.Cols
	}
	if that.ChanceLightStartsOn != nil {
		base.ChanceLightStartsOn = *that.ChanceLightStartsOn
	}

	return base
}
