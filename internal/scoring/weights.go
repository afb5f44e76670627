package scoring

import (
	"fmt"
	"math"

	"textsum/internal/domain"
)

// Weights are the bonuses added on top of the relevance term.
type Weights struct {
	PositionFirst   float64 `yaml:"position_first"`
	PositionLast    float64 `yaml:"position_last"`
	LengthOptimal   float64 `yaml:"length_optimal"`
	NumericBonus    float64 `yaml:"numeric_bonus"`
	ProperNounBonus float64 `yaml:"proper_noun_bonus"`
	EmphasisBonus   float64 `yaml:"emphasis_bonus"`
}

// DefaultWeights returns the stock bonus configuration.
func DefaultWeights() Weights {
	return Weights{
		PositionFirst:   0.3,
		PositionLast:    0.2,
		LengthOptimal:   0.2,
		NumericBonus:    0.1,
		ProperNounBonus: 0.1,
		EmphasisBonus:   0.05,
	}
}

// Validate rejects negative and non-finite bonuses.
func (w Weights) Validate() error {
	fields := []struct {
		name string
		v    float64
	}{
		{"position_first", w.PositionFirst},
		{"position_last", w.PositionLast},
		{"length_optimal", w.LengthOptimal},
		{"numeric_bonus", w.NumericBonus},
		{"proper_noun_bonus", w.ProperNounBonus},
		{"emphasis_bonus", w.EmphasisBonus},
	}
	for _, f := range fields {
		if math.IsNaN(f.v) || math.IsInf(f.v, 0) || f.v < 0 {
			return fmt.Errorf("%w: weight %s must be a finite non-negative number (got %v)", domain.ErrInvalidRequest, f.name, f.v)
		}
	}
	return nil
}

// LengthProfile is the word-count band that earns the full length bonus.
// The bonus ramps linearly to zero at Min and Max.
type LengthProfile struct {
	Min         int `yaml:"min"`
	OptimalLow  int `yaml:"optimal_low"`
	OptimalHigh int `yaml:"optimal_high"`
	Max         int `yaml:"max"`
}

// DefaultLengthProfile returns the 5/15/25/40 word band.
func DefaultLengthProfile() LengthProfile {
	return LengthProfile{Min: 5, OptimalLow: 15, OptimalHigh: 25, Max: 40}
}

// Validate requires Min <= OptimalLow <= OptimalHigh <= Max.
func (p LengthProfile) Validate() error {
	if p.Min < 0 || p.Min > p.OptimalLow || p.OptimalLow > p.OptimalHigh || p.OptimalHigh > p.Max {
		return fmt.Errorf("%w: length profile %d/%d/%d/%d is not ordered", domain.ErrInvalidRequest, p.Min, p.OptimalLow, p.OptimalHigh, p.Max)
	}
	return nil
}
