// Package weather models North Atlantic sea state as a noise field over
// the calendar. The field is a pure function of the game seed, so a
// seeded run sees the same storms every time; severity never consumes
// a draw from the engine's random source.
package weather

import (
	opensimplex "github.com/ojrac/opensimplex-go"
)

// Field samples storm severity for a given month.
type Field struct {
	noise opensimplex.Noise
}

// NewField creates a sea-state field for a seed.
func NewField(seed int64) *Field {
	return &Field{noise: opensimplex.NewNormalized(seed)}
}

// winterBias makes midwinter crossings genuinely dangerous and summer
// crossings mild. Indexed by month-1.
var winterBias = [12]float64{
	0.30, 0.25, 0.15, 0.05, 0.0, 0.0,
	0.0, 0.0, 0.05, 0.15, 0.25, 0.35,
}

// Severity returns storm severity in [0,1] for a year/month. Around 0.2
// is a stiff breeze; above 0.7 the export run is a gamble.
func (f *Field) Severity(year, month int) float64 {
	// Sample the noise field along the calendar axis, one step per month.
	x := float64(year) + float64(month-1)/12.0
	base := f.noise.Eval2(x*7.3, 0.5) // normalized to [0,1]

	s := base*0.7 + winterBias[month-1]
	if s < 0 {
		return 0
	}
	if s > 1 {
		return 1
	}
	return s
}

// RiskMultiplier scales a boat's disaster risk by sea state: calm seas
// leave the base risk alone, a full storm doubles it.
func (f *Field) RiskMultiplier(year, month int) float64 {
	return 1 + f.Severity(year, month)
}

// Describe returns a short narration of conditions for the month.
func (f *Field) Describe(year, month int) string {
	s := f.Severity(year, month)
	switch {
	case s > 0.7:
		return "storm warnings across the fishing grounds"
	case s > 0.4:
		return "heavy swell on the open sea"
	case s > 0.2:
		return "a stiff breeze over the banks"
	default:
		return "calm seas"
	}
}
