// Package market models fish prices: per-species domestic prices with
// seasonal and demand modifiers, a flat export rate, bounded random
// price walks, and era-based annual inflation.
package market

import (
	"github.com/talgya/togaraveldi/internal/entropy"
)

// Species is a tradeable fish species.
type Species string

const (
	Cod     Species = "Cod"
	Haddock Species = "Haddock"
	Skate   Species = "Skate"
)

// AllSpecies lists species in the fixed iteration order used for all
// market draws. Changing this order changes seeded-run outcomes.
var AllSpecies = []Species{Cod, Haddock, Skate}

// Demand is a per-species demand level.
type Demand string

const (
	DemandHigh   Demand = "high"
	DemandNormal Demand = "normal"
	DemandLow    Demand = "low"
	DemandNone   Demand = "none"
)

var demandLevels = []Demand{DemandHigh, DemandNormal, DemandLow, DemandNone}

// Multiplier maps a demand level to its price factor.
func (d Demand) Multiplier() float64 {
	switch d {
	case DemandHigh:
		return 2.0
	case DemandLow:
		return 0.5
	case DemandNone:
		return 0.1
	default:
		return 1.0
	}
}

// Price-walk bounds.
const (
	domesticFloor   = 200
	domesticCeiling = 800
	exportFloor     = 600
	exportCeiling   = 1200

	demandShiftChance      = 0.10
	availabilityFlipChance = 0.05
)

// Market holds the tradeable state of both markets.
type Market struct {
	DomesticPrice map[Species]int64
	ExportPrice   int64 // Hull pays one flat rate per ton
	DemandLevel   map[Species]Demand
	Available     map[Species]bool

	AnnualInflationRate float64
	CumulativeInflation float64
}

// New creates a market with 1900-era base prices and normal demand.
func New() *Market {
	return &Market{
		DomesticPrice: map[Species]int64{
			Cod:     420,
			Haddock: 342,
			Skate:   620,
		},
		ExportPrice: 842,
		DemandLevel: map[Species]Demand{
			Cod:     DemandNormal,
			Haddock: DemandNormal,
			Skate:   DemandNormal,
		},
		Available: map[Species]bool{
			Cod:     true,
			Haddock: true,
			Skate:   true,
		},
		AnnualInflationRate: 0.04,
		CumulativeInflation: 1.0,
	}
}

// SeasonalModifier is the price premium for a species in a given month.
// Skate carries the Þorláksmessa premium in December, cod the
// pre-Þorrablót premium in midwinter, haddock a small summer bump.
func SeasonalModifier(sp Species, month int) float64 {
	switch {
	case sp == Skate && month == 12:
		return 1.8
	case sp == Cod && (month == 1 || month == 2):
		return 1.4
	case sp == Haddock && month >= 6 && month <= 8:
		return 1.2
	}
	return 1.0
}

// DomesticPriceFor returns the per-ton domestic price for a species in
// the given month: base × seasonal × demand.
func (m *Market) DomesticPriceFor(sp Species, month int) int64 {
	base := m.DomesticPrice[sp]
	return int64(float64(base) * SeasonalModifier(sp, month) * m.DemandLevel[sp].Multiplier())
}

// CatchValue values a catch. The export market pays the flat rate for
// every ton regardless of species; the domestic market prices each
// species with its seasonal and demand modifiers.
func (m *Market) CatchValue(catch map[Species]int, month int, export bool) int64 {
	if export {
		tons := int64(0)
		for _, sp := range AllSpecies {
			tons += int64(catch[sp])
		}
		return tons * m.ExportPrice
	}

	total := int64(0)
	for _, sp := range AllSpecies {
		total += int64(catch[sp]) * m.DomesticPriceFor(sp, month)
	}
	return total
}

// Update runs one turn of market movement. Draw order is fixed: each
// domestic price walk in AllSpecies order, the export walk, each demand
// roll, each availability roll.
func (m *Market) Update(src entropy.Source) {
	for _, sp := range AllSpecies {
		next := m.DomesticPrice[sp] + int64(src.Between(-42, 50))
		m.DomesticPrice[sp] = clampPrice(next, domesticFloor, domesticCeiling)
	}

	next := m.ExportPrice + int64(src.Between(-84, 100))
	m.ExportPrice = clampPrice(next, exportFloor, exportCeiling)

	for _, sp := range AllSpecies {
		if src.Float64() < demandShiftChance {
			m.DemandLevel[sp] = demandLevels[src.IntN(len(demandLevels))]
		}
	}

	for _, sp := range AllSpecies {
		if src.Float64() < availabilityFlipChance {
			m.Available[sp] = !m.Available[sp]
		}
	}
}

func clampPrice(v, floor, ceiling int64) int64 {
	if v < floor {
		return floor
	}
	if v > ceiling {
		return ceiling
	}
	return v
}
