// Verðbólga. Iceland's inflation tracked the era: modest before 1950,
// runaway through the 70s and 80s, settling after 2008.
package market

import "github.com/talgya/togaraveldi/internal/entropy"

// Historical one-off spikes: the 1974 oil crisis and the 1980 peak.
var inflationOverrides = map[int]float64{
	1974: 0.42,
	1980: 0.58,
}

// AnnualRate draws the inflation rate for a year: the era's base rate
// plus U(-0.02, 0.02) noise, except in override years which use their
// historical spike rate with no noise draw.
func AnnualRate(year int, src entropy.Source) float64 {
	if rate, ok := inflationOverrides[year]; ok {
		return rate
	}

	var base float64
	switch {
	case year < 1950:
		base = 0.03
	case year < 1970:
		base = 0.06
	case year < 1990:
		base = 0.42
	case year < 2008:
		base = 0.04
	case year < 2012:
		base = 0.16 // post-crash spike
	default:
		base = 0.03
	}

	noise := src.Float64()*0.04 - 0.02
	return base + noise
}

// ApplyInflation raises every tracked price by (1+rate) and records the
// rate. The engine inflates boat cost baselines alongside this call.
func (m *Market) ApplyInflation(rate float64) {
	m.AnnualInflationRate = rate
	m.CumulativeInflation *= 1 + rate

	for _, sp := range AllSpecies {
		m.DomesticPrice[sp] = int64(float64(m.DomesticPrice[sp]) * (1 + rate))
	}
	m.ExportPrice = int64(float64(m.ExportPrice) * (1 + rate))
}

// ScalePrices multiplies all domestic prices by a factor. Historical
// shocks may push prices past the walk bounds; the next Update pulls
// them back inside.
func (m *Market) ScalePrices(factor float64) {
	for _, sp := range AllSpecies {
		m.DomesticPrice[sp] = int64(float64(m.DomesticPrice[sp]) * factor)
	}
}

// ScaleExportPrice multiplies the export rate by a factor.
func (m *Market) ScaleExportPrice(factor float64) {
	m.ExportPrice = int64(float64(m.ExportPrice) * factor)
}
