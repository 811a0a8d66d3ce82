package market

import (
	"testing"

	"github.com/talgya/togaraveldi/internal/entropy"
)

func TestDemandMultipliers(t *testing.T) {
	cases := []struct {
		demand Demand
		want   float64
	}{
		{DemandHigh, 2.0},
		{DemandNormal, 1.0},
		{DemandLow, 0.5},
		{DemandNone, 0.1},
	}
	for _, tc := range cases {
		if got := tc.demand.Multiplier(); got != tc.want {
			t.Errorf("%s multiplier = %v, want %v", tc.demand, got, tc.want)
		}
	}
}

func TestSeasonalModifiers(t *testing.T) {
	cases := []struct {
		sp    Species
		month int
		want  float64
	}{
		{Skate, 12, 1.8},
		{Skate, 11, 1.0},
		{Cod, 1, 1.4},
		{Cod, 2, 1.4},
		{Cod, 3, 1.0},
		{Haddock, 6, 1.2},
		{Haddock, 8, 1.2},
		{Haddock, 9, 1.0},
	}
	for _, tc := range cases {
		if got := SeasonalModifier(tc.sp, tc.month); got != tc.want {
			t.Errorf("SeasonalModifier(%s, %d) = %v, want %v", tc.sp, tc.month, got, tc.want)
		}
	}
}

func TestDomesticPriceForAppliesModifiers(t *testing.T) {
	m := New()
	m.DemandLevel[Skate] = DemandHigh

	// 620 base × 1.8 December premium × 2.0 high demand
	if got := m.DomesticPriceFor(Skate, 12); got != 2232 {
		t.Fatalf("skate December high-demand price = %d, want 2232", got)
	}
}

func TestCatchValueDomesticVsExport(t *testing.T) {
	m := New()
	catch := map[Species]int{Cod: 10, Haddock: 5, Skate: 2}

	wantDomestic := 10*int64(420) + 5*int64(342) + 2*int64(620)
	if got := m.CatchValue(catch, 4, false); got != wantDomestic {
		t.Fatalf("domestic catch value = %d, want %d", got, wantDomestic)
	}

	// Export pays the flat rate for every ton.
	if got := m.CatchValue(catch, 4, true); got != 17*842 {
		t.Fatalf("export catch value = %d, want %d", got, int64(17*842))
	}
}

func TestUpdateKeepsPricesInBounds(t *testing.T) {
	m := New()
	src := entropy.NewSeeded(42)

	for i := 0; i < 5000; i++ {
		m.Update(src)
		for _, sp := range AllSpecies {
			p := m.DomesticPrice[sp]
			if p < 200 || p > 800 {
				t.Fatalf("turn %d: %s price %d outside [200,800]", i, sp, p)
			}
		}
		if m.ExportPrice < 600 || m.ExportPrice > 1200 {
			t.Fatalf("turn %d: export price %d outside [600,1200]", i, m.ExportPrice)
		}
	}
}

func TestUpdateIsDeterministic(t *testing.T) {
	a, b := New(), New()
	sa, sb := entropy.NewSeeded(7), entropy.NewSeeded(7)

	for i := 0; i < 200; i++ {
		a.Update(sa)
		b.Update(sb)
	}
	for _, sp := range AllSpecies {
		if a.DomesticPrice[sp] != b.DomesticPrice[sp] {
			t.Fatalf("%s price diverged: %d vs %d", sp, a.DomesticPrice[sp], b.DomesticPrice[sp])
		}
		if a.DemandLevel[sp] != b.DemandLevel[sp] || a.Available[sp] != b.Available[sp] {
			t.Fatalf("%s demand/availability diverged", sp)
		}
	}
}

func TestAnnualRateEras(t *testing.T) {
	cases := []struct {
		year int
		base float64
	}{
		{1920, 0.03},
		{1960, 0.06},
		{1985, 0.42},
		{2000, 0.04},
		{2010, 0.16},
		{2015, 0.03},
	}
	for _, tc := range cases {
		got := AnnualRate(tc.year, entropy.NewSeeded(1))
		if got < tc.base-0.02 || got > tc.base+0.02 {
			t.Errorf("AnnualRate(%d) = %v, want %v ± 0.02", tc.year, got, tc.base)
		}
	}
}

func TestAnnualRateOverridesSkipNoise(t *testing.T) {
	if got := AnnualRate(1974, entropy.NewSeeded(1)); got != 0.42 {
		t.Fatalf("AnnualRate(1974) = %v, want exactly 0.42", got)
	}
	if got := AnnualRate(1980, entropy.NewSeeded(1)); got != 0.58 {
		t.Fatalf("AnnualRate(1980) = %v, want exactly 0.58", got)
	}
}

func TestApplyInflation(t *testing.T) {
	m := New()
	m.ApplyInflation(0.10)

	if m.DomesticPrice[Cod] != 462 {
		t.Fatalf("cod price after 10%% inflation = %d, want 462", m.DomesticPrice[Cod])
	}
	if m.ExportPrice != 926 {
		t.Fatalf("export price after 10%% inflation = %d, want 926", m.ExportPrice)
	}
	if m.CumulativeInflation != 1.10 {
		t.Fatalf("cumulative inflation = %v, want 1.10", m.CumulativeInflation)
	}
}

func TestScalePricesAllowsShocksPastBounds(t *testing.T) {
	m := New()
	m.ScalePrices(2.5)
	if m.DomesticPrice[Cod] != 1050 {
		t.Fatalf("cod price after herring-boom shock = %d, want 1050", m.DomesticPrice[Cod])
	}

	// The next walk pulls the price back inside the bounds.
	m.Update(entropy.NewSeeded(1))
	if m.DomesticPrice[Cod] > 800 {
		t.Fatalf("cod price after walk = %d, want clamped to 800", m.DomesticPrice[Cod])
	}
}
