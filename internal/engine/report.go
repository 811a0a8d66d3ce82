// Read-only views over game state for display layers and tests.
package engine

import (
	"sort"

	"github.com/talgya/togaraveldi/internal/company"
	"github.com/talgya/togaraveldi/internal/market"
)

// Standing is one row of the wealth rankings.
type Standing struct {
	Name             string
	Controller       string
	Generation       int
	Money            int64
	NetWorth         int64
	Reputation       int
	Fame             int
	PoliticalCapital int
	Boats            int
}

// Standings ranks living companies by net worth, richest first. Ties
// keep roster order.
func (g *Game) Standings() []Standing {
	out := make([]Standing, 0, len(g.Companies))
	for _, c := range g.Companies {
		out = append(out, Standing{
			Name:             c.Name,
			Controller:       c.Controller,
			Generation:       c.Generation,
			Money:            c.Money,
			NetWorth:         c.NetWorth(g.Catalog),
			Reputation:       c.Reputation,
			Fame:             c.Fame,
			PoliticalCapital: c.PoliticalCapital,
			Boats:            len(c.Boats),
		})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].NetWorth > out[j].NetWorth
	})
	return out
}

// MarketSnapshot is the market state as seen from the dock.
type MarketSnapshot struct {
	Year          int
	Month         int
	Season        Season
	DomesticPrice map[market.Species]int64 // effective per-ton prices this month
	ExportPrice   int64
	Demand        map[market.Species]market.Demand
	Available     map[market.Species]bool
	ExportBanned  bool
	Inflation     float64
}

// Snapshot captures the current market with seasonal and demand
// modifiers applied.
func (g *Game) Snapshot() MarketSnapshot {
	snap := MarketSnapshot{
		Year:          g.Year,
		Month:         g.Month,
		Season:        g.Season(),
		DomesticPrice: make(map[market.Species]int64, len(market.AllSpecies)),
		ExportPrice:   g.Market.ExportPrice,
		Demand:        make(map[market.Species]market.Demand, len(market.AllSpecies)),
		Available:     make(map[market.Species]bool, len(market.AllSpecies)),
		ExportBanned:  g.ExportBanned(),
		Inflation:     g.Market.AnnualInflationRate,
	}
	for _, sp := range market.AllSpecies {
		snap.DomesticPrice[sp] = g.Market.DomesticPriceFor(sp, g.Month)
		snap.Demand[sp] = g.Market.DemandLevel[sp]
		snap.Available[sp] = g.Market.Available[sp]
	}
	return snap
}

// DynastyInfo summarizes a company's dynastic position.
type DynastyInfo struct {
	Name       string
	Generation int
	HasHeir    bool
	Health     int
	Wealth     int64
	Reputation int
	Secure     bool // an heir exists and the owner is not at death's door
}

// Dynasty reports the dynastic state of one company.
func Dynasty(c *company.Company) DynastyInfo {
	return DynastyInfo{
		Name:       c.Name,
		Generation: c.Generation,
		HasHeir:    c.HasHeir,
		Health:     c.Health,
		Wealth:     c.Money,
		Reputation: c.Reputation,
		Secure:     c.HasHeir && c.Health > 20,
	}
}
