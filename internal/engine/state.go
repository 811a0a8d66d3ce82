// Save/restore surface. State carries everything a store needs to
// rebuild a game; the random stream is re-derived from seed and turn on
// restore, so a resumed game is deterministic per save point rather
// than bit-identical with an unbroken run.
package engine

import (
	"github.com/talgya/togaraveldi/internal/company"
	"github.com/talgya/togaraveldi/internal/entropy"
	"github.com/talgya/togaraveldi/internal/fleet"
	"github.com/talgya/togaraveldi/internal/market"
	"github.com/talgya/togaraveldi/internal/weather"
)

// State is the persistable portion of a game.
type State struct {
	Seed        int64
	Year        int
	Month       int
	Turn        int
	Companies   []*company.Company
	Market      *market.Market
	Blueprints  []fleet.Blueprint
	FiredEvents map[string]bool
	Modifiers   []*Modifier
}

// State snapshots the game for persistence.
func (g *Game) State() State {
	return State{
		Seed:        g.Seed,
		Year:        g.Year,
		Month:       g.Month,
		Turn:        g.Turn,
		Companies:   g.Companies,
		Market:      g.Market,
		Blueprints:  g.Catalog.Blueprints(),
		FiredEvents: g.FiredEvents,
		Modifiers:   g.Modifiers,
	}
}

// FromState rebuilds a game from a snapshot.
func FromState(st State) *Game {
	g := &Game{
		Companies:   st.Companies,
		Year:        st.Year,
		Month:       st.Month,
		Turn:        st.Turn,
		Market:      st.Market,
		Catalog:     fleet.NewCatalog(st.Blueprints),
		Weather:     weather.NewField(st.Seed),
		Seed:        st.Seed,
		FiredEvents: st.FiredEvents,
		Modifiers:   st.Modifiers,
		src:         entropy.NewSeeded(st.Seed + int64(st.Turn)*1_000_003),
		removals:    make(map[*company.Company]string),
	}
	if g.FiredEvents == nil {
		g.FiredEvents = make(map[string]bool)
	}
	return g
}
