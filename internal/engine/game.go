// Package engine drives the turn-based simulation: event dispatch,
// action resolution, health and succession, and market movement.
//
// One call to AdvanceTurn processes one simulated month: scheduled and
// conditional events fire first, then every company acts in roster
// order, then health/aging and succession are settled, then the market
// moves and the calendar advances. Company removals are deferred to the
// end of the round so the roster is never mutated mid-iteration.
package engine

import (
	"fmt"

	"github.com/talgya/togaraveldi/internal/company"
	"github.com/talgya/togaraveldi/internal/entropy"
	"github.com/talgya/togaraveldi/internal/fleet"
	"github.com/talgya/togaraveldi/internal/market"
	"github.com/talgya/togaraveldi/internal/weather"
)

// Season of the Icelandic fishing year.
type Season string

const (
	SeasonSpring Season = "Spring"
	SeasonSummer Season = "Summer"
	SeasonAutumn Season = "Autumn"
	SeasonWinter Season = "Winter"
)

// SeasonOf maps a month to its season.
func SeasonOf(month int) Season {
	switch {
	case month >= 3 && month <= 5:
		return SeasonSpring
	case month >= 6 && month <= 8:
		return SeasonSummer
	case month >= 9 && month <= 11:
		return SeasonAutumn
	default:
		return SeasonWinter
	}
}

// Modifier is a multi-turn global effect left behind by an event.
type Modifier struct {
	Name      string
	TurnsLeft int
	ExportBan bool
}

// CompanyConfig seeds one company at game creation.
type CompanyConfig struct {
	Name         string `yaml:"name"`
	Money        int64  `yaml:"money"`
	Controller   string `yaml:"controller"` // empty for the human player
	StartingBoat string `yaml:"starting_boat"`
	CrewHometown string `yaml:"crew_hometown"`
}

// Config holds game-creation parameters.
type Config struct {
	Seed       int64           `yaml:"seed"`
	StartYear  int             `yaml:"start_year"`
	StartMonth int             `yaml:"start_month"`
	Roster     []CompanyConfig `yaml:"roster"`
}

// Game is the complete world state, owned by the turn engine.
type Game struct {
	Companies []*company.Company
	Year      int
	Month     int
	Turn      int // completed rounds

	Market  *market.Market
	Catalog *fleet.Catalog
	Weather *weather.Field
	Seed    int64

	// FiredEvents makes scheduled events idempotent: once a key is in
	// the set the event never applies again.
	FiredEvents map[string]bool
	Modifiers   []*Modifier

	// Log is the append-only narrative record of every applied effect.
	Log []Effect

	src      entropy.Source
	removals map[*company.Company]string // company → removal reason, applied at round end
}

// NewGame creates a game from a config and an injected catalog and
// random source. A nil catalog uses the default shipyard; a nil source
// is seeded from cfg.Seed.
func NewGame(cfg Config, cat *fleet.Catalog, src entropy.Source) *Game {
	if cat == nil {
		cat = fleet.DefaultCatalog()
	}
	if src == nil {
		src = entropy.NewSeeded(cfg.Seed)
	}
	if cfg.StartYear == 0 {
		cfg.StartYear = 1900
	}
	if cfg.StartMonth == 0 {
		cfg.StartMonth = 4
	}

	g := &Game{
		Year:        cfg.StartYear,
		Month:       cfg.StartMonth,
		Market:      market.New(),
		Catalog:     cat,
		Weather:     weather.NewField(cfg.Seed),
		Seed:        cfg.Seed,
		FiredEvents: make(map[string]bool),
		src:         src,
		removals:    make(map[*company.Company]string),
	}

	for _, cc := range cfg.Roster {
		c := company.New(cc.Name, cc.Money, cc.Controller)
		if cc.StartingBoat != "" {
			if bp, ok := cat.Get(cc.StartingBoat); ok {
				boat := fleet.NewBoat(bp, c.Name, 1)
				fleet.HireCrew(src, boat, cc.CrewHometown)
				c.Boats = append(c.Boats, boat)
			}
		}
		g.Companies = append(g.Companies, c)
	}

	return g
}

// Rand exposes the game's random source for decision policies. Engine
// internals and policies must share one source for reproducible runs.
func (g *Game) Rand() entropy.Source {
	return g.src
}

// Season returns the current season.
func (g *Game) Season() Season {
	return SeasonOf(g.Month)
}

// ExportBanned reports whether an active modifier closes the export market.
func (g *Game) ExportBanned() bool {
	for _, m := range g.Modifiers {
		if m.ExportBan && m.TurnsLeft > 0 {
			return true
		}
	}
	return false
}

// FindCompany looks up a living company by name.
func (g *Game) FindCompany(name string) *company.Company {
	for _, c := range g.Companies {
		if c.Name == name {
			return c
		}
	}
	return nil
}

// markRemoval schedules a company for removal at round end. The first
// reason recorded wins.
func (g *Game) markRemoval(c *company.Company, reason string) {
	if _, ok := g.removals[c]; !ok {
		g.removals[c] = reason
	}
}

func (g *Game) markedForRemoval(c *company.Company) bool {
	_, ok := g.removals[c]
	return ok
}

// applyRemovals drops all marked companies from the roster, preserving
// the order of survivors.
func (g *Game) applyRemovals() {
	if len(g.removals) == 0 {
		return
	}
	kept := g.Companies[:0]
	for _, c := range g.Companies {
		if reason, ok := g.removals[c]; ok {
			g.emit(c.Name, "removal", fmt.Sprintf("%s leaves the game (%s)", c.Name, reason))
			continue
		}
		kept = append(kept, c)
	}
	g.Companies = kept
	g.removals = make(map[*company.Company]string)
}
