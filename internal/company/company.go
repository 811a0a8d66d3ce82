// Package company holds the per-company ledger: money, standing,
// health, legal exposure, and fleet. The turn engine owns mutation
// during resolution; every stat write goes through the clamped setters
// so the [0,100] invariants hold after each mutation.
package company

import (
	"github.com/talgya/togaraveldi/internal/fleet"
	"github.com/talgya/togaraveldi/internal/market"
)

// Controller tags for AI-run companies. Empty string means a human player.
const (
	ControllerAggressive   = "Aggressive"
	ControllerConservative = "Conservative"
	ControllerBot          = "Bot"
)

// Company is the central entity, one per player or AI rival.
// Fields are grouped financial / social / health / legal; no behavior
// depends on the grouping.
type Company struct {
	// Identity and dynasty.
	Name       string
	Generation int
	HasHeir    bool
	Controller string // "" for the human player

	// Financial.
	Money       int64
	Bonds       int64            // government bond balance
	CreditDebt  int64            // outstanding credit-line debt
	Investments map[string]int64 // one-shot payoff ledger, e.g. "masks"

	// Social and political standing.
	Reputation       int // [0,100]
	Fame             int // unbounded upward, floored at 0
	PoliticalCapital int // klíkusambönd, floored at 0

	// Crew and health.
	CrewMorale         int // [0,100]
	Health             int // [0,100]
	B12                int // [0,100]
	TeethLost          int // monotonic
	CognitiveDecline   bool
	TurnsSinceDoctor   int
	ConspiracyExposure int

	// Legal risk.
	Suspicion          int // floored at 0, rises from crime
	UnderInvestigation bool
	SkipTurns          int   // turns the company is forced to sit out
	PendingFine        int64 // assessed when an investigation opens

	// Assets.
	Boats       []*fleet.Boat
	CatchInHold map[market.Species]int

	// Hometowns that lost sons on this company's boats, mapped to the
	// year the town will hire out to the company again.
	MourningTowns map[string]int

	// Rounds spent at or below zero money; the engine dissolves the
	// company once this crosses its insolvency limit.
	InsolventRounds int
}

// New creates a company with fresh-generation defaults.
func New(name string, money int64, controller string) *Company {
	return &Company{
		Name:        name,
		Generation:  1,
		Controller:  controller,
		Money:       money,
		Investments: make(map[string]int64),
		Reputation:  50,
		CrewMorale:  70,
		Health:      100,
		B12:         100,
		CatchInHold: make(map[market.Species]int),

		MourningTowns: make(map[string]int),
	}
}

// IsMourning reports whether the given hometown still refuses to crew
// for this company in the given year.
func (c *Company) IsMourning(town string, year int) bool {
	until, ok := c.MourningTowns[town]
	return ok && year < until
}

// IsAI reports whether the company is machine-controlled.
func (c *Company) IsAI() bool {
	return c.Controller != ""
}

// NetWorth is money plus depreciated fleet value plus bonds minus debt.
func (c *Company) NetWorth(cat *fleet.Catalog) int64 {
	total := c.Money + c.Bonds - c.CreditDebt
	for _, b := range c.Boats {
		if bp, ok := cat.Get(b.BlueprintID); ok {
			total += fleet.ResaleValue(bp)
		}
	}
	return total
}

// HasBoatClass reports whether the fleet contains a boat of the given class.
func (c *Company) HasBoatClass(cat *fleet.Catalog, class fleet.Class) bool {
	return c.FirstBoatOfClass(cat, class) != nil
}

// FirstBoatOfClass returns the first boat of the given class in fleet
// order, or nil.
func (c *Company) FirstBoatOfClass(cat *fleet.Catalog, class fleet.Class) *fleet.Boat {
	for _, b := range c.Boats {
		if bp, ok := cat.Get(b.BlueprintID); ok && bp.Class == class {
			return b
		}
	}
	return nil
}

// FirstOceanGoing returns the first trawler or factory ship, or nil.
func (c *Company) FirstOceanGoing(cat *fleet.Catalog) *fleet.Boat {
	for _, b := range c.Boats {
		if bp, ok := cat.Get(b.BlueprintID); ok && bp.Class.OceanGoing() {
			return b
		}
	}
	return nil
}

// RemoveBoat drops a boat instance from the fleet. Returns false if the
// boat is not owned.
func (c *Company) RemoveBoat(instanceID string) bool {
	for i, b := range c.Boats {
		if b.InstanceID == instanceID {
			c.Boats = append(c.Boats[:i], c.Boats[i+1:]...)
			return true
		}
	}
	return false
}

// StoreCatch adds a catch to the hold.
func (c *Company) StoreCatch(catch map[market.Species]int) {
	for _, sp := range market.AllSpecies {
		if tons := catch[sp]; tons > 0 {
			c.CatchInHold[sp] += tons
		}
	}
}
