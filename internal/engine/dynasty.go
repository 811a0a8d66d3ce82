// Dynasty mechanics: heirs, family conflict, and succession on death.
package engine

import (
	"fmt"
	"strings"

	"github.com/talgya/togaraveldi/internal/company"
)

// resolveSecureHeir marries into the dynasty's next generation. Costs
// money and two turns of business, needs a minimum of respectability.
// Securing an heir can spark a family conflict over the succession.
func (g *Game) resolveSecureHeir(c *company.Company) Outcome {
	if c.HasHeir {
		return fail(OutcomeIneligible, "already has an heir")
	}
	if c.Reputation < heirMinReputation {
		return fail(OutcomeIneligible, "reputation too low to marry well")
	}
	if c.Money < heirCost {
		return fail(OutcomeInsufficientFunds, "cannot afford the wedding")
	}

	c.Money -= heirCost
	c.HasHeir = true
	c.SkipTurns = heirSkipTurns
	c.AddReputation(heirReputationBonus)
	g.emit(c.Name, "dynasty", c.Name+" secures an heir for the dynasty")

	if g.src.Float64() < g.conflictChance(c) {
		g.triggerSuccessionConflict(c)
	}
	return ok()
}

// conflictChance is the probability a new heir sparks a family feud.
// Wealth attracts claimants; a bad name breeds contempt.
func (g *Game) conflictChance(c *company.Company) float64 {
	chance := conflictBaseChance
	if c.Money > 1_000_000 {
		chance += conflictWealthyBonus
	}
	if c.Money > 5_000_000 {
		chance += conflictWealthyBonus
	}
	if c.Reputation < 30 {
		chance += conflictLowRepBonus
	}
	return chance
}

// triggerSuccessionConflict rolls one of four equally likely outcomes.
// Two of them kill the heir.
func (g *Game) triggerSuccessionConflict(c *company.Company) {
	roll := g.src.Float64()
	switch {
	case roll < 0.25:
		// Legal battle: heir secured, family divided.
		cost := int64(float64(c.Money) * 0.20)
		c.Money -= cost
		c.AddReputation(-10)
		g.emit(c.Name, "dynasty", fmt.Sprintf("relatives drag %s through the courts over the succession (%s kr in costs)", c.Name, kr(cost)))

	case roll < 0.50:
		// Family betrayal: the heir is poisoned.
		cost := int64(float64(c.Money) * 0.30)
		c.Money -= cost
		c.AddReputation(-20)
		c.HasHeir = false
		g.emit(c.Name, "dynasty", c.Name+"'s heir is poisoned by a jealous relative")

	case roll < 0.75:
		// Murder attempt, even odds the heir survives.
		if g.src.Float64() < 0.50 {
			cost := int64(float64(c.Money) * 0.15)
			c.Money -= cost
			c.AddReputation(-30)
			g.emit(c.Name, "dynasty", c.Name+"'s heir survives a murder attempt, barely")
		} else {
			cost := int64(float64(c.Money) * 0.25)
			c.Money -= cost
			c.AddReputation(-40)
			c.HasHeir = false
			g.emit(c.Name, "dynasty", c.Name+"'s heir is murdered by rival claimants")
		}

	default:
		// Peaceful resolution: rivals bought off.
		cost := int64(float64(c.Money) * 0.10)
		c.Money -= cost
		c.AddReputation(5)
		g.emit(c.Name, "dynasty", c.Name+" negotiates peace among the claimants")
	}
}

// settleSuccession handles the owner's death. Without an heir the
// dynasty ends and the company is removed. With one, the heir inherits
// the company less the inheritance tax, with fresh health and a
// reputation to rebuild. The fleet, bonds, and legal exposure carry
// over untouched.
func (g *Game) settleSuccession(c *company.Company) {
	if !c.HasHeir {
		g.emit(c.Name, "dynasty", c.Name+" dies without an heir; the dynasty ends")
		g.markRemoval(c, "dynasty extinct")
		return
	}

	tax := int64(float64(c.Money) * inheritanceTaxRate)
	c.Money -= tax

	oldName := c.Name
	c.Generation++
	c.Name = heirName(c.Name, c.Generation)

	c.Health = 100
	c.B12 = 100
	c.TeethLost = 0
	c.CognitiveDecline = false
	c.TurnsSinceDoctor = 0
	c.ConspiracyExposure = 0
	c.Reputation = heirReputationRebuild
	c.HasHeir = false

	g.emit(c.Name, "dynasty", fmt.Sprintf("%s passes away; %s inherits after %s kr inheritance tax", oldName, c.Name, kr(tax)))
}

var generationSuffixes = []string{" II", " III", " IV"}

// heirName derives the next generation's name, stripping any existing
// generation suffix from the base.
func heirName(name string, generation int) string {
	base := name
	if i := strings.Index(base, " (Gen"); i >= 0 {
		base = base[:i]
	}
	for _, suffix := range generationSuffixes {
		base = strings.TrimSuffix(base, suffix)
	}

	switch generation {
	case 2:
		return base + " II"
	case 3:
		return base + " III"
	case 4:
		return base + " IV"
	default:
		return fmt.Sprintf("%s (Gen %d)", base, generation)
	}
}
