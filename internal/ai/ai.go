// Package ai supplies turn decisions for machine-controlled companies.
// Three personalities: Aggressive chases the export market and smuggles
// freely, Conservative fishes local waters and buys bonds, Bot fills
// out the field with basic play.
package ai

import (
	"github.com/talgya/togaraveldi/internal/company"
	"github.com/talgya/togaraveldi/internal/engine"
	"github.com/talgya/togaraveldi/internal/fleet"
)

// Provider is an engine.ActionProvider dispatching on the company's
// controller tag. Human-controlled companies idle; wire a real input
// layer for them.
func Provider(c *company.Company, g *engine.Game) engine.Action {
	switch c.Controller {
	case company.ControllerAggressive:
		return aggressive(c, g)
	case company.ControllerConservative:
		return conservative(c, g)
	case company.ControllerBot:
		return bot(c, g)
	default:
		return engine.Action{Kind: engine.ActionIdle}
	}
}

// aggressive plays for speed: lawyer out of trouble, expand the fleet,
// smuggle often, run the export route whenever the price justifies it.
func aggressive(c *company.Company, g *engine.Game) engine.Action {
	src := g.Rand()

	if c.UnderInvestigation && c.Money > 420_000 {
		return engine.Action{Kind: engine.ActionCallLawyer}
	}
	if needsDoctor(c) {
		return engine.Action{Kind: engine.ActionVisitDoctor}
	}
	if !c.HasHeir && c.Health < 50 && c.Money > 200_000 && c.Reputation >= 20 {
		return engine.Action{Kind: engine.ActionSecureHeir}
	}

	if c.Money > 500_000 && len(c.Boats) < 2 {
		return engine.Action{Kind: engine.ActionBuyBoat, BlueprintID: "togari_01"}
	}
	if c.Money > 250_000 && len(c.Boats) < 1 {
		return engine.Action{Kind: engine.ActionBuyBoat, BlueprintID: "smabatur_02"}
	}
	if act, ok := fitNextUpgrade(c, g, 1_000_000); ok {
		return act
	}

	if len(c.Boats) > 0 && src.Float64() < 0.8 {
		return engine.Action{Kind: engine.ActionSmuggle}
	}
	if c.FirstOceanGoing(g.Catalog) != nil && g.Market.ExportPrice > 700 && !g.ExportBanned() {
		return engine.Action{Kind: engine.ActionExportTrip}
	}

	if c.Fame >= 50 && c.Money > 1_000_000 {
		return engine.Action{Kind: engine.ActionPoliticalSupport, Amount: c.Money / 4}
	}
	if excess := c.Money - 420_000; excess > 0 {
		if amount := excess / 10; amount > 0 {
			return engine.Action{Kind: engine.ActionInvestBonds, Amount: amount}
		}
	}

	return fishOrIdle(c, g)
}

// conservative grows slowly: secure the dynasty early, stay out of
// trouble, heavy bond savings, export only at very high prices.
func conservative(c *company.Company, g *engine.Game) engine.Action {
	if needsDoctor(c) {
		return engine.Action{Kind: engine.ActionVisitDoctor}
	}
	if !c.HasHeir && c.Money > 100_000 && c.Reputation >= 20 {
		return engine.Action{Kind: engine.ActionSecureHeir}
	}

	if c.Money > 630_000 && len(c.Boats) < 2 {
		return engine.Action{Kind: engine.ActionBuyBoat, BlueprintID: "togari_01"}
	}
	if c.Money > 126_000 && len(c.Boats) < 1 {
		return engine.Action{Kind: engine.ActionBuyBoat, BlueprintID: "smabatur_02"}
	}
	if act, ok := fitNextUpgrade(c, g, 300_000); ok {
		return act
	}

	if c.FirstOceanGoing(g.Catalog) != nil && g.Market.ExportPrice > 900 && !g.ExportBanned() {
		return engine.Action{Kind: engine.ActionExportTrip}
	}
	if len(c.Boats) > 0 && g.Rand().Float64() < 0.1 {
		return engine.Action{Kind: engine.ActionSmuggle}
	}

	if excess := c.Money - 420_000; excess > 0 {
		if amount := excess * 4 / 10; amount > 0 {
			return engine.Action{Kind: engine.ActionInvestBonds, Amount: amount}
		}
	}

	return fishOrIdle(c, g)
}

// bot keeps things simple: first boat when affordable, local fishing,
// the odd smuggling run, never the export route.
func bot(c *company.Company, g *engine.Game) engine.Action {
	src := g.Rand()

	if needsDoctor(c) {
		return engine.Action{Kind: engine.ActionVisitDoctor}
	}
	if !c.HasHeir && src.Float64() < 0.05 && c.Money > 150_000 && c.Reputation >= 20 {
		return engine.Action{Kind: engine.ActionSecureHeir}
	}
	if c.Money > 60_000 && len(c.Boats) < 1 {
		return engine.Action{Kind: engine.ActionBuyBoat, BlueprintID: "smabatur_01"}
	}
	if len(c.Boats) > 0 && src.Float64() < 0.3 {
		return engine.Action{Kind: engine.ActionSmuggle}
	}
	return fishOrIdle(c, g)
}

// fitNextUpgrade returns a buy_upgrade action for the first ocean-going
// boat missing an era-available safety upgrade, once cash clears the
// reserve plus the upgrade cost.
func fitNextUpgrade(c *company.Company, g *engine.Game, reserve int64) (engine.Action, bool) {
	boat := c.FirstOceanGoing(g.Catalog)
	if boat == nil {
		return engine.Action{}, false
	}
	up, ok := fleet.NextUpgrade(boat, g.Year)
	if !ok || c.Money < reserve+up.Cost {
		return engine.Action{}, false
	}
	return engine.Action{
		Kind:       engine.ActionBuyUpgrade,
		InstanceID: boat.InstanceID,
		UpgradeID:  up.ID,
	}, true
}

func needsDoctor(c *company.Company) bool {
	return (c.B12 < 40 || c.Health < 50) && c.Money > 4_200
}

func fishOrIdle(c *company.Company, g *engine.Game) engine.Action {
	if c.HasBoatClass(g.Catalog, "Inshore") {
		return engine.Action{Kind: engine.ActionDomesticTrip}
	}
	if c.FirstOceanGoing(g.Catalog) != nil && !g.ExportBanned() {
		return engine.Action{Kind: engine.ActionExportTrip}
	}
	return engine.Action{Kind: engine.ActionIdle}
}
