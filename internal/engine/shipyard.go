// Shipyard resolvers: buying hulls, fitting safety upgrades, and
// selling hulls back.
package engine

import (
	"fmt"

	"github.com/talgya/togaraveldi/internal/company"
	"github.com/talgya/togaraveldi/internal/fleet"
)

// resolveBoatPurchase buys a catalog hull at its current inflated cost
// and crews it from the owner's home port.
func (g *Game) resolveBoatPurchase(c *company.Company, blueprintID string) Outcome {
	bp, okBP := g.Catalog.Get(blueprintID)
	if !okBP {
		return fail(OutcomeIneligible, "no such blueprint")
	}
	if c.Money < bp.Cost {
		return fail(OutcomeInsufficientFunds, "cannot afford "+bp.ModelName)
	}

	c.Money -= bp.Cost
	boat := fleet.NewBoat(bp, c.Name, len(c.Boats)+1)
	fleet.HireCrew(g.src, boat, g.hiringTown(c))
	c.Boats = append(c.Boats, boat)

	g.emit(c.Name, "shipyard", fmt.Sprintf("%s takes delivery of %s for %s kr", c.Name, boat.Name, kr(bp.Cost)))
	return ok()
}

// hiringTown picks a crew hometown, skipping towns still mourning a
// crew the company lost. When every town is in mourning the pick falls
// back to the full list; somebody always needs the work.
func (g *Game) hiringTown(c *company.Company) string {
	open := make([]string, 0, len(fleet.Hometowns))
	for _, town := range fleet.Hometowns {
		if !c.IsMourning(town, g.Year) {
			open = append(open, town)
		}
	}
	if len(open) == 0 {
		open = fleet.Hometowns
	}
	return open[g.src.IntN(len(open))]
}

// resolveUpgradePurchase fits a safety upgrade to an owned boat. The
// technology must exist in the current year and not already be aboard.
func (g *Game) resolveUpgradePurchase(c *company.Company, instanceID, upgradeID string) Outcome {
	var boat *fleet.Boat
	for _, b := range c.Boats {
		if b.InstanceID == instanceID {
			boat = b
			break
		}
	}
	if boat == nil {
		return fail(OutcomeIneligible, "no such boat in the fleet")
	}

	up, okUp := fleet.Upgrades[upgradeID]
	if !okUp {
		return fail(OutcomeIneligible, "no such upgrade")
	}
	if g.Year < up.EraAvailable {
		return fail(OutcomeIneligible, up.Name+" does not exist yet")
	}
	if boat.HasUpgrade(up.ID) {
		return fail(OutcomeIneligible, boat.Name+" already carries a "+up.Name)
	}
	if c.Money < up.Cost {
		return fail(OutcomeInsufficientFunds, "cannot afford "+up.Name)
	}

	c.Money -= up.Cost
	boat.Upgrades = append(boat.Upgrades, up.ID)

	g.emit(c.Name, "shipyard", fmt.Sprintf("%s fits a %s to %s for %s kr", c.Name, up.Name, boat.Name, kr(up.Cost)))
	return ok()
}

// resolveBoatSale sells a boat back to the shipyard at half its
// blueprint cost, discounted for wear. The crew is paid off and
// dispersed.
func (g *Game) resolveBoatSale(c *company.Company, instanceID string) Outcome {
	var sold *fleet.Boat
	for _, b := range c.Boats {
		if b.InstanceID == instanceID {
			sold = b
			break
		}
	}
	if sold == nil {
		return fail(OutcomeIneligible, "no such boat in the fleet")
	}

	bp, okBP := g.Catalog.Get(sold.BlueprintID)
	if !okBP {
		return fail(OutcomeIneligible, "blueprint no longer in catalog")
	}

	price := int64(float64(fleet.SalePrice(bp)) * sold.Condition)
	c.RemoveBoat(sold.InstanceID)
	c.Money += price

	g.emit(c.Name, "shipyard", fmt.Sprintf("%s sells %s back to the yard for %s kr", c.Name, sold.Name, kr(price)))
	return ok()
}
