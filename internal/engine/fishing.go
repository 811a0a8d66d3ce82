// Fishing trip resolvers: the honest domestic run and the risky
// export crossing to Hull.
package engine

import (
	"fmt"
	"sort"
	"strings"

	"github.com/talgya/togaraveldi/internal/company"
	"github.com/talgya/togaraveldi/internal/fleet"
	"github.com/talgya/togaraveldi/internal/market"
)

// catchWeights returns how a catch splits across species by season.
func catchWeights(season Season) map[market.Species]float64 {
	switch season {
	case SeasonWinter:
		return map[market.Species]float64{market.Cod: 0.6, market.Haddock: 0.3, market.Skate: 0.1}
	case SeasonSpring:
		return map[market.Species]float64{market.Cod: 0.5, market.Haddock: 0.3, market.Skate: 0.2}
	case SeasonSummer:
		return map[market.Species]float64{market.Cod: 0.3, market.Haddock: 0.5, market.Skate: 0.2}
	default: // autumn
		return map[market.Species]float64{market.Cod: 0.3, market.Haddock: 0.3, market.Skate: 0.4}
	}
}

// simulateCatch draws a catch for a boat: U(50%,100%) of capacity split
// by seasonal weights, with unavailable species caught as zero.
func (g *Game) simulateCatch(capacity int) map[market.Species]int {
	total := g.src.Between(capacity/2, capacity)
	weights := catchWeights(g.Season())

	catch := make(map[market.Species]int, len(market.AllSpecies))
	for _, sp := range market.AllSpecies {
		if !g.Market.Available[sp] {
			catch[sp] = 0
			continue
		}
		catch[sp] = int(float64(total) * weights[sp])
	}
	return catch
}

// effectiveCapacity applies the cognitive-decline efficiency penalty.
func effectiveCapacity(c *company.Company, capacity int) int {
	if c.CognitiveDecline {
		return int(float64(capacity) * declineEfficiency)
	}
	return capacity
}

// crewCapacity scales a boat's capacity up for a seasoned crew, capped.
func crewCapacity(b *fleet.Boat, capacity int) int {
	bonus := float64(b.CrewExperience()) * experienceCatchPerTrip
	if bonus > experienceCatchCap {
		bonus = experienceCatchCap
	}
	return int(float64(capacity) * (1 + bonus))
}

// resolveDomesticTrip sends every inshore boat out for the month. The
// catch is valued at domestic prices, upkeep deducted, and the net
// split half-and-half with the crew. Underpaid crews sometimes help
// themselves to more. The month at sea costs the owner's health either
// way.
func (g *Game) resolveDomesticTrip(c *company.Company) Outcome {
	if !c.HasBoatClass(g.Catalog, "Inshore") {
		return fail(OutcomeIneligible, "no inshore boat")
	}

	var revenue, upkeep int64
	for _, b := range c.Boats {
		bp, okBP := g.Catalog.Get(b.BlueprintID)
		if !okBP || bp.Class != "Inshore" {
			continue
		}

		catch := g.simulateCatch(crewCapacity(b, effectiveCapacity(c, bp.Capacity)))
		revenue += g.Market.CatchValue(catch, g.Month, false)
		upkeep += bp.Upkeep
		c.StoreCatch(catch)
		b.Wear()
		b.GainExperience()
	}

	net := revenue - upkeep
	if net > 0 {
		ownerShare := int64(float64(net) * crewProfitShare)
		c.Money += ownerShare
		c.AddCrewMorale(goodTripMorale)
		g.emit(c.Name, "fishing", fmt.Sprintf("%s lands a domestic catch, owner share %s kr", c.Name, kr(ownerShare)))

		if c.CrewMorale < lowMoraleThreshold && g.src.Float64() < crewGreedChance {
			skimmed := int64(float64(ownerShare) * crewGreedSkim)
			c.Money -= skimmed
			g.emit(c.Name, "crew", fmt.Sprintf("the crew of %s skims an extra %s kr", c.Name, kr(skimmed)))
		}
	} else {
		c.Money += net
		c.AddCrewMorale(-badTripMorale)
		g.emit(c.Name, "fishing", fmt.Sprintf("%s runs a loss of %s kr on the month's fishing", c.Name, kr(-net)))
	}

	g.degradeHealth(c)
	return ok()
}

// recordBoatLoss applies the social cost of a boat lost with all
// hands. When the crew carried family connections the loss becomes a
// svartur dagur, a black day: the reputation blow deepens with every
// family wiped out, crew morale collapses, and the crew's hometowns
// refuse to hire out to the company for years.
func (g *Game) recordBoatLoss(c *company.Company, boat *fleet.Boat) {
	families := boat.FamilyConnections()
	if len(families) == 0 {
		c.AddReputation(-disasterReputation)
		c.AddCrewMorale(-disasterMorale)
		g.emit(c.Name, "disaster", fmt.Sprintf("%s is lost at sea with all hands, %s", boat.Name, g.Weather.Describe(g.Year, g.Month)))
		return
	}

	c.AddReputation(-(svarturDagurReputationBase + svarturDagurReputationStep*len(families)))
	c.AddCrewMorale(-svarturDagurMorale)
	for _, town := range boat.CrewHometowns() {
		c.MourningTowns[town] = g.Year + mourningYears
	}

	names := make([]string, 0, len(families))
	for name := range families {
		names = append(names, name)
	}
	sort.Strings(names)

	skipper := "her skipper"
	if s := boat.Skipper(); s != nil {
		skipper = s.Name
	}
	g.emit(c.Name, "disaster", fmt.Sprintf(
		"svartur dagur: %s goes down with %s and all hands, the %s families grieve together",
		boat.Name, skipper, strings.Join(names, " and ")))
}

// resolveExportTrip sends the first ocean-going boat to Hull. Disaster
// risk is the boat's risk factor scaled by sea state; on disaster the
// boat and crew are lost and the trip yields nothing. On success the
// whole catch sells at the flat export rate against doubled upkeep.
func (g *Game) resolveExportTrip(c *company.Company) Outcome {
	if g.ExportBanned() {
		return fail(OutcomeIneligible, "export market closed")
	}
	boat := c.FirstOceanGoing(g.Catalog)
	if boat == nil {
		return fail(OutcomeIneligible, "no ocean-going boat")
	}
	bp, _ := g.Catalog.Get(boat.BlueprintID)

	risk := boat.RiskFactor(bp) * g.Weather.RiskMultiplier(g.Year, g.Month)
	if risk > 1 {
		risk = 1
	}
	if g.src.Float64() < risk {
		c.RemoveBoat(boat.InstanceID)
		g.recordBoatLoss(c, boat)
		g.degradeHealth(c)
		return Outcome{Code: OutcomeDisaster, Detail: boat.Name}
	}

	catch := g.simulateCatch(crewCapacity(boat, effectiveCapacity(c, bp.Capacity)))
	revenue := g.Market.CatchValue(catch, g.Month, true)
	upkeep := bp.Upkeep * exportUpkeepFactor
	boat.Wear()
	boat.GainExperience()

	net := revenue - upkeep
	if net > 0 {
		ownerShare := int64(float64(net) * crewProfitShare)
		c.Money += ownerShare
		c.AddCrewMorale(goodTripMorale)
		g.emit(c.Name, "fishing", fmt.Sprintf("%s returns from Hull, owner share %s kr", c.Name, kr(ownerShare)))
	} else {
		c.Money += net
		c.AddCrewMorale(-badTripMorale)
		g.emit(c.Name, "fishing", fmt.Sprintf("%s loses %s kr on the Hull run", c.Name, kr(-net)))
	}

	g.degradeHealth(c)
	return ok()
}
