// Historical and conditional events. The scheduled timeline follows
// Icelandic history from sovereignty in 1918 to the 2020 pandemic; each
// entry fires at most once per game. Conditional events run per company
// every turn: investigations opening on high suspicion, conspiracy
// theories on the radio.
package engine

import (
	"fmt"

	"github.com/talgya/togaraveldi/internal/company"
	"github.com/talgya/togaraveldi/internal/market"
)

// scheduledEvent is one dated entry in the historical timeline.
type scheduledEvent struct {
	Key   string
	Year  int
	Month int
	Title string
	Apply func(g *Game)
}

// timeline in chronological order. Dispatch iterates this slice, so the
// order here is the order effects land in the log.
var timeline = []scheduledEvent{
	{
		Key: "sovereignty_1918", Year: 1918, Month: 12,
		Title: "Act of Union: Iceland becomes a sovereign state",
		Apply: func(g *Game) {
			for _, c := range g.Companies {
				c.AddFame(10)
				c.AddReputation(10)
				c.AddPoliticalCapital(5)
			}
		},
	},
	{
		Key: "british_occupation_1940", Year: 1940, Month: 5,
		Title: "British forces occupy Iceland; wartime spending lifts the economy",
		Apply: func(g *Game) {
			for _, c := range g.Companies {
				c.Money += 84200
				c.AddFame(5)
			}
			g.Market.ScalePrices(1.3)
		},
	},
	{
		Key: "american_takeover_1941", Year: 1941, Month: 7,
		Title: "American forces take over the defense of Iceland",
		Apply: func(g *Game) {
			for _, c := range g.Companies {
				c.Money += 420000
				c.AddFame(25)
				c.AddReputation(15)
				c.AddPoliticalCapital(10)
			}
			g.Market.ScalePrices(1.5)
		},
	},
	{
		Key: "independence_1944", Year: 1944, Month: 6,
		Title: "The Republic of Iceland is declared",
		Apply: func(g *Game) {
			for _, c := range g.Companies {
				c.AddFame(42)
				c.AddReputation(42)
				c.AddCrewMorale(42)
				c.AddPoliticalCapital(20)
				c.Money += 420000
			}
		},
	},
	{
		Key: "nato_1949", Year: 1949, Month: 3,
		Title: "Iceland joins NATO; English market access improves",
		Apply: func(g *Game) {
			for _, c := range g.Companies {
				c.AddFame(15)
				c.AddReputation(5)
			}
			g.Market.ScaleExportPrice(1.2)
		},
	},
	{
		Key: "cod_war_first_1958", Year: 1958, Month: 9,
		Title: "First Cod War: the 12-mile zone expels British trawlers",
		Apply: func(g *Game) {
			for _, c := range g.Companies {
				c.AddReputation(5)
			}
			g.Market.ScalePrices(1.2)
		},
	},
	{
		Key: "herring_boom_1962", Year: 1962, Month: 6,
		Title: "Síldarárin: the herring boom brings golden years",
		Apply: func(g *Game) {
			for _, c := range g.Companies {
				c.Money += 162000
				c.AddFame(20)
				c.AddCrewMorale(30)
			}
			g.Market.ScalePrices(2.5)
		},
	},
	{
		Key: "herring_collapse_1968", Year: 1968, Month: 8,
		Title: "Síldarhrunið: the herring stock collapses",
		Apply: func(g *Game) {
			for _, c := range g.Companies {
				c.Money = int64(float64(c.Money) * 0.7)
				c.AddReputation(-20)
				c.AddCrewMorale(-20)
			}
			g.Market.ScalePrices(0.6)
		},
	},
	{
		Key: "manuscripts_1971", Year: 1971, Month: 4,
		Title: "The medieval manuscripts come home from Denmark",
		Apply: func(g *Game) {
			for _, c := range g.Companies {
				c.AddFame(30)
				c.AddReputation(20)
				c.AddCrewMorale(20)
				c.AddPoliticalCapital(10)
			}
		},
	},
	{
		Key: "cod_war_second_1972", Year: 1972, Month: 9,
		Title: "Second Cod War: the 50-mile zone against the Royal Navy",
		Apply: func(g *Game) {
			for _, c := range g.Companies {
				c.AddFame(10)
				c.AddReputation(10)
			}
			g.Market.ScalePrices(1.5)
		},
	},
	{
		Key: "oil_crisis_1974", Year: 1974, Month: 10,
		Title: "Olíukreppa: the oil crisis ignites inflation",
		Apply: func(g *Game) {
			g.applyInflationCrisis(0.42)
		},
	},
	{
		Key: "cod_war_third_1975", Year: 1975, Month: 11,
		Title: "Third Cod War: Britain backs down, the 200-mile zone holds",
		Apply: func(g *Game) {
			for _, c := range g.Companies {
				c.AddFame(20)
				c.AddReputation(20)
				c.AddCrewMorale(30)
				c.Money += 420000
			}
			g.Market.ScalePrices(2.0)
		},
	},
	{
		Key: "peak_inflation_1980", Year: 1980, Month: 1,
		Title: "Mesti verðbólga í sögunni: inflation hits its historical peak",
		Apply: func(g *Game) {
			g.applyInflationCrisis(0.58)
		},
	},
	{
		Key: "beer_day_1989", Year: 1989, Month: 3,
		Title: "Bjórdagurinn: the beer prohibition ends after 74 years",
		Apply: func(g *Game) {
			for _, c := range g.Companies {
				c.AddHealth(15)
				c.AddFame(5)
				c.AddCrewMorale(20)
			}
		},
	},
	{
		Key: "bank_collapse_2008", Year: 2008, Month: 10,
		Title: "Bankahrunið: the banks default and the krona collapses",
		Apply: func(g *Game) {
			for _, c := range g.Companies {
				c.Money = int64(float64(c.Money) * 0.4)
				c.AddReputation(-10)
				if c.CreditDebt > c.Money {
					g.markRemoval(c, "liquidated in the bank collapse")
				}
			}
		},
	},
	{
		Key: "volcano_2010", Year: 2010, Month: 4,
		Title: "Eldgos í Eyjafjallajökli: the ash cloud halts all exports",
		Apply: func(g *Game) {
			g.Modifiers = append(g.Modifiers, &Modifier{
				Name: "ash cloud export ban", TurnsLeft: 4, ExportBan: true,
			})
		},
	},
	{
		Key: "euro_2016", Year: 2016, Month: 6,
		Title: "Euro 2016: Iceland 2, England 1",
		Apply: func(g *Game) {
			for _, c := range g.Companies {
				c.AddFame(50)
				c.AddReputation(30)
				c.SetCrewMorale(100)
				c.Money += 420000
			}
		},
	},
	{
		Key: "pandemic_2020", Year: 2020, Month: 3,
		Title: "A global pandemic is declared; panic buying sweeps the nation",
		Apply: func(g *Game) {
			g.payPandemicInvestments()
		},
	},
}

// dispatchScheduledEvents fires every timeline entry due this month
// that has not fired before.
func (g *Game) dispatchScheduledEvents() {
	for i := range timeline {
		ev := &timeline[i]
		if ev.Year != g.Year || ev.Month != g.Month || g.FiredEvents[ev.Key] {
			continue
		}
		g.FiredEvents[ev.Key] = true
		g.emit("", "history", ev.Title)
		ev.Apply(g)
	}
}

// tickModifiers counts down active modifiers and drops expired ones.
func (g *Game) tickModifiers() {
	kept := g.Modifiers[:0]
	for _, m := range g.Modifiers {
		m.TurnsLeft--
		if m.TurnsLeft > 0 {
			kept = append(kept, m)
			continue
		}
		g.emit("", "history", m.Name+" lifts")
	}
	g.Modifiers = kept
}

// applyInflationCrisis runs the high-inflation squeeze: debtors get
// relief as their debt deflates, large cash piles erode.
func (g *Game) applyInflationCrisis(rate float64) {
	for _, c := range g.Companies {
		if c.CreditDebt > 0 {
			relief := int64(float64(c.CreditDebt) * rate * 0.5)
			if relief > c.CreditDebt {
				relief = c.CreditDebt
			}
			c.CreditDebt -= relief
			g.emit(c.Name, "inflation", fmt.Sprintf("inflation erodes %s's debt by %s kr", c.Name, kr(relief)))
		}
		if c.Money > 100000 {
			loss := int64(float64(c.Money) * rate * 0.3)
			c.Money -= loss
			g.emit(c.Name, "inflation", fmt.Sprintf("%s's cash loses %s kr to inflation", c.Name, kr(loss)))
		}
	}
}

// annualInflationRate draws the year's rate using the shared source.
func (g *Game) annualInflationRate() float64 {
	return market.AnnualRate(g.Year, g.src)
}

// resolveSupplyInvestment stockpiles pandemic supplies. Dead money
// until March 2020, when it pays ten to one.
func (g *Game) resolveSupplyInvestment(c *company.Company, category string, amount int64) Outcome {
	switch category {
	case "masks", "toilet_paper", "sanitizer":
	default:
		return fail(OutcomeIneligible, "no market for that")
	}
	if amount <= 0 {
		return fail(OutcomeIneligible, "nothing to invest")
	}
	if c.Money < amount {
		return fail(OutcomeInsufficientFunds, "cannot cover the stockpile")
	}

	c.Money -= amount
	c.Investments[category] += amount
	g.emit(c.Name, "finance", fmt.Sprintf("%s stockpiles %s kr of %s", c.Name, kr(amount), category))
	return ok()
}

// payPandemicInvestments cashes out supply stockpiles at a 10x return.
func (g *Game) payPandemicInvestments() {
	for _, c := range g.Companies {
		total := c.Investments["masks"] + c.Investments["toilet_paper"] + c.Investments["sanitizer"]
		if total <= 0 {
			continue
		}
		profit := total * 10
		c.Money += profit
		c.AddFame(20)
		c.Investments["masks"] = 0
		c.Investments["toilet_paper"] = 0
		c.Investments["sanitizer"] = 0
		g.emit(c.Name, "finance", fmt.Sprintf("%s's pandemic stockpile sells for %s kr", c.Name, kr(profit)))
	}
}

// dispatchCompanyEvents runs the per-company conditional events: the
// tax office acting on accumulated suspicion, and the occasional
// conspiracy theorist at the harbor. Fatal conspiracy exposure ends the
// line on the spot, heir or no heir.
func (g *Game) dispatchCompanyEvents(c *company.Company) {
	if !c.UnderInvestigation && c.Suspicion >= suspicionInvestigationThreshold {
		g.openInvestigation(c)
	}

	if g.src.Float64() < conspiracyEncounterChance {
		if g.src.Float64() < conspiracyListenChance {
			g.exposeToConspiracy(c)
		} else {
			c.AddReputation(1)
			g.emit(c.Name, "conspiracy", c.Name+" walks away from harbor-bar conspiracy talk")
		}
	}
}

// exposeToConspiracy adds one exposure. Past the safe threshold each
// further exposure damages health and B12; at the fatal threshold the
// listener dies of it.
func (g *Game) exposeToConspiracy(c *company.Company) {
	c.ConspiracyExposure++
	g.emit(c.Name, "conspiracy", fmt.Sprintf("%s listens a little too long to conspiracy theories (%d)", c.Name, c.ConspiracyExposure))

	if c.ConspiracyExposure > conspiracySafeExposure {
		damage := c.ConspiracyExposure - conspiracySafeExposure
		if damage > 10 {
			damage = 10
		}
		c.AddHealth(-damage)
		c.AddB12(-damage)
	}

	if c.ConspiracyExposure >= conspiracyFatalExposure {
		g.emit(c.Name, "conspiracy", c.Name+" listened unwittingly for too long, and died of it")
		g.markRemoval(c, "death by conspiracy theories")
	}
}
