// Turn orchestration. Within a turn the phases run in a fixed order:
// scheduled events and elections, then per company (in roster order)
// conditional events and action resolution with health effects and
// succession settlement, then modifier ticks, bankruptcy checks,
// market update, and finally the calendar advance. Random draws follow
// that same order, so a seeded game replays bit-for-bit.
package engine

import (
	"log/slog"

	"github.com/talgya/togaraveldi/internal/company"
)

// Effect is one applied state change, recorded for narration and tests.
type Effect struct {
	Year     int    `json:"year"`
	Month    int    `json:"month"`
	Company  string `json:"company"` // empty for market/global effects
	Category string `json:"category"`
	Text     string `json:"text"`
}

// TurnReport lists everything that happened in one turn.
type TurnReport struct {
	Year    int
	Month   int
	Effects []Effect
}

// ActionProvider supplies each company's action for the turn: the AI
// policies for machine companies, the input layer for the human.
type ActionProvider func(c *company.Company, g *Game) Action

// emit appends an effect to the game log.
func (g *Game) emit(companyName, category, text string) {
	g.Log = append(g.Log, Effect{
		Year:     g.Year,
		Month:    g.Month,
		Company:  companyName,
		Category: category,
		Text:     text,
	})
}

// AdvanceTurn advances the simulation by one month and returns the
// report of applied effects.
func (g *Game) AdvanceTurn(provider ActionProvider) TurnReport {
	logStart := len(g.Log)
	report := TurnReport{Year: g.Year, Month: g.Month}

	// Phase 1: scheduled and periodic events.
	g.dispatchScheduledEvents()
	g.runElectionIfDue()

	// Phase 2: per-company conditional events and actions. Whether a
	// company sits out this turn is decided before conditional events
	// run, so an investigation opened this turn costs the NEXT turn.
	for _, c := range g.Companies {
		if g.markedForRemoval(c) {
			continue
		}

		skipping := c.SkipTurns > 0
		g.dispatchCompanyEvents(c)
		if g.markedForRemoval(c) {
			continue
		}

		if skipping {
			// An investigated company gets one last call before sitting
			// out: the lawyer clears the skip, anything else serves it.
			lawyered := false
			if c.UnderInvestigation {
				if act := provider(c, g); act.Kind == ActionCallLawyer {
					lawyered = g.resolveCallLawyer(c).Code == OutcomeOK
				}
			}
			if !lawyered {
				g.consumeSkippedTurn(c)
			}
		} else {
			act := provider(c, g)
			outcome := g.resolve(c, act)
			if outcome.Code != OutcomeOK && outcome.Code != OutcomeDisaster {
				slog.Debug("action not resolved",
					"company", c.Name, "action", act.Kind, "outcome", outcome.Code)
			}
		}

		// Phase 3 (per company): death and succession settlement.
		if c.Health <= 0 && !g.markedForRemoval(c) {
			g.settleSuccession(c)
		}
	}

	// Phase 4: timed modifiers expire only after the action phase has
	// seen them, so an N-turn modifier covers N action phases.
	g.tickModifiers()

	// Phase 5: bankruptcy and dissolution, deferred to round end.
	g.checkSolvency()

	// Phase 6: market movement.
	g.Market.Update(g.src)

	// Phase 7: calendar advance; annual effects on year rollover.
	g.advanceCalendar()

	g.applyRemovals()
	g.Turn++

	report.Effects = append(report.Effects, g.Log[logStart:]...)
	slog.Debug("turn complete",
		"turn", g.Turn, "year", report.Year, "month", report.Month,
		"companies", len(g.Companies), "effects", len(report.Effects))
	return report
}

// consumeSkippedTurn burns one forced idle turn. A company that sat out
// its investigation turn pays the assessed fine and the case closes.
func (g *Game) consumeSkippedTurn(c *company.Company) {
	c.SkipTurns--
	g.emit(c.Name, "skip", c.Name+" sits out the month")

	if c.UnderInvestigation && c.SkipTurns == 0 {
		if c.PendingFine > 0 {
			c.Money -= c.PendingFine
			g.emit(c.Name, "scandal", c.Name+" pays the tax fine of "+kr(c.PendingFine)+" kr")
		}
		c.PendingFine = 0
		c.UnderInvestigation = false
		// The fine settles the record; without this the same suspicion
		// would reopen the case next turn.
		c.Suspicion = 0
	}
}

// checkSolvency marks companies for removal: three straight rounds at
// or below zero money, or no fleet left with cash under the liquidity
// floor.
func (g *Game) checkSolvency() {
	for _, c := range g.Companies {
		if g.markedForRemoval(c) {
			continue
		}

		if c.Money <= 0 {
			c.InsolventRounds++
		} else {
			c.InsolventRounds = 0
		}

		if c.InsolventRounds >= insolvencyRoundLimit {
			g.markRemoval(c, "bankruptcy")
			continue
		}
		if len(c.Boats) == 0 && c.Money < liquidityFloor {
			g.markRemoval(c, "dissolved")
		}
	}
}

// advanceCalendar moves to the next month. On a new year: inflation hits
// prices and cost baselines, then bonds pay their annual return.
func (g *Game) advanceCalendar() {
	g.Month++
	if g.Month <= 12 {
		return
	}
	g.Month = 1
	g.Year++

	rate := g.annualInflationRate()
	g.Market.ApplyInflation(rate)
	g.Catalog.ApplyInflation(rate)
	g.emit("", "inflation", "annual inflation of "+pct(rate)+" raises prices and costs")

	for _, c := range g.Companies {
		g.payBondReturns(c)
	}
}
