// Crime and its consequences: smuggling runs, tax investigations, and
// the expensive lawyer who turns scandal into fame.
package engine

import (
	"fmt"

	"github.com/talgya/togaraveldi/internal/company"
)

// resolveSmuggling runs contraband on the side of a fishing trip. The
// profit dwarfs honest work; success still raises suspicion, and
// capture opens a tax investigation with a fine assessed against net
// worth.
func (g *Game) resolveSmuggling(c *company.Company) Outcome {
	if len(c.Boats) == 0 {
		return fail(OutcomeIneligible, "no boat to smuggle with")
	}
	if c.UnderInvestigation {
		return fail(OutcomeIneligible, "under investigation, too risky")
	}

	if g.src.Float64() < smugglingCaptureChance {
		g.emit(c.Name, "scandal", c.Name+" is caught smuggling by the coast guard")
		g.openInvestigation(c)
		return ok()
	}

	c.Money += smugglingProfit
	c.AddSuspicion(smugglingSuspicion)
	g.emit(c.Name, "scandal", fmt.Sprintf("%s quietly pockets %s kr from a smuggling run", c.Name, kr(smugglingProfit)))
	return ok()
}

// openInvestigation puts a company under tax investigation: it loses
// its next turn and is assessed a fine of 10 to 30 percent of net
// worth, due when the skipped turn is served. Calling the lawyer is
// the only way out.
func (g *Game) openInvestigation(c *company.Company) {
	c.UnderInvestigation = true
	c.SkipTurns = 1

	finePct := 0.10 + g.src.Float64()*0.20
	fine := int64(float64(c.NetWorth(g.Catalog)) * finePct)
	if fine < 0 {
		fine = 0
	}
	c.PendingFine = fine

	g.emit(c.Name, "scandal", fmt.Sprintf("tax authorities open an investigation into %s (fine assessed at %s kr)", c.Name, kr(fine)))
}

// resolveCallLawyer buys a way out of an open investigation. The fine
// and the skipped turn vanish, suspicion drops, and the tabloids make
// the company famous for all the wrong reasons.
func (g *Game) resolveCallLawyer(c *company.Company) Outcome {
	if !c.UnderInvestigation {
		return fail(OutcomeIneligible, "no investigation to escape")
	}
	if c.Money < lawyerFee {
		return fail(OutcomeInsufficientFunds, "cannot afford the lawyer")
	}

	c.Money -= lawyerFee
	c.UnderInvestigation = false
	c.SkipTurns = 0
	c.PendingFine = 0
	c.AddFame(lawyerFameGain)
	c.AddReputation(-lawyerReputationLoss)
	c.AddSuspicion(-lawyerSuspicionRelief)

	g.emit(c.Name, "scandal", fmt.Sprintf("%s hires an expensive lawyer and walks free; the tabloids feast (fame %d)", c.Name, c.Fame))
	return ok()
}
