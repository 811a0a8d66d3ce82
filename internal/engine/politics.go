// Politics: bonds for the patient, klíkusambönd for the ambitious, and
// the presidential election that can wipe a criminal record clean.
package engine

import (
	"fmt"

	"github.com/talgya/togaraveldi/internal/company"
)

// resolveBondInvestment moves cash into government bonds. The slow,
// safe road: 4.2% a year, compounding.
func (g *Game) resolveBondInvestment(c *company.Company, amount int64) Outcome {
	if amount <= 0 {
		return fail(OutcomeIneligible, "nothing to invest")
	}
	if c.Money < amount {
		return fail(OutcomeInsufficientFunds, "cannot cover the bond purchase")
	}

	c.Money -= amount
	c.Bonds += amount
	g.emit(c.Name, "finance", fmt.Sprintf("%s buys %s kr of government bonds", c.Name, kr(amount)))
	return ok()
}

// payBondReturns compounds the annual bond return: paid in cash and
// added to the principal.
func (g *Game) payBondReturns(c *company.Company) {
	if c.Bonds <= 0 {
		return
	}
	returns := int64(float64(c.Bonds) * bondAnnualReturn)
	c.Money += returns
	c.Bonds += returns
	g.emit(c.Name, "finance", fmt.Sprintf("%s earns %s kr in bond returns", c.Name, kr(returns)))
}

// resolvePoliticalSupport converts money into political capital, one
// point per ten thousand kronur. Nobodies need not apply: it takes fame
// to get a candidate's ear.
func (g *Game) resolvePoliticalSupport(c *company.Company, investment int64) Outcome {
	if c.Fame < politicalSupportMinFame {
		return fail(OutcomeIneligible, "not famous enough to influence politics")
	}
	if investment <= 0 {
		return fail(OutcomeIneligible, "nothing to contribute")
	}
	if c.Money < investment {
		return fail(OutcomeInsufficientFunds, "cannot cover the contribution")
	}

	gained := int(investment / politicalCapitalPerKronur)
	c.Money -= investment
	c.AddPoliticalCapital(gained)
	g.emit(c.Name, "politics", fmt.Sprintf("%s backs a candidate with %s kr (+%d klíkusambönd)", c.Name, kr(investment), gained))
	return ok()
}

// resolvePoliticalAttack spends political capital on a dirty trick
// against a rival. The form of the attack is out of the attacker's
// hands: whispered suspicion, turned allies, or a smear in the papers.
func (g *Game) resolvePoliticalAttack(c *company.Company, targetName string) Outcome {
	if c.PoliticalCapital < politicalAttackCost {
		return fail(OutcomeIneligible, "not enough political capital")
	}
	target := g.FindCompany(targetName)
	if target == nil || target == c || g.markedForRemoval(target) {
		return fail(OutcomeIneligible, "no such rival")
	}

	c.AddPoliticalCapital(-politicalAttackCost)

	switch g.src.IntN(3) {
	case 0:
		target.AddSuspicion(50)
		g.emit(c.Name, "politics", fmt.Sprintf("%s uses influence to put the tax office onto %s", c.Name, target.Name))
	case 1:
		stolen := target.PoliticalCapital / 2
		target.AddPoliticalCapital(-stolen)
		c.AddPoliticalCapital(stolen)
		g.emit(c.Name, "politics", fmt.Sprintf("%s turns %s's political allies", c.Name, target.Name))
	default:
		target.AddReputation(-20)
		g.emit(c.Name, "politics", fmt.Sprintf("%s launches a smear campaign against %s", c.Name, target.Name))
	}
	return ok()
}

// runElectionIfDue holds the presidential election every fourth June.
// The company with the most political capital wins if it clears the
// victory threshold, and the new president grants it uppreisn æru:
// investigations dropped, suspicion wiped, reputation restored.
func (g *Game) runElectionIfDue() {
	if g.Month != 6 || g.Year%4 != 0 {
		return
	}
	key := fmt.Sprintf("election_%d", g.Year)
	if g.FiredEvents[key] {
		return
	}
	g.FiredEvents[key] = true

	var leader *company.Company
	for _, c := range g.Companies {
		if g.markedForRemoval(c) || c.PoliticalCapital <= 0 {
			continue
		}
		if leader == nil || c.PoliticalCapital > leader.PoliticalCapital {
			leader = c
		}
	}

	if leader == nil {
		g.emit("", "politics", fmt.Sprintf("the %d presidential election passes without industry influence", g.Year))
		return
	}
	if leader.PoliticalCapital < electionWinThreshold {
		g.emit(leader.Name, "politics", fmt.Sprintf("%s leads the %d election lobbying but lacks the support to crown a president", leader.Name, g.Year))
		return
	}

	leader.UnderInvestigation = false
	leader.SkipTurns = 0
	leader.PendingFine = 0
	leader.Suspicion = 0
	leader.Reputation = 100
	g.emit(leader.Name, "politics", fmt.Sprintf("%s's candidate wins the %d presidency; uppreisn æru wipes the record clean", leader.Name, g.Year))
}
