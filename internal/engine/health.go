// Owner health and nutrition. Months at sea deplete B12; low B12 costs
// teeth, then cognition, then health. A doctor visit restores B12 and
// some health but the teeth are gone for good.
package engine

import (
	"fmt"

	"github.com/talgya/togaraveldi/internal/company"
)

// degradeHealth applies one fishing month of wear on the owner. Draw
// order: the teeth roll only happens below the B12 threshold.
func (g *Game) degradeHealth(c *company.Company) {
	c.TurnsSinceDoctor++
	c.AddB12(-b12DepletionPerTrip)

	if c.B12 < teethLossB12Threshold && g.src.Float64() < teethLossChance {
		c.TeethLost++
		g.emit(c.Name, "health", fmt.Sprintf("%s loses a tooth to scurvy (%d gone)", c.Name, c.TeethLost))
	}

	if c.B12 < cognitiveDeclineThreshold && !c.CognitiveDecline {
		c.CognitiveDecline = true
		g.emit(c.Name, "health", c.Name+" shows signs of cognitive decline from B12 deficiency")
	}

	if c.B12 < healthLossB12Threshold {
		c.AddHealth(-healthDegradationRate)
	}
}

// resolveDoctorVisit restores B12 to full and some health. Cognitive
// decline lifts once B12 is back above its threshold; lost teeth stay
// lost.
func (g *Game) resolveDoctorVisit(c *company.Company) Outcome {
	if c.Money < doctorVisitCost {
		return fail(OutcomeInsufficientFunds, "cannot afford the doctor")
	}

	c.Money -= doctorVisitCost
	c.B12 = 100
	c.AddHealth(doctorHealthRestore)
	c.TurnsSinceDoctor = 0

	if c.CognitiveDecline {
		c.CognitiveDecline = false
		g.emit(c.Name, "health", c.Name+"'s cognition recovers with the B12 course")
	}

	g.emit(c.Name, "health", fmt.Sprintf("%s visits the doctor (health %d, B12 restored)", c.Name, c.Health))
	return ok()
}

// HealthWarnings lists the active health alerts for a company, worst
// first within each concern.
func HealthWarnings(c *company.Company) []string {
	var warnings []string

	switch {
	case c.B12 < 30:
		warnings = append(warnings, "critical B12 deficiency")
	case c.B12 < 50:
		warnings = append(warnings, "low B12 levels")
	}

	switch {
	case c.Health < 30:
		warnings = append(warnings, "critical health, dying of malnutrition")
	case c.Health < 50:
		warnings = append(warnings, "poor health")
	}

	if c.TeethLost > 5 {
		warnings = append(warnings, fmt.Sprintf("%d teeth lost to scurvy", c.TeethLost))
	}
	if c.CognitiveDecline {
		warnings = append(warnings, "cognitive decline impairing decisions")
	}
	if c.TurnsSinceDoctor > 20 {
		warnings = append(warnings, fmt.Sprintf("no doctor visit in %d months", c.TurnsSinceDoctor))
	}
	if !c.HasHeir && c.Health < 30 {
		warnings = append(warnings, "dynasty at risk: low health and no heir")
	}

	return warnings
}
