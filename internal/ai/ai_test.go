package ai

import (
	"testing"

	"github.com/talgya/togaraveldi/internal/company"
	"github.com/talgya/togaraveldi/internal/engine"
	"github.com/talgya/togaraveldi/internal/fleet"
)

func newTestGame(controller string, money int64, boat string) (*engine.Game, *company.Company) {
	cfg := engine.Config{
		Seed: 7,
		Roster: []engine.CompanyConfig{
			{Name: "Rival", Money: money, Controller: controller, StartingBoat: boat},
		},
	}
	g := engine.NewGame(cfg, nil, nil)
	return g, g.FindCompany("Rival")
}

func TestHumanSeatIdles(t *testing.T) {
	g, c := newTestGame("", 500_000, "smabatur_01")
	if act := Provider(c, g); act.Kind != engine.ActionIdle {
		t.Fatalf("human seat got %s from the AI provider, want idle", act.Kind)
	}
}

func TestConservativeSecuresHeirEarly(t *testing.T) {
	g, c := newTestGame(company.ControllerConservative, 150_000, "smabatur_01")
	if act := Provider(c, g); act.Kind != engine.ActionSecureHeir {
		t.Fatalf("conservative with cash and no heir chose %s, want secure_heir", act.Kind)
	}

	c.HasHeir = true
	act := Provider(c, g)
	if act.Kind == engine.ActionSecureHeir {
		t.Fatal("AI tried to secure a second heir")
	}
}

func TestAggressiveCallsLawyerWhenInvestigated(t *testing.T) {
	g, c := newTestGame(company.ControllerAggressive, 500_000, "smabatur_01")
	c.UnderInvestigation = true
	if act := Provider(c, g); act.Kind != engine.ActionCallLawyer {
		t.Fatalf("aggressive under investigation chose %s, want call_lawyer", act.Kind)
	}
}

func TestSickAIVisitsDoctor(t *testing.T) {
	for _, controller := range []string{
		company.ControllerAggressive, company.ControllerConservative, company.ControllerBot,
	} {
		g, c := newTestGame(controller, 50_000, "smabatur_01")
		c.HasHeir = true // keep the heir branch out of the way
		c.B12 = 20
		if act := Provider(c, g); act.Kind != engine.ActionVisitDoctor {
			t.Errorf("%s with B12 20 chose %s, want visit_doctor", controller, act.Kind)
		}
	}
}

func TestAggressiveFitsSafetyUpgrades(t *testing.T) {
	g, c := newTestGame(company.ControllerAggressive, 2_000_000, "togari_01")
	c.HasHeir = true
	bp, _ := g.Catalog.Get("smabatur_01")
	c.Boats = append(c.Boats, fleet.NewBoat(bp, c.Name, 2)) // fleet full, cash idle
	g.Year = 1960

	act := Provider(c, g)
	if act.Kind != engine.ActionBuyUpgrade || act.UpgradeID != "radio_beacon" {
		t.Fatalf("rich aggressive with a bare trawler chose %+v, want to fit the radio beacon", act)
	}
	if act.InstanceID != c.Boats[0].InstanceID {
		t.Fatal("the upgrade should go on the ocean-going boat")
	}

	// Before the beacon exists there is nothing to fit.
	g.Year = 1940
	if act := Provider(c, g); act.Kind == engine.ActionBuyUpgrade {
		t.Fatal("AI bought an upgrade before the technology existed")
	}
}

func TestBotBuysFirstBoat(t *testing.T) {
	g, c := newTestGame(company.ControllerBot, 100_000, "")
	c.HasHeir = true
	if act := Provider(c, g); act.Kind != engine.ActionBuyBoat || act.BlueprintID != "smabatur_01" {
		t.Fatalf("boatless bot with cash chose %+v, want to buy smabatur_01", act)
	}
}

func TestBoatlessBrokeAIIdles(t *testing.T) {
	g, c := newTestGame(company.ControllerBot, 1_000, "")
	c.HasHeir = true
	if act := Provider(c, g); act.Kind != engine.ActionIdle {
		t.Fatalf("bot with no boat and no money chose %s, want idle", act.Kind)
	}
}

func TestProviderNeverPanicsOverLongRun(t *testing.T) {
	cfg := engine.Config{
		Seed: 42,
		Roster: []engine.CompanyConfig{
			{Name: "Hafgengill hf.", Money: 420_000, Controller: company.ControllerAggressive, StartingBoat: "smabatur_02"},
			{Name: "Norðursjórinn ehf.", Money: 420_000, Controller: company.ControllerConservative, StartingBoat: "smabatur_01"},
			{Name: "Bára sf.", Money: 420_000, Controller: company.ControllerBot, StartingBoat: "smabatur_01"},
		},
	}
	g := engine.NewGame(cfg, nil, nil)

	for i := 0; i < 600 && len(g.Companies) > 0; i++ {
		g.AdvanceTurn(Provider)
	}
	if g.Turn == 0 {
		t.Fatal("simulation did not advance")
	}
}
