package persistence

import (
	"path/filepath"
	"testing"

	"github.com/talgya/togaraveldi/internal/company"
	"github.com/talgya/togaraveldi/internal/engine"
	"github.com/talgya/togaraveldi/internal/market"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "save.db"))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func testGame(t *testing.T) *engine.Game {
	t.Helper()
	cfg := engine.Config{
		Seed:       42,
		StartYear:  1900,
		StartMonth: 4,
		Roster: []engine.CompanyConfig{
			{Name: "Von", Money: 500_000, StartingBoat: "smabatur_01", CrewHometown: "Reykjavík"},
			{Name: "Hafgengill hf.", Money: 420_000, Controller: company.ControllerAggressive, StartingBoat: "smabatur_02"},
		},
	}
	return engine.NewGame(cfg, nil, nil)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	db := openTestDB(t)
	g := testGame(t)

	// Run some history so the save carries real state.
	provider := func(c *company.Company, gg *engine.Game) engine.Action {
		return engine.Action{Kind: engine.ActionDomesticTrip}
	}
	for i := 0; i < 36; i++ {
		g.AdvanceTurn(provider)
	}
	von := g.FindCompany("Von")
	if von != nil {
		von.Suspicion = 77
		von.Investments["masks"] = 10_000
		von.MourningTowns["Grindavík"] = 1910
	}

	if err := db.SaveGame(g); err != nil {
		t.Fatalf("save: %v", err)
	}

	loaded, err := db.LoadGame()
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if loaded.Year != g.Year || loaded.Month != g.Month || loaded.Turn != g.Turn {
		t.Fatalf("calendar = %d-%02d turn %d, want %d-%02d turn %d",
			loaded.Year, loaded.Month, loaded.Turn, g.Year, g.Month, g.Turn)
	}
	if loaded.Seed != g.Seed {
		t.Fatalf("seed = %d, want %d", loaded.Seed, g.Seed)
	}
	if len(loaded.Companies) != len(g.Companies) {
		t.Fatalf("companies = %d, want %d", len(loaded.Companies), len(g.Companies))
	}

	for i, want := range g.Companies {
		got := loaded.Companies[i]
		if got.Name != want.Name || got.Money != want.Money || got.Controller != want.Controller {
			t.Fatalf("company %d mismatch: %+v vs %+v", i, got, want)
		}
		if got.Suspicion != want.Suspicion || got.B12 != want.B12 || got.TeethLost != want.TeethLost {
			t.Fatalf("company %d stats mismatch", i)
		}
		if len(got.Boats) != len(want.Boats) {
			t.Fatalf("company %d fleet size mismatch", i)
		}
		for j := range want.Boats {
			if got.Boats[j].InstanceID != want.Boats[j].InstanceID {
				t.Fatalf("company %d boat %d identity lost", i, j)
			}
		}
		if got.Investments["masks"] != want.Investments["masks"] {
			t.Fatal("investments lost")
		}
		if got.MourningTowns["Grindavík"] != want.MourningTowns["Grindavík"] {
			t.Fatal("mourning towns lost")
		}
	}

	for _, sp := range market.AllSpecies {
		if loaded.Market.DomesticPrice[sp] != g.Market.DomesticPrice[sp] {
			t.Fatalf("%s price mismatch", sp)
		}
		if loaded.Market.DemandLevel[sp] != g.Market.DemandLevel[sp] {
			t.Fatalf("%s demand mismatch", sp)
		}
	}
	if loaded.Market.ExportPrice != g.Market.ExportPrice {
		t.Fatal("export price mismatch")
	}

	if len(loaded.Catalog.IDs()) != len(g.Catalog.IDs()) {
		t.Fatal("catalog lost")
	}

	// A loaded game keeps running.
	loaded.AdvanceTurn(provider)
	if loaded.Turn != g.Turn+1 {
		t.Fatal("loaded game did not advance")
	}
}

func TestSaveIsIdempotentFullReplace(t *testing.T) {
	db := openTestDB(t)
	g := testGame(t)

	if err := db.SaveGame(g); err != nil {
		t.Fatalf("first save: %v", err)
	}
	g.FindCompany("Von").Money = 1
	if err := db.SaveGame(g); err != nil {
		t.Fatalf("second save: %v", err)
	}

	loaded, err := db.LoadGame()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(loaded.Companies) != 2 {
		t.Fatalf("companies duplicated across saves: %d", len(loaded.Companies))
	}
	if loaded.FindCompany("Von").Money != 1 {
		t.Fatal("second save did not overwrite the first")
	}
}

func TestLoadWithoutSaveFails(t *testing.T) {
	db := openTestDB(t)
	if _, err := db.LoadGame(); err == nil {
		t.Fatal("loading an empty database should fail")
	}
}

func TestEffectLog(t *testing.T) {
	db := openTestDB(t)

	effects := []engine.Effect{
		{Year: 1900, Month: 4, Company: "Von", Category: "fishing", Text: "first"},
		{Year: 1900, Month: 5, Company: "Von", Category: "fishing", Text: "second"},
		{Year: 1900, Month: 6, Company: "", Category: "history", Text: "third"},
	}
	if err := db.AppendEffects(effects); err != nil {
		t.Fatalf("append: %v", err)
	}

	recent, err := db.RecentEffects(2)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(recent) != 2 {
		t.Fatalf("got %d effects, want 2", len(recent))
	}
	if recent[0].Text != "third" || recent[1].Text != "second" {
		t.Fatalf("wrong order, newest first expected: %+v", recent)
	}
}

func TestFiredEventsSurviveSave(t *testing.T) {
	db := openTestDB(t)
	g := testGame(t)
	g.FiredEvents["sovereignty_1918"] = true
	g.Modifiers = append(g.Modifiers, &engine.Modifier{Name: "ash cloud export ban", TurnsLeft: 3, ExportBan: true})

	if err := db.SaveGame(g); err != nil {
		t.Fatalf("save: %v", err)
	}
	loaded, err := db.LoadGame()
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if !loaded.FiredEvents["sovereignty_1918"] {
		t.Fatal("fired-event set lost; the event would fire twice")
	}
	if !loaded.ExportBanned() {
		t.Fatal("active export ban lost in the save")
	}
}
