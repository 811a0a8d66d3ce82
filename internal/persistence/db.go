// Package persistence provides SQLite-based save games.
package persistence

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"github.com/talgya/togaraveldi/internal/company"
	"github.com/talgya/togaraveldi/internal/engine"
	"github.com/talgya/togaraveldi/internal/fleet"
	"github.com/talgya/togaraveldi/internal/market"
)

// DB wraps a SQLite connection for game state persistence.
type DB struct {
	conn *sqlx.DB
}

// Open opens or creates a SQLite database at the given path.
func Open(path string) (*DB, error) {
	conn, err := sqlx.Open("sqlite", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	db := &DB{conn: conn}
	if err := db.migrate(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return db, nil
}

// Close closes the database connection.
func (db *DB) Close() error {
	return db.conn.Close()
}

func (db *DB) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS companies (
		position INTEGER PRIMARY KEY,
		name TEXT NOT NULL,
		generation INTEGER NOT NULL,
		has_heir INTEGER NOT NULL,
		controller TEXT NOT NULL,
		money INTEGER NOT NULL,
		bonds INTEGER NOT NULL,
		credit_debt INTEGER NOT NULL,
		reputation INTEGER NOT NULL,
		fame INTEGER NOT NULL,
		political_capital INTEGER NOT NULL,
		crew_morale INTEGER NOT NULL,
		health INTEGER NOT NULL,
		b12 INTEGER NOT NULL,
		teeth_lost INTEGER NOT NULL,
		cognitive_decline INTEGER NOT NULL,
		turns_since_doctor INTEGER NOT NULL,
		conspiracy_exposure INTEGER NOT NULL,
		suspicion INTEGER NOT NULL,
		under_investigation INTEGER NOT NULL,
		skip_turns INTEGER NOT NULL,
		pending_fine INTEGER NOT NULL,
		insolvent_rounds INTEGER NOT NULL,
		investments_json TEXT NOT NULL,
		boats_json TEXT NOT NULL,
		catch_json TEXT NOT NULL,
		mourning_json TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS market_state (
		id INTEGER PRIMARY KEY CHECK (id = 1),
		cod_price INTEGER NOT NULL,
		haddock_price INTEGER NOT NULL,
		skate_price INTEGER NOT NULL,
		export_price INTEGER NOT NULL,
		demand_json TEXT NOT NULL,
		available_json TEXT NOT NULL,
		annual_inflation REAL NOT NULL,
		cumulative_inflation REAL NOT NULL
	);

	CREATE TABLE IF NOT EXISTS blueprints (
		position INTEGER PRIMARY KEY,
		id TEXT NOT NULL,
		model_name TEXT NOT NULL,
		cost INTEGER NOT NULL,
		capacity INTEGER NOT NULL,
		upkeep INTEGER NOT NULL,
		class TEXT NOT NULL,
		base_risk REAL NOT NULL
	);

	CREATE TABLE IF NOT EXISTS effects (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		year INTEGER NOT NULL,
		month INTEGER NOT NULL,
		company TEXT NOT NULL,
		category TEXT NOT NULL,
		text TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS game_meta (
		key TEXT PRIMARY KEY,
		value TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_effects_year_month ON effects(year, month);
	`
	_, err := db.conn.Exec(schema)
	return err
}

// SaveGame writes a full snapshot of the game (full replace of mutable
// tables, effects appended separately).
func (db *DB) SaveGame(g *engine.Game) error {
	st := g.State()
	slog.Info("saving game", "year", st.Year, "month", st.Month, "turn", st.Turn, "companies", len(st.Companies))

	tx, err := db.conn.Beginx()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if err := saveCompanies(tx, st.Companies); err != nil {
		return fmt.Errorf("save companies: %w", err)
	}
	if err := saveMarket(tx, st.Market); err != nil {
		return fmt.Errorf("save market: %w", err)
	}
	if err := saveBlueprints(tx, st.Blueprints); err != nil {
		return fmt.Errorf("save blueprints: %w", err)
	}
	if err := saveMeta(tx, st); err != nil {
		return fmt.Errorf("save meta: %w", err)
	}

	return tx.Commit()
}

func saveCompanies(tx *sqlx.Tx, companies []*company.Company) error {
	if _, err := tx.Exec("DELETE FROM companies"); err != nil {
		return err
	}

	stmt, err := tx.Preparex(`INSERT INTO companies
		(position, name, generation, has_heir, controller, money, bonds, credit_debt,
		 reputation, fame, political_capital, crew_morale, health, b12, teeth_lost,
		 cognitive_decline, turns_since_doctor, conspiracy_exposure, suspicion,
		 under_investigation, skip_turns, pending_fine, insolvent_rounds,
		 investments_json, boats_json, catch_json, mourning_json)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for i, c := range companies {
		investmentsJSON, _ := json.Marshal(c.Investments)
		boatsJSON, _ := json.Marshal(c.Boats)
		catchJSON, _ := json.Marshal(c.CatchInHold)
		mourningJSON, _ := json.Marshal(c.MourningTowns)

		_, err := stmt.Exec(
			i, c.Name, c.Generation, boolInt(c.HasHeir), c.Controller,
			c.Money, c.Bonds, c.CreditDebt,
			c.Reputation, c.Fame, c.PoliticalCapital, c.CrewMorale,
			c.Health, c.B12, c.TeethLost, boolInt(c.CognitiveDecline),
			c.TurnsSinceDoctor, c.ConspiracyExposure, c.Suspicion,
			boolInt(c.UnderInvestigation), c.SkipTurns, c.PendingFine, c.InsolventRounds,
			string(investmentsJSON), string(boatsJSON), string(catchJSON), string(mourningJSON),
		)
		if err != nil {
			return fmt.Errorf("insert company %q: %w", c.Name, err)
		}
	}
	return nil
}

func saveMarket(tx *sqlx.Tx, m *market.Market) error {
	demandJSON, _ := json.Marshal(m.DemandLevel)
	availableJSON, _ := json.Marshal(m.Available)

	_, err := tx.Exec(`INSERT OR REPLACE INTO market_state
		(id, cod_price, haddock_price, skate_price, export_price,
		 demand_json, available_json, annual_inflation, cumulative_inflation)
		VALUES (1, ?, ?, ?, ?, ?, ?, ?, ?)`,
		m.DomesticPrice[market.Cod], m.DomesticPrice[market.Haddock],
		m.DomesticPrice[market.Skate], m.ExportPrice,
		string(demandJSON), string(availableJSON),
		m.AnnualInflationRate, m.CumulativeInflation,
	)
	return err
}

func saveBlueprints(tx *sqlx.Tx, bps []fleet.Blueprint) error {
	if _, err := tx.Exec("DELETE FROM blueprints"); err != nil {
		return err
	}
	for i, bp := range bps {
		_, err := tx.Exec(`INSERT INTO blueprints
			(position, id, model_name, cost, capacity, upkeep, class, base_risk)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			i, bp.ID, bp.ModelName, bp.Cost, bp.Capacity, bp.Upkeep, string(bp.Class), bp.BaseRisk,
		)
		if err != nil {
			return fmt.Errorf("insert blueprint %q: %w", bp.ID, err)
		}
	}
	return nil
}

func saveMeta(tx *sqlx.Tx, st engine.State) error {
	firedJSON, _ := json.Marshal(st.FiredEvents)
	modifiersJSON, _ := json.Marshal(st.Modifiers)

	meta := map[string]string{
		"seed":         strconv.FormatInt(st.Seed, 10),
		"year":         strconv.Itoa(st.Year),
		"month":        strconv.Itoa(st.Month),
		"turn":         strconv.Itoa(st.Turn),
		"fired_events": string(firedJSON),
		"modifiers":    string(modifiersJSON),
	}
	for key, value := range meta {
		if _, err := tx.Exec(
			"INSERT OR REPLACE INTO game_meta (key, value) VALUES (?, ?)", key, value,
		); err != nil {
			return err
		}
	}
	return nil
}

type companyRow struct {
	Position           int    `db:"position"`
	Name               string `db:"name"`
	Generation         int    `db:"generation"`
	HasHeir            int    `db:"has_heir"`
	Controller         string `db:"controller"`
	Money              int64  `db:"money"`
	Bonds              int64  `db:"bonds"`
	CreditDebt         int64  `db:"credit_debt"`
	Reputation         int    `db:"reputation"`
	Fame               int    `db:"fame"`
	PoliticalCapital   int    `db:"political_capital"`
	CrewMorale         int    `db:"crew_morale"`
	Health             int    `db:"health"`
	B12                int    `db:"b12"`
	TeethLost          int    `db:"teeth_lost"`
	CognitiveDecline   int    `db:"cognitive_decline"`
	TurnsSinceDoctor   int    `db:"turns_since_doctor"`
	ConspiracyExposure int    `db:"conspiracy_exposure"`
	Suspicion          int    `db:"suspicion"`
	UnderInvestigation int    `db:"under_investigation"`
	SkipTurns          int    `db:"skip_turns"`
	PendingFine        int64  `db:"pending_fine"`
	InsolventRounds    int    `db:"insolvent_rounds"`
	InvestmentsJSON    string `db:"investments_json"`
	BoatsJSON          string `db:"boats_json"`
	CatchJSON          string `db:"catch_json"`
	MourningJSON       string `db:"mourning_json"`
}

type blueprintRow struct {
	Position  int     `db:"position"`
	ID        string  `db:"id"`
	ModelName string  `db:"model_name"`
	Cost      int64   `db:"cost"`
	Capacity  int     `db:"capacity"`
	Upkeep    int64   `db:"upkeep"`
	Class     string  `db:"class"`
	BaseRisk  float64 `db:"base_risk"`
}

type marketRow struct {
	ID                  int     `db:"id"`
	CodPrice            int64   `db:"cod_price"`
	HaddockPrice        int64   `db:"haddock_price"`
	SkatePrice          int64   `db:"skate_price"`
	ExportPrice         int64   `db:"export_price"`
	DemandJSON          string  `db:"demand_json"`
	AvailableJSON       string  `db:"available_json"`
	AnnualInflation     float64 `db:"annual_inflation"`
	CumulativeInflation float64 `db:"cumulative_inflation"`
}

// LoadGame rebuilds a game from the latest snapshot. Returns an error
// if no save exists.
func (db *DB) LoadGame() (*engine.Game, error) {
	var st engine.State

	seed, err := db.getMeta("seed")
	if err != nil {
		return nil, fmt.Errorf("no saved game: %w", err)
	}
	st.Seed, _ = strconv.ParseInt(seed, 10, 64)
	st.Year, err = db.getMetaInt("year")
	if err != nil {
		return nil, err
	}
	st.Month, err = db.getMetaInt("month")
	if err != nil {
		return nil, err
	}
	st.Turn, err = db.getMetaInt("turn")
	if err != nil {
		return nil, err
	}

	if fired, err := db.getMeta("fired_events"); err == nil {
		json.Unmarshal([]byte(fired), &st.FiredEvents)
	}
	if mods, err := db.getMeta("modifiers"); err == nil {
		json.Unmarshal([]byte(mods), &st.Modifiers)
	}

	st.Companies, err = db.loadCompanies()
	if err != nil {
		return nil, fmt.Errorf("load companies: %w", err)
	}
	st.Market, err = db.loadMarket()
	if err != nil {
		return nil, fmt.Errorf("load market: %w", err)
	}
	st.Blueprints, err = db.loadBlueprints()
	if err != nil {
		return nil, fmt.Errorf("load blueprints: %w", err)
	}

	slog.Info("loaded game", "year", st.Year, "month", st.Month, "turn", st.Turn, "companies", len(st.Companies))
	return engine.FromState(st), nil
}

func (db *DB) loadCompanies() ([]*company.Company, error) {
	var rows []companyRow
	if err := db.conn.Select(&rows, "SELECT * FROM companies ORDER BY position"); err != nil {
		return nil, err
	}

	out := make([]*company.Company, 0, len(rows))
	for _, r := range rows {
		c := &company.Company{
			Name:               r.Name,
			Generation:         r.Generation,
			HasHeir:            r.HasHeir != 0,
			Controller:         r.Controller,
			Money:              r.Money,
			Bonds:              r.Bonds,
			CreditDebt:         r.CreditDebt,
			Reputation:         r.Reputation,
			Fame:               r.Fame,
			PoliticalCapital:   r.PoliticalCapital,
			CrewMorale:         r.CrewMorale,
			Health:             r.Health,
			B12:                r.B12,
			TeethLost:          r.TeethLost,
			CognitiveDecline:   r.CognitiveDecline != 0,
			TurnsSinceDoctor:   r.TurnsSinceDoctor,
			ConspiracyExposure: r.ConspiracyExposure,
			Suspicion:          r.Suspicion,
			UnderInvestigation: r.UnderInvestigation != 0,
			SkipTurns:          r.SkipTurns,
			PendingFine:        r.PendingFine,
			InsolventRounds:    r.InsolventRounds,
		}
		if err := json.Unmarshal([]byte(r.InvestmentsJSON), &c.Investments); err != nil {
			return nil, fmt.Errorf("company %q investments: %w", r.Name, err)
		}
		if err := json.Unmarshal([]byte(r.BoatsJSON), &c.Boats); err != nil {
			return nil, fmt.Errorf("company %q boats: %w", r.Name, err)
		}
		if err := json.Unmarshal([]byte(r.CatchJSON), &c.CatchInHold); err != nil {
			return nil, fmt.Errorf("company %q catch: %w", r.Name, err)
		}
		if err := json.Unmarshal([]byte(r.MourningJSON), &c.MourningTowns); err != nil {
			return nil, fmt.Errorf("company %q mourning towns: %w", r.Name, err)
		}
		if c.Investments == nil {
			c.Investments = make(map[string]int64)
		}
		if c.CatchInHold == nil {
			c.CatchInHold = make(map[market.Species]int)
		}
		if c.MourningTowns == nil {
			c.MourningTowns = make(map[string]int)
		}
		out = append(out, c)
	}
	return out, nil
}

func (db *DB) loadMarket() (*market.Market, error) {
	var r marketRow
	if err := db.conn.Get(&r, "SELECT * FROM market_state WHERE id = 1"); err != nil {
		return nil, err
	}

	m := market.New()
	m.DomesticPrice[market.Cod] = r.CodPrice
	m.DomesticPrice[market.Haddock] = r.HaddockPrice
	m.DomesticPrice[market.Skate] = r.SkatePrice
	m.ExportPrice = r.ExportPrice
	m.AnnualInflationRate = r.AnnualInflation
	m.CumulativeInflation = r.CumulativeInflation
	if err := json.Unmarshal([]byte(r.DemandJSON), &m.DemandLevel); err != nil {
		return nil, fmt.Errorf("demand: %w", err)
	}
	if err := json.Unmarshal([]byte(r.AvailableJSON), &m.Available); err != nil {
		return nil, fmt.Errorf("availability: %w", err)
	}
	return m, nil
}

func (db *DB) loadBlueprints() ([]fleet.Blueprint, error) {
	var rows []blueprintRow
	if err := db.conn.Select(&rows, "SELECT * FROM blueprints ORDER BY position"); err != nil {
		return nil, err
	}

	out := make([]fleet.Blueprint, 0, len(rows))
	for _, r := range rows {
		out = append(out, fleet.Blueprint{
			ID:        r.ID,
			ModelName: r.ModelName,
			Cost:      r.Cost,
			Capacity:  r.Capacity,
			Upkeep:    r.Upkeep,
			Class:     fleet.Class(r.Class),
			BaseRisk:  r.BaseRisk,
		})
	}
	return out, nil
}

// AppendEffects appends turn effects to the log table.
func (db *DB) AppendEffects(effects []engine.Effect) error {
	if len(effects) == 0 {
		return nil
	}

	tx, err := db.conn.Beginx()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, e := range effects {
		_, err := tx.Exec(
			"INSERT INTO effects (year, month, company, category, text) VALUES (?, ?, ?, ?, ?)",
			e.Year, e.Month, e.Company, e.Category, e.Text,
		)
		if err != nil {
			return err
		}
	}
	return tx.Commit()
}

// RecentEffects returns the most recent N effects, newest first.
func (db *DB) RecentEffects(limit int) ([]engine.Effect, error) {
	var effects []engine.Effect
	err := db.conn.Select(&effects,
		"SELECT year, month, company, category, text FROM effects ORDER BY id DESC LIMIT ?",
		limit,
	)
	return effects, err
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

func (db *DB) getMeta(key string) (string, error) {
	var value string
	err := db.conn.Get(&value, "SELECT value FROM game_meta WHERE key = ?", key)
	return value, err
}

func (db *DB) getMetaInt(key string) (int, error) {
	value, err := db.getMeta(key)
	if err != nil {
		return 0, err
	}
	return strconv.Atoi(value)
}
