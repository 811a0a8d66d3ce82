// Package config loads game setup from YAML and the environment.
package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/talgya/togaraveldi/internal/company"
	"github.com/talgya/togaraveldi/internal/engine"
	"github.com/talgya/togaraveldi/internal/fleet"
)

// File is the on-disk game configuration.
type File struct {
	Game       engine.Config     `yaml:"game"`
	Blueprints []fleet.Blueprint `yaml:"blueprints"` // empty uses the default catalog
	Database   string            `yaml:"database"`
}

// Default returns the standard four-company setup: one player seat and
// three AI rivals.
func Default() File {
	return File{
		Game: engine.Config{
			Seed:       42,
			StartYear:  1900,
			StartMonth: 4,
			Roster: []engine.CompanyConfig{
				{Name: "Útgerðarfélagið Von", Money: 500_000, StartingBoat: "smabatur_01", CrewHometown: "Reykjavík"},
				{Name: "Hafgengill hf.", Money: 420_000, Controller: company.ControllerAggressive, StartingBoat: "smabatur_02", CrewHometown: "Vestmannaeyjar"},
				{Name: "Norðursjórinn ehf.", Money: 420_000, Controller: company.ControllerConservative, StartingBoat: "smabatur_01", CrewHometown: "Akureyri"},
				{Name: "Bára sf.", Money: 420_000, Controller: company.ControllerBot, StartingBoat: "smabatur_01", CrewHometown: "Siglufjörður"},
			},
		},
		Database: "togaraveldi.db",
	}
}

// Load reads a config file, falling back to defaults for anything the
// file leaves out. A missing path returns the defaults untouched.
func Load(path string) (File, error) {
	cfg := Default()
	if path == "" {
		return applyEnv(cfg), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return applyEnv(cfg), nil
		}
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}
	return applyEnv(cfg), nil
}

// applyEnv lets the environment override seed and database path.
func applyEnv(cfg File) File {
	if v := os.Getenv("TOGARAVELDI_SEED"); v != "" {
		if seed, err := strconv.ParseInt(v, 10, 64); err == nil {
			cfg.Game.Seed = seed
		}
	}
	if v := os.Getenv("TOGARAVELDI_DB"); v != "" {
		cfg.Database = v
	}
	return cfg
}

// Catalog builds the shipyard catalog from the config, defaulting when
// no blueprints are listed.
func (f File) Catalog() *fleet.Catalog {
	if len(f.Blueprints) == 0 {
		return fleet.DefaultCatalog()
	}
	return fleet.NewCatalog(f.Blueprints)
}
