// Package fleet defines boat blueprints, owned boat instances, safety
// upgrades, and crew generation. The shipyard catalog is injected into
// the engine at game creation; each game works on its own copy so that
// inflation can raise cost baselines without touching shared state.
package fleet

// Class is a boat capability class. Inshore boats fish domestic waters;
// trawlers and factory ships can make the export run.
type Class string

const (
	ClassInshore Class = "Inshore"
	ClassTrawler Class = "Trawler"
	ClassFactory Class = "Factory"
)

// OceanGoing reports whether the class can attempt an export trip.
func (c Class) OceanGoing() bool {
	return c == ClassTrawler || c == ClassFactory
}

// Blueprint is a static shipyard catalog entry.
type Blueprint struct {
	ID        string  `yaml:"id"`
	ModelName string  `yaml:"model_name"`
	Cost      int64   `yaml:"cost"`
	Capacity  int     `yaml:"capacity"` // tons of fish
	Upkeep    int64   `yaml:"upkeep"`   // operating cost per trip
	Class     Class   `yaml:"class"`
	BaseRisk  float64 `yaml:"base_risk"` // disaster chance per export trip
}

// Upgrade is a safety improvement that scales down a boat's risk factor.
type Upgrade struct {
	ID            string
	Name          string
	Cost          int64
	RiskReduction float64 // multiplier, e.g. 0.8 cuts risk by 20%
	EraAvailable  int     // year the technology exists
}

// Upgrades available at the shipyard, by era.
var Upgrades = map[string]Upgrade{
	"radio_beacon": {
		ID: "radio_beacon", Name: "Radio Beacon",
		Cost: 21000, RiskReduction: 0.85, EraAvailable: 1950,
	},
	"life_rafts": {
		ID: "life_rafts", Name: "Inflatable Life Rafts",
		Cost: 42000, RiskReduction: 0.80, EraAvailable: 1970,
	},
	"nav_computer": {
		ID: "nav_computer", Name: "Navigation Computer",
		Cost: 126000, RiskReduction: 0.70, EraAvailable: 1985,
	},
}

// UpgradeOrder lists upgrade IDs by era, cheapest technology first.
var UpgradeOrder = []string{"radio_beacon", "life_rafts", "nav_computer"}

// NextUpgrade returns the first era-available upgrade the boat is
// missing, or false when the boat is fully fitted for the year.
func NextUpgrade(b *Boat, year int) (Upgrade, bool) {
	for _, id := range UpgradeOrder {
		up := Upgrades[id]
		if year < up.EraAvailable || b.HasUpgrade(id) {
			continue
		}
		return up, true
	}
	return Upgrade{}, false
}

// Catalog is a game-owned set of blueprints. Lookup by ID plus a stable
// iteration order for deterministic runs.
type Catalog struct {
	blueprints map[string]*Blueprint
	order      []string
}

// NewCatalog copies the given blueprints into a catalog.
func NewCatalog(bps []Blueprint) *Catalog {
	c := &Catalog{blueprints: make(map[string]*Blueprint, len(bps))}
	for i := range bps {
		bp := bps[i]
		c.blueprints[bp.ID] = &bp
		c.order = append(c.order, bp.ID)
	}
	return c
}

// DefaultBlueprints returns the standard shipyard catalog.
func DefaultBlueprints() []Blueprint {
	return []Blueprint{
		{ID: "smabatur_01", ModelName: "Freyja 8m", Cost: 42000, Capacity: 10, Upkeep: 1000, Class: ClassInshore, BaseRisk: 0.042},
		{ID: "smabatur_02", ModelName: "Víkingur 12m", Cost: 84000, Capacity: 20, Upkeep: 2100, Class: ClassInshore, BaseRisk: 0.032},
		{ID: "togari_01", ModelName: "Jón af Grímsey 35m", Cost: 420000, Capacity: 100, Upkeep: 10000, Class: ClassTrawler, BaseRisk: 0.062},
		{ID: "togari_02", ModelName: "Sæfari 42m", Cost: 842000, Capacity: 150, Upkeep: 20700, Class: ClassTrawler, BaseRisk: 0.052},
		{ID: "verksmidjuskip_01", ModelName: "Atlantic Giant 60m", Cost: 4200000, Capacity: 420, Upkeep: 52200, Class: ClassFactory, BaseRisk: 0.042},
	}
}

// DefaultCatalog returns a fresh copy of the standard catalog.
func DefaultCatalog() *Catalog {
	return NewCatalog(DefaultBlueprints())
}

// Get looks up a blueprint by ID.
func (c *Catalog) Get(id string) (Blueprint, bool) {
	bp, ok := c.blueprints[id]
	if !ok {
		return Blueprint{}, false
	}
	return *bp, true
}

// Blueprints returns copies of all blueprints in catalog order.
func (c *Catalog) Blueprints() []Blueprint {
	out := make([]Blueprint, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, *c.blueprints[id])
	}
	return out
}

// IDs returns blueprint IDs in catalog order.
func (c *Catalog) IDs() []string {
	out := make([]string, len(c.order))
	copy(out, c.order)
	return out
}

// ApplyInflation raises every cost baseline by (1+rate). Called once
// per calendar year by the engine.
func (c *Catalog) ApplyInflation(rate float64) {
	for _, bp := range c.blueprints {
		bp.Cost = int64(float64(bp.Cost) * (1 + rate))
		bp.Upkeep = int64(float64(bp.Upkeep) * (1 + rate))
	}
}

// ResaleValue is the depreciated value of a boat for net-worth
// purposes: 70% of the blueprint cost.
func ResaleValue(bp Blueprint) int64 {
	return bp.Cost * 7 / 10
}

// SalePrice is what the shipyard pays when buying a boat back: half the
// blueprint cost.
func SalePrice(bp Blueprint) int64 {
	return bp.Cost / 2
}
