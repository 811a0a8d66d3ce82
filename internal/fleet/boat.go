package fleet

import (
	"fmt"

	"github.com/google/uuid"
)

// Boat is a specific owned instance of a blueprint.
type Boat struct {
	InstanceID  string
	BlueprintID string
	Name        string
	Crew        []CrewMember
	Upgrades    []string // purchased upgrade IDs
	Condition   float64  // 0.0–1.0 maintenance level
}

// NewBoat creates a boat instance. The instance ID is a name-based UUID
// derived from owner and hull number, so a seeded run reproduces the
// same fleet identifiers.
func NewBoat(bp Blueprint, owner string, number int) *Boat {
	id := uuid.NewSHA1(uuid.NameSpaceOID, []byte(fmt.Sprintf("%s/%s/%d", owner, bp.ID, number)))
	return &Boat{
		InstanceID:  id.String(),
		BlueprintID: bp.ID,
		Name:        fmt.Sprintf("%s #%d", bp.ModelName, number),
		Condition:   1.0,
	}
}

// RiskFactor returns the blueprint's base disaster risk scaled by the
// boat's purchased safety upgrades and its maintenance level. A fully
// maintained boat carries the base risk; a worn one carries more.
func (b *Boat) RiskFactor(bp Blueprint) float64 {
	risk := bp.BaseRisk * (2 - b.Condition)
	for _, id := range b.Upgrades {
		if up, ok := Upgrades[id]; ok {
			risk *= up.RiskReduction
		}
	}
	return risk
}

// HasUpgrade reports whether the upgrade is already installed.
func (b *Boat) HasUpgrade(id string) bool {
	for _, have := range b.Upgrades {
		if have == id {
			return true
		}
	}
	return false
}

const minCondition = 0.3

// Wear degrades the boat's maintenance level by one trip. Condition
// never falls below the seaworthy minimum.
func (b *Boat) Wear() {
	b.Condition -= 0.01
	if b.Condition < minCondition {
		b.Condition = minCondition
	}
}
