// Clamped stat mutation. Reputation, health, B12, and morale live in
// [0,100]; fame, suspicion, and political capital are floored at zero
// and unbounded above; teeth only ever fall out.
package company

// clamp100 bounds a stat to [0,100].
func clamp100(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

// floor0 bounds a stat at zero from below.
func floor0(v int) int {
	if v < 0 {
		return 0
	}
	return v
}

// AddReputation shifts reputation by delta within [0,100].
func (c *Company) AddReputation(delta int) {
	c.Reputation = clamp100(c.Reputation + delta)
}

// AddHealth shifts health by delta within [0,100].
func (c *Company) AddHealth(delta int) {
	c.Health = clamp100(c.Health + delta)
}

// AddB12 shifts the B12 level by delta within [0,100].
func (c *Company) AddB12(delta int) {
	c.B12 = clamp100(c.B12 + delta)
}

// AddCrewMorale shifts crew morale by delta within [0,100].
func (c *Company) AddCrewMorale(delta int) {
	c.CrewMorale = clamp100(c.CrewMorale + delta)
}

// SetCrewMorale sets morale directly, clamped.
func (c *Company) SetCrewMorale(v int) {
	c.CrewMorale = clamp100(v)
}

// AddFame shifts fame, floored at zero.
func (c *Company) AddFame(delta int) {
	c.Fame = floor0(c.Fame + delta)
}

// AddSuspicion shifts the suspicion score, floored at zero.
func (c *Company) AddSuspicion(delta int) {
	c.Suspicion = floor0(c.Suspicion + delta)
}

// AddPoliticalCapital shifts political capital, floored at zero.
func (c *Company) AddPoliticalCapital(delta int) {
	c.PoliticalCapital = floor0(c.PoliticalCapital + delta)
}
