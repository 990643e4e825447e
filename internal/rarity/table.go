// Package rarity holds the static reward-tier probability table used by the
// case-opening weighted draw.
package rarity

// Tier is a probability bucket for reward items.
type Tier struct {
	ID          string
	Probability float64
}

// Table is the ordered list of tiers walked during a weighted draw. The
// order is fixed and the probabilities sum to 1.0; it is immutable at
// runtime.
type Table struct {
	tiers []Tier
}

// Default returns the production tier table.
func Default() Table {
	return Table{tiers: []Tier{
		{ID: "1", Probability: 0.7992},
		{ID: "2", Probability: 0.1598},
		{ID: "3", Probability: 0.032},
		{ID: "4", Probability: 0.0064},
		{ID: "5", Probability: 0.0026},
	}}
}

// Tiers returns the ordered tier list.
func (t Table) Tiers() []Tier {
	return t.tiers
}

// TierFor maps a uniform draw u in [0,1) to a tier by walking the table and
// accumulating probability. Because the probabilities sum to 1.0 this always
// matches in exact arithmetic; if floating rounding leaves no match the last
// tier is returned so a draw never fails.
func (t Table) TierFor(u float64) Tier {
	cumulative := 0.0
	for _, tier := range t.tiers {
		cumulative += tier.Probability
		if u <= cumulative {
			return tier
		}
	}
	return t.tiers[len(t.tiers)-1]
}
