package caseopening

import (
	"github.com/osse101/LootVault_Go/internal/domain"
	"github.com/osse101/LootVault_Go/internal/rarity"
	"github.com/osse101/LootVault_Go/internal/utils"
)

// Selector draws winning items from a case according to a rarity table.
// Draws are independent and with replacement.
type Selector struct {
	table rarity.Table
}

func NewSelector(table rarity.Table) *Selector {
	return &Selector{table: table}
}

// Select draws one winning item from the case. The rarity tier is chosen by
// a weighted roll over the table; the item is then picked uniformly within
// that tier. If the rolled tier has no items in this case, a populated tier
// is chosen uniformly instead, so a draw never fails on a non-empty case.
func (s *Selector) Select(caseData *domain.Case) (domain.Item, error) {
	if len(caseData.Items) == 0 {
		return domain.Item{}, domain.ErrEmptyCase
	}

	byTier, present := groupByRarity(caseData.Items)

	tierID := s.table.TierFor(utils.RandomFloat()).ID
	pool, ok := byTier[tierID]
	if !ok {
		pool = byTier[present[utils.RandomInt(0, len(present)-1)]]
	}

	return pool[utils.RandomInt(0, len(pool)-1)], nil
}

// groupByRarity partitions items by their rarity and returns the tier IDs
// in first-occurrence order for deterministic fallback selection.
func groupByRarity(items []domain.Item) (map[string][]domain.Item, []string) {
	byTier := make(map[string][]domain.Item)
	present := make([]string, 0, len(items))
	for _, item := range items {
		if _, ok := byTier[item.Rarity]; !ok {
			present = append(present, item.Rarity)
		}
		byTier[item.Rarity] = append(byTier[item.Rarity], item)
	}
	return byTier, present
}
