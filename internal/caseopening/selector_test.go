package caseopening

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/LootVault_Go/internal/domain"
	"github.com/osse101/LootVault_Go/internal/rarity"
)

func testCase(items ...domain.Item) *domain.Case {
	return &domain.Case{
		ID:    "case-1",
		Name:  "Test Case",
		Price: 10,
		Items: items,
	}
}

func TestSelector_EmptyCase(t *testing.T) {
	selector := NewSelector(rarity.Default())

	_, err := selector.Select(testCase())

	assert.ErrorIs(t, err, domain.ErrEmptyCase)
}

func TestSelector_SingleItem(t *testing.T) {
	selector := NewSelector(rarity.Default())
	only := domain.Item{ID: "i1", Name: "Rusty Knife", Rarity: "1"}

	// Whatever tier is rolled, the only populated tier must win.
	for i := 0; i < 1000; i++ {
		item, err := selector.Select(testCase(only))
		require.NoError(t, err)
		assert.Equal(t, only, item)
	}
}

func TestSelector_FallbackUsesPopulatedTiers(t *testing.T) {
	selector := NewSelector(rarity.Default())
	caseData := testCase(
		domain.Item{ID: "i1", Name: "Common", Rarity: "1"},
		domain.Item{ID: "i3", Name: "Rare", Rarity: "3"},
	)

	for i := 0; i < 5000; i++ {
		item, err := selector.Select(caseData)
		require.NoError(t, err)
		assert.Contains(t, []string{"1", "3"}, item.Rarity)
	}
}

func TestSelector_CommonTierFrequency(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping statistical test in short mode")
	}

	selector := NewSelector(rarity.Default())
	caseData := testCase(
		domain.Item{ID: "i1", Name: "Common", Rarity: "1"},
		domain.Item{ID: "i2", Name: "Uncommon", Rarity: "2"},
		domain.Item{ID: "i3", Name: "Rare", Rarity: "3"},
		domain.Item{ID: "i4", Name: "Epic", Rarity: "4"},
		domain.Item{ID: "i5", Name: "Legendary", Rarity: "5"},
	)

	const draws = 200000
	commons := 0
	for i := 0; i < draws; i++ {
		item, err := selector.Select(caseData)
		require.NoError(t, err)
		if item.Rarity == "1" {
			commons++
		}
	}

	// Expected 0.7992; allow a wide band so the test never flakes.
	frequency := float64(commons) / float64(draws)
	assert.InDelta(t, 0.7992, frequency, 0.01)
}

func TestSelector_UniformWithinTier(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping statistical test in short mode")
	}

	selector := NewSelector(rarity.Default())
	caseData := testCase(
		domain.Item{ID: "a", Name: "A", Rarity: "1"},
		domain.Item{ID: "b", Name: "B", Rarity: "1"},
	)

	const draws = 50000
	counts := map[string]int{}
	for i := 0; i < draws; i++ {
		item, err := selector.Select(caseData)
		require.NoError(t, err)
		counts[item.ID]++
	}

	assert.InDelta(t, 0.5, float64(counts["a"])/float64(draws), 0.02)
	assert.InDelta(t, 0.5, float64(counts["b"])/float64(draws), 0.02)
}

func TestGroupByRarity_FirstOccurrenceOrder(t *testing.T) {
	byTier, present := groupByRarity([]domain.Item{
		{ID: "a", Rarity: "3"},
		{ID: "b", Rarity: "1"},
		{ID: "c", Rarity: "3"},
	})

	assert.Equal(t, []string{"3", "1"}, present)
	assert.Len(t, byTier["3"], 2)
	assert.Len(t, byTier["1"], 1)
}
