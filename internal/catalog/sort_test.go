package catalog

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TryLovingMichael/jellyflix-home/internal/domain"
)

func TestSortByYearMissingSortsLowest(t *testing.T) {
	items := []domain.CatalogItem{
		{ID: "a", Year: 2001},
		{ID: "b"}, // No year: treated as 0
		{ID: "c", Year: 2020},
	}

	sorted := SortItems(items, SortByYear)

	require.Len(t, sorted, 3)
	assert.Equal(t, "c", sorted[0].ID)
	assert.Equal(t, "a", sorted[1].ID)
	assert.Equal(t, "b", sorted[2].ID)
}

func TestSortByNameAscending(t *testing.T) {
	items := []domain.CatalogItem{
		{ID: "z", Name: "Zodiac"},
		{ID: "a", Name: "arrival"},
		{ID: "m", Name: "Memento"},
	}

	sorted := SortItems(items, SortByName)

	assert.Equal(t, []string{"a", "m", "z"}, ids(sorted))
}

func TestSortByRatingDescending(t *testing.T) {
	items := []domain.CatalogItem{
		{ID: "low", CommunityRating: 6.1},
		{ID: "none"},
		{ID: "high", CommunityRating: 9.0},
	}

	sorted := SortItems(items, SortByRating)

	assert.Equal(t, []string{"high", "low", "none"}, ids(sorted))
}

func TestSortByAddedDescendingDefault(t *testing.T) {
	items := []domain.CatalogItem{
		{ID: "old", DateCreated: time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)},
		{ID: "missing"}, // No creation date: sorts as the lowest value
		{ID: "new", DateCreated: time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)},
	}

	sorted := SortItems(items, SortByAdded)

	assert.Equal(t, []string{"new", "old", "missing"}, ids(sorted))
}

func TestSortDoesNotMutateInput(t *testing.T) {
	items := []domain.CatalogItem{
		{ID: "b", Name: "Beta"},
		{ID: "a", Name: "Alpha"},
	}

	_ = SortItems(items, SortByName)

	assert.Equal(t, []string{"b", "a"}, ids(items))
}

func TestParseSortField(t *testing.T) {
	tests := []struct {
		value string
		want  SortField
	}{
		{"name", SortByName},
		{"Rating", SortByRating},
		{"year", SortByYear},
		{"added", SortByAdded},
		{"", SortByAdded},
		{"bogus", SortByAdded},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ParseSortField(tt.value), "value %q", tt.value)
	}
}

func ids(items []domain.CatalogItem) []string {
	out := make([]string, len(items))
	for i, item := range items {
		out[i] = item.ID
	}
	return out
}
