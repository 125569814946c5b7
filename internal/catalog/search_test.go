package catalog

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TryLovingMichael/jellyflix-home/internal/domain"
)

func TestSearchBlankQueryNotSubmitted(t *testing.T) {
	source := &fakeSource{}
	svc := NewSearchService(source, nil)

	for _, query := range []string{"", "   ", "\t\n"} {
		items, err := svc.Search(t.Context(), query)
		require.NoError(t, err)
		assert.Empty(t, items)
	}
	assert.Zero(t, source.searchCalls)
}

func TestSearchTrimsQuery(t *testing.T) {
	source := &fakeSource{}
	svc := NewSearchService(source, nil)

	_, err := svc.Search(t.Context(), "  matrix  ")
	require.NoError(t, err)
	assert.Equal(t, 1, source.searchCalls)
	assert.Equal(t, "matrix", source.searchQuery)
}

func TestSearchRanksByTitle(t *testing.T) {
	source := &fakeSource{
		searchItems: []domain.CatalogItem{
			{ID: "1", Name: "Something Else", Kind: domain.KindMovie},
			{ID: "2", Name: "The Matrix", Kind: domain.KindMovie},
			{ID: "3", Name: "Matrix Reloaded", Kind: domain.KindMovie},
		},
	}
	svc := NewSearchService(source, nil)

	items, err := svc.Search(t.Context(), "matrix")
	require.NoError(t, err)
	require.Len(t, items, 3)

	// Fuzzy matches come first; unmatched results keep server order last
	assert.Contains(t, []string{"2", "3"}, items[0].ID)
	assert.Contains(t, []string{"2", "3"}, items[1].ID)
	assert.Equal(t, "1", items[2].ID)
}

func TestSearchPropagatesError(t *testing.T) {
	source := &fakeSource{searchErr: errors.New("boom")}
	svc := NewSearchService(source, nil)

	_, err := svc.Search(t.Context(), "matrix")
	assert.Error(t, err)
}
