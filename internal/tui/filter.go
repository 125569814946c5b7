package tui

import (
	"github.com/sahilm/fuzzy"

	"github.com/TryLovingMichael/jellyflix-home/internal/domain"
)

// itemSource adapts a catalog item slice to fuzzy.Source
type itemSource []domain.CatalogItem

func (s itemSource) String(i int) string { return s[i].Name }
func (s itemSource) Len() int            { return len(s) }

// filterItems narrows a bucket to items whose names fuzzy-match the
// pattern, best match first. The input slice is not modified.
func filterItems(pattern string, items []domain.CatalogItem) []domain.CatalogItem {
	matches := fuzzy.FindFrom(pattern, itemSource(items))

	filtered := make([]domain.CatalogItem, 0, len(matches))
	for _, match := range matches {
		filtered = append(filtered, items[match.Index])
	}
	return filtered
}
