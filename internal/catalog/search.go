package catalog

import (
	"context"
	"log/slog"
	"sort"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"

	"github.com/TryLovingMichael/jellyflix-home/internal/domain"
)

// SearchService runs server-side catalog searches and re-ranks the
// results by fuzzy title relevance before they reach the screen.
type SearchService struct {
	source domain.CatalogSource
	logger *slog.Logger
}

// NewSearchService creates a new search service
func NewSearchService(source domain.CatalogSource, logger *slog.Logger) *SearchService {
	if logger == nil {
		logger = slog.Default()
	}
	return &SearchService{source: source, logger: logger}
}

// Search issues a movie/series search for the query and returns results
// ordered by fuzzy title match, closest first; results the matcher
// rejects keep their server order after the matched ones. A blank query
// is rejected here, before any request is issued.
func (s *SearchService) Search(ctx context.Context, query string) ([]domain.CatalogItem, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return []domain.CatalogItem{}, nil
	}

	items, err := s.source.Search(ctx, query)
	if err != nil {
		return nil, err
	}

	s.logger.Debug("search results", "query", query, "count", len(items))

	return rankByTitle(query, items), nil
}

// rankByTitle orders items by fuzzy match distance against the query
func rankByTitle(query string, items []domain.CatalogItem) []domain.CatalogItem {
	titles := make([]string, len(items))
	for i, item := range items {
		titles[i] = item.Name
	}

	ranks := fuzzy.RankFindNormalizedFold(query, titles)
	sort.Sort(ranks)

	ranked := make([]domain.CatalogItem, 0, len(items))
	seen := make(map[int]bool, len(ranks))
	for _, rank := range ranks {
		ranked = append(ranked, items[rank.OriginalIndex])
		seen[rank.OriginalIndex] = true
	}
	for i, item := range items {
		if !seen[i] {
			ranked = append(ranked, item)
		}
	}
	return ranked
}
