package domain

import "context"

// CatalogSource is the read-only gateway to the media server's catalog.
// The Jellyfin client implements it; the aggregator and the search
// service depend on it so tests can substitute a fake.
type CatalogSource interface {
	// GetMovies returns all movies, sorted ascending by name
	GetMovies(ctx context.Context) ([]CatalogItem, error)

	// GetTVShows returns all series, sorted ascending by name
	GetTVShows(ctx context.Context) ([]CatalogItem, error)

	// GetRecentlyAdded returns the latest library additions, capped at 20
	GetRecentlyAdded(ctx context.Context) ([]CatalogItem, error)

	// GetContinueWatching returns in-progress video items, capped at 20
	GetContinueWatching(ctx context.Context) ([]CatalogItem, error)

	// Search returns movie/series matches for a query, capped at 50.
	// Callers must reject empty queries before invoking it.
	Search(ctx context.Context, query string) ([]CatalogItem, error)

	// GetItemDetails returns full metadata for a single item
	GetItemDetails(ctx context.Context, itemID string) (*CatalogItem, error)

	// GetSeasons returns the seasons of a series, empty when none exist
	GetSeasons(ctx context.Context, seriesID string) ([]CatalogItem, error)

	// GetEpisodes returns the episodes of one season, empty when none exist
	GetEpisodes(ctx context.Context, seriesID, seasonID string) ([]CatalogItem, error)
}
