package catalog

import (
	"context"
	"log/slog"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/TryLovingMichael/jellyflix-home/internal/domain"
)

// ratedThreshold is the minimum community rating for the top-rated view
const ratedThreshold = 7.5

// genreLabels maps lower-case genre keys to the canonical labels the
// server reports. Matching against item genres is a case-insensitive
// substring match of the canonical label.
var genreLabels = map[string]string{
	"action":  "Action",
	"comedy":  "Comedy",
	"drama":   "Drama",
	"scifi":   "Science Fiction",
	"horror":  "Horror",
	"romance": "Romance",
	"fantasy": "Fantasy",
}

// GenreLabel resolves a lower-case genre key to its canonical label
func GenreLabel(key string) (string, bool) {
	label, ok := genreLabels[strings.ToLower(key)]
	return label, ok
}

// GenreKeys returns the supported genre keys in picker order
func GenreKeys() []string {
	return []string{"action", "comedy", "drama", "scifi", "horror", "romance", "fantasy"}
}

// Aggregator composes catalog slices into browsing views. It owns no
// state across requests; each Aggregate call fetches fresh data.
type Aggregator struct {
	source domain.CatalogSource
	logger *slog.Logger
}

// NewAggregator creates a new catalog aggregator
func NewAggregator(source domain.CatalogSource, logger *slog.Logger) *Aggregator {
	if logger == nil {
		logger = slog.Default()
	}
	return &Aggregator{source: source, logger: logger}
}

// Aggregate dispatches the fetches required for the requested view,
// joins them, and applies view-specific post-processing. Independent
// fetches run concurrently; if any fails, the whole view fails with
// *domain.AggregationError and no partial result is returned.
func (a *Aggregator) Aggregate(ctx context.Context, req domain.ViewRequest) (*domain.ViewResult, error) {
	result, err := a.aggregate(ctx, req)
	if err != nil {
		a.logger.Error("view aggregation failed", "view", req.Kind.String(), "error", err)
		return nil, &domain.AggregationError{View: req.Kind, Err: err}
	}

	a.logger.Info("view aggregated",
		"view", req.Kind.String(),
		"continue", len(result.ContinueWatching),
		"recent", len(result.RecentlyAdded),
		"movies", len(result.Movies),
		"shows", len(result.TVShows),
	)

	return result, nil
}

func (a *Aggregator) aggregate(ctx context.Context, req domain.ViewRequest) (*domain.ViewResult, error) {
	switch req.Kind {
	case domain.ViewDefault:
		return a.defaultView(ctx)
	case domain.ViewMovies:
		items, err := a.source.GetMovies(ctx)
		if err != nil {
			return nil, err
		}
		result := emptyResult()
		result.Movies = ensure(items)
		result.Hero = firstOf(result.Movies)
		return result, nil
	case domain.ViewTVShows:
		items, err := a.source.GetTVShows(ctx)
		if err != nil {
			return nil, err
		}
		result := emptyResult()
		result.TVShows = ensure(items)
		result.Hero = firstOf(result.TVShows)
		return result, nil
	case domain.ViewContinue:
		items, err := a.source.GetContinueWatching(ctx)
		if err != nil {
			return nil, err
		}
		result := emptyResult()
		result.ContinueWatching = ensure(items)
		result.Hero = firstOf(result.ContinueWatching)
		return result, nil
	case domain.ViewTrending:
		// Trending is an alias for the recently-added fetch
		items, err := a.source.GetRecentlyAdded(ctx)
		if err != nil {
			return nil, err
		}
		result := emptyResult()
		result.RecentlyAdded = ensure(items)
		result.Hero = firstOf(result.RecentlyAdded)
		return result, nil
	case domain.ViewTopRated:
		return a.topRatedView(ctx)
	case domain.ViewGenre:
		return a.genreView(ctx, req.Genre)
	default:
		return a.defaultView(ctx)
	}
}

// defaultView fetches all four slices concurrently. Continue-watching
// is excluded from hero candidacy; precedence is recently-added,
// movies, then shows.
func (a *Aggregator) defaultView(ctx context.Context) (*domain.ViewResult, error) {
	var continueItems, recentItems, movieItems, showItems []domain.CatalogItem

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		continueItems, err = a.source.GetContinueWatching(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		recentItems, err = a.source.GetRecentlyAdded(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		movieItems, err = a.source.GetMovies(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		showItems, err = a.source.GetTVShows(ctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	result := emptyResult()
	result.ContinueWatching = ensure(continueItems)
	result.RecentlyAdded = ensure(recentItems)
	result.Movies = ensure(movieItems)
	result.TVShows = ensure(showItems)
	result.Hero = firstOf(result.RecentlyAdded, result.Movies, result.TVShows)
	return result, nil
}

// topRatedView merges movies and shows, keeps items at or above the
// rating threshold, sorts descending by rating, and splits back into
// movie/show buckets by kind.
func (a *Aggregator) topRatedView(ctx context.Context) (*domain.ViewResult, error) {
	movies, shows, err := a.fetchMoviesAndShows(ctx)
	if err != nil {
		return nil, err
	}

	merged := make([]domain.CatalogItem, 0, len(movies)+len(shows))
	for _, item := range append(movies, shows...) {
		if item.CommunityRating >= ratedThreshold {
			merged = append(merged, item)
		}
	}
	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].CommunityRating > merged[j].CommunityRating
	})

	result := emptyResult()
	for _, item := range merged {
		if item.Kind == domain.KindSeries {
			result.TVShows = append(result.TVShows, item)
		} else {
			result.Movies = append(result.Movies, item)
		}
	}
	result.Hero = firstOf(result.Movies, result.TVShows)
	return result, nil
}

// genreView keeps items whose genre list contains, case-insensitively,
// a substring match of the canonical label for the requested key. An
// unknown key yields empty buckets.
func (a *Aggregator) genreView(ctx context.Context, genre string) (*domain.ViewResult, error) {
	movies, shows, err := a.fetchMoviesAndShows(ctx)
	if err != nil {
		return nil, err
	}

	result := emptyResult()
	label, ok := genreLabels[strings.ToLower(genre)]
	if !ok {
		a.logger.Warn("unknown genre key", "genre", genre)
		return result, nil
	}

	result.Movies = filterByGenre(movies, label)
	result.TVShows = filterByGenre(shows, label)
	result.Hero = firstOf(result.Movies, result.TVShows)
	return result, nil
}

// fetchMoviesAndShows runs the two independent fetches concurrently
// and joins them before any filtering begins
func (a *Aggregator) fetchMoviesAndShows(ctx context.Context) (movies, shows []domain.CatalogItem, err error) {
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		movies, err = a.source.GetMovies(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		shows, err = a.source.GetTVShows(ctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return movies, shows, nil
}

// filterByGenre keeps items carrying a case-insensitive substring match
// of the canonical genre label
func filterByGenre(items []domain.CatalogItem, label string) []domain.CatalogItem {
	matched := make([]domain.CatalogItem, 0, len(items))
	needle := strings.ToLower(label)
	for _, item := range items {
		for _, genre := range item.Genres {
			if strings.Contains(strings.ToLower(genre), needle) {
				matched = append(matched, item)
				break
			}
		}
	}
	return matched
}

// firstOf selects the hero item: the first item of the first non-empty
// bucket, in the precedence order given. Nil when all are empty.
func firstOf(buckets ...[]domain.CatalogItem) *domain.CatalogItem {
	for _, bucket := range buckets {
		if len(bucket) > 0 {
			hero := bucket[0]
			return &hero
		}
	}
	return nil
}

// emptyResult returns a result with all four buckets present and empty
func emptyResult() *domain.ViewResult {
	return &domain.ViewResult{
		ContinueWatching: []domain.CatalogItem{},
		RecentlyAdded:    []domain.CatalogItem{},
		Movies:           []domain.CatalogItem{},
		TVShows:          []domain.CatalogItem{},
	}
}

// ensure converts a nil slice to an empty one so callers may assume
// every bucket exists
func ensure(items []domain.CatalogItem) []domain.CatalogItem {
	if items == nil {
		return []domain.CatalogItem{}
	}
	return items
}
