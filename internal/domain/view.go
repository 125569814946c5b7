package domain

// ViewKind enumerates the closed set of browsing views
type ViewKind int

const (
	ViewDefault ViewKind = iota
	ViewMovies
	ViewTVShows
	ViewContinue
	ViewTopRated
	ViewTrending
	ViewGenre
)

// String returns the display name for the view kind
func (v ViewKind) String() string {
	switch v {
	case ViewDefault:
		return "Home"
	case ViewMovies:
		return "Movies"
	case ViewTVShows:
		return "TV Shows"
	case ViewContinue:
		return "Continue Watching"
	case ViewTopRated:
		return "Top Rated"
	case ViewTrending:
		return "Trending"
	case ViewGenre:
		return "Genre"
	default:
		return "Unknown"
	}
}

// ViewRequest selects which catalog slices a browsing screen needs.
// Genre is set only when Kind is ViewGenre.
type ViewRequest struct {
	Kind  ViewKind
	Genre string
}

// DefaultView requests the full home view
func DefaultView() ViewRequest {
	return ViewRequest{Kind: ViewDefault}
}

// TypeView requests a single type-filtered view
func TypeView(kind ViewKind) ViewRequest {
	return ViewRequest{Kind: kind}
}

// GenreView requests a genre-filtered view for a lower-case genre key
func GenreView(genre string) ViewRequest {
	return ViewRequest{Kind: ViewGenre, Genre: genre}
}

// ViewResult is an aggregated browsing view. All four buckets are always
// present; buckets irrelevant to the requested view are empty, never nil,
// so callers may range over any of them without checking.
type ViewResult struct {
	Hero             *CatalogItem
	ContinueWatching []CatalogItem
	RecentlyAdded    []CatalogItem
	Movies           []CatalogItem
	TVShows          []CatalogItem
}
