package domain

import (
	"fmt"
	"time"
)

// ItemKind distinguishes catalog content types
type ItemKind int

const (
	KindMovie ItemKind = iota
	KindSeries
	KindSeason
	KindEpisode
	KindUnknown
)

// String returns a human-readable representation of the item kind
func (k ItemKind) String() string {
	switch k {
	case KindMovie:
		return "Movie"
	case KindSeries:
		return "Series"
	case KindSeason:
		return "Season"
	case KindEpisode:
		return "Episode"
	default:
		return "Unknown"
	}
}

// ImageType identifies which image asset to derive a URL for.
// The values are path segments of the server's image endpoint.
type ImageType string

const (
	ImagePrimary  ImageType = "Primary"
	ImageBackdrop ImageType = "Backdrop"
	ImageLogo     ImageType = "Logo"
)

// CatalogItem represents one unit of media (movie, series, season, episode).
// Optional attributes carry their zero value when the server omits them:
// Year 0, CommunityRating 0, DateCreated the zero time, empty tag strings.
type CatalogItem struct {
	ID   string   // Server-specific unique identifier
	Name string   // Display title
	Kind ItemKind // Movie, Series, Season, or Episode

	Overview        string   // Plot synopsis
	Year            int      // Production year
	CommunityRating float64  // Audience rating, 0-10 scale
	OfficialRating  string   // Content rating label, e.g. "PG-13", "TV-MA"
	Genres          []string // Genre labels as reported by the server
	RunTimeTicks    int64    // Run length in 100-nanosecond ticks (server-native unit)

	// Image version tags. An empty tag means no image of that kind exists;
	// URL derivation treats absence as "no image", never as an error.
	PrimaryImageTag   string
	BackdropImageTag  string
	LogoImageTag      string
	BackdropImageTags []string

	// Series linkage (episodes and seasons only)
	SeriesName    string
	SeasonNumber  int // ParentIndexNumber on the wire
	EpisodeNumber int // IndexNumber on the wire

	DateCreated time.Time // When the item was added to the library
}

// Runtime converts the server-native tick count to a duration
func (c CatalogItem) Runtime() time.Duration {
	return time.Duration(c.RunTimeTicks * 100)
}

// FormattedRuntime returns the run length in a human-readable format
func (c CatalogItem) FormattedRuntime() string {
	d := c.Runtime()
	h := int(d.Hours())
	mins := int(d.Minutes()) % 60
	if h > 0 {
		return fmt.Sprintf("%dh %dm", h, mins)
	}
	return fmt.Sprintf("%dm", mins)
}

// EpisodeCode returns the formatted episode code (e.g., "S01E05")
func (c CatalogItem) EpisodeCode() string {
	if c.Kind != KindEpisode {
		return ""
	}
	return fmt.Sprintf("S%02dE%02d", c.SeasonNumber, c.EpisodeNumber)
}

// Description returns secondary info for list display
func (c CatalogItem) Description() string {
	if c.Kind == KindEpisode {
		return c.EpisodeCode()
	}
	if c.Year > 0 {
		return fmt.Sprintf("%d", c.Year)
	}
	return ""
}
