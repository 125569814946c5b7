package catalog

import (
	"sort"
	"strings"

	"github.com/TryLovingMichael/jellyflix-home/internal/domain"
)

// SortField selects the key for post-hoc bucket sorting
type SortField int

const (
	SortByAdded  SortField = iota // Creation date, descending (default)
	SortByName                    // Name, ascending
	SortByRating                  // Community rating, descending
	SortByYear                    // Production year, descending
)

// String returns the display name for the sort field
func (f SortField) String() string {
	switch f {
	case SortByAdded:
		return "Date Added"
	case SortByName:
		return "Name"
	case SortByRating:
		return "Rating"
	case SortByYear:
		return "Year"
	default:
		return "Unknown"
	}
}

// ParseSortField maps a config value to a sort field, defaulting to
// date added
func ParseSortField(value string) SortField {
	switch strings.ToLower(value) {
	case "name":
		return SortByName
	case "rating":
		return SortByRating
	case "year":
		return SortByYear
	default:
		return SortByAdded
	}
}

// SortItems returns a sorted copy of a bucket without mutating the
// original. Items missing the sort key sort as the lowest value:
// rating and year absent compare as 0, date absent as the zero time.
func SortItems(items []domain.CatalogItem, field SortField) []domain.CatalogItem {
	sorted := make([]domain.CatalogItem, len(items))
	copy(sorted, items)

	switch field {
	case SortByName:
		sort.SliceStable(sorted, func(i, j int) bool {
			return strings.ToLower(sorted[i].Name) < strings.ToLower(sorted[j].Name)
		})
	case SortByRating:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].CommunityRating > sorted[j].CommunityRating
		})
	case SortByYear:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].Year > sorted[j].Year
		})
	default:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].DateCreated.After(sorted[j].DateCreated)
		})
	}

	return sorted
}
