package jellyfin

import (
	"time"

	"github.com/TryLovingMichael/jellyflix-home/internal/domain"
)

// mapKind converts a wire item type to the domain kind
func mapKind(itemType string) domain.ItemKind {
	switch itemType {
	case "Movie":
		return domain.KindMovie
	case "Series":
		return domain.KindSeries
	case "Season":
		return domain.KindSeason
	case "Episode":
		return domain.KindEpisode
	default:
		return domain.KindUnknown
	}
}

// mapItem converts a wire item to a domain catalog item
func mapItem(item Item) domain.CatalogItem {
	return domain.CatalogItem{
		ID:                item.ID,
		Name:              item.Name,
		Kind:              mapKind(item.Type),
		Overview:          item.Overview,
		Year:              item.ProductionYear,
		CommunityRating:   item.CommunityRating,
		OfficialRating:    item.OfficialRating,
		Genres:            item.Genres,
		RunTimeTicks:      item.RunTimeTicks,
		PrimaryImageTag:   item.ImageTags.Primary,
		BackdropImageTag:  item.ImageTags.Backdrop,
		LogoImageTag:      item.ImageTags.Logo,
		BackdropImageTags: item.BackdropImageTags,
		SeriesName:        item.SeriesName,
		SeasonNumber:      item.ParentIndexNumber,
		EpisodeNumber:     item.IndexNumber,
		DateCreated:       parseServerTime(item.DateCreated),
	}
}

// mapItems converts a wire item list, always returning a non-nil slice
func mapItems(items []Item) []domain.CatalogItem {
	mapped := make([]domain.CatalogItem, 0, len(items))
	for _, item := range items {
		mapped = append(mapped, mapItem(item))
	}
	return mapped
}

// parseServerTime parses Jellyfin's RFC3339 timestamps. An absent or
// malformed timestamp maps to the zero time.
func parseServerTime(value string) time.Time {
	if value == "" {
		return time.Time{}
	}
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}
	}
	return t
}
