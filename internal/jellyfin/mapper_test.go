package jellyfin

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TryLovingMichael/jellyflix-home/internal/domain"
)

func TestMapKind(t *testing.T) {
	tests := []struct {
		wire string
		want domain.ItemKind
	}{
		{"Movie", domain.KindMovie},
		{"Series", domain.KindSeries},
		{"Season", domain.KindSeason},
		{"Episode", domain.KindEpisode},
		{"BoxSet", domain.KindUnknown},
		{"", domain.KindUnknown},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, mapKind(tt.wire), "type %q", tt.wire)
	}
}

func TestMapItem(t *testing.T) {
	item := mapItem(Item{
		ID:                "m1",
		Name:              "Arrival",
		Type:              "Movie",
		Overview:          "Aliens arrive.",
		ProductionYear:    2016,
		CommunityRating:   7.9,
		OfficialRating:    "PG-13",
		RunTimeTicks:      69_960_000_000,
		Genres:            []string{"Science Fiction", "Drama"},
		ImageTags:         ImageTags{Primary: "p1", Logo: "l1"},
		BackdropImageTags: []string{"b1", "b2"},
		DateCreated:       "2024-03-01T10:30:00.0000000Z",
	})

	assert.Equal(t, "m1", item.ID)
	assert.Equal(t, domain.KindMovie, item.Kind)
	assert.Equal(t, 2016, item.Year)
	assert.Equal(t, 7.9, item.CommunityRating)
	assert.Equal(t, "p1", item.PrimaryImageTag)
	assert.Equal(t, "l1", item.LogoImageTag)
	assert.Equal(t, []string{"b1", "b2"}, item.BackdropImageTags)
	assert.Equal(t, time.Date(2024, 3, 1, 10, 30, 0, 0, time.UTC), item.DateCreated)
}

func TestParseServerTimeMalformed(t *testing.T) {
	// Absent or unparseable timestamps map to the zero time
	assert.True(t, parseServerTime("").IsZero())
	assert.True(t, parseServerTime("yesterday").IsZero())
}

func TestMapItemsAlwaysNonNil(t *testing.T) {
	mapped := mapItems(nil)
	require.NotNil(t, mapped)
	assert.Empty(t, mapped)
}
