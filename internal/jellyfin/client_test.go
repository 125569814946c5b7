package jellyfin

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TryLovingMichael/jellyflix-home/internal/domain"
)

func authedSession(serverURL string) domain.Session {
	return domain.Session{
		ServerURL:   serverURL,
		Username:    "alice",
		Password:    "hunter2",
		UserID:      "user-1",
		AccessToken: "token-abc",
	}
}

func TestAuthenticate(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/Users/AuthenticateByName", r.URL.Path)

		header := r.Header.Get("X-Emby-Authorization")
		assert.Contains(t, header, `Client="Jellyfin Web"`)
		assert.Contains(t, header, `Device="Browser"`)
		assert.Contains(t, header, `DeviceId="jellyfin-web"`)
		assert.Contains(t, header, `Version="10.8.0"`)
		assert.NotContains(t, header, "Token=")

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "alice", body["Username"])
		assert.Equal(t, "hunter2", body["Pw"])

		json.NewEncoder(w).Encode(AuthResponse{
			User:        User{ID: "user-1", Name: "alice"},
			AccessToken: "token-abc",
		})
	}))
	defer server.Close()

	client := NewClient(domain.Session{ServerURL: server.URL, Username: "alice", Password: "hunter2"}, nil)

	result, err := client.Authenticate(t.Context())
	require.NoError(t, err)
	assert.Equal(t, "user-1", result.UserID)
	assert.Equal(t, "token-abc", result.AccessToken)
}

func TestAuthenticateRejected(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	client := NewClient(domain.Session{ServerURL: server.URL, Username: "alice", Password: "wrong"}, nil)

	_, err := client.Authenticate(t.Context())
	assert.ErrorIs(t, err, domain.ErrAuthFailed)
}

func TestAuthenticateUnreachable(t *testing.T) {
	client := NewClient(domain.Session{ServerURL: "http://127.0.0.1:1", Username: "alice"}, nil)

	_, err := client.Authenticate(t.Context())
	assert.ErrorIs(t, err, domain.ErrAuthFailed)
}

func TestGetMovies(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/Users/user-1/Items", r.URL.Path)

		q := r.URL.Query()
		assert.Equal(t, "Movie", q.Get("IncludeItemTypes"))
		assert.Equal(t, "true", q.Get("Recursive"))
		assert.Equal(t, "SortName", q.Get("SortBy"))
		assert.Equal(t, "Ascending", q.Get("SortOrder"))
		assert.Contains(t, r.Header.Get("X-Emby-Authorization"), `Token="token-abc"`)

		json.NewEncoder(w).Encode(ItemsResponse{Items: []Item{
			{ID: "m1", Name: "Arrival", Type: "Movie", ProductionYear: 2016, CommunityRating: 7.9},
		}})
	}))
	defer server.Close()

	client := NewClient(authedSession(server.URL), nil)

	movies, err := client.GetMovies(t.Context())
	require.NoError(t, err)
	require.Len(t, movies, 1)
	assert.Equal(t, "Arrival", movies[0].Name)
	assert.Equal(t, domain.KindMovie, movies[0].Kind)
	assert.Equal(t, 2016, movies[0].Year)
}

func TestGetMoviesEmptyResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Response shape lacking an item array maps to an empty list
		w.Write([]byte(`{"TotalRecordCount":0}`))
	}))
	defer server.Close()

	client := NewClient(authedSession(server.URL), nil)

	movies, err := client.GetMovies(t.Context())
	require.NoError(t, err)
	assert.NotNil(t, movies)
	assert.Empty(t, movies)
}

func TestGetRecentlyAdded(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/Users/user-1/Items/Latest", r.URL.Path)
		assert.Equal(t, "20", r.URL.Query().Get("Limit"))

		// The Latest endpoint returns a bare item array
		json.NewEncoder(w).Encode([]Item{
			{ID: "s1", Name: "Severance", Type: "Series"},
			{ID: "m2", Name: "Dune", Type: "Movie"},
		})
	}))
	defer server.Close()

	client := NewClient(authedSession(server.URL), nil)

	items, err := client.GetRecentlyAdded(t.Context())
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, domain.KindSeries, items[0].Kind)
}

func TestGetContinueWatching(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/Users/user-1/Items/Resume", r.URL.Path)
		assert.Equal(t, "Video", r.URL.Query().Get("MediaTypes"))
		assert.Equal(t, "20", r.URL.Query().Get("Limit"))

		json.NewEncoder(w).Encode(ItemsResponse{Items: []Item{
			{ID: "e1", Name: "Pilot", Type: "Episode", SeriesName: "Severance", ParentIndexNumber: 1, IndexNumber: 1},
		}})
	}))
	defer server.Close()

	client := NewClient(authedSession(server.URL), nil)

	items, err := client.GetContinueWatching(t.Context())
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Severance", items[0].SeriesName)
	assert.Equal(t, "S01E01", items[0].EpisodeCode())
}

func TestSearch(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.Equal(t, "blade runner", q.Get("searchTerm"))
		assert.Equal(t, "Movie,Series", q.Get("IncludeItemTypes"))
		assert.Equal(t, "50", q.Get("Limit"))

		json.NewEncoder(w).Encode(ItemsResponse{Items: []Item{
			{ID: "m1", Name: "Blade Runner", Type: "Movie"},
		}})
	}))
	defer server.Close()

	client := NewClient(authedSession(server.URL), nil)

	items, err := client.Search(t.Context(), "blade runner")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Blade Runner", items[0].Name)
}

func TestGetSeasonsAndEpisodes(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/Shows/show-1/Seasons":
			assert.Equal(t, "user-1", r.URL.Query().Get("userId"))
			json.NewEncoder(w).Encode(ItemsResponse{Items: []Item{
				{ID: "sea-1", Name: "Season 1", Type: "Season"},
			}})
		case "/Shows/show-1/Episodes":
			assert.Equal(t, "sea-1", r.URL.Query().Get("seasonId"))
			json.NewEncoder(w).Encode(ItemsResponse{Items: []Item{
				{ID: "ep-1", Name: "Pilot", Type: "Episode", IndexNumber: 1, ParentIndexNumber: 1},
			}})
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
		}
	}))
	defer server.Close()

	client := NewClient(authedSession(server.URL), nil)

	seasons, err := client.GetSeasons(t.Context(), "show-1")
	require.NoError(t, err)
	require.Len(t, seasons, 1)
	assert.Equal(t, domain.KindSeason, seasons[0].Kind)

	episodes, err := client.GetEpisodes(t.Context(), "show-1", "sea-1")
	require.NoError(t, err)
	require.Len(t, episodes, 1)
	assert.Equal(t, "Pilot", episodes[0].Name)
}

func TestRequestErrorOnNon2xx(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewClient(authedSession(server.URL), nil)

	_, err := client.GetTVShows(t.Context())
	var reqErr *domain.RequestError
	require.True(t, errors.As(err, &reqErr))
	assert.Equal(t, http.StatusInternalServerError, reqErr.StatusCode)
}

func TestUnauthenticatedFailsFast(t *testing.T) {
	requests := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
	}))
	defer server.Close()

	// No token: protected calls must fail before any request is issued
	client := NewClient(domain.Session{ServerURL: server.URL, Username: "alice"}, nil)

	_, err := client.GetMovies(t.Context())
	assert.ErrorIs(t, err, domain.ErrUnauthenticated)
	assert.Zero(t, requests)
}

func TestStreamURL(t *testing.T) {
	client := NewClient(authedSession("http://media.local:8096/"), nil)

	assert.Equal(t,
		"http://media.local:8096/Videos/item-1/stream?static=true&mediaSourceId=item-1&api_key=token-abc",
		client.StreamURL("item-1"))
}
