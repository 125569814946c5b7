package jellyfin

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/TryLovingMichael/jellyflix-home/internal/domain"
)

// Fixed client identification, part of the X-Emby-Authorization
// compatibility contract with the server.
const (
	clientName    = "Jellyfin Web"
	deviceName    = "Browser"
	deviceID      = "jellyfin-web"
	clientVersion = "10.8.0"
)

const (
	recentLimit = "20"
	searchLimit = "50"
)

// Client implements domain.CatalogSource against a Jellyfin server.
// It is built from a session snapshot: later mutation of the stored
// session does not affect an already-constructed client. Protected
// calls fail fast with domain.ErrUnauthenticated when the snapshot
// lacks a user ID or access token.
type Client struct {
	baseURL    string
	session    domain.Session
	httpClient *http.Client
	logger     *slog.Logger
}

// NewClient creates a new Jellyfin API client from a session snapshot.
// Building a client from an unauthenticated session is legal;
// only protected calls require the token.
func NewClient(sess domain.Session, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	sess.ServerURL = strings.TrimRight(sess.ServerURL, "/")
	return &Client{
		baseURL: sess.ServerURL,
		session: sess,
		// No client-side timeout: the transport default is the only
		// bound on browsing calls. Single attempt per request.
		httpClient: &http.Client{},
		logger:     logger,
	}
}

// buildAuthHeader constructs the X-Emby-Authorization header value
func buildAuthHeader(token string) string {
	header := fmt.Sprintf(`MediaBrowser Client=%q, Device=%q, DeviceId=%q, Version=%q`,
		clientName, deviceName, deviceID, clientVersion)
	if token != "" {
		header += fmt.Sprintf(`, Token=%q`, token)
	}
	return header
}

// doRequest performs a single authenticated GET against the server.
// Any non-2xx status surfaces as *domain.RequestError; there is no
// retry and no partial-result salvage.
func (c *Client) doRequest(ctx context.Context, path string, query url.Values) ([]byte, error) {
	if !c.session.Authenticated() {
		return nil, domain.ErrUnauthenticated
	}

	reqURL := c.baseURL + path
	if query != nil {
		reqURL += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Emby-Authorization", buildAuthHeader(c.session.AccessToken))

	c.logger.Debug("jellyfin request", "path", path)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("jellyfin request failed", "path", path, "error", err)
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.logger.Error("jellyfin request error", "path", path, "status", resp.StatusCode)
		return nil, &domain.RequestError{StatusCode: resp.StatusCode, Status: resp.Status}
	}

	return body, nil
}

// getItems issues a GET returning an ItemsResponse and maps its items
func (c *Client) getItems(ctx context.Context, path string, query url.Values) ([]domain.CatalogItem, error) {
	body, err := c.doRequest(ctx, path, query)
	if err != nil {
		return nil, err
	}

	var resp ItemsResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}

	return mapItems(resp.Items), nil
}

// GetMovies returns all movies, sorted ascending by name
func (c *Client) GetMovies(ctx context.Context) ([]domain.CatalogItem, error) {
	query := url.Values{}
	query.Set("IncludeItemTypes", "Movie")
	query.Set("Recursive", "true")
	query.Set("Fields", "PrimaryImageAspectRatio,BasicSyncInfo,Path,Genres,DateCreated")
	query.Set("ImageTypeLimit", "1")
	query.Set("SortBy", "SortName")
	query.Set("SortOrder", "Ascending")

	return c.getItems(ctx, fmt.Sprintf("/Users/%s/Items", c.session.UserID), query)
}

// GetTVShows returns all series, sorted ascending by name
func (c *Client) GetTVShows(ctx context.Context) ([]domain.CatalogItem, error) {
	query := url.Values{}
	query.Set("IncludeItemTypes", "Series")
	query.Set("Recursive", "true")
	query.Set("Fields", "PrimaryImageAspectRatio,BasicSyncInfo,Genres,DateCreated")
	query.Set("ImageTypeLimit", "1")
	query.Set("SortBy", "SortName")
	query.Set("SortOrder", "Ascending")

	return c.getItems(ctx, fmt.Sprintf("/Users/%s/Items", c.session.UserID), query)
}

// GetRecentlyAdded returns the latest library additions, server-default
// ordering, capped at 20. The endpoint returns a bare item array.
func (c *Client) GetRecentlyAdded(ctx context.Context) ([]domain.CatalogItem, error) {
	query := url.Values{}
	query.Set("Fields", "PrimaryImageAspectRatio,BasicSyncInfo,Genres,DateCreated")
	query.Set("ImageTypeLimit", "1")
	query.Set("Limit", recentLimit)

	body, err := c.doRequest(ctx, fmt.Sprintf("/Users/%s/Items/Latest", c.session.UserID), query)
	if err != nil {
		return nil, err
	}

	var items []Item
	if err := json.Unmarshal(body, &items); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}

	return mapItems(items), nil
}

// GetContinueWatching returns in-progress video items, server-default
// ordering, capped at 20
func (c *Client) GetContinueWatching(ctx context.Context) ([]domain.CatalogItem, error) {
	query := url.Values{}
	query.Set("MediaTypes", "Video")
	query.Set("Fields", "PrimaryImageAspectRatio,BasicSyncInfo,Genres,DateCreated")
	query.Set("ImageTypeLimit", "1")
	query.Set("Limit", recentLimit)

	return c.getItems(ctx, fmt.Sprintf("/Users/%s/Items/Resume", c.session.UserID), query)
}

// Search returns movie/series matches for a query, capped at 50.
// The query is sent verbatim; rejecting empty input is the caller's job.
func (c *Client) Search(ctx context.Context, searchTerm string) ([]domain.CatalogItem, error) {
	query := url.Values{}
	query.Set("searchTerm", searchTerm)
	query.Set("IncludeItemTypes", "Movie,Series")
	query.Set("Recursive", "true")
	query.Set("Fields", "PrimaryImageAspectRatio,BasicSyncInfo,Genres,DateCreated")
	query.Set("ImageTypeLimit", "1")
	query.Set("Limit", searchLimit)

	return c.getItems(ctx, fmt.Sprintf("/Users/%s/Items", c.session.UserID), query)
}

// GetItemDetails returns full metadata for a single item
func (c *Client) GetItemDetails(ctx context.Context, itemID string) (*domain.CatalogItem, error) {
	body, err := c.doRequest(ctx, fmt.Sprintf("/Users/%s/Items/%s", c.session.UserID, itemID), nil)
	if err != nil {
		return nil, err
	}

	var item Item
	if err := json.Unmarshal(body, &item); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}

	mapped := mapItem(item)
	return &mapped, nil
}

// GetSeasons returns the seasons of a series, empty when the server
// reports none
func (c *Client) GetSeasons(ctx context.Context, seriesID string) ([]domain.CatalogItem, error) {
	query := url.Values{}
	query.Set("userId", c.session.UserID)

	return c.getItems(ctx, fmt.Sprintf("/Shows/%s/Seasons", seriesID), query)
}

// GetEpisodes returns the episodes of one season, empty when the server
// reports none
func (c *Client) GetEpisodes(ctx context.Context, seriesID, seasonID string) ([]domain.CatalogItem, error) {
	query := url.Values{}
	query.Set("userId", c.session.UserID)
	query.Set("seasonId", seasonID)

	return c.getItems(ctx, fmt.Sprintf("/Shows/%s/Episodes", seriesID), query)
}

// StreamURL returns the direct playback URL for an item. The path and
// parameters are a compatibility contract with the server's stream
// endpoint.
func (c *Client) StreamURL(itemID string) string {
	return fmt.Sprintf("%s/Videos/%s/stream?static=true&mediaSourceId=%s&api_key=%s",
		c.baseURL, itemID, itemID, c.session.AccessToken)
}
