package tui

import (
	"context"
	"log/slog"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/TryLovingMichael/jellyflix-home/internal/catalog"
	"github.com/TryLovingMichael/jellyflix-home/internal/domain"
	"github.com/TryLovingMichael/jellyflix-home/internal/jellyfin"
	"github.com/TryLovingMichael/jellyflix-home/internal/session"
)

// isBlank reports whether a query is empty after trimming; blank
// queries are never submitted to the search service
func isBlank(query string) bool {
	return strings.TrimSpace(query) == ""
}

// loginCmd authenticates the submitted credentials and persists the
// completed session. The client never stores the result itself; the
// returned pair is fed into the session store here.
func loginCmd(store *session.Store, sess domain.Session, logger *slog.Logger) tea.Cmd {
	return func() tea.Msg {
		client := jellyfin.NewClient(sess, logger)

		auth, err := client.Authenticate(context.Background())
		if err != nil {
			return ErrMsg{Err: err, Context: "login"}
		}

		sess.UserID = auth.UserID
		sess.AccessToken = auth.AccessToken
		if err := store.Save(sess); err != nil {
			return ErrMsg{Err: err, Context: "login"}
		}

		return LoggedInMsg{Session: sess}
	}
}

// logoutCmd clears the stored session; clearing is idempotent, so a
// repeat logout is harmless
func logoutCmd(store *session.Store, logger *slog.Logger) tea.Cmd {
	return func() tea.Msg {
		if err := store.Clear(); err != nil {
			logger.Error("failed to clear session", "error", err)
		}
		return LoggedOutMsg{}
	}
}

// loadViewCmd aggregates a browsing view
func loadViewCmd(agg *catalog.Aggregator, req domain.ViewRequest) tea.Cmd {
	return func() tea.Msg {
		result, err := agg.Aggregate(context.Background(), req)
		if err != nil {
			return ErrMsg{Err: err, Context: "aggregate"}
		}
		return ViewLoadedMsg{Request: req, Result: result}
	}
}

// searchCmd runs a catalog search
func searchCmd(svc *catalog.SearchService, query string) tea.Cmd {
	return func() tea.Msg {
		items, err := svc.Search(context.Background(), query)
		if err != nil {
			return ErrMsg{Err: err, Context: "search"}
		}
		return SearchResultsMsg{Query: query, Items: items}
	}
}

// loadDetailCmd fetches item details; for a series it also fetches the
// seasons and each season's episodes
func loadDetailCmd(client *jellyfin.Client, itemID string) tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()

		item, err := client.GetItemDetails(ctx, itemID)
		if err != nil {
			return ErrMsg{Err: err, Context: "detail"}
		}

		msg := DetailLoadedMsg{Item: item}
		if item.Kind != domain.KindSeries {
			return msg
		}

		seasons, err := client.GetSeasons(ctx, item.ID)
		if err != nil {
			return ErrMsg{Err: err, Context: "detail"}
		}
		msg.Seasons = seasons

		msg.Episodes = make(map[string][]domain.CatalogItem, len(seasons))
		for _, s := range seasons {
			episodes, err := client.GetEpisodes(ctx, item.ID, s.ID)
			if err != nil {
				return ErrMsg{Err: err, Context: "detail"}
			}
			msg.Episodes[s.ID] = episodes
		}

		return msg
	}
}
