package tui

import (
	"github.com/TryLovingMichael/jellyflix-home/internal/domain"
)

// Message types for the TUI

// ErrMsg represents an error from an async operation
type ErrMsg struct {
	Err     error
	Context string
}

// Error implements the error interface
func (e ErrMsg) Error() string {
	if e.Context != "" {
		return e.Context + ": " + e.Err.Error()
	}
	return e.Err.Error()
}

// LoggedInMsg signals that authentication succeeded and the session
// has been persisted
type LoggedInMsg struct {
	Session domain.Session
}

// ViewLoadedMsg signals that a browsing view has been aggregated
type ViewLoadedMsg struct {
	Request domain.ViewRequest
	Result  *domain.ViewResult
}

// SearchResultsMsg signals that search results have arrived
type SearchResultsMsg struct {
	Query string
	Items []domain.CatalogItem
}

// DetailLoadedMsg signals that item details (and, for series, seasons
// plus per-season episodes) have been fetched
type DetailLoadedMsg struct {
	Item     *domain.CatalogItem
	Seasons  []domain.CatalogItem
	Episodes map[string][]domain.CatalogItem
}

// LoggedOutMsg signals that the session has been cleared
type LoggedOutMsg struct{}
