package view

import (
	"context"
	"log/slog"
	"slices"
	"sync"

	"github.com/lepinkainen/bookexplorer/internal/book"
	"github.com/lepinkainen/bookexplorer/internal/openlibrary"
)

// SearchState is a snapshot of the search screen.
type SearchState struct {
	Phase   Phase
	Query   string
	Results []book.SearchResultItem
	Err     string
}

// NoResults reports a successful search that matched nothing.
func (s SearchState) NoResults() bool {
	return s.Phase == PhaseSuccess && len(s.Results) == 0
}

// SearchController drives the search screen:
// idle -> loading -> success|error, and any state -> loading on a new submit.
type SearchController struct {
	catalog Catalog

	mu     sync.Mutex
	state  SearchState
	latest Ticket
}

// NewSearchController creates a controller in the idle state.
func NewSearchController(catalog Catalog) *SearchController {
	return &SearchController{
		catalog: catalog,
		state:   SearchState{Phase: PhaseIdle},
	}
}

// State returns a copy of the current state.
func (c *SearchController) State() SearchState {
	c.mu.Lock()
	defer c.mu.Unlock()

	state := c.state
	if state.Results != nil {
		state.Results = slices.Clone(state.Results)
	}
	return state
}

// Begin moves to loading for query and issues a new ticket. A blank query
// is ignored: the state is unchanged and ok is false.
func (c *SearchController) Begin(query string) (ticket Ticket, normalized string, ok bool) {
	normalized = openlibrary.NormalizeQuery(query)
	if normalized == "" {
		return 0, "", false
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.latest++
	c.state = SearchState{Phase: PhaseLoading, Query: normalized}
	return c.latest, normalized, true
}

// Fetch runs the catalog search and normalizes the result. It does not
// touch controller state.
func (c *SearchController) Fetch(ctx context.Context, query string) ([]book.SearchResultItem, error) {
	raw, err := c.catalog.Search(ctx, query)
	if err != nil {
		return nil, err
	}
	return book.NormalizeSearchResponse(raw), nil
}

// Complete applies the outcome of the request identified by ticket. It
// returns false, leaving state untouched, when ticket is not the latest.
func (c *SearchController) Complete(ticket Ticket, items []book.SearchResultItem, err error) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if ticket == 0 || ticket != c.latest {
		slog.Debug("Discarding stale search response", "ticket", ticket, "latest", c.latest)
		return false
	}

	if err != nil {
		slog.Warn("Search failed", "query", c.state.Query, "error", err)
		c.state = SearchState{Phase: PhaseError, Query: c.state.Query, Err: SearchErrorMessage}
		return true
	}

	if items == nil {
		items = []book.SearchResultItem{}
	}
	c.state = SearchState{Phase: PhaseSuccess, Query: c.state.Query, Results: items}
	return true
}

// Submit runs a whole search synchronously. issued is false when the query
// was blank and no request was made.
func (c *SearchController) Submit(ctx context.Context, query string) (state SearchState, issued bool) {
	ticket, normalized, ok := c.Begin(query)
	if !ok {
		return c.State(), false
	}

	items, err := c.Fetch(ctx, normalized)
	c.Complete(ticket, items, err)
	return c.State(), true
}
