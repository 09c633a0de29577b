package view

import (
	"context"
	"log/slog"
	"sync"

	"github.com/lepinkainen/bookexplorer/internal/book"
)

// DetailState is a snapshot of the detail screen.
type DetailState struct {
	Phase  Phase
	ID     string
	Detail *book.BookDetail
	Err    string
}

// DetailController drives the detail screen for one work id. It starts in
// loading; a new controller is created for every visit, so nothing is
// carried over between navigations.
type DetailController struct {
	catalog Catalog
	id      string

	mu     sync.Mutex
	state  DetailState
	latest Ticket
}

// NewDetailController creates a controller for id in the loading state.
func NewDetailController(catalog Catalog, id string) *DetailController {
	return &DetailController{
		catalog: catalog,
		id:      id,
		state:   DetailState{Phase: PhaseLoading, ID: id},
	}
}

// ID returns the work id this controller shows.
func (c *DetailController) ID() string {
	return c.id
}

// State returns a copy of the current state.
func (c *DetailController) State() DetailState {
	c.mu.Lock()
	defer c.mu.Unlock()

	state := c.state
	if state.Detail != nil {
		detail := *state.Detail
		state.Detail = &detail
	}
	return state
}

// Begin (re-)enters loading and issues a new ticket.
func (c *DetailController) Begin() Ticket {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.latest++
	c.state = DetailState{Phase: PhaseLoading, ID: c.id}
	return c.latest
}

// Fetch runs both detail lookups and normalizes them. It does not touch
// controller state.
func (c *DetailController) Fetch(ctx context.Context) (book.BookDetail, error) {
	work, editions, err := c.catalog.FetchDetail(ctx, c.id)
	if err != nil {
		return book.BookDetail{}, err
	}
	return book.NormalizeWorkDetail(c.id, work, editions), nil
}

// Complete applies the outcome of the request identified by ticket. It
// returns false, leaving state untouched, when ticket is not the latest.
func (c *DetailController) Complete(ticket Ticket, detail book.BookDetail, err error) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if ticket == 0 || ticket != c.latest {
		slog.Debug("Discarding stale detail response", "id", c.id, "ticket", ticket, "latest", c.latest)
		return false
	}

	if err != nil {
		slog.Warn("Fetching book details failed", "id", c.id, "error", err)
		c.state = DetailState{Phase: PhaseError, ID: c.id, Err: DetailErrorMessage}
		return true
	}

	c.state = DetailState{Phase: PhaseSuccess, ID: c.id, Detail: &detail}
	return true
}

// Load runs a whole detail fetch synchronously.
func (c *DetailController) Load(ctx context.Context) DetailState {
	ticket := c.Begin()
	detail, err := c.Fetch(ctx)
	c.Complete(ticket, detail, err)
	return c.State()
}
