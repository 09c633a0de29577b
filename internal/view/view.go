// Package view holds the per-screen state machines that sit between a UI
// and the catalog. They know nothing about terminals or HTTP: a UI calls
// Begin, performs Fetch wherever it likes, and reports the outcome with
// Complete. Every request carries a Ticket; completions for anything but
// the most recently issued ticket are discarded, so a slow stale response
// can never overwrite a newer one.
package view

import (
	"context"

	"github.com/lepinkainen/bookexplorer/internal/openlibrary"
)

// User-facing failure messages. Transport failures are not distinguished.
const (
	SearchErrorMessage = "Failed to fetch books. Please try again."
	DetailErrorMessage = "Failed to fetch book details. The book might not exist or there was a network error."
)

// Phase is the coarse state of a screen.
type Phase int

const (
	// PhaseIdle means nothing has been requested yet (search screen only).
	PhaseIdle Phase = iota
	// PhaseLoading means a request is outstanding.
	PhaseLoading
	// PhaseSuccess means the latest request resolved with data.
	PhaseSuccess
	// PhaseError means the latest request failed.
	PhaseError
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseLoading:
		return "loading"
	case PhaseSuccess:
		return "success"
	case PhaseError:
		return "error"
	}
	return "unknown"
}

// Ticket identifies one issued request. Tickets increase monotonically per
// controller; zero is never issued.
type Ticket uint64

// Catalog is the subset of the OpenLibrary client the controllers use.
type Catalog interface {
	Search(ctx context.Context, query string) ([]openlibrary.RawSearchEntry, error)
	FetchDetail(ctx context.Context, id string) (*openlibrary.RawWork, *openlibrary.RawEditions, error)
}

// Compile-time check that the real client satisfies Catalog.
var _ Catalog = (*openlibrary.Client)(nil)
