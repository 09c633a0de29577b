package view

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lepinkainen/bookexplorer/internal/book"
	"github.com/lepinkainen/bookexplorer/internal/openlibrary"
)

const (
	timeout = 2 * time.Second
	tick    = 5 * time.Millisecond
)

func TestDetailController_StartsLoading(t *testing.T) {
	catalog := newFakeCatalog()
	c := NewDetailController(catalog, "OL1W")

	state := c.State()
	assert.Equal(t, PhaseLoading, state.Phase)
	assert.Equal(t, "OL1W", state.ID)
	assert.Equal(t, "OL1W", c.ID())
	assert.Nil(t, state.Detail)
	assert.Equal(t, 0, catalog.detailCount(), "construction alone issues no request")
}

func TestDetailController_Success(t *testing.T) {
	catalog := newFakeCatalog()
	catalog.works["OL1W"] = &openlibrary.RawWork{Title: "Dune", Covers: []int{20}}
	catalog.editions["OL1W"] = &openlibrary.RawEditions{Entries: []openlibrary.RawEdition{{Covers: []int{10}}}}
	c := NewDetailController(catalog, "OL1W")

	state := c.Load(context.Background())
	assert.Equal(t, PhaseSuccess, state.Phase)
	require.NotNil(t, state.Detail)
	assert.Equal(t, "Dune", state.Detail.Title)
	require.NotNil(t, state.Detail.CoverImageID)
	assert.Equal(t, 10, *state.Detail.CoverImageID)
}

func TestDetailController_Error(t *testing.T) {
	catalog := newFakeCatalog()
	catalog.failIDs["OL404W"] = true
	c := NewDetailController(catalog, "OL404W")

	state := c.Load(context.Background())
	assert.Equal(t, PhaseError, state.Phase)
	assert.Equal(t, DetailErrorMessage, state.Err)
	assert.Nil(t, state.Detail)
	assert.Equal(t, 1, catalog.detailCount(), "failures are not retried")
}

func TestDetailController_RevisitRefetches(t *testing.T) {
	catalog := newFakeCatalog()
	catalog.works["OL1W"] = &openlibrary.RawWork{Title: "Dune"}

	NewDetailController(catalog, "OL1W").Load(context.Background())
	NewDetailController(catalog, "OL1W").Load(context.Background())

	assert.Equal(t, 2, catalog.detailCount())
}

func TestDetailController_DiscardsStaleCompletion(t *testing.T) {
	c := NewDetailController(newFakeCatalog(), "OL1W")

	older := c.Begin()
	newer := c.Begin()

	assert.False(t, c.Complete(older, book.BookDetail{ID: "OL1W", Title: "Old"}, nil))
	assert.Equal(t, PhaseLoading, c.State().Phase)

	assert.True(t, c.Complete(newer, book.BookDetail{ID: "OL1W", Title: "New"}, nil))
	assert.False(t, c.Complete(older, book.BookDetail{}, assert.AnError))

	state := c.State()
	assert.Equal(t, PhaseSuccess, state.Phase)
	assert.Equal(t, "New", state.Detail.Title)
}

func TestDetailController_SlowStaleLoadDoesNotClobber(t *testing.T) {
	catalog := newFakeCatalog()
	catalog.works["OL1W"] = &openlibrary.RawWork{Title: "Dune"}
	gate := make(chan struct{})
	catalog.gates["OL1W"] = gate
	c := NewDetailController(catalog, "OL1W")

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		c.Load(context.Background())
	}()
	require.Eventually(t, func() bool { return catalog.detailCount() == 1 }, timeout, tick)

	// A reload supersedes the in-flight request and fails on its own.
	ticket := c.Begin()
	require.True(t, c.Complete(ticket, book.BookDetail{}, assert.AnError))

	close(gate)
	wg.Wait()

	state := c.State()
	assert.Equal(t, PhaseError, state.Phase)
	assert.Equal(t, DetailErrorMessage, state.Err)
}

func TestDetailController_StateIsACopy(t *testing.T) {
	c := NewDetailController(newFakeCatalog(), "OL1W")
	ticket := c.Begin()
	c.Complete(ticket, book.BookDetail{ID: "OL1W", Title: "Dune"}, nil)

	state := c.State()
	state.Detail.Title = "mutated"

	assert.Equal(t, "Dune", c.State().Detail.Title)
}
