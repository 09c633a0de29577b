package view

import (
	"context"
	"sync"

	"github.com/lepinkainen/bookexplorer/internal/errors"
	"github.com/lepinkainen/bookexplorer/internal/openlibrary"
)

// fakeCatalog answers from fixed tables. A query or id listed in gates
// blocks until its channel is closed.
type fakeCatalog struct {
	mu          sync.Mutex
	searches    []string
	details     []string
	results     map[string][]openlibrary.RawSearchEntry
	works       map[string]*openlibrary.RawWork
	editions    map[string]*openlibrary.RawEditions
	failQueries map[string]bool
	failIDs     map[string]bool
	gates       map[string]chan struct{}
}

func newFakeCatalog() *fakeCatalog {
	return &fakeCatalog{
		results:     map[string][]openlibrary.RawSearchEntry{},
		works:       map[string]*openlibrary.RawWork{},
		editions:    map[string]*openlibrary.RawEditions{},
		failQueries: map[string]bool{},
		failIDs:     map[string]bool{},
		gates:       map[string]chan struct{}{},
	}
}

func (f *fakeCatalog) wait(key string) {
	f.mu.Lock()
	gate := f.gates[key]
	f.mu.Unlock()
	if gate != nil {
		<-gate
	}
}

func (f *fakeCatalog) Search(_ context.Context, query string) ([]openlibrary.RawSearchEntry, error) {
	f.mu.Lock()
	f.searches = append(f.searches, query)
	f.mu.Unlock()

	f.wait(query)

	if f.failQueries[query] {
		return nil, errors.NewStatusError(openlibrary.OpSearch, 500, "boom")
	}
	return f.results[query], nil
}

func (f *fakeCatalog) FetchDetail(_ context.Context, id string) (*openlibrary.RawWork, *openlibrary.RawEditions, error) {
	f.mu.Lock()
	f.details = append(f.details, id)
	f.mu.Unlock()

	f.wait(id)

	if f.failIDs[id] {
		return nil, nil, errors.NewStatusError(openlibrary.OpWork, 404, "not found")
	}
	return f.works[id], f.editions[id], nil
}

func (f *fakeCatalog) searchCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.searches)
}

func (f *fakeCatalog) detailCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.details)
}
