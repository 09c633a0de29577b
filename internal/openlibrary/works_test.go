package openlibrary

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lepinkainen/bookexplorer/internal/errors"
)

const duneWork = `{
	"key": "/works/OL1W",
	"title": "Dune",
	"description": {"type": "/type/text", "value": "A desert planet..."},
	"authors": [{"author": {"key": "/authors/OL1A"}}],
	"covers": [11, 12],
	"subjects": ["Fiction", {"name": "Science fiction"}]
}`

func TestFetchWork(t *testing.T) {
	var capturedPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		capturedPath = r.URL.Path
		_, _ = w.Write([]byte(duneWork))
	}))
	defer server.Close()

	client := NewClient(WithBaseURL(server.URL))

	work, err := client.FetchWork(context.Background(), "OL1W")
	require.NoError(t, err)
	assert.Equal(t, "/works/OL1W.json", capturedPath)
	assert.Equal(t, "Dune", work.Title)
	assert.Equal(t, []int{11, 12}, work.Covers)
	require.Len(t, work.Authors, 1)
	require.NotNil(t, work.Authors[0].Author)
	assert.Equal(t, "/authors/OL1A", work.Authors[0].Author.Key)
	assert.IsType(t, map[string]any{}, work.Description)
	assert.Len(t, work.Subjects, 2)
}

func TestFetchEditionsCoverCandidate(t *testing.T) {
	var capturedPath, capturedLimit string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		capturedPath = r.URL.Path
		capturedLimit = r.URL.Query().Get("limit")
		_, _ = w.Write([]byte(`{"size": 42, "entries": [{"key": "/books/OL1M", "covers": [99]}]}`))
	}))
	defer server.Close()

	client := NewClient(WithBaseURL(server.URL))

	editions, err := client.FetchEditionsCoverCandidate(context.Background(), "OL1W")
	require.NoError(t, err)
	assert.Equal(t, "/works/OL1W/editions.json", capturedPath)
	assert.Equal(t, "1", capturedLimit)
	require.Len(t, editions.Entries, 1)
	assert.Equal(t, []int{99}, editions.Entries[0].Covers)
}

func TestFetchDetail_IssuesLookupsConcurrently(t *testing.T) {
	// Each handler blocks until both requests have arrived. A sequential
	// implementation would never release the barrier.
	var arrived sync.WaitGroup
	arrived.Add(2)
	released := make(chan struct{})
	go func() {
		arrived.Wait()
		close(released)
	}()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		arrived.Done()
		select {
		case <-released:
		case <-time.After(2 * time.Second):
			w.WriteHeader(http.StatusGatewayTimeout)
			return
		}
		switch r.URL.Path {
		case "/works/OL1W.json":
			_, _ = w.Write([]byte(duneWork))
		case "/works/OL1W/editions.json":
			_, _ = w.Write([]byte(`{"entries": []}`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer server.Close()

	client := NewClient(WithBaseURL(server.URL))

	work, editions, err := client.FetchDetail(context.Background(), "OL1W")
	require.NoError(t, err)
	assert.Equal(t, "Dune", work.Title)
	require.NotNil(t, editions)
	assert.Empty(t, editions.Entries)
}

func TestFetchDetail_FailsWhenEitherLookupFails(t *testing.T) {
	tests := []struct {
		name       string
		failingURL string
	}{
		{name: "work fails", failingURL: "/works/OL1W.json"},
		{name: "editions fails", failingURL: "/works/OL1W/editions.json"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if r.URL.Path == tt.failingURL {
					w.WriteHeader(http.StatusNotFound)
					return
				}
				if r.URL.Path == "/works/OL1W.json" {
					_, _ = w.Write([]byte(duneWork))
					return
				}
				_, _ = w.Write([]byte(`{"entries": []}`))
			}))
			defer server.Close()

			client := NewClient(WithBaseURL(server.URL))

			work, editions, err := client.FetchDetail(context.Background(), "OL1W")
			require.Error(t, err)
			assert.True(t, errors.IsTransportError(err))
			assert.Nil(t, work)
			assert.Nil(t, editions)
		})
	}
}
