package openlibrary

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"strconv"
	"strings"

	"golang.org/x/text/unicode/norm"
)

const searchFields = "key,title,author_name,first_publish_year,cover_i"

// NormalizeQuery trims surrounding whitespace and applies Unicode NFC so
// that composed and decomposed input hit the same index terms.
func NormalizeQuery(query string) string {
	return norm.NFC.String(strings.TrimSpace(query))
}

// Search runs a keyword search and returns the raw documents in the order
// the upstream ranked them. A blank query returns ErrEmptyQuery without
// issuing a request.
func (c *Client) Search(ctx context.Context, query string) ([]RawSearchEntry, error) {
	query = NormalizeQuery(query)
	if query == "" {
		return nil, ErrEmptyQuery
	}

	params := url.Values{}
	params.Set("q", query)
	params.Set("fields", searchFields)
	params.Set("limit", strconv.Itoa(SearchLimit))

	endpoint := fmt.Sprintf("%s/search.json?%s", c.baseURL, params.Encode())

	var response RawSearchResponse
	if err := c.getJSON(ctx, OpSearch, endpoint, &response); err != nil {
		return nil, err
	}

	slog.Debug("OpenLibrary search", "query", query, "found", response.NumFound, "returned", len(response.Docs))

	if response.Docs == nil {
		return []RawSearchEntry{}, nil
	}
	return response.Docs, nil
}
