package openlibrary

import (
	"context"
	"fmt"
	"net/url"

	"golang.org/x/sync/errgroup"
)

// FetchWork retrieves the canonical work record for an id such as "OL45883W".
func (c *Client) FetchWork(ctx context.Context, id string) (*RawWork, error) {
	endpoint := fmt.Sprintf("%s%s.json", c.baseURL, WorkKey(url.PathEscape(id)))

	var work RawWork
	if err := c.getJSON(ctx, OpWork, endpoint, &work); err != nil {
		return nil, err
	}
	return &work, nil
}

// FetchEditionsCoverCandidate retrieves at most one edition of the work.
// It exists to find cover art when the work record has none of its own.
func (c *Client) FetchEditionsCoverCandidate(ctx context.Context, id string) (*RawEditions, error) {
	endpoint := fmt.Sprintf("%s%s/editions.json?limit=1", c.baseURL, WorkKey(url.PathEscape(id)))

	var editions RawEditions
	if err := c.getJSON(ctx, OpEditions, endpoint, &editions); err != nil {
		return nil, err
	}
	return &editions, nil
}

// FetchDetail issues FetchWork and FetchEditionsCoverCandidate concurrently
// and waits for both. If either fails the whole fetch fails.
func (c *Client) FetchDetail(ctx context.Context, id string) (*RawWork, *RawEditions, error) {
	var (
		work     *RawWork
		editions *RawEditions
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		work, err = c.FetchWork(gctx, id)
		return err
	})
	g.Go(func() error {
		var err error
		editions, err = c.FetchEditionsCoverCandidate(gctx, id)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return work, editions, nil
}
