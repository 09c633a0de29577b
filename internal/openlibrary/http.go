package openlibrary

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/lepinkainen/bookexplorer/internal/errors"
)

// getJSON performs a single GET and decodes the JSON body into target.
// Every failure is reported as an *errors.TransportError; there are no retries.
func (c *Client) getJSON(ctx context.Context, op, endpoint string, target any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return errors.NewTransportError(op, fmt.Errorf("creating request: %w", err))
	}
	req.Header.Set("Accept", "application/json")
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		slog.Debug("OpenLibrary request failed", "op", op, "url", endpoint, "error", err)
		return errors.NewTransportError(op, err)
	}
	defer func() { _ = resp.Body.Close() }()

	slog.Debug("OpenLibrary response", "op", op, "url", endpoint, "status", resp.StatusCode, "duration", time.Since(start))

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return errors.NewStatusError(op, resp.StatusCode, strings.TrimSpace(string(body)))
	}

	if err := json.NewDecoder(resp.Body).Decode(target); err != nil {
		return errors.NewTransportError(op, fmt.Errorf("decoding response: %w", err))
	}

	return nil
}
