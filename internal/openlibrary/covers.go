package openlibrary

import (
	"fmt"
	"strings"
)

// CoverSize represents cover image size options
type CoverSize string

const (
	CoverSmall  CoverSize = "S"
	CoverMedium CoverSize = "M"
	CoverLarge  CoverSize = "L"
)

// ParseCoverSize accepts S, M or L in either case.
func ParseCoverSize(s string) (CoverSize, error) {
	switch CoverSize(strings.ToUpper(strings.TrimSpace(s))) {
	case CoverSmall:
		return CoverSmall, nil
	case CoverMedium:
		return CoverMedium, nil
	case CoverLarge:
		return CoverLarge, nil
	}
	return "", fmt.Errorf("invalid cover size %q (want S, M or L)", s)
}

// CoverURL builds the image URL for a cover id. The image itself is never
// fetched by the client.
func CoverURL(base string, coverID int, size CoverSize) string {
	return fmt.Sprintf("%s/b/id/%d-%s.jpg", strings.TrimSuffix(base, "/"), coverID, size)
}

// CoverURL builds the image URL for a cover id on this client's cover host.
func (c *Client) CoverURL(coverID int, size CoverSize) string {
	return CoverURL(c.coverBaseURL, coverID, size)
}
