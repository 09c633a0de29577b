// Package render turns normalized records and view states into text for
// the terminal front ends.
package render

import (
	"fmt"
	"html"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"

	"github.com/lepinkainen/bookexplorer/internal/openlibrary"
)

const (
	NoCoverText       = "No cover available"
	UnknownAuthorText = "Unknown author"
	NoResultsText     = "No books found. Try a different search."
	SearchingText     = "Searching books..."
	LoadingDetailText = "Loading book details..."
	NoDetailText      = "Book details not available"

	defaultDescriptionLimit = 500
	ellipsis                = "..."
)

// Options controls presentation details.
type Options struct {
	CoverBaseURL     string
	DescriptionLimit int
}

func (o Options) descriptionLimit() int {
	if o.DescriptionLimit <= 0 {
		return defaultDescriptionLimit
	}
	return o.DescriptionLimit
}

// AuthorsLine joins author names for a result card.
func AuthorsLine(names []string) string {
	if len(names) == 0 {
		return UnknownAuthorText
	}
	return strings.Join(names, ", ")
}

// CoverLine returns the cover URL for the given size, or a placeholder text.
func CoverLine(base string, coverID *int, size openlibrary.CoverSize) string {
	if coverID == nil {
		return NoCoverText
	}
	return openlibrary.CoverURL(base, *coverID, size)
}

// Truncate cuts s to limit runes and appends "..." when it was longer.
func Truncate(s string, limit int) string {
	if limit <= 0 {
		return s
	}
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit]) + ellipsis
}

var (
	stripPolicy     *bluemonday.Policy
	stripPolicyOnce sync.Once
)

// PlainText removes any markup from upstream text and collapses runs of
// blank lines. Catalog descriptions occasionally carry HTML fragments.
func PlainText(s string) string {
	stripPolicyOnce.Do(func() {
		stripPolicy = bluemonday.StrictPolicy()
	})

	cleaned := html.UnescapeString(stripPolicy.Sanitize(s))
	cleaned = strings.ReplaceAll(cleaned, "\r\n", "\n")

	lines := strings.Split(cleaned, "\n")
	out := make([]string, 0, len(lines))
	blank := false
	for _, line := range lines {
		line = strings.TrimRight(line, " \t")
		if line == "" {
			if blank || len(out) == 0 {
				continue
			}
			blank = true
		} else {
			blank = false
		}
		out = append(out, line)
	}
	return strings.TrimSpace(strings.Join(out, "\n"))
}

// Description prepares a description for display: plain text, truncated.
func Description(s string, opts Options) string {
	return Truncate(PlainText(s), opts.descriptionLimit())
}

func yearLine(year *int) string {
	if year == nil {
		return ""
	}
	return fmt.Sprintf("Published: %d", *year)
}
