package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/lepinkainen/bookexplorer/internal/book"
	"github.com/lepinkainen/bookexplorer/internal/openlibrary"
	"github.com/lepinkainen/bookexplorer/internal/view"
)

// ResultCard formats one search result, numbered from 1.
func ResultCard(index int, item book.SearchResultItem, opts Options) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%2d. %s\n", index, item.Title)
	fmt.Fprintf(&sb, "    %s\n", AuthorsLine(item.AuthorNames))
	if line := yearLine(item.FirstPublishYear); line != "" {
		fmt.Fprintf(&sb, "    %s\n", line)
	}
	fmt.Fprintf(&sb, "    Cover: %s\n", CoverLine(opts.CoverBaseURL, item.CoverImageID, openlibrary.CoverMedium))
	fmt.Fprintf(&sb, "    ID: %s\n", item.ID)
	return sb.String()
}

// SearchResults writes the search screen for the given state.
func SearchResults(w io.Writer, state view.SearchState, opts Options) error {
	var sb strings.Builder

	switch state.Phase {
	case view.PhaseIdle:
		return nil
	case view.PhaseLoading:
		sb.WriteString(SearchingText + "\n")
	case view.PhaseError:
		sb.WriteString(state.Err + "\n")
	case view.PhaseSuccess:
		if state.NoResults() {
			sb.WriteString(NoResultsText + "\n")
			break
		}
		for i, item := range state.Results {
			if i > 0 {
				sb.WriteString("\n")
			}
			sb.WriteString(ResultCard(i+1, item, opts))
		}
	}

	_, err := io.WriteString(w, sb.String())
	return err
}

// DetailText formats a full book record.
func DetailText(detail book.BookDetail, opts Options) string {
	var sb strings.Builder

	sb.WriteString(detail.Title + "\n")
	if len(detail.AuthorNames) > 0 {
		fmt.Fprintf(&sb, "Author(s): %s\n", strings.Join(detail.AuthorNames, ", "))
	}
	fmt.Fprintf(&sb, "First published: %s\n", detail.FirstPublished)
	fmt.Fprintf(&sb, "Cover: %s\n", CoverLine(opts.CoverBaseURL, detail.CoverImageID, openlibrary.CoverLarge))

	if desc := Description(detail.Description, opts); desc != "" {
		sb.WriteString("\nDescription:\n")
		sb.WriteString(desc + "\n")
	}

	if len(detail.Subjects) > 0 {
		sb.WriteString("\nSubjects: ")
		sb.WriteString(strings.Join(detail.Subjects, ", "))
		sb.WriteString("\n")
	}

	return sb.String()
}

// Detail writes the detail screen for the given state.
func Detail(w io.Writer, state view.DetailState, opts Options) error {
	var text string

	switch state.Phase {
	case view.PhaseLoading, view.PhaseIdle:
		text = LoadingDetailText + "\n"
	case view.PhaseError:
		text = state.Err + "\n"
	case view.PhaseSuccess:
		if state.Detail == nil {
			text = NoDetailText + "\n"
			break
		}
		text = DetailText(*state.Detail, opts)
	}

	_, err := io.WriteString(w, text)
	return err
}
