package tui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/lepinkainen/bookexplorer/internal/book"
	"github.com/lepinkainen/bookexplorer/internal/openlibrary"
	"github.com/lepinkainen/bookexplorer/internal/render"
)

type bookItem struct {
	book.SearchResultItem
}

func (i bookItem) Title() string       { return i.SearchResultItem.Title }
func (i bookItem) Description() string { return render.AuthorsLine(i.AuthorNames) }
func (i bookItem) FilterValue() string { return i.SearchResultItem.Title }

type itemStyles struct {
	normal      lipgloss.Style
	selected    lipgloss.Style
	titleStyle  lipgloss.Style
	authorStyle lipgloss.Style
	yearStyle   lipgloss.Style
	coverStyle  lipgloss.Style
}

func newItemStyles() itemStyles {
	asciiBorder := lipgloss.Border{
		Top:         "-",
		Bottom:      "-",
		Left:        "|",
		Right:       "|",
		TopLeft:     "+",
		TopRight:    "+",
		BottomLeft:  "+",
		BottomRight: "+",
	}

	container := lipgloss.NewStyle().
		Border(asciiBorder).
		BorderForeground(lipgloss.Color("62")).
		Padding(0, 1).
		Foreground(lipgloss.Color("252"))

	selected := container.Copy().
		BorderForeground(lipgloss.Color("214")).
		Foreground(lipgloss.Color("230")).
		Background(lipgloss.Color("237"))

	return itemStyles{
		normal:   container,
		selected: selected,
		titleStyle: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("254")),
		authorStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("110")),
		yearStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("178")),
		coverStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("247")).
			Faint(true),
	}
}

// bookDelegate draws a result as a bordered card.
type bookDelegate struct {
	styles       itemStyles
	coverBaseURL string
}

func newDelegate(coverBaseURL string) bookDelegate {
	return bookDelegate{styles: newItemStyles(), coverBaseURL: coverBaseURL}
}

func (d bookDelegate) Height() int                         { return 6 }
func (d bookDelegate) Spacing() int                        { return 1 }
func (d bookDelegate) Update(tea.Msg, *list.Model) tea.Cmd { return nil }

func (d bookDelegate) Render(w io.Writer, m list.Model, idx int, item list.Item) {
	result, ok := item.(bookItem)
	if !ok {
		return
	}

	width := m.Width() - 6

	year := ""
	if result.FirstPublishYear != nil {
		year = fmt.Sprintf("Published: %d", *result.FirstPublishYear)
	}

	content := lipgloss.JoinVertical(lipgloss.Left,
		d.styles.titleStyle.Render(render.Truncate(result.SearchResultItem.Title, width)),
		d.styles.authorStyle.Render(render.Truncate(render.AuthorsLine(result.AuthorNames), width)),
		d.styles.yearStyle.Render(year),
		d.styles.coverStyle.Render(render.CoverLine(d.coverBaseURL, result.CoverImageID, openlibrary.CoverMedium)),
	)

	container := d.styles.normal
	if idx == m.Index() {
		container = d.styles.selected
	}
	_, _ = fmt.Fprint(w, container.Render(content))
}
