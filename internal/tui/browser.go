// Package tui provides the interactive terminal book browser.
package tui

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/lepinkainen/bookexplorer/internal/book"
	"github.com/lepinkainen/bookexplorer/internal/render"
	"github.com/lepinkainen/bookexplorer/internal/view"
)

const (
	defaultListWidth  = 72
	defaultListHeight = 20
)

var runProgram = func(m tea.Model) (tea.Model, error) {
	return tea.NewProgram(m, tea.WithAltScreen()).Run()
}

type screen int

const (
	searchScreen screen = iota
	detailScreen
)

type searchDoneMsg struct {
	ticket view.Ticket
	items  []book.SearchResultItem
	err    error
}

// detailDoneMsg remembers which controller issued it: a controller that was
// left via back navigation must not receive late results.
type detailDoneMsg struct {
	ctrl   *view.DetailController
	ticket view.Ticket
	detail book.BookDetail
	err    error
}

// Model is the bubbletea model for the browser. The search screen lives for
// the whole session; a detail screen is created on every open and dropped
// on back.
type Model struct {
	ctx     context.Context
	catalog view.Catalog
	opts    render.Options

	search *view.SearchController
	detail *view.DetailController
	screen screen

	input       textinput.Model
	spinner     spinner.Model
	results     list.Model
	listFocused bool
	width       int
}

// NewModel creates a browser on the search screen.
func NewModel(ctx context.Context, catalog view.Catalog, opts render.Options) *Model {
	input := textinput.New()
	input.Placeholder = "Search by title, author or keyword"
	input.CharLimit = 200
	input.Width = defaultListWidth - 4
	input.Focus()

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))

	l := list.New(nil, newDelegate(opts.CoverBaseURL), defaultListWidth, defaultListHeight)
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.SetShowHelp(false)
	l.SetShowTitle(false)
	l.DisableQuitKeybindings()
	l.Styles.NoItems = lipgloss.NewStyle()

	return &Model{
		ctx:     ctx,
		catalog: catalog,
		opts:    opts,
		search:  view.NewSearchController(catalog),
		input:   input,
		spinner: sp,
		results: l,
		width:   defaultListWidth,
	}
}

func (m *Model) Init() tea.Cmd { return textinput.Blink }

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if m.screen == detailScreen {
			return m.updateDetail(msg)
		}
		return m.updateSearch(msg)
	case tea.WindowSizeMsg:
		m.width = clamp(defaultListWidth, msg.Width-4, 40)
		m.results.SetSize(m.width, clamp(defaultListHeight, msg.Height-8, 5))
		return m, nil
	case searchDoneMsg:
		if m.search.Complete(msg.ticket, msg.items, msg.err) {
			m.showResults()
		}
		return m, nil
	case detailDoneMsg:
		if msg.ctrl == m.detail {
			m.detail.Complete(msg.ticket, msg.detail, msg.err)
		}
		return m, nil
	case spinner.TickMsg:
		if !m.loading() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	if m.screen == searchScreen && !m.listFocused {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *Model) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.listFocused {
		switch msg.String() {
		case "enter":
			if selected, ok := m.results.SelectedItem().(bookItem); ok {
				return m, m.open(selected.ID)
			}
			return m, nil
		case "/", "tab":
			m.listFocused = false
			return m, m.input.Focus()
		case "esc", "q":
			return m, tea.Quit
		}
		var cmd tea.Cmd
		m.results, cmd = m.results.Update(msg)
		return m, cmd
	}

	switch msg.String() {
	case "enter":
		return m, m.submit()
	case "esc":
		return m, tea.Quit
	case "tab", "down":
		if len(m.search.State().Results) > 0 {
			m.focusList()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) updateDetail(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "backspace", "b":
		m.screen = searchScreen
		m.detail = nil
		return m, nil
	case "r":
		if m.detail.State().Phase != view.PhaseLoading {
			return m, tea.Batch(m.loadDetail(), m.spinner.Tick)
		}
	case "q":
		return m, tea.Quit
	}
	return m, nil
}

func (m *Model) submit() tea.Cmd {
	ticket, query, ok := m.search.Begin(m.input.Value())
	if !ok {
		return nil
	}

	ctrl, ctx := m.search, m.ctx
	fetch := func() tea.Msg {
		items, err := ctrl.Fetch(ctx, query)
		return searchDoneMsg{ticket: ticket, items: items, err: err}
	}
	return tea.Batch(fetch, m.spinner.Tick)
}

func (m *Model) open(id string) tea.Cmd {
	m.detail = view.NewDetailController(m.catalog, id)
	m.screen = detailScreen
	return tea.Batch(m.loadDetail(), m.spinner.Tick)
}

func (m *Model) loadDetail() tea.Cmd {
	ctrl, ctx := m.detail, m.ctx
	ticket := ctrl.Begin()
	return func() tea.Msg {
		detail, err := ctrl.Fetch(ctx)
		return detailDoneMsg{ctrl: ctrl, ticket: ticket, detail: detail, err: err}
	}
}

func (m *Model) showResults() {
	state := m.search.State()
	items := make([]list.Item, len(state.Results))
	for i, result := range state.Results {
		items[i] = bookItem{SearchResultItem: result}
	}
	_ = m.results.SetItems(items)
	m.results.Select(0)

	if len(items) > 0 {
		m.focusList()
	}
}

func (m *Model) focusList() {
	m.listFocused = true
	m.input.Blur()
}

func (m *Model) loading() bool {
	if m.screen == detailScreen {
		return m.detail != nil && m.detail.State().Phase == view.PhaseLoading
	}
	return m.search.State().Phase == view.PhaseLoading
}

func (m *Model) View() string {
	header := headerStyle.Render("Book Explorer")

	if m.screen == detailScreen {
		help := helpStyle.Render("esc back | r reload | q quit")
		return lipgloss.JoinVertical(lipgloss.Left, header, m.detailView(), help)
	}

	help := "Enter search | Tab results | Esc quit"
	if m.listFocused {
		help = "Up/Down navigate | Enter open | / search | q quit"
	}
	return lipgloss.JoinVertical(lipgloss.Left, header, m.input.View(), "", m.searchView(), helpStyle.Render(help))
}

func (m *Model) searchView() string {
	state := m.search.State()
	switch state.Phase {
	case view.PhaseIdle:
		return hintStyle.Render("Type a title, author or keyword and press Enter.")
	case view.PhaseLoading:
		return fmt.Sprintf("%s %s", m.spinner.View(), render.SearchingText)
	case view.PhaseError:
		return errorStyle.Render(state.Err)
	}

	if state.NoResults() {
		return hintStyle.Render(render.NoResultsText)
	}
	return m.results.View()
}

func (m *Model) detailView() string {
	state := m.detail.State()
	switch state.Phase {
	case view.PhaseLoading:
		return fmt.Sprintf("%s %s", m.spinner.View(), render.LoadingDetailText)
	case view.PhaseError:
		return errorStyle.Render(state.Err)
	}

	if state.Detail == nil {
		return errorStyle.Render(render.NoDetailText)
	}
	return detailStyle.Width(m.width).Render(render.DetailText(*state.Detail, m.opts))
}

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("214")).
			MarginBottom(1)

	hintStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("244"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("161")).
			Bold(true)

	detailStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")).
			Padding(0, 1)

	helpStyle = lipgloss.NewStyle().
			MarginTop(1).
			Foreground(lipgloss.Color("244"))
)

// Run starts the browser and blocks until the user quits.
func Run(ctx context.Context, catalog view.Catalog, opts render.Options) error {
	_, err := runProgram(NewModel(ctx, catalog, opts))
	return err
}

func clamp(defaultValue, available, minimum int) int {
	width := defaultValue
	if available > 0 && available < defaultValue {
		width = available
	}
	if width < minimum {
		width = minimum
	}
	return width
}
