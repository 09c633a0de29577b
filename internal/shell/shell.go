// Package shell implements a line-oriented book browser on top of liner.
package shell

import (
	"context"
	stdErrors "errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/peterh/liner"

	"github.com/lepinkainen/bookexplorer/internal/errors"
	"github.com/lepinkainen/bookexplorer/internal/openlibrary"
	"github.com/lepinkainen/bookexplorer/internal/render"
	"github.com/lepinkainen/bookexplorer/internal/view"
)

const prompt = "books> "

const helpText = `Commands:
  <words>             search for books (same as "search <words>")
  search <words>      search for books
  open <n|id>         show result n of the last search, or a work id
  back                return to the last search results
  help                show this help
  quit                leave the shell
`

type prompter interface {
	Prompt(string) (string, error)
	AppendHistory(string)
	Close() error
}

var newPrompter = func() prompter {
	line := liner.NewLiner()
	line.SetCtrlCAborts(true)
	return line
}

// Shell holds one interactive session. The search screen persists for the
// session; the detail screen is rebuilt on every open.
type Shell struct {
	catalog view.Catalog
	out     io.Writer
	opts    render.Options

	search *view.SearchController
	detail *view.DetailController
}

// New creates a session writing to out.
func New(catalog view.Catalog, out io.Writer, opts render.Options) *Shell {
	return &Shell{
		catalog: catalog,
		out:     out,
		opts:    opts,
		search:  view.NewSearchController(catalog),
	}
}

// Execute runs one command line. Quitting is reported as a
// StopProcessingError.
func (s *Shell) Execute(ctx context.Context, line string) error {
	line = strings.TrimSpace(line)
	if line == "" {
		return nil
	}

	command, args, _ := strings.Cut(line, " ")
	args = strings.TrimSpace(args)

	switch strings.ToLower(command) {
	case "quit", "exit":
		return errors.NewStopProcessingError("user quit")
	case "help", "?":
		_, err := io.WriteString(s.out, helpText)
		return err
	case "search":
		return s.runSearch(ctx, args)
	case "open":
		return s.open(ctx, args)
	case "back":
		return s.back()
	}
	return s.runSearch(ctx, line)
}

func (s *Shell) runSearch(ctx context.Context, query string) error {
	ticket, normalized, ok := s.search.Begin(query)
	if !ok {
		return fmt.Errorf("search needs at least one word")
	}
	s.detail = nil

	if err := render.SearchResults(s.out, s.search.State(), s.opts); err != nil {
		return err
	}
	items, err := s.search.Fetch(ctx, normalized)
	s.search.Complete(ticket, items, err)

	return render.SearchResults(s.out, s.search.State(), s.opts)
}

func (s *Shell) open(ctx context.Context, arg string) error {
	if arg == "" {
		return fmt.Errorf("usage: open <n|id>")
	}

	id := openlibrary.WorkID(arg)
	if n, err := strconv.Atoi(arg); err == nil {
		results := s.search.State().Results
		if n < 1 || n > len(results) {
			return fmt.Errorf("no result %d in the last search", n)
		}
		id = results[n-1].ID
	}

	s.detail = view.NewDetailController(s.catalog, id)
	if _, err := fmt.Fprintln(s.out, render.LoadingDetailText); err != nil {
		return err
	}
	return render.Detail(s.out, s.detail.Load(ctx), s.opts)
}

func (s *Shell) back() error {
	if s.detail == nil {
		_, err := fmt.Fprintln(s.out, "Nothing to go back to.")
		return err
	}
	s.detail = nil

	state := s.search.State()
	if state.Phase == view.PhaseIdle {
		_, err := fmt.Fprintln(s.out, "No search yet.")
		return err
	}
	return render.SearchResults(s.out, state, s.opts)
}

// Run reads commands until the user quits, presses Ctrl-C or sends EOF.
func Run(ctx context.Context, catalog view.Catalog, out io.Writer, opts render.Options) error {
	p := newPrompter()
	defer func() { _ = p.Close() }()

	sh := New(catalog, out, opts)
	_, _ = fmt.Fprintln(out, `Type a search, or "help" for commands.`)

	for ctx.Err() == nil {
		line, err := p.Prompt(prompt)
		switch {
		case stdErrors.Is(err, liner.ErrPromptAborted), stdErrors.Is(err, io.EOF):
			return nil
		case err != nil:
			return fmt.Errorf("reading input: %w", err)
		}

		if strings.TrimSpace(line) == "" {
			continue
		}
		p.AppendHistory(line)

		if err := sh.Execute(ctx, line); err != nil {
			if errors.IsStopProcessingError(err) {
				return nil
			}
			_, _ = fmt.Fprintf(out, "Error: %v\n", err)
		}
	}
	return nil
}
