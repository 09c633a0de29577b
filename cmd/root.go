package cmd

import (
	"context"
	stdErrors "errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"
	"github.com/lepinkainen/humanlog"
	"github.com/spf13/viper"

	"github.com/lepinkainen/bookexplorer/internal/config"
	"github.com/lepinkainen/bookexplorer/internal/cover"
	"github.com/lepinkainen/bookexplorer/internal/fileutil"
	"github.com/lepinkainen/bookexplorer/internal/metrics"
	"github.com/lepinkainen/bookexplorer/internal/openlibrary"
	"github.com/lepinkainen/bookexplorer/internal/render"
	"github.com/lepinkainen/bookexplorer/internal/server"
	"github.com/lepinkainen/bookexplorer/internal/shell"
	"github.com/lepinkainen/bookexplorer/internal/tui"
	"github.com/lepinkainen/bookexplorer/internal/view"
)

const (
	appName        = "bookexplorer"
	appDescription = "Search the OpenLibrary catalog and browse book details."
	envPrefix      = "BOOKEXPLORER"
)

var (
	runTUI    = tui.Run
	runShell  = shell.Run
	runServer = func(ctx context.Context, catalog view.Catalog, addr string) error {
		return server.New(catalog).Run(ctx, addr)
	}

	stdout io.Writer = os.Stdout
	stderr io.Writer = os.Stderr
)

// CLI represents the complete command structure for the bookexplorer application
type CLI struct {
	// Global flags
	Verbose bool   `short:"v" help:"Enable debug logging"`
	BaseURL string `help:"OpenLibrary API base URL (overrides openlibrary.baseurl)"`

	Search SearchCmd `cmd:"" help:"Search books by keyword"`
	Show   ShowCmd   `cmd:"" help:"Show details for one work"`
	Cover  CoverCmd  `cmd:"" help:"Save the cover image of a work to a file"`
	TUI    TUICmd    `cmd:"" name:"tui" help:"Browse books in an interactive terminal UI"`
	Shell  ShellCmd  `cmd:"" help:"Browse books in a line-oriented shell"`
	Serve  ServeCmd  `cmd:"" help:"Serve the book API over HTTP"`
	Config ConfigCmd `cmd:"" help:"Manage the configuration file"`
}

// SearchCmd represents the search command
type SearchCmd struct {
	Query  []string `arg:"" help:"Words to search for"`
	Format string   `short:"f" help:"Output format (text, json, yaml)" enum:"text,json,yaml" default:"text"`
}

// ShowCmd represents the show command
type ShowCmd struct {
	ID     string `arg:"" help:"Work id, e.g. OL45804W"`
	Format string `short:"f" help:"Output format (text, json, yaml)" enum:"text,json,yaml" default:"text"`
}

// CoverCmd represents the cover command
type CoverCmd struct {
	ID       string `arg:"" help:"Work id, e.g. OL45804W"`
	Size     string `short:"s" help:"Cover size (S, M, L)" default:"L"`
	Output   string `short:"o" help:"Output file (defaults to <id>-<size>.jpg)"`
	MaxWidth int    `help:"Scale covers wider than this down" default:"600"`
	Force    bool   `help:"Overwrite an existing output file"`
}

type TUICmd struct{}

type ShellCmd struct{}

// ServeCmd represents the serve command
type ServeCmd struct {
	Addr string `help:"Listen address (overrides server.addr)"`
}

// ConfigCmd groups configuration subcommands
type ConfigCmd struct {
	Init ConfigInitCmd `cmd:"" help:"Write a config file with default values"`
}

type ConfigInitCmd struct {
	Path  string `help:"Config file to write" default:"config.yaml"`
	Force bool   `help:"Overwrite an existing file"`
}

// Execute runs the Kong-based CLI
func Execute() {
	var cli CLI

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	kctx := kong.Parse(&cli,
		kong.Name(appName),
		kong.Description(appDescription),
		kong.UsageOnError(),
		kong.BindTo(ctx, (*context.Context)(nil)),
	)

	initLogging(cli.Verbose)
	if err := initConfig(); err != nil {
		slog.Error("Fatal error config file", "error", err)
		os.Exit(1)
	}
	updateGlobalConfig(&cli)

	if err := kctx.Run(); err != nil {
		slog.Error("Command failed", "error", err)
		stop()
		os.Exit(1)
	}
}

func initLogging(verbose bool) {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}

	// Logs go to stderr so command output on stdout stays machine-readable
	handler := humanlog.NewHandler(stderr, &humanlog.Options{
		Level: level,
	})

	slog.SetDefault(slog.New(handler))
}

func initConfig() error {
	if err := godotenv.Load(".env"); err == nil {
		slog.Debug("Loaded environment from .env")
	}

	config.SetDefaults()

	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !stdErrors.As(err, &notFound) {
			return err
		}
		slog.Debug("Config file not found, using defaults")
	}

	config.InitConfig()
	return nil
}

func updateGlobalConfig(cli *CLI) {
	config.SetBaseURL(cli.BaseURL)
}

func newCatalog() *openlibrary.Client {
	httpClient := &http.Client{Timeout: config.Timeout}
	return openlibrary.NewClient(
		openlibrary.WithBaseURL(config.BaseURL),
		openlibrary.WithCoverBaseURL(config.CoverBaseURL),
		openlibrary.WithUserAgent(config.UserAgent),
		openlibrary.WithHTTPClient(metrics.InstrumentDoer(httpClient, openlibrary.EndpointLabel)),
	)
}

func renderOptions() render.Options {
	return render.Options{
		CoverBaseURL:     config.CoverBaseURL,
		DescriptionLimit: config.DescriptionLimit,
	}
}

// Run methods for each command

func (s *SearchCmd) Run(ctx context.Context) error {
	format, err := render.ParseFormat(s.Format)
	if err != nil {
		return err
	}

	state, issued := view.NewSearchController(newCatalog()).Submit(ctx, strings.Join(s.Query, " "))
	if !issued {
		return openlibrary.ErrEmptyQuery
	}
	if state.Phase == view.PhaseError {
		return stdErrors.New(state.Err)
	}

	if format == render.FormatText {
		return render.SearchResults(stdout, state, renderOptions())
	}
	return render.Encode(stdout, format, state.Results)
}

func (s *ShowCmd) Run(ctx context.Context) error {
	format, err := render.ParseFormat(s.Format)
	if err != nil {
		return err
	}

	state := view.NewDetailController(newCatalog(), openlibrary.WorkID(s.ID)).Load(ctx)
	if state.Phase == view.PhaseError {
		return stdErrors.New(state.Err)
	}

	if format == render.FormatText {
		return render.Detail(stdout, state, renderOptions())
	}
	return render.Encode(stdout, format, state.Detail)
}

func (c *CoverCmd) Run(ctx context.Context) error {
	size, err := openlibrary.ParseCoverSize(c.Size)
	if err != nil {
		return err
	}

	id := openlibrary.WorkID(c.ID)
	catalog := newCatalog()

	output := c.Output
	if output == "" {
		output = fileutil.CoverFilename(id, string(size))
	}
	if fileutil.FileExists(output) && !c.Force {
		slog.Info("Cover file already exists, skipping", "path", output)
		_, err := fmt.Fprintf(stdout, "%s: %s already exists (use --force to overwrite)\n", id, output)
		return err
	}

	state := view.NewDetailController(catalog, id).Load(ctx)
	if state.Phase == view.PhaseError {
		return stdErrors.New(state.Err)
	}

	opts := cover.Options{Path: output, MaxWidth: c.MaxWidth, Progress: stderr}
	if state.Detail != nil && state.Detail.HasCover() {
		opts.URL = catalog.CoverURL(*state.Detail.CoverImageID, size)
	}

	result, err := cover.Save(ctx, &http.Client{Timeout: config.Timeout}, opts)
	if err != nil {
		return err
	}

	if result.Placeholder {
		_, err = fmt.Fprintf(stdout, "%s: %s (wrote placeholder %s)\n", id, render.NoCoverText, result.Path)
		return err
	}
	_, err = fmt.Fprintf(stdout, "%s: saved %dx%d cover to %s\n", id, result.Width, result.Height, result.Path)
	return err
}

func (t *TUICmd) Run(ctx context.Context) error {
	return runTUI(ctx, newCatalog(), renderOptions())
}

func (s *ShellCmd) Run(ctx context.Context) error {
	return runShell(ctx, newCatalog(), stdout, renderOptions())
}

func (s *ServeCmd) Run(ctx context.Context) error {
	config.SetServerAddr(s.Addr)
	return runServer(ctx, newCatalog(), config.ServerAddr)
}

func (c *ConfigInitCmd) Run() error {
	config.SetDefaults()

	var err error
	if c.Force {
		err = viper.WriteConfigAs(c.Path)
	} else {
		err = viper.SafeWriteConfigAs(c.Path)
	}
	if err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	slog.Info("Wrote default config file", "path", c.Path)
	return nil
}
