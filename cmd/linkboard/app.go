package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/pterm/pterm"

	"github.com/ale-ignas/linkboard/internal/client"
	"github.com/ale-ignas/linkboard/internal/config"
	"github.com/ale-ignas/linkboard/internal/dataset"
	"github.com/ale-ignas/linkboard/internal/models"
	"github.com/ale-ignas/linkboard/internal/presenter"
	"github.com/ale-ignas/linkboard/internal/ui"
	"github.com/ale-ignas/linkboard/internal/view"
	"github.com/ale-ignas/linkboard/internal/web"
)

// App holds the settings shared by all commands
type App struct {
	configPath string
	source     string
	proxy      string
	debug      bool
	progress   bool
	silence    bool

	cfg *config.AppConfig
}

// Init loads the configuration and applies flag overrides
func (a *App) Init() error {
	cfg, err := config.LoadConfig(a.configPath)
	if err != nil {
		return err
	}
	if a.source != "" {
		cfg.Source = a.source
	}
	if a.proxy != "" {
		cfg.Proxy = a.proxy
	}
	a.cfg = cfg

	if a.debug {
		log.Printf("Debug: using source %s (variant %s)", cfg.Source, cfg.Variant())
	}
	return nil
}

// LoadEntries loads the dataset once, falling back to the placeholder entry
func (a *App) LoadEntries(ctx context.Context) []models.Entry {
	loader := dataset.NewLoader(client.CreateHTTPClient(a.cfg.Proxy, false)).WithDebug(a.debug)
	if a.progress {
		loader = loader.WithProgress(os.Stderr)
	}
	return loader.Load(ctx, a.cfg.Source)
}

// Banner prints the banner unless silenced
func (a *App) Banner(w io.Writer) {
	ui.PrintBanner(w, a.silence)
}

// ListOptions are the flags of the list command
type ListOptions struct {
	Category   string
	Resource   string
	Sort       string
	Table      bool
	Hyperlinks bool
}

// List prints the filtered entries to w
func (a *App) List(ctx context.Context, w io.Writer, opts ListOptions) error {
	entries := a.LoadEntries(ctx)

	term := &ui.Terminal{Table: opts.Table, Hyperlinks: opts.Hyperlinks}
	p := presenter.New(entries, a.cfg.PresenterOptions(presenter.VariantSelect), term)
	p.Apply(presenter.ParseState(opts.Category, opts.Resource, opts.Sort))
	return p.Render(w)
}

// RenderOptions are the flags of the render command
type RenderOptions struct {
	Out      string
	Variant  string
	Category string
	Resource string
	Sort     string
}

// Render writes a static HTML page to opts.Out, or to w when Out is empty or "-"
func (a *App) Render(ctx context.Context, w io.Writer, opts RenderOptions) error {
	variant := a.cfg.Variant()
	if opts.Variant != "" {
		v, ok := presenter.ParseVariant(opts.Variant)
		if !ok {
			return fmt.Errorf("invalid variant %q: must be one of select, tags", opts.Variant)
		}
		variant = v
	}

	entries := a.LoadEntries(ctx)
	p := presenter.New(entries, a.cfg.PresenterOptions(variant), view.ForVariant(variant))
	p.Apply(presenter.ParseState(opts.Category, opts.Resource, opts.Sort))

	if opts.Out == "" || opts.Out == "-" {
		return p.Render(w)
	}

	f, err := os.Create(opts.Out)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", opts.Out, err)
	}
	if err := p.Render(f); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to write %s: %w", opts.Out, err)
	}

	pterm.Success.Printf("Wrote %d entries to %s\n", len(p.Visible()), opts.Out)
	return nil
}

// Domains prints the filter options of the dataset
func (a *App) Domains(ctx context.Context, w io.Writer) {
	entries := a.LoadEntries(ctx)
	opts := a.cfg.PresenterOptions("")
	ui.PrintDomains(w, presenter.DeriveDomains(entries), opts.Labels)
}

// Serve loads the dataset and serves it over HTTP until interrupted
func (a *App) Serve(ctx context.Context, addr string) error {
	if addr == "" {
		addr = a.cfg.Server.Addr
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	entries := a.LoadEntries(ctx)
	log.Printf("Loaded %d entries from %s", len(entries), a.cfg.Source)

	if a.cfg.Server.Username != "" && a.cfg.Server.Password != "" {
		log.Printf("Web server listening on http://localhost%s (API authentication enabled)", addr)
	} else {
		log.Printf("Web server listening on http://localhost%s", addr)
	}

	return web.NewServer(a.cfg, entries).ListenAndServe(ctx, addr)
}
