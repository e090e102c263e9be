package main

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/harlamovads/Graph-description-training/internal/api"
	"github.com/harlamovads/Graph-description-training/internal/cli"
	"github.com/harlamovads/Graph-description-training/internal/config"
	"github.com/harlamovads/Graph-description-training/internal/credstore"
	"github.com/harlamovads/Graph-description-training/internal/session"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading configuration: %w", err)
	}

	store, err := credstore.Open(cfg.CredentialsPath())
	if err != nil {
		return fmt.Errorf("opening credential store: %w", err)
	}
	defer store.Close()

	var observer api.Observer = api.NoopObserver{}
	if cfg.Debug {
		observer = api.NewLogObserver(os.Stderr)
	}

	client := api.New(api.Config{
		BaseURL: cfg.APIURL,
		Timeout: cfg.Timeout,
	}, store, observer)

	app := &cli.App{
		API:     client,
		Session: session.NewManager(client, store),
		Store:   store,
	}
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	return cli.NewRootCmd(app).Execute()
}
