// Package cmd implements the CLI application to import broker exports and
// list reconstructed positions.
package cmd

import (
	"context"
	"flag"
	"os"

	"github.com/google/subcommands"

	"github.com/etnz/optrack"
	"github.com/etnz/optrack/store"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&importCmd{}, "transactions")
	c.Register(&listCmd{}, "reports")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var configPath = flag.String("config", "", "Path to the YAML configuration file (defaults to optrack.yaml if present)")
var dbURL = flag.String("db-url", "", "Document store URL, overrides db.url from the configuration")

// loadConfig resolves the application configuration: file values first,
// then flag overrides, and configures logging accordingly.
func loadConfig() (*optrack.Config, error) {
	path := *configPath
	if path == "" {
		if _, err := os.Stat("optrack.yaml"); err == nil {
			path = "optrack.yaml"
		}
	}
	cfg, err := optrack.LoadConfig(path)
	if err != nil {
		return nil, err
	}
	if *dbURL != "" {
		cfg.DB.URL = *dbURL
	}
	optrack.SetupLogging(cfg.Log)
	return cfg, nil
}

// openStore connects to the configured document store.
func openStore(ctx context.Context, cfg *optrack.Config) (store.Store, error) {
	return store.OpenMongo(ctx, cfg.DB.URL)
}
