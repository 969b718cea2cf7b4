// Command portal runs the benefits portal: web server, terminal wizard and
// MCP server over one set of core services.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/custodia-labs/benefits-portal/internal/adapters/driven/config/file"
	"github.com/custodia-labs/benefits-portal/internal/adapters/driving/cli"
	"github.com/custodia-labs/benefits-portal/internal/core/services"
	"github.com/custodia-labs/benefits-portal/internal/logger"
)

// version is set at build time via -ldflags.
var version = "dev"

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if _, err := file.LoadDotEnv(); err != nil {
		return err
	}

	store, err := file.NewConfigStore(os.Getenv("PORTAL_CONFIG_DIR"))
	if err != nil {
		return fmt.Errorf("open config: %w", err)
	}
	settingsService := services.NewSettingsService(file.NewEnvOverlay(store))

	settings, err := settingsService.Get()
	if err != nil {
		return err
	}
	if err := logger.Init(settings.Log.Level, settings.Log.Format); err != nil {
		return err
	}
	defer logger.Sync()

	catalogService := services.NewCatalogService(nil)

	cli.SetVersion(version)
	cli.SetServices(cli.Services{
		Catalog:          catalogService,
		Settings:         settingsService,
		OpenApplications: applicationsOpener(catalogService, settings, os.Getenv("PORTAL_DATA_DIR")),
	})
	return cli.Execute(ctx)
}
