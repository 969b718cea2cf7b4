// Package cli provides the portal command line. Commands read their
// services from package state set by the entrypoint through SetServices.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/benefits-portal/internal/core/ports/driving"
	"github.com/custodia-labs/benefits-portal/internal/logger"
)

// version is set at build time via -ldflags.
var version = "dev"

var (
	catalogService     driving.CatalogService
	applicationService driving.ApplicationService
	settingsService    driving.SettingsService

	openApplications ApplicationsOpener
	closers          []io.Closer
)

// ErrApplicationsNotConfigured is returned by commands that run wizards when
// neither an application service nor an opener was provided.
var ErrApplicationsNotConfigured = errors.New("application service not configured")

// ApplicationsOpener connects the session and receipt backends and returns
// the application service over them. The closer runs when Execute returns.
type ApplicationsOpener func(ctx context.Context) (driving.ApplicationService, io.Closer, error)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "portal",
	Short: "Apply for benefits and support",
	Long: `portal serves the GOV.UK-style benefits portal.

Browse the service catalog, start an application in the terminal, or run
the web portal and MCP server.`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verbose)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug output")
}

// Services holds the core services the commands drive.
type Services struct {
	Catalog  driving.CatalogService
	Settings driving.SettingsService

	// Applications is used as is when set. Otherwise OpenApplications is
	// called the first time a command needs it, so commands that never
	// touch sessions or receipts work while those backends are down.
	Applications     driving.ApplicationService
	OpenApplications ApplicationsOpener
}

// SetServices injects the core services.
func SetServices(s Services) {
	catalogService = s.Catalog
	applicationService = s.Applications
	settingsService = s.Settings
	openApplications = s.OpenApplications
}

// applications returns the application service, opening its backends on
// first use.
func applications(ctx context.Context) (driving.ApplicationService, error) {
	if applicationService != nil {
		return applicationService, nil
	}
	if openApplications == nil {
		return nil, ErrApplicationsNotConfigured
	}

	svc, closer, err := openApplications(ctx)
	if err != nil {
		return nil, fmt.Errorf("open application backends: %w", err)
	}
	applicationService = svc
	if closer != nil {
		closers = append(closers, closer)
	}
	return svc, nil
}

// closeBackends releases everything opened by applications, newest first.
func closeBackends() error {
	var errs []error
	for i := len(closers) - 1; i >= 0; i-- {
		errs = append(errs, closers[i].Close())
	}
	closers = nil
	return errors.Join(errs...)
}

// SetVersion overrides the reported version.
func SetVersion(v string) {
	if v != "" {
		version = v
	}
}

// Execute runs the root command and closes any backends it opened.
func Execute(ctx context.Context) error {
	err := rootCmd.ExecuteContext(ctx)
	if cerr := closeBackends(); cerr != nil {
		logger.Warn("closing backends: %v", cerr)
	}
	return err
}
