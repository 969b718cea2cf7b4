package cli

import (
	"errors"
	"fmt"
	"net"
	"strconv"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/custodia-labs/benefits-portal/internal/adapters/driving/web"
	"github.com/custodia-labs/benefits-portal/internal/core/domain"
)

var (
	serveHost      string
	servePort      int
	serveTemplates string
	serveNoMCP     bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the web portal",
	Long: `Serve the benefits portal over HTTP.

The portal pages, the JSON API, /healthz, /metrics and the MCP streamable
HTTP transport (at /mcp) share one listener. Flags override the settings
file. With --templates the page templates are read from disk and reloaded
when they change.`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveHost, "host", "", "listen host (default from settings)")
	serveCmd.Flags().IntVarP(&servePort, "port", "p", 0, "listen port (default from settings)")
	serveCmd.Flags().StringVar(&serveTemplates, "templates", "", "load templates from this directory")
	serveCmd.Flags().BoolVar(&serveNoMCP, "no-mcp", false, "do not mount the MCP endpoint")
	rootCmd.AddCommand(serveCmd)
}

// serveConfig merges settings and flags into the web server config.
func serveConfig() (web.Config, error) {
	settings := domain.DefaultAppSettings()
	if settingsService != nil {
		s, err := settingsService.Get()
		if err != nil {
			return web.Config{}, fmt.Errorf("failed to get settings: %w", err)
		}
		settings = *s
	}

	host := settings.Server.Host
	if serveHost != "" {
		host = serveHost
	}
	port := settings.Server.Port
	if servePort != 0 {
		port = servePort
	}
	templates := settings.Server.TemplatesDir
	if serveTemplates != "" {
		templates = serveTemplates
	}

	return web.Config{
		Address:      net.JoinHostPort(host, strconv.Itoa(port)),
		TemplatesDir: templates,
		RateLimit:    float64(settings.Server.RateLimit),
		RateBurst:    settings.Server.RateBurst,
	}, nil
}

func runServe(cmd *cobra.Command, _ []string) error {
	if catalogService == nil || (applicationService == nil && openApplications == nil) {
		return errors.New("portal services not configured")
	}

	cfg, err := serveConfig()
	if err != nil {
		return err
	}

	apps, err := applications(cmd.Context())
	if err != nil {
		return err
	}

	ports := &web.Ports{Catalog: catalogService, Applications: apps}
	if !serveNoMCP {
		mcpServer, err := newMCPServer()
		if err != nil {
			return err
		}
		ports.MCP = mcpServer.Handler()
	}

	server, err := web.NewServer(ports, cfg)
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	g, ctx := errgroup.WithContext(cmd.Context())
	g.Go(func() error {
		return server.Run(ctx)
	})
	if cfg.TemplatesDir != "" {
		g.Go(func() error {
			return web.WatchTemplates(ctx, cfg.TemplatesDir, server.Renderer())
		})
	}

	return g.Wait()
}
