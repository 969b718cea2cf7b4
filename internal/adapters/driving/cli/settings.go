package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage application settings",
	Long: `View and change portal settings.

Settings live in ~/.benefits-portal/config.toml. Any key can be overridden
with an environment variable named PORTAL_<KEY>, for example
PORTAL_SERVER_PORT=8080.`,
	RunE: runSettingsShow,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	RunE:  runSettingsShow,
}

var settingsSetCmd = &cobra.Command{
	Use:   "set [key] [value]",
	Short: "Change a setting",
	Long: `Change a single setting by its dotted key.

Keys:
  server.host, server.port, server.templates_dir, server.rate_limit,
  server.rate_burst, session.backend (memory|redis), session.ttl_minutes,
  redis.address, redis.db, receipts.backend (memory|sqlite),
  log.level (debug|info|warn|error), log.format (console|json)`,
	Args: cobra.ExactArgs(2),
	RunE: runSettingsSet,
}

func init() {
	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsSetCmd)
	rootCmd.AddCommand(settingsCmd)
}

func runSettingsShow(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	cmd.Println("Current Settings")
	cmd.Println("================")
	cmd.Println()

	cmd.Println("[Server]")
	cmd.Printf("  Address: %s\n", settings.Server.Address())
	templates := settings.Server.TemplatesDir
	if templates == "" {
		templates = "(embedded)"
	}
	cmd.Printf("  Templates: %s\n", templates)
	cmd.Printf("  Rate limit: %d req/s (burst %d)\n", settings.Server.RateLimit, settings.Server.RateBurst)
	cmd.Println()

	cmd.Println("[Sessions]")
	cmd.Printf("  Backend: %s\n", settings.Session.Backend.Description())
	cmd.Printf("  TTL: %d minutes\n", settings.Session.TTLMinutes)
	cmd.Println()

	cmd.Println("[Redis]")
	cmd.Printf("  Address: %s\n", settings.Redis.Address)
	cmd.Printf("  DB: %d\n", settings.Redis.DB)
	cmd.Println()

	cmd.Println("[Receipts]")
	cmd.Printf("  Backend: %s\n", settings.Receipts.Backend.Description())
	cmd.Println()

	cmd.Println("[Logging]")
	cmd.Printf("  Level: %s\n", settings.Log.Level)
	cmd.Printf("  Format: %s\n", settings.Log.Format)
	cmd.Println()

	if err := settingsService.Validate(); err != nil {
		cmd.Printf("Warning: %v\n", err)
		cmd.Println("Run 'portal settings set' to fix configuration issues.")
	} else {
		cmd.Println("Configuration is valid.")
	}

	return nil
}

func runSettingsSet(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	key, value := args[0], args[1]
	if err := settingsService.Set(key, value); err != nil {
		return fmt.Errorf("failed to set %s: %w", key, err)
	}

	cmd.Printf("Set %s = %s\n", key, value)
	return nil
}
