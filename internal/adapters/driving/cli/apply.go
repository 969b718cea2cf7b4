package cli

import (
	"errors"
	"fmt"
	"os"
	"runtime/debug"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/custodia-labs/benefits-portal/internal/adapters/driving/tui"
)

// ErrNotTerminal is returned when the wizard is launched without a terminal.
var ErrNotTerminal = errors.New("apply needs an interactive terminal")

// isTerminal reports whether stdin is attached to a terminal.
var isTerminal = func() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

// applyCmd launches the interactive terminal portal.
var applyCmd = &cobra.Command{
	Use:   "apply",
	Short: "Browse services and apply in the terminal",
	Long: `Launch the interactive terminal portal.

Search the catalog, pick a service and complete the application wizard
without leaving the terminal.

Controls:
  (type)     - Search services
  Tab        - Next category
  ↑/↓        - Navigate services / fields
  Enter      - Start application / Continue
  Ctrl+N     - Continue
  Ctrl+P     - Previous step
  Esc        - Back to services
  Ctrl+C     - Quit`,
	Args: cobra.NoArgs,
	RunE: runApply,
}

func init() {
	rootCmd.AddCommand(applyCmd)
}

func runApply(cmd *cobra.Command, _ []string) error {
	if !isTerminal() {
		return ErrNotTerminal
	}

	// Add panic recovery to get stack traces
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "Panic in TUI: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack trace:\n%s\n", debug.Stack())
		}
	}()

	apps, err := applications(cmd.Context())
	if err != nil {
		return err
	}

	app, err := tui.NewApp(tui.NewPorts(catalogService, apps))
	if err != nil {
		return fmt.Errorf("failed to create TUI: %w", err)
	}
	app.WithContext(cmd.Context())

	if err := app.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}
