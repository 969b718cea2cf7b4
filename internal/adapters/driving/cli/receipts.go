package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

var receiptsJSON bool

var receiptsCmd = &cobra.Command{
	Use:   "receipts",
	Short: "Inspect submitted applications",
	Long: `Receipts record the reference, service and date of each submitted
application. They never contain form data.`,
}

var receiptsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List submission receipts",
	Args:  cobra.NoArgs,
	RunE:  runReceiptsList,
}

func init() {
	receiptsListCmd.Flags().BoolVar(&receiptsJSON, "json", false, "output receipts as JSON")
	receiptsCmd.AddCommand(receiptsListCmd)
	rootCmd.AddCommand(receiptsCmd)
}

func runReceiptsList(cmd *cobra.Command, _ []string) error {
	apps, err := applications(cmd.Context())
	if err != nil {
		return err
	}

	receipts, err := apps.Receipts(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to list receipts: %w", err)
	}

	if receiptsJSON {
		data, err := json.MarshalIndent(receipts, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal receipts: %w", err)
		}
		cmd.Println(string(data))
		return nil
	}

	if len(receipts) == 0 {
		cmd.Println("No applications submitted.")
		return nil
	}

	cmd.Println("Submitted applications:")
	for _, r := range receipts {
		cmd.Printf("  %s  %-18s  %s\n", r.Reference, r.ServiceID, r.SubmissionDate())
	}
	return nil
}
