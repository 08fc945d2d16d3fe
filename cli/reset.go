package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var resetYes bool

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete all order history",
	Long:  "Clears the order ledger and the live bill. The menu is kept.",
	RunE: func(cmd *cobra.Command, args []string) error {
		if !resetYes {
			return fmt.Errorf("refusing to clear %d orders without --yes", len(pos.Orders()))
		}
		pos.ClearAllData(cmd.Context())
		fmt.Println("All order data cleared.")
		return nil
	},
}

func init() {
	resetCmd.Flags().BoolVar(&resetYes, "yes", false, "confirm deletion")
}
