package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"momo-pos/models"
	"momo-pos/services"
)

var summaryOutFile string

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Sales overview",
	Run: func(cmd *cobra.Command, args []string) {
		stats := services.SalesStats(pos.Orders(), time.Now())
		fmt.Printf("Total orders:   %d\n", stats.TotalOrders)
		fmt.Printf("Cash:           %d orders, %s\n", stats.CashOrders, models.FormatPrice(stats.CashTotal))
		fmt.Printf("UPI:            %d orders, %s\n", stats.UPIOrders, models.FormatPrice(stats.UPITotal))
		fmt.Printf("Grand total:    %s\n", models.FormatPrice(stats.GrandTotal))
		if stats.BestSeller != nil {
			fmt.Printf("Best seller:    %s (%d sold)\n", stats.BestSeller.Name, stats.BestSeller.Count)
		}
		fmt.Printf("Today:          %d orders, %s\n", stats.TodayOrders, models.FormatPrice(stats.TodayTotal))
	},
}

var summaryExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the per-day summary as CSV",
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(pos.Orders()) == 0 {
			return fmt.Errorf("no orders to summarise")
		}
		return writeCSV(services.GenerateDailySummaryCSV(pos.Orders()), summaryOutFile)
	},
}

func init() {
	summaryExportCmd.Flags().StringVarP(&summaryOutFile, "out", "o", "", "output file (default stdout)")
	summaryCmd.AddCommand(summaryExportCmd)
}
