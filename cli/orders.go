package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"momo-pos/models"
	"momo-pos/services"
)

var (
	ordersMethod  string
	ordersSearch  string
	ordersOutFile string
)

var ordersCmd = &cobra.Command{
	Use:   "orders",
	Short: "Order history",
}

var ordersListCmd = &cobra.Command{
	Use:   "list",
	Short: "Show past orders, most recent first",
	RunE: func(cmd *cobra.Command, args []string) error {
		if ordersMethod != "" && ordersMethod != "all" &&
			ordersMethod != models.PaymentCash && ordersMethod != models.PaymentUPI {
			return fmt.Errorf("invalid --method %q (cash or upi)", ordersMethod)
		}
		orders := pos.SearchOrders(ordersSearch, ordersMethod)
		if len(orders) == 0 {
			fmt.Println("No orders.")
			return nil
		}
		for _, o := range orders {
			var lines []string
			for _, item := range o.Items {
				label := item.MenuItem.Name
				if item.CookingStyle != models.StyleNone {
					label += " (" + string(item.CookingStyle) + ")"
				}
				lines = append(lines, fmt.Sprintf("%s x%d", label, item.Quantity))
			}
			customer := ""
			if o.CustomerName != "" || o.CustomerPhone != "" {
				customer = "  " + strings.TrimSpace(o.CustomerName+" "+o.CustomerPhone)
			}
			discount := ""
			if o.DiscountPercent > 0 {
				discount = fmt.Sprintf("  (-%d%%)", o.DiscountPercent)
			}
			fmt.Printf("%s  %s %s  %s  %s%s%s\n    %s\n",
				o.ID,
				o.Timestamp.Format("02/01/2006"), o.Timestamp.Format("03:04 pm"),
				models.FormatPrice(o.Total),
				strings.ToUpper(o.PaymentMethod),
				discount,
				customer,
				strings.Join(lines, "; "))
		}
		return nil
	},
}

var ordersExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the order history as CSV",
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(pos.Orders()) == 0 {
			return fmt.Errorf("no orders to export")
		}
		return writeCSV(services.ExportOrdersToCSV(pos.Orders()), ordersOutFile)
	},
}

var ordersDiscountCmd = &cobra.Command{
	Use:   "discount <orderID> <percent>",
	Short: "Apply a discount to a past order",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		percent, err := strconv.Atoi(strings.TrimSuffix(args[1], "%"))
		if err != nil {
			return fmt.Errorf("bad percent %q", args[1])
		}
		if _, ok := pos.FindOrder(args[0]); !ok {
			return fmt.Errorf("order %s not found", args[0])
		}
		pos.ApplyDiscountToOrder(cmd.Context(), args[0], percent)
		o, _ := pos.FindOrder(args[0])
		fmt.Printf("%s: subtotal %s, discount %d%% (%s), total %s\n",
			o.ID, models.FormatPrice(o.Subtotal), o.DiscountPercent,
			models.FormatPrice(o.DiscountAmount), models.FormatPrice(o.Total))
		return nil
	},
}

func init() {
	ordersListCmd.Flags().StringVar(&ordersMethod, "method", "all", "filter by payment method (cash|upi|all)")
	ordersListCmd.Flags().StringVar(&ordersSearch, "search", "", "match order id, customer name or phone")
	ordersExportCmd.Flags().StringVarP(&ordersOutFile, "out", "o", "", "output file (default stdout)")
	ordersCmd.AddCommand(ordersListCmd, ordersExportCmd, ordersDiscountCmd)
}
