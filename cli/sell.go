package cli

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"momo-pos/models"
	"momo-pos/services"
)

var sellCmd = &cobra.Command{
	Use:   "sell",
	Short: "Interactive checkout session",
	Long: `Runs the till loop: add items to the bill, adjust quantities, take
customer details and settle by cash or UPI. Type "help" inside the
session for commands.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		printMenu()
		fmt.Println(`Type "help" for commands.`)

		scanner := bufio.NewScanner(os.Stdin)
		for {
			fmt.Print("> ")
			if !scanner.Scan() {
				return scanner.Err()
			}
			line := strings.TrimSpace(scanner.Text())
			if line == "" {
				continue
			}
			fields := strings.Fields(line)
			cmdWord, rest := fields[0], fields[1:]

			switch cmdWord {
			case "quit", "exit":
				return nil
			case "help":
				printSellHelp()
			case "menu":
				printMenu()
			case "add":
				handleAdd(rest)
			case "qty":
				handleQty(rest)
			case "rm":
				handleRemove(rest)
			case "bill":
				printBill()
			case "name":
				pos.SetCustomerName(strings.Join(rest, " "))
			case "phone":
				pos.SetCustomerPhone(strings.Join(rest, " "))
			case "clear":
				pos.ClearBill()
				fmt.Println("Bill cleared.")
			case "pay":
				handlePay(cmd, rest)
			default:
				fmt.Printf("Unknown command %q. Type \"help\".\n", cmdWord)
			}
		}
	},
}

func printSellHelp() {
	fmt.Print(`Commands:
  menu                      show the catalog
  add <itemID> [style]      add one of an item (Steam/Fried where offered)
  qty <line#> <n>           set a bill line's quantity (0 removes)
  rm <line#>                remove a bill line
  bill                      show the current bill
  name <text>               set customer name
  phone <text>              set customer phone
  pay <cash|upi> [disc%]    settle the bill and print the receipt
  clear                     empty the bill
  quit                      leave the session
`)
}

func printMenu() {
	category := ""
	for _, item := range pos.Menu() {
		if item.Category != category {
			category = item.Category
			fmt.Printf("\n-- %s --\n", models.CategoryLabel(category))
		}
		extras := ""
		if item.Pcs != nil {
			extras += fmt.Sprintf("  %d pcs", *item.Pcs)
		}
		if item.HasStyleChoice() {
			var styles []string
			for _, s := range item.CookingStyles {
				if s != models.StyleNone {
					styles = append(styles, string(s))
				}
			}
			extras += "  [" + strings.Join(styles, "/") + "]"
		}
		if item.IsJain {
			extras += "  (Jain)"
		}
		fmt.Printf("  %-14s %-28s %6s%s\n", item.ID, item.Name, models.FormatPrice(item.Price), extras)
	}
	fmt.Println()
}

func printBill() {
	bill := pos.Bill()
	if len(bill) == 0 {
		fmt.Println("Bill is empty.")
		return
	}
	for i, line := range bill {
		label := line.MenuItem.Name
		if line.CookingStyle != models.StyleNone {
			label += " (" + string(line.CookingStyle) + ")"
		}
		fmt.Printf("  %2d. %-30s x%-3d %8s\n", i+1, label, line.Quantity, models.FormatPrice(line.LineTotal()))
	}
	fmt.Printf("  Total: %s\n", models.FormatPrice(pos.BillTotal()))
	if pos.CustomerName() != "" || pos.CustomerPhone() != "" {
		fmt.Printf("  Customer: %s %s\n", pos.CustomerName(), pos.CustomerPhone())
	}
}

func handleAdd(args []string) {
	if len(args) == 0 {
		fmt.Println("Usage: add <itemID> [style]")
		return
	}
	item, ok := pos.MenuItemByID(args[0])
	if !ok {
		fmt.Printf("No menu item %q.\n", args[0])
		return
	}
	style := models.StyleNone
	if len(args) > 1 {
		switch strings.ToLower(args[1]) {
		case "steam":
			style = models.StyleSteam
		case "fried":
			style = models.StyleFried
		default:
			fmt.Printf("Unknown style %q (Steam or Fried).\n", args[1])
			return
		}
	} else if item.HasStyleChoice() && len(item.CookingStyles) == 1 {
		style = item.CookingStyles[0]
	} else if item.HasStyleChoice() {
		fmt.Printf("%s needs a style: add %s Steam|Fried\n", item.Name, item.ID)
		return
	}
	if !item.HasStyleChoice() {
		style = models.StyleNone
	}
	if item.HasStyleChoice() && !hasStyle(item, style) {
		fmt.Printf("%s is not offered %s.\n", item.Name, style)
		return
	}
	pos.AddToBill(item, style)
	printBill()
}

func hasStyle(item models.MenuItem, style models.CookingStyle) bool {
	for _, s := range item.CookingStyles {
		if s == style {
			return true
		}
	}
	return false
}

func billLineByNumber(arg string) (models.BillItem, bool) {
	n, err := strconv.Atoi(arg)
	bill := pos.Bill()
	if err != nil || n < 1 || n > len(bill) {
		fmt.Printf("No bill line %q.\n", arg)
		return models.BillItem{}, false
	}
	return bill[n-1], true
}

func handleQty(args []string) {
	if len(args) != 2 {
		fmt.Println("Usage: qty <line#> <quantity>")
		return
	}
	line, ok := billLineByNumber(args[0])
	if !ok {
		return
	}
	qty, err := strconv.Atoi(args[1])
	if err != nil {
		fmt.Printf("Bad quantity %q.\n", args[1])
		return
	}
	pos.UpdateQuantity(line.ID, qty)
	printBill()
}

func handleRemove(args []string) {
	if len(args) != 1 {
		fmt.Println("Usage: rm <line#>")
		return
	}
	line, ok := billLineByNumber(args[0])
	if !ok {
		return
	}
	pos.RemoveFromBill(line.ID)
	printBill()
}

func handlePay(cmd *cobra.Command, args []string) {
	if len(pos.Bill()) == 0 {
		fmt.Println("Bill is empty - add items first.")
		return
	}
	if len(args) == 0 {
		fmt.Println("Usage: pay <cash|upi> [discount%]")
		return
	}
	method := strings.ToLower(args[0])
	discount := 0
	if len(args) > 1 {
		d, err := strconv.Atoi(strings.TrimSuffix(args[1], "%"))
		if err != nil || d < 0 || d > 100 {
			fmt.Printf("Bad discount %q (0-100).\n", args[1])
			return
		}
		discount = d
	}
	order, err := pos.ProcessPayment(cmd.Context(), method, discount)
	if err != nil {
		fmt.Println("Payment failed:", err)
		return
	}
	fmt.Println()
	fmt.Print(services.RenderReceipt(order, cfg.Stall.Name))
	fmt.Println()
}
