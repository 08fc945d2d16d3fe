package services

import (
	"fmt"
	"strings"

	"momo-pos/models"
)

// receiptWidth suits a 58mm thermal roll.
const receiptWidth = 32

// RenderReceipt lays out a cut-ready text receipt for a finished order.
// stallName goes in the header; pass "" for the default.
func RenderReceipt(o *models.Order, stallName string) string {
	if stallName == "" {
		stallName = "M² Maggie × Momos"
	}
	divider := strings.Repeat("-", receiptWidth)

	var b strings.Builder
	b.WriteString(center(stallName) + "\n")
	b.WriteString(center("Order #"+o.ID) + "\n")
	b.WriteString(center(o.Timestamp.Format("02 Jan 2006")+" at "+o.Timestamp.Format("03:04 pm")) + "\n")
	b.WriteString(divider + "\n")

	for _, item := range o.Items {
		b.WriteString(receiptLine(billLineLabel(item), models.FormatPrice(item.LineTotal())) + "\n")
	}

	b.WriteString(divider + "\n")
	if o.DiscountAmount > 0 {
		b.WriteString(receiptLine("Subtotal", models.FormatPrice(o.Subtotal)) + "\n")
		b.WriteString(receiptLine(fmt.Sprintf("Discount (%d%%)", o.DiscountPercent),
			"-"+models.FormatPrice(o.DiscountAmount)) + "\n")
	}
	b.WriteString(receiptLine("TOTAL", models.FormatPrice(o.Total)) + "\n")
	b.WriteString("Payment: " + strings.ToUpper(o.PaymentMethod) + "\n")
	if o.CustomerName != "" {
		b.WriteString("Customer: " + o.CustomerName + "\n")
	}
	if o.CustomerPhone != "" {
		b.WriteString("Phone: " + o.CustomerPhone + "\n")
	}
	b.WriteString("\n")
	b.WriteString(center("Thank you for your order!") + "\n")
	b.WriteString(center("Visit us again!") + "\n")
	return b.String()
}

func receiptLine(label, amount string) string {
	pad := receiptWidth - len([]rune(label)) - len([]rune(amount))
	if pad < 1 {
		pad = 1
	}
	return label + strings.Repeat(" ", pad) + amount
}

func center(s string) string {
	pad := (receiptWidth - len([]rune(s))) / 2
	if pad < 0 {
		pad = 0
	}
	return strings.Repeat(" ", pad) + s
}
