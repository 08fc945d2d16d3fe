package services

import (
	"strings"
	"testing"
	"time"

	"momo-pos/models"
)

func receiptFixture() models.Order {
	trio := models.MenuItem{ID: "trio", Name: "The Trio", Price: 50}
	return models.Order{
		ID:       "M2-2025-1234",
		Items:    []models.BillItem{{MenuItem: trio, CookingStyle: models.StyleSteam, Quantity: 2}},
		Subtotal: 100,
		Total:    100,
		PaymentMethod: models.PaymentCash,
		Timestamp:     time.Date(2025, 8, 15, 13, 5, 0, 0, time.Local),
	}
}

func TestRenderReceipt(t *testing.T) {
	o := receiptFixture()
	got := RenderReceipt(&o, "M² Maggie × Momos")

	for _, want := range []string{
		"M² Maggie × Momos",
		"Order #M2-2025-1234",
		"15 Aug 2025 at 01:05 pm",
		"The Trio (Steam) x2",
		"₹100",
		"TOTAL",
		"Payment: CASH",
		"Thank you for your order!",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("receipt missing %q:\n%s", want, got)
		}
	}
	if strings.Contains(got, "Customer:") || strings.Contains(got, "Phone:") {
		t.Error("walk-in receipt should omit customer lines")
	}
	if strings.Contains(got, "Discount") {
		t.Error("no discount line when nothing was discounted")
	}
}

func TestRenderReceiptWithCustomerAndDiscount(t *testing.T) {
	o := receiptFixture()
	o.CustomerName = "Asha"
	o.CustomerPhone = "9876543210"
	o.DiscountPercent = 10
	o.DiscountAmount = 10
	o.Total = 90

	got := RenderReceipt(&o, "")
	for _, want := range []string{
		"M² Maggie × Momos", // default header
		"Customer: Asha",
		"Phone: 9876543210",
		"Subtotal",
		"Discount (10%)",
		"-₹10",
		"₹90",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("receipt missing %q:\n%s", want, got)
		}
	}
}
