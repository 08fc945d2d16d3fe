package models

import "time"

const (
	PaymentCash = "cash"
	PaymentUPI  = "upi"
)

// BillItem is one line of the live bill. Two lines never share the same
// (menu item, cooking style) pair; adding a duplicate bumps the quantity
// instead.
type BillItem struct {
	ID           string       `json:"id"`
	MenuItem     MenuItem     `json:"menuItem"` // snapshot, not a catalog reference
	CookingStyle CookingStyle `json:"cookingStyle"`
	Quantity     int          `json:"quantity"`
}

func (b BillItem) LineTotal() int64 {
	return b.MenuItem.Price * int64(b.Quantity)
}

// Order is a finished checkout. Immutable except for the discount fields,
// which ApplyDiscountToOrder may rewrite from the stored subtotal.
type Order struct {
	ID              string     `json:"id"` // M2-<year>-<4 digit random>
	Items           []BillItem `json:"items"`
	Subtotal        int64      `json:"subtotal"`
	DiscountPercent int        `json:"discountPercent"`
	DiscountAmount  int64      `json:"discountAmount"`
	Total           int64      `json:"total"`
	CustomerName    string     `json:"customerName"`
	CustomerPhone   string     `json:"customerPhone"`
	PaymentMethod   string     `json:"paymentMethod"`
	Timestamp       time.Time  `json:"timestamp"`
}
