// Package services holds the POS core: the checkout session state machine,
// the CSV interchange codec, receipts, and sales aggregation.
package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"math/rand"
	"strings"
	"time"

	"go.uber.org/zap"

	"momo-pos/models"
	"momo-pos/storage"
)

// Storage slot keys. Kept stable so existing data files stay readable.
const (
	OrdersKey = "m2_pos_orders"
	MenuKey   = "m2_pos_menu"
)

var ErrEmptyBill = errors.New("bill is empty")

// POS owns one cashier session: the menu catalog, the live bill, the
// customer fields and the order ledger. It is single-owner state; every
// mutation completes, including its persistence side effect, before the
// next one starts. Storage failures are logged and swallowed - the
// in-memory state stays authoritative for the session.
type POS struct {
	log   *zap.Logger
	store storage.Store

	menu          []models.MenuItem
	bill          []models.BillItem
	orders        []models.Order
	customerName  string
	customerPhone string

	now func() time.Time
}

// NewPOS loads both slots from the store. A missing or unreadable slot
// falls back to the default menu / empty ledger.
func NewPOS(ctx context.Context, store storage.Store, log *zap.Logger) *POS {
	if log == nil {
		log = zap.NewNop()
	}
	p := &POS{
		log:   log,
		store: store,
		menu:  models.DefaultMenu(),
		now:   time.Now,
	}

	if b, err := store.Load(ctx, OrdersKey); err == nil {
		var orders []models.Order
		if err := json.Unmarshal(b, &orders); err != nil {
			log.Warn("ignoring unreadable orders slot", zap.Error(err))
		} else {
			p.orders = orders
		}
	} else if !errors.Is(err, storage.ErrNotFound) {
		log.Warn("loading orders slot", zap.Error(err))
	}

	if b, err := store.Load(ctx, MenuKey); err == nil {
		var menu []models.MenuItem
		if err := json.Unmarshal(b, &menu); err != nil {
			log.Warn("ignoring unreadable menu slot", zap.Error(err))
		} else {
			p.menu = menu
		}
	} else if !errors.Is(err, storage.ErrNotFound) {
		log.Warn("loading menu slot", zap.Error(err))
	}

	return p
}

func (p *POS) Menu() []models.MenuItem { return p.menu }

func (p *POS) MenuItemByID(id string) (models.MenuItem, bool) {
	for _, m := range p.menu {
		if m.ID == id {
			return m, true
		}
	}
	return models.MenuItem{}, false
}

// SetMenuItems replaces the whole catalog (CSV import and reset both land
// here) and mirrors it to storage.
func (p *POS) SetMenuItems(ctx context.Context, items []models.MenuItem) {
	p.menu = items
	p.persistMenu(ctx)
}

func (p *POS) ResetMenu(ctx context.Context) {
	p.SetMenuItems(ctx, models.DefaultMenu())
}

func (p *POS) Bill() []models.BillItem { return p.bill }

func (p *POS) CustomerName() string  { return p.customerName }
func (p *POS) CustomerPhone() string { return p.customerPhone }

func (p *POS) SetCustomerName(name string)   { p.customerName = name }
func (p *POS) SetCustomerPhone(phone string) { p.customerPhone = phone }

// AddToBill merges into an existing line with the same item and style,
// otherwise appends a fresh line with quantity 1. Never fails.
func (p *POS) AddToBill(item models.MenuItem, style models.CookingStyle) {
	for i := range p.bill {
		if p.bill[i].MenuItem.ID == item.ID && p.bill[i].CookingStyle == style {
			p.bill[i].Quantity++
			return
		}
	}
	p.bill = append(p.bill, models.BillItem{
		ID:           p.newBillItemID(item.ID, style),
		MenuItem:     item,
		CookingStyle: style,
		Quantity:     1,
	})
}

// UpdateQuantity sets a line's quantity; zero or below removes the line.
// Unknown ids are ignored.
func (p *POS) UpdateQuantity(id string, quantity int) {
	if quantity <= 0 {
		p.RemoveFromBill(id)
		return
	}
	for i := range p.bill {
		if p.bill[i].ID == id {
			p.bill[i].Quantity = quantity
			return
		}
	}
}

func (p *POS) RemoveFromBill(id string) {
	for i := range p.bill {
		if p.bill[i].ID == id {
			p.bill = append(p.bill[:i], p.bill[i+1:]...)
			return
		}
	}
}

// ClearBill drops all lines and the customer fields.
func (p *POS) ClearBill() {
	p.bill = nil
	p.customerName = ""
	p.customerPhone = ""
}

func (p *POS) BillTotal() int64 {
	var total int64
	for _, item := range p.bill {
		total += item.LineTotal()
	}
	return total
}

// ProcessPayment turns the live bill into an Order: snapshots the lines,
// applies the discount, prepends the order to the ledger (most recent
// first), persists, and clears the bill. An empty bill is rejected rather
// than minting a zero-total order.
func (p *POS) ProcessPayment(ctx context.Context, method string, discountPercent int) (*models.Order, error) {
	if method != models.PaymentCash && method != models.PaymentUPI {
		return nil, fmt.Errorf("invalid payment method: %s", method)
	}
	if len(p.bill) == 0 {
		return nil, ErrEmptyBill
	}

	subtotal := p.BillTotal()
	discountAmount := roundDiscount(subtotal, discountPercent)

	order := models.Order{
		ID:              p.newOrderID(),
		Items:           append([]models.BillItem(nil), p.bill...),
		Subtotal:        subtotal,
		DiscountPercent: discountPercent,
		DiscountAmount:  discountAmount,
		Total:           subtotal - discountAmount,
		CustomerName:    p.customerName,
		CustomerPhone:   p.customerPhone,
		PaymentMethod:   method,
		Timestamp:       p.now(),
	}

	p.orders = append([]models.Order{order}, p.orders...)
	p.persistOrders(ctx)
	p.ClearBill()

	return &order, nil
}

// ApplyDiscountToOrder rewrites the discount fields of an existing order
// from its stored subtotal. Unknown ids are a no-op. The percent is
// clamped to 0..100.
func (p *POS) ApplyDiscountToOrder(ctx context.Context, orderID string, discountPercent int) {
	if discountPercent < 0 {
		discountPercent = 0
	} else if discountPercent > 100 {
		discountPercent = 100
	}
	for i := range p.orders {
		if p.orders[i].ID == orderID {
			amount := roundDiscount(p.orders[i].Subtotal, discountPercent)
			p.orders[i].DiscountPercent = discountPercent
			p.orders[i].DiscountAmount = amount
			p.orders[i].Total = p.orders[i].Subtotal - amount
			p.persistOrders(ctx)
			return
		}
	}
}

func (p *POS) Orders() []models.Order { return p.orders }

func (p *POS) FindOrder(id string) (*models.Order, bool) {
	for i := range p.orders {
		if p.orders[i].ID == id {
			return &p.orders[i], true
		}
	}
	return nil, false
}

// SearchOrders filters the ledger by payment method ("" or "all" keeps
// everything) and by a free-text query matched against the order id,
// customer name and phone.
func (p *POS) SearchOrders(query, method string) []models.Order {
	query = strings.ToLower(strings.TrimSpace(query))
	var out []models.Order
	for _, o := range p.orders {
		if method != "" && method != "all" && o.PaymentMethod != method {
			continue
		}
		if query != "" &&
			!strings.Contains(strings.ToLower(o.ID), query) &&
			!strings.Contains(strings.ToLower(o.CustomerName), query) &&
			!strings.Contains(o.CustomerPhone, query) {
			continue
		}
		out = append(out, o)
	}
	return out
}

// ClearAllData wipes the ledger, the bill and the customer fields, and
// removes the orders slot. The menu slot is left alone.
func (p *POS) ClearAllData(ctx context.Context) {
	p.orders = nil
	p.ClearBill()
	if err := p.store.Delete(ctx, OrdersKey); err != nil {
		p.log.Warn("deleting orders slot", zap.Error(err))
	}
}

func roundDiscount(subtotal int64, percent int) int64 {
	return int64(math.Round(float64(subtotal) * float64(percent) / 100))
}

func (p *POS) newBillItemID(menuItemID string, style models.CookingStyle) string {
	tag := string(style)
	if tag == "" {
		tag = "default"
	}
	return fmt.Sprintf("%s-%s-%d", menuItemID, tag, p.now().UnixMilli())
}

// newOrderID draws M2-<year>-<1000..9999>, retrying while the draw is
// already in the ledger. The 9000-id space is plenty for one stall's
// history and keeps receipts short.
func (p *POS) newOrderID() string {
	year := p.now().Year()
	taken := make(map[string]bool, len(p.orders))
	for _, o := range p.orders {
		taken[o.ID] = true
	}
	id := ""
	for i := 0; i < 10000; i++ {
		id = fmt.Sprintf("M2-%d-%d", year, 1000+rand.Intn(9000))
		if !taken[id] {
			return id
		}
	}
	return id
}

func (p *POS) persistOrders(ctx context.Context) {
	b, err := json.Marshal(p.orders)
	if err != nil {
		p.log.Warn("marshalling orders", zap.Error(err))
		return
	}
	if err := p.store.Save(ctx, OrdersKey, b); err != nil {
		p.log.Warn("saving orders slot", zap.Error(err))
	}
}

func (p *POS) persistMenu(ctx context.Context) {
	b, err := json.Marshal(p.menu)
	if err != nil {
		p.log.Warn("marshalling menu", zap.Error(err))
		return
	}
	if err := p.store.Save(ctx, MenuKey, b); err != nil {
		p.log.Warn("saving menu slot", zap.Error(err))
	}
}
