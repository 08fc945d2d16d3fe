package services

import (
	"time"

	"momo-pos/models"
)

type BestSeller struct {
	Name  string
	Count int
}

// Stats is the all-time sales overview shown on the summary screen.
type Stats struct {
	TotalOrders int
	CashOrders  int
	UPIOrders   int
	CashTotal   int64
	UPITotal    int64
	GrandTotal  int64
	BestSeller  *BestSeller // nil when the ledger is empty
	TodayOrders int
	TodayTotal  int64
}

// SalesStats aggregates the ledger. "Today" means the same calendar date
// as now in local time.
func SalesStats(orders []models.Order, now time.Time) Stats {
	var s Stats
	s.TotalOrders = len(orders)

	type tally struct {
		name  string
		count int
	}
	counts := make(map[string]*tally)
	var firstSeen []string

	y, m, d := now.Date()
	for _, o := range orders {
		switch o.PaymentMethod {
		case models.PaymentCash:
			s.CashOrders++
			s.CashTotal += o.Total
		case models.PaymentUPI:
			s.UPIOrders++
			s.UPITotal += o.Total
		}

		oy, om, od := o.Timestamp.Date()
		if oy == y && om == m && od == d {
			s.TodayOrders++
			s.TodayTotal += o.Total
		}

		for _, item := range o.Items {
			t, ok := counts[item.MenuItem.ID]
			if !ok {
				t = &tally{name: item.MenuItem.Name}
				counts[item.MenuItem.ID] = t
				firstSeen = append(firstSeen, item.MenuItem.ID)
			}
			t.count += item.Quantity
		}
	}
	s.GrandTotal = s.CashTotal + s.UPITotal

	for _, id := range firstSeen {
		t := counts[id]
		if s.BestSeller == nil || t.count > s.BestSeller.Count {
			s.BestSeller = &BestSeller{Name: t.name, Count: t.count}
		}
	}
	return s
}
