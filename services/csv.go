package services

import (
	"fmt"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"momo-pos/models"
)

const menuCSVHeader = "id,name,price,category,pcs,cookingStyle,description,isJain"

// ParseMenuCSV turns menu CSV text into catalog items. Header matching is
// case-insensitive and position-independent. Malformed rows are dropped
// with a logged diagnostic, never an error; too-short input parses to no
// items. The caller replaces the whole catalog with the result.
func ParseMenuCSV(text string, log *zap.Logger) []models.MenuItem {
	if log == nil {
		log = zap.NewNop()
	}
	lines := strings.Split(strings.TrimSpace(text), "\n")
	if len(lines) < 2 {
		return nil
	}

	headers := strings.Split(lines[0], ",")
	index := make(map[string]int, len(headers))
	for i, h := range headers {
		name := strings.ToLower(strings.TrimSpace(h))
		if _, seen := index[name]; !seen {
			index[name] = i
		}
	}

	var items []models.MenuItem
	for i := 1; i < len(lines); i++ {
		values := splitCSVLine(lines[i])
		if len(values) < len(headers) {
			log.Warn("dropping short menu row",
				zap.Int("row", i), zap.Int("fields", len(values)))
			continue
		}

		field := func(name string) string {
			col, ok := index[name]
			if !ok || col >= len(values) {
				return ""
			}
			return strings.TrimSpace(values[col])
		}

		id := field("id")
		if id == "" {
			id = fmt.Sprintf("item-%d", i)
		}
		name := field("name")
		if name == "" {
			name = "Unknown Item"
		}
		price, _ := strconv.ParseInt(field("price"), 10, 64) // 0 on blank/unparseable
		category := field("category")
		if category == "" {
			category = models.CategoryMomos
		}
		var pcs *int
		if s := field("pcs"); s != "" {
			if n, err := strconv.Atoi(s); err == nil {
				pcs = &n
			}
		}

		if price <= 0 {
			log.Warn("dropping menu row without a positive price",
				zap.Int("row", i), zap.String("name", name), zap.Int64("price", price))
			continue
		}

		items = append(items, models.MenuItem{
			ID:            id,
			Name:          name,
			Price:         price,
			Category:      category,
			Pcs:           pcs,
			CookingStyles: parseCookingStyles(field("cookingstyle")),
			Description:   field("description"),
			IsJain:        strings.EqualFold(field("isjain"), "true"),
		})
	}
	return items
}

// splitCSVLine is the quote-toggle field scanner: a quote flips the
// in-quote state, a comma outside quotes separates fields. There is no
// doubled-quote escape; export quotes the same way, so the two sides stay
// symmetric.
func splitCSVLine(line string) []string {
	var fields []string
	var current strings.Builder
	inQuotes := false

	for _, r := range line {
		switch {
		case r == '"':
			inQuotes = !inQuotes
		case r == ',' && !inQuotes:
			fields = append(fields, current.String())
			current.Reset()
		default:
			current.WriteRune(r)
		}
	}
	fields = append(fields, current.String())
	return fields
}

// parseCookingStyles reads a pipe-delimited style list. Only exact "Steam"
// and "Fried" survive; anything else becomes the no-style tag. Duplicates
// collapse keeping first-seen order; blank or "null" input means a single
// no-style entry.
func parseCookingStyles(s string) []models.CookingStyle {
	s = strings.TrimSpace(s)
	if s == "" || strings.EqualFold(s, "null") {
		return []models.CookingStyle{models.StyleNone}
	}
	var styles []models.CookingStyle
	seen := make(map[models.CookingStyle]bool)
	for _, part := range strings.Split(s, "|") {
		style := models.StyleNone
		switch strings.TrimSpace(part) {
		case string(models.StyleSteam):
			style = models.StyleSteam
		case string(models.StyleFried):
			style = models.StyleFried
		}
		if !seen[style] {
			seen[style] = true
			styles = append(styles, style)
		}
	}
	return styles
}

// ExportMenuToCSV emits the catalog in the import schema. Name and
// description are always quote-wrapped.
func ExportMenuToCSV(items []models.MenuItem) string {
	rows := []string{menuCSVHeader}
	for _, item := range items {
		pcs := ""
		if item.Pcs != nil {
			pcs = strconv.Itoa(*item.Pcs)
		}
		desc := ""
		if item.Description != "" {
			desc = `"` + item.Description + `"`
		}
		rows = append(rows, strings.Join([]string{
			item.ID,
			`"` + item.Name + `"`,
			strconv.FormatInt(item.Price, 10),
			item.Category,
			pcs,
			joinCookingStyles(item.CookingStyles),
			desc,
			strconv.FormatBool(item.IsJain),
		}, ","))
	}
	return strings.Join(rows, "\n")
}

func joinCookingStyles(styles []models.CookingStyle) string {
	var parts []string
	for _, s := range styles {
		if s != models.StyleNone {
			parts = append(parts, string(s))
		}
	}
	return strings.Join(parts, "|")
}

// MenuCSVTemplate returns the header plus one example row for cashiers
// editing the menu in a spreadsheet.
func MenuCSVTemplate() string {
	return menuCSVHeader + "\n" +
		"example-item,Example Momos,100,momos,8,Steam|Fried,Delicious momos,false\n"
}

// ExportOrdersToCSV renders the ledger for external reporting, one row per
// order, most recent first (ledger order).
func ExportOrdersToCSV(orders []models.Order) string {
	rows := []string{"Order ID,Date,Time,Items,Total,Payment Method,Customer Name,Customer Phone"}
	for _, o := range orders {
		var lines []string
		for _, item := range o.Items {
			lines = append(lines, billLineLabel(item))
		}
		rows = append(rows, strings.Join([]string{
			o.ID,
			o.Timestamp.Format("02/01/2006"),
			o.Timestamp.Format("03:04 pm"),
			`"` + strings.Join(lines, "; ") + `"`,
			strconv.FormatInt(o.Total, 10),
			strings.ToUpper(o.PaymentMethod),
			o.CustomerName,
			o.CustomerPhone,
		}, ","))
	}
	return strings.Join(rows, "\n")
}

func billLineLabel(item models.BillItem) string {
	label := item.MenuItem.Name
	if item.CookingStyle != models.StyleNone {
		label += " (" + string(item.CookingStyle) + ")"
	}
	return fmt.Sprintf("%s x%d", label, item.Quantity)
}

// GenerateDailySummaryCSV groups orders by calendar date and emits counts
// and takings split by payment method. Days appear in first-seen ledger
// order, not sorted.
func GenerateDailySummaryCSV(orders []models.Order) string {
	type daily struct {
		orders, cash, upi     int
		cashTotal, upiTotal   int64
	}
	var dates []string
	byDate := make(map[string]*daily)

	for _, o := range orders {
		date := o.Timestamp.Format("02/01/2006")
		day, ok := byDate[date]
		if !ok {
			day = &daily{}
			byDate[date] = day
			dates = append(dates, date)
		}
		day.orders++
		switch o.PaymentMethod {
		case models.PaymentCash:
			day.cash++
			day.cashTotal += o.Total
		case models.PaymentUPI:
			day.upi++
			day.upiTotal += o.Total
		}
	}

	rows := []string{"Date,Total Orders,Cash Orders,UPI Orders,Cash Amount,UPI Amount,Total Sales"}
	for _, date := range dates {
		day := byDate[date]
		rows = append(rows, strings.Join([]string{
			date,
			strconv.Itoa(day.orders),
			strconv.Itoa(day.cash),
			strconv.Itoa(day.upi),
			strconv.FormatInt(day.cashTotal, 10),
			strconv.FormatInt(day.upiTotal, 10),
			strconv.FormatInt(day.cashTotal+day.upiTotal, 10),
		}, ","))
	}
	return strings.Join(rows, "\n")
}
