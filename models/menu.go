package models

import "fmt"

// CookingStyle is an optional per-item variant. The empty style means the
// item offers no steam/fried choice.
type CookingStyle string

const (
	StyleSteam CookingStyle = "Steam"
	StyleFried CookingStyle = "Fried"
	StyleNone  CookingStyle = ""
)

type MenuItem struct {
	ID            string         `json:"id"`
	Name          string         `json:"name"`
	Price         int64          `json:"price"` // whole rupees
	Category      string         `json:"category"`
	Pcs           *int           `json:"pcs"`
	CookingStyles []CookingStyle `json:"cookingStyles"`
	Description   string         `json:"description,omitempty"`
	IsJain        bool           `json:"isJain"`
}

const (
	CategoryMomos  = "momos"
	CategoryMaggie = "maggie"
	CategoryCombo  = "combo"
)

// HasStyleChoice reports whether the cashier must pick a cooking style.
func (m MenuItem) HasStyleChoice() bool {
	if len(m.CookingStyles) == 0 {
		return false
	}
	return len(m.CookingStyles) > 1 || m.CookingStyles[0] != StyleNone
}

func CategoryLabel(category string) string {
	switch category {
	case CategoryMomos:
		return "Momos"
	case CategoryMaggie:
		return "Maggie & Drinks"
	case CategoryCombo:
		return "Combo"
	default:
		return category
	}
}

func FormatPrice(price int64) string {
	return fmt.Sprintf("₹%d", price)
}

func intPtr(n int) *int { return &n }

// DefaultMenu returns the stall's seed catalog. Used on first run and by
// the menu reset operation.
func DefaultMenu() []MenuItem {
	return []MenuItem{
		{
			ID:            "trio-steam",
			Name:          "The Trio",
			Price:         50,
			Category:      CategoryMomos,
			Pcs:           intPtr(3),
			CookingStyles: []CookingStyle{StyleSteam},
			Description:   "Classic steamed momos trio",
		},
		{
			ID:            "masala-magic",
			Name:          "Masala Magic Momos",
			Price:         99,
			Category:      CategoryMomos,
			Pcs:           intPtr(7),
			CookingStyles: []CookingStyle{StyleSteam, StyleFried},
			Description:   "Spicy masala-infused momos",
		},
		{
			ID:            "paneer-momos",
			Name:          "Paneer Momos",
			Price:         120,
			Category:      CategoryMomos,
			Pcs:           intPtr(8),
			CookingStyles: []CookingStyle{StyleSteam, StyleFried},
			Description:   "Premium paneer-stuffed momos",
		},
		{
			ID:            "jain-momos",
			Name:          "Jain Momos",
			Price:         120,
			Category:      CategoryMomos,
			Pcs:           intPtr(8),
			CookingStyles: []CookingStyle{StyleSteam, StyleFried},
			Description:   "No Onion | No Garlic",
			IsJain:        true,
		},
		{
			ID:            "cooker-maggie",
			Name:          "Special Cooker Maggie Bowl",
			Price:         70,
			Category:      CategoryMaggie,
			CookingStyles: []CookingStyle{StyleNone},
			Description:   "Authentic pressure-cooked maggie",
		},
		{
			ID:            "cold-drink",
			Name:          "Cold Drink",
			Price:         29,
			Category:      CategoryMaggie,
			CookingStyles: []CookingStyle{StyleNone},
			Description:   "Chilled refreshment",
		},
		{
			ID:            "m2-combo",
			Name:          "M² Combo",
			Price:         160,
			Category:      CategoryCombo,
			CookingStyles: []CookingStyle{StyleNone},
			Description:   "Maggie + Momos + Drink",
		},
	}
}
