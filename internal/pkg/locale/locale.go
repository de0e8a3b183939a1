// Package locale renders prices and property types for the Hebrew storefront.
package locale

import (
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"nadlan-backend/internal/domain"
)

const CurrencySymbol = "₪"

// Thousands are grouped with commas, as on the storefront cards.
var pricePrinter = message.NewPrinter(language.English)

var typeLabels = map[domain.PropertyType]string{
	domain.TypeHouse:     "בית פרטי",
	domain.TypeApartment: "דירה",
	domain.TypeStudio:    "סטודיו",
	domain.TypeVilla:     "וילה",
	domain.TypeAll:       "הכל",
}

// FormatPrice renders an amount in whole shekels, e.g. "₪ 3,850,000".
func FormatPrice(amount float64) string {
	return pricePrinter.Sprintf("%s %d", CurrencySymbol, int64(math.Round(amount)))
}

// TypeLabel returns the Hebrew label of a property type, or the raw value when unknown.
func TypeLabel(t domain.PropertyType) string {
	if label, ok := typeLabels[t]; ok {
		return label
	}
	return string(t)
}
