package domain

import (
	"errors"
	"strings"
)

// MaxPriceUnbounded is the "no limit" ceiling offered by the search sidebar.
const MaxPriceUnbounded = 10_000_000

// FilterCriteria narrows the property collection. Zero City means no city
// constraint; Type TypeAll means any category.
type FilterCriteria struct {
	City        string       `json:"city"`
	MinPrice    float64      `json:"min_price"`
	MaxPrice    float64      `json:"max_price"`
	Type        PropertyType `json:"type"`
	MinBedrooms int          `json:"min_bedrooms"`
}

// DefaultFilterCriteria matches every record whose price is within [0, 10M].
func DefaultFilterCriteria() FilterCriteria {
	return FilterCriteria{
		City:        "",
		MinPrice:    0,
		MaxPrice:    MaxPriceUnbounded,
		Type:        TypeAll,
		MinBedrooms: 0,
	}
}

// ErrUnknownPropertyType is returned by ParseFilterType for values outside the catalog.
var ErrUnknownPropertyType = errors.New("Unknown property type")

// ParseFilterType reads a type filter from user input. Blank, "all" and
// "any" (any case) select the wildcard.
func ParseFilterType(s string) (PropertyType, error) {
	s = strings.TrimSpace(s)
	switch strings.ToLower(s) {
	case "", "all", "any":
		return TypeAll, nil
	}
	for _, t := range PropertyTypes {
		if strings.EqualFold(string(t), s) {
			return t, nil
		}
	}
	return "", ErrUnknownPropertyType
}
