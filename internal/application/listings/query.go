package listings

import (
	"strings"

	"nadlan-backend/internal/domain"
)

// Matches reports whether p satisfies every predicate of c.
func Matches(p domain.Property, c domain.FilterCriteria) bool {
	return matchesCity(p, c.City) &&
		p.Price >= c.MinPrice && p.Price <= c.MaxPrice &&
		(c.Type == domain.TypeAll || p.Type == c.Type) &&
		p.Bedrooms >= c.MinBedrooms
}

func matchesCity(p domain.Property, city string) bool {
	if city == "" {
		return true
	}
	return strings.Contains(strings.ToLower(p.City), strings.ToLower(city))
}

// Filter returns the records matching c in their original order. The input
// slice is not modified.
func Filter(records []domain.Property, c domain.FilterCriteria) []domain.Property {
	out := make([]domain.Property, 0, len(records))
	for _, p := range records {
		if Matches(p, c) {
			out = append(out, p)
		}
	}
	return out
}
