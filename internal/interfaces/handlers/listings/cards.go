package listings

import (
	"nadlan-backend/internal/domain"
	"nadlan-backend/internal/pkg/locale"
)

// Card is the summary shown in the featured strip and search results.
type Card struct {
	ID         string              `json:"id"`
	Title      string              `json:"title"`
	Address    string              `json:"address"`
	City       string              `json:"city"`
	Type       domain.PropertyType `json:"type"`
	TypeLabel  string              `json:"type_label"`
	Price      float64             `json:"price"`
	PriceLabel string              `json:"price_label"`
	Bedrooms   int                 `json:"bedrooms"`
	Bathrooms  int                 `json:"bathrooms"`
	Area       float64             `json:"area"`
	Image      string              `json:"image"`
	IsPremium  bool                `json:"is_premium"`
}

// Detail is a full property with display labels.
type Detail struct {
	domain.Property
	TypeLabel  string `json:"type_label"`
	PriceLabel string `json:"price_label"`
}

func toCard(p domain.Property) Card {
	card := Card{
		ID:         p.ID,
		Title:      p.Title,
		Address:    p.Address,
		City:       p.City,
		Type:       p.Type,
		TypeLabel:  locale.TypeLabel(p.Type),
		Price:      p.Price,
		PriceLabel: locale.FormatPrice(p.Price),
		Bedrooms:   p.Bedrooms,
		Bathrooms:  p.Bathrooms,
		Area:       p.Area,
		IsPremium:  p.IsPremium,
	}
	if len(p.Images) > 0 {
		card.Image = p.Images[0]
	}
	return card
}

func toCards(ps []domain.Property) []Card {
	out := make([]Card, 0, len(ps))
	for _, p := range ps {
		out = append(out, toCard(p))
	}
	return out
}

func toDetail(p domain.Property) Detail {
	return Detail{
		Property:   p,
		TypeLabel:  locale.TypeLabel(p.Type),
		PriceLabel: locale.FormatPrice(p.Price),
	}
}
