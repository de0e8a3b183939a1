package pricing

import (
	"errors"

	"nadlan-backend/internal/domain"
)

const (
	PlanBasic   = "basic"
	PlanPremium = "premium"
)

var ErrPlanNotFound = errors.New("Plan not found")

var catalog = []domain.PricingPlan{
	{
		ID:        PlanBasic,
		Name:      "מסלול בסיסי",
		Price:     249,
		IsPremium: false,
		MaxImages: 10,
		Features: []string{
			"פרסום נכס למשך שנה",
			"תיאור נכס מבוסס AI",
			"עד 10 תמונות",
			"קשר ישיר עם קונים",
			"0% עמלת תיווך",
		},
	},
	{
		ID:        PlanPremium,
		Name:      "מסלול פרימיום",
		Price:     499,
		IsPremium: true,
		MaxImages: 25,
		Features: []string{
			"פרסום נכס למשך שנה",
			"מיקום מודגש בתוצאות החיפוש",
			"תיאור נכס AI משודרג",
			"עד 25 תמונות",
			"ליווי משפטי טלפוני",
			"דו\"ח הערכת שווי לנכס",
		},
	},
}

// Plans returns a copy of the catalog in display order.
func Plans() []domain.PricingPlan {
	out := make([]domain.PricingPlan, len(catalog))
	for i, p := range catalog {
		p.Features = append([]string(nil), p.Features...)
		out[i] = p
	}
	return out
}

func Get(id string) (*domain.PricingPlan, error) {
	for _, p := range Plans() {
		if p.ID == id {
			return &p, nil
		}
	}
	return nil, ErrPlanNotFound
}
