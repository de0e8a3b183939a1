package domain

// PricingPlan is a yearly listing package. Price is in shekels.
type PricingPlan struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	Price     float64  `json:"price"`
	Features  []string `json:"features"`
	IsPremium bool     `json:"is_premium"`
	MaxImages int      `json:"max_images"`
}
