package domain

import "time"

// Receipt is the outcome of a (simulated) plan payment.
type Receipt struct {
	ID          string    `json:"id"`
	PlanID      string    `json:"plan_id"`
	Amount      float64   `json:"amount"`
	Currency    string    `json:"currency"`
	CardLast4   string    `json:"card_last4"`
	ProcessedAt time.Time `json:"processed_at"`
}
