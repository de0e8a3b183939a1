package payments

import (
	"context"
	"errors"
	"strings"
	"time"
	"unicode/utf8"

	"nadlan-backend/internal/domain"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// DefaultDelay mirrors the checkout spinner shown to the seller.
const DefaultDelay = 2 * time.Second

// Currency of every plan price.
const Currency = "ILS"

var (
	ErrNoPlan          = errors.New("No plan selected")
	ErrMissingCardData = errors.New("Card holder, number, expiry and CVV are required")
	ErrCardFieldLength = errors.New("Card field exceeds maximum length")
)

// CardDetails is what the checkout form collects. Nothing is charged.
type CardDetails struct {
	HolderName string `json:"holder_name"`
	Number     string `json:"number"`
	Expiry     string `json:"expiry"`
	CVV        string `json:"cvv"`
}

// Validate checks presence and the form's max lengths (16/5/3).
func (c CardDetails) Validate() error {
	if strings.TrimSpace(c.HolderName) == "" || c.Number == "" || c.Expiry == "" || c.CVV == "" {
		return ErrMissingCardData
	}
	if utf8.RuneCountInString(c.Number) > 16 || utf8.RuneCountInString(c.Expiry) > 5 || utf8.RuneCountInString(c.CVV) > 3 {
		return ErrCardFieldLength
	}
	return nil
}

func (c CardDetails) last4() string {
	r := []rune(c.Number)
	if len(r) <= 4 {
		return c.Number
	}
	return string(r[len(r)-4:])
}

// Processor charges a plan. Real gateways are out of scope; Simulator is the
// only implementation.
type Processor interface {
	Charge(ctx context.Context, plan *domain.PricingPlan, card CardDetails) (*domain.Receipt, error)
}

// Simulator accepts any well-formed card after Delay.
type Simulator struct {
	Delay time.Duration
	Now   func() time.Time
}

func (s *Simulator) Charge(ctx context.Context, plan *domain.PricingPlan, card CardDetails) (*domain.Receipt, error) {
	if plan == nil {
		return nil, ErrNoPlan
	}
	if err := card.Validate(); err != nil {
		return nil, err
	}
	if s.Delay > 0 {
		timer := time.NewTimer(s.Delay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-timer.C:
		}
	}
	now := time.Now
	if s.Now != nil {
		now = s.Now
	}
	r := &domain.Receipt{
		ID:          uuid.NewString(),
		PlanID:      plan.ID,
		Amount:      plan.Price,
		Currency:    Currency,
		CardLast4:   card.last4(),
		ProcessedAt: now(),
	}
	log.Info().Str("receipt_id", r.ID).Str("plan_id", r.PlanID).Float64("amount", r.Amount).Msg("Simulated payment accepted")
	return r, nil
}
