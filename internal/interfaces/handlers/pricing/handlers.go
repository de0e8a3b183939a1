package pricing

import (
	"encoding/json"
	"errors"

	"nadlan-backend/internal/application/appstate"
	"nadlan-backend/internal/application/pricing"
	"nadlan-backend/internal/domain"
	"nadlan-backend/internal/interfaces/handlers/visitor"
	"nadlan-backend/internal/pkg/locale"
	"nadlan-backend/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

type Handlers struct{}

type planView struct {
	domain.PricingPlan
	PriceLabel string `json:"price_label"`
}

// GET /api/v1/pricing/plans
func (h *Handlers) Plans(c *fiber.Ctx) error {
	plans := pricing.Plans()
	out := make([]planView, 0, len(plans))
	for _, p := range plans {
		out = append(out, planView{PricingPlan: p, PriceLabel: locale.FormatPrice(p.Price)})
	}
	return response.Success(c, "Plans fetched successfully", out, nil)
}

type selectBody struct {
	PlanID string `json:"plan_id"`
}

// POST /api/v1/pricing/select: body { plan_id }; moves the visitor to checkout.
func (h *Handlers) Select(c *fiber.Ctx) error {
	var body selectBody
	if err := json.Unmarshal(c.Body(), &body); err != nil {
		return response.BadRequest(c, "Invalid request body", nil)
	}
	plan, err := pricing.Get(body.PlanID)
	if errors.Is(err, pricing.ErrPlanNotFound) {
		return response.NotFound(c, err.Error())
	}
	if err != nil {
		return err
	}
	cont := visitor.Load(c)
	st := cont.Dispatch(appstate.PlanSelected{PlanID: plan.ID})
	if err := visitor.Save(c, st); err != nil {
		return err
	}
	return response.Success(c, "Plan selected", st, nil)
}
