package payments

import (
	"encoding/json"
	"errors"

	"nadlan-backend/internal/application/appstate"
	"nadlan-backend/internal/application/payments"
	"nadlan-backend/internal/application/pricing"
	"nadlan-backend/internal/interfaces/handlers/visitor"
	"nadlan-backend/internal/pkg/locale"
	"nadlan-backend/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

type Handlers struct {
	Processor payments.Processor
}

var cardErrors = map[error]bool{
	payments.ErrMissingCardData: true,
	payments.ErrCardFieldLength: true,
}

// POST /api/v1/payments/pay: charges the selected plan, then opens the listing form.
func (h *Handlers) Pay(c *fiber.Ctx) error {
	var card payments.CardDetails
	if err := json.Unmarshal(c.Body(), &card); err != nil {
		return response.BadRequest(c, "Invalid request body", nil)
	}

	cont := visitor.Load(c)
	planID := cont.State().SelectedPlanID
	if planID == "" {
		return response.Conflict(c, payments.ErrNoPlan.Error())
	}
	plan, err := pricing.Get(planID)
	if err != nil {
		return response.Conflict(c, err.Error())
	}

	receipt, err := h.Processor.Charge(c.Context(), plan, card)
	if err != nil {
		for known := range cardErrors {
			if errors.Is(err, known) {
				return response.BadRequest(c, err.Error(), nil)
			}
		}
		return err
	}

	st := cont.Dispatch(appstate.PaymentCompleted{PlanID: plan.ID, ReceiptID: receipt.ID})
	if err := visitor.Save(c, st); err != nil {
		return err
	}
	return response.Success(c, "Payment completed", fiber.Map{
		"receipt":      receipt,
		"amount_label": locale.FormatPrice(receipt.Amount),
	}, fiber.Map{"token": st.Token})
}
