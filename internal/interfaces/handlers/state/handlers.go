package state

import (
	"context"
	"errors"

	"nadlan-backend/internal/application/appstate"
	listsvc "nadlan-backend/internal/application/listings"
	"nadlan-backend/internal/application/navigation"
	"nadlan-backend/internal/application/pricing"
	"nadlan-backend/internal/interfaces/handlers/visitor"
	"nadlan-backend/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

type Handlers struct {
	Listings *listsvc.Service
}

// GET /api/v1/state: the visitor's state and whether its view can be drawn.
func (h *Handlers) Get(c *fiber.Ctx) error {
	st := visitor.Load(c).State()
	ok, err := h.renderable(c.Context(), st)
	if err != nil {
		return err
	}
	return response.Success(c, "State fetched successfully", fiber.Map{
		"state":      st,
		"renderable": ok,
	}, nil)
}

// POST /api/v1/state/reset clears the visitor's state back to home.
func (h *Handlers) Reset(c *fiber.Ctx) error {
	st := appstate.Initial()
	if err := visitor.Save(c, st); err != nil {
		return err
	}
	return response.Success(c, "State reset", st, nil)
}

func (h *Handlers) renderable(ctx context.Context, st appstate.State) (bool, error) {
	switch st.View.View {
	case navigation.ViewPayment:
		if st.SelectedPlanID == "" {
			return false, nil
		}
		_, err := pricing.Get(st.SelectedPlanID)
		return err == nil, nil
	case navigation.ViewPropertyDetail:
		if st.View.PropertyID == "" {
			return false, nil
		}
		_, err := h.Listings.GetByID(ctx, st.View.PropertyID)
		if errors.Is(err, listsvc.ErrNotFound) {
			return false, nil
		}
		return err == nil, err
	}
	return true, nil
}
