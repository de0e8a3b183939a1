package navigation

import (
	"encoding/json"

	"nadlan-backend/internal/application/navigation"
	"nadlan-backend/internal/interfaces/handlers/visitor"
	"nadlan-backend/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

type Handlers struct{}

// GET /api/v1/navigation/resolve?token=
func (h *Handlers) Resolve(c *fiber.Ctx) error {
	token := navigation.TokenFromFragment(c.Query("token"))
	return response.Success(c, "Token resolved", fiber.Map{
		"token": token,
		"view":  navigation.Resolve(token),
	}, nil)
}

type navigateBody struct {
	Token string `json:"token"`
}

// POST /api/v1/navigation/navigate: body { token }
func (h *Handlers) Navigate(c *fiber.Ctx) error {
	var body navigateBody
	if err := json.Unmarshal(c.Body(), &body); err != nil {
		return response.BadRequest(c, "Invalid request body", nil)
	}
	cont := visitor.Load(c)
	st := cont.Navigate(navigation.TokenFromFragment(body.Token))
	if err := visitor.Save(c, st); err != nil {
		return err
	}
	return response.Success(c, "Navigated", st, nil)
}
