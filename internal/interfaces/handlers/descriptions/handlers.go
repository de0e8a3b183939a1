package descriptions

import (
	"encoding/json"

	"nadlan-backend/internal/application/descriptions"
	"nadlan-backend/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

type Handlers struct {
	Service *descriptions.Service
}

// POST /api/v1/descriptions/enhance: always 200 once title and bullets are present;
// generation failures come back as fallback text.
func (h *Handlers) Enhance(c *fiber.Ctx) error {
	var req descriptions.Request
	if err := json.Unmarshal(c.Body(), &req); err != nil {
		return response.BadRequest(c, "Invalid request body", nil)
	}
	if err := descriptions.Validate(req); err != nil {
		return response.BadRequest(c, err.Error(), nil)
	}
	text := h.Service.Enhance(c.Context(), req)
	return response.Success(c, "Description generated", fiber.Map{"description": text}, nil)
}
