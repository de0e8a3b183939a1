// Package visitor keeps each visitor's UI state in their session.
package visitor

import (
	"nadlan-backend/internal/application/appstate"
	"nadlan-backend/internal/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
)

const stateKey = "app_state"

// Load restores the visitor's state container; a missing or unreadable
// state starts over at home.
func Load(c *fiber.Ctx) *appstate.Container {
	st := appstate.Initial()
	if _, err := middleware.SessionValue(c, stateKey, &st); err != nil {
		log.Warn().Err(err).Str("session_id", middleware.GetSessionID(c)).Msg("Discarding unreadable app state")
		st = appstate.Initial()
	}
	return appstate.NewContainer(st)
}

// Save writes s back to the session.
func Save(c *fiber.Ctx, s appstate.State) error {
	return middleware.SetSessionValue(c, stateKey, s)
}
