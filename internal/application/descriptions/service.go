package descriptions

import (
	"context"
	"errors"
	"strings"

	"github.com/rs/zerolog/log"
)

// User-facing fallbacks substituted for the generated text.
const (
	FallbackEmpty = "לא ניתן היה ליצור תיאור."
	FallbackError = "שגיאה ביצירת תיאור AI. אנא כתבו ידנית."
)

// ErrMissingInput is returned before any call when title or bullets are blank.
var ErrMissingInput = errors.New("אנא הזינו כותרת וכמה נקודות מפתח על הנכס קודם.")

type Service struct {
	Generator Generator
}

// Validate checks the fields the copywriter cannot do without.
func Validate(r Request) error {
	if strings.TrimSpace(r.Title) == "" || strings.TrimSpace(r.Bullets) == "" {
		return ErrMissingInput
	}
	return nil
}

// Enhance always yields text: the generated description or a fallback.
func (s *Service) Enhance(ctx context.Context, r Request) string {
	if s.Generator == nil {
		log.Warn().Msg("Description generator not configured")
		return FallbackError
	}
	text, err := s.Generator.Generate(ctx, BuildPrompt(r))
	if err != nil {
		log.Error().Err(err).Str("title", r.Title).Msg("Description generation failed")
		return FallbackError
	}
	if strings.TrimSpace(text) == "" {
		return FallbackEmpty
	}
	return text
}
