package descriptions

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http/httptest"
	"testing"

	"nadlan-backend/internal/application/descriptions"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubGenerator struct {
	text string
	err  error
}

func (s stubGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	return s.text, s.err
}

func enhance(t *testing.T, gen descriptions.Generator, body string) (int, map[string]interface{}) {
	h := &Handlers{Service: &descriptions.Service{Generator: gen}}
	app := fiber.New()
	app.Post("/enhance", h.Enhance)
	req := httptest.NewRequest("POST", "/enhance", bytes.NewReader([]byte(body)))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	var out map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return resp.StatusCode, out
}

const request = `{"title":"דירת גן","type":"Apartment","city":"חיפה","bedrooms":3,"area":95,"bullets":"גינה, חניה"}`

func TestEnhance_Generated(t *testing.T) {
	code, out := enhance(t, stubGenerator{text: "תיאור מרשים"}, request)
	assert.Equal(t, fiber.StatusOK, code)
	assert.Equal(t, "תיאור מרשים", out["data"].(map[string]interface{})["description"])
}

func TestEnhance_Fallbacks(t *testing.T) {
	_, out := enhance(t, stubGenerator{err: errors.New("quota")}, request)
	assert.Equal(t, descriptions.FallbackError, out["data"].(map[string]interface{})["description"])

	_, out = enhance(t, stubGenerator{text: "  "}, request)
	assert.Equal(t, descriptions.FallbackEmpty, out["data"].(map[string]interface{})["description"])
}

func TestEnhance_MissingInput(t *testing.T) {
	code, out := enhance(t, stubGenerator{text: "unused"}, `{"title":"דירה"}`)
	assert.Equal(t, fiber.StatusBadRequest, code)
	assert.Equal(t, descriptions.ErrMissingInput.Error(), out["error"].(map[string]interface{})["message"])
}
