package pricing

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"nadlan-backend/internal/middleware"

	"github.com/alicebob/miniredis/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupPricingApp(t *testing.T) *fiber.App {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() {
		rdb.Close()
		mr.Close()
	})
	h := &Handlers{}
	app := fiber.New()
	app.Use(middleware.SessionWithClient(rdb, middleware.SessionConfig{}))
	app.Get("/plans", h.Plans)
	app.Post("/select", h.Select)
	return app
}

func TestPlans(t *testing.T) {
	app := setupPricingApp(t)
	resp, err := app.Test(httptest.NewRequest("GET", "/plans", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	var out map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	plans := out["data"].([]interface{})
	require.Len(t, plans, 2)
	basic := plans[0].(map[string]interface{})
	assert.Equal(t, "basic", basic["id"])
	assert.Equal(t, "₪ 249", basic["price_label"])
	assert.Equal(t, "₪ 499", plans[1].(map[string]interface{})["price_label"])
}

func TestSelect(t *testing.T) {
	app := setupPricingApp(t)
	req := httptest.NewRequest("POST", "/select", bytes.NewReader([]byte(`{"plan_id":"premium"}`)))
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	var out map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	data := out["data"].(map[string]interface{})
	assert.Equal(t, "premium", data["selected_plan_id"])
	assert.Equal(t, "/payment", data["token"])
	view := data["view"].(map[string]interface{})
	assert.Equal(t, "payment", view["view"])
	assert.Equal(t, "premium", view["plan_id"])
}

func TestSelect_Errors(t *testing.T) {
	app := setupPricingApp(t)
	resp, err := app.Test(httptest.NewRequest("POST", "/select", bytes.NewReader([]byte(`{"plan_id":"gold"}`))))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest("POST", "/select", bytes.NewReader([]byte(`{`))))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}
