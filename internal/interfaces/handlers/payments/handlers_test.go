package payments

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"nadlan-backend/internal/application/payments"
	pricinghandler "nadlan-backend/internal/interfaces/handlers/pricing"
	"nadlan-backend/internal/middleware"

	"github.com/alicebob/miniredis/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testEnv struct {
	app    *fiber.App
	cookie string
}

func setupPaymentsTest(t *testing.T) *testEnv {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() {
		rdb.Close()
		mr.Close()
	})
	h := &Handlers{Processor: &payments.Simulator{}}
	ph := &pricinghandler.Handlers{}
	app := fiber.New()
	app.Use(middleware.SessionWithClient(rdb, middleware.SessionConfig{}))
	app.Post("/select", ph.Select)
	app.Post("/pay", h.Pay)
	return &testEnv{app: app}
}

func (e *testEnv) post(t *testing.T, path, body string) (*http.Response, map[string]interface{}) {
	req := httptest.NewRequest("POST", path, bytes.NewReader([]byte(body)))
	req.Header.Set("Content-Type", "application/json")
	if e.cookie != "" {
		req.Header.Set("Cookie", middleware.SessionCookieName+"="+e.cookie)
	}
	resp, err := e.app.Test(req)
	require.NoError(t, err)
	for _, ck := range resp.Cookies() {
		if ck.Name == middleware.SessionCookieName {
			e.cookie = ck.Value
		}
	}
	var out map[string]interface{}
	_ = json.NewDecoder(resp.Body).Decode(&out)
	return resp, out
}

const card = `{"holder_name":"ישראל ישראלי","number":"4580123412341234","expiry":"12/29","cvv":"123"}`

func TestPay_RequiresSelectedPlan(t *testing.T) {
	env := setupPaymentsTest(t)
	resp, out := env.post(t, "/pay", card)
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)
	assert.Equal(t, "No plan selected", out["error"].(map[string]interface{})["message"])
}

func TestPay_Success(t *testing.T) {
	env := setupPaymentsTest(t)
	env.post(t, "/select", `{"plan_id":"basic"}`)
	resp, out := env.post(t, "/pay", card)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	data := out["data"].(map[string]interface{})
	receipt := data["receipt"].(map[string]interface{})
	assert.Equal(t, "basic", receipt["plan_id"])
	assert.Equal(t, float64(249), receipt["amount"])
	assert.Equal(t, "ILS", receipt["currency"])
	assert.Equal(t, "1234", receipt["card_last4"])
	assert.Equal(t, "₪ 249", data["amount_label"])
	assert.Equal(t, "/listing-form", out["metadata"].(map[string]interface{})["token"])
}

func TestPay_InvalidCard(t *testing.T) {
	env := setupPaymentsTest(t)
	env.post(t, "/select", `{"plan_id":"premium"}`)
	resp, _ := env.post(t, "/pay", `{"holder_name":"x","number":"","expiry":"12/29","cvv":"1"}`)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	resp, _ = env.post(t, "/pay", `{"holder_name":"x","number":"45801234123412345","expiry":"12/29","cvv":"1"}`)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	resp, _ = env.post(t, "/pay", `{`)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}
