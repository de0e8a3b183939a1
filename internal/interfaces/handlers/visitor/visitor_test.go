package visitor

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"nadlan-backend/internal/application/appstate"
	"nadlan-backend/internal/application/navigation"
	"nadlan-backend/internal/middleware"

	"github.com/alicebob/miniredis/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadSave_RoundTripThroughSession(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	defer mr.Close()
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer rdb.Close()

	app := fiber.New()
	app.Use(middleware.SessionWithClient(rdb, middleware.SessionConfig{}))
	app.Post("/go", func(c *fiber.Ctx) error {
		st := Load(c).Navigate("/search")
		return Save(c, st)
	})
	app.Get("/state", func(c *fiber.Ctx) error {
		return c.JSON(Load(c).State())
	})

	resp, err := app.Test(httptest.NewRequest("POST", "/go", nil))
	require.NoError(t, err)
	var sid string
	for _, ck := range resp.Cookies() {
		if ck.Name == middleware.SessionCookieName {
			sid = ck.Value
		}
	}
	require.NotEmpty(t, sid)

	req := httptest.NewRequest("GET", "/state", nil)
	req.Header.Set("Cookie", middleware.SessionCookieName+"="+sid)
	resp, err = app.Test(req)
	require.NoError(t, err)
	var st appstate.State
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&st))
	assert.Equal(t, "/search", st.Token)
	assert.Equal(t, navigation.ViewSearchResults, st.View.View)
}

func TestLoad_CorruptStateStartsAtHome(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	defer mr.Close()
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer rdb.Close()
	require.NoError(t, mr.Set(middleware.SessionRedisPrefix+"abc", `{"app_state":"not an object"}`))

	app := fiber.New()
	app.Use(middleware.SessionWithClient(rdb, middleware.SessionConfig{}))
	app.Get("/state", func(c *fiber.Ctx) error { return c.JSON(Load(c).State()) })

	req := httptest.NewRequest("GET", "/state", nil)
	req.Header.Set("Cookie", middleware.SessionCookieName+"=abc")
	resp, err := app.Test(req)
	require.NoError(t, err)
	var st appstate.State
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&st))
	assert.Equal(t, navigation.ViewHome, st.View.View)
}
