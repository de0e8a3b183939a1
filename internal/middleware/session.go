package middleware

import (
	"context"
	"encoding/json"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// SessionConfig for the Redis-backed visitor session.
type SessionConfig struct {
	RedisURL          string
	AllowCrossSiteDev bool
	IsProduction      bool
}

const (
	SessionCookieName  = "nadlan.sid"
	SessionRedisPrefix = "session:"
	sessionMaxAge      = 24 * time.Hour

	sessionDataLocal = "session_data"
	sessionIDLocal   = "session_id"
)

type sessionData map[string]json.RawMessage

// Session returns a Fiber middleware that loads/saves session from Redis.
func Session(cfg SessionConfig) (fiber.Handler, *redis.Client, error) {
	opt, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		return nil, nil, err
	}
	rdb := redis.NewClient(opt)
	return SessionWithClient(rdb, cfg), rdb, nil
}

// SessionWithClient is Session over an existing Redis client.
// Every visitor gets a session; a missing cookie starts a fresh one.
func SessionWithClient(rdb *redis.Client, cfg SessionConfig) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sessionID := c.Cookies(SessionCookieName)

		data := sessionData{}
		if sessionID != "" {
			b, err := rdb.Get(context.Background(), SessionRedisPrefix+sessionID).Bytes()
			if err == nil {
				_ = json.Unmarshal(b, &data)
			}
		} else {
			sessionID = uuid.New().String()
			cookie := SessionCookieConfig(cfg)
			cookie.Value = sessionID
			c.Cookie(&cookie)
		}

		c.Locals(sessionDataLocal, data)
		c.Locals(sessionIDLocal, sessionID)

		if err := c.Next(); err != nil {
			return err
		}

		b, err := json.Marshal(data)
		if err != nil {
			return err
		}
		return rdb.Set(context.Background(), SessionRedisPrefix+sessionID, b, sessionMaxAge).Err()
	}
}

// GetSessionID returns the current session ID from context.
func GetSessionID(c *fiber.Ctx) string {
	sid, _ := c.Locals(sessionIDLocal).(string)
	return sid
}

// SessionValue decodes the value stored under key into out.
// It reports false when the key is absent.
func SessionValue(c *fiber.Ctx, key string, out interface{}) (bool, error) {
	data, _ := c.Locals(sessionDataLocal).(sessionData)
	raw, ok := data[key]
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return false, err
	}
	return true, nil
}

// SetSessionValue stores v under key; it is written back to Redis after the handler returns.
func SetSessionValue(c *fiber.Ctx, key string, v interface{}) error {
	data, _ := c.Locals(sessionDataLocal).(sessionData)
	if data == nil {
		data = sessionData{}
		c.Locals(sessionDataLocal, data)
	}
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	data[key] = b
	return nil
}

// SessionCookieConfig returns the cookie options for the session cookie.
func SessionCookieConfig(cfg SessionConfig) fiber.Cookie {
	sameSite := "Lax"
	if cfg.AllowCrossSiteDev {
		sameSite = "None"
	}
	secure := cfg.IsProduction && cfg.AllowCrossSiteDev
	return fiber.Cookie{
		Name:     SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   int(sessionMaxAge.Seconds()),
		HTTPOnly: true,
		Secure:   secure,
		SameSite: sameSite,
	}
}
