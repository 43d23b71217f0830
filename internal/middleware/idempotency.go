package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	log "github.com/sirupsen/logrus"
)

const CorrelationIDHeader = "X-Correlation-ID"

type cachedResponse struct {
	Status int    `json:"status"`
	Body   []byte `json:"body"`
}

// IdempotencyMiddleware provides idempotency for POST/PATCH/PUT requests using X-Correlation-ID.
// A repeated correlation ID from the same caller within ttl replays the first
// successful response with its status code.
func IdempotencyMiddleware(redisClient *redis.Client, ttl time.Duration) fiber.Handler {
	return func(c *fiber.Ctx) error {
		switch c.Method() {
		case fiber.MethodPost, fiber.MethodPatch, fiber.MethodPut:
		default:
			return c.Next()
		}

		correlationID := c.Get(CorrelationIDHeader)
		if correlationID == "" {
			// No correlation ID = no idempotency check
			return c.Next()
		}

		key := "idempotency:" + UserID(c) + ":" + c.Path() + ":" + correlationID
		ctx := c.UserContext()

		data, err := redisClient.Get(ctx, key).Bytes()
		switch {
		case err == nil:
			var cached cachedResponse
			if jsonErr := json.Unmarshal(data, &cached); jsonErr == nil {
				c.Set("X-Idempotent-Replay", "true")
				c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
				return c.Status(cached.Status).Send(cached.Body)
			}
			log.WithField("key", key).Warn("discarding unreadable idempotency entry")
		case !errors.Is(err, redis.Nil):
			log.WithError(err).Warn("idempotency lookup failed, processing request")
		}

		if err := c.Next(); err != nil {
			return err
		}

		// Cache successful responses (2xx status codes)
		status := c.Response().StatusCode()
		if status < 200 || status >= 300 {
			return nil
		}
		body := c.Response().Body()
		if len(body) == 0 {
			return nil
		}

		// the response buffer is reused once the handler returns
		payload, err := json.Marshal(cachedResponse{Status: status, Body: append([]byte(nil), body...)})
		if err != nil {
			return nil
		}
		setCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
		defer cancel()
		if err := redisClient.Set(setCtx, key, payload, ttl).Err(); err != nil {
			log.WithError(err).Warn("failed to store idempotent response")
		}
		return nil
	}
}
