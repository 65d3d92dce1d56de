package http

import (
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog/log"

	"github.com/ANIKETSHETTY47/energy-audit-field/internal/domain"
	"github.com/ANIKETSHETTY47/energy-audit-field/internal/service"
)

const userKey = "user_id"

// AuthRequired accepts HS256 bearer tokens signed with secret and stores the
// subject as the user id.
func AuthRequired(secret string) fiber.Handler {
	key := []byte(secret)
	return func(c *fiber.Ctx) error {
		authHeader := c.Get(fiber.HeaderAuthorization)
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Missing authorization header"})
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid authorization header format"})
		}

		var claims jwt.RegisteredClaims
		token, err := jwt.ParseWithClaims(parts[1], &claims, func(*jwt.Token) (any, error) {
			return key, nil
		}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
		if err != nil || !token.Valid || claims.Subject == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid or expired token"})
		}

		c.Locals(userKey, claims.Subject)
		return c.Next()
	}
}

func userID(c *fiber.Ctx) string {
	id, _ := c.Locals(userKey).(string)
	return id
}

// RequestLogger logs one line per request after the error handler has set
// the final status.
func RequestLogger() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		if err := c.Next(); err != nil {
			if herr := c.App().ErrorHandler(c, err); herr != nil {
				_ = c.SendStatus(fiber.StatusInternalServerError)
			}
		}
		status := c.Response().StatusCode()
		ev := log.Info()
		if status >= fiber.StatusInternalServerError {
			ev = log.Error()
		}
		ev.Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", status).
			Dur("latency", time.Since(start)).
			Msg("request")
		return nil
	}
}

// ErrorHandler maps service errors to responses without exposing the
// underlying cause.
func ErrorHandler(c *fiber.Ctx, err error) error {
	var (
		verrs domain.ValidationErrors
		fe    *fiber.Error
		opErr *service.OpError
	)
	switch {
	case errors.As(err, &verrs):
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"error": "Validation failed", "fields": verrs})
	case errors.As(err, &fe):
		return c.Status(fe.Code).JSON(fiber.Map{"error": fe.Message})
	case errors.Is(err, service.ErrNotFound):
		entity := "record"
		if errors.As(err, &opErr) {
			entity = opErr.Entity
		}
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": capitalize(entity) + " not found"})
	}

	log.Error().Err(err).Str("path", c.Path()).Msg("request failed")
	status := fiber.StatusInternalServerError
	if errors.Is(err, service.ErrPhotosDisabled) || errors.Is(err, service.ErrArchiveDisabled) {
		status = fiber.StatusServiceUnavailable
	}
	msg := "Internal server error"
	if errors.As(err, &opErr) {
		msg = opErr.UserMessage()
	}
	return c.Status(status).JSON(fiber.Map{"error": msg})
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
