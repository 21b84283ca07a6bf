package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/task-forge/task_forge/internal/auth"
)

// JWTAuth returns a middleware that validates bearer access tokens and puts
// the authenticated user id and email into request locals. Expired and
// malformed tokens both end in 401; the body says which, nothing more.
func JWTAuth(issuer *auth.Issuer) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authz := c.Get(fiber.HeaderAuthorization)
		if !strings.HasPrefix(strings.ToLower(authz), "bearer ") {
			return fiber.NewError(http.StatusUnauthorized, "missing bearer token")
		}
		tokenStr := strings.TrimSpace(authz[len("Bearer "):])

		claims, err := issuer.Decode(tokenStr)
		if err != nil {
			if errors.Is(err, auth.ErrTokenExpired) {
				return fiber.NewError(http.StatusUnauthorized, "token expired")
			}
			return fiber.NewError(http.StatusUnauthorized, "invalid token")
		}

		sub, _ := claims["user_id"].(string)
		if sub == "" {
			return fiber.NewError(http.StatusUnauthorized, "invalid token")
		}
		email, _ := claims["email"].(string)

		c.Locals("user_id", sub)
		c.Locals("email", email)
		return c.Next()
	}
}
