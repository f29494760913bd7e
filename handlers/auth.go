package handlers

import (
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt"
)

// RequireAdmin accepts HS256 bearer tokens whose "role" claim is "admin".
func RequireAdmin(secret []byte) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get(fiber.HeaderAuthorization)
		token := strings.TrimPrefix(header, "Bearer ")
		if token == "" || token == header {
			return fiber.ErrUnauthorized
		}

		claims := jwt.MapClaims{}
		_, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
			}
			return secret, nil
		})
		if err != nil {
			return fiber.ErrUnauthorized
		}

		if claims["role"] != "admin" {
			return fiber.ErrForbidden
		}

		c.Locals("subject", claims["sub"])
		return c.Next()
	}
}
