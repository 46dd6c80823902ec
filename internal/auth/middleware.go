package auth

import (
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// LocalsClaimsKey is where verified claims land on the request context.
const LocalsClaimsKey = "claims"

// NewMiddleware returns a Fiber middleware that requires a valid Bearer
// token. An absent, malformed, or rejected credential all yield the same
// unauthorized outcome; nothing downstream runs in that case.
func NewMiddleware(verifier Verifier) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			log.Println("⚠️  Auth: missing or invalid Bearer header")
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Unauthorized",
			})
		}

		token := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
		claims, err := verifier.Verify(token)
		if err != nil {
			log.Printf("⚠️  Auth: token verification failed: %v\n", err)
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Unauthorized",
			})
		}

		c.Locals(LocalsClaimsKey, claims)
		return c.Next()
	}
}
