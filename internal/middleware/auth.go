package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/AgiAbhishek/Vendor-shop/internal/auth"
)

// VendorIDKey is the locals key under which RequireAuth stores the caller id.
const VendorIDKey = "vendorID"

// RequireAuth resolves the bearer token to a vendor id and stores it in the
// request locals. Requests without a valid access token get 401.
func RequireAuth(tokens *auth.TokenManager) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get(fiber.HeaderAuthorization)
		if !strings.HasPrefix(header, "Bearer ") {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"detail": "Authentication credentials were not provided.",
			})
		}

		claims, err := tokens.ValidateAccessToken(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"detail": "Invalid or expired token.",
			})
		}

		c.Locals(VendorIDKey, claims.VendorID)
		return c.Next()
	}
}
