package middleware

import (
	"github.com/gofiber/fiber/v2"

	"github.com/AgiAbhishek/Vendor-shop/internal/metrics"
)

// RecordRequests counts every handled request by method, route and status.
func RecordRequests(m *metrics.Metrics) fiber.Handler {
	return func(c *fiber.Ctx) error {
		err := c.Next()
		m.IncRequest(c.Method(), c.Route().Path, c.Response().StatusCode())
		return err
	}
}
