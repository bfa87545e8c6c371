package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/AgiAbhishek/Vendor-shop/internal/services"
)

const (
	detailNotFound    = "Not found"
	detailForbidden   = "Forbidden"
	detailInvalidBody = "Request body must be valid JSON."
)

// respondError maps service errors to their HTTP responses.
func respondError(c *fiber.Ctx, err error) error {
	var verr *services.ValidationError
	switch {
	case errors.As(err, &verr):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"detail": verr.Detail})
	case errors.Is(err, gorm.ErrRecordNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"detail": detailNotFound})
	case errors.Is(err, services.ErrForbidden):
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"detail": detailForbidden})
	default:
		log.WithError(err).Error("unhandled service error")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"detail": err.Error()})
	}
}
