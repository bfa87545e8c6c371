package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"

	"github.com/AgiAbhishek/Vendor-shop/internal/services"
)

// AuthHandler defines handlers for vendor registration and token issuance.
type AuthHandler struct {
	Service *services.AuthService
}

// NewAuthHandler creates a new AuthHandler with the given AuthService.
func NewAuthHandler(service *services.AuthService) *AuthHandler {
	return &AuthHandler{Service: service}
}

// Register handles POST /auth/register to create a vendor account.
// @Summary Register a vendor
// @Description Creates a vendor account; usernames and emails are unique
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body services.RegisterInput true "New vendor credentials"
// @Success 201 {object} map[string]interface{} "Vendor created"
// @Failure 400 {object} map[string]interface{} "Validation error or duplicate"
// @Router /auth/register [post]
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var input services.RegisterInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"detail": detailInvalidBody})
	}

	vendor, err := h.Service.Register(&input)
	if err != nil {
		if errors.Is(err, services.ErrDuplicateVendor) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"detail": "Username or email already exists.",
			})
		}
		return respondError(c, err)
	}

	log.WithField("vendor_id", vendor.ID).Info("vendor registered")
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"id":       vendor.ID,
		"username": vendor.Username,
		"email":    vendor.Email,
		"message":  "Vendor registered successfully.",
	})
}

// Login handles POST /auth/login to issue an access/refresh token pair.
// @Summary Log in
// @Description Verifies credentials and returns bearer tokens
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body services.LoginInput true "Vendor credentials"
// @Success 200 {object} services.TokenPair "Token pair"
// @Failure 401 {object} map[string]interface{} "Invalid credentials"
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var input services.LoginInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"detail": detailInvalidBody})
	}

	pair, err := h.Service.Login(&input)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"detail": "No active account found with the given credentials.",
			})
		}
		return respondError(c, err)
	}
	return c.JSON(pair)
}

// Refresh handles POST /auth/refresh to exchange a refresh token for a new
// access token.
// @Summary Refresh an access token
// @Description Exchanges a valid refresh token for a new access token
// @Tags auth
// @Accept json
// @Produce json
// @Param token body object true "Refresh token" SchemaExample({"refresh": "<token>"})
// @Success 200 {object} map[string]interface{} "New access token"
// @Failure 401 {object} map[string]interface{} "Invalid or expired refresh token"
// @Router /auth/refresh [post]
func (h *AuthHandler) Refresh(c *fiber.Ctx) error {
	var input struct {
		Refresh string `json:"refresh"`
	}
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"detail": detailInvalidBody})
	}

	access, err := h.Service.Refresh(input.Refresh)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"detail": "Token is invalid or expired.",
		})
	}
	return c.JSON(fiber.Map{"access": access})
}
