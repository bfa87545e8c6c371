package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/AgiAbhishek/Vendor-shop/internal/services"
)

// NearbyHandler serves the public geo-proximity search endpoint.
type NearbyHandler struct {
	Service         *services.NearbyService
	DefaultRadiusKm float64
}

// NewNearbyHandler creates a new NearbyHandler with the given NearbyService.
func NewNearbyHandler(service *services.NearbyService, defaultRadiusKm float64) *NearbyHandler {
	return &NearbyHandler{Service: service, DefaultRadiusKm: defaultRadiusKm}
}

// Nearby handles GET /shops/nearby to find shops within a radius of a point.
// @Summary Find shops near a point
// @Description Returns all shops within the radius, sorted by distance ascending. Public, rate limited per client IP.
// @Tags shops
// @Accept json
// @Produce json
// @Param lat query number true "Latitude of the center point"
// @Param lng query number true "Longitude of the center point"
// @Param radius query number false "Search radius in km (default 5)"
// @Success 200 {array} models.ShopWithDistance "Shops within the radius"
// @Failure 400 {object} map[string]interface{} "Invalid input"
// @Failure 429 {object} map[string]interface{} "Rate limited"
// @Router /shops/nearby [get]
func (h *NearbyHandler) Nearby(c *fiber.Ctx) error {
	lat, latErr := strconv.ParseFloat(c.Query("lat"), 64)
	lng, lngErr := strconv.ParseFloat(c.Query("lng"), 64)
	if latErr != nil || lngErr != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"detail": "lat and lng are required float query params.",
		})
	}

	radiusKm := h.DefaultRadiusKm
	if raw := c.Query("radius"); raw != "" {
		var err error
		radiusKm, err = strconv.ParseFloat(raw, 64)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"detail": "radius must be a float.",
			})
		}
	}

	results, err := h.Service.Nearby(lat, lng, radiusKm)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(results)
}
