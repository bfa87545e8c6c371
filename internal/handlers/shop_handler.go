package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"github.com/AgiAbhishek/Vendor-shop/internal/middleware"
	"github.com/AgiAbhishek/Vendor-shop/internal/models"
	"github.com/AgiAbhishek/Vendor-shop/internal/services"
)

// ShopHandler defines handlers for the vendor-facing shop CRUD resources.
type ShopHandler struct {
	Service *services.ShopService
}

// NewShopHandler creates a new ShopHandler with the given ShopService.
func NewShopHandler(service *services.ShopService) *ShopHandler {
	return &ShopHandler{Service: service}
}

type shopListResponse struct {
	Count    int64         `json:"count"`
	Next     *string       `json:"next"`
	Previous *string       `json:"previous"`
	Results  []models.Shop `json:"results"`
}

func callerID(c *fiber.Ctx) (uuid.UUID, bool) {
	id, ok := c.Locals(middleware.VendorIDKey).(uuid.UUID)
	return id, ok
}

// shopID parses the :id path param. An unparseable id is indistinguishable
// from an unknown one and reported as NotFound.
func shopID(c *fiber.Ctx) (uuid.UUID, error) {
	return uuid.Parse(c.Params("id"))
}

// ListShops handles GET /shops to list the caller's shops.
// @Summary List the caller's shops
// @Description Gets a page of shops owned by the authenticated vendor, newest first
// @Tags shops
// @Accept json
// @Produce json
// @Param business_type query string false "Exact case-insensitive business type filter"
// @Param page query int false "Page number (default 1)"
// @Param page_size query int false "Page size (default 20)"
// @Success 200 {object} shopListResponse "Page of shops"
// @Failure 401 {object} map[string]interface{} "Unauthenticated"
// @Router /shops [get]
func (h *ShopHandler) ListShops(c *fiber.Ctx) error {
	vendorID, ok := callerID(c)
	if !ok {
		return c.SendStatus(fiber.StatusUnauthorized)
	}

	page := c.QueryInt("page", 1)
	pageSize := c.QueryInt("page_size", 20)
	shops, total, err := h.Service.List(vendorID, c.Query("business_type"), page, pageSize)
	if err != nil {
		return respondError(c, err)
	}
	if shops == nil {
		shops = []models.Shop{}
	}

	return c.JSON(shopListResponse{
		Count:   total,
		Results: shops,
	})
}

// CreateShop handles POST /shops to create a shop owned by the caller.
// @Summary Create a shop
// @Description Creates a shop record owned by the authenticated vendor
// @Tags shops
// @Accept json
// @Produce json
// @Param shop body services.ShopInput true "Shop fields"
// @Success 201 {object} models.Shop "Created shop"
// @Failure 400 {object} map[string]interface{} "Validation error"
// @Failure 401 {object} map[string]interface{} "Unauthenticated"
// @Router /shops [post]
func (h *ShopHandler) CreateShop(c *fiber.Ctx) error {
	vendorID, ok := callerID(c)
	if !ok {
		return c.SendStatus(fiber.StatusUnauthorized)
	}

	var input services.ShopInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"detail": detailInvalidBody})
	}

	shop, err := h.Service.Create(vendorID, &input)
	if err != nil {
		return respondError(c, err)
	}

	log.WithFields(log.Fields{"shop_id": shop.ID, "vendor_id": vendorID}).Info("shop created")
	return c.Status(fiber.StatusCreated).JSON(shop)
}

// GetShop handles GET /shops/:id to retrieve a single owned shop.
// @Summary Get a shop by ID
// @Description Gets one shop; only its owner may read it
// @Tags shops
// @Accept json
// @Produce json
// @Param id path string true "Shop ID"
// @Success 200 {object} models.Shop "Shop found"
// @Failure 403 {object} map[string]interface{} "Caller is not the owner"
// @Failure 404 {object} map[string]interface{} "Shop not found"
// @Router /shops/{id} [get]
func (h *ShopHandler) GetShop(c *fiber.Ctx) error {
	vendorID, ok := callerID(c)
	if !ok {
		return c.SendStatus(fiber.StatusUnauthorized)
	}
	id, err := shopID(c)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"detail": detailNotFound})
	}

	shop, err := h.Service.Retrieve(vendorID, id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(shop)
}

// UpdateShop handles PUT /shops/:id to replace a shop's full field set.
// @Summary Update a shop
// @Description Replaces all fields of an owned shop; business_type keeps its stored value when absent
// @Tags shops
// @Accept json
// @Produce json
// @Param id path string true "Shop ID"
// @Param shop body services.ShopInput true "Full shop fields"
// @Success 200 {object} models.Shop "Updated shop"
// @Failure 400 {object} map[string]interface{} "Validation error"
// @Failure 403 {object} map[string]interface{} "Caller is not the owner"
// @Failure 404 {object} map[string]interface{} "Shop not found"
// @Router /shops/{id} [put]
func (h *ShopHandler) UpdateShop(c *fiber.Ctx) error {
	vendorID, ok := callerID(c)
	if !ok {
		return c.SendStatus(fiber.StatusUnauthorized)
	}
	id, err := shopID(c)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"detail": detailNotFound})
	}

	var input services.ShopInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"detail": detailInvalidBody})
	}

	shop, err := h.Service.Update(vendorID, id, &input)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(shop)
}

// PatchShop handles PATCH /shops/:id to update only the provided fields.
// @Summary Partially update a shop
// @Description Overwrites only the fields present in the body
// @Tags shops
// @Accept json
// @Produce json
// @Param id path string true "Shop ID"
// @Param shop body services.ShopPatch true "Fields to change"
// @Success 200 {object} models.Shop "Updated shop"
// @Failure 400 {object} map[string]interface{} "Validation error"
// @Failure 403 {object} map[string]interface{} "Caller is not the owner"
// @Failure 404 {object} map[string]interface{} "Shop not found"
// @Router /shops/{id} [patch]
func (h *ShopHandler) PatchShop(c *fiber.Ctx) error {
	vendorID, ok := callerID(c)
	if !ok {
		return c.SendStatus(fiber.StatusUnauthorized)
	}
	id, err := shopID(c)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"detail": detailNotFound})
	}

	var patch services.ShopPatch
	if err := c.BodyParser(&patch); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"detail": detailInvalidBody})
	}

	shop, err := h.Service.PartialUpdate(vendorID, id, &patch)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(shop)
}

// DeleteShop handles DELETE /shops/:id to permanently remove an owned shop.
// @Summary Delete a shop
// @Description Permanently deletes an owned shop record
// @Tags shops
// @Accept json
// @Produce json
// @Param id path string true "Shop ID"
// @Success 204 "No Content"
// @Failure 403 {object} map[string]interface{} "Caller is not the owner"
// @Failure 404 {object} map[string]interface{} "Shop not found"
// @Router /shops/{id} [delete]
func (h *ShopHandler) DeleteShop(c *fiber.Ctx) error {
	vendorID, ok := callerID(c)
	if !ok {
		return c.SendStatus(fiber.StatusUnauthorized)
	}
	id, err := shopID(c)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"detail": detailNotFound})
	}

	if err := h.Service.Destroy(vendorID, id); err != nil {
		return respondError(c, err)
	}

	log.WithFields(log.Fields{"shop_id": id, "vendor_id": vendorID}).Info("shop deleted")
	return c.SendStatus(fiber.StatusNoContent)
}
