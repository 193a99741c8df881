package handlers

import (
	"rickverse/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type CharacterHandler struct {
	charService *service.CharacterService
	logger      *zap.Logger
}

func NewCharacterHandler(charService *service.CharacterService, logger *zap.Logger) *CharacterHandler {
	return &CharacterHandler{
		charService: charService,
		logger:      logger,
	}
}

// GetCharacter godoc
// @Summary Get a character by id
// @Tags characters
// @Produce json
// @Param id path int true "Character id"
// @Success 200 {object} models.Character
// @Failure 400 {object} map[string]string
// @Failure 502 {object} map[string]string
// @Router /characters/{id} [get]
func (h *CharacterHandler) GetCharacter(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid character id",
		})
	}

	character, err := h.charService.GetByID(c.Context(), id)
	if err != nil {
		h.logger.Error("Failed to fetch character", zap.Int("id", id), zap.Error(err))
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"error": "Failed to fetch character",
		})
	}

	return c.JSON(character)
}

// ListLocations godoc
// @Summary List locations
// @Tags characters
// @Produce json
// @Success 200 {array} models.Location
// @Failure 502 {object} map[string]string
// @Router /locations [get]
func (h *CharacterHandler) ListLocations(c *fiber.Ctx) error {
	locations, err := h.charService.ListLocations(c.Context())
	if err != nil {
		h.logger.Error("Failed to list locations", zap.Error(err))
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"error": "Failed to list locations",
		})
	}

	return c.JSON(locations)
}

// ListResidents godoc
// @Summary List a location's residents
// @Tags characters
// @Produce json
// @Param id path int true "Location id"
// @Success 200 {array} models.Character
// @Failure 400 {object} map[string]string
// @Failure 502 {object} map[string]string
// @Router /locations/{id}/residents [get]
func (h *CharacterHandler) ListResidents(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid location id",
		})
	}

	residents, err := h.charService.GetResidents(c.Context(), id)
	if err != nil {
		h.logger.Error("Failed to list residents", zap.Int("id", id), zap.Error(err))
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"error": "Failed to list residents",
		})
	}

	return c.JSON(residents)
}
