package handlers

import (
	"rickverse/internal/dto"
	"rickverse/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type DialogueHandler struct {
	dialogueService *service.DialogueService
	logger          *zap.Logger
}

func NewDialogueHandler(dialogueService *service.DialogueService, logger *zap.Logger) *DialogueHandler {
	return &DialogueHandler{
		dialogueService: dialogueService,
		logger:          logger,
	}
}

// RunDialogue godoc
// @Summary Generate a dialogue between two characters
// @Description Fetches both characters, generates a scripted dialogue and scores its semantic alignment
// @Tags dialogue
// @Produce json
// @Param char1_id query int true "First character id"
// @Param char2_id query int true "Second character id"
// @Success 200 {object} dto.DialogueResponse
// @Failure 400 {object} map[string]string
// @Failure 502 {object} map[string]string
// @Router /run-dialogue [get]
func (h *DialogueHandler) RunDialogue(c *fiber.Ctx) error {
	char1ID := c.QueryInt("char1_id")
	char2ID := c.QueryInt("char2_id")
	if char1ID <= 0 || char2ID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "char1_id and char2_id are required",
		})
	}

	state, err := h.dialogueService.Run(c.Context(), char1ID, char2ID)
	if err != nil {
		h.logger.Error("Dialogue pipeline failed", zap.Error(err))
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"error": "Failed to generate dialogue",
		})
	}

	return c.JSON(dto.DialogueResponse{
		Conversation:  state.Dialogue,
		SemanticScore: state.Score,
	})
}
