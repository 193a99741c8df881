package handlers

import (
	"rickverse/internal/dto"
	"rickverse/internal/models"
	"rickverse/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type ConversationHandler struct {
	convService *service.ConversationService
	logger      *zap.Logger
}

func NewConversationHandler(convService *service.ConversationService, logger *zap.Logger) *ConversationHandler {
	return &ConversationHandler{
		convService: convService,
		logger:      logger,
	}
}

// SaveConversation godoc
// @Summary Save a conversation
// @Description Embeds the dialogue and persists the conversation with its feedback scores
// @Tags conversations
// @Accept json
// @Produce json
// @Param request body dto.SaveConversationRequest true "Conversation to save"
// @Success 200 {object} dto.SaveConversationResponse
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /save-conversation [post]
func (h *ConversationHandler) SaveConversation(c *fiber.Ctx) error {
	var req dto.SaveConversationRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	if req.Char1 == "" || req.Char2 == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "char1 and char2 are required",
		})
	}
	if req.Dialogue == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "dialogue is required",
		})
	}

	if _, err := h.convService.Save(c.Context(), &req); err != nil {
		h.logger.Error("Failed to save conversation", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to save conversation",
		})
	}

	return c.JSON(dto.SaveConversationResponse{Status: "saved"})
}

// ListConversations godoc
// @Summary List recent conversations
// @Description Returns the newest saved conversations, timestamp descending
// @Tags conversations
// @Produce json
// @Success 200 {array} dto.ConversationResponse
// @Failure 500 {object} map[string]string
// @Router /list-conversations [get]
func (h *ConversationHandler) ListConversations(c *fiber.Ctx) error {
	conversations, err := h.convService.ListRecent(c.Context())
	if err != nil {
		h.logger.Error("Failed to list conversations", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to list conversations",
		})
	}

	return c.JSON(toConversationResponses(conversations))
}

// SearchConversations godoc
// @Summary Search conversations by text query
// @Description Ranks stored conversations by cosine similarity to the query embedding
// @Tags conversations
// @Produce json
// @Param q query string true "Free-text query"
// @Success 200 {array} dto.ConversationResponse
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /search-conversations [get]
func (h *ConversationHandler) SearchConversations(c *fiber.Ctx) error {
	query := c.Query("q")
	if query == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "q is required",
		})
	}

	conversations, err := h.convService.Search(c.Context(), query)
	if err != nil {
		h.logger.Error("Failed to search conversations", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to search conversations",
		})
	}

	return c.JSON(toConversationResponses(conversations))
}

func toConversationResponses(conversations []*models.Conversation) []dto.ConversationResponse {
	responses := make([]dto.ConversationResponse, 0, len(conversations))
	for _, conv := range conversations {
		responses = append(responses, dto.ConversationResponse{
			Timestamp: conv.Timestamp.Format("2006-01-02 15:04:05"),
			Char1:     conv.Char1,
			Char2:     conv.Char2,
			Dialogue:  conv.Dialogue,
			Scores:    conv.Scores,
			Note:      conv.Note,
		})
	}
	return responses
}
