package dto

import "rickverse/internal/models"

type SaveConversationRequest struct {
	ConversationID string                `json:"conversation_id"`
	Timestamp      string                `json:"timestamp"`
	Char1          string                `json:"char1"`
	Char2          string                `json:"char2"`
	Dialogue       string                `json:"dialogue"`
	Scores         models.FeedbackScores `json:"scores"`
	Note           string                `json:"note"`
}

type SaveConversationResponse struct {
	Status string `json:"status"`
}

// ConversationResponse is a stored conversation as returned by the list and
// search routes. The embedding never leaves the store.
type ConversationResponse struct {
	Timestamp string                `json:"timestamp"`
	Char1     string                `json:"char1"`
	Char2     string                `json:"char2"`
	Dialogue  string                `json:"dialogue"`
	Scores    models.FeedbackScores `json:"scores"`
	Note      string                `json:"note"`
}
