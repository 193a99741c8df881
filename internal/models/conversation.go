package models

import (
	"time"

	"github.com/google/uuid"
)

// DialogueState is the mutable record passed through the dialogue pipeline.
// It lives for a single pipeline invocation.
type DialogueState struct {
	Char1    *Character
	Char2    *Character
	Dialogue string
	Score    float64
}

// FeedbackScores holds the 1-5 ratings attached to a saved conversation.
type FeedbackScores struct {
	Char1      int `json:"char1"`
	Char2      int `json:"char2"`
	Creativity int `json:"creativity"`
}

// Conversation is a persisted dialogue. Rows are insert-only: never updated
// or deleted. The embedding keeps the dialogue searchable later.
type Conversation struct {
	ID        uuid.UUID      `db:"id"`
	Timestamp time.Time      `db:"timestamp"`
	Char1     string         `db:"char1"`
	Char2     string         `db:"char2"`
	Dialogue  string         `db:"dialogue"`
	Embedding []float32      `db:"embedding"` // stored as a JSON array
	Scores    FeedbackScores `db:"scores"`    // stored as a JSON object
	Note      string         `db:"note"`
}
