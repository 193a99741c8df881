package dto

type DialogueResponse struct {
	Conversation  string  `json:"conversation"`
	SemanticScore float64 `json:"semantic_score"`
}
