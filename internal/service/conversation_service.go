package service

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"rickverse/internal/dto"
	"rickverse/internal/models"
	"rickverse/internal/repository"
	"rickverse/pkg/config"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ConversationService persists dialogues and answers list/search queries over
// them. Search is an exhaustive cosine scan; the expected corpus is small
// enough that no index is warranted.
type ConversationService struct {
	convRepo *repository.ConversationRepository
	embedder Embedder
	config   *config.SearchConfig
	logger   *zap.Logger
}

func NewConversationService(
	convRepo *repository.ConversationRepository,
	embedder Embedder,
	cfg *config.SearchConfig,
	logger *zap.Logger,
) *ConversationService {
	return &ConversationService{
		convRepo: convRepo,
		embedder: embedder,
		config:   cfg,
		logger:   logger,
	}
}

// Save embeds the dialogue and inserts the conversation row. Saved rows are
// never updated or deleted.
func (s *ConversationService) Save(ctx context.Context, req *dto.SaveConversationRequest) (*models.Conversation, error) {
	dialogue := strings.TrimSpace(req.Dialogue)
	if dialogue == "" {
		return nil, fmt.Errorf("dialogue must not be empty")
	}

	id := uuid.New()
	if req.ConversationID != "" {
		parsed, err := uuid.Parse(req.ConversationID)
		if err != nil {
			return nil, fmt.Errorf("invalid conversation id: %w", err)
		}
		id = parsed
	}

	timestamp := time.Now().UTC()
	if req.Timestamp != "" {
		parsed, err := time.Parse("2006-01-02 15:04:05", req.Timestamp)
		if err != nil {
			return nil, fmt.Errorf("invalid timestamp: %w", err)
		}
		timestamp = parsed
	}

	embedding, err := s.embedder.Embed(ctx, dialogue)
	if err != nil {
		return nil, fmt.Errorf("failed to embed dialogue: %w", err)
	}

	conv := &models.Conversation{
		ID:        id,
		Timestamp: timestamp,
		Char1:     req.Char1,
		Char2:     req.Char2,
		Dialogue:  sanitizeUTF8(dialogue),
		Embedding: embedding,
		Scores:    req.Scores,
		Note:      sanitizeUTF8(req.Note),
	}

	if err := s.convRepo.Create(ctx, conv); err != nil {
		return nil, fmt.Errorf("failed to save conversation: %w", err)
	}

	s.logger.Info("Conversation saved",
		zap.String("id", conv.ID.String()),
		zap.String("char1", conv.Char1),
		zap.String("char2", conv.Char2),
	)

	return conv, nil
}

// ListRecent returns the newest conversations, capped by the configured list
// limit, timestamp descending.
func (s *ConversationService) ListRecent(ctx context.Context) ([]*models.Conversation, error) {
	return s.convRepo.ListRecent(ctx, s.config.ListLimit)
}

// Search embeds the query and ranks all stored conversations by cosine
// similarity, returning the configured top K.
func (s *ConversationService) Search(ctx context.Context, query string) ([]*models.Conversation, error) {
	queryVec, err := s.embedder.Embed(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to embed query: %w", err)
	}

	conversations, err := s.convRepo.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load conversations: %w", err)
	}

	similarities := make(map[uuid.UUID]float64, len(conversations))
	for _, conv := range conversations {
		similarities[conv.ID] = CosineSimilarity(queryVec, conv.Embedding)
	}

	sort.SliceStable(conversations, func(i, j int) bool {
		return similarities[conversations[i].ID] > similarities[conversations[j].ID]
	})

	if len(conversations) > s.config.TopK {
		conversations = conversations[:s.config.TopK]
	}

	s.logger.Info("Conversation search completed",
		zap.String("query", query),
		zap.Int("results", len(conversations)),
	)

	return conversations, nil
}
