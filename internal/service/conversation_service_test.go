package service

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"rickverse/internal/dto"
	"rickverse/internal/models"
	"rickverse/internal/repository"
	"rickverse/pkg/config"
	"rickverse/pkg/sqlite"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestConversationService(t *testing.T, embedder Embedder, searchCfg *config.SearchConfig) *ConversationService {
	t.Helper()

	db, err := sqlite.Open(&config.DatabaseConfig{
		Path: filepath.Join(t.TempDir(), "rm.db"),
	}, zap.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	if searchCfg == nil {
		searchCfg = &config.SearchConfig{TopK: 10, ListLimit: 20}
	}

	convRepo := repository.NewConversationRepository(db, zap.NewNop())
	return NewConversationService(convRepo, embedder, searchCfg, zap.NewNop())
}

func TestConversationSaveThenList(t *testing.T) {
	embedder := &stubEmbedder{fallback: []float32{0.5, 0.5, 0.5}}
	svc := newTestConversationService(t, embedder, nil)
	ctx := context.Background()

	req := &dto.SaveConversationRequest{
		Char1:    "Rick Sanchez",
		Char2:    "Morty Smith",
		Dialogue: "Rick Sanchez: Portal time.\nMorty Smith: Not again.",
		Scores:   models.FeedbackScores{Char1: 5, Char2: 4, Creativity: 3},
		Note:     "pretty solid banter",
	}

	saved, err := svc.Save(ctx, req)
	require.NoError(t, err)
	require.NotEqual(t, "", saved.ID.String())
	require.Equal(t, []float32{0.5, 0.5, 0.5}, saved.Embedding)

	listed, err := svc.ListRecent(ctx)
	require.NoError(t, err)
	require.Len(t, listed, 1)
	require.Equal(t, "Rick Sanchez", listed[0].Char1)
	require.Equal(t, "Morty Smith", listed[0].Char2)
	require.Equal(t, req.Dialogue, listed[0].Dialogue)
	require.Equal(t, req.Note, listed[0].Note)
	require.Equal(t, req.Scores, listed[0].Scores)
}

func TestConversationSaveRejectsEmptyDialogue(t *testing.T) {
	svc := newTestConversationService(t, &stubEmbedder{fallback: []float32{1}}, nil)

	_, err := svc.Save(context.Background(), &dto.SaveConversationRequest{
		Char1:    "Rick Sanchez",
		Char2:    "Morty Smith",
		Dialogue: "   ",
	})
	require.Error(t, err)
	require.Contains(t, err.Error(), "empty")
}

func TestConversationListOrderAndLimit(t *testing.T) {
	embedder := &stubEmbedder{fallback: []float32{1, 0}}
	svc := newTestConversationService(t, embedder, &config.SearchConfig{TopK: 10, ListLimit: 20})
	ctx := context.Background()

	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 25; i++ {
		_, err := svc.Save(ctx, &dto.SaveConversationRequest{
			Timestamp: base.Add(time.Duration(i) * time.Minute).Format("2006-01-02 15:04:05"),
			Char1:     "Rick Sanchez",
			Char2:     "Morty Smith",
			Dialogue:  fmt.Sprintf("Rick Sanchez: take %d", i),
		})
		require.NoError(t, err)
	}

	listed, err := svc.ListRecent(ctx)
	require.NoError(t, err)
	require.Len(t, listed, 20)

	// newest first
	require.Equal(t, "Rick Sanchez: take 24", listed[0].Dialogue)
	for i := 1; i < len(listed); i++ {
		require.False(t, listed[i].Timestamp.After(listed[i-1].Timestamp))
	}
}

func TestConversationSearchRanking(t *testing.T) {
	spaceDialogue := "Rick Sanchez: The void stares back, Morty."
	foodDialogue := "Rick Sanchez: Szechuan sauce is the only currency."

	embedder := &stubEmbedder{
		vectors: map[string][]float32{
			spaceDialogue:       {1, 0, 0},
			foodDialogue:        {0, 1, 0},
			"cosmic emptiness":  {0.9, 0.1, 0},
			"condiment economy": {0.1, 0.9, 0},
		},
	}
	svc := newTestConversationService(t, embedder, nil)
	ctx := context.Background()

	for _, dialogue := range []string{spaceDialogue, foodDialogue} {
		_, err := svc.Save(ctx, &dto.SaveConversationRequest{
			Char1:    "Rick Sanchez",
			Char2:    "Morty Smith",
			Dialogue: dialogue,
		})
		require.NoError(t, err)
	}

	results, err := svc.Search(ctx, "cosmic emptiness")
	require.NoError(t, err)
	require.Len(t, results, 2)
	require.Equal(t, spaceDialogue, results[0].Dialogue)

	results, err = svc.Search(ctx, "condiment economy")
	require.NoError(t, err)
	require.Equal(t, foodDialogue, results[0].Dialogue)
}

func TestConversationSearchTopKCap(t *testing.T) {
	embedder := &stubEmbedder{fallback: []float32{1, 0}}
	svc := newTestConversationService(t, embedder, &config.SearchConfig{TopK: 3, ListLimit: 20})
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		_, err := svc.Save(ctx, &dto.SaveConversationRequest{
			Char1:    "Rick Sanchez",
			Char2:    "Morty Smith",
			Dialogue: fmt.Sprintf("Rick Sanchez: line %d", i),
		})
		require.NoError(t, err)
	}

	results, err := svc.Search(ctx, "anything")
	require.NoError(t, err)
	require.Len(t, results, 3)
}
