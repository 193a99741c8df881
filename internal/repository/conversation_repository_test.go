package repository

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"rickverse/internal/models"
	"rickverse/pkg/config"
	"rickverse/pkg/sqlite"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestRepo(t *testing.T) *ConversationRepository {
	t.Helper()

	db, err := sqlite.Open(&config.DatabaseConfig{
		Path: filepath.Join(t.TempDir(), "rm.db"),
	}, zap.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return NewConversationRepository(db, zap.NewNop())
}

func sampleConversation(ts time.Time, dialogue string) *models.Conversation {
	return &models.Conversation{
		ID:        uuid.New(),
		Timestamp: ts,
		Char1:     "Rick Sanchez",
		Char2:     "Birdperson",
		Dialogue:  dialogue,
		Embedding: []float32{0.25, -0.5, 0.75},
		Scores:    models.FeedbackScores{Char1: 5, Char2: 3, Creativity: 4},
		Note:      "in bird culture this is a note",
	}
}

func TestConversationRoundTrip(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	ts := time.Date(2025, 3, 14, 9, 26, 53, 0, time.UTC)
	conv := sampleConversation(ts, "Rick Sanchez: Birdperson!\nBirdperson: Rick.")
	require.NoError(t, repo.Create(ctx, conv))

	listed, err := repo.ListRecent(ctx, 20)
	require.NoError(t, err)
	require.Len(t, listed, 1)

	got := listed[0]
	require.Equal(t, conv.ID, got.ID)
	require.True(t, got.Timestamp.Equal(ts))
	require.Equal(t, conv.Char1, got.Char1)
	require.Equal(t, conv.Char2, got.Char2)
	require.Equal(t, conv.Dialogue, got.Dialogue)
	require.Equal(t, conv.Embedding, got.Embedding)
	require.Equal(t, conv.Scores, got.Scores)
	require.Equal(t, conv.Note, got.Note)
}

func TestListRecentOrdersByTimestampDesc(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		conv := sampleConversation(base.Add(time.Duration(i)*time.Hour), "dialogue")
		require.NoError(t, repo.Create(ctx, conv))
	}

	listed, err := repo.ListRecent(ctx, 3)
	require.NoError(t, err)
	require.Len(t, listed, 3)
	require.True(t, listed[0].Timestamp.After(listed[1].Timestamp))
	require.True(t, listed[1].Timestamp.After(listed[2].Timestamp))
}

func TestAllReturnsEveryRow(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	for i := 0; i < 4; i++ {
		conv := sampleConversation(time.Now().UTC(), "dialogue")
		require.NoError(t, repo.Create(ctx, conv))
	}

	all, err := repo.All(ctx)
	require.NoError(t, err)
	require.Len(t, all, 4)
	for _, conv := range all {
		require.NotEmpty(t, conv.Embedding)
	}
}

func TestNoteRepository(t *testing.T) {
	db, err := sqlite.Open(&config.DatabaseConfig{
		Path: filepath.Join(t.TempDir(), "rm.db"),
	}, zap.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	repo := NewNoteRepository(db, zap.NewNop())
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &models.CharacterNote{CharacterID: 1, Note: "note one"}))
	require.NoError(t, repo.Create(ctx, &models.CharacterNote{CharacterID: 1, Note: "note two"}))
	require.NoError(t, repo.Create(ctx, &models.CharacterNote{CharacterID: 2, Note: "other"}))

	notes, err := repo.GetByCharacterID(ctx, 1)
	require.NoError(t, err)
	require.Len(t, notes, 2)
}
