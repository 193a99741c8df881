package main

import (
	"context"
	"log"
	"time"

	"rickverse/internal/models"
	"rickverse/internal/repository"
	"rickverse/internal/service"
	"rickverse/pkg/config"
	"rickverse/pkg/logger"
	"rickverse/pkg/sqlite"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var characterNotes = []models.CharacterNote{
	{CharacterID: 1, Note: "Rick Sanchez - works best paired with family members, dialogue leans nihilist"},
	{CharacterID: 2, Note: "Morty Smith - strong foil for Rick, stutters when the scene escalates"},
	{CharacterID: 3, Note: "Summer Smith - sarcasm lands better against non-human characters"},
	{CharacterID: 8, Note: "Adjudicator Rick - niche pick, only appears in council scenes"},
}

var demoDialogues = []struct {
	char1, char2 string
	dialogue     string
	note         string
}{
	{
		char1: "Rick Sanchez",
		char2: "Morty Smith",
		dialogue: "Rick Sanchez: Morty, hand me the quantum carburetor.\n" +
			"Morty Smith: Aw jeez Rick, is this gonna blow up the garage again?\n" +
			"Rick Sanchez: Define 'again', Morty. Time is a flat circle of garage explosions.",
		note: "seed data for local development",
	},
	{
		char1: "Summer Smith",
		char2: "Birdperson",
		dialogue: "Summer Smith: So do you, like, molt or something?\n" +
			"Birdperson: In bird culture, that question is considered a rite of friendship.\n" +
			"Summer Smith: Cool cool cool. Super normal.",
		note: "seed data for local development",
	},
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.Init(cfg.Logger.Level); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()
	appLogger := logger.Get()

	db, err := sqlite.Open(&cfg.Database, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to open database", zap.Error(err))
	}
	defer db.Close()

	noteRepo := repository.NewNoteRepository(db, appLogger)
	convRepo := repository.NewConversationRepository(db, appLogger)
	embedService := service.NewEmbeddingService(&cfg.Embedding, appLogger)

	ctx := context.Background()
	appLogger.Info("Seeding database", zap.String("path", cfg.Database.Path))

	seeded := 0
	for _, note := range characterNotes {
		n := note
		if err := noteRepo.Create(ctx, &n); err != nil {
			appLogger.Error("Failed to seed note", zap.Int("character_id", n.CharacterID), zap.Error(err))
			continue
		}
		seeded++
	}
	appLogger.Info("Character notes seeded", zap.Int("count", seeded))

	// Demo conversations need the embedding endpoint; skip them if it is down
	seeded = 0
	for _, demo := range demoDialogues {
		embedding, err := embedService.Embed(ctx, demo.dialogue)
		if err != nil {
			appLogger.Warn("Embedding endpoint unavailable, skipping demo conversations", zap.Error(err))
			break
		}

		conv := &models.Conversation{
			ID:        uuid.New(),
			Timestamp: time.Now().UTC(),
			Char1:     demo.char1,
			Char2:     demo.char2,
			Dialogue:  demo.dialogue,
			Embedding: embedding,
			Scores:    models.FeedbackScores{Char1: 4, Char2: 4, Creativity: 3},
			Note:      demo.note,
		}
		if err := convRepo.Create(ctx, conv); err != nil {
			appLogger.Error("Failed to seed conversation", zap.Error(err))
			continue
		}
		seeded++
	}
	appLogger.Info("Demo conversations seeded", zap.Int("count", seeded))
}
