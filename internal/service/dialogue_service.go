package service

import (
	"context"
	"fmt"

	"rickverse/internal/models"

	"go.uber.org/zap"
)

// CharacterProvider is the character lookup the pipeline retrieves from.
type CharacterProvider interface {
	GetByID(ctx context.Context, id int) (*models.Character, error)
}

// DialogueGenerator produces a scripted dialogue between two characters.
type DialogueGenerator interface {
	GenerateDialogue(ctx context.Context, char1, char2 *models.Character) (string, error)
}

// DialogueService runs the fixed retrieve -> generate -> evaluate pipeline.
// Each step mutates the per-invocation DialogueState; there is no branching
// and no step runs concurrently with another.
type DialogueService struct {
	characters CharacterProvider
	generator  DialogueGenerator
	embedder   Embedder
	logger     *zap.Logger
}

func NewDialogueService(
	characters CharacterProvider,
	generator DialogueGenerator,
	embedder Embedder,
	logger *zap.Logger,
) *DialogueService {
	return &DialogueService{
		characters: characters,
		generator:  generator,
		embedder:   embedder,
		logger:     logger,
	}
}

// Run executes the pipeline for two character ids.
func (s *DialogueService) Run(ctx context.Context, char1ID, char2ID int) (*models.DialogueState, error) {
	state := &models.DialogueState{}

	// 1. Retrieve both characters from the remote API
	if err := s.retrieve(ctx, state, char1ID, char2ID); err != nil {
		return nil, err
	}

	// 2. Generate the scripted dialogue
	if err := s.generate(ctx, state); err != nil {
		return nil, err
	}

	// 3. Evaluate semantic alignment between characters and dialogue
	if err := s.evaluate(ctx, state); err != nil {
		return nil, err
	}

	s.logger.Info("Dialogue pipeline completed",
		zap.String("char1", state.Char1.Name),
		zap.String("char2", state.Char2.Name),
		zap.Float64("score", state.Score),
	)

	return state, nil
}

func (s *DialogueService) retrieve(ctx context.Context, state *models.DialogueState, char1ID, char2ID int) error {
	char1, err := s.characters.GetByID(ctx, char1ID)
	if err != nil {
		return fmt.Errorf("failed to fetch character %d: %w", char1ID, err)
	}
	char2, err := s.characters.GetByID(ctx, char2ID)
	if err != nil {
		return fmt.Errorf("failed to fetch character %d: %w", char2ID, err)
	}

	state.Char1 = char1
	state.Char2 = char2
	return nil
}

func (s *DialogueService) generate(ctx context.Context, state *models.DialogueState) error {
	dialogue, err := s.generator.GenerateDialogue(ctx, state.Char1, state.Char2)
	if err != nil {
		return err
	}

	state.Dialogue = dialogue
	return nil
}

func (s *DialogueService) evaluate(ctx context.Context, state *models.DialogueState) error {
	anchor := state.Char1.Name + " " + state.Char2.Name

	anchorVec, err := s.embedder.Embed(ctx, anchor)
	if err != nil {
		return fmt.Errorf("failed to embed anchor: %w", err)
	}
	dialogueVec, err := s.embedder.Embed(ctx, state.Dialogue)
	if err != nil {
		return fmt.Errorf("failed to embed dialogue: %w", err)
	}

	state.Score = roundScore(CosineSimilarity(anchorVec, dialogueVec))
	return nil
}
