package service

import (
	"context"
	"fmt"

	"rickverse/internal/models"
	"rickverse/pkg/config"

	"github.com/Role1776/gigago"
	"go.uber.org/zap"
)

type LLMService struct {
	client *gigago.Client
	model  *gigago.GenerativeModel
	logger *zap.Logger
}

func buildSystemInstruction() string {
	return `You are a professional scriptwriter for Rick & Morty.
You write short, punchy scripted dialogues between two characters from the show.
Every line of dialogue starts with the speaking character's name followed by a colon.
You never explain your reasoning and never add commentary around the script.`
}

func NewLLMService(cfg *config.GigaChatConfig, logger *zap.Logger) (*LLMService, error) {
	ctx := context.Background()

	opts := []gigago.Option{
		gigago.WithCustomScope(cfg.Scope),
	}
	if cfg.InsecureSkipVerify {
		opts = append(opts, gigago.WithCustomInsecureSkipVerify(true))
		logger.Warn("GigaChat TLS certificate verification is disabled")
	}

	client, err := gigago.NewClient(ctx, cfg.APIKey, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create GigaChat client: %w", err)
	}

	model := client.GenerativeModel("GigaChat")
	model.SystemInstruction = buildSystemInstruction()
	model.Temperature = 0.7

	return &LLMService{
		client: client,
		model:  model,
		logger: logger,
	}, nil
}

// GenerateDialogue asks the model for a short script between two characters.
// Reasoning markup in the raw output is stripped before returning; an empty
// script after stripping is an error.
func (s *LLMService) GenerateDialogue(ctx context.Context, char1, char2 *models.Character) (string, error) {
	prompt := fmt.Sprintf(`Write a short dialogue (8-10 turns) between:
- %s (%s, %s)
- %s (%s, %s)

Rules:
- Each line MUST start with the character's name
- Dark humor, sarcasm, sci-fi references
- DO NOT explain reasoning
- ONLY output dialogue`,
		char1.Name, char1.Species, char1.Status,
		char2.Name, char2.Species, char2.Status,
	)

	messages := []gigago.Message{
		{Role: gigago.RoleUser, Content: prompt},
	}

	resp, err := s.model.Generate(ctx, messages)
	if err != nil {
		return "", fmt.Errorf("failed to generate dialogue: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no response from LLM")
	}

	dialogue := stripReasoning(resp.Choices[0].Message.Content)
	if dialogue == "" {
		return "", fmt.Errorf("empty dialogue from LLM")
	}

	s.logger.Info("Dialogue generated",
		zap.String("char1", char1.Name),
		zap.String("char2", char2.Name),
		zap.Int("length", len(dialogue)),
	)

	return dialogue, nil
}

func (s *LLMService) Close() error {
	if s.client != nil {
		s.client.Close()
	}
	return nil
}
