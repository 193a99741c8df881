package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"rickverse/internal/api"
	"rickverse/internal/api/handlers"
	"rickverse/internal/repository"
	"rickverse/internal/service"
	"rickverse/pkg/config"
	"rickverse/pkg/logger"
	"rickverse/pkg/sqlite"

	"go.uber.org/zap"
)

// @title Rick & Morty Dialogue Engine API
// @version 1.0
// @description Generates and archives AI dialogues between Rick & Morty characters

// @host localhost:8000
// @BasePath /

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize global logger
	if err := logger.Init(cfg.Logger.Level); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	appLogger := logger.Get()
	appLogger.Info("Starting dialogue engine")

	// Open the local store
	db, err := sqlite.Open(&cfg.Database, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to open database", zap.Error(err))
	}
	defer db.Close()

	// Initialize repositories
	convRepo := repository.NewConversationRepository(db, appLogger)

	// Initialize services
	charService := service.NewCharacterService(&cfg.CharacterAPI, appLogger)
	embedService := service.NewEmbeddingService(&cfg.Embedding, appLogger)

	llmService, err := service.NewLLMService(&cfg.GigaChat, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to initialize LLM service", zap.Error(err))
	}
	defer llmService.Close()

	dialogueService := service.NewDialogueService(charService, llmService, embedService, appLogger)
	convService := service.NewConversationService(convRepo, embedService, &cfg.Search, appLogger)

	// Initialize handlers
	dialogueHandler := handlers.NewDialogueHandler(dialogueService, appLogger)
	convHandler := handlers.NewConversationHandler(convService, appLogger)
	charHandler := handlers.NewCharacterHandler(charService, appLogger)

	// Setup router
	app := api.SetupRouter(dialogueHandler, convHandler, charHandler)

	// Start server
	go func() {
		addr := ":" + cfg.Server.Port
		appLogger.Info("Server starting", zap.String("address", addr))
		if err := app.Listen(addr); err != nil {
			appLogger.Fatal("Server failed", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server")
	if err := app.Shutdown(); err != nil {
		appLogger.Error("Server shutdown error", zap.Error(err))
	}
}
