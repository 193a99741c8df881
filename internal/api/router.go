package api

import (
	"rickverse/docs"
	"rickverse/internal/api/handlers"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
)

func SetupRouter(
	dialogueHandler *handlers.DialogueHandler,
	convHandler *handlers.ConversationHandler,
	charHandler *handlers.CharacterHandler,
) *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			return c.Status(code).JSON(fiber.Map{
				"error": err.Error(),
			})
		},
	})

	// Middleware
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept",
	}))
	app.Use(logger.New())

	// Swagger - importing the docs package registers the spec through init()
	_ = docs.SwaggerInfo
	app.Get("/swagger/*", swagger.HandlerDefault)

	// Status
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "Rick & Morty Dialogue API running",
		})
	})

	// Dialogue pipeline
	app.Get("/run-dialogue", dialogueHandler.RunDialogue)

	// Conversations
	app.Post("/save-conversation", convHandler.SaveConversation)
	app.Get("/list-conversations", convHandler.ListConversations)
	app.Get("/search-conversations", convHandler.SearchConversations)

	// Character API passthrough for the explorer frontend
	app.Get("/characters/:id", charHandler.GetCharacter)
	app.Get("/locations", charHandler.ListLocations)
	app.Get("/locations/:id/residents", charHandler.ListResidents)

	return app
}
