// Package server assembles the Fiber application: middleware, routes, and
// the shared error envelope. main and the e2e tests build the same app
// through New, so the error path is exercised both ways.
package server

import (
	"log"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/roastify/api/internal/client"
	"github.com/roastify/api/internal/config"
	"github.com/roastify/api/internal/handler"
	"github.com/roastify/api/internal/service"
	"github.com/roastify/api/pkg/response"
)

// New builds the Fiber app over the given backends.
func New(cfg *config.Config, spotifyClient *client.SpotifyClient, groqClient *client.GroqClient, validate *validator.Validate) *fiber.App {
	roastService := service.NewRoastService(spotifyClient, groqClient, validate)
	roastHandler := handler.NewRoastHandler(roastService, validate)
	authHandler := handler.NewAuthHandler(spotifyClient, cfg.Server.FrontendURL)

	app := fiber.New(fiber.Config{
		ErrorHandler: errorHandler,
	})

	// Global middleware
	app.Use(recover.New())
	isDebug := strings.EqualFold(cfg.Server.LogLevel, "debug")
	logFormat := "[${time}] ${status} - ${latency} ${method} ${path}\n"
	if isDebug {
		logFormat = "[${time}] ${status} - ${latency} ${method} ${path} ${queryParams} ${body} ${reqHeaders}\n"
		log.Println("Debug logging enabled")
	}
	app.Use(logger.New(logger.Config{
		Format: logFormat,
	}))
	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.Server.FrontendURL,
		AllowMethods:     "GET,POST,OPTIONS",
		AllowHeaders:     "Origin,Content-Type,Accept",
		AllowCredentials: true,
	}))

	// Base URL - timestamp
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"timestamp": time.Now().Unix(),
		})
	})

	// Health check
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "ok",
			"services": fiber.Map{
				"spotify": spotifyClient.IsConfigured(),
				"groq":    groqClient.IsConfigured(),
			},
		})
	})

	// OAuth boundary
	app.Get("/api/login", authHandler.Login)
	app.Get("/callback", authHandler.Callback)

	// Roast pipeline
	app.Post("/api/roast", roastHandler.Generate)

	return app
}

func errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "Internal Server Error"

	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
		message = e.Message
	}

	return c.Status(code).JSON(response.ErrorResponse{
		Error: response.ErrorDetail{
			Code:    response.CodeServiceError,
			Message: message,
		},
	})
}
