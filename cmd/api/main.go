package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/Licencias-api/internal/application/usecase"
	"github.com/jhoicas/Licencias-api/internal/domain/classify"
	infraai "github.com/jhoicas/Licencias-api/internal/infrastructure/ai"
	"github.com/jhoicas/Licencias-api/internal/infrastructure/memory"
	httpRouter "github.com/jhoicas/Licencias-api/internal/interfaces/http"
	"github.com/jhoicas/Licencias-api/pkg/config"
	"github.com/jhoicas/Licencias-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("model", cfg.Groq.Model).
		Msg("iniciando aplicación")

	cats, err := classify.NewCategories(cfg.Classify.Categories, cfg.Classify.DefaultCategory)
	if err != nil {
		log.Fatal().Err(err).Msg("conjunto de categorías inválido")
	}

	// Almacén en memoria: se crea en el arranque y vive lo que el proceso.
	store := memory.NewClassificationStore()

	groqSvc := infraai.NewGroqService(infraai.Config{
		APIKey:      cfg.Groq.APIKey,
		Model:       cfg.Groq.Model,
		Temperature: cfg.Groq.Temperature,
		MaxTokens:   cfg.Groq.MaxTokens,
		BaseURL:     cfg.Groq.BaseURL,
	})

	classifyUC := usecase.NewClassifyUseCase(groqSvc, cats, cfg.Classify.MaxExplanation)
	resultsUC := usecase.NewResultsUseCase(store, cats, cfg.Classify.MaxExplanation)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 60,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(httpRouter.RequestID())
	app.Use(httpRouter.AccessLog(log))

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "License Classification API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		ClassifyUC: classifyUC,
		ResultsUC:  resultsUC,
		AppName:    cfg.App.Name,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
