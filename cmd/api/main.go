package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"resume-screener/internal/auth"
	"resume-screener/internal/config"
	"resume-screener/internal/handlers"
	"resume-screener/internal/models"
	"resume-screener/internal/repositories"
	"resume-screener/internal/services"
)

func main() {
	// Load configuration
	cfg := config.Load()
	log.Println("✅ Config loaded successfully")

	mode := models.OutputMode(cfg.Gemini.OutputMode)
	if mode != models.ModeMarkdown && mode != models.ModeStructured {
		log.Fatalf("❌ Invalid OUTPUT_MODE: %s", cfg.Gemini.OutputMode)
	}

	ctx := context.Background()

	// Initialize Gemini AI
	geminiService, err := services.NewGeminiService(
		cfg.Gemini.APIKey,
		cfg.Gemini.Model,
		cfg.Gemini.EmbedModel,
		cfg.Gemini.ToolsEnabled,
	)
	if err != nil {
		log.Fatalf("❌ Failed to initialize Gemini AI: %v", err)
	}
	log.Println("✅ Gemini AI initialized successfully")

	promptBuilder, err := services.NewPromptBuilder(mode, cfg.Gemini.TemplatePath, cfg.Gemini.ToolsEnabled)
	if err != nil {
		log.Fatalf("❌ Failed to initialize prompt builder: %v", err)
	}

	// Initialize the resume row source
	var (
		source     repositories.RowSource
		resumeRepo repositories.ResumeRepository
	)
	switch cfg.Source.Backend {
	case "sheets":
		source, err = repositories.NewSheetsSource(ctx, cfg.Source.SheetID, cfg.Source.SheetRange, cfg.Source.GoogleAPIKey)
	case "drive":
		source, err = repositories.NewDriveSource(ctx, cfg.Source.DriveFolderID, cfg.Source.ArchiveFolder, cfg.Source.GoogleAPIKey)
	case "postgres":
		var db, dbErr = config.InitDatabase(cfg)
		if dbErr != nil {
			log.Fatalf("❌ Failed to initialize database: %v", dbErr)
		}
		resumeRepo = repositories.NewResumeRepository(db)
		source = repositories.NewPostgresSource(resumeRepo)
	default:
		log.Fatalf("❌ Unknown RESUME_SOURCE: %s", cfg.Source.Backend)
	}
	if err != nil {
		log.Fatalf("❌ Failed to initialize %s source: %v", cfg.Source.Backend, err)
	}
	log.Printf("✅ Resume source initialized (%s)\n", cfg.Source.Backend)

	// Optional retrieval filter over the qdrant index
	var (
		retrieval *services.RetrievalFilter
		indexer   services.Indexer
	)
	if cfg.Retrieval.Enabled {
		qdrantService, err := services.NewQdrantService(
			cfg.Qdrant.URL,
			cfg.Qdrant.APIKey,
			cfg.Qdrant.Collection,
		)
		if err != nil {
			log.Fatalf("❌ Failed to initialize Qdrant: %v", err)
		}
		if err := qdrantService.InitCollection(); err != nil {
			log.Fatalf("❌ Failed to initialize Qdrant collection: %v", err)
		}
		retrieval = services.NewRetrievalFilter(geminiService, qdrantService, cfg.Retrieval.TopK)
		log.Println("✅ Retrieval filter initialized")

		indexer = services.NewIndexer(source, geminiService, qdrantService, cfg.Retrieval.SyncInterval, 2)
		indexer.Start()
	}

	screenerService := services.NewScreenerService(source, geminiService, promptBuilder, retrieval, mode)
	formatter := services.NewFormatter()
	log.Println("✅ Screener service initialized")

	// Initialize Handlers
	screenHandler := handlers.NewScreenHandler(screenerService, formatter)
	chatHandler := handlers.NewChatHandler(screenerService, formatter)
	log.Println("✅ Handlers initialized")

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "Resume Screener API",
		ReadTimeout:  60 * time.Second,
		WriteTimeout: 60 * time.Second,
		BodyLimit:    int(cfg.Storage.MaxFileSize),
		ErrorHandler: customErrorHandler,
	})

	// Middleware
	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		Format:     "[${time}] ${status} - ${latency} ${method} ${path}\n",
		TimeFormat: "2006-01-02 15:04:05",
	}))

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,OPTIONS",
		AllowHeaders: "Content-Type, Authorization",
	}))

	// Routes
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now(),
		})
	})

	app.Get("/", screenHandler.HandleForm)

	if cfg.Auth.Required {
		verifier := auth.NewHMACVerifier(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer)
		authMW := auth.NewMiddleware(verifier)
		app.Use("/screen", authMW)
		app.Use("/chat", authMW)
		app.Use("/resumes", authMW)
		log.Println("✅ Bearer-token auth enabled")
	}
	app.Post("/screen", screenHandler.HandleScreen)
	app.Post("/chat", chatHandler.HandleEvent)

	// Resume ingestion only exists for the postgres-backed store
	if resumeRepo != nil {
		storageService := services.NewStorageService(cfg.Storage.UploadPath)
		if err := storageService.EnsureUploadDir(); err != nil {
			log.Fatalf("❌ Failed to create upload directory: %v", err)
		}
		resumeHandler := handlers.NewResumeHandler(
			resumeRepo,
			storageService,
			services.NewPDFParserService(),
			cfg.Storage.MaxFileSize,
		)
		app.Post("/resumes", resumeHandler.HandleIngest)
	}

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		log.Println("\n🛑 Shutting down server...")
		if indexer != nil {
			indexer.Stop()
		}
		if err := app.Shutdown(); err != nil {
			log.Printf("❌ Server forced to shutdown: %v", err)
		}
	}()

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Printf("🚀 Server starting on %s\n", addr)

	if err := app.Listen(addr); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}

func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError

	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}

	return c.Status(code).JSON(fiber.Map{
		"error": err.Error(),
		"code":  code,
	})
}
