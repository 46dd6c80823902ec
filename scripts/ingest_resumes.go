package main

import (
	"context"
	"log"

	"resume-screener/internal/config"
	"resume-screener/internal/repositories"
	"resume-screener/internal/services"
)

// One-shot indexing of the resume store into qdrant. Run this before
// enabling RETRIEVAL_ENABLED, or rely on INDEX_SYNC_INTERVAL instead.
func main() {
	log.Println("🚀 Starting resume ingestion...")

	cfg := config.Load()
	ctx := context.Background()

	geminiService, err := services.NewGeminiService(
		cfg.Gemini.APIKey,
		cfg.Gemini.Model,
		cfg.Gemini.EmbedModel,
		false,
	)
	if err != nil {
		log.Fatalf("❌ Failed to initialize Gemini: %v", err)
	}

	qdrantService, err := services.NewQdrantService(
		cfg.Qdrant.URL,
		cfg.Qdrant.APIKey,
		cfg.Qdrant.Collection,
	)
	if err != nil {
		log.Fatalf("❌ Failed to initialize Qdrant: %v", err)
	}
	if err := qdrantService.InitCollection(); err != nil {
		log.Fatalf("❌ Failed to initialize collection: %v", err)
	}

	var source repositories.RowSource
	switch cfg.Source.Backend {
	case "sheets":
		source, err = repositories.NewSheetsSource(ctx, cfg.Source.SheetID, cfg.Source.SheetRange, cfg.Source.GoogleAPIKey)
	case "drive":
		source, err = repositories.NewDriveSource(ctx, cfg.Source.DriveFolderID, cfg.Source.ArchiveFolder, cfg.Source.GoogleAPIKey)
	case "postgres":
		db, dbErr := config.InitDatabase(cfg)
		if dbErr != nil {
			log.Fatalf("❌ Failed to initialize database: %v", dbErr)
		}
		source = repositories.NewPostgresSource(repositories.NewResumeRepository(db))
	default:
		log.Fatalf("❌ Unknown RESUME_SOURCE: %s", cfg.Source.Backend)
	}
	if err != nil {
		log.Fatalf("❌ Failed to initialize %s source: %v", cfg.Source.Backend, err)
	}

	indexer := services.NewIndexer(source, geminiService, qdrantService, 0, 2)
	if err := indexer.SyncOnce(ctx); err != nil {
		log.Fatalf("❌ Ingestion failed: %v", err)
	}

	log.Println("✅ Resume ingestion completed")
}
