package services

import (
	"context"
	"log"
	"sync"
	"time"

	"resume-screener/internal/models"
	"resume-screener/internal/repositories"
)

const (
	indexChunkSize    = 2000
	indexChunkOverlap = 200
)

// Indexer keeps the qdrant resume index in step with the row source. It runs
// outside the request path: requests never wait on it, they just see whatever
// the index currently holds.
type Indexer interface {
	Start()
	Stop()
	SyncOnce(ctx context.Context) error
}

type indexer struct {
	source      repositories.RowSource
	gemini      GeminiService
	qdrant      QdrantService
	chunker     TextChunker
	interval    time.Duration
	concurrency int
	wg          sync.WaitGroup
	stopChan    chan struct{}
}

func NewIndexer(
	source repositories.RowSource,
	gemini GeminiService,
	qdrant QdrantService,
	interval time.Duration,
	concurrency int,
) Indexer {
	if concurrency <= 0 {
		concurrency = 2
	}
	return &indexer{
		source:      source,
		gemini:      gemini,
		qdrant:      qdrant,
		chunker:     NewTextChunker(),
		interval:    interval,
		concurrency: concurrency,
		stopChan:    make(chan struct{}),
	}
}

// Start implements Indexer. No-op when the sync interval is zero.
func (ix *indexer) Start() {
	if ix.interval <= 0 {
		return
	}

	ix.wg.Add(1)
	go ix.loop()
	log.Printf("🚀 Index sync started (every %s)\n", ix.interval)
}

// Stop implements Indexer.
func (ix *indexer) Stop() {
	close(ix.stopChan)
	ix.wg.Wait()
}

func (ix *indexer) loop() {
	defer ix.wg.Done()
	ticker := time.NewTicker(ix.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ix.stopChan:
			log.Println("🛑 Index sync stopped")
			return
		case <-ticker.C:
			ctx, cancel := context.WithTimeout(context.Background(), ix.interval)
			if err := ix.SyncOnce(ctx); err != nil {
				log.Printf("⚠️  Index sync failed: %v\n", err)
			}
			cancel()
		}
	}
}

// SyncOnce implements Indexer: re-embeds every decodable resume in the store
// with bounded concurrency.
func (ix *indexer) SyncOnce(ctx context.Context) error {
	rows, err := ix.source.GetRange(ctx)
	if err != nil {
		return err
	}

	candidates := DecodeRows(rows)
	log.Printf("🔄 Index sync: %d resumes\n", len(candidates))

	jobs := make(chan models.CandidateRecord)
	var workers sync.WaitGroup

	for i := 0; i < ix.concurrency; i++ {
		workers.Add(1)
		go func() {
			defer workers.Done()
			for candidate := range jobs {
				if err := ix.indexCandidate(ctx, candidate); err != nil {
					log.Printf("⚠️  Failed to index %s: %v\n", candidate.Name, err)
				}
			}
		}()
	}

	for _, candidate := range candidates {
		jobs <- candidate
	}
	close(jobs)
	workers.Wait()

	return nil
}

func (ix *indexer) indexCandidate(ctx context.Context, candidate models.CandidateRecord) error {
	// Drop stale chunks first so shrinking resumes don't leave orphans.
	if err := ix.qdrant.DeleteResume(ctx, candidate.Name); err != nil {
		return err
	}

	chunks := ix.chunker.ChunkText(candidate.Content, indexChunkSize, indexChunkOverlap)
	for i, chunk := range chunks {
		embedding, err := ix.gemini.GenerateEmbedding(ctx, chunk)
		if err != nil {
			return err
		}
		if err := ix.qdrant.UpsertResume(ctx, candidate.Name, i, chunk, embedding); err != nil {
			return err
		}
	}

	return nil
}
