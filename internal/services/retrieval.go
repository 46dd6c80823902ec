package services

import (
	"context"
	"log"

	"resume-screener/internal/models"
)

// RetrievalFilter narrows a candidate pool to the resumes whose embeddings
// sit closest to the job description. It only ever trims: survivors keep
// their original row order, and any retrieval failure degrades to the full
// pool; retrieval is an enhancement, never a gate.
type RetrievalFilter struct {
	gemini GeminiService
	qdrant QdrantService
	topK   int
}

func NewRetrievalFilter(gemini GeminiService, qdrant QdrantService, topK int) *RetrievalFilter {
	return &RetrievalFilter{
		gemini: gemini,
		qdrant: qdrant,
		topK:   topK,
	}
}

func (f *RetrievalFilter) TrimPool(ctx context.Context, jobDescription string, pool []models.CandidateRecord) []models.CandidateRecord {
	if len(pool) <= f.topK {
		return pool
	}

	embedding, err := f.gemini.GenerateEmbedding(ctx, jobDescription)
	if err != nil {
		log.Printf("⚠️  Retrieval filter skipped, embedding failed: %v\n", err)
		return pool
	}

	matches, err := f.qdrant.SearchResumes(ctx, embedding, f.topK)
	if err != nil {
		log.Printf("⚠️  Retrieval filter skipped, search failed: %v\n", err)
		return pool
	}
	if len(matches) == 0 {
		return pool
	}

	matched := make(map[string]bool, len(matches))
	for _, match := range matches {
		matched[match.Name] = true
	}

	trimmed := make([]models.CandidateRecord, 0, len(matches))
	for _, candidate := range pool {
		if matched[candidate.Name] {
			trimmed = append(trimmed, candidate)
		}
	}

	// Index and store can drift; a trim that removed everything would starve
	// the model for no good reason.
	if len(trimmed) == 0 {
		return pool
	}

	return trimmed
}
