package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"

	"resume-screener/internal/models"
	"resume-screener/internal/repositories"
)

// Typed pipeline outcomes. Every external-call failure is converted into one
// of these at the point of call; handlers map them to response statuses and
// nothing propagates past that boundary unformatted.
var (
	// ErrStoreUnavailable: the resume store could not be reached. Kept
	// distinct from an honestly empty store.
	ErrStoreUnavailable = errors.New("resume store unavailable")
	// ErrEmptyPool: the store answered but decoding produced no candidates.
	ErrEmptyPool = errors.New("no candidates available")
	// ErrModelUnavailable: the generate call itself failed.
	ErrModelUnavailable = errors.New("model endpoint unavailable")
	// ErrModelOutput: structured mode only. The model answered, but not
	// with parseable JSON.
	ErrModelOutput = errors.New("model returned unparseable output")
)

type ScreenerService interface {
	Screen(ctx context.Context, jobDescription string) (*models.ScreenResult, error)
}

type screenerService struct {
	source    repositories.RowSource
	gemini    GeminiService
	prompts   *PromptBuilder
	retrieval *RetrievalFilter
	mode      models.OutputMode
}

// NewScreenerService wires the screening pipeline. retrieval may be nil, in
// which case the full decoded pool goes to the model.
func NewScreenerService(
	source repositories.RowSource,
	gemini GeminiService,
	prompts *PromptBuilder,
	retrieval *RetrievalFilter,
	mode models.OutputMode,
) ScreenerService {
	return &screenerService{
		source:    source,
		gemini:    gemini,
		prompts:   prompts,
		retrieval: retrieval,
		mode:      mode,
	}
}

// Screen runs the full pipeline for one already-validated job description:
// fetch rows, decode, trim, compose the prompt, invoke the model, parse.
func (s *screenerService) Screen(ctx context.Context, jobDescription string) (*models.ScreenResult, error) {
	rows, err := s.source.GetRange(ctx)
	if err != nil {
		log.Printf("❌ Failed to fetch resume rows: %v\n", err)
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}

	candidates := DecodeRows(rows)
	if len(candidates) == 0 {
		return nil, ErrEmptyPool
	}

	pool := candidates
	if s.retrieval != nil {
		pool = s.retrieval.TrimPool(ctx, jobDescription, candidates)
	}

	prompt := s.prompts.Compose(jobDescription, pool)
	log.Printf("📝 Screening prompt length: %d characters\n", len(prompt))

	raw, err := s.gemini.GenerateText(ctx, prompt)
	if err != nil {
		log.Printf("❌ Model call failed: %v\n", err)
		return nil, fmt.Errorf("%w: %v", ErrModelUnavailable, err)
	}

	result := &models.ScreenResult{
		Mode:       s.mode,
		Candidates: pool,
	}

	if s.mode == models.ModeStructured {
		var analysis models.StructuredAnalysis
		if err := parseJSONResponse(raw, &analysis); err != nil {
			// The raw text stays server-side for diagnosis; callers only
			// ever see the marker.
			log.Printf("❌ Failed to parse model output: %v\nRaw output: %s\n", err, raw)
			return nil, ErrModelOutput
		}
		result.Structured = &analysis
		return result, nil
	}

	result.Markdown = raw
	return result, nil
}

func parseJSONResponse(response string, target interface{}) error {
	jsonStr := extractJSON(response)

	if err := json.Unmarshal([]byte(jsonStr), target); err != nil {
		return fmt.Errorf("failed to unmarshal JSON: %w", err)
	}

	return nil
}

// extractJSON tries to extract JSON from text that might contain markdown or
// other formatting. Only a fence wrapping the whole payload is stripped;
// backticks inside string values stay intact.
func extractJSON(text string) string {
	text = strings.TrimSpace(text)
	if strings.HasPrefix(text, "```") {
		text = strings.TrimPrefix(text, "```json")
		text = strings.TrimPrefix(text, "```")
	}
	text = strings.TrimSuffix(strings.TrimSpace(text), "```")

	// Find JSON object or array boundaries
	startObj := strings.Index(text, "{")
	startArr := strings.Index(text, "[")
	endObj := strings.LastIndex(text, "}")
	endArr := strings.LastIndex(text, "]")

	if startObj != -1 && endObj != -1 && endObj > startObj {
		return text[startObj : endObj+1]
	} else if startArr != -1 && endArr != -1 && endArr > startArr {
		return text[startArr : endArr+1]
	}

	return text
}
