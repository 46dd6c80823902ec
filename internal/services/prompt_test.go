package services

import (
	"fmt"
	"strings"
	"testing"

	"resume-screener/internal/models"
)

func newTestPromptBuilder(t *testing.T, mode models.OutputMode, tools bool) *PromptBuilder {
	t.Helper()
	pb, err := NewPromptBuilder(mode, "", tools)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return pb
}

func TestComposePreservesCandidateOrder(t *testing.T) {
	pb := newTestPromptBuilder(t, models.ModeMarkdown, false)

	var pool []models.CandidateRecord
	for i := 0; i < 5; i++ {
		pool = append(pool, models.CandidateRecord{
			Name:    fmt.Sprintf("tag-%d", i),
			Content: "body",
			Path:    "#",
		})
	}

	prompt := pb.Compose("some jd", pool)

	last := -1
	for i := 0; i < 5; i++ {
		idx := strings.Index(prompt, fmt.Sprintf("RESUME: tag-%d,", i))
		if idx == -1 {
			t.Fatalf("candidate tag-%d missing from prompt", i)
		}
		if idx <= last {
			t.Fatalf("candidate tag-%d out of order", i)
		}
		last = idx
	}
}

func TestComposeStatusTags(t *testing.T) {
	pb := newTestPromptBuilder(t, models.ModeMarkdown, false)

	prompt := pb.Compose("jd", []models.CandidateRecord{
		{Name: "active-one", Content: "a", Path: "http://a"},
		{Name: "old-one", Content: "b", Path: "#", IsArchived: true},
	})

	if !strings.Contains(prompt, "--- RESUME: active-one, path_to_resume: http://a, [ACTIVE] ---") {
		t.Fatalf("active block missing or malformed:\n%s", prompt)
	}
	if !strings.Contains(prompt, "--- RESUME: old-one, path_to_resume: #, [ARCHIVED] ---") {
		t.Fatalf("archived block missing or malformed:\n%s", prompt)
	}
	if !strings.Contains(prompt, "jd") {
		t.Fatal("job description missing from prompt")
	}
}

func TestComposeToolPreamble(t *testing.T) {
	plain := newTestPromptBuilder(t, models.ModeMarkdown, false)
	tooled := newTestPromptBuilder(t, models.ModeMarkdown, true)

	pool := []models.CandidateRecord{{Name: "n", Content: "c", Path: "#"}}

	if strings.Contains(plain.Compose("jd", pool), "SYSTEM INSTRUCTION") {
		t.Fatal("tool preamble must be absent when tools are disabled")
	}
	if !strings.HasPrefix(tooled.Compose("jd", pool), "SYSTEM INSTRUCTION") {
		t.Fatal("tool preamble must lead the prompt when tools are enabled")
	}
}

func TestComposeStructuredTemplateAsksForJSON(t *testing.T) {
	pb := newTestPromptBuilder(t, models.ModeStructured, false)

	prompt := pb.Compose("jd text", []models.CandidateRecord{{Name: "n", Content: "c", Path: "#"}})

	for _, field := range []string{"top_match_name", "analysis", "reasoning", "bullets"} {
		if !strings.Contains(prompt, field) {
			t.Fatalf("structured template missing schema field %q", field)
		}
	}
	if !strings.Contains(prompt, "jd text") {
		t.Fatal("job description not substituted")
	}
}

func TestComposeEmptyPoolStillValid(t *testing.T) {
	pb := newTestPromptBuilder(t, models.ModeMarkdown, false)

	prompt := pb.Compose("jd only", nil)
	if !strings.Contains(prompt, "jd only") {
		t.Fatal("job description not substituted")
	}
	if strings.Contains(prompt, "{{RESUME_POOL}}") || strings.Contains(prompt, "{{JD_TEXT}}") {
		t.Fatal("placeholders left unsubstituted")
	}
}
