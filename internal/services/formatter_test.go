package services

import (
	"strings"
	"testing"

	"resume-screener/internal/models"
)

func TestResolvePath(t *testing.T) {
	pool := []models.CandidateRecord{
		{Name: "R1", Path: "http://x"},
		{Name: "R1", Path: "http://duplicate"},
		{Name: "R2", Path: "http://y"},
	}

	if got := ResolvePath("R1", pool); got != "http://x" {
		t.Fatalf("first match must win, got %q", got)
	}
	if got := ResolvePath("R2", pool); got != "http://y" {
		t.Fatalf("expected http://y, got %q", got)
	}
	if got := ResolvePath("unknown", pool); got != models.DefaultPath {
		t.Fatalf("no match must keep the placeholder, got %q", got)
	}
}

func TestJSONBodyStructuredResolvesPath(t *testing.T) {
	f := NewFormatter()
	result := &models.ScreenResult{
		Mode: models.ModeStructured,
		Structured: &models.StructuredAnalysis{
			TopMatchName: "R1",
			Analysis:     "a",
			Reasoning:    "b",
		},
		Candidates: []models.CandidateRecord{{Name: "R1", Path: "http://x"}},
	}

	body, ok := f.JSONBody(result).(models.StructuredResponse)
	if !ok {
		t.Fatalf("expected StructuredResponse, got %T", f.JSONBody(result))
	}
	if body.Path != "http://x" {
		t.Fatalf("expected resolved path http://x, got %q", body.Path)
	}
	if body.TopMatchName != "R1" || body.Analysis != "a" || body.Reasoning != "b" {
		t.Fatalf("unexpected body: %+v", body)
	}
}

func TestJSONBodyMarkdownEnvelope(t *testing.T) {
	f := NewFormatter()
	result := &models.ScreenResult{Mode: models.ModeMarkdown, Markdown: "# raw"}

	body, ok := f.JSONBody(result).(models.MarkdownResponse)
	if !ok {
		t.Fatalf("expected MarkdownResponse, got %T", f.JSONBody(result))
	}
	if body.Markdown != "# raw" {
		t.Fatalf("markdown must be unmodified, got %q", body.Markdown)
	}
}

func TestHTMLBodyStructuredCard(t *testing.T) {
	f := NewFormatter()
	result := &models.ScreenResult{
		Mode: models.ModeStructured,
		Structured: &models.StructuredAnalysis{
			TopMatchName: "R1",
			Analysis:     "solid evidence",
			Reasoning:    "keyword match",
			Bullets: []models.AnalysisBullet{
				{Section: "Projects", Text: "first bullet"},
				{Section: "Experience", Text: "second bullet"},
			},
		},
		Candidates: []models.CandidateRecord{{Name: "R1", Path: "http://x"}},
	}

	page := f.HTMLBody(result)
	if !strings.Contains(page, "http://x") {
		t.Fatal("resolved path missing from rendered card")
	}
	if strings.Index(page, "first bullet") > strings.Index(page, "second bullet") {
		t.Fatal("bullets rendered out of order")
	}
}

func TestHTMLBodyMarkdownPre(t *testing.T) {
	f := NewFormatter()
	result := &models.ScreenResult{Mode: models.ModeMarkdown, Markdown: "line <one>"}

	page := f.HTMLBody(result)
	if !strings.Contains(page, "<pre>") {
		t.Fatal("markdown page must wrap output in a pre block")
	}
	if strings.Contains(page, "<one>") {
		t.Fatal("markdown must be HTML-escaped inside the pre block")
	}
}

func TestChatBodyStructuredCard(t *testing.T) {
	f := NewFormatter()
	result := &models.ScreenResult{
		Mode: models.ModeStructured,
		Structured: &models.StructuredAnalysis{
			TopMatchName: "R1",
			Analysis:     "a",
			Reasoning:    "b",
			Bullets:      []models.AnalysisBullet{{Section: "s", Text: "t"}},
		},
		Candidates: []models.CandidateRecord{{Name: "R1", Path: "http://x"}},
	}

	card, ok := f.ChatBody(result).(models.ChatCard)
	if !ok {
		t.Fatalf("expected ChatCard, got %T", f.ChatBody(result))
	}
	if card.Title != "R1" {
		t.Fatalf("unexpected card title: %q", card.Title)
	}
	if len(card.Widgets) != 4 {
		t.Fatalf("expected 4 widgets, got %d", len(card.Widgets))
	}
	if !strings.Contains(card.Widgets[0].Text, "http://x") {
		t.Fatal("resolved path missing from card")
	}
}
