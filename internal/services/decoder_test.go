package services

import (
	"testing"

	"resume-screener/internal/models"
)

func TestDecodeRowsDropsShortRows(t *testing.T) {
	rows := [][]string{
		{"Resume_A", "body a"},
		{"only-name"},
		{},
		{"", "body without name"},
		{"Resume_B", "body b", "active", "http://b"},
		{"", "", "archived"},
	}

	candidates := DecodeRows(rows)

	if len(candidates) > len(rows) {
		t.Fatalf("decoder must never grow the row set: %d > %d", len(candidates), len(rows))
	}
	if len(candidates) != 2 {
		t.Fatalf("expected 2 candidates, got %d", len(candidates))
	}
	if candidates[0].Name != "Resume_A" || candidates[1].Name != "Resume_B" {
		t.Fatalf("unexpected candidate order: %+v", candidates)
	}
}

func TestDecodeRowsArchivedFlag(t *testing.T) {
	cases := []struct {
		status string
		want   bool
	}{
		{"archived", true},
		{"ARCHIVED", true},
		{"Archived 2023", true},
		{"old-ArChIvEd-copy", true},
		{"active", false},
		{"", false},
	}

	for _, tc := range cases {
		candidates := DecodeRows([][]string{{"name", "content", tc.status}})
		if len(candidates) != 1 {
			t.Fatalf("status %q: expected 1 candidate, got %d", tc.status, len(candidates))
		}
		if candidates[0].IsArchived != tc.want {
			t.Fatalf("status %q: expected IsArchived=%v", tc.status, tc.want)
		}
	}

	// A two-field row has no status at all.
	candidates := DecodeRows([][]string{{"name", "content"}})
	if candidates[0].IsArchived {
		t.Fatal("missing status must decode as not archived")
	}
}

func TestDecodeRowsPathDefault(t *testing.T) {
	candidates := DecodeRows([][]string{
		{"a", "body"},
		{"b", "body", "active"},
		{"c", "body", "active", ""},
		{"d", "body", "active", "http://d"},
	})

	for i, want := range []string{models.DefaultPath, models.DefaultPath, models.DefaultPath, "http://d"} {
		if candidates[i].Path != want {
			t.Fatalf("candidate %d: expected path %q, got %q", i, want, candidates[i].Path)
		}
	}
}
