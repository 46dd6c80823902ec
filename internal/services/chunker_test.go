package services

import (
	"fmt"
	"strings"
	"testing"
	"unicode/utf8"
)

func TestChunkTextShortInput(t *testing.T) {
	chunker := NewTextChunker()

	chunks := chunker.ChunkText("short resume body", 1000, 100)
	if len(chunks) != 1 {
		t.Fatalf("expected a single chunk, got %d", len(chunks))
	}
	if chunks[0] != "short resume body" {
		t.Fatalf("unexpected chunk: %q", chunks[0])
	}
}

func TestChunkTextSplitsLongInput(t *testing.T) {
	chunker := NewTextChunker()

	var paragraphs []string
	for i := 0; i < 20; i++ {
		paragraphs = append(paragraphs, fmt.Sprintf("paragraph %d with some filler text about skills and projects", i))
	}
	text := strings.Join(paragraphs, "\n\n")

	chunks := chunker.ChunkText(text, 200, 20)
	if len(chunks) < 2 {
		t.Fatalf("expected multiple chunks, got %d", len(chunks))
	}

	joined := strings.Join(chunks, "\n")
	for i := 0; i < 20; i++ {
		if !strings.Contains(joined, fmt.Sprintf("paragraph %d ", i)) {
			t.Fatalf("paragraph %d lost during chunking", i)
		}
	}
}

func TestChunkTextOverlapKeepsSingleSeparator(t *testing.T) {
	chunker := NewTextChunker()

	var paragraphs []string
	for i := 0; i < 12; i++ {
		paragraphs = append(paragraphs, fmt.Sprintf("paragraph %d covering yet another project in detail", i))
	}
	text := strings.Join(paragraphs, "\n\n")

	chunks := chunker.ChunkText(text, 160, 40)
	if len(chunks) < 2 {
		t.Fatalf("expected multiple chunks, got %d", len(chunks))
	}

	for i, chunk := range chunks {
		if strings.Contains(chunk, "\n\n\n\n") {
			t.Fatalf("chunk %d has a doubled separator at the overlap seam: %q", i, chunk)
		}
	}
}

func TestChunkTextCountsRunes(t *testing.T) {
	chunker := NewTextChunker()

	// 40 runes per paragraph, 80 bytes. Byte-based accounting would flush
	// after a single paragraph.
	para := strings.Repeat("é", 40)
	text := strings.Join([]string{para, para, para, para}, "\n\n")

	chunks := chunker.ChunkText(text, 100, 0)
	if len(chunks) < 2 {
		t.Fatalf("expected multiple chunks, got %d", len(chunks))
	}

	packed := false
	for i, chunk := range chunks {
		n := utf8.RuneCountInString(chunk)
		if n > 100 {
			t.Fatalf("chunk %d exceeds the size limit: %d runes", i, n)
		}
		if n >= 80 {
			packed = true
		}
	}
	if !packed {
		t.Fatal("no chunk packed two paragraphs; size accounting is not in runes")
	}
}

func TestChunkTextEmptyInput(t *testing.T) {
	chunker := NewTextChunker()

	if chunks := chunker.ChunkText("", 1000, 100); len(chunks) != 0 {
		t.Fatalf("expected no chunks for empty input, got %d", len(chunks))
	}
}
