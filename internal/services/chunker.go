package services

import (
	"strings"
	"unicode/utf8"
)

// TextChunker splits resume bodies into embedding-sized pieces. Chunks break
// on paragraph boundaries where possible and carry a small overlap so skill
// mentions near a boundary stay searchable.
type TextChunker interface {
	ChunkText(text string, maxChunkSize int, overlap int) []string
}

type textChunker struct{}

func NewTextChunker() TextChunker {
	return &textChunker{}
}

// ChunkText implements TextChunker.
func (tc *textChunker) ChunkText(text string, maxChunkSize int, overlap int) []string {
	if maxChunkSize <= 0 {
		maxChunkSize = 1000
	}
	if overlap < 0 {
		overlap = 0
	}
	if overlap >= maxChunkSize {
		overlap = maxChunkSize / 4
	}

	var chunks []string
	var current strings.Builder

	// flush emits the working chunk and seeds the next one with the overlap
	// tail. The tail carries no trailing separator; the append loop adds the
	// single separator in front of the next piece.
	flush := func() {
		if current.Len() == 0 {
			return
		}
		chunks = append(chunks, current.String())
		tail := lastRunes(current.String(), overlap)
		current.Reset()
		current.WriteString(tail)
	}

	for _, para := range strings.Split(text, "\n\n") {
		para = strings.TrimSpace(para)
		if para == "" {
			continue
		}

		// Oversized paragraphs fall back to sentence granularity. All size
		// accounting is in runes.
		pieces := []string{para}
		sep := "\n\n"
		if utf8.RuneCountInString(para) > maxChunkSize {
			pieces = splitIntoSentences(para)
			sep = " "
		}

		for _, piece := range pieces {
			pending := utf8.RuneCountInString(piece) + utf8.RuneCountInString(sep)
			if current.Len() > 0 && utf8.RuneCountInString(current.String())+pending > maxChunkSize {
				flush()
			}
			if current.Len() > 0 {
				current.WriteString(sep)
			}
			current.WriteString(piece)
		}
	}

	if current.Len() > 0 {
		chunks = append(chunks, current.String())
	}

	return chunks
}

func splitIntoSentences(text string) []string {
	sentences := strings.FieldsFunc(text, func(r rune) bool {
		return r == '.' || r == '!' || r == '?'
	})

	var result []string
	for _, s := range sentences {
		s = strings.TrimSpace(s)
		if s != "" {
			result = append(result, s)
		}
	}
	return result
}

func lastRunes(text string, n int) string {
	if n <= 0 {
		return ""
	}
	runes := []rune(text)
	if len(runes) <= n {
		return text
	}
	return string(runes[len(runes)-n:])
}
