package services

import (
	"strings"

	"resume-screener/internal/models"
)

// DecodeRows turns raw positional rows into candidate records. Decoding is
// best-effort and total: a row with fewer than two populated positions is
// dropped silently, everything else maps through. Input order is preserved;
// it is the only recency signal the downstream model gets.
func DecodeRows(rows [][]string) []models.CandidateRecord {
	candidates := make([]models.CandidateRecord, 0, len(rows))

	for _, row := range rows {
		if populatedFields(row) < 2 {
			continue
		}

		status := ""
		if len(row) > 2 {
			status = row[2]
		}

		path := models.DefaultPath
		if len(row) > 3 && strings.TrimSpace(row[3]) != "" {
			path = row[3]
		}

		candidates = append(candidates, models.CandidateRecord{
			Name:       row[0],
			Content:    row[1],
			IsArchived: strings.Contains(strings.ToLower(status), "archived"),
			Path:       path,
		})
	}

	return candidates
}

func populatedFields(row []string) int {
	count := 0
	for _, field := range row {
		if strings.TrimSpace(field) != "" {
			count++
		}
	}
	return count
}
