package models

// CandidateRecord is one decoded resume from the backing store. Records are
// built fresh per request and discarded when the response is written.
type CandidateRecord struct {
	Name       string `json:"name"`
	Content    string `json:"content"`
	IsArchived bool   `json:"is_archived"`
	Path       string `json:"path"`
}

// DefaultPath is used when a row carries no external reference URL.
const DefaultPath = "#"
