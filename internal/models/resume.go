package models

import (
	"time"

	"github.com/google/uuid"
)

// ResumeRow is one stored resume when the postgres backend is selected. The
// screening pipeline only ever reads these; writes happen through the ingest
// endpoint.
type ResumeRow struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Name      string    `gorm:"type:text;not null" json:"name"`
	Content   string    `gorm:"type:text;not null" json:"content"`
	Status    string    `gorm:"type:text" json:"status"`
	Path      string    `gorm:"type:text" json:"path"`
	CreatedAt time.Time `gorm:"type:timestamp;default:now()" json:"created_at"`
	UpdatedAt time.Time `gorm:"type:timestamp;default:now()" json:"updated_at"`
}

func (ResumeRow) TableName() string {
	return "resumes"
}

// IngestResponse is returned by POST /resumes.
type IngestResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Filename string `json:"filename"`
}
