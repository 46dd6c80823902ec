package repositories

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"resume-screener/internal/models"
)

type ResumeRepository interface {
	Create(row *models.ResumeRow) error
	List(ctx context.Context) ([]models.ResumeRow, error)
}

type resumeRepository struct {
	db *gorm.DB
}

func NewResumeRepository(db *gorm.DB) ResumeRepository {
	return &resumeRepository{db: db}
}

// Create implements ResumeRepository.
func (r *resumeRepository) Create(row *models.ResumeRow) error {
	if err := r.db.Create(row).Error; err != nil {
		return fmt.Errorf("failed to create resume: %w", err)
	}
	return nil
}

// List implements ResumeRepository. Insertion order is preserved so the
// pipeline sees rows in the same order a spreadsheet would provide them.
func (r *resumeRepository) List(ctx context.Context) ([]models.ResumeRow, error) {
	var rows []models.ResumeRow
	if err := r.db.WithContext(ctx).Order("created_at ASC").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list resumes: %w", err)
	}
	return rows, nil
}

// postgresSource adapts the resume table to the positional row contract
// shared with the spreadsheet backend.
type postgresSource struct {
	repo ResumeRepository
}

func NewPostgresSource(repo ResumeRepository) RowSource {
	return &postgresSource{repo: repo}
}

// GetRange implements RowSource.
func (p *postgresSource) GetRange(ctx context.Context) ([][]string, error) {
	records, err := p.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	rows := make([][]string, 0, len(records))
	for _, rec := range records {
		rows = append(rows, []string{rec.Name, rec.Content, rec.Status, rec.Path})
	}

	return rows, nil
}
