package handlers

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"resume-screener/internal/models"
	"resume-screener/internal/repositories"
	"resume-screener/internal/services"
)

// ResumeHandler ingests resume PDFs into the postgres backing store. Only
// registered when that backend is selected.
type ResumeHandler struct {
	repo        repositories.ResumeRepository
	storage     services.StorageService
	pdfParser   services.PDFParserService
	maxFileSize int64
}

func NewResumeHandler(
	repo repositories.ResumeRepository,
	storage services.StorageService,
	pdfParser services.PDFParserService,
	maxFileSize int64,
) *ResumeHandler {
	return &ResumeHandler{
		repo:        repo,
		storage:     storage,
		pdfParser:   pdfParser,
		maxFileSize: maxFileSize,
	}
}

// HandleIngest handles POST /resumes: multipart upload with a "resume" PDF
// plus optional name, status and path fields.
func (h *ResumeHandler) HandleIngest(c *fiber.Ctx) error {
	file, err := c.FormFile("resume")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "No resume file uploaded. Please upload 'resume' as a PDF file.",
		})
	}

	if file.Size > h.maxFileSize {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": fmt.Sprintf("Resume file too large. Max size: %d bytes", h.maxFileSize),
		})
	}

	filename, filePath, err := h.storage.SaveFile(file)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": fmt.Sprintf("failed to save resume file: %v", err),
		})
	}

	content, err := h.pdfParser.ExtractText(filePath)
	if err != nil {
		h.storage.DeleteFile(filename)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": fmt.Sprintf("failed to extract resume text: %v", err),
		})
	}

	name := c.FormValue("name")
	if name == "" {
		name = file.Filename
	}

	row := &models.ResumeRow{
		Name:    name,
		Content: content,
		Status:  c.FormValue("status"),
		Path:    c.FormValue("path", models.DefaultPath),
	}

	if err := h.repo.Create(row); err != nil {
		// Cleanup uploaded file if database insert fails
		h.storage.DeleteFile(filename)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to save resume record",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(models.IngestResponse{
		ID:       row.ID.String(),
		Name:     row.Name,
		Filename: filename,
	})
}
