package handlers

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"resume-screener/internal/models"
	"resume-screener/internal/services"
)

type ScreenHandler struct {
	screener  services.ScreenerService
	formatter *services.Formatter
}

func NewScreenHandler(screener services.ScreenerService, formatter *services.Formatter) *ScreenHandler {
	return &ScreenHandler{
		screener:  screener,
		formatter: formatter,
	}
}

// HandleForm handles GET /, the static screening form.
func (h *ScreenHandler) HandleForm(c *fiber.Ctx) error {
	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.SendString(screeningFormHTML)
}

// HandleScreen handles POST /screen. The request shape (JSON vs form) is
// resolved once from the declared content type; it decides both how the job
// description is extracted and how the result is serialized. The job
// description is validated before any collaborator is touched.
func (h *ScreenHandler) HandleScreen(c *fiber.Ctx) error {
	isJSON := c.Is("json")

	var jd string
	if isJSON {
		var req models.ScreenRequest
		if err := c.BodyParser(&req); err == nil {
			jd = req.JobDescription()
		}
	} else {
		jd = c.FormValue("jd")
	}

	if strings.TrimSpace(jd) == "" {
		return h.errorResponse(c, isJSON, fiber.StatusBadRequest, "Error: No JD provided.")
	}

	result, err := h.screener.Screen(c.Context(), jd)
	if err != nil {
		status, message := mapScreenError(err)
		return h.errorResponse(c, isJSON, status, message)
	}

	if isJSON {
		return c.JSON(h.formatter.JSONBody(result))
	}

	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.SendString(h.formatter.HTMLBody(result))
}

func (h *ScreenHandler) errorResponse(c *fiber.Ctx, isJSON bool, status int, message string) error {
	if isJSON {
		return c.Status(status).JSON(fiber.Map{"error": message})
	}
	return c.Status(status).SendString(message)
}

// mapScreenError translates pipeline outcomes into response statuses. The
// messages are deliberately generic; diagnostics stay in the server log.
func mapScreenError(err error) (int, string) {
	switch {
	case errors.Is(err, services.ErrEmptyPool):
		return fiber.StatusServiceUnavailable, "Error: No resumes found."
	case errors.Is(err, services.ErrStoreUnavailable):
		return fiber.StatusInternalServerError, "Error: Resume store unavailable."
	case errors.Is(err, services.ErrModelOutput):
		return fiber.StatusInternalServerError, "Error: AI parsing failed."
	case errors.Is(err, services.ErrModelUnavailable):
		return fiber.StatusInternalServerError, "Error: AI processing failed."
	default:
		return fiber.StatusInternalServerError, "System error."
	}
}
