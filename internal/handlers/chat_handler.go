package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"resume-screener/internal/models"
	"resume-screener/internal/services"
)

const chatGreeting = "Hi! Send me a job description and I'll screen the resume pool against it."

type ChatHandler struct {
	screener  services.ScreenerService
	formatter *services.Formatter
}

func NewChatHandler(screener services.ScreenerService, formatter *services.Formatter) *ChatHandler {
	return &ChatHandler{
		screener:  screener,
		formatter: formatter,
	}
}

// HandleEvent handles POST /chat. A missing message is a greeting, not an
// error; failures come back as plain text payloads so the chat surface never
// sees an unformatted fault.
func (h *ChatHandler) HandleEvent(c *fiber.Ctx) error {
	var event models.ChatEvent
	if err := c.BodyParser(&event); err != nil {
		return c.JSON(models.ChatText{Text: chatGreeting})
	}

	var jd string
	if event.Message != nil {
		jd = event.Message.Text
	}
	if strings.TrimSpace(jd) == "" {
		return c.JSON(models.ChatText{Text: chatGreeting})
	}

	result, err := h.screener.Screen(c.Context(), jd)
	if err != nil {
		_, message := mapScreenError(err)
		return c.JSON(models.ChatText{Text: message})
	}

	return c.JSON(h.formatter.ChatBody(result))
}
