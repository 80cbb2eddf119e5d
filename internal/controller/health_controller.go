package controller

import (
	"finance-chatbot-be/internal/dto"
	"finance-chatbot-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IHealthController interface {
	RegisterRoutes(r fiber.Router)
	Health(ctx *fiber.Ctx) error
}

type healthController struct {
	chatbotService service.IChatbotService
}

func NewHealthController(chatbotService service.IChatbotService) IHealthController {
	return &healthController{chatbotService: chatbotService}
}

func (c *healthController) RegisterRoutes(r fiber.Router) {
	r.Get("/health", c.Health)
}

// Health reports liveness only; it does not call the QA backend.
func (c *healthController) Health(ctx *fiber.Ctx) error {
	return ctx.JSON(dto.HealthResponse{
		Status:   "ok",
		Provider: c.chatbotService.ProviderName(),
	})
}
