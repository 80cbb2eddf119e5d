package controller

import (
	"encoding/json"

	"finance-chatbot-be/internal/dto"
	"finance-chatbot-be/internal/pkg/serverutils"
	"finance-chatbot-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IChatbotController interface {
	RegisterRoutes(r fiber.Router)
	Chat(ctx *fiber.Ctx) error
	Preflight(ctx *fiber.Ctx) error
}

type chatbotController struct {
	chatbotService service.IChatbotService
}

func NewChatbotController(chatbotService service.IChatbotService) IChatbotController {
	return &chatbotController{
		chatbotService: chatbotService,
	}
}

func (c *chatbotController) RegisterRoutes(r fiber.Router) {
	// Public: no auth on the chat route
	r.Post("/chat", c.Chat)
	r.Options("/chat", c.Preflight)
}

func (c *chatbotController) Chat(ctx *fiber.Ctx) error {
	serverutils.SetChatCORSHeaders(ctx)

	// Malformed or empty bodies are not rejected: the message just stays empty
	var req dto.ChatRequest
	if body := ctx.Body(); len(body) > 0 {
		if err := json.Unmarshal(body, &req); err != nil {
			// Not JSON, give form encodings a chance
			req = dto.ChatRequest{}
			if err := ctx.BodyParser(&req); err != nil {
				req = dto.ChatRequest{}
			}
		}
	}

	res, err := c.chatbotService.SendChat(ctx.UserContext(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(res)
}

func (c *chatbotController) Preflight(ctx *fiber.Ctx) error {
	serverutils.SetChatCORSHeaders(ctx)
	return ctx.JSON(fiber.Map{})
}
