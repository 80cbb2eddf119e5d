package serverutils

import (
	"github.com/gofiber/fiber/v2"
)

// Headers the chat route answers with, preflight and actual request alike.
const (
	ChatAllowOrigin  = "*"
	ChatAllowMethods = "POST, OPTIONS"
	ChatAllowHeaders = "Content-Type"
)

// SetChatCORSHeaders writes the permissive CORS headers of the chat route.
func SetChatCORSHeaders(ctx *fiber.Ctx) {
	ctx.Set(fiber.HeaderAccessControlAllowOrigin, ChatAllowOrigin)
	ctx.Set(fiber.HeaderAccessControlAllowMethods, ChatAllowMethods)
	ctx.Set(fiber.HeaderAccessControlAllowHeaders, ChatAllowHeaders)
}

// SkipPreflight keeps the global cors middleware away from OPTIONS requests so
// routes can answer their own preflight.
func SkipPreflight(ctx *fiber.Ctx) bool {
	return ctx.Method() == fiber.MethodOptions
}
