package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/medimind/backend/internal/api/http/handler"
)

func (r *Router) registerConversationRoutes(
	api fiber.Router,
	h *handler.ConversationHandler,
	authRequired fiber.Handler,
) {
	convs := api.Group("/conversations", authRequired)

	convs.Get("/", h.List)
	convs.Get("/:id/messages", h.Messages)
	convs.Post("/:id/messages", h.Send)
}
