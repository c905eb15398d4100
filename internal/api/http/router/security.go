package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/medimind/backend/internal/api/http/handler"
)

func (r *Router) registerSecurityRoutes(
	api fiber.Router,
	h *handler.SecurityHandler,
	authRequired fiber.Handler,
) {
	sec := api.Group("/security", authRequired)

	sec.Get("/sessions", h.Sessions)
	sec.Delete("/sessions/:id", h.RevokeSession)
	sec.Post("/sessions/revoke-others", h.RevokeOthers)
	sec.Get("/activity", h.Activity)
}
