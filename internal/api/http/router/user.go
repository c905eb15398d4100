package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/medimind/backend/internal/api/http/handler"
)

func (r *Router) registerUserRoutes(
	api fiber.Router,
	h *handler.UserHandler,
	authRequired fiber.Handler,
) {
	users := api.Group("/users", authRequired)

	users.Get("/me", h.Me)
	users.Post("/me/role", h.SelectRole)
	users.Patch("/me/profile", h.UpdateProfile)
	users.Get("/me/prescriptions", h.MyPrescriptions)
}
