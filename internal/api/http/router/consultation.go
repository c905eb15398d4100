package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/medimind/backend/internal/api/http/handler"
)

func (r *Router) registerConsultationRoutes(
	api fiber.Router,
	h *handler.ConsultationHandler,
	authRequired fiber.Handler,
	patientOnly fiber.Handler,
) {
	cons := api.Group("/consultations", authRequired)

	cons.Get("/", h.List)
	cons.Post("/", patientOnly, h.Book)
	cons.Patch("/:id/status", h.UpdateStatus)
	cons.Get("/:id/room", h.Room)

	appts := api.Group("/appointments", authRequired)
	appts.Get("/", h.ListAppointments)
	appts.Post("/:id/cancel", h.CancelAppointment)
}
