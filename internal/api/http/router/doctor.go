package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/medimind/backend/internal/api/http/handler"
)

func (r *Router) registerDoctorRoutes(
	api fiber.Router,
	h *handler.DoctorHandler,
	authRequired fiber.Handler,
	doctorOnly fiber.Handler,
) {
	doctor := api.Group("/doctor", authRequired, doctorOnly)

	doctor.Get("/dashboard", h.Dashboard)
	doctor.Get("/patients", h.Patients)
	doctor.Get("/loads", h.Loads)

	doctor.Get("/prescriptions", h.Prescriptions)
	doctor.Post("/prescriptions", h.CreatePrescription)
}
