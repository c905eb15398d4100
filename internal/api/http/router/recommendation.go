package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/medimind/backend/internal/api/http/handler"
)

func (r *Router) registerRecommendationRoutes(
	api fiber.Router,
	h *handler.RecommendationHandler,
	authRequired fiber.Handler,
	doctorOnly fiber.Handler,
	patientOnly fiber.Handler,
) {
	recs := api.Group("/recommendations", authRequired)

	recs.Get("/", h.List)
	recs.Post("/", doctorOnly, h.Create)
	recs.Post("/second-opinion", patientOnly, h.SecondOpinion)
	recs.Post("/:id/dismiss", h.Dismiss)
}
