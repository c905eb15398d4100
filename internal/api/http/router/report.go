package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/medimind/backend/internal/api/http/handler"
)

func (r *Router) registerReportRoutes(
	api fiber.Router,
	h *handler.ReportHandler,
	authRequired fiber.Handler,
	patientOnly fiber.Handler,
) {
	reports := api.Group("/reports", authRequired, patientOnly)

	reports.Get("/", h.List)
	reports.Post("/", h.CreateUploadIntent)

	rep := reports.Group("/:id")
	rep.Get("/", h.Get)
	rep.Post("/process", h.Process)
	rep.Get("/download", h.Download)
	rep.Delete("/", h.Delete)
}
