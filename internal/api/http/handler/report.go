package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/medimind/backend/internal/service/report"
)

type ReportHandler struct {
	svc report.Service
}

func NewReportHandler(svc report.Service) *ReportHandler {
	return &ReportHandler{svc: svc}
}

func mapReportError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, report.ErrReportNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, report.ErrNotYourReport):
		return forbidden(c)
	case errors.Is(err, report.ErrMissingFileName):
		return badRequest(c, err.Error())
	case errors.Is(err, report.ErrAlreadyRunning):
		return conflict(c, err.Error())
	default:
		return internalError(c)
	}
}

// POST /reports
func (h *ReportHandler) CreateUploadIntent(c fiber.Ctx) error {
	userID, _, authed := currentUser(c)
	if !authed {
		return unauthorized(c)
	}

	var body struct {
		FileName    string `json:"file_name"`
		ContentType string `json:"content_type"`
	}
	if err := c.Bind().Body(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	intent, err := h.svc.CreateUploadIntent(c.Context(), userID, report.UploadIntentRequest{
		FileName:    body.FileName,
		ContentType: body.ContentType,
	})
	if err != nil {
		return mapReportError(c, err)
	}

	return created(c, intent)
}

// POST /reports/:id/process
func (h *ReportHandler) Process(c fiber.Ctx) error {
	userID, _, authed := currentUser(c)
	if !authed {
		return unauthorized(c)
	}

	reportID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid report id")
	}

	rep, err := h.svc.Process(c.Context(), userID, reportID)
	if err != nil {
		return mapReportError(c, err)
	}

	return ok(c, rep)
}

// GET /reports
func (h *ReportHandler) List(c fiber.Ctx) error {
	userID, _, authed := currentUser(c)
	if !authed {
		return unauthorized(c)
	}

	reports, err := h.svc.List(c.Context(), userID)
	if err != nil {
		return mapReportError(c, err)
	}

	return ok(c, reports)
}

// GET /reports/:id
func (h *ReportHandler) Get(c fiber.Ctx) error {
	userID, _, authed := currentUser(c)
	if !authed {
		return unauthorized(c)
	}

	reportID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid report id")
	}

	rep, err := h.svc.Get(c.Context(), userID, reportID)
	if err != nil {
		return mapReportError(c, err)
	}

	return ok(c, rep)
}

// GET /reports/:id/download
func (h *ReportHandler) Download(c fiber.Ctx) error {
	userID, _, authed := currentUser(c)
	if !authed {
		return unauthorized(c)
	}

	reportID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid report id")
	}

	url, err := h.svc.DownloadURL(c.Context(), userID, reportID)
	if err != nil {
		return mapReportError(c, err)
	}

	return ok(c, fiber.Map{"download_url": url})
}

// DELETE /reports/:id
func (h *ReportHandler) Delete(c fiber.Ctx) error {
	userID, _, authed := currentUser(c)
	if !authed {
		return unauthorized(c)
	}

	reportID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid report id")
	}

	if err := h.svc.Delete(c.Context(), userID, reportID); err != nil {
		return mapReportError(c, err)
	}

	return noContent(c)
}
