package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/medimind/backend/internal/service/recommendation"
	"github.com/medimind/backend/pkg/ai"
)

type RecommendationHandler struct {
	svc recommendation.Service
}

func NewRecommendationHandler(svc recommendation.Service) *RecommendationHandler {
	return &RecommendationHandler{svc: svc}
}

func mapRecommendationError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, recommendation.ErrRecommendationNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, recommendation.ErrNotActive):
		return conflict(c, err.Error())
	case errors.Is(err, recommendation.ErrNotYourReport),
		errors.Is(err, recommendation.ErrNotYourPatient),
		errors.Is(err, recommendation.ErrForbidden):
		return forbidden(c)
	case errors.Is(err, recommendation.ErrNoAssignedDoctor),
		errors.Is(err, recommendation.ErrNotADoctor),
		errors.Is(err, ai.ErrUnknownRisk):
		return badRequest(c, err.Error())
	default:
		return internalError(c)
	}
}

// GET /recommendations?role=patient|doctor
func (h *RecommendationHandler) List(c fiber.Ctx) error {
	userID, _, authed := currentUser(c)
	if !authed {
		return unauthorized(c)
	}

	recs, err := h.svc.ListActive(c.Context(), userID, c.Query("role"))
	if err != nil {
		return mapRecommendationError(c, err)
	}

	return ok(c, recs)
}

// POST /recommendations (doctor, manual)
func (h *RecommendationHandler) Create(c fiber.Ctx) error {
	doctorID, _, authed := currentUser(c)
	if !authed {
		return unauthorized(c)
	}

	var body struct {
		PatientID string `json:"patient_id"`
		Summary   string `json:"summary"`
		RiskLevel string `json:"risk_level"`
	}
	if err := c.Bind().Body(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	patientID, err := uuid.Parse(body.PatientID)
	if err != nil {
		return badRequest(c, "invalid patient_id")
	}

	rec, err := h.svc.ManualRecommend(c.Context(), doctorID, recommendation.ManualRequest{
		PatientID: patientID,
		Summary:   body.Summary,
		RiskLevel: body.RiskLevel,
	})
	if err != nil {
		return mapRecommendationError(c, err)
	}

	return created(c, rec)
}

// POST /recommendations/second-opinion (patient)
func (h *RecommendationHandler) SecondOpinion(c fiber.Ctx) error {
	patientID, _, authed := currentUser(c)
	if !authed {
		return unauthorized(c)
	}

	var body struct {
		ReportID string  `json:"report_id"`
		DoctorID *string `json:"doctor_id"`
	}
	if err := c.Bind().Body(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	reportID, err := uuid.Parse(body.ReportID)
	if err != nil {
		return badRequest(c, "invalid report_id")
	}

	targetDoctorID := uuid.Nil
	if body.DoctorID != nil && *body.DoctorID != "" {
		targetDoctorID, err = uuid.Parse(*body.DoctorID)
		if err != nil {
			return badRequest(c, "invalid doctor_id")
		}
	}

	rec, err := h.svc.SecondOpinion(c.Context(), patientID, reportID, targetDoctorID)
	if err != nil {
		return mapRecommendationError(c, err)
	}

	return created(c, rec)
}

// POST /recommendations/:id/dismiss
func (h *RecommendationHandler) Dismiss(c fiber.Ctx) error {
	userID, _, authed := currentUser(c)
	if !authed {
		return unauthorized(c)
	}

	recID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid recommendation id")
	}

	if err := h.svc.Dismiss(c.Context(), userID, recID); err != nil {
		return mapRecommendationError(c, err)
	}

	return noContent(c)
}
