package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/medimind/backend/internal/service/consultation"
)

type ConsultationHandler struct {
	svc consultation.Service
}

func NewConsultationHandler(svc consultation.Service) *ConsultationHandler {
	return &ConsultationHandler{svc: svc}
}

func mapConsultationError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, consultation.ErrMissingFields),
		errors.Is(err, consultation.ErrInvalidStatus):
		return badRequest(c, err.Error())
	case errors.Is(err, consultation.ErrConsultationNotFound),
		errors.Is(err, consultation.ErrAppointmentNotFound),
		errors.Is(err, consultation.ErrDoctorNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, consultation.ErrForbidden),
		errors.Is(err, consultation.ErrNotYourRecommendation):
		return forbidden(c)
	default:
		return internalError(c)
	}
}

// POST /consultations
func (h *ConsultationHandler) Book(c fiber.Ctx) error {
	patientID, _, authed := currentUser(c)
	if !authed {
		return unauthorized(c)
	}

	var body struct {
		DoctorID         string  `json:"doctor_id"`
		Date             string  `json:"date"`
		Time             string  `json:"time"`
		Type             string  `json:"type"`
		Reason           string  `json:"reason"`
		RecommendationID *string `json:"recommendation_id"`
		ReportID         *string `json:"report_id"`
	}
	if err := c.Bind().Body(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	req := consultation.BookRequest{
		Date:   body.Date,
		Time:   body.Time,
		Type:   body.Type,
		Reason: body.Reason,
	}
	if body.DoctorID != "" {
		id, err := uuid.Parse(body.DoctorID)
		if err != nil {
			return badRequest(c, "invalid doctor_id")
		}
		req.DoctorID = id
	}
	if body.RecommendationID != nil && *body.RecommendationID != "" {
		id, err := uuid.Parse(*body.RecommendationID)
		if err != nil {
			return badRequest(c, "invalid recommendation_id")
		}
		req.RecommendationID = &id
	}
	if body.ReportID != nil && *body.ReportID != "" {
		id, err := uuid.Parse(*body.ReportID)
		if err != nil {
			return badRequest(c, "invalid report_id")
		}
		req.ReportID = &id
	}

	cons, err := h.svc.Book(c.Context(), patientID, req)
	if err != nil {
		return mapConsultationError(c, err)
	}

	return created(c, cons)
}

// GET /consultations?role=patient|doctor
func (h *ConsultationHandler) List(c fiber.Ctx) error {
	userID, _, authed := currentUser(c)
	if !authed {
		return unauthorized(c)
	}

	cons, err := h.svc.List(c.Context(), userID, c.Query("role"))
	if err != nil {
		return mapConsultationError(c, err)
	}

	return ok(c, cons)
}

// PATCH /consultations/:id/status
func (h *ConsultationHandler) UpdateStatus(c fiber.Ctx) error {
	userID, _, authed := currentUser(c)
	if !authed {
		return unauthorized(c)
	}

	consID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid consultation id")
	}

	var body struct {
		Status string `json:"status"`
	}
	if err := c.Bind().Body(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	cons, err := h.svc.UpdateStatus(c.Context(), userID, consID, body.Status)
	if err != nil {
		return mapConsultationError(c, err)
	}

	return ok(c, cons)
}

// GET /consultations/:id/room
func (h *ConsultationHandler) Room(c fiber.Ctx) error {
	userID, _, authed := currentUser(c)
	if !authed {
		return unauthorized(c)
	}

	consID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid consultation id")
	}

	room, err := h.svc.Room(c.Context(), userID, consID)
	if err != nil {
		return mapConsultationError(c, err)
	}

	return ok(c, room)
}

// GET /appointments?role=patient|doctor
func (h *ConsultationHandler) ListAppointments(c fiber.Ctx) error {
	userID, _, authed := currentUser(c)
	if !authed {
		return unauthorized(c)
	}

	appts, err := h.svc.ListAppointments(c.Context(), userID, c.Query("role"))
	if err != nil {
		return mapConsultationError(c, err)
	}

	return ok(c, appts)
}

// POST /appointments/:id/cancel
func (h *ConsultationHandler) CancelAppointment(c fiber.Ctx) error {
	userID, _, authed := currentUser(c)
	if !authed {
		return unauthorized(c)
	}

	apptID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid appointment id")
	}

	if err := h.svc.CancelAppointment(c.Context(), userID, apptID); err != nil {
		return mapConsultationError(c, err)
	}

	return noContent(c)
}
