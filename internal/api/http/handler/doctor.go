package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/medimind/backend/internal/service/assignment"
	"github.com/medimind/backend/internal/service/prescription"
	"github.com/medimind/backend/internal/service/user"
)

type DoctorHandler struct {
	users         user.Service
	assignments   assignment.Service
	prescriptions prescription.Service
}

func NewDoctorHandler(users user.Service, assignments assignment.Service, prescriptions prescription.Service) *DoctorHandler {
	return &DoctorHandler{users: users, assignments: assignments, prescriptions: prescriptions}
}

func mapDoctorError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, assignment.ErrNoDoctorsAvailable):
		return serviceUnavailable(c, err.Error())
	case errors.Is(err, assignment.ErrPatientNotFound), errors.Is(err, user.ErrUserNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, assignment.ErrNotAPatient):
		return badRequest(c, err.Error())
	case errors.Is(err, prescription.ErrNotYourPatient):
		return forbidden(c)
	case errors.Is(err, prescription.ErrMissingTitle):
		return badRequest(c, err.Error())
	default:
		return internalError(c)
	}
}

// GET /doctor/dashboard
func (h *DoctorHandler) Dashboard(c fiber.Ctx) error {
	doctorID, _, authed := currentUser(c)
	if !authed {
		return unauthorized(c)
	}

	stats, err := h.users.Dashboard(c.Context(), doctorID)
	if err != nil {
		return mapDoctorError(c, err)
	}

	return ok(c, stats)
}

// GET /doctor/patients
func (h *DoctorHandler) Patients(c fiber.Ctx) error {
	doctorID, _, authed := currentUser(c)
	if !authed {
		return unauthorized(c)
	}

	patients, err := h.users.AssignedPatients(c.Context(), doctorID)
	if err != nil {
		return mapDoctorError(c, err)
	}

	return ok(c, patients)
}

// GET /doctor/loads
func (h *DoctorHandler) Loads(c fiber.Ctx) error {
	loads, err := h.assignments.DoctorLoads(c.Context())
	if err != nil {
		return mapDoctorError(c, err)
	}

	return ok(c, loads)
}

// POST /doctor/prescriptions
func (h *DoctorHandler) CreatePrescription(c fiber.Ctx) error {
	doctorID, _, authed := currentUser(c)
	if !authed {
		return unauthorized(c)
	}

	var body struct {
		PatientID       string  `json:"patient_id"`
		Title           string  `json:"title"`
		MedicineSummary string  `json:"medicine_summary"`
		Notes           *string `json:"notes"`
	}
	if err := c.Bind().Body(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	patientID, err := uuid.Parse(body.PatientID)
	if err != nil {
		return badRequest(c, "invalid patient_id")
	}

	presc, err := h.prescriptions.Create(c.Context(), doctorID, prescription.CreateRequest{
		PatientID:       patientID,
		Title:           body.Title,
		MedicineSummary: body.MedicineSummary,
		Notes:           body.Notes,
	})
	if err != nil {
		return mapDoctorError(c, err)
	}

	return created(c, presc)
}

// GET /doctor/prescriptions
func (h *DoctorHandler) Prescriptions(c fiber.Ctx) error {
	doctorID, _, authed := currentUser(c)
	if !authed {
		return unauthorized(c)
	}

	prescs, err := h.prescriptions.ListIssuedBy(c.Context(), doctorID)
	if err != nil {
		return mapDoctorError(c, err)
	}

	return ok(c, prescs)
}
