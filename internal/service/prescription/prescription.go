// Package prescription manages doctor-issued medication records.
package prescription

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/medimind/backend/internal/repo"
	entpresc "github.com/medimind/backend/internal/repo/prescription"
	entrel "github.com/medimind/backend/internal/repo/relationship"
	"github.com/medimind/backend/internal/service/recommendation"
)

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

type CreateRequest struct {
	PatientID       uuid.UUID
	Title           string
	MedicineSummary string
	Notes           *string
}

// ---------------------------------------------------------------------------
// Service interface
// ---------------------------------------------------------------------------

type Service interface {
	// Create issues a prescription for one of the doctor's patients and
	// raises the follow-up recommendation that goes with it.
	Create(ctx context.Context, doctorID uuid.UUID, req CreateRequest) (*repo.Prescription, error)

	ListForPatient(ctx context.Context, patientID uuid.UUID) ([]*repo.Prescription, error)
	ListIssuedBy(ctx context.Context, doctorID uuid.UUID) ([]*repo.Prescription, error)
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type prescriptionService struct {
	db              *repo.Client
	recommendations recommendation.Service
	logger          *slog.Logger
}

func New(db *repo.Client, recommendations recommendation.Service, logger *slog.Logger) Service {
	return &prescriptionService{db: db, recommendations: recommendations, logger: logger}
}

func (s *prescriptionService) Create(ctx context.Context, doctorID uuid.UUID, req CreateRequest) (*repo.Prescription, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return nil, ErrMissingTitle
	}

	linked, err := s.db.Relationship.Query().
		Where(
			entrel.DoctorID(doctorID),
			entrel.PatientID(req.PatientID),
			entrel.StatusEQ(entrel.StatusActive),
		).
		Exist(ctx)
	if err != nil {
		return nil, fmt.Errorf("check care relationship: %w", err)
	}
	if !linked {
		return nil, ErrNotYourPatient
	}

	doctor, err := s.db.User.Get(ctx, doctorID)
	if err != nil {
		return nil, fmt.Errorf("load doctor: %w", err)
	}

	presc, err := s.db.Prescription.Create().
		SetPatientID(req.PatientID).
		SetDoctorID(doctorID).
		SetDoctorName(doctor.FullName).
		SetTitle(title).
		SetMedicineSummary(req.MedicineSummary).
		SetNillableNotes(req.Notes).
		SetPrescribedAt(time.Now()).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create prescription: %w", err)
	}

	// The follow-up recommendation is best effort. The prescription
	// stands on its own.
	if _, err := s.recommendations.PrescriptionRecommend(ctx, recommendation.PrescriptionRequest{
		PatientID: req.PatientID,
		DoctorID:  doctorID,
		Title:     title,
	}); err != nil {
		s.logger.Warn("prescription: creating follow-up recommendation failed",
			"prescription_id", presc.ID,
			"error", err,
		)
	}

	return presc, nil
}

func (s *prescriptionService) ListForPatient(ctx context.Context, patientID uuid.UUID) ([]*repo.Prescription, error) {
	prescs, err := s.db.Prescription.Query().
		Where(entpresc.PatientID(patientID)).
		Order(repo.Desc(entpresc.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list prescriptions: %w", err)
	}
	return prescs, nil
}

func (s *prescriptionService) ListIssuedBy(ctx context.Context, doctorID uuid.UUID) ([]*repo.Prescription, error) {
	prescs, err := s.db.Prescription.Query().
		Where(entpresc.DoctorID(doctorID)).
		Order(repo.Desc(entpresc.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list prescriptions: %w", err)
	}
	return prescs, nil
}
