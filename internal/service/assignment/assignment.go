// Package assignment implements load-balanced doctor assignment.
// Every completed patient profile is linked to the doctor currently
// carrying the fewest active patients.
package assignment

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/medimind/backend/internal/repo"
	entrel "github.com/medimind/backend/internal/repo/relationship"
	entuser "github.com/medimind/backend/internal/repo/user"
	"github.com/medimind/backend/internal/service/conversation"
)

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

// DoctorLoad is one doctor's active patient count.
type DoctorLoad struct {
	ID             uuid.UUID
	FullName       string
	ActivePatients int
}

// Result describes the outcome of an assignment.
type Result struct {
	DoctorID        uuid.UUID
	DoctorName      string
	AssignedAt      time.Time
	AlreadyAssigned bool
}

// ---------------------------------------------------------------------------
// Service interface
// ---------------------------------------------------------------------------

type Service interface {
	// AssignDoctor links the patient to the least-loaded doctor.
	// A patient who already has a doctor keeps them.
	AssignDoctor(ctx context.Context, patientID uuid.UUID) (*Result, error)

	// LeastLoadedDoctor returns the doctor the next assignment would pick.
	LeastLoadedDoctor(ctx context.Context) (*DoctorLoad, error)

	// DoctorLoads returns the active patient count for every doctor.
	DoctorLoads(ctx context.Context) ([]DoctorLoad, error)
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type assignmentService struct {
	db            *repo.Client
	conversations conversation.Service
	logger        *slog.Logger
}

func New(db *repo.Client, conversations conversation.Service, logger *slog.Logger) Service {
	return &assignmentService{db: db, conversations: conversations, logger: logger}
}

func (s *assignmentService) AssignDoctor(ctx context.Context, patientID uuid.UUID) (*Result, error) {
	patient, err := s.db.User.Query().
		Where(entuser.ID(patientID), entuser.DeletedAtIsNil()).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrPatientNotFound
		}
		return nil, fmt.Errorf("load patient: %w", err)
	}
	if patient.Role == nil || *patient.Role != entuser.RolePatient {
		return nil, ErrNotAPatient
	}

	// Idempotent: an existing assignment is returned, never rebalanced.
	if patient.AssignedDoctorID != nil {
		res := &Result{
			DoctorID:        *patient.AssignedDoctorID,
			AlreadyAssigned: true,
		}
		if patient.AssignedDoctorName != nil {
			res.DoctorName = *patient.AssignedDoctorName
		}
		if patient.AssignedAt != nil {
			res.AssignedAt = *patient.AssignedAt
		}
		return res, nil
	}

	loads, err := s.DoctorLoads(ctx)
	if err != nil {
		return nil, err
	}
	chosen, err := pickLeastLoaded(loads)
	if err != nil {
		return nil, err
	}

	now := time.Now()

	// The patient record is the source of truth for who carries whom,
	// so it is written first; everything after it is secondary.
	if err := s.db.User.UpdateOneID(patientID).
		SetAssignedDoctorID(chosen.ID).
		SetAssignedDoctorName(chosen.FullName).
		SetAssignedAt(now).
		Exec(ctx); err != nil {
		return nil, fmt.Errorf("record assignment on patient: %w", err)
	}

	// The unique (doctor_id, patient_id) index makes the link creation
	// safe under concurrent assignment of the same patient. A failed
	// link must not undo the recorded assignment.
	err = s.db.Relationship.Create().
		SetDoctorID(chosen.ID).
		SetPatientID(patientID).
		SetDoctorName(chosen.FullName).
		SetPatientName(patient.FullName).
		OnConflictColumns(entrel.FieldDoctorID, entrel.FieldPatientID).
		DoNothing().
		Exec(ctx)
	if err != nil {
		s.logger.Warn("assignment: creating care relationship failed",
			"patient_id", patientID,
			"doctor_id", chosen.ID,
			"error", err,
		)
	}

	// Conversation seeding is best effort. A failed thread must not
	// undo a successful assignment.
	if _, err := s.conversations.EnsureConversation(ctx, conversation.EnsureRequest{
		DoctorID:    chosen.ID,
		DoctorName:  chosen.FullName,
		PatientID:   patientID,
		PatientName: patient.FullName,
	}); err != nil {
		s.logger.Warn("assignment: seeding conversation failed",
			"patient_id", patientID,
			"doctor_id", chosen.ID,
			"error", err,
		)
	}

	return &Result{
		DoctorID:   chosen.ID,
		DoctorName: chosen.FullName,
		AssignedAt: now,
	}, nil
}

func (s *assignmentService) LeastLoadedDoctor(ctx context.Context) (*DoctorLoad, error) {
	loads, err := s.DoctorLoads(ctx)
	if err != nil {
		return nil, err
	}
	chosen, err := pickLeastLoaded(loads)
	if err != nil {
		return nil, err
	}
	return &chosen, nil
}

func (s *assignmentService) DoctorLoads(ctx context.Context) ([]DoctorLoad, error) {
	doctors, err := s.db.User.Query().
		Where(
			entuser.RoleEQ(entuser.RoleDoctor),
			entuser.ProfileComplete(true),
			entuser.DeletedAtIsNil(),
		).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list doctors: %w", err)
	}

	// Loads come from the patient records themselves, not the care
	// relationship links, so a stray link never skews the balance.
	var counts []struct {
		DoctorID uuid.UUID `json:"assigned_doctor_id"`
		Count    int       `json:"count"`
	}
	err = s.db.User.Query().
		Where(
			entuser.RoleEQ(entuser.RolePatient),
			entuser.AssignedDoctorIDNotNil(),
			entuser.DeletedAtIsNil(),
		).
		GroupBy(entuser.FieldAssignedDoctorID).
		Aggregate(repo.Count()).
		Scan(ctx, &counts)
	if err != nil {
		return nil, fmt.Errorf("count active patients: %w", err)
	}

	byDoctor := make(map[uuid.UUID]int, len(counts))
	for _, c := range counts {
		byDoctor[c.DoctorID] = c.Count
	}

	loads := make([]DoctorLoad, 0, len(doctors))
	for _, d := range doctors {
		loads = append(loads, DoctorLoad{
			ID:             d.ID,
			FullName:       d.FullName,
			ActivePatients: byDoctor[d.ID],
		})
	}
	return loads, nil
}

// pickLeastLoaded selects the doctor with the fewest active patients.
// Ties break on the lowest doctor id so the choice is deterministic.
func pickLeastLoaded(loads []DoctorLoad) (DoctorLoad, error) {
	if len(loads) == 0 {
		return DoctorLoad{}, ErrNoDoctorsAvailable
	}

	best := loads[0]
	for _, l := range loads[1:] {
		if l.ActivePatients < best.ActivePatients {
			best = l
			continue
		}
		if l.ActivePatients == best.ActivePatients && bytes.Compare(l.ID[:], best.ID[:]) < 0 {
			best = l
		}
	}
	return best, nil
}
