// Package user manages accounts, role selection and profile
// completion. Completing a patient profile triggers doctor assignment.
package user

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/nyaruka/phonenumbers"

	"github.com/medimind/backend/internal/repo"
	entappt "github.com/medimind/backend/internal/repo/appointment"
	entrec "github.com/medimind/backend/internal/repo/recommendation"
	entrel "github.com/medimind/backend/internal/repo/relationship"
	entuser "github.com/medimind/backend/internal/repo/user"
	"github.com/medimind/backend/internal/service/assignment"
)

// defaultPhoneRegion is used when a number comes in without a country
// prefix.
const defaultPhoneRegion = "US"

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

type EnsureRequest struct {
	Email    string
	FullName string
}

type UpdateProfileRequest struct {
	FullName    *string
	Phone       *string
	DateOfBirth *string
	Specialty   *string
}

// DashboardStats is the doctor's home screen summary.
type DashboardStats struct {
	ActivePatients        int
	UpcomingAppointments  int
	ActiveRecommendations int
}

// ---------------------------------------------------------------------------
// Service interface
// ---------------------------------------------------------------------------

type Service interface {
	// EnsureUser returns the account for an authenticated identity,
	// creating it on first login.
	EnsureUser(ctx context.Context, req EnsureRequest) (*repo.User, error)

	Me(ctx context.Context, userID uuid.UUID) (*repo.User, error)
	SelectRole(ctx context.Context, userID uuid.UUID, role string) (*repo.User, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, req UpdateProfileRequest) (*repo.User, error)

	// Doctor views
	AssignedPatients(ctx context.Context, doctorID uuid.UUID) ([]*repo.User, error)
	Dashboard(ctx context.Context, doctorID uuid.UUID) (*DashboardStats, error)
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type userService struct {
	db          *repo.Client
	assignments assignment.Service
	logger      *slog.Logger
}

func New(db *repo.Client, assignments assignment.Service, logger *slog.Logger) Service {
	return &userService{db: db, assignments: assignments, logger: logger}
}

func (s *userService) EnsureUser(ctx context.Context, req EnsureRequest) (*repo.User, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if email == "" {
		return nil, ErrMissingEmail
	}

	existing, err := s.db.User.Query().
		Where(entuser.Email(email), entuser.DeletedAtIsNil()).
		Only(ctx)
	if err == nil {
		return existing, nil
	}
	if !repo.IsNotFound(err) {
		return nil, fmt.Errorf("look up user: %w", err)
	}

	u, err := s.db.User.Create().
		SetEmail(email).
		SetFullName(strings.TrimSpace(req.FullName)).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}
	return u, nil
}

func (s *userService) Me(ctx context.Context, userID uuid.UUID) (*repo.User, error) {
	u, err := s.db.User.Query().
		Where(entuser.ID(userID), entuser.DeletedAtIsNil()).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("load user: %w", err)
	}
	return u, nil
}

func (s *userService) SelectRole(ctx context.Context, userID uuid.UUID, role string) (*repo.User, error) {
	target := entuser.Role(role)
	if target != entuser.RolePatient && target != entuser.RoleDoctor {
		return nil, ErrInvalidRole
	}

	u, err := s.Me(ctx, userID)
	if err != nil {
		return nil, err
	}
	// The role is a one-time choice. Switching sides would orphan care
	// relationships.
	if u.Role != nil {
		return nil, ErrRoleAlreadySet
	}

	u, err = s.db.User.UpdateOneID(userID).
		SetRole(target).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("set role: %w", err)
	}
	return u, nil
}

func (s *userService) UpdateProfile(ctx context.Context, userID uuid.UUID, req UpdateProfileRequest) (*repo.User, error) {
	u, err := s.Me(ctx, userID)
	if err != nil {
		return nil, err
	}

	update := s.db.User.UpdateOneID(userID)
	if req.FullName != nil {
		update.SetFullName(strings.TrimSpace(*req.FullName))
	}
	if req.Phone != nil {
		normalized, err := normalizePhone(*req.Phone)
		if err != nil {
			return nil, err
		}
		update.SetPhone(normalized)
	}
	if req.DateOfBirth != nil {
		update.SetDateOfBirth(*req.DateOfBirth)
	}
	if req.Specialty != nil {
		update.SetSpecialty(*req.Specialty)
	}

	u, err = update.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("update profile: %w", err)
	}

	if profileComplete(u) {
		if !u.ProfileComplete {
			u, err = s.db.User.UpdateOneID(userID).
				SetProfileComplete(true).
				Save(ctx)
			if err != nil {
				return nil, fmt.Errorf("mark profile complete: %w", err)
			}
		}

		// Completed patient profiles enter the assignment pool
		// immediately. Assignment failures are logged and retried on
		// the next profile update, never surfaced to the patient.
		if u.Role != nil && *u.Role == entuser.RolePatient && u.AssignedDoctorID == nil {
			if _, err := s.assignments.AssignDoctor(ctx, u.ID); err != nil {
				s.logger.Warn("profile: doctor assignment failed",
					"patient_id", u.ID,
					"error", err,
				)
			} else {
				u, err = s.Me(ctx, userID)
				if err != nil {
					return nil, err
				}
			}
		}
	}

	return u, nil
}

func (s *userService) AssignedPatients(ctx context.Context, doctorID uuid.UUID) ([]*repo.User, error) {
	rels, err := s.db.Relationship.Query().
		Where(
			entrel.DoctorID(doctorID),
			entrel.StatusEQ(entrel.StatusActive),
		).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list care relationships: %w", err)
	}
	if len(rels) == 0 {
		return []*repo.User{}, nil
	}

	ids := make([]uuid.UUID, 0, len(rels))
	for _, r := range rels {
		ids = append(ids, r.PatientID)
	}

	patients, err := s.db.User.Query().
		Where(entuser.IDIn(ids...), entuser.DeletedAtIsNil()).
		Order(repo.Asc(entuser.FieldFullName)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("load patients: %w", err)
	}
	return patients, nil
}

func (s *userService) Dashboard(ctx context.Context, doctorID uuid.UUID) (*DashboardStats, error) {
	patients, err := s.db.Relationship.Query().
		Where(
			entrel.DoctorID(doctorID),
			entrel.StatusEQ(entrel.StatusActive),
		).
		Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count patients: %w", err)
	}

	upcoming, err := s.db.Appointment.Query().
		Where(
			entappt.DoctorID(doctorID),
			entappt.StatusEQ(entappt.StatusUpcoming),
		).
		Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count upcoming appointments: %w", err)
	}

	recs, err := s.db.Recommendation.Query().
		Where(
			entrec.DoctorID(doctorID),
			entrec.StatusEQ(entrec.StatusActive),
		).
		Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count recommendations: %w", err)
	}

	return &DashboardStats{
		ActivePatients:        patients,
		UpcomingAppointments:  upcoming,
		ActiveRecommendations: recs,
	}, nil
}

// profileComplete checks the minimum fields a usable profile needs.
// Doctors additionally need a specialty before they join the
// assignment pool.
func profileComplete(u *repo.User) bool {
	if u.Role == nil || u.FullName == "" || u.Phone == nil || *u.Phone == "" {
		return false
	}
	if *u.Role == entuser.RoleDoctor {
		return u.Specialty != nil && *u.Specialty != ""
	}
	return u.DateOfBirth != nil && *u.DateOfBirth != ""
}

// normalizePhone validates the number and returns its E.164 form.
func normalizePhone(raw string) (string, error) {
	num, err := phonenumbers.Parse(strings.TrimSpace(raw), defaultPhoneRegion)
	if err != nil {
		return "", ErrInvalidPhone
	}
	if !phonenumbers.IsValidNumber(num) {
		return "", ErrInvalidPhone
	}
	return phonenumbers.Format(num, phonenumbers.E164), nil
}
