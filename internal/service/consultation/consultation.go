// Package consultation implements the booking engine. Booking writes
// the appointment first and the consultation second, so a calendar
// entry always exists for every clinical session.
package consultation

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/medimind/backend/internal/repo"
	entappt "github.com/medimind/backend/internal/repo/appointment"
	entcons "github.com/medimind/backend/internal/repo/consultation"
	entuser "github.com/medimind/backend/internal/repo/user"
	"github.com/medimind/backend/internal/service/recommendation"
	"github.com/medimind/backend/pkg/events"
	"github.com/medimind/backend/pkg/meeting"
)

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

type BookRequest struct {
	DoctorID         uuid.UUID
	Date             string // YYYY-MM-DD
	Time             string // HH:MM
	Type             string // video | in_person
	Reason           string
	RecommendationID *uuid.UUID
	ReportID         *uuid.UUID
}

// RoomInfo is what a participant needs to join a consultation.
type RoomInfo struct {
	RoomName      string
	RoomURL       string
	Status        string
	ReportSummary *string
}

// ---------------------------------------------------------------------------
// Service interface
// ---------------------------------------------------------------------------

type Service interface {
	// Book creates the appointment and consultation pair for a patient.
	Book(ctx context.Context, patientID uuid.UUID, req BookRequest) (*repo.Consultation, error)

	List(ctx context.Context, userID uuid.UUID, role string) ([]*repo.Consultation, error)
	UpdateStatus(ctx context.Context, userID, consultationID uuid.UUID, status string) (*repo.Consultation, error)
	Room(ctx context.Context, userID, consultationID uuid.UUID) (*RoomInfo, error)

	ListAppointments(ctx context.Context, userID uuid.UUID, role string) ([]*repo.Appointment, error)
	CancelAppointment(ctx context.Context, userID, appointmentID uuid.UUID) error
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type consultationService struct {
	db              *repo.Client
	recommendations recommendation.Service
	rooms           *meeting.Generator
	publisher       *events.Publisher
	logger          *slog.Logger
}

func New(
	db *repo.Client,
	recommendations recommendation.Service,
	rooms *meeting.Generator,
	publisher *events.Publisher,
	logger *slog.Logger,
) Service {
	return &consultationService{
		db:              db,
		recommendations: recommendations,
		rooms:           rooms,
		publisher:       publisher,
		logger:          logger,
	}
}

func (s *consultationService) Book(ctx context.Context, patientID uuid.UUID, req BookRequest) (*repo.Consultation, error) {
	// All validation happens before the first write so a rejected
	// booking leaves no partial records behind.
	if req.DoctorID == uuid.Nil || strings.TrimSpace(req.Date) == "" || strings.TrimSpace(req.Time) == "" {
		return nil, ErrMissingFields
	}

	doctor, err := s.db.User.Query().
		Where(
			entuser.ID(req.DoctorID),
			entuser.RoleEQ(entuser.RoleDoctor),
			entuser.DeletedAtIsNil(),
		).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrDoctorNotFound
		}
		return nil, fmt.Errorf("load doctor: %w", err)
	}

	patient, err := s.db.User.Get(ctx, patientID)
	if err != nil {
		return nil, fmt.Errorf("load patient: %w", err)
	}

	if req.RecommendationID != nil {
		rec, err := s.db.Recommendation.Get(ctx, *req.RecommendationID)
		switch {
		case err != nil && repo.IsNotFound(err):
			// A stale recommendation never blocks a booking; the
			// consultation just goes through unlinked.
			s.logger.Warn("booking with unknown recommendation, proceeding unlinked",
				slog.String("recommendation_id", req.RecommendationID.String()))
			req.RecommendationID = nil
		case err != nil:
			return nil, fmt.Errorf("load recommendation: %w", err)
		case rec.PatientID != patientID:
			return nil, ErrNotYourRecommendation
		}
	}

	apptType := entappt.TypeVideo
	if req.Type == string(entappt.TypeInPerson) {
		apptType = entappt.TypeInPerson
	}

	room := s.rooms.NewRoom()

	appt, err := s.db.Appointment.Create().
		SetPatientID(patientID).
		SetDoctorID(doctor.ID).
		SetPatientName(patient.FullName).
		SetDoctorName(doctor.FullName).
		SetDate(req.Date).
		SetTime(req.Time).
		SetType(apptType).
		SetReason(req.Reason).
		SetRoomName(room.Name).
		SetRoomURL(room.URL).
		SetNillableReportID(req.ReportID).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create appointment: %w", err)
	}

	cons, err := s.db.Consultation.Create().
		SetAppointmentID(appt.ID).
		SetPatientID(patientID).
		SetDoctorID(doctor.ID).
		SetPatientName(patient.FullName).
		SetDoctorName(doctor.FullName).
		SetDate(req.Date).
		SetTime(req.Time).
		SetReason(req.Reason).
		SetRoomName(room.Name).
		SetRoomURL(room.URL).
		SetNillableReportID(req.ReportID).
		SetNillableRecommendationID(req.RecommendationID).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create consultation: %w", err)
	}

	if err := s.db.Appointment.UpdateOneID(appt.ID).
		SetConsultationID(cons.ID).
		Exec(ctx); err != nil {
		return nil, fmt.Errorf("link appointment to consultation: %w", err)
	}

	// The recommendation transition is best effort. Losing the race to
	// a dismissal must not fail an already-written booking.
	if req.RecommendationID != nil {
		err := s.recommendations.MarkBooked(ctx, *req.RecommendationID, cons.ID)
		if err != nil && !errors.Is(err, recommendation.ErrNotActive) {
			s.logger.Warn("booking: marking recommendation booked failed",
				"recommendation_id", *req.RecommendationID,
				"consultation_id", cons.ID,
				"error", err,
			)
		}
	}

	if err := s.publisher.Publish(events.SubjectAppointmentCreated, map[string]any{
		"appointment_id":  appt.ID,
		"consultation_id": cons.ID,
		"patient_id":      patientID,
		"doctor_id":       doctor.ID,
		"date":            req.Date,
		"time":            req.Time,
	}); err != nil {
		s.logger.Warn("booking: publishing event failed", "error", err)
	}

	return cons, nil
}

func (s *consultationService) List(ctx context.Context, userID uuid.UUID, role string) ([]*repo.Consultation, error) {
	q := s.db.Consultation.Query()
	if role == string(entuser.RoleDoctor) {
		q = q.Where(entcons.DoctorID(userID))
	} else {
		q = q.Where(entcons.PatientID(userID))
	}

	cons, err := q.Order(repo.Desc(entcons.FieldCreatedAt)).All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list consultations: %w", err)
	}
	return cons, nil
}

func (s *consultationService) UpdateStatus(ctx context.Context, userID, consultationID uuid.UUID, status string) (*repo.Consultation, error) {
	target := entcons.Status(status)
	switch target {
	case entcons.StatusInProgress, entcons.StatusCompleted, entcons.StatusCancelled:
	default:
		return nil, ErrInvalidStatus
	}

	cons, err := s.loadForParty(ctx, userID, consultationID)
	if err != nil {
		return nil, err
	}

	cons, err = s.db.Consultation.UpdateOneID(cons.ID).
		SetStatus(target).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("update consultation status: %w", err)
	}

	// Terminal states propagate to the calendar entry.
	if target == entcons.StatusCompleted || target == entcons.StatusCancelled {
		apptStatus := entappt.StatusCompleted
		if target == entcons.StatusCancelled {
			apptStatus = entappt.StatusCancelled
		}
		if err := s.db.Appointment.UpdateOneID(cons.AppointmentID).
			SetStatus(apptStatus).
			Exec(ctx); err != nil {
			return nil, fmt.Errorf("propagate status to appointment: %w", err)
		}
	}

	return cons, nil
}

func (s *consultationService) Room(ctx context.Context, userID, consultationID uuid.UUID) (*RoomInfo, error) {
	cons, err := s.loadForParty(ctx, userID, consultationID)
	if err != nil {
		return nil, err
	}

	info := &RoomInfo{
		RoomName: cons.RoomName,
		RoomURL:  cons.RoomURL,
		Status:   string(cons.Status),
	}

	// The analysis summary of the triggering report is surfaced so the
	// doctor has the context in the room.
	if cons.ReportID != nil {
		report, err := s.db.Report.Get(ctx, *cons.ReportID)
		if err == nil && report.Summary != nil {
			info.ReportSummary = report.Summary
		}
	}

	return info, nil
}

func (s *consultationService) ListAppointments(ctx context.Context, userID uuid.UUID, role string) ([]*repo.Appointment, error) {
	q := s.db.Appointment.Query()
	if role == string(entuser.RoleDoctor) {
		q = q.Where(entappt.DoctorID(userID))
	} else {
		q = q.Where(entappt.PatientID(userID))
	}

	appts, err := q.Order(repo.Asc(entappt.FieldDate), repo.Asc(entappt.FieldTime)).All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list appointments: %w", err)
	}
	return appts, nil
}

func (s *consultationService) CancelAppointment(ctx context.Context, userID, appointmentID uuid.UUID) error {
	appt, err := s.db.Appointment.Get(ctx, appointmentID)
	if err != nil {
		if repo.IsNotFound(err) {
			return ErrAppointmentNotFound
		}
		return fmt.Errorf("load appointment: %w", err)
	}
	if appt.PatientID != userID && appt.DoctorID != userID {
		return ErrForbidden
	}

	if err := s.db.Appointment.UpdateOneID(appt.ID).
		SetStatus(entappt.StatusCancelled).
		Exec(ctx); err != nil {
		return fmt.Errorf("cancel appointment: %w", err)
	}

	if appt.ConsultationID != nil {
		if err := s.db.Consultation.UpdateOneID(*appt.ConsultationID).
			SetStatus(entcons.StatusCancelled).
			Exec(ctx); err != nil {
			return fmt.Errorf("propagate cancellation to consultation: %w", err)
		}
	}

	return nil
}

func (s *consultationService) loadForParty(ctx context.Context, userID, consultationID uuid.UUID) (*repo.Consultation, error) {
	cons, err := s.db.Consultation.Get(ctx, consultationID)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrConsultationNotFound
		}
		return nil, fmt.Errorf("load consultation: %w", err)
	}
	if cons.PatientID != userID && cons.DoctorID != userID {
		return nil, ErrForbidden
	}
	return cons, nil
}
