// Package recommendation turns report analysis results into actionable
// consultation recommendations. Low-risk reports never generate one;
// elevated-risk reports are classified by reason and urgency.
package recommendation

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/medimind/backend/internal/repo"
	entrec "github.com/medimind/backend/internal/repo/recommendation"
	entrel "github.com/medimind/backend/internal/repo/relationship"
	entreport "github.com/medimind/backend/internal/repo/report"
	entuser "github.com/medimind/backend/internal/repo/user"
	"github.com/medimind/backend/pkg/ai"
)

// followUpLookback is how far back elevated reports count toward a
// follow-up classification.
const followUpLookback = 30 * 24 * time.Hour

// followUpThreshold is how many other elevated reports in the lookback
// window trigger a follow-up instead of a fresh post-report recommendation.
const followUpThreshold = 2

const followUpSummary = "Multiple reports with elevated risk in the past 30 days. Follow-up recommended."

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

type ManualRequest struct {
	PatientID uuid.UUID
	Summary   string
	RiskLevel string // defaults to medium
}

type PrescriptionRequest struct {
	PatientID uuid.UUID
	DoctorID  uuid.UUID
	Title     string
}

// ---------------------------------------------------------------------------
// Service interface
// ---------------------------------------------------------------------------

type Service interface {
	// EvaluateReport runs the automatic engine against a completed
	// report. It returns (nil, nil) when the report does not warrant
	// a recommendation.
	EvaluateReport(ctx context.Context, report *repo.Report) (*repo.Recommendation, error)

	// ManualRecommend lets a doctor recommend a consultation to one of
	// their own patients.
	ManualRecommend(ctx context.Context, doctorID uuid.UUID, req ManualRequest) (*repo.Recommendation, error)

	// SecondOpinion lets a patient ask a doctor of their choice to
	// review one of their reports. A nil target falls back to the
	// assigned doctor.
	SecondOpinion(ctx context.Context, patientID, reportID, targetDoctorID uuid.UUID) (*repo.Recommendation, error)

	// PrescriptionRecommend creates the follow-up recommendation issued
	// alongside a new prescription.
	PrescriptionRecommend(ctx context.Context, req PrescriptionRequest) (*repo.Recommendation, error)

	ListActive(ctx context.Context, userID uuid.UUID, role string) ([]*repo.Recommendation, error)
	Dismiss(ctx context.Context, userID, recommendationID uuid.UUID) error

	// MarkBooked transitions an active recommendation to booked,
	// linking it to the consultation that satisfied it.
	MarkBooked(ctx context.Context, recommendationID, consultationID uuid.UUID) error
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type recommendationService struct {
	db     *repo.Client
	logger *slog.Logger
}

func New(db *repo.Client, logger *slog.Logger) Service {
	return &recommendationService{db: db, logger: logger}
}

func (s *recommendationService) EvaluateReport(ctx context.Context, report *repo.Report) (*repo.Recommendation, error) {
	if report.RiskLevel == nil {
		return nil, nil
	}
	risk, err := ai.ParseRisk(string(*report.RiskLevel))
	if err != nil {
		return nil, fmt.Errorf("evaluate report: %w", err)
	}
	if !risk.Elevated() {
		return nil, nil
	}

	patient, err := s.db.User.Get(ctx, report.UserID)
	if err != nil {
		return nil, fmt.Errorf("load report owner: %w", err)
	}
	// Unassigned patients are skipped silently. The recommendation is
	// recreated naturally once assignment has happened and a new report
	// comes in.
	if patient.AssignedDoctorID == nil {
		s.logger.Debug("recommendation: skipping unassigned patient", "patient_id", patient.ID)
		return nil, nil
	}

	// Re-running the pipeline for the same report must not pile up
	// duplicate recommendations.
	existing, err := s.db.Recommendation.Query().
		Where(
			entrec.ReportID(report.ID),
			entrec.StatusEQ(entrec.StatusActive),
		).
		First(ctx)
	if err == nil {
		return existing, nil
	}
	if !repo.IsNotFound(err) {
		return nil, fmt.Errorf("check existing recommendation: %w", err)
	}

	priorElevated, err := s.db.Report.Query().
		Where(
			entreport.UserID(report.UserID),
			entreport.IDNEQ(report.ID),
			entreport.StatusEQ(entreport.StatusCompleted),
			entreport.RiskLevelIn(entreport.RiskLevelMedium, entreport.RiskLevelHigh),
			entreport.CreatedAtGTE(time.Now().Add(-followUpLookback)),
		).
		Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count prior elevated reports: %w", err)
	}

	reason, summary := classifyReason(risk, priorElevated, report)

	create := s.db.Recommendation.Create().
		SetPatientID(patient.ID).
		SetDoctorID(*patient.AssignedDoctorID).
		SetReportID(report.ID).
		SetReasonType(reason).
		SetRiskLevel(entrec.RiskLevel(risk)).
		SetUrgency(deriveUrgency(risk)).
		SetSummary(summary).
		SetPatientName(patient.FullName)
	if patient.AssignedDoctorName != nil {
		create.SetDoctorName(*patient.AssignedDoctorName)
	}

	rec, err := create.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create recommendation: %w", err)
	}
	return rec, nil
}

func (s *recommendationService) ManualRecommend(ctx context.Context, doctorID uuid.UUID, req ManualRequest) (*repo.Recommendation, error) {
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

	patient, err := s.db.User.Get(ctx, req.PatientID)
	if err != nil {
		return nil, fmt.Errorf("load patient: %w", err)
	}
	doctor, err := s.db.User.Get(ctx, doctorID)
	if err != nil {
		return nil, fmt.Errorf("load doctor: %w", err)
	}

	risk := ai.RiskMedium
	if req.RiskLevel != "" {
		risk, err = ai.ParseRisk(req.RiskLevel)
		if err != nil {
			return nil, err
		}
	}

	rec, err := s.db.Recommendation.Create().
		SetPatientID(req.PatientID).
		SetDoctorID(doctorID).
		SetReasonType(entrec.ReasonTypeFollowUp).
		SetRiskLevel(entrec.RiskLevel(risk)).
		SetUrgency(deriveUrgency(risk)).
		SetSummary(req.Summary).
		SetPatientName(patient.FullName).
		SetDoctorName(doctor.FullName).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create recommendation: %w", err)
	}
	return rec, nil
}

func (s *recommendationService) SecondOpinion(ctx context.Context, patientID, reportID, targetDoctorID uuid.UUID) (*repo.Recommendation, error) {
	report, err := s.db.Report.Get(ctx, reportID)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrNotYourReport
		}
		return nil, fmt.Errorf("load report: %w", err)
	}
	if report.UserID != patientID {
		return nil, ErrNotYourReport
	}

	patient, err := s.db.User.Get(ctx, patientID)
	if err != nil {
		return nil, fmt.Errorf("load patient: %w", err)
	}

	// The second opinion goes to the doctor the patient picked. Only
	// when no target was given does it land on the assigned doctor.
	doctorID := targetDoctorID
	if doctorID == uuid.Nil {
		if patient.AssignedDoctorID == nil {
			return nil, ErrNoAssignedDoctor
		}
		doctorID = *patient.AssignedDoctorID
	}

	doctor, err := s.db.User.Query().
		Where(
			entuser.ID(doctorID),
			entuser.RoleEQ(entuser.RoleDoctor),
			entuser.DeletedAtIsNil(),
		).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrNotADoctor
		}
		return nil, fmt.Errorf("load target doctor: %w", err)
	}

	urgency := entrec.UrgencyNormal
	if report.RiskLevel != nil {
		if risk, err := ai.ParseRisk(string(*report.RiskLevel)); err == nil {
			urgency = deriveUrgency(risk)
		}
	}

	summary := fmt.Sprintf("Second opinion requested on report %q.", report.FileName)

	create := s.db.Recommendation.Create().
		SetPatientID(patientID).
		SetDoctorID(doctor.ID).
		SetReportID(report.ID).
		SetReasonType(entrec.ReasonTypeSecondOpinion).
		SetUrgency(urgency).
		SetSummary(summary).
		SetPatientName(patient.FullName).
		SetDoctorName(doctor.FullName)
	if report.RiskLevel != nil {
		create.SetRiskLevel(entrec.RiskLevel(*report.RiskLevel))
	}

	rec, err := create.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create recommendation: %w", err)
	}
	return rec, nil
}

func (s *recommendationService) PrescriptionRecommend(ctx context.Context, req PrescriptionRequest) (*repo.Recommendation, error) {
	patient, err := s.db.User.Get(ctx, req.PatientID)
	if err != nil {
		return nil, fmt.Errorf("load patient: %w", err)
	}
	doctor, err := s.db.User.Get(ctx, req.DoctorID)
	if err != nil {
		return nil, fmt.Errorf("load doctor: %w", err)
	}

	summary := fmt.Sprintf("Follow-up on prescription %q.", req.Title)

	rec, err := s.db.Recommendation.Create().
		SetPatientID(req.PatientID).
		SetDoctorID(req.DoctorID).
		SetReasonType(entrec.ReasonTypePrescription).
		SetUrgency(entrec.UrgencyFollowUp).
		SetSummary(summary).
		SetPatientName(patient.FullName).
		SetDoctorName(doctor.FullName).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create recommendation: %w", err)
	}
	return rec, nil
}

func (s *recommendationService) ListActive(ctx context.Context, userID uuid.UUID, role string) ([]*repo.Recommendation, error) {
	q := s.db.Recommendation.Query().
		Where(entrec.StatusEQ(entrec.StatusActive))
	if role == string(entuser.RoleDoctor) {
		q = q.Where(entrec.DoctorID(userID))
	} else {
		q = q.Where(entrec.PatientID(userID))
	}

	recs, err := q.Order(repo.Desc(entrec.FieldCreatedAt)).All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list recommendations: %w", err)
	}
	return recs, nil
}

func (s *recommendationService) Dismiss(ctx context.Context, userID, recommendationID uuid.UUID) error {
	rec, err := s.db.Recommendation.Get(ctx, recommendationID)
	if err != nil {
		if repo.IsNotFound(err) {
			return ErrRecommendationNotFound
		}
		return fmt.Errorf("load recommendation: %w", err)
	}
	if rec.PatientID != userID && rec.DoctorID != userID {
		return ErrForbidden
	}

	// Conditional transition: only an active recommendation can be
	// dismissed, and a concurrent booking wins.
	n, err := s.db.Recommendation.Update().
		Where(
			entrec.ID(recommendationID),
			entrec.StatusEQ(entrec.StatusActive),
		).
		SetStatus(entrec.StatusDismissed).
		SetDismissedAt(time.Now()).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("dismiss recommendation: %w", err)
	}
	if n == 0 {
		return ErrNotActive
	}
	return nil
}

func (s *recommendationService) MarkBooked(ctx context.Context, recommendationID, consultationID uuid.UUID) error {
	n, err := s.db.Recommendation.Update().
		Where(
			entrec.ID(recommendationID),
			entrec.StatusEQ(entrec.StatusActive),
		).
		SetStatus(entrec.StatusBooked).
		SetConsultationID(consultationID).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("mark recommendation booked: %w", err)
	}
	if n == 0 {
		return ErrNotActive
	}
	return nil
}

// ---------------------------------------------------------------------------
// Classification
// ---------------------------------------------------------------------------

// classifyReason picks the reason and summary for an automatic
// recommendation. A pattern of elevated reports inside the lookback
// window becomes a follow-up; otherwise high risk is treated as a model
// escalation and medium risk as a routine post-report recommendation.
func classifyReason(risk ai.Risk, priorElevated int, report *repo.Report) (entrec.ReasonType, string) {
	if priorElevated >= followUpThreshold {
		return entrec.ReasonTypeFollowUp, followUpSummary
	}

	summary := fmt.Sprintf("Report %q was analyzed with %s risk.", report.FileName, risk)
	if report.Summary != nil && *report.Summary != "" {
		summary = *report.Summary
	}

	if risk == ai.RiskHigh {
		return entrec.ReasonTypeAiEscalation, summary
	}
	return entrec.ReasonTypePostReport, summary
}

// deriveUrgency maps analysis risk onto booking urgency.
func deriveUrgency(risk ai.Risk) entrec.Urgency {
	switch risk {
	case ai.RiskHigh:
		return entrec.UrgencyUrgent
	case ai.RiskLow:
		return entrec.UrgencyNormal
	default:
		return entrec.UrgencyFollowUp
	}
}
