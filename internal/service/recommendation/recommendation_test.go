package recommendation

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"github.com/medimind/backend/internal/repo"
	"github.com/medimind/backend/internal/repo/enttest"
	entrec "github.com/medimind/backend/internal/repo/recommendation"
	entreport "github.com/medimind/backend/internal/repo/report"
	entuser "github.com/medimind/backend/internal/repo/user"
	"github.com/medimind/backend/pkg/ai"
	"github.com/medimind/backend/pkg/logs"
)

func newStoreService(t *testing.T) (Service, *repo.Client) {
	t.Helper()
	client := enttest.Open(t, "sqlite3",
		fmt.Sprintf("file:%s?mode=memory&cache=shared&_fk=1", t.Name()))
	t.Cleanup(func() { client.Close() })
	return New(client, logs.Default()), client
}

func seedDoctor(t *testing.T, client *repo.Client, name string) *repo.User {
	t.Helper()
	d, err := client.User.Create().
		SetEmail(name + "@example.com").
		SetFullName(name).
		SetRole(entuser.RoleDoctor).
		SetProfileComplete(true).
		Save(context.Background())
	if err != nil {
		t.Fatalf("seed doctor: %v", err)
	}
	return d
}

func seedPatient(t *testing.T, client *repo.Client, name string, doctor *repo.User) *repo.User {
	t.Helper()
	create := client.User.Create().
		SetEmail(name + "@example.com").
		SetFullName(name).
		SetRole(entuser.RolePatient).
		SetProfileComplete(true)
	if doctor != nil {
		create.SetAssignedDoctorID(doctor.ID).
			SetAssignedDoctorName(doctor.FullName).
			SetAssignedAt(time.Now())
	}
	p, err := create.Save(context.Background())
	if err != nil {
		t.Fatalf("seed patient: %v", err)
	}
	return p
}

func seedCompletedReport(t *testing.T, client *repo.Client, patientID uuid.UUID, risk entreport.RiskLevel) *repo.Report {
	t.Helper()
	r, err := client.Report.Create().
		SetUserID(patientID).
		SetFileName("bloodwork.pdf").
		SetFilePath("reports/bloodwork.pdf").
		SetStatus(entreport.StatusCompleted).
		SetRiskLevel(risk).
		Save(context.Background())
	if err != nil {
		t.Fatalf("seed report: %v", err)
	}
	return r
}

func reportWithSummary(summary string) *repo.Report {
	r := &repo.Report{FileName: "bloodwork.pdf"}
	if summary != "" {
		r.Summary = &summary
	}
	return r
}

func TestClassifyReason(t *testing.T) {
	tests := []struct {
		name          string
		risk          ai.Risk
		priorElevated int
		wantReason    entrec.ReasonType
		wantSummary   string
	}{
		{
			name:          "medium risk first report",
			risk:          ai.RiskMedium,
			priorElevated: 0,
			wantReason:    entrec.ReasonTypePostReport,
			wantSummary:   "Cholesterol slightly elevated.",
		},
		{
			name:          "high risk escalates",
			risk:          ai.RiskHigh,
			priorElevated: 0,
			wantReason:    entrec.ReasonTypeAiEscalation,
			wantSummary:   "Cholesterol slightly elevated.",
		},
		{
			name:          "one prior elevated is not enough for follow-up",
			risk:          ai.RiskMedium,
			priorElevated: 1,
			wantReason:    entrec.ReasonTypePostReport,
			wantSummary:   "Cholesterol slightly elevated.",
		},
		{
			name:          "two prior elevated becomes follow-up",
			risk:          ai.RiskMedium,
			priorElevated: 2,
			wantReason:    entrec.ReasonTypeFollowUp,
			wantSummary:   followUpSummary,
		},
		{
			name:          "follow-up overrides high risk escalation",
			risk:          ai.RiskHigh,
			priorElevated: 3,
			wantReason:    entrec.ReasonTypeFollowUp,
			wantSummary:   followUpSummary,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reason, summary := classifyReason(tt.risk, tt.priorElevated, reportWithSummary("Cholesterol slightly elevated."))
			if reason != tt.wantReason {
				t.Errorf("classifyReason() reason = %v, want %v", reason, tt.wantReason)
			}
			if summary != tt.wantSummary {
				t.Errorf("classifyReason() summary = %q, want %q", summary, tt.wantSummary)
			}
		})
	}
}

func TestClassifyReasonFallbackSummary(t *testing.T) {
	_, summary := classifyReason(ai.RiskMedium, 0, reportWithSummary(""))
	want := `Report "bloodwork.pdf" was analyzed with medium risk.`
	if summary != want {
		t.Errorf("classifyReason() summary = %q, want %q", summary, want)
	}
}

func TestSecondOpinionTargetsRequestedDoctor(t *testing.T) {
	svc, client := newStoreService(t)
	ctx := context.Background()

	assigned := seedDoctor(t, client, "dr-assigned")
	target := seedDoctor(t, client, "dr-target")
	patient := seedPatient(t, client, "patient", assigned)
	report := seedCompletedReport(t, client, patient.ID, entreport.RiskLevelHigh)

	rec, err := svc.SecondOpinion(ctx, patient.ID, report.ID, target.ID)
	if err != nil {
		t.Fatalf("SecondOpinion() error = %v", err)
	}
	if rec.DoctorID != target.ID {
		t.Errorf("doctor_id = %v, want requested doctor %v", rec.DoctorID, target.ID)
	}
	if rec.DoctorName != target.FullName {
		t.Errorf("doctor_name = %q, want %q", rec.DoctorName, target.FullName)
	}
	if rec.ReasonType != entrec.ReasonTypeSecondOpinion {
		t.Errorf("reason_type = %v, want second_opinion", rec.ReasonType)
	}
	if rec.Urgency != entrec.UrgencyUrgent {
		t.Errorf("urgency = %v, want urgent for a high-risk report", rec.Urgency)
	}
}

func TestSecondOpinionFallsBackToAssignedDoctor(t *testing.T) {
	svc, client := newStoreService(t)
	ctx := context.Background()

	assigned := seedDoctor(t, client, "dr-assigned")
	patient := seedPatient(t, client, "patient", assigned)
	report := seedCompletedReport(t, client, patient.ID, entreport.RiskLevelMedium)

	rec, err := svc.SecondOpinion(ctx, patient.ID, report.ID, uuid.Nil)
	if err != nil {
		t.Fatalf("SecondOpinion() error = %v", err)
	}
	if rec.DoctorID != assigned.ID {
		t.Errorf("doctor_id = %v, want assigned doctor %v", rec.DoctorID, assigned.ID)
	}
	if rec.Urgency != entrec.UrgencyFollowUp {
		t.Errorf("urgency = %v, want follow_up for a medium-risk report", rec.Urgency)
	}
}

func TestSecondOpinionRejectsBadTargets(t *testing.T) {
	svc, client := newStoreService(t)
	ctx := context.Background()

	assigned := seedDoctor(t, client, "dr-assigned")
	patient := seedPatient(t, client, "patient", assigned)
	otherPatient := seedPatient(t, client, "bystander", nil)
	report := seedCompletedReport(t, client, patient.ID, entreport.RiskLevelMedium)

	if _, err := svc.SecondOpinion(ctx, patient.ID, report.ID, otherPatient.ID); !errors.Is(err, ErrNotADoctor) {
		t.Errorf("SecondOpinion(patient target) error = %v, want ErrNotADoctor", err)
	}

	unassigned := seedPatient(t, client, "unassigned", nil)
	orphanReport := seedCompletedReport(t, client, unassigned.ID, entreport.RiskLevelMedium)
	if _, err := svc.SecondOpinion(ctx, unassigned.ID, orphanReport.ID, uuid.Nil); !errors.Is(err, ErrNoAssignedDoctor) {
		t.Errorf("SecondOpinion(no target, unassigned) error = %v, want ErrNoAssignedDoctor", err)
	}
}

func TestManualRecommendRiskLevel(t *testing.T) {
	svc, client := newStoreService(t)
	ctx := context.Background()

	doctor := seedDoctor(t, client, "dr-care")
	patient := seedPatient(t, client, "patient", doctor)
	if _, err := client.Relationship.Create().
		SetDoctorID(doctor.ID).
		SetPatientID(patient.ID).
		SetDoctorName(doctor.FullName).
		SetPatientName(patient.FullName).
		Save(ctx); err != nil {
		t.Fatalf("seed relationship: %v", err)
	}

	tests := []struct {
		name        string
		riskLevel   string
		wantRisk    entrec.RiskLevel
		wantUrgency entrec.Urgency
	}{
		{name: "defaults to medium", riskLevel: "", wantRisk: entrec.RiskLevelMedium, wantUrgency: entrec.UrgencyFollowUp},
		{name: "high is urgent", riskLevel: "high", wantRisk: entrec.RiskLevelHigh, wantUrgency: entrec.UrgencyUrgent},
		{name: "low is normal", riskLevel: "low", wantRisk: entrec.RiskLevelLow, wantUrgency: entrec.UrgencyNormal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, err := svc.ManualRecommend(ctx, doctor.ID, ManualRequest{
				PatientID: patient.ID,
				Summary:   "please come in",
				RiskLevel: tt.riskLevel,
			})
			if err != nil {
				t.Fatalf("ManualRecommend() error = %v", err)
			}
			if rec.RiskLevel == nil || *rec.RiskLevel != tt.wantRisk {
				t.Errorf("risk_level = %v, want %v", rec.RiskLevel, tt.wantRisk)
			}
			if rec.Urgency != tt.wantUrgency {
				t.Errorf("urgency = %v, want %v", rec.Urgency, tt.wantUrgency)
			}
		})
	}

	if _, err := svc.ManualRecommend(ctx, doctor.ID, ManualRequest{
		PatientID: patient.ID,
		RiskLevel: "extreme",
	}); !errors.Is(err, ai.ErrUnknownRisk) {
		t.Errorf("ManualRecommend(unknown risk) error = %v, want ErrUnknownRisk", err)
	}
}

func TestDeriveUrgency(t *testing.T) {
	tests := []struct {
		risk ai.Risk
		want entrec.Urgency
	}{
		{risk: ai.RiskHigh, want: entrec.UrgencyUrgent},
		{risk: ai.RiskMedium, want: entrec.UrgencyFollowUp},
		{risk: ai.RiskLow, want: entrec.UrgencyNormal},
	}

	for _, tt := range tests {
		if got := deriveUrgency(tt.risk); got != tt.want {
			t.Errorf("deriveUrgency(%v) = %v, want %v", tt.risk, got, tt.want)
		}
	}
}
