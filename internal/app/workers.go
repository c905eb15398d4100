package app

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/nats-io/nats.go"
	"go.uber.org/fx"

	"github.com/medimind/backend/internal/repo"
	entappt "github.com/medimind/backend/internal/repo/appointment"
	entreport "github.com/medimind/backend/internal/repo/report"
	"github.com/medimind/backend/internal/service/conversation"
	"github.com/medimind/backend/internal/service/security"
	"github.com/medimind/backend/pkg/events"
)

// WorkerModule registers all NATS event workers.
var WorkerModule = fx.Module("workers",
	fx.Invoke(RegisterWorkers),
)

type WorkerParams struct {
	fx.In

	Lc              fx.Lifecycle
	NC              *nats.Conn
	DB              *repo.Client
	ConversationSvc conversation.Service
	SecuritySvc     security.Service
}

func RegisterWorkers(p WorkerParams) {
	p.Lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			startAuditWorker(p.NC, p.SecuritySvc)
			startNotificationWorker(p.NC, p.DB, p.ConversationSvc)
			return nil
		},
		OnStop: func(ctx context.Context) error {
			// Drain handled by ProvideNatsClient
			return nil
		},
	})
}

// ---------------------------------------------------------------------------
// audit_worker
// ---------------------------------------------------------------------------

// startAuditWorker mirrors domain events into the activity trail.
func startAuditWorker(nc *nats.Conn, securitySvc security.Service) {
	_, err := nc.Subscribe(events.SubjectReportAnalyzed, func(msg *nats.Msg) {
		var ev struct {
			ReportID  uuid.UUID `json:"report_id"`
			PatientID uuid.UUID `json:"patient_id"`
			RiskLevel string    `json:"risk_level"`
		}
		if err := json.Unmarshal(msg.Data, &ev); err != nil {
			return
		}

		securitySvc.LogActivity(context.Background(), security.ActivityRequest{
			UserID: ev.PatientID,
			Type:   "report_analyzed",
			Action: "report analysis completed with " + ev.RiskLevel + " risk",
			Actor:  "system",
		})
	})
	if err != nil {
		slog.Error("audit_worker: subscribe report.analyzed failed", "err", err)
	}

	_, err = nc.Subscribe(events.SubjectAppointmentCreated, func(msg *nats.Msg) {
		var ev struct {
			AppointmentID uuid.UUID `json:"appointment_id"`
			PatientID     uuid.UUID `json:"patient_id"`
			Date          string    `json:"date"`
			Time          string    `json:"time"`
		}
		if err := json.Unmarshal(msg.Data, &ev); err != nil {
			return
		}

		securitySvc.LogActivity(context.Background(), security.ActivityRequest{
			UserID: ev.PatientID,
			Type:   "appointment_created",
			Action: "booked a consultation for " + ev.Date + " " + ev.Time,
			Actor:  "system",
		})
	})
	if err != nil {
		slog.Error("audit_worker: subscribe appointment.created failed", "err", err)
	}

	slog.Info("audit_worker: started")
}

// ---------------------------------------------------------------------------
// notification_worker
// ---------------------------------------------------------------------------

// startNotificationWorker pushes system messages into the patient's
// care thread when notable events happen.
func startNotificationWorker(nc *nats.Conn, db *repo.Client, conversationSvc conversation.Service) {
	_, err := nc.Subscribe(events.SubjectReportAnalyzed, func(msg *nats.Msg) {
		var ev struct {
			ReportID  uuid.UUID `json:"report_id"`
			PatientID uuid.UUID `json:"patient_id"`
			RiskLevel string    `json:"risk_level"`
		}
		if err := json.Unmarshal(msg.Data, &ev); err != nil {
			return
		}
		if ev.RiskLevel != string(entreport.RiskLevelHigh) {
			return
		}

		ctx := context.Background()

		report, err := db.Report.Get(ctx, ev.ReportID)
		if err != nil {
			slog.Warn("notification_worker: report not found", "id", ev.ReportID, "err", err)
			return
		}

		// High-risk analyses notify the doctor through the existing
		// care thread so they see it without opening the dashboard.
		convs, err := conversationSvc.List(ctx, ev.PatientID)
		if err != nil || len(convs) == 0 {
			return
		}
		note := fmt.Sprintf("Report %q was analyzed with high risk. Please review it promptly.", report.FileName)
		if _, err := conversationSvc.SystemMessage(ctx, convs[0].ID, note); err != nil {
			slog.Warn("notification_worker: posting system message failed",
				"conversation_id", convs[0].ID,
				"err", err,
			)
			return
		}
		slog.Info("notification_worker: high risk report analyzed",
			"report_id", report.ID,
			"patient_id", ev.PatientID,
		)
	})
	if err != nil {
		slog.Error("notification_worker: subscribe report.analyzed failed", "err", err)
	}

	_, err = nc.Subscribe(events.SubjectAppointmentCreated, func(msg *nats.Msg) {
		var ev struct {
			AppointmentID uuid.UUID `json:"appointment_id"`
		}
		if err := json.Unmarshal(msg.Data, &ev); err != nil {
			return
		}

		ctx := context.Background()

		appt, err := db.Appointment.Query().
			Where(entappt.ID(ev.AppointmentID)).
			Only(ctx)
		if err != nil {
			slog.Warn("notification_worker: appointment not found", "id", ev.AppointmentID, "err", err)
			return
		}

		slog.Info("notification_worker: appointment created",
			"appointment_id", appt.ID,
			"patient_id", appt.PatientID,
			"doctor_id", appt.DoctorID,
		)
	})
	if err != nil {
		slog.Error("notification_worker: subscribe appointment.created failed", "err", err)
	}

	slog.Info("notification_worker: started")
}
