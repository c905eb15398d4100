// Package report manages medical document uploads and the analysis
// pipeline that turns them into risk assessments.
package report

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/medimind/backend/internal/repo"
	entreport "github.com/medimind/backend/internal/repo/report"
	"github.com/medimind/backend/internal/service/recommendation"
	"github.com/medimind/backend/pkg/ai"
	"github.com/medimind/backend/pkg/events"
	"github.com/medimind/backend/pkg/s3"
)

// maxExtractBytes bounds how much document text is sent to the model.
const maxExtractBytes = 256 << 10

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

type UploadIntentRequest struct {
	FileName    string
	ContentType string
}

// UploadIntent is a pending report plus the presigned URL the client
// uploads the file bytes to.
type UploadIntent struct {
	ReportID  uuid.UUID
	UploadURL string
	Key       string
}

// ---------------------------------------------------------------------------
// Service interface
// ---------------------------------------------------------------------------

type Service interface {
	// CreateUploadIntent registers a pending report and returns a
	// presigned upload URL. File bytes never pass through the API.
	CreateUploadIntent(ctx context.Context, patientID uuid.UUID, req UploadIntentRequest) (*UploadIntent, error)

	// Process kicks off analysis of an uploaded report. The pipeline
	// runs in the background; callers poll the report status.
	Process(ctx context.Context, patientID, reportID uuid.UUID) (*repo.Report, error)

	List(ctx context.Context, patientID uuid.UUID) ([]*repo.Report, error)
	Get(ctx context.Context, patientID, reportID uuid.UUID) (*repo.Report, error)
	DownloadURL(ctx context.Context, patientID, reportID uuid.UUID) (string, error)
	Delete(ctx context.Context, patientID, reportID uuid.UUID) error
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type reportService struct {
	db              *repo.Client
	storage         *s3.Client
	analyzer        ai.Provider
	recommendations recommendation.Service
	publisher       *events.Publisher
	logger          *slog.Logger
}

func New(
	db *repo.Client,
	storage *s3.Client,
	analyzer ai.Provider,
	recommendations recommendation.Service,
	publisher *events.Publisher,
	logger *slog.Logger,
) Service {
	return &reportService{
		db:              db,
		storage:         storage,
		analyzer:        analyzer,
		recommendations: recommendations,
		publisher:       publisher,
		logger:          logger,
	}
}

func (s *reportService) CreateUploadIntent(ctx context.Context, patientID uuid.UUID, req UploadIntentRequest) (*UploadIntent, error) {
	fileName := strings.TrimSpace(req.FileName)
	if fileName == "" {
		return nil, ErrMissingFileName
	}
	contentType := req.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	key := fmt.Sprintf("reports/%s/%s%s", patientID, uuid.New(), filepath.Ext(fileName))

	rep, err := s.db.Report.Create().
		SetUserID(patientID).
		SetFileName(fileName).
		SetFilePath(key).
		SetContentType(contentType).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create report record: %w", err)
	}

	uploadURL, err := s.storage.PresignUpload(ctx, key, contentType)
	if err != nil {
		// A pending record without an upload URL is useless, remove it.
		if delErr := s.db.Report.DeleteOneID(rep.ID).Exec(ctx); delErr != nil {
			s.logger.Warn("report: cleaning up orphaned record failed",
				"report_id", rep.ID,
				"error", delErr,
			)
		}
		return nil, fmt.Errorf("presign upload: %w", err)
	}

	return &UploadIntent{
		ReportID:  rep.ID,
		UploadURL: uploadURL,
		Key:       key,
	}, nil
}

func (s *reportService) Process(ctx context.Context, patientID, reportID uuid.UUID) (*repo.Report, error) {
	rep, err := s.loadOwned(ctx, patientID, reportID)
	if err != nil {
		return nil, err
	}
	if rep.Status == entreport.StatusProcessing {
		return nil, ErrAlreadyRunning
	}

	rep, err = s.db.Report.UpdateOneID(rep.ID).
		SetStatus(entreport.StatusProcessing).
		ClearErrorDetail().
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("mark report processing: %w", err)
	}

	// Analysis runs detached from the request lifetime.
	go s.runPipeline(context.WithoutCancel(ctx), rep)

	return rep, nil
}

// runPipeline downloads the document, analyzes it and records the
// outcome. Failures land on the report as status error, never as a
// crashed request.
func (s *reportService) runPipeline(ctx context.Context, rep *repo.Report) {
	text, err := s.extractText(ctx, rep)
	if err != nil {
		s.failReport(ctx, rep.ID, fmt.Sprintf("extract text: %v", err))
		return
	}

	analysis, err := s.analyzer.Analyze(ctx, text)
	if err != nil {
		s.failReport(ctx, rep.ID, fmt.Sprintf("analyze document: %v", err))
		return
	}

	updated, err := s.db.Report.UpdateOneID(rep.ID).
		SetStatus(entreport.StatusCompleted).
		SetContent(text).
		SetRiskLevel(entreport.RiskLevel(analysis.RiskLevel)).
		SetHealthScore(analysis.HealthScore).
		SetSummary(analysis.Summary).
		SetProcessedAt(time.Now()).
		Save(ctx)
	if err != nil {
		s.logger.Error("report: recording analysis failed", "report_id", rep.ID, "error", err)
		return
	}

	if _, err := s.recommendations.EvaluateReport(ctx, updated); err != nil {
		s.logger.Warn("report: recommendation evaluation failed",
			"report_id", rep.ID,
			"error", err,
		)
	}

	if err := s.publisher.Publish(events.SubjectReportAnalyzed, map[string]any{
		"report_id":  updated.ID,
		"patient_id": updated.UserID,
		"risk_level": analysis.RiskLevel,
	}); err != nil {
		s.logger.Warn("report: publishing event failed", "error", err)
	}
}

func (s *reportService) extractText(ctx context.Context, rep *repo.Report) (string, error) {
	body, err := s.storage.Download(ctx, rep.FilePath)
	if err != nil {
		return "", err
	}
	defer body.Close()

	raw, err := io.ReadAll(io.LimitReader(body, maxExtractBytes))
	if err != nil {
		return "", fmt.Errorf("read document: %w", err)
	}
	if len(raw) == 0 {
		return "", fmt.Errorf("document %q is empty", rep.FileName)
	}
	return string(raw), nil
}

func (s *reportService) failReport(ctx context.Context, reportID uuid.UUID, detail string) {
	err := s.db.Report.UpdateOneID(reportID).
		SetStatus(entreport.StatusError).
		SetErrorDetail(detail).
		SetProcessedAt(time.Now()).
		Exec(ctx)
	if err != nil {
		s.logger.Error("report: recording failure failed", "report_id", reportID, "error", err)
	}
}

func (s *reportService) List(ctx context.Context, patientID uuid.UUID) ([]*repo.Report, error) {
	reports, err := s.db.Report.Query().
		Where(entreport.UserID(patientID)).
		Order(repo.Desc(entreport.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list reports: %w", err)
	}
	return reports, nil
}

func (s *reportService) Get(ctx context.Context, patientID, reportID uuid.UUID) (*repo.Report, error) {
	return s.loadOwned(ctx, patientID, reportID)
}

func (s *reportService) DownloadURL(ctx context.Context, patientID, reportID uuid.UUID) (string, error) {
	rep, err := s.loadOwned(ctx, patientID, reportID)
	if err != nil {
		return "", err
	}
	return s.storage.PresignDownload(ctx, rep.FilePath)
}

func (s *reportService) Delete(ctx context.Context, patientID, reportID uuid.UUID) error {
	rep, err := s.loadOwned(ctx, patientID, reportID)
	if err != nil {
		return err
	}

	if err := s.db.Report.DeleteOneID(rep.ID).Exec(ctx); err != nil {
		return fmt.Errorf("delete report: %w", err)
	}

	// Storage cleanup is best effort, the record is already gone.
	if err := s.storage.Delete(ctx, rep.FilePath); err != nil {
		s.logger.Warn("report: deleting stored file failed",
			"report_id", rep.ID,
			"key", rep.FilePath,
			"error", err,
		)
	}

	return nil
}

func (s *reportService) loadOwned(ctx context.Context, patientID, reportID uuid.UUID) (*repo.Report, error) {
	rep, err := s.db.Report.Get(ctx, reportID)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrReportNotFound
		}
		return nil, fmt.Errorf("load report: %w", err)
	}
	if rep.UserID != patientID {
		return nil, ErrNotYourReport
	}
	return rep, nil
}
