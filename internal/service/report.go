package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/vcscsvcscs/guttracker/internal/audit"
	"github.com/vcscsvcscs/guttracker/internal/azure"
	"github.com/vcscsvcscs/guttracker/internal/locale"
	"github.com/vcscsvcscs/guttracker/internal/pdf"
	"github.com/vcscsvcscs/guttracker/internal/report"
	"github.com/vcscsvcscs/guttracker/pkg/model"
)

var reportContentTypes = map[model.ReportFormat]string{
	model.ReportFormatText: "text/plain; charset=utf-8",
	model.ReportFormatPDF:  "application/pdf",
}

var reportExtensions = map[model.ReportFormat]string{
	model.ReportFormatText: "txt",
	model.ReportFormatPDF:  "pdf",
}

// ReportRequest describes a report to generate
type ReportRequest struct {
	Days   int
	Format model.ReportFormat
	// Languages selects the text report language, most preferred first
	Languages []string
}

// ReportFile is a stored report with its content
type ReportFile struct {
	Report      *model.Report
	ContentType string
	Data        []byte
}

// ReportService manages health report generation
type ReportService struct {
	stats      *StatsService
	meds       MedicationRepositoryInterface
	reports    ReportRepositoryInterface
	blobClient azure.BlobStorage
	pdfGen     *pdf.PDFGenerator
	catalog    *locale.Catalog
	auditor    AuditLogger
	logger     *zap.Logger
	now        func() time.Time
}

// NewReportService creates a new ReportService
func NewReportService(
	stats *StatsService,
	meds MedicationRepositoryInterface,
	reports ReportRepositoryInterface,
	blobClient azure.BlobStorage,
	pdfGen *pdf.PDFGenerator,
	catalog *locale.Catalog,
	auditor AuditLogger,
	logger *zap.Logger,
) *ReportService {
	return &ReportService{
		stats:      stats,
		meds:       meds,
		reports:    reports,
		blobClient: blobClient,
		pdfGen:     pdfGen,
		catalog:    catalog,
		auditor:    auditor,
		logger:     logger,
		now:        time.Now,
	}
}

// GenerateReport renders the period report, uploads it to blob storage and
// saves its metadata
func (s *ReportService) GenerateReport(ctx context.Context, userID string, req ReportRequest) (*model.Report, error) {
	if req.Format == "" {
		req.Format = model.ReportFormatText
	}
	if !req.Format.Valid() {
		return nil, validationError("unknown report format %q", req.Format)
	}

	s.logger.Info("generating health report",
		zap.String("user_id", userID),
		zap.Int("days", req.Days),
		zap.String("format", string(req.Format)),
	)

	result, err := s.stats.GetStats(ctx, userID, req.Days)
	if err != nil {
		return nil, err
	}

	reportID := uuid.New().String()
	generatedAt := s.now()

	data, err := s.render(ctx, userID, req, result, generatedAt)
	if err != nil {
		s.logger.Error("failed to render report",
			zap.Error(err),
			zap.String("report_id", reportID),
		)
		return nil, fmt.Errorf("failed to render report: %w", err)
	}

	filename := fmt.Sprintf("%s/%s_%s.%s", userID, reportID, generatedAt.Format("20060102"), reportExtensions[req.Format])
	blobPath, err := s.blobClient.UploadReport(ctx, filename, reportContentTypes[req.Format], data)
	if err != nil {
		s.logger.Error("failed to upload report to blob storage",
			zap.Error(err),
			zap.String("report_id", reportID),
		)
		return nil, fmt.Errorf("failed to upload report: %w", err)
	}

	rep := &model.Report{
		ID:             reportID,
		UserID:         userID,
		DateRangeStart: result.Start,
		DateRangeEnd:   result.End,
		Format:         req.Format,
		FilePath:       blobPath,
		GeneratedAt:    generatedAt,
	}

	if err := s.reports.Create(ctx, rep); err != nil {
		s.logger.Error("failed to save report record",
			zap.Error(err),
			zap.String("report_id", reportID),
		)
		return nil, fmt.Errorf("failed to save report record: %w", err)
	}

	auditAndInvalidate(ctx, s.auditor, nil, s.logger, audit.Entry{
		UserID:        userID,
		OperationType: audit.OperationExport,
		ResourceType:  audit.ResourceReport,
		ResourceID:    reportID,
		Details: map[string]any{
			"format": string(req.Format),
			"period": result.Period,
		},
	})

	s.logger.Info("health report generated successfully",
		zap.String("report_id", reportID),
		zap.String("user_id", userID),
		zap.String("blob_path", blobPath),
	)

	return rep, nil
}

func (s *ReportService) render(ctx context.Context, userID string, req ReportRequest, result *StatsResult, generatedAt time.Time) ([]byte, error) {
	if req.Format == model.ReportFormatText {
		tr := s.catalog.Translator(req.Languages...)
		return []byte(report.Text(tr, result.Analysis, result.Start, result.End)), nil
	}

	medications, err := s.meds.FindByUserID(ctx, userID, true)
	if err != nil {
		return nil, fmt.Errorf("failed to get medications: %w", err)
	}

	return s.pdfGen.Generate(&pdf.ReportData{
		UserID:      userID,
		Start:       result.Start,
		End:         result.End,
		Analysis:    result.Analysis,
		Medications: medications,
		GeneratedAt: generatedAt,
	})
}

// GetReport retrieves a stored report and its content
func (s *ReportService) GetReport(ctx context.Context, userID, reportID string) (*ReportFile, error) {
	if userID == "" || reportID == "" {
		return nil, validationError("user ID and report ID are required")
	}

	rep, err := s.reports.FindByID(ctx, userID, reportID)
	if err != nil {
		return nil, fmt.Errorf("failed to get report record: %w", err)
	}

	data, err := s.blobClient.DownloadReport(ctx, rep.FilePath)
	if err != nil {
		s.logger.Error("failed to download report from blob storage",
			zap.Error(err),
			zap.String("report_id", reportID),
			zap.String("blob_path", rep.FilePath),
		)
		return nil, fmt.Errorf("failed to download report: %w", err)
	}

	s.logger.Info("report retrieved successfully",
		zap.String("report_id", reportID),
		zap.Int("size_bytes", len(data)),
	)

	return &ReportFile{
		Report:      rep,
		ContentType: reportContentTypes[rep.Format],
		Data:        data,
	}, nil
}
