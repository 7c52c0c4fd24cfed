package handler

import (
	"fmt"
	"net/http"
	"path"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/oapi-codegen/runtime/types"
	"go.uber.org/zap"

	"github.com/vcscsvcscs/guttracker/internal/service"
	"github.com/vcscsvcscs/guttracker/pkg/api"
	"github.com/vcscsvcscs/guttracker/pkg/model"
)

// ReportHandler implements report API endpoints
type ReportHandler struct {
	service     ReportService
	defaultDays int
	logger      *zap.Logger
}

// NewReportHandler creates a new ReportHandler
func NewReportHandler(service ReportService, defaultDays int, logger *zap.Logger) *ReportHandler {
	return &ReportHandler{
		service:     service,
		defaultDays: defaultDays,
		logger:      logger,
	}
}

// PostApiV1ReportsGenerate generates a health report
func (h *ReportHandler) PostApiV1ReportsGenerate(c *gin.Context, params api.PostApiV1ReportsGenerateParams) {
	var req api.GenerateReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, h.logger, err)
		return
	}

	userID := bindUser(c, req.UserId)

	reportReq := service.ReportRequest{
		Days:      valueOr(req.Days, h.defaultDays),
		Languages: languages(params.AcceptLanguage),
	}
	if req.Format != nil {
		reportReq.Format = model.ReportFormat(*req.Format)
	}

	rep, err := h.service.GenerateReport(c.Request.Context(), userID, reportReq)
	if err != nil {
		respondError(c, h.logger, err, "Failed to generate report", zap.String("user_id", userID))
		return
	}

	format := api.ReportFormat(rep.Format)
	start := timeToDate(rep.DateRangeStart)
	end := timeToDate(rep.DateRangeEnd)
	downloadURL := fmt.Sprintf("/api/v1/reports/%s?user_id=%s", rep.ID, userID)

	h.logger.Info("report generated",
		zap.String("report_id", rep.ID),
		zap.String("user_id", userID),
	)

	c.JSON(http.StatusCreated, api.ReportResponse{
		Id:             stringToUUID(rep.ID),
		Format:         &format,
		DateRangeStart: &start,
		DateRangeEnd:   &end,
		GeneratedAt:    timePtr(rep.GeneratedAt),
		DownloadUrl:    &downloadURL,
	})
}

// GetApiV1ReportsId downloads a report
func (h *ReportHandler) GetApiV1ReportsId(c *gin.Context, id types.UUID, params api.GetApiV1ReportsIdParams) {
	userID := bindUser(c, params.UserId)
	reportID := uuidToString(id)

	h.logger.Info("downloading report",
		zap.String("report_id", reportID),
	)

	file, err := h.service.GetReport(c.Request.Context(), userID, reportID)
	if err != nil {
		respondError(c, h.logger, err, "Failed to get report", zap.String("report_id", reportID))
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", path.Base(file.Report.FilePath)))
	c.Header("Content-Length", strconv.Itoa(len(file.Data)))
	c.Data(http.StatusOK, file.ContentType, file.Data)

	h.logger.Info("report downloaded",
		zap.String("report_id", reportID),
		zap.Int("size_bytes", len(file.Data)),
	)
}
