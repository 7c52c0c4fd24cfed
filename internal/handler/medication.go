package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/oapi-codegen/runtime/types"
	"go.uber.org/zap"

	"github.com/vcscsvcscs/guttracker/pkg/api"
	"github.com/vcscsvcscs/guttracker/pkg/model"
)

// MedicationHandler implements medication API endpoints
type MedicationHandler struct {
	service MedicationService
	loc     *time.Location
	logger  *zap.Logger
	now     func() time.Time
}

// NewMedicationHandler creates a new MedicationHandler
func NewMedicationHandler(service MedicationService, loc *time.Location, logger *zap.Logger) *MedicationHandler {
	return &MedicationHandler{
		service: service,
		loc:     loc,
		logger:  logger,
		now:     time.Now,
	}
}

// PostApiV1Medications adds a new medication
func (h *MedicationHandler) PostApiV1Medications(c *gin.Context) {
	var req api.CreateMedicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, h.logger, err)
		return
	}

	userID := bindUser(c, req.UserId)

	medication := &model.Medication{
		Name:            req.Name,
		Dosage:          req.Dosage,
		Frequency:       valueOr(req.Frequency, ""),
		ReminderEnabled: valueOr(req.ReminderEnabled, false),
		ReminderHour:    valueOr(req.ReminderHour, 0),
		ReminderMinute:  valueOr(req.ReminderMinute, 0),
	}
	if req.Category != nil {
		medication.Category = model.MedicationCategory(*req.Category)
	}

	if err := h.service.AddMedication(c.Request.Context(), userID, medication); err != nil {
		respondError(c, h.logger, err, "Failed to add medication", zap.String("user_id", userID))
		return
	}

	h.logger.Info("medication added",
		zap.String("medication_id", medication.ID),
		zap.String("user_id", userID),
	)

	c.JSON(http.StatusCreated, medicationResponse(*medication))
}

// GetApiV1Medications lists medications, active only unless asked otherwise
func (h *MedicationHandler) GetApiV1Medications(c *gin.Context, params api.GetApiV1MedicationsParams) {
	userID := bindUser(c, params.UserId)
	activeOnly := valueOr(params.ActiveOnly, true)

	medications, err := h.service.ListMedications(c.Request.Context(), userID, activeOnly)
	if err != nil {
		respondError(c, h.logger, err, "Failed to get medications", zap.String("user_id", userID))
		return
	}

	response := make([]api.MedicationResponse, 0, len(medications))
	for _, med := range medications {
		response = append(response, medicationResponse(med))
	}

	h.logger.Info("medications retrieved",
		zap.String("user_id", userID),
		zap.Int("count", len(response)),
	)

	c.JSON(http.StatusOK, response)
}

// DeleteApiV1MedicationsId deactivates a medication. Its dose history is kept.
func (h *MedicationHandler) DeleteApiV1MedicationsId(c *gin.Context, id types.UUID, params api.DeleteApiV1MedicationsIdParams) {
	userID := bindUser(c, params.UserId)
	medicationID := uuidToString(id)

	if err := h.service.DeleteMedication(c.Request.Context(), userID, medicationID); err != nil {
		respondError(c, h.logger, err, "Failed to delete medication",
			zap.String("user_id", userID),
			zap.String("medication_id", medicationID),
		)
		return
	}

	c.Status(http.StatusNoContent)
}

// PostApiV1MedicationsLogs logs a taken or skipped dose
func (h *MedicationHandler) PostApiV1MedicationsLogs(c *gin.Context) {
	var req api.MedicationLogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, h.logger, err)
		return
	}

	userID := bindUser(c, req.UserId)

	log := &model.MedicationLog{
		MedicationName: valueOr(req.MedicationName, ""),
		Skipped:        valueOr(req.Skipped, false),
	}
	if req.MedicationId != nil {
		id := uuidToString(*req.MedicationId)
		log.MedicationID = &id
	}
	if req.Timestamp != nil {
		log.Timestamp = *req.Timestamp
	}

	if err := h.service.LogDose(c.Request.Context(), userID, log); err != nil {
		respondError(c, h.logger, err, "Failed to log medication dose", zap.String("user_id", userID))
		return
	}

	c.JSON(http.StatusCreated, medicationLogResponse(*log))
}

// GetApiV1MedicationsLogs lists dose logs in chronological order
func (h *MedicationHandler) GetApiV1MedicationsLogs(c *gin.Context, params api.GetApiV1MedicationsLogsParams) {
	userID := bindUser(c, params.UserId)
	start, end := dateRange(params, h.now(), h.loc)

	logs, err := h.service.ListDoses(c.Request.Context(), userID, start, end)
	if err != nil {
		respondError(c, h.logger, err, "Failed to get medication logs", zap.String("user_id", userID))
		return
	}

	response := make([]api.MedicationLogResponse, 0, len(logs))
	for _, log := range logs {
		response = append(response, medicationLogResponse(log))
	}

	c.JSON(http.StatusOK, response)
}

func medicationResponse(med model.Medication) api.MedicationResponse {
	category := api.MedicationCategory(med.Category)
	return api.MedicationResponse{
		Id:              stringToUUID(med.ID),
		UserId:          stringToUUID(med.UserID),
		Name:            stringPtr(med.Name),
		Category:        &category,
		Dosage:          stringPtr(med.Dosage),
		Frequency:       stringPtr(med.Frequency),
		Active:          boolPtr(med.Active),
		ReminderEnabled: boolPtr(med.ReminderEnabled),
		ReminderHour:    intPtr(med.ReminderHour),
		ReminderMinute:  intPtr(med.ReminderMinute),
		CreatedAt:       timePtr(med.CreatedAt),
	}
}

func medicationLogResponse(log model.MedicationLog) api.MedicationLogResponse {
	resp := api.MedicationLogResponse{
		Id:             stringToUUID(log.ID),
		UserId:         stringToUUID(log.UserID),
		MedicationName: stringPtr(log.MedicationName),
		Skipped:        boolPtr(log.Skipped),
		Timestamp:      timePtr(log.Timestamp),
	}
	if log.MedicationID != nil {
		resp.MedicationId = stringToUUID(*log.MedicationID)
	}
	return resp
}
