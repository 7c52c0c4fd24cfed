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

// RecordHandler implements bowel movement and symptom endpoints
type RecordHandler struct {
	service RecordService
	loc     *time.Location
	logger  *zap.Logger
	now     func() time.Time
}

// NewRecordHandler creates a new RecordHandler. Date query parameters are
// interpreted in loc.
func NewRecordHandler(service RecordService, loc *time.Location, logger *zap.Logger) *RecordHandler {
	return &RecordHandler{
		service: service,
		loc:     loc,
		logger:  logger,
		now:     time.Now,
	}
}

// PostApiV1BowelMovements records a bowel movement
func (h *RecordHandler) PostApiV1BowelMovements(c *gin.Context) {
	var req api.BowelMovementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, h.logger, err)
		return
	}

	userID := bindUser(c, req.UserId)

	rec := &model.BowelRecord{
		BristolType: req.BristolType,
		HasBlood:    valueOr(req.HasBlood, false),
		HasMucus:    valueOr(req.HasMucus, false),
		PainLevel:   valueOr(req.PainLevel, 0),
		Urgency:     valueOr(req.Urgency, 0),
		Notes:       valueOr(req.Notes, ""),
	}
	if req.Timestamp != nil {
		rec.Timestamp = *req.Timestamp
	}

	if err := h.service.AddBowelMovement(c.Request.Context(), userID, rec); err != nil {
		respondError(c, h.logger, err, "Failed to record bowel movement", zap.String("user_id", userID))
		return
	}

	h.logger.Info("bowel movement recorded",
		zap.String("record_id", rec.ID),
		zap.String("user_id", userID),
	)

	c.JSON(http.StatusCreated, bowelResponse(*rec))
}

// GetApiV1BowelMovements lists bowel movements in chronological order
func (h *RecordHandler) GetApiV1BowelMovements(c *gin.Context, params api.GetApiV1BowelMovementsParams) {
	userID := bindUser(c, params.UserId)
	start, end := dateRange(params, h.now(), h.loc)

	records, err := h.service.ListBowelMovements(c.Request.Context(), userID, start, end)
	if err != nil {
		respondError(c, h.logger, err, "Failed to list bowel movements", zap.String("user_id", userID))
		return
	}

	response := make([]api.BowelMovementResponse, 0, len(records))
	for _, rec := range records {
		response = append(response, bowelResponse(rec))
	}

	c.JSON(http.StatusOK, response)
}

// DeleteApiV1BowelMovementsId deletes a bowel movement
func (h *RecordHandler) DeleteApiV1BowelMovementsId(c *gin.Context, id types.UUID, params api.DeleteApiV1BowelMovementsIdParams) {
	userID := bindUser(c, params.UserId)
	recordID := uuidToString(id)

	if err := h.service.DeleteBowelMovement(c.Request.Context(), userID, recordID); err != nil {
		respondError(c, h.logger, err, "Failed to delete bowel movement",
			zap.String("user_id", userID),
			zap.String("record_id", recordID),
		)
		return
	}

	c.Status(http.StatusNoContent)
}

// PostApiV1Symptoms records a symptom check-in
func (h *RecordHandler) PostApiV1Symptoms(c *gin.Context) {
	var req api.SymptomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, h.logger, err)
		return
	}

	userID := bindUser(c, req.UserId)

	rec := &model.SymptomRecord{
		AbdominalPain: valueOr(req.AbdominalPain, 0),
		Bloating:      valueOr(req.Bloating, 0),
		Gas:           valueOr(req.Gas, 0),
		Nausea:        valueOr(req.Nausea, 0),
		Cramping:      valueOr(req.Cramping, 0),
		BowelSounds:   valueOr(req.BowelSounds, 0),
		Fatigue:       valueOr(req.Fatigue, 0),
		JointPain:     valueOr(req.JointPain, 0),
		Fever:         valueOr(req.Fever, false),
		SleepQuality:  valueOr(req.SleepQuality, 0),
		Mood:          valueOr(req.Mood, 0),
		Notes:         valueOr(req.Notes, ""),
	}
	if req.Timestamp != nil {
		rec.Timestamp = *req.Timestamp
	}

	if err := h.service.AddSymptoms(c.Request.Context(), userID, rec); err != nil {
		respondError(c, h.logger, err, "Failed to record symptoms", zap.String("user_id", userID))
		return
	}

	h.logger.Info("symptoms recorded",
		zap.String("record_id", rec.ID),
		zap.String("user_id", userID),
		zap.Int("overall_severity", rec.OverallSeverity()),
	)

	c.JSON(http.StatusCreated, symptomResponse(*rec))
}

// GetApiV1Symptoms lists symptom check-ins in chronological order
func (h *RecordHandler) GetApiV1Symptoms(c *gin.Context, params api.GetApiV1SymptomsParams) {
	userID := bindUser(c, params.UserId)
	start, end := dateRange(params, h.now(), h.loc)

	records, err := h.service.ListSymptoms(c.Request.Context(), userID, start, end)
	if err != nil {
		respondError(c, h.logger, err, "Failed to list symptoms", zap.String("user_id", userID))
		return
	}

	response := make([]api.SymptomResponse, 0, len(records))
	for _, rec := range records {
		response = append(response, symptomResponse(rec))
	}

	c.JSON(http.StatusOK, response)
}

func bowelResponse(rec model.BowelRecord) api.BowelMovementResponse {
	resp := api.BowelMovementResponse{
		Id:          stringToUUID(rec.ID),
		UserId:      stringToUUID(rec.UserID),
		Timestamp:   timePtr(rec.Timestamp),
		BristolType: intPtr(rec.BristolType),
		HasBlood:    boolPtr(rec.HasBlood),
		HasMucus:    boolPtr(rec.HasMucus),
		PainLevel:   intPtr(rec.PainLevel),
		Urgency:     intPtr(rec.Urgency),
		CreatedAt:   timePtr(rec.CreatedAt),
	}
	if rec.Notes != "" {
		resp.Notes = stringPtr(rec.Notes)
	}
	return resp
}

func symptomResponse(rec model.SymptomRecord) api.SymptomResponse {
	resp := api.SymptomResponse{
		Id:              stringToUUID(rec.ID),
		UserId:          stringToUUID(rec.UserID),
		Timestamp:       timePtr(rec.Timestamp),
		AbdominalPain:   intPtr(rec.AbdominalPain),
		Bloating:        intPtr(rec.Bloating),
		Gas:             intPtr(rec.Gas),
		Nausea:          intPtr(rec.Nausea),
		Cramping:        intPtr(rec.Cramping),
		BowelSounds:     intPtr(rec.BowelSounds),
		Fatigue:         intPtr(rec.Fatigue),
		JointPain:       intPtr(rec.JointPain),
		Fever:           boolPtr(rec.Fever),
		SleepQuality:    intPtr(rec.SleepQuality),
		Mood:            intPtr(rec.Mood),
		OverallSeverity: intPtr(rec.OverallSeverity()),
	}
	if rec.Notes != "" {
		resp.Notes = stringPtr(rec.Notes)
	}
	return resp
}
