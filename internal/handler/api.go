package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/oapi-codegen/runtime/types"

	"github.com/vcscsvcscs/guttracker/pkg/api"
)

// APIHandler implements api.ServerInterface by delegating to the
// individual handlers
type APIHandler struct {
	Records       *RecordHandler
	Medications   *MedicationHandler
	Stats         *StatsHandler
	Reports       *ReportHandler
	Notifications *NotificationHandler
	Health        *HealthHandler
}

var _ api.ServerInterface = (*APIHandler)(nil)

// Health endpoint
func (h *APIHandler) GetHealth(c *gin.Context) {
	h.Health.GetHealth(c)
}

// Record endpoints
func (h *APIHandler) GetApiV1BowelMovements(c *gin.Context, params api.GetApiV1BowelMovementsParams) {
	h.Records.GetApiV1BowelMovements(c, params)
}

func (h *APIHandler) PostApiV1BowelMovements(c *gin.Context) {
	h.Records.PostApiV1BowelMovements(c)
}

func (h *APIHandler) DeleteApiV1BowelMovementsId(c *gin.Context, id types.UUID, params api.DeleteApiV1BowelMovementsIdParams) {
	h.Records.DeleteApiV1BowelMovementsId(c, id, params)
}

func (h *APIHandler) GetApiV1Symptoms(c *gin.Context, params api.GetApiV1SymptomsParams) {
	h.Records.GetApiV1Symptoms(c, params)
}

func (h *APIHandler) PostApiV1Symptoms(c *gin.Context) {
	h.Records.PostApiV1Symptoms(c)
}

// Medication endpoints
func (h *APIHandler) GetApiV1Medications(c *gin.Context, params api.GetApiV1MedicationsParams) {
	h.Medications.GetApiV1Medications(c, params)
}

func (h *APIHandler) PostApiV1Medications(c *gin.Context) {
	h.Medications.PostApiV1Medications(c)
}

func (h *APIHandler) DeleteApiV1MedicationsId(c *gin.Context, id types.UUID, params api.DeleteApiV1MedicationsIdParams) {
	h.Medications.DeleteApiV1MedicationsId(c, id, params)
}

func (h *APIHandler) GetApiV1MedicationsLogs(c *gin.Context, params api.GetApiV1MedicationsLogsParams) {
	h.Medications.GetApiV1MedicationsLogs(c, params)
}

func (h *APIHandler) PostApiV1MedicationsLogs(c *gin.Context) {
	h.Medications.PostApiV1MedicationsLogs(c)
}

// Analytics endpoints
func (h *APIHandler) GetApiV1Stats(c *gin.Context, params api.GetApiV1StatsParams) {
	h.Stats.GetApiV1Stats(c, params)
}

func (h *APIHandler) GetApiV1Score(c *gin.Context, params api.GetApiV1ScoreParams) {
	h.Stats.GetApiV1Score(c, params)
}

// Report endpoints
func (h *APIHandler) PostApiV1ReportsGenerate(c *gin.Context, params api.PostApiV1ReportsGenerateParams) {
	h.Reports.PostApiV1ReportsGenerate(c, params)
}

func (h *APIHandler) GetApiV1ReportsId(c *gin.Context, id types.UUID, params api.GetApiV1ReportsIdParams) {
	h.Reports.GetApiV1ReportsId(c, id, params)
}

// Notification endpoints
func (h *APIHandler) GetApiV1Notifications(c *gin.Context, params api.GetApiV1NotificationsParams) {
	h.Notifications.GetApiV1Notifications(c, params)
}

func (h *APIHandler) GetApiV1NotificationsDailyScore(c *gin.Context, params api.GetApiV1NotificationsDailyScoreParams) {
	h.Notifications.GetApiV1NotificationsDailyScore(c, params)
}
