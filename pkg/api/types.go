// Package api holds the GutTracker REST API types and the gin server binding.
package api

import (
	"time"

	openapi_types "github.com/oapi-codegen/runtime/types"
)

// Defines values for MedicationCategory.
const (
	Aminosalicylate MedicationCategory = "aminosalicylate"
	Biologic        MedicationCategory = "biologic"
	Immunomodulator MedicationCategory = "immunomodulator"
	Other           MedicationCategory = "other"
	Steroid         MedicationCategory = "steroid"
	Supplement      MedicationCategory = "supplement"
)

// Defines values for ReportFormat.
const (
	Pdf  ReportFormat = "pdf"
	Text ReportFormat = "text"
)

// Defines values for Trend.
const (
	Improving Trend = "improving"
	Stable    Trend = "stable"
	Worsening Trend = "worsening"
)

// Defines values for HealthScoreLevel.
const (
	Excellent HealthScoreLevel = "excellent"
	Fair      HealthScoreLevel = "fair"
	Good      HealthScoreLevel = "good"
	Poor      HealthScoreLevel = "poor"
)

// ErrorResponse defines model for ErrorResponse.
type ErrorResponse struct {
	Code    string  `json:"code"`
	Details *string `json:"details,omitempty"`
	Message string  `json:"message"`
}

// BowelMovementRequest defines model for BowelMovementRequest.
type BowelMovementRequest struct {
	BristolType int                `json:"bristol_type"`
	HasBlood    *bool              `json:"has_blood,omitempty"`
	HasMucus    *bool              `json:"has_mucus,omitempty"`
	Notes       *string            `json:"notes,omitempty"`
	PainLevel   *int               `json:"pain_level,omitempty"`
	Timestamp   *time.Time         `json:"timestamp,omitempty"`
	Urgency     *int               `json:"urgency,omitempty"`
	UserId      openapi_types.UUID `json:"user_id"`
}

// BowelMovementResponse defines model for BowelMovementResponse.
type BowelMovementResponse struct {
	BristolType *int                `json:"bristol_type,omitempty"`
	CreatedAt   *time.Time          `json:"created_at,omitempty"`
	HasBlood    *bool               `json:"has_blood,omitempty"`
	HasMucus    *bool               `json:"has_mucus,omitempty"`
	Id          *openapi_types.UUID `json:"id,omitempty"`
	Notes       *string             `json:"notes,omitempty"`
	PainLevel   *int                `json:"pain_level,omitempty"`
	Timestamp   *time.Time          `json:"timestamp,omitempty"`
	Urgency     *int                `json:"urgency,omitempty"`
	UserId      *openapi_types.UUID `json:"user_id,omitempty"`
}

// SymptomRequest defines model for SymptomRequest.
type SymptomRequest struct {
	AbdominalPain *int               `json:"abdominal_pain,omitempty"`
	Bloating      *int               `json:"bloating,omitempty"`
	BowelSounds   *int               `json:"bowel_sounds,omitempty"`
	Cramping      *int               `json:"cramping,omitempty"`
	Fatigue       *int               `json:"fatigue,omitempty"`
	Fever         *bool              `json:"fever,omitempty"`
	Gas           *int               `json:"gas,omitempty"`
	JointPain     *int               `json:"joint_pain,omitempty"`
	Mood          *int               `json:"mood,omitempty"`
	Nausea        *int               `json:"nausea,omitempty"`
	Notes         *string            `json:"notes,omitempty"`
	SleepQuality  *int               `json:"sleep_quality,omitempty"`
	Timestamp     *time.Time         `json:"timestamp,omitempty"`
	UserId        openapi_types.UUID `json:"user_id"`
}

// SymptomResponse defines model for SymptomResponse.
type SymptomResponse struct {
	AbdominalPain   *int                `json:"abdominal_pain,omitempty"`
	Bloating        *int                `json:"bloating,omitempty"`
	BowelSounds     *int                `json:"bowel_sounds,omitempty"`
	Cramping        *int                `json:"cramping,omitempty"`
	Fatigue         *int                `json:"fatigue,omitempty"`
	Fever           *bool               `json:"fever,omitempty"`
	Gas             *int                `json:"gas,omitempty"`
	Id              *openapi_types.UUID `json:"id,omitempty"`
	JointPain       *int                `json:"joint_pain,omitempty"`
	Mood            *int                `json:"mood,omitempty"`
	Nausea          *int                `json:"nausea,omitempty"`
	Notes           *string             `json:"notes,omitempty"`
	OverallSeverity *int                `json:"overall_severity,omitempty"`
	SleepQuality    *int                `json:"sleep_quality,omitempty"`
	Timestamp       *time.Time          `json:"timestamp,omitempty"`
	UserId          *openapi_types.UUID `json:"user_id,omitempty"`
}

// MedicationCategory defines model for MedicationCategory.
type MedicationCategory string

// CreateMedicationRequest defines model for CreateMedicationRequest.
type CreateMedicationRequest struct {
	Category        *MedicationCategory `json:"category,omitempty"`
	Dosage          string              `json:"dosage"`
	Frequency       *string             `json:"frequency,omitempty"`
	Name            string              `json:"name"`
	ReminderEnabled *bool               `json:"reminder_enabled,omitempty"`
	ReminderHour    *int                `json:"reminder_hour,omitempty"`
	ReminderMinute  *int                `json:"reminder_minute,omitempty"`
	UserId          openapi_types.UUID  `json:"user_id"`
}

// MedicationResponse defines model for MedicationResponse.
type MedicationResponse struct {
	Active          *bool               `json:"active,omitempty"`
	Category        *MedicationCategory `json:"category,omitempty"`
	CreatedAt       *time.Time          `json:"created_at,omitempty"`
	Dosage          *string             `json:"dosage,omitempty"`
	Frequency       *string             `json:"frequency,omitempty"`
	Id              *openapi_types.UUID `json:"id,omitempty"`
	Name            *string             `json:"name,omitempty"`
	ReminderEnabled *bool               `json:"reminder_enabled,omitempty"`
	ReminderHour    *int                `json:"reminder_hour,omitempty"`
	ReminderMinute  *int                `json:"reminder_minute,omitempty"`
	UserId          *openapi_types.UUID `json:"user_id,omitempty"`
}

// MedicationLogRequest defines model for MedicationLogRequest.
type MedicationLogRequest struct {
	MedicationId   *openapi_types.UUID `json:"medication_id,omitempty"`
	MedicationName *string             `json:"medication_name,omitempty"`
	Skipped        *bool               `json:"skipped,omitempty"`
	Timestamp      *time.Time          `json:"timestamp,omitempty"`
	UserId         openapi_types.UUID  `json:"user_id"`
}

// MedicationLogResponse defines model for MedicationLogResponse.
type MedicationLogResponse struct {
	Id             *openapi_types.UUID `json:"id,omitempty"`
	MedicationId   *openapi_types.UUID `json:"medication_id,omitempty"`
	MedicationName *string             `json:"medication_name,omitempty"`
	Skipped        *bool               `json:"skipped,omitempty"`
	Timestamp      *time.Time          `json:"timestamp,omitempty"`
	UserId         *openapi_types.UUID `json:"user_id,omitempty"`
}

// Trend defines model for Trend.
type Trend string

// HealthScoreLevel defines model for HealthScoreLevel.
type HealthScoreLevel string

// DailySummary defines model for DailySummary.
type DailySummary struct {
	AvgBristol       float64            `json:"avg_bristol"`
	BowelCount       int                `json:"bowel_count"`
	BristolTypes     []int              `json:"bristol_types"`
	Date             openapi_types.Date `json:"date"`
	HasBlood         bool               `json:"has_blood"`
	MaxPain          int                `json:"max_pain"`
	MedicationsTaken int                `json:"medications_taken"`
	MedicationsTotal int                `json:"medications_total"`
	SeverityLevel    string             `json:"severity_level"`
	SymptomSeverity  int                `json:"symptom_severity"`
}

// PeriodStats defines model for PeriodStats.
type PeriodStats struct {
	AvgBowelPerDay      float64        `json:"avg_bowel_per_day"`
	AvgBristol          float64        `json:"avg_bristol"`
	AvgPain             float64        `json:"avg_pain"`
	BloodDays           int            `json:"blood_days"`
	BowelTrend          Trend          `json:"bowel_trend"`
	BristolDistribution map[string]int `json:"bristol_distribution"`
	ConstipationDays    int            `json:"constipation_days"`
	Days                int            `json:"days"`
	DiarrheaDays        int            `json:"diarrhea_days"`
	NormalDays          int            `json:"normal_days"`
	SymptomTrend        Trend          `json:"symptom_trend"`
	TotalBowelMovements int            `json:"total_bowel_movements"`
}

// WeekdayPattern defines model for WeekdayPattern.
type WeekdayPattern struct {
	AvgBristol float64 `json:"avg_bristol"`
	AvgCount   float64 `json:"avg_count"`
	Days       int     `json:"days"`
	Weekday    string  `json:"weekday"`
}

// StatsResponse defines model for StatsResponse.
type StatsResponse struct {
	EndDate   openapi_types.Date `json:"end_date"`
	Period    int                `json:"period"`
	StartDate openapi_types.Date `json:"start_date"`
	Stats     PeriodStats        `json:"stats"`
	Summaries []DailySummary     `json:"summaries"`
	Weekdays  []WeekdayPattern   `json:"weekdays"`
}

// HealthScore defines model for HealthScore.
type HealthScore struct {
	Details []string         `json:"details"`
	Level   HealthScoreLevel `json:"level"`
	Score   int              `json:"score"`
}

// ScoreResponse defines model for ScoreResponse.
type ScoreResponse struct {
	Date    openapi_types.Date `json:"date"`
	Score   HealthScore        `json:"score"`
	Summary DailySummary       `json:"summary"`
}

// ReportFormat defines model for ReportFormat.
type ReportFormat string

// GenerateReportRequest defines model for GenerateReportRequest.
type GenerateReportRequest struct {
	Days   *int               `json:"days,omitempty"`
	Format *ReportFormat      `json:"format,omitempty"`
	UserId openapi_types.UUID `json:"user_id"`
}

// ReportResponse defines model for ReportResponse.
type ReportResponse struct {
	DateRangeEnd   *openapi_types.Date `json:"date_range_end,omitempty"`
	DateRangeStart *openapi_types.Date `json:"date_range_start,omitempty"`
	DownloadUrl    *string             `json:"download_url,omitempty"`
	Format         *ReportFormat       `json:"format,omitempty"`
	GeneratedAt    *time.Time          `json:"generated_at,omitempty"`
	Id             *openapi_types.UUID `json:"id,omitempty"`
}

// NotificationMessage defines model for NotificationMessage.
type NotificationMessage struct {
	Body     string `json:"body"`
	Category string `json:"category"`
	Hour     int    `json:"hour"`
	Id       string `json:"id"`
	Minute   int    `json:"minute"`
	Title    string `json:"title"`
}

// UserParams is the user_id query parameter shared by per-user reads.
type UserParams struct {
	UserId openapi_types.UUID `form:"user_id" json:"user_id"`
}

// GetApiV1BowelMovementsParams defines parameters for GetApiV1BowelMovements.
type GetApiV1BowelMovementsParams struct {
	UserId    openapi_types.UUID  `form:"user_id" json:"user_id"`
	StartDate *openapi_types.Date `form:"start_date,omitempty" json:"start_date,omitempty"`
	EndDate   *openapi_types.Date `form:"end_date,omitempty" json:"end_date,omitempty"`
}

// DeleteApiV1BowelMovementsIdParams defines parameters for DeleteApiV1BowelMovementsId.
type DeleteApiV1BowelMovementsIdParams = UserParams

// GetApiV1SymptomsParams defines parameters for GetApiV1Symptoms.
type GetApiV1SymptomsParams = GetApiV1BowelMovementsParams

// GetApiV1MedicationsParams defines parameters for GetApiV1Medications.
type GetApiV1MedicationsParams struct {
	UserId     openapi_types.UUID `form:"user_id" json:"user_id"`
	ActiveOnly *bool              `form:"active_only,omitempty" json:"active_only,omitempty"`
}

// DeleteApiV1MedicationsIdParams defines parameters for DeleteApiV1MedicationsId.
type DeleteApiV1MedicationsIdParams = UserParams

// GetApiV1MedicationsLogsParams defines parameters for GetApiV1MedicationsLogs.
type GetApiV1MedicationsLogsParams = GetApiV1BowelMovementsParams

// GetApiV1StatsParams defines parameters for GetApiV1Stats.
type GetApiV1StatsParams struct {
	UserId openapi_types.UUID `form:"user_id" json:"user_id"`
	Days   *int               `form:"days,omitempty" json:"days,omitempty"`
}

// GetApiV1ScoreParams defines parameters for GetApiV1Score.
type GetApiV1ScoreParams struct {
	UserId openapi_types.UUID  `form:"user_id" json:"user_id"`
	Date   *openapi_types.Date `form:"date,omitempty" json:"date,omitempty"`
}

// GetApiV1ReportsIdParams defines parameters for GetApiV1ReportsId.
type GetApiV1ReportsIdParams = UserParams

// GetApiV1NotificationsParams defines parameters for GetApiV1Notifications.
type GetApiV1NotificationsParams struct {
	UserId           openapi_types.UUID `form:"user_id" json:"user_id"`
	DailyScore       *bool              `form:"daily_score,omitempty" json:"daily_score,omitempty"`
	DailyScoreHour   *int               `form:"daily_score_hour,omitempty" json:"daily_score_hour,omitempty"`
	DailyScoreMinute *int               `form:"daily_score_minute,omitempty" json:"daily_score_minute,omitempty"`
	AcceptLanguage   *string            `json:"Accept-Language,omitempty"`
}

// GetApiV1NotificationsDailyScoreParams defines parameters for GetApiV1NotificationsDailyScore.
type GetApiV1NotificationsDailyScoreParams struct {
	UserId         openapi_types.UUID `form:"user_id" json:"user_id"`
	AcceptLanguage *string            `json:"Accept-Language,omitempty"`
}

// PostApiV1ReportsGenerateParams defines parameters for PostApiV1ReportsGenerate.
type PostApiV1ReportsGenerateParams struct {
	AcceptLanguage *string `json:"Accept-Language,omitempty"`
}
