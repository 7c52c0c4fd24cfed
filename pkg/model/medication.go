package model

import "time"

// MedicationCategory groups IBD medications
type MedicationCategory string

const (
	MedicationAminosalicylate MedicationCategory = "aminosalicylate"
	MedicationImmunomodulator MedicationCategory = "immunomodulator"
	MedicationBiologic        MedicationCategory = "biologic"
	MedicationSteroid         MedicationCategory = "steroid"
	MedicationSupplement      MedicationCategory = "supplement"
	MedicationOther           MedicationCategory = "other"
)

// Valid reports whether c is a known category
func (c MedicationCategory) Valid() bool {
	switch c {
	case MedicationAminosalicylate, MedicationImmunomodulator, MedicationBiologic,
		MedicationSteroid, MedicationSupplement, MedicationOther:
		return true
	}
	return false
}

// Valid reports whether f is a known report format
func (f ReportFormat) Valid() bool {
	return f == ReportFormatText || f == ReportFormatPDF
}

// Medication represents a prescribed medication definition
type Medication struct {
	ID              string             `json:"id"`
	UserID          string             `json:"user_id"`
	Name            string             `json:"name"`
	Category        MedicationCategory `json:"category"`
	Dosage          string             `json:"dosage"`
	Frequency       string             `json:"frequency"`
	Active          bool               `json:"active"`
	ReminderEnabled bool               `json:"reminder_enabled"`
	ReminderHour    int                `json:"reminder_hour"`
	ReminderMinute  int                `json:"reminder_minute"`
	CreatedAt       time.Time          `json:"created_at"`
	UpdatedAt       time.Time          `json:"updated_at"`
}

// MedicationLog records one dose of a medication.
// A log with Skipped set documents a missed dose and does not count as taken.
type MedicationLog struct {
	ID             string    `json:"id"`
	UserID         string    `json:"user_id"`
	MedicationID   *string   `json:"medication_id,omitempty"`
	MedicationName string    `json:"medication_name"`
	Timestamp      time.Time `json:"timestamp"`
	Skipped        bool      `json:"skipped"`
	CreatedAt      time.Time `json:"created_at"`
}

// ReportFormat is the output format of an exported report
type ReportFormat string

const (
	ReportFormatText ReportFormat = "text"
	ReportFormatPDF  ReportFormat = "pdf"
)

// Report represents a generated health report
type Report struct {
	ID             string       `json:"id"`
	UserID         string       `json:"user_id"`
	DateRangeStart time.Time    `json:"date_range_start"`
	DateRangeEnd   time.Time    `json:"date_range_end"`
	Format         ReportFormat `json:"format"`
	FilePath       string       `json:"file_path"`
	GeneratedAt    time.Time    `json:"generated_at"`
}
