package model

import "time"

// Bristol Stool Scale bounds
const (
	BristolMin = 1
	BristolMax = 7

	MaxPainLevel = 10
	MaxUrgency   = 3
)

// BristolRisk classifies a Bristol type into a clinical bucket
type BristolRisk string

const (
	BristolRiskConstipation BristolRisk = "constipation"
	BristolRiskNormal       BristolRisk = "normal"
	BristolRiskDiarrhea     BristolRisk = "diarrhea"
)

// BowelRecord represents a single recorded bowel movement
type BowelRecord struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	Timestamp   time.Time `json:"timestamp"`
	BristolType int       `json:"bristol_type"`
	HasBlood    bool      `json:"has_blood"`
	HasMucus    bool      `json:"has_mucus"`
	PainLevel   int       `json:"pain_level"`
	Urgency     int       `json:"urgency"`
	Notes       string    `json:"notes,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// ClampBristol forces a Bristol value into [1,7]
func ClampBristol(t int) int {
	return clamp(t, BristolMin, BristolMax)
}

// ClampPain forces a pain value into [0,10]
func ClampPain(p int) int {
	return clamp(p, 0, MaxPainLevel)
}

// Bristol returns the record's Bristol type clamped into the valid range
func (b BowelRecord) Bristol() int {
	return ClampBristol(b.BristolType)
}

// Pain returns the record's pain level clamped into the valid range
func (b BowelRecord) Pain() int {
	return ClampPain(b.PainLevel)
}

// Risk returns the Bristol risk category of the record
func (b BowelRecord) Risk() BristolRisk {
	return RiskOf(b.BristolType)
}

// HasWarningSign reports whether the record needs attention
func (b BowelRecord) HasWarningSign() bool {
	return b.HasBlood || b.Pain() >= 7 || b.Urgency >= MaxUrgency
}

// RiskOf classifies a (possibly malformed) Bristol value
func RiskOf(bristol int) BristolRisk {
	switch t := ClampBristol(bristol); {
	case t <= 2:
		return BristolRiskConstipation
	case t >= 6:
		return BristolRiskDiarrhea
	default:
		return BristolRiskNormal
	}
}

// IsNormalBristol reports whether t falls in the normal range [3,5]
func IsNormalBristol(t int) bool {
	return RiskOf(t) == BristolRiskNormal
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
