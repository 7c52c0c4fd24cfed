package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBowelRecord_Risk(t *testing.T) {
	tests := []struct {
		bristol int
		want    BristolRisk
	}{
		{-4, BristolRiskConstipation},
		{1, BristolRiskConstipation},
		{2, BristolRiskConstipation},
		{3, BristolRiskNormal},
		{5, BristolRiskNormal},
		{6, BristolRiskDiarrhea},
		{99, BristolRiskDiarrhea},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, BowelRecord{BristolType: tt.bristol}.Risk())
	}
}

func TestBowelRecord_HasWarningSign(t *testing.T) {
	assert.False(t, BowelRecord{BristolType: 4, PainLevel: 6, Urgency: 2}.HasWarningSign())
	assert.True(t, BowelRecord{BristolType: 4, HasBlood: true}.HasWarningSign())
	assert.True(t, BowelRecord{BristolType: 4, PainLevel: 7}.HasWarningSign())
	assert.True(t, BowelRecord{BristolType: 4, Urgency: 3}.HasWarningSign())
}

func TestSymptomRecord_DerivedSeverity(t *testing.T) {
	s := SymptomRecord{Bloating: 1, Nausea: 2, Fatigue: 1, Fever: true}

	assert.Equal(t, 2, s.MaxGISeverity())
	assert.Equal(t, 2, s.OverallSeverity())
	assert.Equal(t, 6, s.SymptomBurden())
	assert.True(t, s.HasActiveSymptoms())
}

func TestSymptomRecord_SystemicSeverityDominates(t *testing.T) {
	s := SymptomRecord{Gas: 1, JointPain: 3}

	assert.Equal(t, 1, s.MaxGISeverity())
	assert.Equal(t, 3, s.OverallSeverity())
}

func TestSymptomRecord_OutOfRangeValuesAreClamped(t *testing.T) {
	s := SymptomRecord{AbdominalPain: 9, Cramping: -2}

	assert.Equal(t, 3, s.Severity(SymptomAbdominalPain))
	assert.Equal(t, 0, s.Severity(SymptomCramping))
	assert.Equal(t, 3, s.SymptomBurden())
}

func TestSymptomRecord_SetSeverityRoundTripsEveryKind(t *testing.T) {
	var s SymptomRecord
	for _, kind := range SymptomKinds() {
		s.SetSeverity(kind, 1)
	}

	assert.Equal(t, 1, s.AbdominalPain)
	assert.Equal(t, 1, s.BowelSounds)
	assert.Equal(t, 1, s.JointPain)
	assert.True(t, s.Fever)
	// fever reads as 2 whenever present
	assert.Equal(t, 2, s.Severity(SymptomFever))
	assert.Len(t, SymptomKinds(), 9)
}

func TestSymptomRecord_ActiveSymptomsSortedBySeverity(t *testing.T) {
	s := SymptomRecord{Bloating: 1, Nausea: 3, Gas: 1, Fever: true}

	active := s.ActiveSymptoms()

	assert.Equal(t, []ActiveSymptom{
		{Kind: SymptomNausea, Severity: 3},
		{Kind: SymptomFever, Severity: 2},
		{Kind: SymptomBloating, Severity: 1},
		{Kind: SymptomGas, Severity: 1},
	}, active)
}

func TestParseSymptomKind(t *testing.T) {
	kind, ok := ParseSymptomKind("joint_pain")
	assert.True(t, ok)
	assert.Equal(t, SymptomJointPain, kind)

	_, ok = ParseSymptomKind("headache")
	assert.False(t, ok)
}

func TestSymptomRecord_UnknownKindIsIgnored(t *testing.T) {
	var s SymptomRecord
	s.SetSeverity(SymptomKind("headache"), 3)

	assert.Equal(t, 0, s.Severity(SymptomKind("headache")))
	assert.Equal(t, 0, s.SymptomBurden())
}

func TestMedicationCategory_Valid(t *testing.T) {
	assert.True(t, MedicationBiologic.Valid())
	assert.True(t, MedicationOther.Valid())
	assert.False(t, MedicationCategory("antibiotic").Valid())
	assert.False(t, MedicationCategory("").Valid())
}

func TestReportFormat_Valid(t *testing.T) {
	assert.True(t, ReportFormatText.Valid())
	assert.True(t, ReportFormatPDF.Valid())
	assert.False(t, ReportFormat("csv").Valid())
}

func TestSymptomRecord_InvalidSeverity(t *testing.T) {
	s := SymptomRecord{Bloating: 2, Fever: true}
	_, invalid := s.InvalidSeverity()
	assert.False(t, invalid)

	s.Nausea = 4
	kind, invalid := s.InvalidSeverity()
	assert.True(t, invalid)
	assert.Equal(t, SymptomNausea, kind)

	s = SymptomRecord{JointPain: -1}
	kind, invalid = s.InvalidSeverity()
	assert.True(t, invalid)
	assert.Equal(t, SymptomJointPain, kind)
}
