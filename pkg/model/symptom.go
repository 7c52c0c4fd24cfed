package model

import (
	"sort"
	"time"
)

// MaxSeverity is the highest value of any 0-3 severity field
const MaxSeverity = 3

// Mood runs from 1 (very bad) to 5 (very good); sleep quality from 0
// (good) to 3 (very poor)
const (
	MinMood         = 1
	MaxMood         = 5
	DefaultMood     = 3
	MaxSleepQuality = 3
)

// feverSeverity is how a present fever counts toward severity and burden
const feverSeverity = 2

// SymptomKind identifies one of the nine tracked symptoms
type SymptomKind string

const (
	SymptomAbdominalPain SymptomKind = "abdominal_pain"
	SymptomBloating      SymptomKind = "bloating"
	SymptomGas           SymptomKind = "gas"
	SymptomNausea        SymptomKind = "nausea"
	SymptomCramping      SymptomKind = "cramping"
	SymptomBowelSounds   SymptomKind = "bowel_sounds"
	SymptomFatigue       SymptomKind = "fatigue"
	SymptomFever         SymptomKind = "fever"
	SymptomJointPain     SymptomKind = "joint_pain"
)

// SymptomRecord represents a symptom check-in
type SymptomRecord struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Timestamp time.Time `json:"timestamp"`

	// GI symptoms, 0-3
	AbdominalPain int `json:"abdominal_pain"`
	Bloating      int `json:"bloating"`
	Gas           int `json:"gas"`
	Nausea        int `json:"nausea"`
	Cramping      int `json:"cramping"`
	BowelSounds   int `json:"bowel_sounds"`

	// Systemic symptoms
	Fatigue   int  `json:"fatigue"`
	JointPain int  `json:"joint_pain"`
	Fever     bool `json:"fever"`

	SleepQuality int       `json:"sleep_quality"`
	Mood         int       `json:"mood"`
	Notes        string    `json:"notes,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

type symptomField struct {
	kind SymptomKind
	gi   bool
	get  func(*SymptomRecord) int
	set  func(*SymptomRecord, int)
}

// symptomFields is the fixed accessor table for the nine symptom kinds,
// in display order.
var symptomFields = []symptomField{
	{SymptomAbdominalPain, true, func(s *SymptomRecord) int { return s.AbdominalPain }, func(s *SymptomRecord, v int) { s.AbdominalPain = v }},
	{SymptomBloating, true, func(s *SymptomRecord) int { return s.Bloating }, func(s *SymptomRecord, v int) { s.Bloating = v }},
	{SymptomGas, true, func(s *SymptomRecord) int { return s.Gas }, func(s *SymptomRecord, v int) { s.Gas = v }},
	{SymptomNausea, true, func(s *SymptomRecord) int { return s.Nausea }, func(s *SymptomRecord, v int) { s.Nausea = v }},
	{SymptomCramping, true, func(s *SymptomRecord) int { return s.Cramping }, func(s *SymptomRecord, v int) { s.Cramping = v }},
	{SymptomBowelSounds, true, func(s *SymptomRecord) int { return s.BowelSounds }, func(s *SymptomRecord, v int) { s.BowelSounds = v }},
	{SymptomFatigue, false, func(s *SymptomRecord) int { return s.Fatigue }, func(s *SymptomRecord, v int) { s.Fatigue = v }},
	{SymptomFever, false,
		func(s *SymptomRecord) int {
			if s.Fever {
				return feverSeverity
			}
			return 0
		},
		func(s *SymptomRecord, v int) { s.Fever = v > 0 }},
	{SymptomJointPain, false, func(s *SymptomRecord) int { return s.JointPain }, func(s *SymptomRecord, v int) { s.JointPain = v }},
}

// SymptomKinds returns all symptom kinds in display order
func SymptomKinds() []SymptomKind {
	kinds := make([]SymptomKind, len(symptomFields))
	for i, f := range symptomFields {
		kinds[i] = f.kind
	}
	return kinds
}

// ParseSymptomKind validates a symptom kind name
func ParseSymptomKind(s string) (SymptomKind, bool) {
	for _, f := range symptomFields {
		if string(f.kind) == s {
			return f.kind, true
		}
	}
	return "", false
}

func lookupField(kind SymptomKind) (symptomField, bool) {
	for _, f := range symptomFields {
		if f.kind == kind {
			return f, true
		}
	}
	return symptomField{}, false
}

// Severity returns the clamped severity of one symptom kind.
// Fever reads as 2 when present.
func (s *SymptomRecord) Severity(kind SymptomKind) int {
	f, ok := lookupField(kind)
	if !ok {
		return 0
	}
	return clamp(f.get(s), 0, MaxSeverity)
}

// InvalidSeverity returns the first symptom whose stored value lies
// outside 0 to MaxSeverity
func (s *SymptomRecord) InvalidSeverity() (SymptomKind, bool) {
	for _, f := range symptomFields {
		if v := f.get(s); v < 0 || v > MaxSeverity {
			return f.kind, true
		}
	}
	return "", false
}

// SetSeverity writes one symptom kind. Fever is set when v > 0.
func (s *SymptomRecord) SetSeverity(kind SymptomKind, v int) {
	if f, ok := lookupField(kind); ok {
		f.set(s, clamp(v, 0, MaxSeverity))
	}
}

// MaxGISeverity is the highest of the six GI symptoms
func (s *SymptomRecord) MaxGISeverity() int {
	highest := 0
	for _, f := range symptomFields {
		if f.gi {
			highest = max(highest, s.Severity(f.kind))
		}
	}
	return highest
}

// OverallSeverity is the peak symptom intensity of the record
func (s *SymptomRecord) OverallSeverity() int {
	return max(s.MaxGISeverity(),
		s.Severity(SymptomFatigue),
		s.Severity(SymptomJointPain),
		s.Severity(SymptomFever))
}

// SymptomBurden is the sum of all severities, fever counted as 2
func (s *SymptomRecord) SymptomBurden() int {
	total := 0
	for _, f := range symptomFields {
		total += s.Severity(f.kind)
	}
	return total
}

// HasActiveSymptoms reports whether any symptom is present
func (s *SymptomRecord) HasActiveSymptoms() bool {
	return s.OverallSeverity() > 0
}

// ActiveSymptom is a symptom kind with a non-zero severity
type ActiveSymptom struct {
	Kind     SymptomKind `json:"kind"`
	Severity int         `json:"severity"`
}

// ActiveSymptoms lists present symptoms, most severe first
func (s *SymptomRecord) ActiveSymptoms() []ActiveSymptom {
	var list []ActiveSymptom
	for _, f := range symptomFields {
		if v := s.Severity(f.kind); v > 0 {
			list = append(list, ActiveSymptom{Kind: f.kind, Severity: v})
		}
	}
	sort.SliceStable(list, func(i, j int) bool {
		return list[i].Severity > list[j].Severity
	})
	return list
}
