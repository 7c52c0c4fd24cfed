// Package notify composes the push notification payloads delivered to the
// client apps: the daily health score summary and medication reminders.
package notify

import (
	"sort"
	"strings"

	"github.com/vcscsvcscs/guttracker/internal/analytics"
	"github.com/vcscsvcscs/guttracker/internal/locale"
	"github.com/vcscsvcscs/guttracker/pkg/model"
)

const (
	DailyScoreID       = "daily-health-score"
	CategoryDailyScore = "DAILY_SCORE"
	CategoryMedication = "MEDICATION_REMINDER"

	// DefaultDailyScoreHour is used when the delivery hour is out of range
	DefaultDailyScoreHour = 9
)

var levelEmoji = map[analytics.HealthScoreLevel]string{
	analytics.LevelExcellent: "🌟",
	analytics.LevelGood:      "😊",
	analytics.LevelFair:      "😐",
	analytics.LevelPoor:      "⚠️",
}

// Message is a notification ready for delivery
type Message struct {
	ID       string `json:"id"`
	Category string `json:"category"`
	Title    string `json:"title"`
	Body     string `json:"body"`
	// Hour and Minute are the local time of a repeating daily trigger
	Hour   int `json:"hour"`
	Minute int `json:"minute"`
}

// Composer renders notifications from the message catalog
type Composer struct {
	catalog *locale.Catalog
}

// NewComposer creates a Composer backed by catalog
func NewComposer(catalog *locale.Catalog) *Composer {
	return &Composer{catalog: catalog}
}

// LevelEmoji returns the emoji shown next to a score level
func LevelEmoji(level analytics.HealthScoreLevel) string {
	if e, ok := levelEmoji[level]; ok {
		return e
	}
	return levelEmoji[analytics.LevelFair]
}

// DailyScore renders yesterday's health score. The first line carries the
// score and level, the second the translated details when there are any.
func (c *Composer) DailyScore(score analytics.HealthScore, hour, minute int, langs ...string) Message {
	tr := c.catalog.Translator(langs...)

	body := tr.T("notify.daily_score.body", map[string]any{
		"Emoji": LevelEmoji(score.Level),
		"Score": score.Score,
		"Level": tr.Level(score.Level),
	})
	if len(score.Details) > 0 {
		details := make([]string, len(score.Details))
		for i, d := range score.Details {
			details[i] = tr.Detail(d)
		}
		body += "\n" + strings.Join(details, tr.DetailSeparator())
	}

	if hour < 0 || hour > 23 {
		hour = DefaultDailyScoreHour
	}

	return Message{
		ID:       DailyScoreID,
		Category: CategoryDailyScore,
		Title:    tr.T("notify.daily_score.title", nil),
		Body:     body,
		Hour:     hour,
		Minute:   clampMinute(minute),
	}
}

// MedicationReminder renders the reminder for one medication
func (c *Composer) MedicationReminder(med model.Medication, langs ...string) Message {
	tr := c.catalog.Translator(langs...)

	return Message{
		ID:       "med-" + med.ID,
		Category: CategoryMedication,
		Title:    tr.T("notify.medication.title", nil),
		Body:     strings.TrimSpace(med.Name + " " + med.Dosage),
		Hour:     min(max(med.ReminderHour, 0), 23),
		Minute:   clampMinute(med.ReminderMinute),
	}
}

// MedicationReminders renders reminders for the active medications that
// have reminders enabled, ordered by time of day.
func (c *Composer) MedicationReminders(meds []model.Medication, langs ...string) []Message {
	reminders := []Message{}
	for _, med := range meds {
		if !med.Active || !med.ReminderEnabled {
			continue
		}
		reminders = append(reminders, c.MedicationReminder(med, langs...))
	}

	sort.SliceStable(reminders, func(i, j int) bool {
		return timeKey(reminders[i]) < timeKey(reminders[j])
	})
	return reminders
}

func timeKey(m Message) int {
	return m.Hour*60 + m.Minute
}

func clampMinute(minute int) int {
	return min(max(minute, 0), 59)
}
