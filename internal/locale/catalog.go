// Package locale holds the message catalog for user-facing text such as
// notification bodies and exported reports.
package locale

import (
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"strconv"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"

	"github.com/vcscsvcscs/guttracker/internal/analytics"
)

//go:embed locales/*.json
var localeFS embed.FS

// DefaultLanguage is used when no requested language is supported
var DefaultLanguage = language.English

var detailIDs = map[string]string{
	analytics.DetailNoMovement:          "detail.no_movement",
	analytics.DetailFrequentMovements:   "detail.frequent_movements",
	analytics.DetailAboveNormal:         "detail.above_normal",
	analytics.DetailBloodPresent:        "detail.blood_present",
	analytics.DetailFever:               "detail.fever",
	analytics.DetailSymptomsImproving:   "detail.symptoms_improving",
	analytics.DetailSymptomsWorsening:   "detail.symptoms_worsening",
	analytics.DetailSymptomsNotRecorded: "detail.symptoms_not_recorded",
	analytics.DetailMedicationMissed:    "detail.medication_missed",
}

// Catalog is the loaded set of translations
type Catalog struct {
	bundle *i18n.Bundle
}

// NewCatalog loads the embedded message files
func NewCatalog() (*Catalog, error) {
	bundle := i18n.NewBundle(DefaultLanguage)
	bundle.RegisterUnmarshalFunc("json", json.Unmarshal)

	files, err := fs.Glob(localeFS, "locales/*.json")
	if err != nil {
		return nil, fmt.Errorf("failed to list message files: %w", err)
	}
	for _, file := range files {
		if _, err := bundle.LoadMessageFileFS(localeFS, file); err != nil {
			return nil, fmt.Errorf("failed to load message file %s: %w", file, err)
		}
	}

	return &Catalog{bundle: bundle}, nil
}

// Languages returns the languages with a message file
func (c *Catalog) Languages() []language.Tag {
	return c.bundle.LanguageTags()
}

// Translator returns a Translator for the first supported language in
// langs. Each entry may be a tag or an Accept-Language header value.
func (c *Catalog) Translator(langs ...string) *Translator {
	return &Translator{localizer: i18n.NewLocalizer(c.bundle, langs...)}
}

// Translator renders catalog messages in one language
type Translator struct {
	localizer *i18n.Localizer
}

// T renders message id with data. Unknown ids render as the id itself.
func (t *Translator) T(id string, data map[string]any) string {
	msg, err := t.localizer.Localize(&i18n.LocalizeConfig{
		MessageID:    id,
		TemplateData: data,
	})
	if err != nil && msg == "" {
		return id
	}
	return msg
}

// Level names a health score level
func (t *Translator) Level(level analytics.HealthScoreLevel) string {
	return t.T("level."+string(level), nil)
}

// Trend names a trend direction
func (t *Translator) Trend(trend analytics.Trend) string {
	return t.T("trend."+string(trend), nil)
}

// Severity names a daily severity level
func (t *Translator) Severity(level analytics.SeverityLevel) string {
	return t.T("severity."+string(level), nil)
}

// Bristol names a Bristol stool type
func (t *Translator) Bristol(bristolType int) string {
	return t.T("bristol."+strconv.Itoa(bristolType), nil)
}

// Detail translates a health score detail. Details without a translation
// are returned unchanged.
func (t *Translator) Detail(detail string) string {
	id, ok := detailIDs[detail]
	if !ok {
		return detail
	}
	return t.T(id, nil)
}

// DetailSeparator joins translated details
func (t *Translator) DetailSeparator() string {
	return t.T("detail.separator", nil)
}
