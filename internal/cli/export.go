package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/vcscsvcscs/guttracker/internal/analytics"
	"github.com/vcscsvcscs/guttracker/pkg/model"
)

// Export is a user's data as written by the app's JSON export
type Export struct {
	Medications    []model.Medication    `json:"medications"`
	BowelMovements []model.BowelRecord   `json:"bowel_movements"`
	Symptoms       []model.SymptomRecord `json:"symptoms"`
	MedicationLogs []model.MedicationLog `json:"medication_logs"`
}

// ReadExport decodes an export from path, or from stdin when path is "-"
func ReadExport(path string, stdin io.Reader) (*Export, error) {
	var r io.Reader = stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("failed to open export: %w", err)
		}
		defer f.Close()
		r = f
	}

	var exp Export
	if err := json.NewDecoder(r).Decode(&exp); err != nil {
		return nil, fmt.Errorf("failed to decode export: %w", err)
	}

	for i := range exp.Symptoms {
		if exp.Symptoms[i].Mood == 0 {
			exp.Symptoms[i].Mood = model.DefaultMood
		}
	}
	return &exp, nil
}

// ActiveMedications returns the medications still being taken
func (e *Export) ActiveMedications() []model.Medication {
	var active []model.Medication
	for _, m := range e.Medications {
		if m.Active {
			active = append(active, m)
		}
	}
	return active
}

// Records returns the export as analytics input
func (e *Export) Records() analytics.Records {
	return analytics.Records{
		Bowel:             e.BowelMovements,
		Symptoms:          e.Symptoms,
		MedicationLogs:    e.MedicationLogs,
		ActiveMedications: len(e.ActiveMedications()),
	}
}
