package models

import (
	"encoding/json"
	"time"
)

// Assessment is one persisted triage submission. Records are immutable after
// creation and are never deleted by the server.
type Assessment struct {
	ID        uint            `gorm:"primaryKey"`
	UserID    uint            `gorm:"not null;index:idx_assessments_user_created"`
	Symptoms  []SymptomReport `gorm:"serializer:json"`
	Diagnosis string          `gorm:"not null"`
	CreatedAt time.Time       `gorm:"not null;index:idx_assessments_user_created"`
}

// SymptomReport is one user-submitted symptom as it arrived on the wire:
// either a bare JSON string or an object carrying at least a "name" field.
// The original value is kept verbatim so that submissions are stored and
// echoed back exactly as received; only Name feeds the rule engine.
type SymptomReport struct {
	Name string `json:"-"`

	raw json.RawMessage
}

func SymptomReportFromName(name string) SymptomReport {
	return SymptomReport{Name: name}
}

func (report *SymptomReport) UnmarshalJSON(data []byte) error {
	report.raw = append(json.RawMessage(nil), data...)
	report.Name = ""

	var name string
	if err := json.Unmarshal(data, &name); err == nil {
		report.Name = name
		return nil
	}

	var structured struct {
		Name any `json:"name"`
	}
	if err := json.Unmarshal(data, &structured); err == nil {
		if name, ok := structured.Name.(string); ok {
			report.Name = name
		}
	}

	// Non-string, non-object values keep their raw form and stay nameless;
	// the normalizer filters them out.
	return nil
}

func (report SymptomReport) MarshalJSON() ([]byte, error) {
	if len(report.raw) == 0 {
		return json.Marshal(report.Name)
	}
	return append([]byte(nil), report.raw...), nil
}
