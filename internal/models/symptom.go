package models

const (
	SeverityHigh   = "high"
	SeverityMedium = "medium"
	SeverityLow    = "low"
)

type CatalogSymptom struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Severity    string `json:"severity"`
	Category    string `json:"category"`
}

// DefaultSymptomCatalog returns the fixed set of symptoms the UI offers for
// selection. Free-text symptom names are still accepted on submission; the
// catalog only drives the picker.
func DefaultSymptomCatalog() []CatalogSymptom {
	return []CatalogSymptom{
		{ID: 1, Name: "Chest Pain", Description: "Pain or discomfort in the chest area", Severity: SeverityHigh, Category: "cardiac"},
		{ID: 2, Name: "Shortness of Breath", Description: "Difficulty breathing or feeling out of breath", Severity: SeverityHigh, Category: "respiratory"},
		{ID: 3, Name: "Fever", Description: "Body temperature above normal (100.4°F/38°C)", Severity: SeverityMedium, Category: "general"},
		{ID: 4, Name: "Headache", Description: "Pain in the head or neck area", Severity: SeverityLow, Category: "neurological"},
		{ID: 5, Name: "Nausea/Vomiting", Description: "Feeling sick to stomach or vomiting", Severity: SeverityMedium, Category: "gastrointestinal"},
		{ID: 6, Name: "Dizziness", Description: "Feeling lightheaded or unsteady", Severity: SeverityMedium, Category: "neurological"},
		{ID: 7, Name: "Abdominal Pain", Description: "Pain in the stomach or abdominal area", Severity: SeverityMedium, Category: "gastrointestinal"},
		{ID: 8, Name: "Fatigue", Description: "Extreme tiredness or exhaustion", Severity: SeverityLow, Category: "general"},
		{ID: 9, Name: "Cough", Description: "Persistent coughing", Severity: SeverityLow, Category: "respiratory"},
		{ID: 10, Name: "Skin Rash", Description: "Unusual skin changes or irritation", Severity: SeverityLow, Category: "dermatological"},
		{ID: 11, Name: "Joint Pain", Description: "Pain in joints or muscles", Severity: SeverityLow, Category: "musculoskeletal"},
		{ID: 12, Name: "Difficulty Swallowing", Description: "Problems swallowing food or liquids", Severity: SeverityMedium, Category: "gastrointestinal"},
	}
}
