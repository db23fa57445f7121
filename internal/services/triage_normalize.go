package services

import (
	"strings"

	"github.com/triagex/triagex/internal/models"
)

// NormalizeSymptomNames extracts the matchable names from a submitted report
// collection: entries without a usable name are dropped, the rest are trimmed
// and lower-cased. Input order is preserved and duplicates are kept.
func NormalizeSymptomNames(reports []models.SymptomReport) []string {
	names := make([]string, 0, len(reports))
	for _, report := range reports {
		name := strings.TrimSpace(report.Name)
		if name == "" {
			continue
		}
		names = append(names, strings.ToLower(name))
	}
	return names
}

// NewSymptomSet builds the membership set rule matching runs against.
func NewSymptomSet(names []string) map[string]bool {
	set := make(map[string]bool, len(names))
	for _, name := range names {
		set[name] = true
	}
	return set
}
