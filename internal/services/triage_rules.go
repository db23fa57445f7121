package services

// DefaultDiagnosis is returned when no rule matches the submitted symptoms.
const DefaultDiagnosis = "General Symptoms - Consider consulting a healthcare provider for proper evaluation"

type diagnosisRule struct {
	required  []string
	diagnosis string
}

// diagnosisRules is evaluated top to bottom; the first rule whose required
// symptoms are all present wins. Combination rules come before single-symptom
// rules, otherwise a specific match like the cardiac combination would be
// shadowed by the generic chest pain rule. The table is built once and never
// mutated.
var diagnosisRules = []diagnosisRule{
	{required: []string{"chest pain", "shortness of breath"}, diagnosis: "Possible Heart Condition - Seek immediate medical attention"},
	{required: []string{"severe headache", "neck stiffness"}, diagnosis: "Possible Meningitis - Seek immediate medical attention"},
	{required: []string{"fever", "cough", "fatigue"}, diagnosis: "Possible Flu - Rest and stay hydrated"},
	{required: []string{"fever", "sore throat", "swollen glands"}, diagnosis: "Possible Strep Throat - Consider antibiotic treatment"},
	{required: []string{"runny nose", "sneezing", "cough"}, diagnosis: "Common Cold - Rest and fluids recommended"},
	{required: []string{"nausea", "vomiting", "diarrhea"}, diagnosis: "Gastroenteritis - Stay hydrated and rest"},
	{required: []string{"headache", "muscle aches", "fatigue"}, diagnosis: "Possible Viral Infection - Rest and monitor symptoms"},
	{required: []string{"fever"}, diagnosis: "Fever - Monitor temperature and stay hydrated"},
	{required: []string{"headache"}, diagnosis: "Headache - Rest and consider over-the-counter pain relief"},
	{required: []string{"cough"}, diagnosis: "Cough - Stay hydrated and rest"},
	{required: []string{"sore throat"}, diagnosis: "Sore Throat - Gargle with warm salt water"},
	{required: []string{"fatigue"}, diagnosis: "Fatigue - Ensure adequate rest and nutrition"},
	{required: []string{"chest pain"}, diagnosis: "Chest Pain - Seek medical attention promptly"},
	{required: []string{"shortness of breath"}, diagnosis: "Breathing Difficulty - Seek medical attention"},
	{required: []string{"abdominal pain"}, diagnosis: "Abdominal Pain - Monitor and consider medical evaluation"},
}

// ResolveDiagnosis maps a normalized symptom set to a diagnosis text. It is
// total: any input, including an empty set, falls through to DefaultDiagnosis.
func ResolveDiagnosis(symptoms map[string]bool) string {
	for _, rule := range diagnosisRules {
		if ruleMatches(rule, symptoms) {
			return rule.diagnosis
		}
	}
	return DefaultDiagnosis
}

func ruleMatches(rule diagnosisRule, symptoms map[string]bool) bool {
	for _, required := range rule.required {
		if !symptoms[required] {
			return false
		}
	}
	return true
}
