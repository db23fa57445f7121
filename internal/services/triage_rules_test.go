package services

import "testing"

func TestResolveDiagnosisCombinationRules(t *testing.T) {
	cases := []struct {
		name      string
		symptoms  []string
		diagnosis string
	}{
		{"heart condition", []string{"chest pain", "shortness of breath"}, "Possible Heart Condition - Seek immediate medical attention"},
		{"meningitis", []string{"severe headache", "neck stiffness"}, "Possible Meningitis - Seek immediate medical attention"},
		{"flu", []string{"fever", "cough", "fatigue"}, "Possible Flu - Rest and stay hydrated"},
		{"strep throat", []string{"fever", "sore throat", "swollen glands"}, "Possible Strep Throat - Consider antibiotic treatment"},
		{"common cold", []string{"runny nose", "sneezing", "cough"}, "Common Cold - Rest and fluids recommended"},
		{"gastroenteritis", []string{"nausea", "vomiting", "diarrhea"}, "Gastroenteritis - Stay hydrated and rest"},
		{"viral infection", []string{"headache", "muscle aches", "fatigue"}, "Possible Viral Infection - Rest and monitor symptoms"},
	}

	for _, testCase := range cases {
		t.Run(testCase.name, func(t *testing.T) {
			diagnosis := ResolveDiagnosis(NewSymptomSet(testCase.symptoms))
			if diagnosis != testCase.diagnosis {
				t.Fatalf("expected %q, got %q", testCase.diagnosis, diagnosis)
			}
		})
	}
}

func TestResolveDiagnosisSingleSymptomRules(t *testing.T) {
	cases := []struct {
		symptom   string
		diagnosis string
	}{
		{"fever", "Fever - Monitor temperature and stay hydrated"},
		{"headache", "Headache - Rest and consider over-the-counter pain relief"},
		{"cough", "Cough - Stay hydrated and rest"},
		{"sore throat", "Sore Throat - Gargle with warm salt water"},
		{"fatigue", "Fatigue - Ensure adequate rest and nutrition"},
		{"chest pain", "Chest Pain - Seek medical attention promptly"},
		{"shortness of breath", "Breathing Difficulty - Seek medical attention"},
		{"abdominal pain", "Abdominal Pain - Monitor and consider medical evaluation"},
	}

	for _, testCase := range cases {
		t.Run(testCase.symptom, func(t *testing.T) {
			diagnosis := ResolveDiagnosis(NewSymptomSet([]string{testCase.symptom}))
			if diagnosis != testCase.diagnosis {
				t.Fatalf("expected %q, got %q", testCase.diagnosis, diagnosis)
			}
		})
	}
}

func TestResolveDiagnosisCombinationBeatsSingleSymptomRule(t *testing.T) {
	// Both the cardiac combination and the single chest pain rule match this
	// set; the combination is declared first and must win.
	diagnosis := ResolveDiagnosis(NewSymptomSet([]string{"chest pain", "shortness of breath"}))
	if diagnosis != "Possible Heart Condition - Seek immediate medical attention" {
		t.Fatalf("expected heart condition diagnosis, got %q", diagnosis)
	}
}

func TestResolveDiagnosisIgnoresSymptomOrder(t *testing.T) {
	first := ResolveDiagnosis(NewSymptomSet([]string{"fever", "cough", "fatigue"}))
	second := ResolveDiagnosis(NewSymptomSet([]string{"fatigue", "fever", "cough"}))
	if first != second {
		t.Fatalf("expected identical diagnoses, got %q and %q", first, second)
	}
}

func TestResolveDiagnosisExtraSymptomsStillMatch(t *testing.T) {
	// Subset containment, not equality: extra symptoms do not break a rule.
	diagnosis := ResolveDiagnosis(NewSymptomSet([]string{"dizziness", "fever", "cough", "fatigue"}))
	if diagnosis != "Possible Flu - Rest and stay hydrated" {
		t.Fatalf("expected flu diagnosis, got %q", diagnosis)
	}
}

func TestResolveDiagnosisFallsBackToDefault(t *testing.T) {
	diagnosis := ResolveDiagnosis(NewSymptomSet([]string{"dizziness"}))
	if diagnosis != DefaultDiagnosis {
		t.Fatalf("expected default diagnosis, got %q", diagnosis)
	}

	if ResolveDiagnosis(NewSymptomSet(nil)) != DefaultDiagnosis {
		t.Fatal("expected default diagnosis for empty set")
	}
}

func TestResolveDiagnosisAlwaysReturnsKnownText(t *testing.T) {
	known := map[string]bool{DefaultDiagnosis: true}
	for _, rule := range diagnosisRules {
		known[rule.diagnosis] = true
	}
	if len(known) != 16 {
		t.Fatalf("expected 16 distinct outcomes, got %d", len(known))
	}

	sets := [][]string{
		nil,
		{"dizziness"},
		{"fever"},
		{"fever", "sore throat", "swollen glands"},
		{"chest pain", "shortness of breath", "fever", "headache"},
		{"skin rash", "joint pain"},
	}
	for _, symptoms := range sets {
		diagnosis := ResolveDiagnosis(NewSymptomSet(symptoms))
		if diagnosis == "" {
			t.Fatalf("empty diagnosis for %v", symptoms)
		}
		if !known[diagnosis] {
			t.Fatalf("unexpected diagnosis %q for %v", diagnosis, symptoms)
		}
	}
}
