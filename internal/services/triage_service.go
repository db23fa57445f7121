package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/triagex/triagex/internal/models"
)

var (
	ErrEmptySubmission    = errors.New("no symptoms submitted")
	ErrNoValidSymptoms    = errors.New("no valid symptom names")
	ErrAssessmentNotFound = errors.New("assessment not found")
)

type AssessmentStore interface {
	Create(assessment *models.Assessment) error
	ListByUser(userID uint) ([]models.Assessment, error)
	FindByIDForUser(assessmentID uint, userID uint) (models.Assessment, bool, error)
}

type Recommendation struct {
	Message string `json:"message"`
}

// AssessmentResult is the response shape for one assessment. Priority is never
// persisted; it is recomputed from the stored diagnosis text on every read.
type AssessmentResult struct {
	ID             uint                   `json:"id"`
	Symptoms       []models.SymptomReport `json:"symptoms"`
	Priority       string                 `json:"priority"`
	Recommendation Recommendation         `json:"recommendation"`
	CreatedAt      time.Time              `json:"createdAt"`
}

type TriageService struct {
	assessments AssessmentStore
}

func NewTriageService(assessments AssessmentStore) *TriageService {
	return &TriageService{assessments: assessments}
}

// Submit runs the full pipeline for one submission: validate, normalize,
// resolve, classify, persist. The original report collection is stored
// verbatim; only the normalized names feed rule matching.
func (service *TriageService) Submit(userID uint, reports []models.SymptomReport) (AssessmentResult, error) {
	if len(reports) == 0 {
		return AssessmentResult{}, ErrEmptySubmission
	}

	names := NormalizeSymptomNames(reports)
	if len(names) == 0 {
		return AssessmentResult{}, ErrNoValidSymptoms
	}

	diagnosis := ResolveDiagnosis(NewSymptomSet(names))

	assessment := models.Assessment{
		UserID:    userID,
		Symptoms:  reports,
		Diagnosis: diagnosis,
		CreatedAt: time.Now().UTC(),
	}
	if err := service.assessments.Create(&assessment); err != nil {
		return AssessmentResult{}, fmt.Errorf("create assessment: %w", err)
	}

	return resultFromAssessment(assessment), nil
}

// History returns every assessment for the user, newest first.
func (service *TriageService) History(userID uint) ([]AssessmentResult, error) {
	assessments, err := service.assessments.ListByUser(userID)
	if err != nil {
		return nil, fmt.Errorf("list assessments: %w", err)
	}

	results := make([]AssessmentResult, 0, len(assessments))
	for _, assessment := range assessments {
		results = append(results, resultFromAssessment(assessment))
	}
	return results, nil
}

// Result loads one assessment scoped to the user. A record that exists but
// belongs to someone else reports the same ErrAssessmentNotFound as a record
// that does not exist.
func (service *TriageService) Result(userID uint, assessmentID uint) (AssessmentResult, error) {
	assessment, found, err := service.assessments.FindByIDForUser(assessmentID, userID)
	if err != nil {
		return AssessmentResult{}, fmt.Errorf("find assessment: %w", err)
	}
	if !found {
		return AssessmentResult{}, ErrAssessmentNotFound
	}
	return resultFromAssessment(assessment), nil
}

func resultFromAssessment(assessment models.Assessment) AssessmentResult {
	return AssessmentResult{
		ID:             assessment.ID,
		Symptoms:       assessment.Symptoms,
		Priority:       PriorityFromDiagnosis(assessment.Diagnosis),
		Recommendation: Recommendation{Message: assessment.Diagnosis},
		CreatedAt:      assessment.CreatedAt,
	}
}
