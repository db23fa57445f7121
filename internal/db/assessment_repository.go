package db

import (
	"github.com/triagex/triagex/internal/models"
	"gorm.io/gorm"
)

type AssessmentRepository struct {
	database *gorm.DB
}

func NewAssessmentRepository(database *gorm.DB) *AssessmentRepository {
	return &AssessmentRepository{database: database}
}

func (repo *AssessmentRepository) Create(assessment *models.Assessment) error {
	return repo.database.Create(assessment).Error
}

// ListByUser returns the user's assessments newest first. Ties on the
// timestamp fall back to id so ordering stays stable for rapid submissions.
func (repo *AssessmentRepository) ListByUser(userID uint) ([]models.Assessment, error) {
	assessments := make([]models.Assessment, 0)
	if err := repo.database.
		Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		Find(&assessments).Error; err != nil {
		return nil, err
	}
	return assessments, nil
}

func (repo *AssessmentRepository) FindByIDForUser(assessmentID uint, userID uint) (models.Assessment, bool, error) {
	assessment := models.Assessment{}
	result := repo.database.
		Where("id = ? AND user_id = ?", assessmentID, userID).
		Limit(1).
		Find(&assessment)
	if result.Error != nil {
		return models.Assessment{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.Assessment{}, false, nil
	}
	return assessment, true, nil
}
