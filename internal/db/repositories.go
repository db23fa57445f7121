package db

import "gorm.io/gorm"

type Repositories struct {
	Users       *UserRepository
	Assessments *AssessmentRepository
}

func NewRepositories(database *gorm.DB) *Repositories {
	return &Repositories{
		Users:       NewUserRepository(database),
		Assessments: NewAssessmentRepository(database),
	}
}
