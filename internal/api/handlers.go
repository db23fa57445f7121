package api

import (
	"time"

	"github.com/triagex/triagex/internal/db"
	"github.com/triagex/triagex/internal/models"
	"github.com/triagex/triagex/internal/services"
	"gorm.io/gorm"
)

const authTokenTTL = 7 * 24 * time.Hour

type Handler struct {
	db        *gorm.DB
	secretKey []byte

	repositories  *db.Repositories
	triageService *services.TriageService
}

type credentialsInput struct {
	Name     string `json:"name" form:"name"`
	Email    string `json:"email" form:"email"`
	Password string `json:"password" form:"password"`
}

type triageInput struct {
	Symptoms []models.SymptomReport `json:"symptoms"`
}

func NewHandler(database *gorm.DB, secret string) *Handler {
	repositories := db.NewRepositories(database)
	return &Handler{
		db:            database,
		secretKey:     []byte(secret),
		repositories:  repositories,
		triageService: services.NewTriageService(repositories.Assessments),
	}
}
