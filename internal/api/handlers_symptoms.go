package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/triagex/triagex/internal/models"
)

func (handler *Handler) SymptomCatalog(c *fiber.Ctx) error {
	catalog := models.DefaultSymptomCatalog()
	return apiSuccess(c, fiber.StatusOK, "Symptom catalog retrieved successfully", fiber.Map{
		"symptoms": catalog,
		"count":    len(catalog),
	})
}
