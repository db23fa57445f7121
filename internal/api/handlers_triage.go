package api

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/triagex/triagex/internal/services"
)

func (handler *Handler) SubmitTriage(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "Authorization denied")
	}

	input := triageInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "Please provide a valid symptoms array")
	}

	result, err := handler.triageService.Submit(user.ID, input.Symptoms)
	switch {
	case errors.Is(err, services.ErrEmptySubmission):
		return apiError(c, fiber.StatusBadRequest, "Please provide a valid symptoms array")
	case errors.Is(err, services.ErrNoValidSymptoms):
		return apiError(c, fiber.StatusBadRequest, "Please provide at least one valid symptom")
	case err != nil:
		log.Printf("triage submit failed for user %d: %v", user.ID, err)
		return apiError(c, fiber.StatusInternalServerError, "Server error during symptom analysis")
	}

	return c.Status(fiber.StatusCreated).JSON(result)
}

func (handler *Handler) TriageHistory(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "Authorization denied")
	}

	history, err := handler.triageService.History(user.ID)
	if err != nil {
		log.Printf("triage history failed for user %d: %v", user.ID, err)
		return apiError(c, fiber.StatusInternalServerError, "Server error while retrieving triage history")
	}

	return apiSuccess(c, fiber.StatusOK, "Triage history retrieved successfully", fiber.Map{
		"history": history,
		"count":   len(history),
	})
}

func (handler *Handler) TriageResult(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "Authorization denied")
	}

	// A malformed id cannot name an existing record; report it the same way as
	// a missing one so the response never hints at why the lookup failed.
	assessmentID, err := c.ParamsInt("id")
	if err != nil || assessmentID <= 0 {
		return apiError(c, fiber.StatusNotFound, "Triage result not found")
	}

	result, err := handler.triageService.Result(user.ID, uint(assessmentID))
	if errors.Is(err, services.ErrAssessmentNotFound) {
		return apiError(c, fiber.StatusNotFound, "Triage result not found")
	}
	if err != nil {
		log.Printf("triage result failed for user %d: %v", user.ID, err)
		return apiError(c, fiber.StatusInternalServerError, "Server error while retrieving triage result")
	}

	return c.JSON(result)
}
