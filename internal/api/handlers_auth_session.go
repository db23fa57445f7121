package api

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/triagex/triagex/internal/models"
	"golang.org/x/crypto/bcrypt"
)

func (handler *Handler) Register(c *fiber.Ctx) error {
	credentials := credentialsInput{}
	if err := c.BodyParser(&credentials); err != nil {
		return apiError(c, fiber.StatusBadRequest, "Please provide name, email and password")
	}

	email := normalizeEmail(credentials.Email)
	if email == "" {
		return apiError(c, fiber.StatusBadRequest, "Please provide a valid email address")
	}
	if err := validatePasswordStrength(credentials.Password); err != nil {
		return apiError(c, fiber.StatusBadRequest, "Password must be at least 8 characters")
	}

	exists, err := handler.repositories.Users.ExistsByNormalizedEmail(email)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "Server error during registration")
	}
	if exists {
		return apiError(c, fiber.StatusConflict, "Email is already registered")
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(credentials.Password), bcrypt.DefaultCost)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "Server error during registration")
	}

	user := models.User{
		Name:         strings.TrimSpace(credentials.Name),
		Email:        email,
		PasswordHash: string(passwordHash),
		CreatedAt:    time.Now().UTC(),
	}
	if err := handler.repositories.Users.Create(&user); err != nil {
		return apiError(c, fiber.StatusConflict, "Email is already registered")
	}

	token, err := handler.buildAuthToken(user.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "Failed to create session")
	}

	return apiSuccess(c, fiber.StatusCreated, "Registration successful", fiber.Map{
		"user":  publicUser(&user),
		"token": token,
	})
}

func (handler *Handler) Login(c *fiber.Ctx) error {
	credentials := credentialsInput{}
	if err := c.BodyParser(&credentials); err != nil {
		return apiError(c, fiber.StatusBadRequest, "Please provide email and password")
	}

	email := normalizeEmail(credentials.Email)
	if email == "" || credentials.Password == "" {
		return apiError(c, fiber.StatusUnauthorized, "Invalid credentials")
	}

	user, err := handler.repositories.Users.FindByNormalizedEmail(email)
	if err != nil {
		return apiError(c, fiber.StatusUnauthorized, "Invalid credentials")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(credentials.Password)); err != nil {
		return apiError(c, fiber.StatusUnauthorized, "Invalid credentials")
	}

	token, err := handler.buildAuthToken(user.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "Failed to create session")
	}

	return apiSuccess(c, fiber.StatusOK, "Login successful", fiber.Map{
		"user":  publicUser(&user),
		"token": token,
	})
}

func (handler *Handler) Me(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "Authorization denied")
	}
	return apiSuccess(c, fiber.StatusOK, "Current user", fiber.Map{
		"user": publicUser(user),
	})
}
