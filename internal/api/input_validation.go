package api

import (
	"errors"
	"net/mail"
	"strings"
)

const minPasswordLength = 8

func normalizeEmail(raw string) string {
	email := strings.ToLower(strings.TrimSpace(raw))
	if email == "" {
		return ""
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return ""
	}
	return email
}

func validatePasswordStrength(password string) error {
	if len(password) < minPasswordLength {
		return errors.New("password too short")
	}
	return nil
}
