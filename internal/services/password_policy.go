package services

import (
	"errors"
	"strings"
)

var ErrWeakPassword = errors.New("weak password")

// bcrypt ignores everything past 72 bytes.
const maxPasswordBytes = 72

func ValidatePasswordStrength(password string) error {
	if strings.TrimSpace(password) == "" {
		return ErrWeakPassword
	}
	if len(password) > maxPasswordBytes {
		return ErrWeakPassword
	}
	return nil
}
