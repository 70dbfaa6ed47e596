package services

import (
	"errors"
	"net/mail"
	"regexp"
	"strings"
)

var (
	ErrAuthCredentialsInvalid = errors.New("auth credentials invalid")
	ErrInvalidEmail           = errors.New("invalid email")
	ErrInvalidUsername        = errors.New("invalid username")
)

const (
	minUsernameLength = 3
	maxUsernameLength = 50
	maxEmailLength    = 254
)

var usernamePattern = regexp.MustCompile(`^[\p{L}\p{N}_.\-]+$`)

func NormalizeAuthEmail(raw string) string {
	email := strings.ToLower(strings.TrimSpace(raw))
	if email == "" || len(email) > maxEmailLength {
		return ""
	}
	parsed, err := mail.ParseAddress(email)
	if err != nil || parsed.Address != email {
		return ""
	}
	return email
}

func NormalizeUsername(raw string) (string, error) {
	username := strings.TrimSpace(raw)
	length := len([]rune(username))
	if length < minUsernameLength || length > maxUsernameLength {
		return "", ErrInvalidUsername
	}
	if !usernamePattern.MatchString(username) {
		return "", ErrInvalidUsername
	}
	return username, nil
}

func NormalizeCredentialsInput(emailRaw string, passwordRaw string) (string, string, error) {
	email := NormalizeAuthEmail(emailRaw)
	password := strings.TrimSpace(passwordRaw)
	if email == "" || password == "" {
		return "", "", ErrAuthCredentialsInvalid
	}
	return email, password, nil
}
