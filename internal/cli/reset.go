package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/alexpadev/trainR/internal/models"
	"github.com/alexpadev/trainR/internal/security"
	"github.com/alexpadev/trainR/internal/services"
	"github.com/fatih/color"
)

const temporaryPasswordAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz23456789"

// readPassword is swapped in tests; terminals are not available there.
var readPassword = readPasswordNoEcho

type PasswordSetter interface {
	SetPassword(ctx context.Context, email string, password string) (models.User, error)
}

type ResetPasswordOptions struct {
	Email string
	// Prompt reads the new password from Stdin without echo instead of
	// generating a temporary one.
	Prompt bool
	Stdin  *os.File
	Output io.Writer
}

func RunResetPassword(ctx context.Context, setter PasswordSetter, options ResetPasswordOptions) error {
	email := strings.TrimSpace(options.Email)
	if email == "" {
		return errors.New("email is required")
	}
	output := options.Output
	if output == nil {
		output = os.Stdout
	}

	var (
		password  string
		generated bool
		err       error
	)
	if options.Prompt {
		password, err = promptNewPassword(options.Stdin, output)
	} else {
		password, err = generateTemporaryPassword(16)
		generated = true
	}
	if err != nil {
		return err
	}

	user, err := setter.SetPassword(ctx, email, password)
	switch {
	case errors.Is(err, services.ErrUserNotFound):
		return fmt.Errorf("user %s not found", email)
	case errors.Is(err, services.ErrInvalidEmail):
		return fmt.Errorf("invalid email address %q", email)
	case errors.Is(err, services.ErrWeakPassword):
		return errors.New("password must not be blank or longer than 72 bytes")
	case err != nil:
		return fmt.Errorf("reset password: %w", err)
	}

	color.New(color.FgGreen).Fprintf(output, "Password reset for %s (%s)\n", user.Username, user.Email)
	if generated {
		fmt.Fprintf(output, "Temporary password: %s\n", password)
	}
	return nil
}

func promptNewPassword(stdin *os.File, output io.Writer) (string, error) {
	if stdin == nil {
		stdin = os.Stdin
	}

	fmt.Fprint(output, "New password: ")
	first, err := readPassword(stdin)
	fmt.Fprintln(output)
	if err != nil {
		return "", fmt.Errorf("read password: %w", err)
	}

	fmt.Fprint(output, "Repeat password: ")
	second, err := readPassword(stdin)
	fmt.Fprintln(output)
	if err != nil {
		return "", fmt.Errorf("read password: %w", err)
	}

	if string(first) != string(second) {
		return "", errors.New("passwords do not match")
	}
	return string(first), nil
}

func generateTemporaryPassword(length int) (string, error) {
	if length < 8 {
		length = 8
	}
	return security.RandomString(length, temporaryPasswordAlphabet)
}
