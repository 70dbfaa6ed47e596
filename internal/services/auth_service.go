package services

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/alexpadev/trainR/internal/db"
	"github.com/alexpadev/trainR/internal/models"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailTaken         = errors.New("email already registered")
	ErrUsernameTaken      = errors.New("username already taken")
	ErrUserNotFound       = errors.New("user not found")
)

type AuthUserRepository interface {
	FindByID(ctx context.Context, userID uint) (models.User, error)
	FindByEmail(ctx context.Context, email string) (models.User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	ExistsByUsername(ctx context.Context, username string) (bool, error)
	Create(ctx context.Context, user *models.User) error
	UpdatePassword(ctx context.Context, userID uint, passwordHash string) error
}

type RegisterInput struct {
	Username string
	Email    string
	Password string
}

type Session struct {
	Token     string
	ExpiresAt time.Time
	User      models.User
}

type AuthService struct {
	users    AuthUserRepository
	tokens   *TokenService
	hashCost int
}

func NewAuthService(users AuthUserRepository, tokens *TokenService) *AuthService {
	return &AuthService{users: users, tokens: tokens, hashCost: bcrypt.DefaultCost}
}

func (service *AuthService) Register(ctx context.Context, input RegisterInput) (Session, error) {
	username, err := NormalizeUsername(input.Username)
	if err != nil {
		return Session{}, err
	}
	email := NormalizeAuthEmail(input.Email)
	if email == "" {
		return Session{}, ErrInvalidEmail
	}
	if err := ValidatePasswordStrength(input.Password); err != nil {
		return Session{}, err
	}

	emailTaken, err := service.users.ExistsByEmail(ctx, email)
	if err != nil {
		return Session{}, fmt.Errorf("check email: %w", err)
	}
	if emailTaken {
		return Session{}, ErrEmailTaken
	}
	usernameTaken, err := service.users.ExistsByUsername(ctx, username)
	if err != nil {
		return Session{}, fmt.Errorf("check username: %w", err)
	}
	if usernameTaken {
		return Session{}, ErrUsernameTaken
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(input.Password), service.hashCost)
	if err != nil {
		return Session{}, fmt.Errorf("hash password: %w", err)
	}

	user := models.User{
		Username:     username,
		Email:        email,
		PasswordHash: string(passwordHash),
		CreatedAt:    time.Now().UTC(),
	}
	if err := service.users.Create(ctx, &user); err != nil {
		switch {
		case errors.Is(err, db.ErrDuplicateEmail):
			return Session{}, ErrEmailTaken
		case errors.Is(err, db.ErrDuplicateUsername):
			return Session{}, ErrUsernameTaken
		case errors.Is(err, db.ErrDuplicate):
			return Session{}, ErrEmailTaken
		}
		return Session{}, fmt.Errorf("create user: %w", err)
	}

	return service.issueSession(user)
}

// Authenticate answers ErrInvalidCredentials for both unknown emails and
// wrong passwords, spending a bcrypt comparison in either case.
func (service *AuthService) Authenticate(ctx context.Context, emailRaw string, password string) (Session, error) {
	email, password, err := NormalizeCredentialsInput(emailRaw, password)
	if err != nil {
		return Session{}, ErrInvalidCredentials
	}

	user, err := service.users.FindByEmail(ctx, email)
	if errors.Is(err, db.ErrNotFound) {
		_ = bcrypt.CompareHashAndPassword(dummyPasswordHash(), []byte(password))
		return Session{}, ErrInvalidCredentials
	}
	if err != nil {
		return Session{}, fmt.Errorf("load user: %w", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return Session{}, ErrInvalidCredentials
	}

	return service.issueSession(user)
}

// ResolveToken verifies a bearer token and loads the user it names.
func (service *AuthService) ResolveToken(ctx context.Context, rawToken string) (models.User, error) {
	claims, err := service.tokens.Verify(rawToken)
	if err != nil {
		return models.User{}, err
	}

	user, err := service.users.FindByID(ctx, claims.UserID)
	if errors.Is(err, db.ErrNotFound) {
		return models.User{}, ErrUserNotFound
	}
	if err != nil {
		return models.User{}, fmt.Errorf("load user: %w", err)
	}
	return user, nil
}

// SetPassword replaces the stored hash for the user with email.
func (service *AuthService) SetPassword(ctx context.Context, emailRaw string, password string) (models.User, error) {
	email := NormalizeAuthEmail(emailRaw)
	if email == "" {
		return models.User{}, ErrInvalidEmail
	}
	if err := ValidatePasswordStrength(password); err != nil {
		return models.User{}, err
	}

	user, err := service.users.FindByEmail(ctx, email)
	if errors.Is(err, db.ErrNotFound) {
		return models.User{}, ErrUserNotFound
	}
	if err != nil {
		return models.User{}, fmt.Errorf("load user: %w", err)
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(password), service.hashCost)
	if err != nil {
		return models.User{}, fmt.Errorf("hash password: %w", err)
	}
	if err := service.users.UpdatePassword(ctx, user.ID, string(passwordHash)); err != nil {
		return models.User{}, fmt.Errorf("update password: %w", err)
	}
	user.PasswordHash = string(passwordHash)
	return user, nil
}

func (service *AuthService) issueSession(user models.User) (Session, error) {
	token, expiresAt, err := service.tokens.Issue(user)
	if err != nil {
		return Session{}, fmt.Errorf("issue token: %w", err)
	}
	return Session{Token: token, ExpiresAt: expiresAt, User: user}, nil
}

var (
	dummyHashOnce  sync.Once
	dummyHashValue []byte
)

func dummyPasswordHash() []byte {
	dummyHashOnce.Do(func() {
		dummyHashValue, _ = bcrypt.GenerateFromPassword([]byte("trainr-unknown-account"), bcrypt.DefaultCost)
	})
	return dummyHashValue
}
