package db

import (
	"context"

	"github.com/alexpadev/trainR/internal/models"
	"gorm.io/gorm"
)

type UserRepository struct {
	database *gorm.DB
}

func NewUserRepository(database *gorm.DB) *UserRepository {
	return &UserRepository{database: database}
}

func (repo *UserRepository) FindByID(ctx context.Context, userID uint) (models.User, error) {
	var user models.User
	if err := repo.database.WithContext(ctx).First(&user, userID).Error; err != nil {
		return models.User{}, translateError(err, nil, nil)
	}
	return user, nil
}

func (repo *UserRepository) FindByEmail(ctx context.Context, email string) (models.User, error) {
	var user models.User
	if err := repo.database.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		return models.User{}, translateError(err, nil, nil)
	}
	return user, nil
}

func (repo *UserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	return repo.exists(ctx, "email = ?", email)
}

func (repo *UserRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	return repo.exists(ctx, "username = ?", username)
}

func (repo *UserRepository) exists(ctx context.Context, query string, value string) (bool, error) {
	var matched int64
	if err := repo.database.WithContext(ctx).Model(&models.User{}).Where(query, value).Count(&matched).Error; err != nil {
		return false, err
	}
	return matched > 0, nil
}

// Create inserts the user. A unique violation that slipped past the caller's
// pre-checks is reported as ErrDuplicate, refined when the column is known.
func (repo *UserRepository) Create(ctx context.Context, user *models.User) error {
	err := repo.database.WithContext(ctx).Create(user).Error
	if err == nil {
		return nil
	}
	if !isUniqueViolation(err) {
		return err
	}
	if taken, lookupErr := repo.ExistsByEmail(ctx, user.Email); lookupErr == nil && taken {
		return ErrDuplicateEmail
	}
	if taken, lookupErr := repo.ExistsByUsername(ctx, user.Username); lookupErr == nil && taken {
		return ErrDuplicateUsername
	}
	return translateError(err, nil, nil)
}

func (repo *UserRepository) UpdatePassword(ctx context.Context, userID uint, passwordHash string) error {
	result := repo.database.WithContext(ctx).Model(&models.User{}).Where("id = ?", userID).Update("password_hash", passwordHash)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
