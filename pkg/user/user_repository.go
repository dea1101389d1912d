package user

import (
	"CookShare-Backend/domain"
	"CookShare-Backend/entities"
	"context"
	"errors"

	"gorm.io/gorm"
)

type (
	UserRepository interface {
		CreateUser(ctx context.Context, user *entities.User) error
		GetUserByID(ctx context.Context, userID uint) (*entities.User, error)
		GetUserByPhone(ctx context.Context, phone string) (*entities.User, error)
		GetUserByIdentifier(ctx context.Context, identifier string) (*entities.User, error)
		UpdatePassword(ctx context.Context, userID uint, passwordHash string) error
		GetViewHistory(ctx context.Context, userID uint) ([]domain.ViewHistoryItem, error)
	}

	userRepository struct {
		db *gorm.DB
	}
)

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) CreateUser(ctx context.Context, user *entities.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

func (r *userRepository) GetUserByID(ctx context.Context, userID uint) (*entities.User, error) {
	var user entities.User
	err := r.db.WithContext(ctx).First(&user, "id = ?", userID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) GetUserByPhone(ctx context.Context, phone string) (*entities.User, error) {
	var user entities.User
	err := r.db.WithContext(ctx).First(&user, "phone = ?", phone).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetUserByIdentifier accepts either the phone number or the email address.
func (r *userRepository) GetUserByIdentifier(ctx context.Context, identifier string) (*entities.User, error) {
	var user entities.User
	err := r.db.WithContext(ctx).
		Where("phone = ? OR email = ?", identifier, identifier).
		First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) UpdatePassword(ctx context.Context, userID uint, passwordHash string) error {
	result := r.db.WithContext(ctx).Model(&entities.User{}).
		Where("id = ?", userID).
		UpdateColumn("password_hash", passwordHash)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

func (r *userRepository) GetViewHistory(ctx context.Context, userID uint) ([]domain.ViewHistoryItem, error) {
	var items []domain.ViewHistoryItem
	err := r.db.WithContext(ctx).Model(&entities.ViewHistory{}).
		Select("recipe_id, viewed_at").
		Where("user_id = ?", userID).
		Order("viewed_at DESC").
		Scan(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}
