package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"roomchat/backend/internal/domain"
)

type UserRepo struct {
	db *gorm.DB
}

func NewUserRepo(db *gorm.DB) *UserRepo {
	return &UserRepo{db: db}
}

func (r *UserRepo) Add(ctx context.Context, user *domain.User) error {
	model := UserModel{
		ID:           user.ID(),
		Email:        user.Email().String(),
		PasswordHash: user.Password().Hash(),
		IsActive:     user.IsActive(),
		IsOnline:     user.IsOnline(),
		CreatedAt:    user.CreatedAt(),
	}
	if err := r.db.WithContext(ctx).Create(&model).Error; err != nil {
		return fmt.Errorf("failed to insert user: %w", err)
	}
	return nil
}

func (r *UserRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	var model UserModel
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&model).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find user by id: %w", err)
	}
	return restoreUser(&model)
}

func (r *UserRepo) GetByEmail(ctx context.Context, email domain.Email) (*domain.User, error) {
	var model UserModel
	err := r.db.WithContext(ctx).Where("email = ?", email.String()).First(&model).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find user by email: %w", err)
	}
	return restoreUser(&model)
}

func (r *UserRepo) ExistsByEmail(ctx context.Context, email domain.Email) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&UserModel{}).
		Where("email = ?", email.String()).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check email existence: %w", err)
	}
	return count > 0, nil
}

// Update persists mutated account state (activation, presence mirror).
func (r *UserRepo) Update(ctx context.Context, user *domain.User) error {
	err := r.db.WithContext(ctx).Model(&UserModel{}).
		Where("id = ?", user.ID()).
		Updates(map[string]any{
			"is_active": user.IsActive(),
			"is_online": user.IsOnline(),
		}).Error
	if err != nil {
		return fmt.Errorf("failed to update user: %w", err)
	}
	return nil
}

func restoreUser(model *UserModel) (*domain.User, error) {
	email, err := domain.NewEmail(model.Email)
	if err != nil {
		return nil, fmt.Errorf("corrupt user row %s: %w", model.ID, err)
	}
	password, err := domain.NewPassword(model.PasswordHash)
	if err != nil {
		return nil, fmt.Errorf("corrupt user row %s: %w", model.ID, err)
	}
	return domain.RestoreUser(model.ID, email, password, model.IsActive, model.IsOnline, model.CreatedAt), nil
}
