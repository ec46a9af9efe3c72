package usecase

import (
	"context"

	"github.com/google/uuid"

	"roomchat/backend/internal/domain"
	"roomchat/backend/internal/repository"
)

// RegisterUser creates a new account with a hashed credential.
type RegisterUser struct {
	uow    repository.UnitOfWork
	hasher PasswordHasher
}

func NewRegisterUser(uow repository.UnitOfWork, hasher PasswordHasher) *RegisterUser {
	return &RegisterUser{uow: uow, hasher: hasher}
}

func (uc *RegisterUser) Execute(ctx context.Context, email, rawPassword string) (*domain.User, error) {
	emailVO, err := domain.NewEmail(email)
	if err != nil {
		return nil, err
	}

	var user *domain.User
	err = inTx(ctx, uc.uow, func(tx repository.Tx) error {
		exists, err := tx.Users().ExistsByEmail(ctx, emailVO)
		if err != nil {
			return err
		}
		if exists {
			return ErrEmailAlreadyExists
		}

		hashed, err := uc.hasher.Hash(rawPassword)
		if err != nil {
			return err
		}
		password, err := domain.NewPassword(hashed)
		if err != nil {
			return err
		}

		user = domain.NewUser(emailVO, password)
		return tx.Users().Add(ctx, user)
	})
	if err != nil {
		return nil, err
	}
	return user, nil
}

// LoginUser authenticates a credential pair and returns the matched user.
// The caller issues tokens; this use case only decides whether it may.
type LoginUser struct {
	uow    repository.UnitOfWork
	hasher PasswordHasher
}

func NewLoginUser(uow repository.UnitOfWork, hasher PasswordHasher) *LoginUser {
	return &LoginUser{uow: uow, hasher: hasher}
}

func (uc *LoginUser) Execute(ctx context.Context, email, rawPassword string) (*domain.User, error) {
	emailVO, err := domain.NewEmail(email)
	if err != nil {
		return nil, err
	}

	var user *domain.User
	err = inTx(ctx, uc.uow, func(tx repository.Tx) error {
		u, err := tx.Users().GetByEmail(ctx, emailVO)
		if err != nil {
			return err
		}
		if u == nil {
			return ErrInvalidCredentials
		}
		if !u.IsActive() {
			return ErrInactiveUser
		}
		if !uc.hasher.Verify(rawPassword, u.Password().Hash()) {
			return ErrInvalidCredentials
		}
		user = u
		return nil
	})
	if err != nil {
		return nil, err
	}
	return user, nil
}

// GetUser loads a single user by id, or (nil, nil) when absent.
type GetUser struct {
	uow repository.UnitOfWork
}

func NewGetUser(uow repository.UnitOfWork) *GetUser {
	return &GetUser{uow: uow}
}

func (uc *GetUser) Execute(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	var user *domain.User
	err := inTx(ctx, uc.uow, func(tx repository.Tx) error {
		u, err := tx.Users().GetByID(ctx, id)
		if err != nil {
			return err
		}
		user = u
		return nil
	})
	if err != nil {
		return nil, err
	}
	return user, nil
}
