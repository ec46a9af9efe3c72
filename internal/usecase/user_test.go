package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"roomchat/backend/internal/domain"
	"roomchat/backend/internal/usecase"
)

func newUserTx(users *MockUserRepo) (*fakeUow, *fakeTx) {
	tx := &fakeTx{users: users}
	return &fakeUow{tx: tx}, tx
}

func TestRegisterUser_Success(t *testing.T) {
	// Arrange
	users := new(MockUserRepo)
	users.On("ExistsByEmail", mock.Anything, mock.Anything).Return(false, nil)
	users.On("Add", mock.Anything, mock.AnythingOfType("*domain.User")).Return(nil)
	uow, tx := newUserTx(users)
	uc := usecase.NewRegisterUser(uow, fakeHasher{})

	// Act
	user, err := uc.Execute(context.Background(), " Alice@Example.com ", "s3cret")

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", user.Email().String())
	assert.Equal(t, "hashed:s3cret", user.Password().Hash())
	assert.True(t, user.IsActive())
	assert.True(t, tx.committed)
	users.AssertCalled(t, "Add", mock.Anything, mock.AnythingOfType("*domain.User"))
}

// TestRegisterUser_DuplicateEmail verifies the unit rolls back and nothing
// is persisted when the email is taken.
func TestRegisterUser_DuplicateEmail(t *testing.T) {
	users := new(MockUserRepo)
	users.On("ExistsByEmail", mock.Anything, mock.Anything).Return(true, nil)
	uow, tx := newUserTx(users)
	uc := usecase.NewRegisterUser(uow, fakeHasher{})

	_, err := uc.Execute(context.Background(), "alice@example.com", "s3cret")

	assert.ErrorIs(t, err, usecase.ErrEmailAlreadyExists)
	assert.True(t, tx.rolledBack)
	assert.False(t, tx.committed)
	users.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
}

func TestRegisterUser_InvalidEmail(t *testing.T) {
	uow, _ := newUserTx(new(MockUserRepo))
	uc := usecase.NewRegisterUser(uow, fakeHasher{})

	_, err := uc.Execute(context.Background(), "not-an-email", "s3cret")

	assert.ErrorIs(t, err, domain.ErrInvalidEmail)
}

func registeredUser(t *testing.T) *domain.User {
	t.Helper()
	email, err := domain.NewEmail("alice@example.com")
	require.NoError(t, err)
	password, err := domain.NewPassword("hashed:s3cret")
	require.NoError(t, err)
	return domain.NewUser(email, password)
}

func TestLoginUser_Success(t *testing.T) {
	users := new(MockUserRepo)
	users.On("GetByEmail", mock.Anything, mock.Anything).Return(registeredUser(t), nil)
	uow, tx := newUserTx(users)
	uc := usecase.NewLoginUser(uow, fakeHasher{})

	user, err := uc.Execute(context.Background(), "alice@example.com", "s3cret")

	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", user.Email().String())
	assert.True(t, tx.committed)
}

func TestLoginUser_WrongPassword(t *testing.T) {
	users := new(MockUserRepo)
	users.On("GetByEmail", mock.Anything, mock.Anything).Return(registeredUser(t), nil)
	uow, _ := newUserTx(users)
	uc := usecase.NewLoginUser(uow, fakeHasher{})

	_, err := uc.Execute(context.Background(), "alice@example.com", "wrong")

	assert.ErrorIs(t, err, usecase.ErrInvalidCredentials)
}

// TestLoginUser_UnknownEmail verifies an unknown account is reported as
// invalid credentials, not as not-found.
func TestLoginUser_UnknownEmail(t *testing.T) {
	users := new(MockUserRepo)
	users.On("GetByEmail", mock.Anything, mock.Anything).Return(nil, nil)
	uow, _ := newUserTx(users)
	uc := usecase.NewLoginUser(uow, fakeHasher{})

	_, err := uc.Execute(context.Background(), "ghost@example.com", "s3cret")

	assert.ErrorIs(t, err, usecase.ErrInvalidCredentials)
}

func TestLoginUser_InactiveUser(t *testing.T) {
	user := registeredUser(t)
	require.NoError(t, user.Deactivate())

	users := new(MockUserRepo)
	users.On("GetByEmail", mock.Anything, mock.Anything).Return(user, nil)
	uow, tx := newUserTx(users)
	uc := usecase.NewLoginUser(uow, fakeHasher{})

	_, err := uc.Execute(context.Background(), "alice@example.com", "s3cret")

	assert.ErrorIs(t, err, usecase.ErrInactiveUser)
	assert.True(t, tx.rolledBack)
}
