package usecase_test

import (
	"context"
	"sort"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"roomchat/backend/internal/domain"
	"roomchat/backend/internal/repository"
)

// MockUserRepo is a testify/mock implementation of repository.UserRepository.
type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) Add(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepo) GetByEmail(ctx context.Context, email domain.Email) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepo) ExistsByEmail(ctx context.Context, email domain.Email) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

// MockRoomRepo is a testify/mock implementation of repository.RoomRepository.
type MockRoomRepo struct {
	mock.Mock
}

func (m *MockRoomRepo) Add(ctx context.Context, room *domain.Room) error {
	args := m.Called(ctx, room)
	return args.Error(0)
}

func (m *MockRoomRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Room, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Room), args.Error(1)
}

func (m *MockRoomRepo) ExistsPrivateRoom(ctx context.Context, a, b uuid.UUID) (bool, error) {
	args := m.Called(ctx, a, b)
	return args.Bool(0), args.Error(1)
}

func (m *MockRoomRepo) AddMember(ctx context.Context, roomID, userID uuid.UUID) error {
	args := m.Called(ctx, roomID, userID)
	return args.Error(0)
}

func (m *MockRoomRepo) RemoveMember(ctx context.Context, roomID, userID uuid.UUID) error {
	args := m.Called(ctx, roomID, userID)
	return args.Error(0)
}

// MockMessageRepo is a testify/mock implementation of repository.MessageRepository.
type MockMessageRepo struct {
	mock.Mock
}

func (m *MockMessageRepo) Add(ctx context.Context, msg *domain.Message) error {
	args := m.Called(ctx, msg)
	return args.Error(0)
}

func (m *MockMessageRepo) GetRoomHistory(ctx context.Context, roomID uuid.UUID, limit, offset int) ([]*domain.Message, error) {
	args := m.Called(ctx, roomID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Message), args.Error(1)
}

// memMessageRepo is an in-memory message store preserving the repository's
// newest-first ordering contract, for pagination tests.
type memMessageRepo struct {
	messages []*domain.Message
}

func (r *memMessageRepo) Add(_ context.Context, msg *domain.Message) error {
	r.messages = append(r.messages, msg)
	return nil
}

func (r *memMessageRepo) GetRoomHistory(_ context.Context, roomID uuid.UUID, limit, offset int) ([]*domain.Message, error) {
	var inRoom []*domain.Message
	for _, msg := range r.messages {
		if msg.RoomID() == roomID {
			inRoom = append(inRoom, msg)
		}
	}
	sort.SliceStable(inRoom, func(i, j int) bool {
		return inRoom[i].CreatedAt().After(inRoom[j].CreatedAt())
	})

	if offset >= len(inRoom) {
		return nil, nil
	}
	inRoom = inRoom[offset:]
	if limit < len(inRoom) {
		inRoom = inRoom[:limit]
	}
	return inRoom, nil
}

// fakeTx hands out the configured repositories and records how the
// transaction ended, so tests can assert commit/rollback behavior.
type fakeTx struct {
	users    repository.UserRepository
	rooms    repository.RoomRepository
	messages repository.MessageRepository

	committed  bool
	rolledBack bool
}

func (t *fakeTx) Users() repository.UserRepository       { return t.users }
func (t *fakeTx) Rooms() repository.RoomRepository       { return t.rooms }
func (t *fakeTx) Messages() repository.MessageRepository { return t.messages }

func (t *fakeTx) Commit() error {
	t.committed = true
	return nil
}

func (t *fakeTx) Rollback() error {
	t.rolledBack = true
	return nil
}

type fakeUow struct {
	tx *fakeTx
}

func (u *fakeUow) Begin(context.Context) (repository.Tx, error) {
	return u.tx, nil
}

// fakeHasher avoids bcrypt cost in use case tests.
type fakeHasher struct{}

func (fakeHasher) Hash(raw string) (string, error) { return "hashed:" + raw, nil }
func (fakeHasher) Verify(raw, hashed string) bool  { return "hashed:"+raw == hashed }
