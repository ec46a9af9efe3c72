package storage

import (
	"context"

	"gorm.io/gorm"

	"roomchat/backend/internal/repository"
)

// GormUnitOfWork opens one database transaction per use case execution.
// Isolation between concurrent use cases is delegated to PostgreSQL's own
// concurrency control; no in-process locking is assumed sufficient.
type GormUnitOfWork struct {
	db *gorm.DB
}

func NewGormUnitOfWork(db *gorm.DB) *GormUnitOfWork {
	return &GormUnitOfWork{db: db}
}

func (u *GormUnitOfWork) Begin(ctx context.Context) (repository.Tx, error) {
	tx := u.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return nil, tx.Error
	}
	return &gormTx{db: tx}, nil
}

// gormTx hands out repositories bound to the same open transaction.
type gormTx struct {
	db *gorm.DB
}

func (t *gormTx) Users() repository.UserRepository       { return NewUserRepo(t.db) }
func (t *gormTx) Rooms() repository.RoomRepository       { return NewRoomRepo(t.db) }
func (t *gormTx) Messages() repository.MessageRepository { return NewMessageRepo(t.db) }

func (t *gormTx) Commit() error   { return t.db.Commit().Error }
func (t *gormTx) Rollback() error { return t.db.Rollback().Error }
