// Package usecase implements the transactional business operations. Each
// use case wraps exactly one operation in a unit of work: begin, load,
// validate, mutate, persist, commit. Any error rolls the unit back before
// propagating, so partial writes never survive a failed operation.
package usecase

import (
	"context"

	"roomchat/backend/internal/repository"
)

// PasswordHasher is the credential service consumed by the user use cases.
type PasswordHasher interface {
	Hash(raw string) (string, error)
	Verify(raw, hashed string) bool
}

// inTx runs fn inside a fresh transaction, committing on success and
// rolling back on any error.
func inTx(ctx context.Context, uow repository.UnitOfWork, fn func(tx repository.Tx) error) error {
	tx, err := uow.Begin(ctx)
	if err != nil {
		return err
	}
	if err := fn(tx); err != nil {
		tx.Rollback()
		return err
	}
	return tx.Commit()
}
