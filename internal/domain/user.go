// Package domain holds the chat entities and the invariants they enforce.
// Entities are pure: no I/O, no persistence concerns. Constructors validate
// and mutators re-validate; state never changes through any other path.
package domain

import (
	"time"

	"github.com/google/uuid"
)

// User is a registered account. IsOnline mirrors the connection registry
// and is never the authoritative record of presence.
type User struct {
	id        uuid.UUID
	email     Email
	password  Password
	isActive  bool
	isOnline  bool
	createdAt time.Time
}

// NewUser creates an active, offline user with a fresh identity.
func NewUser(email Email, password Password) *User {
	return &User{
		id:        uuid.New(),
		email:     email,
		password:  password,
		isActive:  true,
		isOnline:  false,
		createdAt: time.Now().UTC(),
	}
}

// RestoreUser rebuilds a user from persisted state.
func RestoreUser(id uuid.UUID, email Email, password Password, isActive, isOnline bool, createdAt time.Time) *User {
	return &User{
		id:        id,
		email:     email,
		password:  password,
		isActive:  isActive,
		isOnline:  isOnline,
		createdAt: createdAt,
	}
}

func (u *User) ID() uuid.UUID        { return u.id }
func (u *User) Email() Email         { return u.email }
func (u *User) Password() Password   { return u.password }
func (u *User) IsActive() bool       { return u.isActive }
func (u *User) IsOnline() bool       { return u.isOnline }
func (u *User) CreatedAt() time.Time { return u.createdAt }

func (u *User) Activate() error {
	if u.isActive {
		return ErrUserAlreadyActive
	}
	u.isActive = true
	return nil
}

// Deactivate disables the account. A deactivated user is always offline.
func (u *User) Deactivate() error {
	if !u.isActive {
		return ErrUserAlreadyInactive
	}
	u.isActive = false
	u.isOnline = false
	return nil
}

// GoOnline marks the user online; only an active user may go online.
func (u *User) GoOnline() error {
	if !u.isActive {
		return ErrUserInactive
	}
	u.isOnline = true
	return nil
}

func (u *User) GoOffline() {
	u.isOnline = false
}
