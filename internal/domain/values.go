package domain

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

var emailRE = regexp.MustCompile(`^[^@]+@[^@]+\.[^@]+$`)

// Email is a case-normalized, shape-validated address. Normalization
// (lowercase + trim) is idempotent, so an Email can be rebuilt from its
// own String value.
type Email struct {
	value string
}

func NewEmail(raw string) (Email, error) {
	v := strings.TrimSpace(strings.ToLower(raw))
	if !emailRE.MatchString(v) {
		return Email{}, ErrInvalidEmail
	}
	return Email{value: v}, nil
}

func (e Email) String() string { return e.value }

// Password holds an opaque hashed credential. It never sees raw passwords;
// hashing happens in the auth layer before construction.
type Password struct {
	hashed string
}

func NewPassword(hashed string) (Password, error) {
	if hashed == "" {
		return Password{}, ErrEmptyPasswordHash
	}
	return Password{hashed: hashed}, nil
}

func (p Password) Hash() string { return p.hashed }

const maxRoomNameLen = 100

type RoomName struct {
	value string
}

func NewRoomName(raw string) (RoomName, error) {
	v := strings.TrimSpace(raw)
	if v == "" {
		return RoomName{}, ErrEmptyRoomName
	}
	// limit is in characters, not bytes
	if utf8.RuneCountInString(v) > maxRoomNameLen {
		return RoomName{}, ErrRoomNameTooLong
	}
	return RoomName{value: v}, nil
}

func (n RoomName) String() string { return n.value }

const maxMessageContentLen = 4000

type MessageContent struct {
	value string
}

func NewMessageContent(raw string) (MessageContent, error) {
	v := strings.TrimSpace(raw)
	if v == "" {
		return MessageContent{}, ErrEmptyMessageContent
	}
	if utf8.RuneCountInString(v) > maxMessageContentLen {
		return MessageContent{}, ErrMessageContentTooLong
	}
	return MessageContent{value: v}, nil
}

func (c MessageContent) String() string { return c.value }
