package user

import (
	"errors"
	"strings"

	"github.com/google/uuid"
)

var (
	ErrEmptyName    = errors.New("user name cannot be empty")
	ErrInvalidEmail = errors.New("user email is invalid")
)

type User struct {
	id    uuid.UUID
	name  string
	email string
}

func New(name, email string) (*User, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)
	if name == "" {
		return nil, ErrEmptyName
	}
	if email == "" || !strings.Contains(email, "@") {
		return nil, ErrInvalidEmail
	}

	return &User{id: uuid.New(), name: name, email: email}, nil
}

func Reconstruct(id uuid.UUID, name, email string) *User {
	return &User{id: id, name: name, email: email}
}

// Patch applies a partial update; nil fields keep their current value.
func (u *User) Patch(name, email *string) error {
	if name != nil {
		trimmed := strings.TrimSpace(*name)
		if trimmed == "" {
			return ErrEmptyName
		}
		u.name = trimmed
	}
	if email != nil {
		trimmed := strings.TrimSpace(*email)
		if trimmed == "" || !strings.Contains(trimmed, "@") {
			return ErrInvalidEmail
		}
		u.email = trimmed
	}
	return nil
}

func (u *User) ID() uuid.UUID { return u.id }
func (u *User) Name() string  { return u.name }
func (u *User) Email() string { return u.email }
