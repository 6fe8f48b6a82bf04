// Package domain contains entity without logic, just meta-data
package domain

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

const (
	MaxUsernameLen = 128
	MaxAvatarLen   = 2048
)

var ErrInvalidUser = errors.New("invalid user")

var validate = validator.New()

// User is keyed by Email; Name and Avatar are display data only.
type User struct {
	Email  string `json:"email" validate:"required,email"`
	Name   string `json:"name" validate:"max=128"`
	Avatar string `json:"avatar" validate:"max=2048"`
}

// NewUser is a tiny helper to avoid ad-hoc struct literals in adapters.
func NewUser(email, name, avatar string) (User, error) {
	u := User{Email: email, Name: name, Avatar: avatar}
	if err := u.Validate(); err != nil {
		return User{}, err
	}
	return u, nil
}

func (u User) Validate() error {
	if err := validate.Struct(u); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidUser, err)
	}
	return nil
}
