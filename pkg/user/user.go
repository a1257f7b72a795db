package user

import "errors"

type User struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"`
}

var (
	ErrValidation  = errors.New("invalid sign-up data")
	ErrEmailTaken  = errors.New("email already registered")
	ErrNotFound    = errors.New("user not found")
	ErrBadPassword = errors.New("invalid password")
)

type Repository interface {
	Create(user *User) error
	FindByEmail(email string) (*User, error)
}
