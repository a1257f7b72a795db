package user

import (
	"errors"
	"fmt"
	"net/mail"

	"github.com/google/uuid"

	"pennyledger/pkg/hasher"
	"pennyledger/pkg/session"
)

type ServiceInterface interface {
	SignUp(name, email, password string) (*User, error)
	SignIn(email, password string) (*User, string, error)
}

type Service struct {
	Repo    Repository
	Session session.Repository
	Hasher  hasher.Hasher
}

func NewService(repo Repository, session session.Repository, h hasher.Hasher) *Service {
	return &Service{Repo: repo, Session: session, Hasher: h}
}

// SignUp creates an identity. It never issues a session; the caller has to
// sign in afterwards.
func (s *Service) SignUp(name, email, password string) (*User, error) {
	if name == "" || email == "" || password == "" {
		return nil, ErrValidation
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return nil, ErrValidation
	}

	_, err := s.Repo.FindByEmail(email)
	if err == nil {
		return nil, ErrEmailTaken
	}
	if !errors.Is(err, ErrNotFound) {
		return nil, fmt.Errorf("email lookup error: %w", err)
	}

	hashed, err := s.Hasher.Hash(password)
	if err != nil {
		return nil, fmt.Errorf("hashing password error: %w", err)
	}

	user := &User{
		ID:           uuid.NewString(),
		Name:         name,
		Email:        email,
		PasswordHash: hashed,
	}

	// A racing sign-up with the same email loses here, not at the lookup.
	if err := s.Repo.Create(user); err != nil {
		return nil, err
	}

	return user, nil
}

// SignIn verifies credentials and issues a session token. Unknown email and
// wrong password stay distinct outcomes on purpose; collapsing them would
// change the external contract.
func (s *Service) SignIn(email, password string) (*User, string, error) {
	if email == "" || password == "" {
		return nil, "", ErrValidation
	}

	user, err := s.Repo.FindByEmail(email)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, "", ErrNotFound
		}
		return nil, "", fmt.Errorf("email lookup error: %w", err)
	}

	if !s.Hasher.Compare(password, user.PasswordHash) {
		return nil, "", ErrBadPassword
	}

	token, err := s.Session.Create(user.ID)
	if err != nil {
		return nil, "", fmt.Errorf("failed to create session: %w", err)
	}

	return user, token, nil
}
