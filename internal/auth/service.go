package auth

import (
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/circuitpos/circuitpos/internal/shared"
)

// Service checks credentials against the static user directory. It produces
// a Principal and nothing else; role gating belongs to the presentation
// layer.
type Service struct {
	users []User
}

// NewService builds the service over a fixed user list.
func NewService(users []User) *Service {
	return &Service{users: append([]User(nil), users...)}
}

// Authenticate matches the email case-insensitively and compares the PIN
// against its bcrypt hash.
func (s *Service) Authenticate(email, pin string) (shared.Principal, error) {
	for _, user := range s.users {
		if !strings.EqualFold(user.Email, email) {
			continue
		}
		if err := bcrypt.CompareHashAndPassword([]byte(user.PINHash), []byte(pin)); err != nil {
			return shared.Principal{}, ErrInvalidCredentials
		}
		return user.Principal(), nil
	}
	return shared.Principal{}, ErrInvalidCredentials
}

// Users lists the directory without credential material.
func (s *Service) Users() []shared.Principal {
	principals := make([]shared.Principal, len(s.users))
	for i, user := range s.users {
		principals[i] = user.Principal()
	}
	return principals
}

// HashPIN derives the bcrypt hash stored in the directory.
func HashPIN(pin string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(pin), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
