package auth

import (
	"errors"

	"github.com/circuitpos/circuitpos/internal/shared"
)

// User is one staff account from the static directory.
type User struct {
	ID      string      `json:"id"`
	Name    string      `json:"name"`
	Email   string      `json:"email"`
	Role    shared.Role `json:"role"`
	PINHash string      `json:"pinHash"`
}

// Principal strips the credential material off a user.
func (u User) Principal() shared.Principal {
	return shared.Principal{ID: u.ID, Name: u.Name, Role: u.Role}
}

// ErrInvalidCredentials indicates login failure. The same error covers an
// unknown email and a wrong PIN.
var ErrInvalidCredentials = errors.New("auth: invalid credentials")
