package auth

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/circuitpos/circuitpos/internal/shared"
)

func newService(t *testing.T) *Service {
	t.Helper()
	hash, err := HashPIN("1234")
	require.NoError(t, err)
	return NewService([]User{
		{ID: "1", Name: "Admin Manager", Email: "admin@store.com", Role: shared.RoleManager, PINHash: hash},
	})
}

func TestAuthenticate(t *testing.T) {
	svc := newService(t)

	principal, err := svc.Authenticate("admin@store.com", "1234")
	require.NoError(t, err)
	require.Equal(t, "1", principal.ID)
	require.Equal(t, "Admin Manager", principal.Name)
	require.Equal(t, shared.RoleManager, principal.Role)
}

func TestAuthenticateEmailCaseInsensitive(t *testing.T) {
	svc := newService(t)
	_, err := svc.Authenticate("Admin@Store.com", "1234")
	require.NoError(t, err)
}

func TestAuthenticateRejects(t *testing.T) {
	svc := newService(t)

	_, err := svc.Authenticate("admin@store.com", "9999")
	require.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Authenticate("nobody@store.com", "1234")
	require.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestUsersOmitCredentials(t *testing.T) {
	svc := newService(t)
	users := svc.Users()
	require.Len(t, users, 1)
	require.Equal(t, shared.Principal{ID: "1", Name: "Admin Manager", Role: shared.RoleManager}, users[0])
}
