package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/tidylist/tidylist/internal/todo/service"
	"github.com/tidylist/tidylist/internal/todo/store"
	"github.com/tidylist/tidylist/internal/todo/store/drivers/sqlite"
	"github.com/tidylist/tidylist/pkg/jwtx"

	"github.com/stretchr/testify/require"
)

const testIssuer = "tidylist-test"

func newTestStore(t *testing.T) store.Store {
	t.Helper()

	s, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	require.NoError(t, s.ApplyMigrations())
	return s
}

func newTestKeyManager(t *testing.T) *jwtx.KeyManager {
	t.Helper()

	km, err := jwtx.NewEphemeralKeyManager(jwtx.KeyManagerOptions{
		Issuer:  testIssuer,
		NumKeys: 1,
	})
	require.NoError(t, err)
	return km
}

func newAuthService(t *testing.T) (*service.AuthService, *jwtx.KeyManager) {
	t.Helper()

	km := newTestKeyManager(t)
	svc := &service.AuthService{
		Store:      newTestStore(t),
		KeyManager: km,
		Issuer:     testIssuer,
		TokenTTL:   time.Hour,
	}
	return svc, km
}

func TestRegisterCreatesUserWithoutToken(t *testing.T) {
	t.Parallel()
	svc, _ := newAuthService(t)
	ctx := context.Background()

	require.NoError(t, svc.Register(ctx, "alice", "hunter2-but-longer"))

	// The account exists with a hashed password, but no session exists
	// until the user logs in.
	user, err := svc.Store.Users().GetUserByUsername(ctx, "alice")
	require.NoError(t, err)
	require.Equal(t, "alice", user.Username)
	require.NotEmpty(t, user.PasswordHash)
	require.NotEqual(t, "hunter2-but-longer", user.PasswordHash)
}

func TestRegisterRejectsDuplicateUsername(t *testing.T) {
	t.Parallel()
	svc, _ := newAuthService(t)
	ctx := context.Background()

	require.NoError(t, svc.Register(ctx, "alice", "password-one"))

	err := svc.Register(ctx, "alice", "password-two")
	require.ErrorIs(t, err, service.ErrUsernameTaken)
}

func TestRegisterRejectsMissingCredentials(t *testing.T) {
	t.Parallel()
	svc, _ := newAuthService(t)
	ctx := context.Background()

	tests := []struct {
		name     string
		username string
		password string
	}{
		{"empty username", "", "password"},
		{"whitespace username", "   ", "password"},
		{"empty password", "alice", ""},
		{"both empty", "", ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := svc.Register(ctx, tc.username, tc.password)
			require.ErrorIs(t, err, service.ErrMissingCredentials)
		})
	}
}

func TestLoginWithCorrectPassword(t *testing.T) {
	t.Parallel()
	svc, km := newAuthService(t)
	ctx := context.Background()

	require.NoError(t, svc.Register(ctx, "alice", "correct horse battery staple"))

	token, err := svc.Login(ctx, "alice", "correct horse battery staple")
	require.NoError(t, err)

	claims, err := km.Verifier.Verify(token)
	require.NoError(t, err)
	require.Equal(t, "alice", claims.Username)
}

func TestLoginRejectsWrongPassword(t *testing.T) {
	t.Parallel()
	svc, _ := newAuthService(t)
	ctx := context.Background()

	require.NoError(t, svc.Register(ctx, "alice", "the-real-password"))

	_, err := svc.Login(ctx, "alice", "not-the-password")
	require.ErrorIs(t, err, service.ErrInvalidCredentials)
}

func TestLoginRejectsUnknownUser(t *testing.T) {
	t.Parallel()
	svc, _ := newAuthService(t)

	_, err := svc.Login(context.Background(), "nobody", "whatever")
	require.ErrorIs(t, err, service.ErrInvalidCredentials)
}

func TestLoginRejectsMissingCredentials(t *testing.T) {
	t.Parallel()
	svc, _ := newAuthService(t)

	_, err := svc.Login(context.Background(), "", "")
	require.ErrorIs(t, err, service.ErrMissingCredentials)
}
