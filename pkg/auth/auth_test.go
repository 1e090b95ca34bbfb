package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memUsers struct {
	byEmail map[string]User
}

func (m *memUsers) Create(_ context.Context, u User) error {
	if _, ok := m.byEmail[u.Email]; ok {
		return ErrUserAlreadyExists
	}
	m.byEmail[u.Email] = u
	return nil
}

func (m *memUsers) GetByEmail(_ context.Context, email string) (User, error) {
	u, ok := m.byEmail[email]
	if !ok {
		return User{}, ErrNotFound
	}
	return u, nil
}

type stubTokens struct{}

func (stubTokens) Generate(_ context.Context, u User) (string, error) { return "token-" + u.Email, nil }

func newTestService() (AuthUseCase, *MemoryRevocations) {
	rev := NewMemoryRevocations()
	return NewAuthService(&memUsers{byEmail: map[string]User{}}, stubTokens{}, rev), rev
}

func TestRegisterAndLogin(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	res, err := svc.Register(ctx, "  HR@Example.com ", "s3cret-pass")
	require.NoError(t, err)
	assert.Equal(t, "hr@example.com", res.User.Email)
	assert.Equal(t, "token-hr@example.com", res.Token)
	assert.NotEqual(t, "s3cret-pass", res.User.PasswordHash)

	_, err = svc.Register(ctx, "hr@example.com", "another-pass")
	assert.ErrorIs(t, err, ErrUserAlreadyExists)

	res, err = svc.Login(ctx, "HR@example.com", "s3cret-pass")
	require.NoError(t, err)
	assert.Equal(t, "token-hr@example.com", res.Token)

	_, err = svc.Login(ctx, "hr@example.com", "wrong-pass")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	_, err = svc.Login(ctx, "nobody@example.com", "s3cret-pass")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestRegisterValidation(t *testing.T) {
	svc, _ := newTestService()
	for _, tc := range []struct{ email, password string }{
		{"", "long-enough"},
		{"not-an-email", "long-enough"},
		{"a@example.com", "short"},
	} {
		_, err := svc.Register(context.Background(), tc.email, tc.password)
		assert.ErrorIs(t, err, ErrInvalidCredentials, tc.email)
	}
}

func TestLogoutRevokesUntilExpiry(t *testing.T) {
	svc, rev := newTestService()
	ctx := context.Background()
	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	rev.now = func() time.Time { return now }

	require.NoError(t, svc.Logout(ctx, "jti-1", now.Add(time.Hour)))
	revoked, err := rev.IsRevoked(ctx, "jti-1")
	require.NoError(t, err)
	assert.True(t, revoked)

	revoked, _ = rev.IsRevoked(ctx, "jti-2")
	assert.False(t, revoked)

	now = now.Add(2 * time.Hour)
	revoked, _ = rev.IsRevoked(ctx, "jti-1")
	assert.False(t, revoked)

	require.NoError(t, svc.Logout(ctx, "jti-3", now.Add(-time.Minute)))
	assert.Empty(t, rev.revoked)

	assert.ErrorIs(t, svc.Logout(ctx, "", now), ErrInvalidCredentials)
}
