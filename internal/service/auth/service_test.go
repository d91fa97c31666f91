package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/attendly/attendance-backend-go/internal/domain/auth"
	"github.com/attendly/attendance-backend-go/internal/pkg/docstore"
	"github.com/attendly/attendance-backend-go/internal/pkg/jwt"
	repo "github.com/attendly/attendance-backend-go/internal/repository/docstore"
)

func newAuthFixture(t *testing.T) auth.Service {
	t.Helper()
	store := docstore.NewMemoryStore()

	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret-pass"), bcrypt.MinCost)
	require.NoError(t, err)
	require.NoError(t, store.InsertWithID(context.Background(), "users", "u1", map[string]any{
		"email":        "admin@attendly.io",
		"name":         "Admin",
		"passwordHash": string(hash),
	}))

	jwtService := jwt.NewJWTService("test-secret", "15m", "168h")
	return NewAuthService(repo.NewUserRepository(store), jwtService)
}

func TestLogin(t *testing.T) {
	svc := newAuthFixture(t)

	resp, err := svc.Login(context.Background(), auth.LoginRequest{
		Email:    "admin@attendly.io",
		Password: "s3cret-pass",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
	assert.NotEmpty(t, resp.RefreshToken)
	assert.Greater(t, resp.ExpiresIn, int64(0))
}

func TestLogin_BadCredentials(t *testing.T) {
	svc := newAuthFixture(t)
	ctx := context.Background()

	_, err := svc.Login(ctx, auth.LoginRequest{
		Email:    "admin@attendly.io",
		Password: "wrong",
	})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)

	// unknown email answers the same as a bad password
	_, err = svc.Login(ctx, auth.LoginRequest{
		Email:    "nobody@attendly.io",
		Password: "s3cret-pass",
	})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestRefresh(t *testing.T) {
	svc := newAuthFixture(t)
	ctx := context.Background()

	login, err := svc.Login(ctx, auth.LoginRequest{
		Email:    "admin@attendly.io",
		Password: "s3cret-pass",
	})
	require.NoError(t, err)

	resp, err := svc.Refresh(ctx, auth.RefreshRequest{RefreshToken: login.RefreshToken})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
}

func TestRefresh_RejectsAccessToken(t *testing.T) {
	svc := newAuthFixture(t)
	ctx := context.Background()

	login, err := svc.Login(ctx, auth.LoginRequest{
		Email:    "admin@attendly.io",
		Password: "s3cret-pass",
	})
	require.NoError(t, err)

	_, err = svc.Refresh(ctx, auth.RefreshRequest{RefreshToken: login.AccessToken})
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestRefresh_MalformedToken(t *testing.T) {
	svc := newAuthFixture(t)

	_, err := svc.Refresh(context.Background(), auth.RefreshRequest{RefreshToken: "not-a-token"})
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}
