package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"office-inventory/internal/dto"
	"office-inventory/internal/repositories/memory"
	apperrors "office-inventory/pkg/errors"
	"office-inventory/pkg/service"
	"office-inventory/pkg/utils"
)

func newAuth(t *testing.T) (*AuthService, service.JWTService) {
	t.Helper()
	jwtSvc := service.NewJWTService("test-secret", time.Hour)
	auth, err := NewAuthService("admin", "s3cret", "", jwtSvc, memory.NewCache(), zap.NewNop())
	require.NoError(t, err)
	return auth, jwtSvc
}

func TestAuth_LoginLogout(t *testing.T) {
	ctx := context.Background()
	auth, jwtSvc := newAuth(t)

	out, err := auth.Login(ctx, dto.LoginDTO{Username: "admin", Password: "s3cret"})
	require.NoError(t, err)
	assert.Equal(t, "admin", out.Username)

	claims, err := jwtSvc.ValidateToken(out.Token)
	require.NoError(t, err)
	active, err := auth.SessionActive(ctx, claims.ID)
	require.NoError(t, err)
	assert.True(t, active)

	require.NoError(t, auth.Logout(ctx, claims.ID))
	active, err = auth.SessionActive(ctx, claims.ID)
	require.NoError(t, err)
	assert.False(t, active)
}

func TestAuth_WrongPassword(t *testing.T) {
	auth, _ := newAuth(t)
	_, err := auth.Login(context.Background(), dto.LoginDTO{Username: "admin", Password: "nope"})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)

	_, err = auth.Login(context.Background(), dto.LoginDTO{Username: "root", Password: "s3cret"})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

func TestAuth_PresetHash(t *testing.T) {
	hash, err := utils.HashPassword("from-env")
	require.NoError(t, err)
	auth, err := NewAuthService("admin", "ignored", hash, service.NewJWTService("k", time.Hour), memory.NewCache(), zap.NewNop())
	require.NoError(t, err)

	_, err = auth.Login(context.Background(), dto.LoginDTO{Username: "admin", Password: "from-env"})
	assert.NoError(t, err)
	_, err = auth.Login(context.Background(), dto.LoginDTO{Username: "admin", Password: "ignored"})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}
