package services

import (
	"context"
	"crypto/subtle"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"office-inventory/internal/dto"
	"office-inventory/internal/repositories"
	apperrors "office-inventory/pkg/errors"
	"office-inventory/pkg/service"
	"office-inventory/pkg/utils"
)

const sessionKeyPrefix = "session:"

// AuthService checks the single administrator credential and tracks
// sessions in the KV store. Logout removes the session key.
type AuthService struct {
	username     string
	passwordHash string
	jwtService   service.JWTService
	cache        repositories.CacheRepositoryInterface
	logger       *zap.Logger
}

// NewAuthService hashes password when passwordHash is empty.
func NewAuthService(
	username, password, passwordHash string,
	jwtService service.JWTService,
	cache repositories.CacheRepositoryInterface,
	logger *zap.Logger,
) (*AuthService, error) {
	if passwordHash == "" {
		hashed, err := utils.HashPassword(password)
		if err != nil {
			return nil, err
		}
		passwordHash = hashed
	}
	return &AuthService{
		username:     username,
		passwordHash: passwordHash,
		jwtService:   jwtService,
		cache:        cache,
		logger:       logger,
	}, nil
}

func (s *AuthService) Login(ctx context.Context, in dto.LoginDTO) (*dto.LoginResponseDTO, error) {
	userOK := subtle.ConstantTimeCompare([]byte(in.Username), []byte(s.username)) == 1
	passErr := utils.ComparePasswords(s.passwordHash, in.Password)
	if !userOK || passErr != nil {
		s.logger.Warn("Login: invalid credentials", zap.String("username", in.Username))
		return nil, apperrors.ErrInvalidCredentials
	}

	sessionID := uuid.NewString()
	token, expiresAt, err := s.jwtService.GenerateToken(s.username, sessionID)
	if err != nil {
		return nil, fmt.Errorf("sign token: %w", err)
	}
	if err := s.cache.Set(ctx, sessionKeyPrefix+sessionID, s.username, s.jwtService.GetSessionTTL()); err != nil {
		return nil, fmt.Errorf("store session: %w", err)
	}

	s.logger.Info("Login: session started", zap.String("username", s.username))
	return &dto.LoginResponseDTO{
		Token:     token,
		ExpiresAt: expiresAt.UTC().Format(time.RFC3339),
		Username:  s.username,
	}, nil
}

func (s *AuthService) Logout(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return apperrors.ErrUnauthorized
	}
	if err := s.cache.Del(ctx, sessionKeyPrefix+sessionID); err != nil {
		return err
	}
	s.logger.Info("Logout: session closed")
	return nil
}

func (s *AuthService) SessionActive(ctx context.Context, sessionID string) (bool, error) {
	return s.cache.Exists(ctx, sessionKeyPrefix+sessionID)
}
