package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"office-inventory/internal/dto"
	"office-inventory/internal/services"
	apperrors "office-inventory/pkg/errors"
	"office-inventory/pkg/utils"
)

type AuthController struct {
	authService services.AuthServiceInterface
	logger      *zap.Logger
}

func NewAuthController(authService services.AuthServiceInterface, logger *zap.Logger) *AuthController {
	return &AuthController{authService: authService, logger: logger}
}

func (c *AuthController) Login(ctx echo.Context) error {
	var payload dto.LoginDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, badRequest("Invalid request body", err), c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	res, err := c.authService.Login(ctx.Request().Context(), payload)
	if err != nil {
		c.logger.Warn("Login: rejected", zap.String("username", payload.Username), zap.Error(err))
		return utils.ErrorResponse(ctx, httpError(err, "Login failed", nil), c.logger)
	}

	return utils.SuccessResponse(ctx, res, "Login successful", http.StatusOK)
}

func (c *AuthController) Logout(ctx echo.Context) error {
	sessionID := utils.SessionIDFromContext(ctx.Request().Context())
	if sessionID == "" {
		return utils.ErrorResponse(ctx, apperrors.ErrUnauthorized, c.logger)
	}

	if err := c.authService.Logout(ctx.Request().Context(), sessionID); err != nil {
		c.logger.Error("Logout: failed", zap.String("session_id", sessionID), zap.Error(err))
		return utils.ErrorResponse(ctx, httpError(err, "Logout failed", nil), c.logger)
	}

	return utils.SuccessResponse(ctx, struct{}{}, "Logged out", http.StatusOK)
}

// Me reports the username bound to the current session.
func (c *AuthController) Me(ctx echo.Context) error {
	username := utils.UsernameFromContext(ctx.Request().Context())
	if username == "" {
		return utils.ErrorResponse(ctx, apperrors.ErrUnauthorized, c.logger)
	}
	return utils.SuccessResponse(ctx, map[string]string{"username": username}, "Session active", http.StatusOK)
}
