package utils

import (
	"context"
	"time"

	"office-inventory/pkg/contextkeys"

	"github.com/labstack/echo/v4"
)

const DefaultRequestTimeout = 10

func ContextWithTimeout(ctx echo.Context, timeout int) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx.Request().Context(), time.Duration(timeout)*time.Second)
}

func SessionIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(contextkeys.SessionIDKey).(string)
	return id
}

func UsernameFromContext(ctx context.Context) string {
	name, _ := ctx.Value(contextkeys.UsernameKey).(string)
	return name
}
