package http

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/DevBazho/realtime-chat-app/internal/logging"
	"github.com/DevBazho/realtime-chat-app/internal/server/auth"
)

// TokenHeader is the request header carrying the issued token.
const TokenHeader = "auth-token"

type ctxKey string

const userIDKey ctxKey = "userID"

// RequireAuth gates a route group on a valid token. A missing header is
// rejected before any body processing; a present but unverifiable token is
// rejected with a distinct message. On success the decoded user ID is
// attached to the request context.
func RequireAuth(secretKey []byte, logger logging.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := c.Request().Header.Get(TokenHeader)
			if token == "" {
				return fail(c, http.StatusUnauthorized, "Access denied")
			}

			userID, err := auth.GetUserIDFromToken(token, secretKey)
			if err != nil {
				logger.Warn(c.Request().Context(), "token verification failed",
					"path", c.Request().URL.Path,
					"error", err.Error())
				return fail(c, http.StatusUnauthorized, "Invalid token")
			}

			ctx := context.WithValue(c.Request().Context(), userIDKey, userID)
			c.SetRequest(c.Request().WithContext(ctx))

			return next(c)
		}
	}
}

// UserID returns the authenticated user's ID attached by RequireAuth, or ""
// on unauthenticated routes.
func UserID(c echo.Context) string {
	if id, ok := c.Request().Context().Value(userIDKey).(string); ok {
		return id
	}
	return ""
}

// RequestLogger logs one line per request: method, path, status, duration.
func RequestLogger(logger logging.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			err := next(c)
			if err != nil {
				c.Error(err)
			}

			logger.Info(c.Request().Context(), "request",
				"method", c.Request().Method,
				"path", c.Request().URL.Path,
				"status", c.Response().Status,
				"duration_ms", time.Since(start).Milliseconds())

			return err
		}
	}
}
