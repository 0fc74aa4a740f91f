package middleware

import (
	"context"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/medialogapp/medialog-server/internal/server"
)

// SessionResolver resolves an opaque session token to a user id.
// Unknown or expired tokens resolve to 0.
type SessionResolver interface {
	Lookup(ctx context.Context, token string) (int64, error)
}

// AuthMiddleware identifies the requesting user from a session token.
// All endpoints are public, so identification never rejects a request;
// it only attaches the user id for logging and tracing when a valid
// token is present.
type AuthMiddleware struct {
	server   *server.Server
	sessions SessionResolver
}

func NewAuthMiddleware(s *server.Server, sessions SessionResolver) *AuthMiddleware {
	return &AuthMiddleware{
		server:   s,
		sessions: sessions,
	}
}

// IdentifySession reads "Authorization: Bearer <token>" and, when the
// token maps to a live session, stores the user id in Echo context
// under UserIDKey. Missing, malformed, and stale tokens all pass
// through silently. It must run before ContextEnhancer so the request
// logger picks up the user id.
func (auth *AuthMiddleware) IdentifySession() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := bearerToken(c)
			if token == "" {
				return next(c)
			}

			userID, err := auth.sessions.Lookup(c.Request().Context(), token)
			if err != nil {
				// Store outage: log and continue anonymously.
				auth.server.Logger.Warn().Err(err).Msg("session lookup failed")
				return next(c)
			}
			if userID != 0 {
				c.Set(UserIDKey, userID)
			}

			return next(c)
		}
	}
}

func bearerToken(c echo.Context) string {
	header := c.Request().Header.Get(echo.HeaderAuthorization)
	const prefix = "Bearer "
	if !strings.HasPrefix(header, prefix) {
		return ""
	}
	return strings.TrimSpace(strings.TrimPrefix(header, prefix))
}
