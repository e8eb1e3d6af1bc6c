// Package middleware holds the API server's echo middleware.
package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	deliverycontext "parceltrack/internal/delivery/context"
	"parceltrack/internal/delivery/http/response"
	"parceltrack/internal/domain/service"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const (
	bearerPrefix = "Bearer "

	// accessTokenQueryParam carries the token for EventSource clients, which cannot set headers.
	accessTokenQueryParam = "access_token"
)

// AuthMiddlewareParams holds dependencies for AuthMiddleware, injected by Fx.
type AuthMiddlewareParams struct {
	fx.In

	Verifier service.TokenVerifier
	Logger   *slog.Logger
}

// AuthMiddleware resolves the bearer token to the authenticated caller.
type AuthMiddleware struct {
	verifier service.TokenVerifier
	logger   *slog.Logger
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(params AuthMiddlewareParams) *AuthMiddleware {
	return &AuthMiddleware{verifier: params.Verifier, logger: params.Logger}
}

// Authenticate rejects requests without a valid token.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return m.handle(next, true)
}

// Identify attaches the caller when a valid token is present and lets anonymous requests through.
// Callable functions use it so that they can answer UNAUTHENTICATED in their own envelope.
func (m *AuthMiddleware) Identify(next echo.HandlerFunc) echo.HandlerFunc {
	return m.handle(next, false)
}

func (m *AuthMiddleware) handle(next echo.HandlerFunc, required bool) echo.HandlerFunc {
	return func(c echo.Context) error {
		token, ok := extractToken(c)
		if !ok {
			if required {
				return response.Unauthorized(c, "UNAUTHENTICATED", "Authorization header is missing")
			}

			return next(c)
		}

		ctx := c.Request().Context()
		caller, err := m.verifier.VerifyToken(ctx, token)
		if err != nil {
			deliverycontext.GetLoggerOrDefault(ctx, m.logger).Debug("Token rejected", slog.Any("error", err))
			if required {
				return response.Unauthorized(c, "UNAUTHENTICATED", "Invalid or expired token")
			}

			return next(c)
		}

		c.SetRequest(c.Request().WithContext(deliverycontext.WithCaller(ctx, caller)))

		return next(c)
	}
}

func extractToken(c echo.Context) (string, bool) {
	if header := c.Request().Header.Get(echo.HeaderAuthorization); header != "" {
		token, found := strings.CutPrefix(header, bearerPrefix)

		return token, found && token != ""
	}

	if c.Request().Method == http.MethodGet {
		if token := c.QueryParam(accessTokenQueryParam); token != "" {
			return token, true
		}
	}

	return "", false
}
