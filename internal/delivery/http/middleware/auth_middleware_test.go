package middleware

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	deliverycontext "parceltrack/internal/delivery/context"
	"parceltrack/internal/domain/entity"
	domainerrors "parceltrack/internal/domain/errors"
	mockSvc "parceltrack/internal/mocks/service"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newAuthTestEcho(t *testing.T) (*echo.Echo, *mockSvc.MockTokenVerifier) {
	verifier := mockSvc.NewMockTokenVerifier(t)
	m := NewAuthMiddleware(AuthMiddlewareParams{Verifier: verifier, Logger: slog.New(slog.DiscardHandler)})

	whoami := func(c echo.Context) error {
		caller := deliverycontext.GetCaller(c.Request().Context())
		if caller == nil {
			return c.String(http.StatusOK, "anonymous")
		}

		return c.String(http.StatusOK, caller.UID)
	}

	e := echo.New()
	e.GET("/private", whoami, m.Authenticate)
	e.GET("/public", whoami, m.Identify)

	return e, verifier
}

func serve(e *echo.Echo, target, authorization string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	if authorization != "" {
		req.Header.Set(echo.HeaderAuthorization, authorization)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}

func TestAuthMiddleware_Authenticate(t *testing.T) {
	e, verifier := newAuthTestEcho(t)
	verifier.EXPECT().VerifyToken(mock.Anything, "good").Return(&entity.Caller{UID: "u-alice"}, nil)
	verifier.EXPECT().VerifyToken(mock.Anything, "bad").Return(nil, errors.New("token expired"))

	rec := serve(e, "/private", "Bearer good")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "u-alice", rec.Body.String())

	rec = serve(e, "/private", "Bearer bad")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = serve(e, "/private", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = serve(e, "/private", "Basic Zm9vOmJhcg==")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	// EventSource clients pass the token as a query parameter.
	rec = serve(e, "/private?access_token=good", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "u-alice", rec.Body.String())
}

func TestAuthMiddleware_Identify(t *testing.T) {
	e, verifier := newAuthTestEcho(t)
	verifier.EXPECT().VerifyToken(mock.Anything, "bad").Return(nil, domainerrors.ErrUnauthenticated)

	rec := serve(e, "/public", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "anonymous", rec.Body.String())

	rec = serve(e, "/public", "Bearer bad")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "anonymous", rec.Body.String())
}
