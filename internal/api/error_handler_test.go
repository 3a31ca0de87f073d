package api

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/heathcliff2012/MERN-ConnectLive/internal/core/domain"
)

func TestHTTPErrorHandler_DomainErrorMapping(t *testing.T) {
	tests := []struct {
		err  error
		code int
	}{
		{domain.ErrEmailTaken, http.StatusBadRequest},
		{domain.ErrMissingFields, http.StatusBadRequest},
		{domain.ErrPasswordTooShort, http.StatusBadRequest},
		{domain.ErrInvalidEmail, http.StatusBadRequest},
		{domain.ErrInvalidOrExpiredCode, http.StatusBadRequest},
		{domain.ErrAlreadyVerified, http.StatusBadRequest},
		{domain.ErrInvalidOrExpiredReset, http.StatusBadRequest},
		{domain.ErrSelfRequest, http.StatusBadRequest},
		{domain.ErrAlreadyFriends, http.StatusBadRequest},
		{domain.ErrRequestPending, http.StatusBadRequest},
		{domain.ErrAlreadyLiked, http.StatusBadRequest},
		{domain.ErrEmptyPost, http.StatusBadRequest},
		{domain.ErrInvalidCredentials, http.StatusUnauthorized},
		{domain.ErrInvalidToken, http.StatusUnauthorized},
		{domain.ErrEmailNotVerified, http.StatusForbidden},
		{domain.ErrForbidden, http.StatusForbidden},
		{domain.ErrNotRecipient, http.StatusForbidden},
		{domain.ErrUserNotFound, http.StatusNotFound},
		{domain.ErrRequestNotFound, http.StatusNotFound},
		{domain.ErrPostNotFound, http.StatusNotFound},
		{domain.ErrCommentNotFound, http.StatusNotFound},
		{domain.ErrRequestNotPending, http.StatusConflict},
	}

	handler := NewHTTPErrorHandler(zerolog.Nop())
	e := echo.New()

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			handler(tt.err, c)

			if rec.Code != tt.code {
				t.Fatalf("expected %d, got %d", tt.code, rec.Code)
			}
		})
	}
}

func TestHTTPErrorHandler_WrappedDomainError(t *testing.T) {
	handler := NewHTTPErrorHandler(zerolog.Nop())
	e := echo.New()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	wrapped := errors.Join(errors.New("lookup failed"), domain.ErrUserNotFound)
	handler(wrapped, c)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestHTTPErrorHandler_UnknownErrorIsOpaque(t *testing.T) {
	handler := NewHTTPErrorHandler(zerolog.Nop())
	e := echo.New()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler(errors.New("mongo: socket closed"), c)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
	if body := rec.Body.String(); body != `{"error":"internal server error"}`+"\n" {
		t.Fatalf("internal detail leaked: %s", body)
	}
}

func TestHTTPErrorHandler_EchoHTTPError(t *testing.T) {
	handler := NewHTTPErrorHandler(zerolog.Nop())
	e := echo.New()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler(echo.NewHTTPError(http.StatusUnauthorized, "no token provided"), c)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}
