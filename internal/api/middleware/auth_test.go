package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/heathcliff2012/MERN-ConnectLive/internal/core/domain"
	"github.com/heathcliff2012/MERN-ConnectLive/internal/core/service"
)

// stubUserRepo resolves a single known user.
type stubUserRepo struct {
	user *domain.User
}

func (s *stubUserRepo) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	return user, nil
}

func (s *stubUserRepo) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	return nil, domain.ErrUserNotFound
}

func (s *stubUserRepo) FindByID(ctx context.Context, id string) (*domain.User, error) {
	if s.user != nil && s.user.ID == id {
		return s.user, nil
	}
	return nil, domain.ErrUserNotFound
}

func (s *stubUserRepo) FindByVerificationToken(ctx context.Context, code string, now time.Time) (*domain.User, error) {
	return nil, domain.ErrUserNotFound
}

func (s *stubUserRepo) FindByResetToken(ctx context.Context, token string, now time.Time) (*domain.User, error) {
	return nil, domain.ErrUserNotFound
}

func (s *stubUserRepo) MarkVerified(ctx context.Context, id string) error { return nil }

func (s *stubUserRepo) SetLastLogin(ctx context.Context, id string, at time.Time) error { return nil }

func (s *stubUserRepo) SetResetToken(ctx context.Context, id, token string, expires time.Time) error {
	return nil
}

func (s *stubUserRepo) ReplacePassword(ctx context.Context, id, passwordHash string) error {
	return nil
}

func (s *stubUserRepo) UpdateProfile(ctx context.Context, id, bio, location, profilePic string) (*domain.User, error) {
	return nil, domain.ErrUserNotFound
}

func (s *stubUserRepo) AddFriend(ctx context.Context, id, friendID string) error { return nil }

func (s *stubUserRepo) FindByIDs(ctx context.Context, ids []string) ([]*domain.User, error) {
	return nil, nil
}

func (s *stubUserRepo) ListRecommended(ctx context.Context, excludeIDs []string) ([]*domain.User, error) {
	return nil, nil
}

func (s *stubUserRepo) SearchByName(ctx context.Context, query, excludeID string) ([]*domain.User, error) {
	return nil, nil
}

func TestAuthMiddleware_CookieToken(t *testing.T) {
	e := echo.New()
	tokens := service.NewTokenIssuer("secret", time.Hour)
	signed, err := tokens.Issue("user-1")
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: signed})
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	called := false
	mw := Auth(tokens, &stubUserRepo{user: &domain.User{ID: "user-1", FullName: "Ann"}})
	handler := mw(func(c echo.Context) error {
		called = true
		user, ok := c.Get("user").(*domain.User)
		if !ok || user.ID != "user-1" {
			t.Fatalf("user not set")
		}
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next not called")
	}
}

func TestAuthMiddleware_BearerFallback(t *testing.T) {
	e := echo.New()
	tokens := service.NewTokenIssuer("secret", time.Hour)
	signed, err := tokens.Issue("user-1")
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+signed)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	called := false
	mw := Auth(tokens, &stubUserRepo{user: &domain.User{ID: "user-1"}})
	handler := mw(func(c echo.Context) error {
		called = true
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next not called")
	}
}

func TestAuthMiddleware_MissingToken(t *testing.T) {
	e := echo.New()
	tokens := service.NewTokenIssuer("secret", time.Hour)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	mw := Auth(tokens, &stubUserRepo{})
	handler := mw(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	if err := handler(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestAuthMiddleware_InvalidToken(t *testing.T) {
	e := echo.New()
	tokens := service.NewTokenIssuer("secret", time.Hour)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: "garbage"})
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	mw := Auth(tokens, &stubUserRepo{})
	handler := mw(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	if err := handler(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestAuthMiddleware_UnknownUser(t *testing.T) {
	e := echo.New()
	tokens := service.NewTokenIssuer("secret", time.Hour)
	signed, err := tokens.Issue("deleted-user")
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: signed})
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	mw := Auth(tokens, &stubUserRepo{user: &domain.User{ID: "user-1"}})
	handler := mw(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	if err := handler(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}
