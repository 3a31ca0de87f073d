package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/heathcliff2012/MERN-ConnectLive/internal/api/metrics"
	"github.com/heathcliff2012/MERN-ConnectLive/internal/api/middleware"
	"github.com/heathcliff2012/MERN-ConnectLive/internal/core/domain"
	"github.com/heathcliff2012/MERN-ConnectLive/internal/core/ports"
)

// sessionMaxAge matches the JWT expiry so cookie and token die together.
const sessionMaxAge = 7 * 24 * time.Hour

type AuthHandler struct {
	authService   ports.AuthService
	secureCookies bool
}

// NewAuthHandler builds the auth endpoints. secureCookies should be true in
// production so the session cookie is HTTPS-only.
func NewAuthHandler(authService ports.AuthService, secureCookies bool) *AuthHandler {
	return &AuthHandler{authService: authService, secureCookies: secureCookies}
}

type signupRequest struct {
	FullName string `json:"fullName" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

type verifyEmailRequest struct {
	VerificationCode string `json:"verificationCode" validate:"required"`
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type forgotPasswordRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type resetPasswordRequest struct {
	Password string `json:"password" validate:"required,min=6"`
}

type authResponse struct {
	User  *domain.User `json:"user"`
	Token string       `json:"token,omitempty"`
}

type messageResponse struct {
	Message string `json:"message"`
}

// Signup creates a new account and opens a session.
//
// @Summary      Create an account
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      signupRequest  true  "Signup details"
// @Success      201   {object}  authResponse
// @Failure      400   {object}  map[string]string
// @Router       /auth/signup [post]
func (h *AuthHandler) Signup(c echo.Context) error {
	var req signupRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	result, err := h.authService.Signup(c.Request().Context(), ports.SignupInput{
		FullName: req.FullName,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return err
	}

	metrics.SignupsTotal.Inc()
	h.setSessionCookie(c, result.Token)

	return c.JSON(http.StatusCreated, authResponse{User: result.User, Token: result.Token})
}

// VerifyEmail consumes a verification code.
//
// @Summary      Verify email address
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      verifyEmailRequest  true  "Verification code"
// @Success      200   {object}  messageResponse
// @Failure      400   {object}  map[string]string
// @Router       /auth/verify-email [post]
func (h *AuthHandler) VerifyEmail(c echo.Context) error {
	var req verifyEmailRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := h.authService.VerifyEmail(c.Request().Context(), req.VerificationCode); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, messageResponse{Message: "email verified successfully"})
}

// Login authenticates a user and opens a session.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  authResponse
// @Failure      401   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	result, err := h.authService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		metrics.LoginsTotal.WithLabelValues("failure").Inc()
		return err
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	h.setSessionCookie(c, result.Token)

	return c.JSON(http.StatusOK, authResponse{User: result.User, Token: result.Token})
}

// Logout clears the session cookie. The token itself stays valid until
// expiry; there is no server-side revocation list.
//
// @Summary      Logout
// @Tags         auth
// @Produce      json
// @Success      200  {object}  messageResponse
// @Router       /auth/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	h.clearSessionCookie(c)
	return c.JSON(http.StatusOK, messageResponse{Message: "logged out successfully"})
}

// ForgotPassword starts the password-recovery flow. The response is the same
// whether or not the email is registered.
//
// @Summary      Request a password reset
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      forgotPasswordRequest  true  "Account email"
// @Success      200   {object}  messageResponse
// @Router       /auth/forgot-password [post]
func (h *AuthHandler) ForgotPassword(c echo.Context) error {
	var req forgotPasswordRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := h.authService.ForgotPassword(c.Request().Context(), req.Email); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, messageResponse{
		Message: "if that email is registered, a reset link has been sent",
	})
}

// ResetPassword consumes a reset token from the URL and sets a new password.
//
// @Summary      Reset password
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        token  path      string                true  "Reset token"
// @Param        body   body      resetPasswordRequest  true  "New password"
// @Success      200    {object}  messageResponse
// @Failure      400    {object}  map[string]string
// @Router       /auth/reset-password/{token} [post]
func (h *AuthHandler) ResetPassword(c echo.Context) error {
	var req resetPasswordRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := h.authService.ResetPassword(c.Request().Context(), c.Param("token"), req.Password); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, messageResponse{Message: "password reset successfully"})
}

// Onboarding completes a profile. Accepts multipart form data: bio and
// location fields plus either a profilePic file or a profilePicUrl field.
//
// @Summary      Complete profile onboarding
// @Tags         auth
// @Accept       multipart/form-data
// @Produce      json
// @Success      200  {object}  authResponse
// @Failure      400  {object}  map[string]string
// @Router       /auth/onboarding [post]
func (h *AuthHandler) Onboarding(c echo.Context) error {
	user, err := ctxUser(c)
	if err != nil {
		return err
	}

	input := ports.OnboardingInput{
		UserID:        user.ID,
		Bio:           c.FormValue("bio"),
		Location:      c.FormValue("location"),
		ProfilePicURL: c.FormValue("profilePicUrl"),
	}

	if file, err := c.FormFile("profilePic"); err == nil && file != nil {
		src, err := file.Open()
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "could not read uploaded file")
		}
		defer src.Close()
		input.Image = &ports.ImageUpload{
			Content:     src,
			ContentType: file.Header.Get("Content-Type"),
		}
	}

	updated, err := h.authService.Onboard(c.Request().Context(), input)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, authResponse{User: updated})
}

// Me returns the authenticated user.
//
// @Summary      Current user
// @Tags         auth
// @Produce      json
// @Success      200  {object}  authResponse
// @Failure      401  {object}  map[string]string
// @Router       /auth/me [get]
func (h *AuthHandler) Me(c echo.Context) error {
	user, err := ctxUser(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, authResponse{User: user})
}

func (h *AuthHandler) setSessionCookie(c echo.Context, token string) {
	c.SetCookie(&http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(sessionMaxAge.Seconds()),
		HttpOnly: true,
		Secure:   h.secureCookies,
		SameSite: http.SameSiteStrictMode,
	})
}

func (h *AuthHandler) clearSessionCookie(c echo.Context) {
	c.SetCookie(&http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.secureCookies,
		SameSite: http.SameSiteStrictMode,
	})
}
