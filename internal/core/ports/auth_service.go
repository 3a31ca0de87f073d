package ports

import (
	"context"
	"io"

	"github.com/heathcliff2012/MERN-ConnectLive/internal/core/domain"
)

// SignupInput carries the fields required to create an account.
type SignupInput struct {
	FullName string
	Email    string
	Password string
}

// AuthResult is returned by signup and login: the account (password and
// token fields excluded by the domain JSON tags) plus a fresh session token.
type AuthResult struct {
	User  *domain.User
	Token string
}

// ImageUpload wraps an incoming multipart file for external storage.
type ImageUpload struct {
	Content     io.Reader
	ContentType string
}

// OnboardingInput carries the one-time profile-completion fields. Exactly one
// of ProfilePicURL or Image is expected; when Image is set it is stored
// externally and the resulting URL replaces ProfilePicURL.
type OnboardingInput struct {
	UserID        string
	Bio           string
	Location      string
	ProfilePicURL string
	Image         *ImageUpload
}

// AuthService orchestrates the account lifecycle: signup, email
// verification, login, password recovery, and onboarding.
type AuthService interface {
	Signup(ctx context.Context, input SignupInput) (*AuthResult, error)
	VerifyEmail(ctx context.Context, code string) error
	Login(ctx context.Context, email, password string) (*AuthResult, error)
	ForgotPassword(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, token, newPassword string) error
	Onboard(ctx context.Context, input OnboardingInput) (*domain.User, error)
}
