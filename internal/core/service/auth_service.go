package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"math/big"
	"regexp"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/heathcliff2012/MERN-ConnectLive/internal/core/domain"
	"github.com/heathcliff2012/MERN-ConnectLive/internal/core/ports"
)

const (
	minPasswordLength = 6
	verificationTTL   = time.Hour
	resetTokenTTL     = time.Hour
	resetTokenBytes   = 32
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// AuthService implements the account lifecycle: signup, email verification,
// login, password recovery, and onboarding. Email and chat-provider calls
// are best-effort; their failure is logged and never aborts the primary
// state transition.
type AuthService struct {
	users           ports.UserRepository
	tokens          *TokenIssuer
	email           ports.EmailSender
	images          ports.ImageStore
	chat            ports.ChatProvider
	appURL          string
	requireVerified bool
	logger          zerolog.Logger
}

func NewAuthService(
	users ports.UserRepository,
	tokens *TokenIssuer,
	email ports.EmailSender,
	images ports.ImageStore,
	chat ports.ChatProvider,
	appURL string,
	requireVerified bool,
	logger zerolog.Logger,
) *AuthService {
	return &AuthService{
		users:           users,
		tokens:          tokens,
		email:           email,
		images:          images,
		chat:            chat,
		appURL:          appURL,
		requireVerified: requireVerified,
		logger:          logger,
	}
}

func (s *AuthService) Signup(ctx context.Context, input ports.SignupInput) (*ports.AuthResult, error) {
	if input.FullName == "" || input.Email == "" || input.Password == "" {
		return nil, domain.ErrMissingFields
	}
	if len(input.Password) < minPasswordLength {
		return nil, domain.ErrPasswordTooShort
	}
	if !emailPattern.MatchString(input.Email) {
		return nil, domain.ErrInvalidEmail
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	now := time.Now().UTC()
	user := &domain.User{
		FullName:            input.FullName,
		Email:               input.Email,
		PasswordHash:        string(hash),
		ProfilePic:          randomAvatarURL(),
		Friends:             []string{},
		LastLogin:           now,
		CreatedAt:           now,
		UpdatedAt:           now,
		VerificationToken:   generateVerificationCode(),
		VerificationExpires: now.Add(verificationTTL),
	}

	created, err := s.users.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	if err := s.chat.UpsertUser(ctx, created.ID, created.FullName, created.ProfilePic); err != nil {
		s.logger.Error().Err(err).Str("user_id", created.ID).Msg("chat upsert failed during signup")
	}
	if err := s.email.SendVerificationEmail(ctx, created.Email, created.FullName, user.VerificationToken); err != nil {
		s.logger.Error().Err(err).Str("user_id", created.ID).Msg("verification email failed")
	}

	token, err := s.tokens.Issue(created.ID)
	if err != nil {
		return nil, fmt.Errorf("issue token: %w", err)
	}

	s.logger.Info().Str("user_id", created.ID).Msg("user signed up")
	return &ports.AuthResult{User: created, Token: token}, nil
}

func (s *AuthService) VerifyEmail(ctx context.Context, code string) error {
	if code == "" {
		return domain.ErrInvalidOrExpiredCode
	}
	user, err := s.users.FindByVerificationToken(ctx, code, time.Now().UTC())
	if err != nil {
		if err == domain.ErrUserNotFound {
			return domain.ErrInvalidOrExpiredCode
		}
		return err
	}
	if user.IsVerified {
		return domain.ErrAlreadyVerified
	}
	if err := s.users.MarkVerified(ctx, user.ID); err != nil {
		return err
	}
	s.logger.Info().Str("user_id", user.ID).Msg("email verified")
	return nil
}

func (s *AuthService) Login(ctx context.Context, email, password string) (*ports.AuthResult, error) {
	if email == "" || password == "" {
		return nil, domain.ErrMissingFields
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if err == domain.ErrUserNotFound {
			// Same error as a wrong password: no account enumeration.
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, domain.ErrInvalidCredentials
	}
	if s.requireVerified && !user.IsVerified {
		return nil, domain.ErrEmailNotVerified
	}

	now := time.Now().UTC()
	if err := s.users.SetLastLogin(ctx, user.ID, now); err != nil {
		s.logger.Error().Err(err).Str("user_id", user.ID).Msg("failed to update last login")
	} else {
		user.LastLogin = now
	}

	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		return nil, fmt.Errorf("issue token: %w", err)
	}

	s.logger.Info().Str("user_id", user.ID).Msg("user logged in")
	return &ports.AuthResult{User: user, Token: token}, nil
}

// ForgotPassword always reports success to the caller; whether the email is
// registered is never revealed.
func (s *AuthService) ForgotPassword(ctx context.Context, email string) error {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if err == domain.ErrUserNotFound {
			return nil
		}
		return err
	}

	token, err := generateResetToken()
	if err != nil {
		return fmt.Errorf("generate reset token: %w", err)
	}
	if err := s.users.SetResetToken(ctx, user.ID, token, time.Now().UTC().Add(resetTokenTTL)); err != nil {
		return err
	}

	resetURL := s.appURL + "/reset-password/" + token
	if err := s.email.SendPasswordResetEmail(ctx, user.Email, user.FullName, resetURL); err != nil {
		s.logger.Error().Err(err).Str("user_id", user.ID).Msg("password reset email failed")
	}
	return nil
}

func (s *AuthService) ResetPassword(ctx context.Context, token, newPassword string) error {
	if len(newPassword) < minPasswordLength {
		return domain.ErrPasswordTooShort
	}
	user, err := s.users.FindByResetToken(ctx, token, time.Now().UTC())
	if err != nil {
		if err == domain.ErrUserNotFound {
			return domain.ErrInvalidOrExpiredReset
		}
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	if err := s.users.ReplacePassword(ctx, user.ID, string(hash)); err != nil {
		return err
	}

	if err := s.email.SendPasswordResetSuccessEmail(ctx, user.Email, user.FullName); err != nil {
		s.logger.Error().Err(err).Str("user_id", user.ID).Msg("reset confirmation email failed")
	}

	s.logger.Info().Str("user_id", user.ID).Msg("password reset")
	return nil
}

func (s *AuthService) Onboard(ctx context.Context, input ports.OnboardingInput) (*domain.User, error) {
	picURL := input.ProfilePicURL
	if input.Image != nil {
		// The image is a required onboarding field, so a failed upload is a
		// primary failure here, unlike the email/chat side channels.
		url, err := s.images.Upload(ctx, input.Image.Content, input.Image.ContentType)
		if err != nil {
			return nil, fmt.Errorf("upload profile picture: %w", err)
		}
		picURL = url
	}
	if input.Bio == "" || input.Location == "" || picURL == "" {
		return nil, domain.ErrMissingFields
	}

	user, err := s.users.UpdateProfile(ctx, input.UserID, input.Bio, input.Location, picURL)
	if err != nil {
		return nil, err
	}

	if err := s.chat.UpsertUser(ctx, user.ID, user.FullName, user.ProfilePic); err != nil {
		s.logger.Error().Err(err).Str("user_id", user.ID).Msg("chat upsert failed during onboarding")
	}

	s.logger.Info().Str("user_id", user.ID).Msg("user onboarded")
	return user, nil
}

// randomAvatarURL picks a fallback avatar for accounts created without a
// profile picture.
func randomAvatarURL() string {
	n, err := rand.Int(rand.Reader, big.NewInt(100))
	if err != nil {
		n = big.NewInt(1)
	}
	return fmt.Sprintf("https://api.dicebear.com/7.x/avataaars/svg?seed=%d", n.Int64()+1)
}

// generateVerificationCode returns a 6-digit numeric code.
func generateVerificationCode() string {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		return fmt.Sprintf("%06d", time.Now().UnixNano()%1000000)
	}
	return fmt.Sprintf("%06d", n.Int64()+100000)
}

func generateResetToken() (string, error) {
	b := make([]byte, resetTokenBytes)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}
