package ports

import (
	"context"
	"time"

	"github.com/heathcliff2012/MERN-ConnectLive/internal/core/domain"
)

// UserRepository defines persistence operations for user accounts.
type UserRepository interface {
	// Create inserts a new user. Returns domain.ErrEmailTaken when the
	// unique email index rejects the insert.
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)

	// FindByVerificationToken matches an unexpired verification code.
	FindByVerificationToken(ctx context.Context, code string, now time.Time) (*domain.User, error)
	// FindByResetToken matches an unexpired password-reset token.
	FindByResetToken(ctx context.Context, token string, now time.Time) (*domain.User, error)

	// MarkVerified sets isVerified and clears the verification token pair.
	MarkVerified(ctx context.Context, id string) error
	SetLastLogin(ctx context.Context, id string, at time.Time) error
	SetResetToken(ctx context.Context, id, token string, expires time.Time) error
	// ReplacePassword stores a new password hash and clears the reset token pair.
	ReplacePassword(ctx context.Context, id, passwordHash string) error
	// UpdateProfile sets the onboarding fields and flips isOnboarded to true.
	UpdateProfile(ctx context.Context, id, bio, location, profilePic string) (*domain.User, error)

	// AddFriend inserts friendID into the user's friends set. Idempotent:
	// repeating the call never produces a duplicate entry.
	AddFriend(ctx context.Context, id, friendID string) error

	FindByIDs(ctx context.Context, ids []string) ([]*domain.User, error)
	// ListRecommended returns onboarded users not in excludeIDs.
	ListRecommended(ctx context.Context, excludeIDs []string) ([]*domain.User, error)
	// SearchByName matches fullName case-insensitively, excluding excludeID.
	SearchByName(ctx context.Context, query, excludeID string) ([]*domain.User, error)
}
