package domain

import (
	"errors"
	"time"
)

var ErrEmailTaken = errors.New("email is already registered")
var ErrInvalidCredentials = errors.New("invalid email or password")
var ErrInvalidToken = errors.New("invalid or expired token")
var ErrEmailNotVerified = errors.New("email is not verified")
var ErrUserNotFound = errors.New("user not found")
var ErrInvalidOrExpiredCode = errors.New("verification code is invalid or expired")
var ErrAlreadyVerified = errors.New("email is already verified")
var ErrInvalidOrExpiredReset = errors.New("reset token is invalid or expired")
var ErrMissingFields = errors.New("all fields are required")
var ErrPasswordTooShort = errors.New("password must be at least 6 characters long")
var ErrInvalidEmail = errors.New("invalid email format")

// User models an account and its social state. PasswordHash and the
// verification/reset token pairs never leave the server.
type User struct {
	ID           string    `json:"id"`
	FullName     string    `json:"fullName"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Bio          string    `json:"bio"`
	ProfilePic   string    `json:"profilePic"`
	Location     string    `json:"location"`
	IsOnboarded  bool      `json:"isOnboarded"`
	IsVerified   bool      `json:"isVerified"`
	LastLogin    time.Time `json:"lastLogin"`
	Friends      []string  `json:"friends"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`

	VerificationToken   string    `json:"-"`
	VerificationExpires time.Time `json:"-"`
	ResetToken          string    `json:"-"`
	ResetExpires        time.Time `json:"-"`
}

// PublicProfile is the reduced view of a user embedded in friend lists,
// request listings, and post author joins.
type PublicProfile struct {
	ID         string `json:"id"`
	FullName   string `json:"fullName"`
	ProfilePic string `json:"profilePic"`
	Location   string `json:"location,omitempty"`
}

// Public strips a user down to the fields other users may see.
func (u *User) Public() PublicProfile {
	return PublicProfile{
		ID:         u.ID,
		FullName:   u.FullName,
		ProfilePic: u.ProfilePic,
		Location:   u.Location,
	}
}

// IsFriendsWith reports whether other is in the user's friends set.
func (u *User) IsFriendsWith(other string) bool {
	for _, id := range u.Friends {
		if id == other {
			return true
		}
	}
	return false
}
