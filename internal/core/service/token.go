package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/heathcliff2012/MERN-ConnectLive/internal/core/domain"
)

const defaultSessionTTL = 7 * 24 * time.Hour

// TokenIssuer signs and verifies session tokens. Tokens carry only the user
// id and an expiry; validity is purely cryptographic, nothing is stored
// server-side.
type TokenIssuer struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenIssuer(secret string, ttl time.Duration) *TokenIssuer {
	if ttl <= 0 {
		ttl = defaultSessionTTL
	}
	return &TokenIssuer{secret: []byte(secret), ttl: ttl}
}

type sessionClaims struct {
	jwt.RegisteredClaims
	UserID string `json:"user_id"`
}

// Issue signs a token for userID expiring after the configured TTL.
func (t *TokenIssuer) Issue(userID string) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, sessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(t.ttl)),
		},
		UserID: userID,
	})
	return token.SignedString(t.secret)
}

// Verify checks signature and expiry and returns the embedded user id.
// Tampered and expired tokens both map to domain.ErrInvalidToken so the
// caller cannot be used as an oracle for which check failed.
func (t *TokenIssuer) Verify(tokenString string) (string, error) {
	claims := &sessionClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(tk *jwt.Token) (interface{}, error) {
		if tk.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return t.secret, nil
	})
	if err != nil || !token.Valid || claims.UserID == "" {
		return "", domain.ErrInvalidToken
	}
	return claims.UserID, nil
}
