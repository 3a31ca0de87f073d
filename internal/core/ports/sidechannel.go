package ports

import (
	"context"
	"io"
)

// EmailSender delivers transactional mail. Callers treat failures as
// best-effort: logged, never propagated into the primary state transition.
type EmailSender interface {
	SendVerificationEmail(ctx context.Context, toEmail, fullName, code string) error
	SendPasswordResetEmail(ctx context.Context, toEmail, fullName, resetURL string) error
	SendPasswordResetSuccessEmail(ctx context.Context, toEmail, fullName string) error
}

// ImageStore uploads image content to external object storage and returns
// the public URL of the stored object.
type ImageStore interface {
	Upload(ctx context.Context, content io.Reader, contentType string) (string, error)
}

// ChatProvider mirrors user identities into the third-party chat service and
// mints client-side chat tokens. UpsertUser is best-effort.
type ChatProvider interface {
	UpsertUser(ctx context.Context, id, name, image string) error
	CreateToken(userID string) (string, error)
}

// PairLocker guards a critical section keyed by an unordered user pair.
// Used to defend friend-request creation against concurrent duplicates.
type PairLocker interface {
	// TryLock returns false when another request for the pair holds the lock.
	TryLock(ctx context.Context, a, b string) (bool, error)
	Unlock(ctx context.Context, a, b string) error
}
