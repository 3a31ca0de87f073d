package ports

import (
	"context"

	"github.com/heathcliff2012/MERN-ConnectLive/internal/core/domain"
)

// FriendRequestRepository defines persistence operations for friend requests.
type FriendRequestRepository interface {
	Create(ctx context.Context, senderID, recipientID string) (*domain.FriendRequest, error)
	FindByID(ctx context.Context, id string) (*domain.FriendRequest, error)
	// FindBetween returns the request between the unordered pair {a, b} in
	// either direction, or domain.ErrRequestNotFound.
	FindBetween(ctx context.Context, a, b string) (*domain.FriendRequest, error)
	UpdateStatus(ctx context.Context, id string, status domain.FriendRequestStatus) error
	Delete(ctx context.Context, id string) error
	ListByRecipient(ctx context.Context, recipientID string, status domain.FriendRequestStatus) ([]*domain.FriendRequest, error)
	ListBySender(ctx context.Context, senderID string, status domain.FriendRequestStatus) ([]*domain.FriendRequest, error)
}
