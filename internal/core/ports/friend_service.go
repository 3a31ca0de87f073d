package ports

import (
	"context"

	"github.com/heathcliff2012/MERN-ConnectLive/internal/core/domain"
)

// FriendRequestView joins a request with the counterpart's public profile.
// Incoming requests carry From; outgoing requests carry To.
type FriendRequestView struct {
	domain.FriendRequest
	From *domain.PublicProfile `json:"fromUser,omitempty"`
	To   *domain.PublicProfile `json:"toUser,omitempty"`
}

// FriendRequestLists groups a user's pending requests by direction.
type FriendRequestLists struct {
	Incoming []FriendRequestView `json:"incoming"`
	Outgoing []FriendRequestView `json:"outgoing"`
}

// FriendService orchestrates the friend-request lifecycle and the social
// graph queries built on it.
type FriendService interface {
	SendRequest(ctx context.Context, senderID, recipientID string) (*domain.FriendRequest, error)
	AcceptRequest(ctx context.Context, requestID, actingUserID string) error
	DeclineRequest(ctx context.Context, requestID, actingUserID string) error
	ListRequests(ctx context.Context, userID string) (*FriendRequestLists, error)
	ListOutgoing(ctx context.Context, userID string) ([]FriendRequestView, error)
	ListFriends(ctx context.Context, userID string) ([]domain.PublicProfile, error)
	ListRecommended(ctx context.Context, userID string) ([]*domain.User, error)
	SearchUsers(ctx context.Context, userID, query string) ([]*domain.User, error)
}
