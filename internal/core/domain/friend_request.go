package domain

import (
	"errors"
	"time"
)

// FriendRequestStatus represents the lifecycle state of a friend request.
type FriendRequestStatus string

const (
	RequestPending  FriendRequestStatus = "pending"
	RequestAccepted FriendRequestStatus = "accepted"
	RequestDeclined FriendRequestStatus = "declined"
)

var ErrSelfRequest = errors.New("cannot send a friend request to yourself")
var ErrAlreadyFriends = errors.New("users are already friends")
var ErrRequestPending = errors.New("a friend request is already pending")
var ErrRequestNotFound = errors.New("friend request not found")
var ErrNotRecipient = errors.New("not authorized to act on this request")
var ErrRequestNotPending = errors.New("friend request is no longer pending")

// FriendRequest links a sender to a recipient. At most one request with a
// pending or accepted status may exist per unordered user pair; a declined
// request is deleted when the pair is retried.
type FriendRequest struct {
	ID          string              `json:"id"`
	SenderID    string              `json:"sender"`
	RecipientID string              `json:"recipient"`
	Status      FriendRequestStatus `json:"status"`
	CreatedAt   time.Time           `json:"createdAt"`
	UpdatedAt   time.Time           `json:"updatedAt"`
}

// Active reports whether the request still blocks a new one for its pair.
func (r *FriendRequest) Active() bool {
	return r.Status == RequestPending || r.Status == RequestAccepted
}
