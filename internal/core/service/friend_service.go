package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/heathcliff2012/MERN-ConnectLive/internal/core/domain"
	"github.com/heathcliff2012/MERN-ConnectLive/internal/core/ports"
)

// FriendService implements the friend-request lifecycle and the graph
// queries built on the resulting friends sets.
type FriendService struct {
	users    ports.UserRepository
	requests ports.FriendRequestRepository
	locks    ports.PairLocker
	logger   zerolog.Logger
}

func NewFriendService(
	users ports.UserRepository,
	requests ports.FriendRequestRepository,
	locks ports.PairLocker,
	logger zerolog.Logger,
) *FriendService {
	return &FriendService{users: users, requests: requests, locks: locks, logger: logger}
}

// SendRequest creates a pending request from sender to recipient. The "one
// active request per pair" rule is enforced here, not by a storage
// constraint: a short-lived pair lock narrows the window where two
// concurrent calls could both pass the existence check.
func (s *FriendService) SendRequest(ctx context.Context, senderID, recipientID string) (*domain.FriendRequest, error) {
	if senderID == recipientID {
		return nil, domain.ErrSelfRequest
	}

	recipient, err := s.users.FindByID(ctx, recipientID)
	if err != nil {
		return nil, err
	}
	if recipient.IsFriendsWith(senderID) {
		return nil, domain.ErrAlreadyFriends
	}

	if s.locks != nil {
		ok, err := s.locks.TryLock(ctx, senderID, recipientID)
		if err != nil {
			// The lock is a defense, not a dependency: proceed on lock errors.
			s.logger.Error().Err(err).Msg("pair lock unavailable")
		} else if !ok {
			return nil, domain.ErrRequestPending
		} else {
			defer func() {
				if err := s.locks.Unlock(ctx, senderID, recipientID); err != nil {
					s.logger.Error().Err(err).Msg("pair unlock failed")
				}
			}()
		}
	}

	existing, err := s.requests.FindBetween(ctx, senderID, recipientID)
	if err != nil && err != domain.ErrRequestNotFound {
		return nil, err
	}
	if existing != nil {
		switch existing.Status {
		case domain.RequestAccepted:
			return nil, domain.ErrAlreadyFriends
		case domain.RequestPending:
			return nil, domain.ErrRequestPending
		case domain.RequestDeclined:
			// A declined request does not block resubmission.
			if err := s.requests.Delete(ctx, existing.ID); err != nil {
				return nil, err
			}
		}
	}

	request, err := s.requests.Create(ctx, senderID, recipientID)
	if err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("sender", senderID).
		Str("recipient", recipientID).
		Str("request_id", request.ID).
		Msg("friend request sent")
	return request, nil
}

// AcceptRequest transitions a pending request to accepted and inserts each
// user into the other's friends set. Both insertions are idempotent
// set-adds, so a crash-retry cannot produce duplicate edges.
func (s *FriendService) AcceptRequest(ctx context.Context, requestID, actingUserID string) error {
	request, err := s.requests.FindByID(ctx, requestID)
	if err != nil {
		return err
	}
	if request.RecipientID != actingUserID {
		return domain.ErrNotRecipient
	}
	if request.Status != domain.RequestPending {
		return domain.ErrRequestNotPending
	}

	if err := s.requests.UpdateStatus(ctx, request.ID, domain.RequestAccepted); err != nil {
		return err
	}
	if err := s.users.AddFriend(ctx, request.SenderID, request.RecipientID); err != nil {
		return err
	}
	if err := s.users.AddFriend(ctx, request.RecipientID, request.SenderID); err != nil {
		return err
	}

	s.logger.Info().Str("request_id", request.ID).Msg("friend request accepted")
	return nil
}

// DeclineRequest transitions a pending request to declined. The graph is
// untouched; the declined record is removed when the pair is retried.
func (s *FriendService) DeclineRequest(ctx context.Context, requestID, actingUserID string) error {
	request, err := s.requests.FindByID(ctx, requestID)
	if err != nil {
		return err
	}
	if request.RecipientID != actingUserID {
		return domain.ErrNotRecipient
	}
	if request.Status != domain.RequestPending {
		return domain.ErrRequestNotPending
	}

	if err := s.requests.UpdateStatus(ctx, request.ID, domain.RequestDeclined); err != nil {
		return err
	}
	s.logger.Info().Str("request_id", request.ID).Msg("friend request declined")
	return nil
}

func (s *FriendService) ListRequests(ctx context.Context, userID string) (*ports.FriendRequestLists, error) {
	incoming, err := s.requests.ListByRecipient(ctx, userID, domain.RequestPending)
	if err != nil {
		return nil, err
	}
	outgoing, err := s.requests.ListBySender(ctx, userID, domain.RequestPending)
	if err != nil {
		return nil, err
	}

	profiles, err := s.counterpartProfiles(ctx, incoming, outgoing)
	if err != nil {
		return nil, err
	}

	lists := &ports.FriendRequestLists{
		Incoming: make([]ports.FriendRequestView, 0, len(incoming)),
		Outgoing: make([]ports.FriendRequestView, 0, len(outgoing)),
	}
	for _, r := range incoming {
		view := ports.FriendRequestView{FriendRequest: *r}
		if p, ok := profiles[r.SenderID]; ok {
			view.From = &p
		}
		lists.Incoming = append(lists.Incoming, view)
	}
	for _, r := range outgoing {
		view := ports.FriendRequestView{FriendRequest: *r}
		if p, ok := profiles[r.RecipientID]; ok {
			view.To = &p
		}
		lists.Outgoing = append(lists.Outgoing, view)
	}
	return lists, nil
}

func (s *FriendService) ListOutgoing(ctx context.Context, userID string) ([]ports.FriendRequestView, error) {
	outgoing, err := s.requests.ListBySender(ctx, userID, domain.RequestPending)
	if err != nil {
		return nil, err
	}
	profiles, err := s.counterpartProfiles(ctx, nil, outgoing)
	if err != nil {
		return nil, err
	}

	views := make([]ports.FriendRequestView, 0, len(outgoing))
	for _, r := range outgoing {
		view := ports.FriendRequestView{FriendRequest: *r}
		if p, ok := profiles[r.RecipientID]; ok {
			view.To = &p
		}
		views = append(views, view)
	}
	return views, nil
}

func (s *FriendService) ListFriends(ctx context.Context, userID string) ([]domain.PublicProfile, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	friends, err := s.users.FindByIDs(ctx, user.Friends)
	if err != nil {
		return nil, err
	}

	profiles := make([]domain.PublicProfile, 0, len(friends))
	for _, f := range friends {
		profiles = append(profiles, f.Public())
	}
	return profiles, nil
}

func (s *FriendService) ListRecommended(ctx context.Context, userID string) ([]*domain.User, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	exclude := append([]string{user.ID}, user.Friends...)
	return s.users.ListRecommended(ctx, exclude)
}

func (s *FriendService) SearchUsers(ctx context.Context, userID, query string) ([]*domain.User, error) {
	if query == "" {
		return nil, domain.ErrMissingFields
	}
	return s.users.SearchByName(ctx, query, userID)
}

// counterpartProfiles resolves the public profiles of every sender in
// incoming and every recipient in outgoing with a single lookup.
func (s *FriendService) counterpartProfiles(
	ctx context.Context,
	incoming, outgoing []*domain.FriendRequest,
) (map[string]domain.PublicProfile, error) {
	seen := make(map[string]struct{})
	ids := make([]string, 0, len(incoming)+len(outgoing))
	for _, r := range incoming {
		if _, ok := seen[r.SenderID]; !ok {
			seen[r.SenderID] = struct{}{}
			ids = append(ids, r.SenderID)
		}
	}
	for _, r := range outgoing {
		if _, ok := seen[r.RecipientID]; !ok {
			seen[r.RecipientID] = struct{}{}
			ids = append(ids, r.RecipientID)
		}
	}
	if len(ids) == 0 {
		return map[string]domain.PublicProfile{}, nil
	}

	users, err := s.users.FindByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	profiles := make(map[string]domain.PublicProfile, len(users))
	for _, u := range users {
		profiles[u.ID] = u.Public()
	}
	return profiles, nil
}
