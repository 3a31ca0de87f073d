package service

import (
	"context"
	"io"
	"time"

	"github.com/heathcliff2012/MERN-ConnectLive/internal/core/domain"
)

// Function-field stubs shared by the service tests. Unset fields return the
// domain's not-found sentinel (lookups) or succeed silently (writes).

type stubUserRepo struct {
	createFn                  func(ctx context.Context, user *domain.User) (*domain.User, error)
	findByEmailFn             func(ctx context.Context, email string) (*domain.User, error)
	findByIDFn                func(ctx context.Context, id string) (*domain.User, error)
	findByVerificationTokenFn func(ctx context.Context, code string, now time.Time) (*domain.User, error)
	findByResetTokenFn        func(ctx context.Context, token string, now time.Time) (*domain.User, error)
	markVerifiedFn            func(ctx context.Context, id string) error
	setLastLoginFn            func(ctx context.Context, id string, at time.Time) error
	setResetTokenFn           func(ctx context.Context, id, token string, expires time.Time) error
	replacePasswordFn         func(ctx context.Context, id, passwordHash string) error
	updateProfileFn           func(ctx context.Context, id, bio, location, profilePic string) (*domain.User, error)
	addFriendFn               func(ctx context.Context, id, friendID string) error
	findByIDsFn               func(ctx context.Context, ids []string) ([]*domain.User, error)
	listRecommendedFn         func(ctx context.Context, excludeIDs []string) ([]*domain.User, error)
	searchByNameFn            func(ctx context.Context, query, excludeID string) ([]*domain.User, error)
}

func (s *stubUserRepo) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	if s.createFn != nil {
		return s.createFn(ctx, user)
	}
	user.ID = "user-1"
	return user, nil
}

func (s *stubUserRepo) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	if s.findByEmailFn != nil {
		return s.findByEmailFn(ctx, email)
	}
	return nil, domain.ErrUserNotFound
}

func (s *stubUserRepo) FindByID(ctx context.Context, id string) (*domain.User, error) {
	if s.findByIDFn != nil {
		return s.findByIDFn(ctx, id)
	}
	return nil, domain.ErrUserNotFound
}

func (s *stubUserRepo) FindByVerificationToken(ctx context.Context, code string, now time.Time) (*domain.User, error) {
	if s.findByVerificationTokenFn != nil {
		return s.findByVerificationTokenFn(ctx, code, now)
	}
	return nil, domain.ErrUserNotFound
}

func (s *stubUserRepo) FindByResetToken(ctx context.Context, token string, now time.Time) (*domain.User, error) {
	if s.findByResetTokenFn != nil {
		return s.findByResetTokenFn(ctx, token, now)
	}
	return nil, domain.ErrUserNotFound
}

func (s *stubUserRepo) MarkVerified(ctx context.Context, id string) error {
	if s.markVerifiedFn != nil {
		return s.markVerifiedFn(ctx, id)
	}
	return nil
}

func (s *stubUserRepo) SetLastLogin(ctx context.Context, id string, at time.Time) error {
	if s.setLastLoginFn != nil {
		return s.setLastLoginFn(ctx, id, at)
	}
	return nil
}

func (s *stubUserRepo) SetResetToken(ctx context.Context, id, token string, expires time.Time) error {
	if s.setResetTokenFn != nil {
		return s.setResetTokenFn(ctx, id, token, expires)
	}
	return nil
}

func (s *stubUserRepo) ReplacePassword(ctx context.Context, id, passwordHash string) error {
	if s.replacePasswordFn != nil {
		return s.replacePasswordFn(ctx, id, passwordHash)
	}
	return nil
}

func (s *stubUserRepo) UpdateProfile(ctx context.Context, id, bio, location, profilePic string) (*domain.User, error) {
	if s.updateProfileFn != nil {
		return s.updateProfileFn(ctx, id, bio, location, profilePic)
	}
	return &domain.User{ID: id, Bio: bio, Location: location, ProfilePic: profilePic, IsOnboarded: true}, nil
}

func (s *stubUserRepo) AddFriend(ctx context.Context, id, friendID string) error {
	if s.addFriendFn != nil {
		return s.addFriendFn(ctx, id, friendID)
	}
	return nil
}

func (s *stubUserRepo) FindByIDs(ctx context.Context, ids []string) ([]*domain.User, error) {
	if s.findByIDsFn != nil {
		return s.findByIDsFn(ctx, ids)
	}
	return nil, nil
}

func (s *stubUserRepo) ListRecommended(ctx context.Context, excludeIDs []string) ([]*domain.User, error) {
	if s.listRecommendedFn != nil {
		return s.listRecommendedFn(ctx, excludeIDs)
	}
	return nil, nil
}

func (s *stubUserRepo) SearchByName(ctx context.Context, query, excludeID string) ([]*domain.User, error) {
	if s.searchByNameFn != nil {
		return s.searchByNameFn(ctx, query, excludeID)
	}
	return nil, nil
}

type stubRequestRepo struct {
	createFn          func(ctx context.Context, senderID, recipientID string) (*domain.FriendRequest, error)
	findByIDFn        func(ctx context.Context, id string) (*domain.FriendRequest, error)
	findBetweenFn     func(ctx context.Context, a, b string) (*domain.FriendRequest, error)
	updateStatusFn    func(ctx context.Context, id string, status domain.FriendRequestStatus) error
	deleteFn          func(ctx context.Context, id string) error
	listByRecipientFn func(ctx context.Context, recipientID string, status domain.FriendRequestStatus) ([]*domain.FriendRequest, error)
	listBySenderFn    func(ctx context.Context, senderID string, status domain.FriendRequestStatus) ([]*domain.FriendRequest, error)
}

func (s *stubRequestRepo) Create(ctx context.Context, senderID, recipientID string) (*domain.FriendRequest, error) {
	if s.createFn != nil {
		return s.createFn(ctx, senderID, recipientID)
	}
	return &domain.FriendRequest{
		ID:          "req-1",
		SenderID:    senderID,
		RecipientID: recipientID,
		Status:      domain.RequestPending,
	}, nil
}

func (s *stubRequestRepo) FindByID(ctx context.Context, id string) (*domain.FriendRequest, error) {
	if s.findByIDFn != nil {
		return s.findByIDFn(ctx, id)
	}
	return nil, domain.ErrRequestNotFound
}

func (s *stubRequestRepo) FindBetween(ctx context.Context, a, b string) (*domain.FriendRequest, error) {
	if s.findBetweenFn != nil {
		return s.findBetweenFn(ctx, a, b)
	}
	return nil, domain.ErrRequestNotFound
}

func (s *stubRequestRepo) UpdateStatus(ctx context.Context, id string, status domain.FriendRequestStatus) error {
	if s.updateStatusFn != nil {
		return s.updateStatusFn(ctx, id, status)
	}
	return nil
}

func (s *stubRequestRepo) Delete(ctx context.Context, id string) error {
	if s.deleteFn != nil {
		return s.deleteFn(ctx, id)
	}
	return nil
}

func (s *stubRequestRepo) ListByRecipient(ctx context.Context, recipientID string, status domain.FriendRequestStatus) ([]*domain.FriendRequest, error) {
	if s.listByRecipientFn != nil {
		return s.listByRecipientFn(ctx, recipientID, status)
	}
	return nil, nil
}

func (s *stubRequestRepo) ListBySender(ctx context.Context, senderID string, status domain.FriendRequestStatus) ([]*domain.FriendRequest, error) {
	if s.listBySenderFn != nil {
		return s.listBySenderFn(ctx, senderID, status)
	}
	return nil, nil
}

type stubEmailSender struct {
	verificationCalls []string
	resetCalls        []string
	successCalls      []string
	err               error
}

func (s *stubEmailSender) SendVerificationEmail(ctx context.Context, toEmail, fullName, code string) error {
	s.verificationCalls = append(s.verificationCalls, code)
	return s.err
}

func (s *stubEmailSender) SendPasswordResetEmail(ctx context.Context, toEmail, fullName, resetURL string) error {
	s.resetCalls = append(s.resetCalls, resetURL)
	return s.err
}

func (s *stubEmailSender) SendPasswordResetSuccessEmail(ctx context.Context, toEmail, fullName string) error {
	s.successCalls = append(s.successCalls, toEmail)
	return s.err
}

type stubImageStore struct {
	url string
	err error
}

func (s *stubImageStore) Upload(ctx context.Context, content io.Reader, contentType string) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	return s.url, nil
}

type stubChatProvider struct {
	upserts []string
	err     error
}

func (s *stubChatProvider) UpsertUser(ctx context.Context, id, name, image string) error {
	s.upserts = append(s.upserts, id)
	return s.err
}

func (s *stubChatProvider) CreateToken(userID string) (string, error) {
	return "chat-token", s.err
}

type stubPairLocker struct {
	locked  bool
	lockErr error
	unlocks int
}

func (s *stubPairLocker) TryLock(ctx context.Context, a, b string) (bool, error) {
	if s.lockErr != nil {
		return false, s.lockErr
	}
	return !s.locked, nil
}

func (s *stubPairLocker) Unlock(ctx context.Context, a, b string) error {
	s.unlocks++
	return nil
}
