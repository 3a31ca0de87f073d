package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/heathcliff2012/MERN-ConnectLive/internal/core/domain"
	"github.com/heathcliff2012/MERN-ConnectLive/internal/core/ports"
)

const exploreWindow = 7 * 24 * time.Hour

// PostService handles feed content. It consumes the friend graph (via the
// user record's friends set) to scope the friend and explore feeds.
type PostService struct {
	posts    ports.PostRepository
	comments ports.CommentRepository
	users    ports.UserRepository
	images   ports.ImageStore
	logger   zerolog.Logger
}

func NewPostService(
	posts ports.PostRepository,
	comments ports.CommentRepository,
	users ports.UserRepository,
	images ports.ImageStore,
	logger zerolog.Logger,
) *PostService {
	return &PostService{posts: posts, comments: comments, users: users, images: images, logger: logger}
}

func (s *PostService) CreatePost(ctx context.Context, input ports.CreatePostInput) (*domain.Post, error) {
	imageURL := ""
	if input.Image != nil {
		url, err := s.images.Upload(ctx, input.Image.Content, input.Image.ContentType)
		if err != nil {
			return nil, fmt.Errorf("upload post image: %w", err)
		}
		imageURL = url
	}
	if input.Text == "" && input.Body == "" && imageURL == "" {
		return nil, domain.ErrEmptyPost
	}

	now := time.Now().UTC()
	post, err := s.posts.Create(ctx, &domain.Post{
		UserID:    input.UserID,
		Text:      input.Text,
		Body:      input.Body,
		Image:     imageURL,
		Likes:     []string{},
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("post_id", post.ID).Str("user_id", input.UserID).Msg("post created")
	return post, nil
}

func (s *PostService) FriendFeed(ctx context.Context, userID string) ([]ports.PostView, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(user.Friends) == 0 {
		return []ports.PostView{}, nil
	}
	posts, err := s.posts.ListByAuthors(ctx, user.Friends)
	if err != nil {
		return nil, err
	}
	return s.joinAuthors(ctx, posts)
}

func (s *PostService) ExploreFeed(ctx context.Context, userID string) ([]ports.PostView, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	exclude := append([]string{user.ID}, user.Friends...)
	since := time.Now().UTC().Add(-exploreWindow)
	posts, err := s.posts.ListExplore(ctx, exclude, since)
	if err != nil {
		return nil, err
	}
	return s.joinAuthors(ctx, posts)
}

func (s *PostService) UserProfile(ctx context.Context, targetUserID string) (*ports.ProfileView, error) {
	user, err := s.users.FindByID(ctx, targetUserID)
	if err != nil {
		return nil, err
	}
	posts, err := s.posts.ListByAuthors(ctx, []string{user.ID})
	if err != nil {
		return nil, err
	}
	views, err := s.joinAuthors(ctx, posts)
	if err != nil {
		return nil, err
	}
	return &ports.ProfileView{User: user, Posts: views, PostsCount: len(views)}, nil
}

func (s *PostService) LikePost(ctx context.Context, postID, userID string) error {
	post, err := s.posts.FindByID(ctx, postID)
	if err != nil {
		return err
	}
	if post.LikedBy(userID) {
		return domain.ErrAlreadyLiked
	}
	return s.posts.AddLike(ctx, postID, userID)
}

func (s *PostService) AddComment(ctx context.Context, postID, userID, text string) (*domain.Comment, error) {
	if text == "" {
		return nil, domain.ErrMissingFields
	}
	if _, err := s.posts.FindByID(ctx, postID); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	return s.comments.Create(ctx, &domain.Comment{
		UserID:    userID,
		PostID:    postID,
		Text:      text,
		Likes:     []string{},
		CreatedAt: now,
		UpdatedAt: now,
	})
}

func (s *PostService) ListComments(ctx context.Context, postID string) ([]ports.CommentView, error) {
	comments, err := s.comments.ListByPost(ctx, postID)
	if err != nil {
		return nil, err
	}

	profiles, err := s.authorProfiles(ctx, commentAuthorIDs(comments))
	if err != nil {
		return nil, err
	}
	views := make([]ports.CommentView, 0, len(comments))
	for _, c := range comments {
		views = append(views, ports.CommentView{Comment: *c, Author: profiles[c.UserID]})
	}
	return views, nil
}

func (s *PostService) LikeComment(ctx context.Context, commentID, userID string) error {
	comment, err := s.comments.FindByID(ctx, commentID)
	if err != nil {
		return err
	}
	if comment.LikedBy(userID) {
		return domain.ErrAlreadyLiked
	}
	return s.comments.AddLike(ctx, commentID, userID)
}

func (s *PostService) DeletePost(ctx context.Context, postID, userID string) error {
	post, err := s.posts.FindByID(ctx, postID)
	if err != nil {
		return err
	}
	if post.UserID != userID {
		return domain.ErrForbidden
	}
	return s.posts.Delete(ctx, postID)
}

func (s *PostService) DeleteComment(ctx context.Context, postID, commentID, userID string) error {
	if _, err := s.posts.FindByID(ctx, postID); err != nil {
		return err
	}
	comment, err := s.comments.FindByID(ctx, commentID)
	if err != nil {
		return err
	}
	if comment.PostID != postID {
		return domain.ErrCommentNotFound
	}
	if comment.UserID != userID {
		return domain.ErrForbidden
	}
	return s.comments.Delete(ctx, commentID)
}

func (s *PostService) joinAuthors(ctx context.Context, posts []*domain.Post) ([]ports.PostView, error) {
	profiles, err := s.authorProfiles(ctx, postAuthorIDs(posts))
	if err != nil {
		return nil, err
	}
	views := make([]ports.PostView, 0, len(posts))
	for _, p := range posts {
		views = append(views, ports.PostView{Post: *p, Author: profiles[p.UserID]})
	}
	return views, nil
}

func (s *PostService) authorProfiles(ctx context.Context, ids []string) (map[string]domain.PublicProfile, error) {
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

func postAuthorIDs(posts []*domain.Post) []string {
	seen := make(map[string]struct{}, len(posts))
	ids := make([]string, 0, len(posts))
	for _, p := range posts {
		if _, ok := seen[p.UserID]; !ok {
			seen[p.UserID] = struct{}{}
			ids = append(ids, p.UserID)
		}
	}
	return ids
}

func commentAuthorIDs(comments []*domain.Comment) []string {
	seen := make(map[string]struct{}, len(comments))
	ids := make([]string, 0, len(comments))
	for _, c := range comments {
		if _, ok := seen[c.UserID]; !ok {
			seen[c.UserID] = struct{}{}
			ids = append(ids, c.UserID)
		}
	}
	return ids
}
