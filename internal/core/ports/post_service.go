package ports

import (
	"context"

	"github.com/heathcliff2012/MERN-ConnectLive/internal/core/domain"
)

// CreatePostInput carries new post content. Image, when set, is stored
// externally before the post is persisted.
type CreatePostInput struct {
	UserID string
	Text   string
	Body   string
	Image  *ImageUpload
}

// PostView joins a post with its author's public profile.
type PostView struct {
	domain.Post
	Author domain.PublicProfile `json:"author"`
}

// CommentView joins a comment with its author's public profile.
type CommentView struct {
	domain.Comment
	Author domain.PublicProfile `json:"author"`
}

// ProfileView is a user's public page: profile fields plus their posts.
type ProfileView struct {
	User       *domain.User `json:"user"`
	Posts      []PostView   `json:"posts"`
	PostsCount int          `json:"postsCount"`
}

// PostService handles feed content: posts, comments, and likes.
type PostService interface {
	CreatePost(ctx context.Context, input CreatePostInput) (*domain.Post, error)
	FriendFeed(ctx context.Context, userID string) ([]PostView, error)
	ExploreFeed(ctx context.Context, userID string) ([]PostView, error)
	UserProfile(ctx context.Context, targetUserID string) (*ProfileView, error)
	LikePost(ctx context.Context, postID, userID string) error
	AddComment(ctx context.Context, postID, userID, text string) (*domain.Comment, error)
	ListComments(ctx context.Context, postID string) ([]CommentView, error)
	LikeComment(ctx context.Context, commentID, userID string) error
	DeletePost(ctx context.Context, postID, userID string) error
	DeleteComment(ctx context.Context, postID, commentID, userID string) error
}
