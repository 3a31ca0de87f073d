package ports

import (
	"context"
	"time"

	"github.com/heathcliff2012/MERN-ConnectLive/internal/core/domain"
)

// PostRepository defines persistence operations for posts.
type PostRepository interface {
	Create(ctx context.Context, post *domain.Post) (*domain.Post, error)
	FindByID(ctx context.Context, id string) (*domain.Post, error)
	// ListByAuthors returns posts by any of the given users, newest first.
	ListByAuthors(ctx context.Context, authorIDs []string) ([]*domain.Post, error)
	// ListExplore returns posts created at or after since whose author is
	// not in excludeAuthorIDs, newest first.
	ListExplore(ctx context.Context, excludeAuthorIDs []string, since time.Time) ([]*domain.Post, error)
	// AddLike inserts userID into the post's likes set (idempotent).
	AddLike(ctx context.Context, postID, userID string) error
	Delete(ctx context.Context, id string) error
}

// CommentRepository defines persistence operations for comments.
type CommentRepository interface {
	Create(ctx context.Context, comment *domain.Comment) (*domain.Comment, error)
	FindByID(ctx context.Context, id string) (*domain.Comment, error)
	// ListByPost returns a post's comments, newest first.
	ListByPost(ctx context.Context, postID string) ([]*domain.Comment, error)
	AddLike(ctx context.Context, commentID, userID string) error
	Delete(ctx context.Context, id string) error
}
