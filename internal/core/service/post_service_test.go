package service

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heathcliff2012/MERN-ConnectLive/internal/core/domain"
	"github.com/heathcliff2012/MERN-ConnectLive/internal/core/ports"
)

type stubPostRepo struct {
	createFn      func(ctx context.Context, post *domain.Post) (*domain.Post, error)
	findByIDFn    func(ctx context.Context, id string) (*domain.Post, error)
	listByAuthors func(ctx context.Context, authorIDs []string) ([]*domain.Post, error)
	listExploreFn func(ctx context.Context, excludeAuthorIDs []string, since time.Time) ([]*domain.Post, error)
	addLikeFn     func(ctx context.Context, postID, userID string) error
	deleteFn      func(ctx context.Context, id string) error
}

func (s *stubPostRepo) Create(ctx context.Context, post *domain.Post) (*domain.Post, error) {
	if s.createFn != nil {
		return s.createFn(ctx, post)
	}
	post.ID = "post-1"
	return post, nil
}

func (s *stubPostRepo) FindByID(ctx context.Context, id string) (*domain.Post, error) {
	if s.findByIDFn != nil {
		return s.findByIDFn(ctx, id)
	}
	return nil, domain.ErrPostNotFound
}

func (s *stubPostRepo) ListByAuthors(ctx context.Context, authorIDs []string) ([]*domain.Post, error) {
	if s.listByAuthors != nil {
		return s.listByAuthors(ctx, authorIDs)
	}
	return nil, nil
}

func (s *stubPostRepo) ListExplore(ctx context.Context, excludeAuthorIDs []string, since time.Time) ([]*domain.Post, error) {
	if s.listExploreFn != nil {
		return s.listExploreFn(ctx, excludeAuthorIDs, since)
	}
	return nil, nil
}

func (s *stubPostRepo) AddLike(ctx context.Context, postID, userID string) error {
	if s.addLikeFn != nil {
		return s.addLikeFn(ctx, postID, userID)
	}
	return nil
}

func (s *stubPostRepo) Delete(ctx context.Context, id string) error {
	if s.deleteFn != nil {
		return s.deleteFn(ctx, id)
	}
	return nil
}

type stubCommentRepo struct {
	createFn     func(ctx context.Context, comment *domain.Comment) (*domain.Comment, error)
	findByIDFn   func(ctx context.Context, id string) (*domain.Comment, error)
	listByPostFn func(ctx context.Context, postID string) ([]*domain.Comment, error)
	addLikeFn    func(ctx context.Context, commentID, userID string) error
	deleteFn     func(ctx context.Context, id string) error
}

func (s *stubCommentRepo) Create(ctx context.Context, comment *domain.Comment) (*domain.Comment, error) {
	if s.createFn != nil {
		return s.createFn(ctx, comment)
	}
	comment.ID = "comment-1"
	return comment, nil
}

func (s *stubCommentRepo) FindByID(ctx context.Context, id string) (*domain.Comment, error) {
	if s.findByIDFn != nil {
		return s.findByIDFn(ctx, id)
	}
	return nil, domain.ErrCommentNotFound
}

func (s *stubCommentRepo) ListByPost(ctx context.Context, postID string) ([]*domain.Comment, error) {
	if s.listByPostFn != nil {
		return s.listByPostFn(ctx, postID)
	}
	return nil, nil
}

func (s *stubCommentRepo) AddLike(ctx context.Context, commentID, userID string) error {
	if s.addLikeFn != nil {
		return s.addLikeFn(ctx, commentID, userID)
	}
	return nil
}

func (s *stubCommentRepo) Delete(ctx context.Context, id string) error {
	if s.deleteFn != nil {
		return s.deleteFn(ctx, id)
	}
	return nil
}

func newPostService(posts *stubPostRepo, comments *stubCommentRepo, users *stubUserRepo) *PostService {
	return NewPostService(posts, comments, users, &stubImageStore{url: "https://img.example.com/p.jpg"}, zerolog.Nop())
}

func TestCreatePost_RejectsEmpty(t *testing.T) {
	svc := newPostService(&stubPostRepo{}, &stubCommentRepo{}, &stubUserRepo{})
	_, err := svc.CreatePost(context.Background(), ports.CreatePostInput{UserID: "user-1"})
	assert.ErrorIs(t, err, domain.ErrEmptyPost)
}

func TestCreatePost_TextOnly(t *testing.T) {
	svc := newPostService(&stubPostRepo{}, &stubCommentRepo{}, &stubUserRepo{})
	post, err := svc.CreatePost(context.Background(), ports.CreatePostInput{
		UserID: "user-1",
		Text:   "hello",
	})
	require.NoError(t, err)
	assert.Equal(t, "hello", post.Text)
	assert.Empty(t, post.Image)
}

func TestExploreFeed_ExcludesSelfAndFriends(t *testing.T) {
	users := &stubUserRepo{
		findByIDFn: func(ctx context.Context, id string) (*domain.User, error) {
			return &domain.User{ID: id, Friends: []string{"user-2"}}, nil
		},
		findByIDsFn: func(ctx context.Context, ids []string) ([]*domain.User, error) {
			return []*domain.User{{ID: "user-3", FullName: "Cal"}}, nil
		},
	}
	posts := &stubPostRepo{
		listExploreFn: func(ctx context.Context, exclude []string, since time.Time) ([]*domain.Post, error) {
			assert.ElementsMatch(t, []string{"user-1", "user-2"}, exclude)
			// Window is the last 7 days.
			assert.WithinDuration(t, time.Now().Add(-7*24*time.Hour), since, time.Minute)
			return []*domain.Post{{ID: "post-1", UserID: "user-3", Text: "hi"}}, nil
		},
	}
	svc := newPostService(posts, &stubCommentRepo{}, users)

	feed, err := svc.ExploreFeed(context.Background(), "user-1")
	require.NoError(t, err)
	require.Len(t, feed, 1)
	assert.Equal(t, "Cal", feed[0].Author.FullName)
}

func TestFriendFeed_EmptyWithoutFriends(t *testing.T) {
	users := &stubUserRepo{
		findByIDFn: func(ctx context.Context, id string) (*domain.User, error) {
			return &domain.User{ID: id}, nil
		},
	}
	svc := newPostService(&stubPostRepo{}, &stubCommentRepo{}, users)

	feed, err := svc.FriendFeed(context.Background(), "user-1")
	require.NoError(t, err)
	assert.Empty(t, feed)
}

func TestLikePost_AtMostOnce(t *testing.T) {
	posts := &stubPostRepo{
		findByIDFn: func(ctx context.Context, id string) (*domain.Post, error) {
			return &domain.Post{ID: id, Likes: []string{"user-1"}}, nil
		},
	}
	svc := newPostService(posts, &stubCommentRepo{}, &stubUserRepo{})

	err := svc.LikePost(context.Background(), "post-1", "user-1")
	assert.ErrorIs(t, err, domain.ErrAlreadyLiked)

	err = svc.LikePost(context.Background(), "post-1", "user-2")
	assert.NoError(t, err)
}

func TestAddComment_RequiresExistingPost(t *testing.T) {
	svc := newPostService(&stubPostRepo{}, &stubCommentRepo{}, &stubUserRepo{})
	_, err := svc.AddComment(context.Background(), "ghost", "user-1", "nice")
	assert.ErrorIs(t, err, domain.ErrPostNotFound)
}

func TestDeletePost_AuthorOnly(t *testing.T) {
	var deleted bool
	posts := &stubPostRepo{
		findByIDFn: func(ctx context.Context, id string) (*domain.Post, error) {
			return &domain.Post{ID: id, UserID: "user-1"}, nil
		},
		deleteFn: func(ctx context.Context, id string) error {
			deleted = true
			return nil
		},
	}
	svc := newPostService(posts, &stubCommentRepo{}, &stubUserRepo{})

	err := svc.DeletePost(context.Background(), "post-1", "user-2")
	assert.ErrorIs(t, err, domain.ErrForbidden)
	assert.False(t, deleted)

	require.NoError(t, svc.DeletePost(context.Background(), "post-1", "user-1"))
	assert.True(t, deleted)
}

func TestDeleteComment_AuthorOnly(t *testing.T) {
	posts := &stubPostRepo{
		findByIDFn: func(ctx context.Context, id string) (*domain.Post, error) {
			return &domain.Post{ID: id, UserID: "user-1"}, nil
		},
	}
	comments := &stubCommentRepo{
		findByIDFn: func(ctx context.Context, id string) (*domain.Comment, error) {
			return &domain.Comment{ID: id, PostID: "post-1", UserID: "user-1"}, nil
		},
	}
	svc := newPostService(posts, comments, &stubUserRepo{})

	err := svc.DeleteComment(context.Background(), "post-1", "comment-1", "user-2")
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestDeleteComment_RequiresExistingPost(t *testing.T) {
	var deleted bool
	comments := &stubCommentRepo{
		findByIDFn: func(ctx context.Context, id string) (*domain.Comment, error) {
			return &domain.Comment{ID: id, PostID: "post-1", UserID: "user-1"}, nil
		},
		deleteFn: func(ctx context.Context, id string) error {
			deleted = true
			return nil
		},
	}
	svc := newPostService(&stubPostRepo{}, comments, &stubUserRepo{})

	err := svc.DeleteComment(context.Background(), "ghost", "comment-1", "user-1")
	assert.ErrorIs(t, err, domain.ErrPostNotFound)
	assert.False(t, deleted)
}

func TestDeleteComment_RejectsPostMismatch(t *testing.T) {
	posts := &stubPostRepo{
		findByIDFn: func(ctx context.Context, id string) (*domain.Post, error) {
			return &domain.Post{ID: id, UserID: "user-1"}, nil
		},
	}
	var deleted bool
	comments := &stubCommentRepo{
		findByIDFn: func(ctx context.Context, id string) (*domain.Comment, error) {
			return &domain.Comment{ID: id, PostID: "post-1", UserID: "user-1"}, nil
		},
		deleteFn: func(ctx context.Context, id string) error {
			deleted = true
			return nil
		},
	}
	svc := newPostService(posts, comments, &stubUserRepo{})

	// The comment belongs to post-1, so deleting it through post-2 fails.
	err := svc.DeleteComment(context.Background(), "post-2", "comment-1", "user-1")
	assert.ErrorIs(t, err, domain.ErrCommentNotFound)
	assert.False(t, deleted)

	require.NoError(t, svc.DeleteComment(context.Background(), "post-1", "comment-1", "user-1"))
	assert.True(t, deleted)
}
