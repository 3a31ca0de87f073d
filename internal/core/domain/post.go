package domain

import (
	"errors"
	"time"
)

var ErrPostNotFound = errors.New("post not found")
var ErrCommentNotFound = errors.New("comment not found")
var ErrAlreadyLiked = errors.New("already liked")
var ErrEmptyPost = errors.New("post must have text or an image")
var ErrForbidden = errors.New("access forbidden")

// Post is a piece of user content in the feed. Image holds the externally
// stored URL, never raw bytes.
type Post struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user"`
	Text      string    `json:"text"`
	Body      string    `json:"body"`
	Image     string    `json:"image"`
	Likes     []string  `json:"likes"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Comment belongs to exactly one post.
type Comment struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user"`
	PostID    string    `json:"post"`
	Text      string    `json:"text"`
	Likes     []string  `json:"likes"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// LikedBy reports whether userID already liked the post.
func (p *Post) LikedBy(userID string) bool {
	for _, id := range p.Likes {
		if id == userID {
			return true
		}
	}
	return false
}

// LikedBy reports whether userID already liked the comment.
func (c *Comment) LikedBy(userID string) bool {
	for _, id := range c.Likes {
		if id == userID {
			return true
		}
	}
	return false
}
