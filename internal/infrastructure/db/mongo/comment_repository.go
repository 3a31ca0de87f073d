package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/heathcliff2012/MERN-ConnectLive/internal/core/domain"
)

const commentsCollection = "comments"

type CommentRepository struct {
	coll *mongo.Collection
}

func NewCommentRepository(db *mongo.Database) *CommentRepository {
	return &CommentRepository{coll: db.Collection(commentsCollection)}
}

type commentDoc struct {
	ID        primitive.ObjectID   `bson:"_id,omitempty"`
	User      primitive.ObjectID   `bson:"user"`
	Post      primitive.ObjectID   `bson:"post"`
	Text      string               `bson:"text"`
	Likes     []primitive.ObjectID `bson:"likes"`
	CreatedAt time.Time            `bson:"created_at"`
	UpdatedAt time.Time            `bson:"updated_at"`
}

func (d *commentDoc) toDomain() *domain.Comment {
	likes := make([]string, 0, len(d.Likes))
	for _, l := range d.Likes {
		likes = append(likes, l.Hex())
	}
	return &domain.Comment{
		ID:        d.ID.Hex(),
		UserID:    d.User.Hex(),
		PostID:    d.Post.Hex(),
		Text:      d.Text,
		Likes:     likes,
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
}

func (r *CommentRepository) Create(ctx context.Context, comment *domain.Comment) (*domain.Comment, error) {
	author, err := primitive.ObjectIDFromHex(comment.UserID)
	if err != nil {
		return nil, domain.ErrUserNotFound
	}
	post, err := primitive.ObjectIDFromHex(comment.PostID)
	if err != nil {
		return nil, domain.ErrPostNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := commentDoc{
		User:      author,
		Post:      post,
		Text:      comment.Text,
		Likes:     []primitive.ObjectID{},
		CreatedAt: comment.CreatedAt,
		UpdatedAt: comment.UpdatedAt,
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert comment: %w", err)
	}

	created := *comment
	created.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return &created, nil
}

func (r *CommentRepository) FindByID(ctx context.Context, id string) (*domain.Comment, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrCommentNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc commentDoc
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrCommentNotFound
		}
		return nil, fmt.Errorf("find comment: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *CommentRepository) ListByPost(ctx context.Context, postID string) ([]*domain.Comment, error) {
	oid, err := primitive.ObjectIDFromHex(postID)
	if err != nil {
		return []*domain.Comment{}, nil
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.M{"post": oid}, opts)
	if err != nil {
		return nil, fmt.Errorf("find comments: %w", err)
	}
	defer cursor.Close(ctx)

	comments := []*domain.Comment{}
	for cursor.Next(ctx) {
		var doc commentDoc
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode comment: %w", err)
		}
		comments = append(comments, doc.toDomain())
	}
	return comments, cursor.Err()
}

func (r *CommentRepository) AddLike(ctx context.Context, commentID, userID string) error {
	oid, err := primitive.ObjectIDFromHex(commentID)
	if err != nil {
		return domain.ErrCommentNotFound
	}
	uid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return domain.ErrUserNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.UpdateByID(ctx, oid, bson.M{"$addToSet": bson.M{"likes": uid}})
	if err != nil {
		return fmt.Errorf("like comment: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrCommentNotFound
	}
	return nil
}

func (r *CommentRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrCommentNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete comment: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrCommentNotFound
	}
	return nil
}

// EnsureIndexes backs the per-post comment listing.
func (r *CommentRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "post", Value: 1}, {Key: "created_at", Value: -1}},
	})
	return err
}
