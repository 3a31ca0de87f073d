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

const postsCollection = "posts"

type PostRepository struct {
	coll *mongo.Collection
}

func NewPostRepository(db *mongo.Database) *PostRepository {
	return &PostRepository{coll: db.Collection(postsCollection)}
}

type postDoc struct {
	ID        primitive.ObjectID   `bson:"_id,omitempty"`
	User      primitive.ObjectID   `bson:"user"`
	Text      string               `bson:"text,omitempty"`
	Body      string               `bson:"body,omitempty"`
	Image     string               `bson:"image,omitempty"`
	Likes     []primitive.ObjectID `bson:"likes"`
	CreatedAt time.Time            `bson:"created_at"`
	UpdatedAt time.Time            `bson:"updated_at"`
}

func (d *postDoc) toDomain() *domain.Post {
	likes := make([]string, 0, len(d.Likes))
	for _, l := range d.Likes {
		likes = append(likes, l.Hex())
	}
	return &domain.Post{
		ID:        d.ID.Hex(),
		UserID:    d.User.Hex(),
		Text:      d.Text,
		Body:      d.Body,
		Image:     d.Image,
		Likes:     likes,
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
}

func (r *PostRepository) Create(ctx context.Context, post *domain.Post) (*domain.Post, error) {
	author, err := primitive.ObjectIDFromHex(post.UserID)
	if err != nil {
		return nil, domain.ErrUserNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := postDoc{
		User:      author,
		Text:      post.Text,
		Body:      post.Body,
		Image:     post.Image,
		Likes:     []primitive.ObjectID{},
		CreatedAt: post.CreatedAt,
		UpdatedAt: post.UpdatedAt,
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert post: %w", err)
	}

	created := *post
	created.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return &created, nil
}

func (r *PostRepository) FindByID(ctx context.Context, id string) (*domain.Post, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrPostNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc postDoc
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrPostNotFound
		}
		return nil, fmt.Errorf("find post: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *PostRepository) ListByAuthors(ctx context.Context, authorIDs []string) ([]*domain.Post, error) {
	oids := objectIDs(authorIDs)
	if len(oids) == 0 {
		return []*domain.Post{}, nil
	}
	return r.findMany(ctx, bson.M{"user": bson.M{"$in": oids}})
}

func (r *PostRepository) ListExplore(ctx context.Context, excludeAuthorIDs []string, since time.Time) ([]*domain.Post, error) {
	return r.findMany(ctx, bson.M{
		"user":       bson.M{"$nin": objectIDs(excludeAuthorIDs)},
		"created_at": bson.M{"$gte": since},
	})
}

func (r *PostRepository) AddLike(ctx context.Context, postID, userID string) error {
	oid, err := primitive.ObjectIDFromHex(postID)
	if err != nil {
		return domain.ErrPostNotFound
	}
	uid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return domain.ErrUserNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.UpdateByID(ctx, oid, bson.M{"$addToSet": bson.M{"likes": uid}})
	if err != nil {
		return fmt.Errorf("like post: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrPostNotFound
	}
	return nil
}

func (r *PostRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrPostNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete post: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrPostNotFound
	}
	return nil
}

// EnsureIndexes backs the author feed and explore-window queries.
func (r *PostRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "user", Value: 1}, {Key: "created_at", Value: -1}}},
		{Keys: bson.D{{Key: "created_at", Value: -1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexes)
	return err
}

func (r *PostRepository) findMany(ctx context.Context, filter bson.M) ([]*domain.Post, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("find posts: %w", err)
	}
	defer cursor.Close(ctx)

	posts := []*domain.Post{}
	for cursor.Next(ctx) {
		var doc postDoc
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode post: %w", err)
		}
		posts = append(posts, doc.toDomain())
	}
	return posts, cursor.Err()
}
