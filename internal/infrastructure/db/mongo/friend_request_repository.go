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

const friendRequestsCollection = "friend_requests"

type FriendRequestRepository struct {
	coll *mongo.Collection
}

func NewFriendRequestRepository(db *mongo.Database) *FriendRequestRepository {
	return &FriendRequestRepository{coll: db.Collection(friendRequestsCollection)}
}

type friendRequestDoc struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Sender    primitive.ObjectID `bson:"sender"`
	Recipient primitive.ObjectID `bson:"recipient"`
	Status    string             `bson:"status"`
	CreatedAt time.Time          `bson:"created_at"`
	UpdatedAt time.Time          `bson:"updated_at"`
}

func (d *friendRequestDoc) toDomain() *domain.FriendRequest {
	return &domain.FriendRequest{
		ID:          d.ID.Hex(),
		SenderID:    d.Sender.Hex(),
		RecipientID: d.Recipient.Hex(),
		Status:      domain.FriendRequestStatus(d.Status),
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
}

func (r *FriendRequestRepository) Create(ctx context.Context, senderID, recipientID string) (*domain.FriendRequest, error) {
	sender, err := primitive.ObjectIDFromHex(senderID)
	if err != nil {
		return nil, domain.ErrUserNotFound
	}
	recipient, err := primitive.ObjectIDFromHex(recipientID)
	if err != nil {
		return nil, domain.ErrUserNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	now := time.Now().UTC()
	doc := friendRequestDoc{
		Sender:    sender,
		Recipient: recipient,
		Status:    string(domain.RequestPending),
		CreatedAt: now,
		UpdatedAt: now,
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert friend request: %w", err)
	}
	doc.ID = res.InsertedID.(primitive.ObjectID)
	return doc.toDomain(), nil
}

func (r *FriendRequestRepository) FindByID(ctx context.Context, id string) (*domain.FriendRequest, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrRequestNotFound
	}
	return r.findOne(ctx, bson.M{"_id": oid})
}

func (r *FriendRequestRepository) FindBetween(ctx context.Context, a, b string) (*domain.FriendRequest, error) {
	aOID, err := primitive.ObjectIDFromHex(a)
	if err != nil {
		return nil, domain.ErrRequestNotFound
	}
	bOID, err := primitive.ObjectIDFromHex(b)
	if err != nil {
		return nil, domain.ErrRequestNotFound
	}

	return r.findOne(ctx, bson.M{"$or": bson.A{
		bson.M{"sender": aOID, "recipient": bOID},
		bson.M{"sender": bOID, "recipient": aOID},
	}})
}

func (r *FriendRequestRepository) UpdateStatus(ctx context.Context, id string, status domain.FriendRequestStatus) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrRequestNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.UpdateByID(ctx, oid, bson.M{
		"$set": bson.M{"status": string(status), "updated_at": time.Now().UTC()},
	})
	if err != nil {
		return fmt.Errorf("update friend request status: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrRequestNotFound
	}
	return nil
}

func (r *FriendRequestRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrRequestNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete friend request: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrRequestNotFound
	}
	return nil
}

func (r *FriendRequestRepository) ListByRecipient(ctx context.Context, recipientID string, status domain.FriendRequestStatus) ([]*domain.FriendRequest, error) {
	oid, err := primitive.ObjectIDFromHex(recipientID)
	if err != nil {
		return []*domain.FriendRequest{}, nil
	}
	return r.findMany(ctx, bson.M{"recipient": oid, "status": string(status)})
}

func (r *FriendRequestRepository) ListBySender(ctx context.Context, senderID string, status domain.FriendRequestStatus) ([]*domain.FriendRequest, error) {
	oid, err := primitive.ObjectIDFromHex(senderID)
	if err != nil {
		return []*domain.FriendRequest{}, nil
	}
	return r.findMany(ctx, bson.M{"sender": oid, "status": string(status)})
}

// EnsureIndexes backs the pair and directional listing queries.
func (r *FriendRequestRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "sender", Value: 1}, {Key: "recipient", Value: 1}}},
		{Keys: bson.D{{Key: "recipient", Value: 1}, {Key: "status", Value: 1}}},
		{Keys: bson.D{{Key: "sender", Value: 1}, {Key: "status", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexes)
	return err
}

func (r *FriendRequestRepository) findOne(ctx context.Context, filter bson.M) (*domain.FriendRequest, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc friendRequestDoc
	if err := r.coll.FindOne(ctx, filter).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrRequestNotFound
		}
		return nil, fmt.Errorf("find friend request: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *FriendRequestRepository) findMany(ctx context.Context, filter bson.M) ([]*domain.FriendRequest, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("find friend requests: %w", err)
	}
	defer cursor.Close(ctx)

	requests := []*domain.FriendRequest{}
	for cursor.Next(ctx) {
		var doc friendRequestDoc
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode friend request: %w", err)
		}
		requests = append(requests, doc.toDomain())
	}
	return requests, cursor.Err()
}
