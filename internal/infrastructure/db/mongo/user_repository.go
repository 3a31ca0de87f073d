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

const usersCollection = "users"

type UserRepository struct {
	coll *mongo.Collection
}

func NewUserRepository(db *mongo.Database) *UserRepository {
	return &UserRepository{coll: db.Collection(usersCollection)}
}

type userDoc struct {
	ID                  primitive.ObjectID   `bson:"_id,omitempty"`
	FullName            string               `bson:"full_name"`
	Email               string               `bson:"email"`
	PasswordHash        string               `bson:"password_hash"`
	Bio                 string               `bson:"bio,omitempty"`
	ProfilePic          string               `bson:"profile_pic,omitempty"`
	Location            string               `bson:"location,omitempty"`
	IsOnboarded         bool                 `bson:"is_onboarded"`
	IsVerified          bool                 `bson:"is_verified"`
	LastLogin           time.Time            `bson:"last_login,omitempty"`
	Friends             []primitive.ObjectID `bson:"friends"`
	CreatedAt           time.Time            `bson:"created_at"`
	UpdatedAt           time.Time            `bson:"updated_at"`
	VerificationToken   string               `bson:"verification_token,omitempty"`
	VerificationExpires time.Time            `bson:"verification_expires,omitempty"`
	ResetToken          string               `bson:"reset_password_token,omitempty"`
	ResetExpires        time.Time            `bson:"reset_password_expires,omitempty"`
}

func (d *userDoc) toDomain() *domain.User {
	friends := make([]string, 0, len(d.Friends))
	for _, f := range d.Friends {
		friends = append(friends, f.Hex())
	}
	return &domain.User{
		ID:                  d.ID.Hex(),
		FullName:            d.FullName,
		Email:               d.Email,
		PasswordHash:        d.PasswordHash,
		Bio:                 d.Bio,
		ProfilePic:          d.ProfilePic,
		Location:            d.Location,
		IsOnboarded:         d.IsOnboarded,
		IsVerified:          d.IsVerified,
		LastLogin:           d.LastLogin,
		Friends:             friends,
		CreatedAt:           d.CreatedAt,
		UpdatedAt:           d.UpdatedAt,
		VerificationToken:   d.VerificationToken,
		VerificationExpires: d.VerificationExpires,
		ResetToken:          d.ResetToken,
		ResetExpires:        d.ResetExpires,
	}
}

func (r *UserRepository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := userDoc{
		FullName:            user.FullName,
		Email:               user.Email,
		PasswordHash:        user.PasswordHash,
		ProfilePic:          user.ProfilePic,
		Friends:             []primitive.ObjectID{},
		LastLogin:           user.LastLogin,
		CreatedAt:           user.CreatedAt,
		UpdatedAt:           user.UpdatedAt,
		VerificationToken:   user.VerificationToken,
		VerificationExpires: user.VerificationExpires,
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrEmailTaken
		}
		return nil, fmt.Errorf("insert user: %w", err)
	}

	created := *user
	created.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return &created, nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.findOne(ctx, bson.M{"email": email})
}

func (r *UserRepository) FindByID(ctx context.Context, id string) (*domain.User, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrUserNotFound
	}
	return r.findOne(ctx, bson.M{"_id": oid})
}

func (r *UserRepository) FindByVerificationToken(ctx context.Context, code string, now time.Time) (*domain.User, error) {
	return r.findOne(ctx, bson.M{
		"verification_token":   code,
		"verification_expires": bson.M{"$gt": now},
	})
}

func (r *UserRepository) FindByResetToken(ctx context.Context, token string, now time.Time) (*domain.User, error) {
	return r.findOne(ctx, bson.M{
		"reset_password_token":   token,
		"reset_password_expires": bson.M{"$gt": now},
	})
}

func (r *UserRepository) MarkVerified(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrUserNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.UpdateByID(ctx, oid, bson.M{
		"$set":   bson.M{"is_verified": true, "updated_at": time.Now().UTC()},
		"$unset": bson.M{"verification_token": "", "verification_expires": ""},
	})
	if err != nil {
		return fmt.Errorf("mark verified: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

func (r *UserRepository) SetLastLogin(ctx context.Context, id string, at time.Time) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrUserNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	_, err = r.coll.UpdateByID(ctx, oid, bson.M{"$set": bson.M{"last_login": at}})
	if err != nil {
		return fmt.Errorf("set last login: %w", err)
	}
	return nil
}

func (r *UserRepository) SetResetToken(ctx context.Context, id, token string, expires time.Time) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrUserNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.UpdateByID(ctx, oid, bson.M{
		"$set": bson.M{"reset_password_token": token, "reset_password_expires": expires},
	})
	if err != nil {
		return fmt.Errorf("set reset token: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

func (r *UserRepository) ReplacePassword(ctx context.Context, id, passwordHash string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrUserNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.UpdateByID(ctx, oid, bson.M{
		"$set":   bson.M{"password_hash": passwordHash, "updated_at": time.Now().UTC()},
		"$unset": bson.M{"reset_password_token": "", "reset_password_expires": ""},
	})
	if err != nil {
		return fmt.Errorf("replace password: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

func (r *UserRepository) UpdateProfile(ctx context.Context, id, bio, location, profilePic string) (*domain.User, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrUserNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	update := bson.M{"$set": bson.M{
		"bio":          bio,
		"location":     location,
		"profile_pic":  profilePic,
		"is_onboarded": true,
		"updated_at":   time.Now().UTC(),
	}}

	var doc userDoc
	err = r.coll.FindOneAndUpdate(
		ctx,
		bson.M{"_id": oid},
		update,
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("update profile: %w", err)
	}
	return doc.toDomain(), nil
}

// AddFriend uses $addToSet, so repeated calls cannot duplicate an edge.
func (r *UserRepository) AddFriend(ctx context.Context, id, friendID string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrUserNotFound
	}
	fid, err := primitive.ObjectIDFromHex(friendID)
	if err != nil {
		return domain.ErrUserNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.UpdateByID(ctx, oid, bson.M{"$addToSet": bson.M{"friends": fid}})
	if err != nil {
		return fmt.Errorf("add friend: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

func (r *UserRepository) FindByIDs(ctx context.Context, ids []string) ([]*domain.User, error) {
	oids := objectIDs(ids)
	if len(oids) == 0 {
		return []*domain.User{}, nil
	}
	return r.findMany(ctx, bson.M{"_id": bson.M{"$in": oids}}, nil)
}

func (r *UserRepository) ListRecommended(ctx context.Context, excludeIDs []string) ([]*domain.User, error) {
	filter := bson.M{
		"_id":          bson.M{"$nin": objectIDs(excludeIDs)},
		"is_onboarded": true,
	}
	return r.findMany(ctx, filter, nil)
}

func (r *UserRepository) SearchByName(ctx context.Context, query, excludeID string) ([]*domain.User, error) {
	filter := bson.M{
		"full_name": primitive.Regex{Pattern: query, Options: "i"},
	}
	if oid, err := primitive.ObjectIDFromHex(excludeID); err == nil {
		filter["_id"] = bson.M{"$ne": oid}
	}
	return r.findMany(ctx, filter, nil)
}

// EnsureIndexes creates the unique email index that backs the
// duplicate-signup rejection.
func (r *UserRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{Keys: bson.D{{Key: "verification_token", Value: 1}}},
		{Keys: bson.D{{Key: "reset_password_token", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexes)
	return err
}

func (r *UserRepository) findOne(ctx context.Context, filter bson.M) (*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc userDoc
	if err := r.coll.FindOne(ctx, filter).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *UserRepository) findMany(ctx context.Context, filter bson.M, opts *options.FindOptions) ([]*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("find users: %w", err)
	}
	defer cursor.Close(ctx)

	users := []*domain.User{}
	for cursor.Next(ctx) {
		var doc userDoc
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode user: %w", err)
		}
		users = append(users, doc.toDomain())
	}
	return users, cursor.Err()
}

// objectIDs converts hex ids, silently dropping malformed ones.
func objectIDs(ids []string) []primitive.ObjectID {
	oids := make([]primitive.ObjectID, 0, len(ids))
	for _, id := range ids {
		if oid, err := primitive.ObjectIDFromHex(id); err == nil {
			oids = append(oids, oid)
		}
	}
	return oids
}
