package mongo

import (
	"context"
	"fmt"
	"time"

	"github.com/thaigeo/address-api/internal/core/domain"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const usersCollection = "users"

type MongoUserRepository struct {
	coll *mongo.Collection
}

func NewUserRepository(db *mongo.Database) *MongoUserRepository {
	return &MongoUserRepository{coll: db.Collection(usersCollection)}
}

// ensureUserIndexes creates the unique index on username, run by Connect
// before the repository serves its first request. The index is the
// authoritative duplicate-registration guard; the service-level existence
// check is only a fast path.
func ensureUserIndexes(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection(usersCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "username", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("create username index: %w", err)
	}
	return nil
}

type mongoUser struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	Username     string             `bson:"username"`
	Email        string             `bson:"email"`
	PasswordHash string             `bson:"password_hash"`
	Province     string             `bson:"province,omitempty"`
	District     string             `bson:"district,omitempty"`
	SubDistrict  string             `bson:"sub_district,omitempty"`
	CreatedAt    int64              `bson:"created_at"`
}

func (r *MongoUserRepository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	createdAt := user.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}

	doc := mongoUser{
		Username:     user.Username,
		Email:        user.Email,
		PasswordHash: user.PasswordHash,
		Province:     user.Province,
		District:     user.District,
		SubDistrict:  user.SubDistrict,
		CreatedAt:    createdAt.Unix(),
	}

	_, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrUserExists
		}
		return nil, fmt.Errorf("insert user: %w", err)
	}

	// fetch back to get ID
	created, err := r.FindByUsername(ctx, user.Username)
	if err != nil {
		return nil, err
	}
	return created, nil
}

func (r *MongoUserRepository) FindByUsername(ctx context.Context, username string) (*domain.User, error) {
	var mu mongoUser
	if err := r.coll.FindOne(ctx, bson.M{"username": username}).Decode(&mu); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	return mu.toDomain(), nil
}

// FindPublicProfile excludes password_hash at the query level so the hash
// never crosses the repository boundary on this path.
func (r *MongoUserRepository) FindPublicProfile(ctx context.Context, username string) (*domain.User, error) {
	opts := options.FindOne().SetProjection(bson.M{"password_hash": 0})

	var mu mongoUser
	if err := r.coll.FindOne(ctx, bson.M{"username": username}, opts).Decode(&mu); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("find public profile: %w", err)
	}
	return mu.toDomain(), nil
}

func (r *MongoUserRepository) UpdateProfile(ctx context.Context, username string, update domain.ProfileUpdate) error {
	res, err := r.coll.UpdateOne(ctx,
		bson.M{"username": username},
		bson.M{"$set": bson.M{
			"email":        update.Email,
			"province":     update.Province,
			"district":     update.District,
			"sub_district": update.SubDistrict,
		}},
	)
	if err != nil {
		return fmt.Errorf("update profile: %w", err)
	}

	// MatchedCount (not ModifiedCount) distinguishes a missing user from a
	// write of identical values.
	if res.MatchedCount == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

func (mu *mongoUser) toDomain() *domain.User {
	return &domain.User{
		ID:           mu.ID.Hex(),
		Username:     mu.Username,
		Email:        mu.Email,
		PasswordHash: mu.PasswordHash,
		Province:     mu.Province,
		District:     mu.District,
		SubDistrict:  mu.SubDistrict,
		CreatedAt:    unixToTime(mu.CreatedAt),
	}
}

func unixToTime(ts int64) time.Time {
	if ts == 0 {
		return time.Time{}
	}
	return time.Unix(ts, 0).UTC()
}
