package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/veridianlabs/identity-api/internal/core/domain"
)

const (
	userCollection       = "users"
	credentialCollection = "user_credentials"
)

type MongoUserRepository struct {
	users       *mongo.Collection
	credentials *mongo.Collection
}

func NewUserRepository(db *mongo.Database) *MongoUserRepository {
	return &MongoUserRepository{
		users:       db.Collection(userCollection),
		credentials: db.Collection(credentialCollection),
	}
}

type mongoUser struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Identity  string             `bson:"identity"`
	Nickname  string             `bson:"nickname"`
	Type      int                `bson:"type"`
	CreatedAt int64              `bson:"created_at"`
}

type mongoCredential struct {
	UserID       string `bson:"user_id"`
	PasswordHash string `bson:"password_hash"`
	CreatedAt    int64  `bson:"created_at"`
}

// Create inserts the user. The unique index on identity is what turns a
// lost check-then-act race into ErrUserExists instead of a second user.
func (r *MongoUserRepository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	doc := mongoUser{
		Identity:  user.Identity,
		Nickname:  user.Nickname,
		Type:      user.Type,
		CreatedAt: user.CreatedAt.Unix(),
	}

	_, err := r.users.InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrUserExists
		}
		return nil, fmt.Errorf("insert user: %w", err)
	}

	// fetch back to get ID
	created, err := r.FindByIdentity(ctx, user.Identity)
	if err != nil {
		return nil, err
	}
	return created, nil
}

func (r *MongoUserRepository) FindByIdentity(ctx context.Context, identity string) (*domain.User, error) {
	var mu mongoUser
	if err := r.users.FindOne(ctx, bson.M{"identity": identity}).Decode(&mu); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}

	return &domain.User{
		ID:        mu.ID.Hex(),
		Identity:  mu.Identity,
		Nickname:  mu.Nickname,
		Type:      mu.Type,
		CreatedAt: unixToTime(mu.CreatedAt),
	}, nil
}

func (r *MongoUserRepository) CreatePassword(ctx context.Context, userID, passwordHash string) error {
	doc := mongoCredential{
		UserID:       userID,
		PasswordHash: passwordHash,
		CreatedAt:    time.Now().UTC().Unix(),
	}
	if _, err := r.credentials.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("insert credential: %w", err)
	}
	return nil
}

func (r *MongoUserRepository) FindCredential(ctx context.Context, userID string) (*domain.Credential, error) {
	var mc mongoCredential
	if err := r.credentials.FindOne(ctx, bson.M{"user_id": userID}).Decode(&mc); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("find credential: %w", err)
	}

	return &domain.Credential{
		UserID:       mc.UserID,
		PasswordHash: mc.PasswordHash,
		CreatedAt:    unixToTime(mc.CreatedAt),
	}, nil
}

func unixToTime(ts int64) time.Time {
	if ts == 0 {
		return time.Time{}
	}
	return time.Unix(ts, 0).UTC()
}
