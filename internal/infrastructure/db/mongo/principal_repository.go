package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/veridianlabs/identity-api/internal/core/domain"
)

const principalCollection = "principals"

type MongoPrincipalRepository struct {
	coll *mongo.Collection
}

func NewPrincipalRepository(db *mongo.Database) *MongoPrincipalRepository {
	return &MongoPrincipalRepository{coll: db.Collection(principalCollection)}
}

type mongoPrincipal struct {
	ID         primitive.ObjectID `bson:"_id,omitempty"`
	ExternalID string             `bson:"external_id"`
	Kind       string             `bson:"kind"`
	Nickname   string             `bson:"nickname,omitempty"`
	CreatedAt  int64              `bson:"created_at"`
}

func (r *MongoPrincipalRepository) FindByExternalID(ctx context.Context, externalID string, kind domain.PrincipalKind) (*domain.Principal, error) {
	var mp mongoPrincipal
	filter := bson.M{"external_id": externalID, "kind": string(kind)}
	if err := r.coll.FindOne(ctx, filter).Decode(&mp); err != nil {
		if err == mongo.ErrNoDocuments {
			if kind == domain.KindApp {
				return nil, domain.ErrAppNotFound
			}
			return nil, domain.ErrPrincipalNotFound
		}
		return nil, fmt.Errorf("find principal: %w", err)
	}

	return &domain.Principal{
		ID:         mp.ID.Hex(),
		ExternalID: mp.ExternalID,
		Kind:       domain.PrincipalKind(mp.Kind),
		Nickname:   mp.Nickname,
		CreatedAt:  unixToTime(mp.CreatedAt),
	}, nil
}
