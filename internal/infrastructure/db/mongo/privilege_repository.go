package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/veridianlabs/identity-api/internal/core/domain"
)

const privilegeCollection = "user_privileges"

type MongoPrivilegeRepository struct {
	coll *mongo.Collection
}

func NewPrivilegeRepository(db *mongo.Database) *MongoPrivilegeRepository {
	return &MongoPrivilegeRepository{coll: db.Collection(privilegeCollection)}
}

type mongoPrivileges struct {
	PrincipalID string   `bson:"principal_id"`
	Privileges  []string `bson:"privileges"`
}

// Has reports whether the principal holds the named privilege. A missing
// privilege document means the principal simply has none.
func (r *MongoPrivilegeRepository) Has(ctx context.Context, principal *domain.Principal, privilege string) (bool, error) {
	var mp mongoPrivileges
	if err := r.coll.FindOne(ctx, bson.M{"principal_id": principal.ID}).Decode(&mp); err != nil {
		if err == mongo.ErrNoDocuments {
			return false, nil
		}
		return false, fmt.Errorf("find privileges: %w", err)
	}

	for _, p := range mp.Privileges {
		if p == privilege {
			return true, nil
		}
	}
	return false, nil
}
