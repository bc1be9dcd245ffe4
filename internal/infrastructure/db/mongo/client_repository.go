package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/veridianlabs/identity-api/internal/core/domain"
)

const (
	clientCollection      = "oauth2_clients"
	redirectURICollection = "oauth2_redirect_uris"
)

type MongoClientRepository struct {
	clients   *mongo.Collection
	redirects *mongo.Collection
}

func NewClientRepository(db *mongo.Database) *MongoClientRepository {
	return &MongoClientRepository{
		clients:   db.Collection(clientCollection),
		redirects: db.Collection(redirectURICollection),
	}
}

type mongoClient struct {
	ID                primitive.ObjectID `bson:"_id,omitempty"`
	ClientID          string             `bson:"client_id"`
	AppID             string             `bson:"app_id"`
	AllowedGrantTypes []string           `bson:"allowed_grant_types"`
	RequirePkce       bool               `bson:"require_pkce"`
	Href              string             `bson:"href"`
	CreatedAt         int64              `bson:"created_at"`
	UpdatedAt         int64              `bson:"updated_at"`
}

// mongoRedirectURIs holds the full ordered redirect list for one client
// in a single document, so an edit replaces the whole list atomically.
type mongoRedirectURIs struct {
	ClientID string   `bson:"client_id"`
	URIs     []string `bson:"uris"`
}

func (r *MongoClientRepository) FindByClientID(ctx context.Context, clientID string) (*domain.OAuth2Client, error) {
	var mc mongoClient
	if err := r.clients.FindOne(ctx, bson.M{"client_id": clientID}).Decode(&mc); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrClientNotFound
		}
		return nil, fmt.Errorf("find client: %w", err)
	}

	grants := make([]domain.GrantType, 0, len(mc.AllowedGrantTypes))
	for _, g := range mc.AllowedGrantTypes {
		grants = append(grants, domain.GrantType(g))
	}

	return &domain.OAuth2Client{
		ID:                mc.ID.Hex(),
		ClientID:          mc.ClientID,
		AppID:             mc.AppID,
		AllowedGrantTypes: grants,
		RequirePkce:       mc.RequirePkce,
		Href:              mc.Href,
		CreatedAt:         unixToTime(mc.CreatedAt),
		UpdatedAt:         unixToTime(mc.UpdatedAt),
	}, nil
}

// Edit writes the client's new grant types and PKCE flag, then replaces
// its redirect URI document wholesale. The two writes are per-document
// atomic; a failure between them leaves the previous redirect list in
// place, never a partial one.
func (r *MongoClientRepository) Edit(ctx context.Context, client *domain.OAuth2Client, redirectURIs []string) error {
	grants := make([]string, 0, len(client.AllowedGrantTypes))
	for _, g := range client.AllowedGrantTypes {
		grants = append(grants, string(g))
	}

	res, err := r.clients.UpdateOne(ctx,
		bson.M{"client_id": client.ClientID},
		bson.M{"$set": bson.M{
			"allowed_grant_types": grants,
			"require_pkce":        client.RequirePkce,
			"updated_at":          client.UpdatedAt.Unix(),
		}},
	)
	if err != nil {
		return fmt.Errorf("update client: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrClientNotFound
	}

	_, err = r.redirects.ReplaceOne(ctx,
		bson.M{"client_id": client.ClientID},
		mongoRedirectURIs{ClientID: client.ClientID, URIs: redirectURIs},
		options.Replace().SetUpsert(true),
	)
	if err != nil {
		return fmt.Errorf("replace redirect uris: %w", err)
	}
	return nil
}

func (r *MongoClientRepository) RedirectURIs(ctx context.Context, client *domain.OAuth2Client) ([]string, error) {
	var doc mongoRedirectURIs
	if err := r.redirects.FindOne(ctx, bson.M{"client_id": client.ClientID}).Decode(&doc); err != nil {
		if err == mongo.ErrNoDocuments {
			return []string{}, nil
		}
		return nil, fmt.Errorf("find redirect uris: %w", err)
	}
	return doc.URIs, nil
}
