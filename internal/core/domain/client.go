package domain

import "time"

// OAuth2Client is a registered client belonging to an app principal.
// AllowedGrantTypes membership is what matters; order mirrors the
// canonical selector order. A client is only ever mutated through the
// client service, never deleted here.
type OAuth2Client struct {
	ID                string      `json:"-"`
	ClientID          string      `json:"client_id"`
	AppID             string      `json:"-"`
	AllowedGrantTypes []GrantType `json:"allowed_grant_types"`
	RequirePkce       bool        `json:"require_pkce"`
	Href              string      `json:"href"`
	CreatedAt         time.Time   `json:"created_at"`
	UpdatedAt         time.Time   `json:"updated_at"`
}
