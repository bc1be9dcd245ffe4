package domain

import "time"

// PrincipalKind discriminates the two actor types in the directory.
type PrincipalKind string

const (
	KindUser PrincipalKind = "user"
	KindApp  PrincipalKind = "app"
)

// PrivilegeAdmin is required to inspect or edit OAuth2 clients.
const PrivilegeAdmin = "admin"

// Principal is an actor in the system: a human user or an app that owns
// OAuth2 clients. Identity is fixed at creation; the directory never
// reassigns IDs or external IDs.
type Principal struct {
	ID         string        `json:"id"`
	ExternalID string        `json:"external_id"`
	Kind       PrincipalKind `json:"kind"`
	Nickname   string        `json:"nickname,omitempty"`
	CreatedAt  time.Time     `json:"created_at"`
}
