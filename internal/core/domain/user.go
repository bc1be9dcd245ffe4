package domain

import "time"

// UserTypeUser is the account type assigned to self-registered users.
const UserTypeUser = 1

// IdentityScheme prefixes email addresses to form the unique identity key.
const IdentityScheme = "mailto:"

// User is a registered account, keyed by its identity URI
// (mailto:<email>). Identity is unique across all users.
type User struct {
	ID        string    `json:"id"`
	Identity  string    `json:"identity"`
	Nickname  string    `json:"nickname"`
	Type      int       `json:"type"`
	CreatedAt time.Time `json:"created_at"`
}

// Credential is a password credential bound to a user. Only the hash is
// ever stored.
type Credential struct {
	UserID       string    `json:"user_id"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

// EmailIdentity builds the canonical identity string for an email address.
func EmailIdentity(email string) string {
	return IdentityScheme + email
}
