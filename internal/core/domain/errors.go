package domain

import "errors"

// Sentinel errors for the identity core. The HTTP layer maps these to
// status codes in one place; services only ever wrap them with %w.
var (
	ErrAppNotFound       = errors.New("app not found")
	ErrPrincipalNotFound = errors.New("principal not found")
	ErrClientNotFound    = errors.New("OAuth2 client not found")
	ErrUserNotFound      = errors.New("user not found")

	// ErrAdminPrivilegeRequired is wrapped by the client service with a
	// message naming what the caller was trying to do.
	ErrAdminPrivilegeRequired = errors.New("admin privilege required")

	// ErrNoGrantTypes rejects an edit that would leave the client with an
	// empty allowed-grant-type set.
	ErrNoGrantTypes = errors.New("you must specify the allowedGrantTypes property")

	// ErrUserExists signals an identity collision during registration.
	ErrUserExists = errors.New("user already exists")

	// ErrRegistrationDisabled gates the whole registration endpoint behind
	// the registration.enabled setting.
	ErrRegistrationDisabled = errors.New("this feature is disabled")

	ErrInvalidCredentials = errors.New("invalid credentials")
)
