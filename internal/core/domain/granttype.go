package domain

// GrantType is an OAuth2 authorization mechanism a client may use.
type GrantType string

const (
	GrantClientCredentials GrantType = "client_credentials"
	GrantAuthorizationCode GrantType = "authorization_code"
	GrantImplicit          GrantType = "implicit"
	GrantRefreshToken      GrantType = "refresh_token"
	GrantPassword          GrantType = "password"
)

// GrantTypeFlags carries the boolean intents from the client edit form.
type GrantTypeFlags struct {
	ClientCredentials bool
	AuthorizationCode bool
	Implicit          bool
	RefreshToken      bool
	Password          bool
}

// Selected returns the grant types whose flags are set, always in the
// canonical order: client_credentials, authorization_code, implicit,
// refresh_token, password. An all-false input yields an empty slice;
// rejecting that is the caller's job.
func (f GrantTypeFlags) Selected() []GrantType {
	var grants []GrantType
	if f.ClientCredentials {
		grants = append(grants, GrantClientCredentials)
	}
	if f.AuthorizationCode {
		grants = append(grants, GrantAuthorizationCode)
	}
	if f.Implicit {
		grants = append(grants, GrantImplicit)
	}
	if f.RefreshToken {
		grants = append(grants, GrantRefreshToken)
	}
	if f.Password {
		grants = append(grants, GrantPassword)
	}
	return grants
}

// HasGrantType reports whether grant is in the client's allowed set.
func (c *OAuth2Client) HasGrantType(grant GrantType) bool {
	for _, g := range c.AllowedGrantTypes {
		if g == grant {
			return true
		}
	}
	return false
}
