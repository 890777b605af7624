package entity

// AuthClaims is the identity data carried inside a bearer token.
// It is produced when a token is issued and consumed when one is validated.
type AuthClaims struct {
	Subject uint   // User ID
	Email   string // User email at issuance time
}

// Identity is the caller resolved from a validated token.
// The access guard attaches it to the request context.
type Identity struct {
	UserID uint
	Email  string
}
