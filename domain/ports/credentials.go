package ports

import (
	"context"
	"errors"
)

var ErrUnknownUser = errors.New("unknown user")

// Credential is a login identity with its bcrypt hash. UserID is set only
// when the identity comes from the users table.
type Credential struct {
	UserID       *uint
	Username     string
	PasswordHash string
}

// CredentialStore resolves a username to its credential
type CredentialStore interface {
	// Lookup returns ErrUnknownUser when the username is not known
	Lookup(ctx context.Context, username string) (*Credential, error)
	Name() string
}

// UserResolver is implemented by stores backed by the users table
type UserResolver interface {
	// LookupID returns ErrUnknownUser when no user has the id
	LookupID(ctx context.Context, id uint) (*Credential, error)
}
