package services

import (
	"context"
	"time"

	"bizmanager/domain/ports"
	"bizmanager/pkg/utils"
)

type AuthService interface {
	// Authenticate returns ErrInvalidCredentials for unknown users and wrong passwords alike
	Authenticate(ctx context.Context, username, password string) (*ports.Credential, error)
	IssueToken(ctx context.Context, cred *ports.Credential) (string, time.Time, error)
	// ValidateToken accepts a raw token or an Authorization header value
	ValidateToken(ctx context.Context, token string) (*utils.UserContext, error)
	// ResolveSession maps a session username back to its identity
	ResolveSession(ctx context.Context, username string) (*utils.UserContext, error)
}
