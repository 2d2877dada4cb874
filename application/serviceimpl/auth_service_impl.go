package serviceimpl

import (
	"context"
	"errors"
	"time"

	"golang.org/x/crypto/bcrypt"

	"bizmanager/domain/ports"
	"bizmanager/domain/services"
	"bizmanager/pkg/logger"
	"bizmanager/pkg/utils"
)

type AuthServiceImpl struct {
	store         ports.CredentialStore
	jwtSecret     string
	tokenLifetime time.Duration
}

func NewAuthService(store ports.CredentialStore, jwtSecret string, tokenLifetime time.Duration) services.AuthService {
	return &AuthServiceImpl{
		store:         store,
		jwtSecret:     jwtSecret,
		tokenLifetime: tokenLifetime,
	}
}

func (s *AuthServiceImpl) Authenticate(ctx context.Context, username, password string) (*ports.Credential, error) {
	cred, err := s.store.Lookup(ctx, username)
	if err != nil {
		if errors.Is(err, ports.ErrUnknownUser) {
			logger.WarnContext(ctx, "Login failed", "username", username)
			return nil, services.ErrInvalidCredentials
		}
		logger.ErrorContext(ctx, "Credential lookup failed", "store", s.store.Name(), "error", err)
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(cred.PasswordHash), []byte(password)); err != nil {
		logger.WarnContext(ctx, "Login failed", "username", username)
		return nil, services.ErrInvalidCredentials
	}

	logger.InfoContext(ctx, "Login succeeded", "username", cred.Username, "store", s.store.Name())
	return cred, nil
}

func (s *AuthServiceImpl) IssueToken(ctx context.Context, cred *ports.Credential) (string, time.Time, error) {
	token, expiresAt, err := utils.GenerateToken(
		utils.UserContext{UserID: cred.UserID, Username: cred.Username},
		s.jwtSecret, s.tokenLifetime, time.Now(),
	)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to sign token", "username", cred.Username, "error", err)
		return "", time.Time{}, err
	}
	return token, expiresAt, nil
}

// ValidateToken checks the signature, then re-reads database accounts by id
func (s *AuthServiceImpl) ValidateToken(ctx context.Context, token string) (*utils.UserContext, error) {
	user, err := utils.ValidateToken(token, s.jwtSecret)
	if err != nil {
		return nil, err
	}

	resolver, ok := s.store.(ports.UserResolver)
	if !ok || user.UserID == nil {
		return user, nil
	}
	cred, err := resolver.LookupID(ctx, *user.UserID)
	if err != nil {
		if errors.Is(err, ports.ErrUnknownUser) {
			return nil, services.ErrInvalidCredentials
		}
		return nil, err
	}
	return &utils.UserContext{UserID: cred.UserID, Username: cred.Username}, nil
}

// ResolveSession re-reads the account so a removed user loses access
func (s *AuthServiceImpl) ResolveSession(ctx context.Context, username string) (*utils.UserContext, error) {
	cred, err := s.store.Lookup(ctx, username)
	if err != nil {
		if errors.Is(err, ports.ErrUnknownUser) {
			return nil, services.ErrInvalidCredentials
		}
		return nil, err
	}
	return &utils.UserContext{UserID: cred.UserID, Username: cred.Username}, nil
}
