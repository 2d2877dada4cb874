package serviceimpl

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"bizmanager/domain/models"
	"bizmanager/domain/ports"
	"bizmanager/domain/repositories"
)

// StaticCredentialStore holds the single configured account
type StaticCredentialStore struct {
	username     string
	passwordHash string
}

// NewStaticCredentialStore prefers passwordHash; a plain password is hashed once here
func NewStaticCredentialStore(username, password, passwordHash string) (ports.CredentialStore, error) {
	if username == "" {
		return nil, errors.New("static credentials need a username")
	}
	if passwordHash == "" {
		if password == "" {
			return nil, errors.New("static credentials need AUTH_PASSWORD or AUTH_PASSWORD_HASH")
		}
		hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("hash static password: %w", err)
		}
		passwordHash = string(hashed)
	}
	return &StaticCredentialStore{username: username, passwordHash: passwordHash}, nil
}

func (s *StaticCredentialStore) Lookup(_ context.Context, username string) (*ports.Credential, error) {
	if username != s.username {
		return nil, ports.ErrUnknownUser
	}
	return &ports.Credential{Username: s.username, PasswordHash: s.passwordHash}, nil
}

func (s *StaticCredentialStore) Name() string {
	return "static"
}

// DatabaseCredentialStore reads accounts from the users table
type DatabaseCredentialStore struct {
	userRepo repositories.UserRepository
}

func NewDatabaseCredentialStore(userRepo repositories.UserRepository) ports.CredentialStore {
	return &DatabaseCredentialStore{userRepo: userRepo}
}

func (s *DatabaseCredentialStore) Lookup(ctx context.Context, username string) (*ports.Credential, error) {
	user, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ports.ErrUnknownUser
		}
		return nil, err
	}
	return userCredential(user), nil
}

func (s *DatabaseCredentialStore) LookupID(ctx context.Context, id uint) (*ports.Credential, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ports.ErrUnknownUser
		}
		return nil, err
	}
	return userCredential(user), nil
}

func userCredential(user *models.User) *ports.Credential {
	id := user.ID
	return &ports.Credential{UserID: &id, Username: user.Username, PasswordHash: user.PasswordHash}
}

func (s *DatabaseCredentialStore) Name() string {
	return "database"
}
