package utils

import (
	"errors"
	"testing"
	"time"
)

func TestGenerateAndValidateToken(t *testing.T) {
	id := uint(7)
	token, expiresAt, err := GenerateToken(UserContext{UserID: &id, Username: "admin"}, "secret", time.Hour, time.Now())
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}
	if time.Until(expiresAt) <= 0 {
		t.Fatalf("expected future expiry, got %v", expiresAt)
	}

	for _, prefix := range []string{"", "Bearer ", "bearer ", "BEARER "} {
		user, err := ValidateToken(prefix+token, "secret")
		if err != nil {
			t.Fatalf("ValidateToken(%q): %v", prefix, err)
		}
		if user.Username != "admin" || user.UserID == nil || *user.UserID != 7 {
			t.Fatalf("unexpected user %+v", user)
		}
	}
}

func TestValidateTokenFailures(t *testing.T) {
	good, _, err := GenerateToken(UserContext{Username: "admin"}, "secret", time.Hour, time.Now())
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}
	expired, _, err := GenerateToken(UserContext{Username: "admin"}, "secret", time.Hour, time.Now().Add(-2*time.Hour))
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	tests := []struct {
		name   string
		token  string
		secret string
		want   error
	}{
		{"empty", "", "secret", ErrMissingToken},
		{"wrong secret", good, "other", ErrInvalidToken},
		{"garbage", "abc.def.ghi", "secret", ErrInvalidToken},
		{"expired", expired, "secret", ErrExpiredToken},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ValidateToken(tt.token, tt.secret); !errors.Is(err, tt.want) {
				t.Fatalf("got %v, want %v", err, tt.want)
			}
		})
	}
}

func TestExtractTokenFromHeader(t *testing.T) {
	if got := ExtractTokenFromHeader("Bearer abc"); got != "abc" {
		t.Errorf("got %q", got)
	}
	if got := ExtractTokenFromHeader("bearer  abc "); got != "abc" {
		t.Errorf("got %q", got)
	}
	if got := ExtractTokenFromHeader("Basic abc"); got != "" {
		t.Errorf("got %q", got)
	}
	if got := ExtractTokenFromHeader(""); got != "" {
		t.Errorf("got %q", got)
	}
}
