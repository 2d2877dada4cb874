package storage

import (
	"encoding/json"
	"testing"
)

func TestPublicReadPolicy(t *testing.T) {
	tests := []struct {
		prefix string
		want   string
	}{
		{"contacts", "arn:aws:s3:::photos/contacts/*"},
		{"/contacts/", "arn:aws:s3:::photos/contacts/*"},
		{"", "arn:aws:s3:::photos/*"},
	}
	for _, tt := range tests {
		raw, err := PublicReadPolicy("photos", tt.prefix)
		if err != nil {
			t.Fatalf("%q: %v", tt.prefix, err)
		}
		var policy struct {
			Statement []struct {
				Action   []string `json:"Action"`
				Resource []string `json:"Resource"`
			} `json:"Statement"`
		}
		if err := json.Unmarshal([]byte(raw), &policy); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if len(policy.Statement) != 1 || policy.Statement[0].Resource[0] != tt.want {
			t.Fatalf("%q: got %s", tt.prefix, raw)
		}
		if policy.Statement[0].Action[0] != "s3:GetObject" {
			t.Fatalf("policy must only grant reads: %s", raw)
		}
	}
}

func TestS3KeyFromURL(t *testing.T) {
	s := &S3Storage{bucket: "photos", endpoint: "minio:9000"}
	url := s.GetFileURL("/contacts/1/a.jpg")
	if url != "http://minio:9000/photos/contacts/1/a.jpg" {
		t.Fatalf("url = %q", url)
	}
	key, ok := s.KeyFromURL(url)
	if !ok || key != "contacts/1/a.jpg" {
		t.Fatalf("key = %q ok=%v", key, ok)
	}

	cdn := &S3Storage{bucket: "photos", publicURL: "https://cdn.example.com"}
	if _, ok := cdn.KeyFromURL(url); ok {
		t.Fatalf("foreign url must not map to a key")
	}
}
