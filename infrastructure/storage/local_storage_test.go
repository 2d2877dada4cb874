package storage

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func newTestStorage(t *testing.T) (*LocalStorage, string) {
	t.Helper()
	dir := t.TempDir()
	s, err := NewLocalStorage(LocalStorageConfig{BasePath: dir, BaseURL: "http://localhost:8080/files/"})
	if err != nil {
		t.Fatalf("NewLocalStorage: %v", err)
	}
	return s.(*LocalStorage), dir
}

func TestLocalStorageRoundTrip(t *testing.T) {
	s, dir := newTestStorage(t)
	ctx := context.Background()

	url, err := s.UploadFile(ctx, strings.NewReader("jpeg bytes"), 10, "contacts/1/ivanov.jpg", "image/jpeg")
	if err != nil {
		t.Fatalf("upload: %v", err)
	}
	if url != "http://localhost:8080/files/contacts/1/ivanov.jpg" {
		t.Fatalf("url = %q", url)
	}
	if _, err := os.Stat(filepath.Join(dir, "contacts", "1", "ivanov.jpg")); err != nil {
		t.Fatalf("file not written: %v", err)
	}

	key, ok := s.KeyFromURL(url)
	if !ok || key != "contacts/1/ivanov.jpg" {
		t.Fatalf("KeyFromURL = %q, %v", key, ok)
	}

	if err := s.DeleteFile(ctx, key); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "contacts")); !os.IsNotExist(err) {
		t.Fatalf("empty directories should be removed, stat err = %v", err)
	}
	if err := s.DeleteFile(ctx, key); err != nil {
		t.Fatalf("deleting a missing file should succeed: %v", err)
	}
}

func TestLocalStorageRejectsTraversal(t *testing.T) {
	s, _ := newTestStorage(t)
	_, err := s.UploadFile(context.Background(), strings.NewReader("x"), 1, "../escape.txt", "text/plain")
	if !errors.Is(err, ErrUnsafePath) {
		t.Fatalf("expected ErrUnsafePath, got %v", err)
	}
}

func TestKeyFromForeignURL(t *testing.T) {
	s, _ := newTestStorage(t)
	if _, ok := s.KeyFromURL("https://example.com/photo.jpg"); ok {
		t.Fatalf("foreign URL must not map to a key")
	}
}
