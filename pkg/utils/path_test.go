package utils

import "testing"

func TestSafeNextPath(t *testing.T) {
	tests := map[string]string{
		"":                     "/",
		"/tasks":               "/tasks",
		"/calendar/week?x=1":   "/calendar/week?x=1",
		"https://evil.example": "/",
		"//evil.example/x":     "/",
		"tasks":                "/",
		"/\\evil":              "/",
	}
	for in, want := range tests {
		if got := SafeNextPath(in); got != want {
			t.Errorf("SafeNextPath(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestFileExtension(t *testing.T) {
	if got := FileExtension("Photo.JPG"); got != ".jpg" {
		t.Errorf("got %q", got)
	}
	if got := FileExtension("script.sh"); got != "" {
		t.Errorf("got %q", got)
	}
}
