package web

import (
	"bytes"
	"strings"
	"testing"
)

func TestViewsRenderEveryPage(t *testing.T) {
	v := NewViews()
	if err := v.Load(); err != nil {
		t.Fatalf("load: %v", err)
	}

	for _, page := range pages {
		var buf bytes.Buffer
		if err := v.Render(&buf, page, map[string]any{"Title": page}); err != nil {
			t.Errorf("%s: %v", page, err)
		}
	}
}

func TestLoginShowsError(t *testing.T) {
	v := NewViews()
	if err := v.Load(); err != nil {
		t.Fatalf("load: %v", err)
	}

	var buf bytes.Buffer
	err := v.Render(&buf, "login", map[string]any{
		"Title": "Вход",
		"Error": "Неверный логин или пароль",
		"Next":  "/tasks",
	})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "Неверный логин или пароль") || !strings.Contains(out, `value="/tasks"`) {
		t.Fatalf("unexpected login page:\n%s", out)
	}
	if strings.Contains(out, "<nav>") {
		t.Fatalf("anonymous page must not show navigation")
	}
}

func TestUnknownPage(t *testing.T) {
	v := NewViews()
	if err := v.Load(); err != nil {
		t.Fatalf("load: %v", err)
	}
	if err := v.Render(&bytes.Buffer{}, "missing", nil); err == nil {
		t.Fatalf("expected error for unknown template")
	}
}
