package utils

import (
	"net/url"
	"path/filepath"
	"strings"
)

// SafeNextPath keeps post-login redirects on this site: only absolute local
// paths are accepted, anything else falls back to "/".
func SafeNextPath(next string) string {
	next = strings.TrimSpace(next)
	if next == "" || !strings.HasPrefix(next, "/") || strings.HasPrefix(next, "//") || strings.Contains(next, "\\") {
		return "/"
	}
	u, err := url.Parse(next)
	if err != nil || u.Scheme != "" || u.Host != "" {
		return "/"
	}
	return next
}

// FileExtension returns the lower-cased extension of an uploaded file name
// restricted to the image types accepted for photos, or "" if not allowed.
func FileExtension(name string) string {
	ext := strings.ToLower(filepath.Ext(name))
	switch ext {
	case ".jpg", ".jpeg", ".png", ".gif", ".webp":
		return ext
	default:
		return ""
	}
}
