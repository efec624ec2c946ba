package videoid

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

// ErrInvalidURL is returned when no video ID can be recovered from a URL.
var ErrInvalidURL = errors.New("invalid YouTube URL: could not find video ID")

// pathPrefixes are the long-form URL shapes that carry the ID in the path.
var pathPrefixes = []string{"/embed/", "/shorts/", "/live/"}

// Extract parses a YouTube URL and returns the video ID. It accepts the
// long form (watch?v=ID), the short form (youtu.be/ID) and the embed,
// shorts and live path forms.
func Extract(rawURL string) (string, error) {
	raw := strings.TrimSpace(rawURL)
	if raw == "" {
		return "", ErrInvalidURL
	}
	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidURL, err)
	}

	host := strings.TrimPrefix(strings.ToLower(u.Hostname()), "www.")
	if host == "youtu.be" {
		id := strings.Trim(u.Path, "/")
		if i := strings.IndexByte(id, '/'); i >= 0 {
			id = id[:i]
		}
		if id == "" {
			return "", ErrInvalidURL
		}
		return id, nil
	}

	if id := u.Query().Get("v"); id != "" {
		return id, nil
	}

	for _, prefix := range pathPrefixes {
		if rest, ok := strings.CutPrefix(u.Path, prefix); ok {
			if id := strings.Trim(rest, "/"); id != "" {
				return id, nil
			}
		}
	}

	return "", ErrInvalidURL
}

// ThumbnailURL returns the default thumbnail location for a video ID
func ThumbnailURL(id string) string {
	return "https://img.youtube.com/vi/" + id + "/hqdefault.jpg"
}
