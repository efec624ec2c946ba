package videoid

import (
	"errors"
	"strings"
	"testing"
)

func TestExtract(t *testing.T) {
	tests := []struct {
		name    string
		url     string
		want    string
		wantErr bool
	}{
		{"long form", "https://www.youtube.com/watch?v=dQw4w9WgXcQ", "dQw4w9WgXcQ", false},
		{"long form with extra params", "https://www.youtube.com/watch?v=dQw4w9WgXcQ&t=42s&list=PL1", "dQw4w9WgXcQ", false},
		{"short form", "https://youtu.be/dQw4w9WgXcQ", "dQw4w9WgXcQ", false},
		{"short form with query", "https://youtu.be/dQw4w9WgXcQ?si=abc123", "dQw4w9WgXcQ", false},
		{"embed form", "https://www.youtube.com/embed/dQw4w9WgXcQ", "dQw4w9WgXcQ", false},
		{"shorts form", "https://youtube.com/shorts/dQw4w9WgXcQ", "dQw4w9WgXcQ", false},
		{"live form", "https://www.youtube.com/live/dQw4w9WgXcQ", "dQw4w9WgXcQ", false},
		{"no scheme", "youtube.com/watch?v=dQw4w9WgXcQ", "dQw4w9WgXcQ", false},
		{"mobile host", "https://m.youtube.com/watch?v=dQw4w9WgXcQ", "dQw4w9WgXcQ", false},
		{"missing v param", "https://www.youtube.com/watch?list=PL1", "", true},
		{"bare watch page", "https://www.youtube.com/watch", "", true},
		{"empty short form", "https://youtu.be/", "", true},
		{"empty string", "", "", true},
		{"whitespace only", "   ", "", true},
		{"unrelated URL", "https://example.com/watch?x=1", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Extract(tt.url)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Extract(%q) error = %v, wantErr %v", tt.url, err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrInvalidURL) {
				t.Errorf("Extract(%q) error = %v, want ErrInvalidURL", tt.url, err)
			}
			if got != tt.want {
				t.Errorf("Extract(%q) = %q, want %q", tt.url, got, tt.want)
			}
		})
	}
}

func TestThumbnailURL(t *testing.T) {
	got := ThumbnailURL("dQw4w9WgXcQ")
	if !strings.Contains(got, "dQw4w9WgXcQ") || !strings.HasPrefix(got, "https://img.youtube.com/") {
		t.Errorf("ThumbnailURL() = %q", got)
	}
}
