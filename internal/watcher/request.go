package watcher

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ParseRequest reads a request file. The first non-blank, non-comment
// line holds the video URL and, optionally, a summary style separated by
// whitespace.
func ParseRequest(path string) (url, style string, err error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", "", fmt.Errorf("read request file: %w", err)
	}

	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Fields(line)
		url = fields[0]
		if len(fields) > 1 {
			style = fields[1]
		}
		return url, style, nil
	}

	return "", "", fmt.Errorf("request file %s contains no URL", filepath.Base(path))
}
