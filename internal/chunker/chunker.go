package chunker

import "unicode/utf8"

// DefaultWidth is the maximum chunk size accepted by the summarization
// model in one call.
const DefaultWidth = 2000

// Split slices text into non-overlapping chunks of at most width bytes,
// backing each cut off to the nearest rune boundary so multibyte
// characters are never split. The last chunk may be shorter.
// Concatenating the chunks in order reconstructs the input exactly; no
// trimming or language-aware splitting is applied.
func Split(text string, width int) []string {
	if width <= 0 {
		width = DefaultWidth
	}
	if text == "" {
		return nil
	}

	chunks := make([]string, 0, (len(text)+width-1)/width)
	for start := 0; start < len(text); {
		end := start + width
		if end >= len(text) {
			chunks = append(chunks, text[start:])
			break
		}
		for end > start && !utf8.RuneStart(text[end]) {
			end--
		}
		if end == start {
			// width is smaller than the rune at start; emit it whole
			end = start + width
			for end < len(text) && !utf8.RuneStart(text[end]) {
				end++
			}
		}
		chunks = append(chunks, text[start:end])
		start = end
	}
	return chunks
}
