package summarizer

import (
	"context"
	"strings"

	"github.com/nguyentantai21042004/study-flow/internal/chunker"
)

// TooShortMessage is returned unchanged for inputs below the minimum
// summarizable length, regardless of style.
const TooShortMessage = "The transcript is too short to summarize properly."

// chunkResult is the outcome of summarizing one chunk. A failed chunk
// keeps its slot so aggregation stays an explicit filter over results.
type chunkResult struct {
	index   int
	summary string
	err     error
}

// Summarize splits text into fixed-width chunks, summarizes each in order
// with the style's length bounds, and joins the successful partial
// summaries with single spaces. A failing chunk is logged and skipped, it
// never aborts the batch. After each chunk (done, total) is reported via
// onProgress when set. If every chunk fails the result is an empty string
// and a nil error.
func (s *implSummarizer) Summarize(ctx context.Context, text string, style Style, onProgress ProgressFunc) (string, error) {
	if len(strings.TrimSpace(text)) < s.minChars {
		return TooShortMessage, nil
	}

	b := s.bounds(style)
	chunks := chunker.Split(text, s.chunkWidth)
	s.logger.Info(ctx, "Summarizing %d chunks (style=%s, max_length=%d, min_length=%d)",
		len(chunks), style, b.MaxLength, b.MinLength)

	results := make([]chunkResult, 0, len(chunks))
	for i, chunk := range chunks {
		out, err := s.model.Summarize(ctx, chunk, b.MaxLength, b.MinLength)
		results = append(results, chunkResult{index: i, summary: out, err: err})
		if err != nil {
			s.logger.Error(ctx, "Failed to summarize chunk %d/%d: %v", i+1, len(chunks), err)
		}
		if onProgress != nil {
			onProgress(i+1, len(chunks))
		}
	}

	return joinSuccesses(results), nil
}

// joinSuccesses drops failed chunks and joins the rest in chunk order.
func joinSuccesses(results []chunkResult) string {
	parts := make([]string, 0, len(results))
	for _, r := range results {
		if r.err != nil {
			continue
		}
		parts = append(parts, r.summary)
	}
	return strings.Join(parts, " ")
}
