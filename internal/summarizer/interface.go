package summarizer

import "context"

// Model is the external summarization capability. Implementations must
// decode deterministically: the same input yields the same output on the
// same model version.
type Model interface {
	Summarize(ctx context.Context, text string, maxLength, minLength int) (string, error)
}

// ProgressFunc receives (done, total) after each chunk completes.
type ProgressFunc func(done, total int)

// Summarizer condenses a transcript into a single summary string.
type Summarizer interface {
	Summarize(ctx context.Context, text string, style Style, onProgress ProgressFunc) (string, error)
}
