package pipeline

import (
	"context"

	"github.com/nguyentantai21042004/study-flow/internal/study"
	"github.com/nguyentantai21042004/study-flow/internal/summarizer"
)

// Result is everything one processed request produced.
type Result struct {
	VideoID     string
	Transcript  string
	Summary     string
	Bullets     []string
	Questions   []string
	Blanks      []study.Blank
	OutputPaths []string
}

// Pipeline turns one YouTube URL into a summary, study material and an
// exported document.
type Pipeline interface {
	Process(ctx context.Context, rawURL string, style summarizer.Style) (*Result, error)
}
