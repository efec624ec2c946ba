package summarizer

import (
	"strings"

	"github.com/nguyentantai21042004/study-flow/internal/config"
	"github.com/nguyentantai21042004/study-flow/internal/logger"
)

type implSummarizer struct {
	model      Model
	chunkWidth int
	minChars   int
	styles     map[Style]Bounds
	logger     logger.Logger
}

// New creates a Summarizer that chunks its input and delegates each chunk
// to the injected model. Config styles override the built-in bounds.
func New(cfg config.SummarizerConfig, model Model, log logger.Logger) Summarizer {
	styles := defaultBounds()
	for name, b := range cfg.Styles {
		styles[Style(strings.ToLower(strings.TrimSpace(name)))] = Bounds{
			MaxLength: b.MaxLength,
			MinLength: b.MinLength,
		}
	}

	return &implSummarizer{
		model:      model,
		chunkWidth: cfg.ChunkWidth,
		minChars:   cfg.MinChars,
		styles:     styles,
		logger:     log,
	}
}

func (s *implSummarizer) bounds(style Style) Bounds {
	if b, ok := s.styles[style]; ok {
		return b
	}
	return s.styles[StyleNormal]
}
