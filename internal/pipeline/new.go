package pipeline

import (
	"github.com/nguyentantai21042004/study-flow/internal/config"
	"github.com/nguyentantai21042004/study-flow/internal/exporter"
	"github.com/nguyentantai21042004/study-flow/internal/logger"
	"github.com/nguyentantai21042004/study-flow/internal/summarizer"
	"github.com/nguyentantai21042004/study-flow/internal/transcript"
)

type implPipeline struct {
	cfg        *config.Config
	provider   transcript.Provider
	summarizer summarizer.Summarizer
	exporter   exporter.Exporter
	logger     logger.Logger
}

// New creates a Pipeline with all collaborators injected
func New(cfg *config.Config, provider transcript.Provider, summ summarizer.Summarizer, exp exporter.Exporter, log logger.Logger) Pipeline {
	return &implPipeline{
		cfg:        cfg,
		provider:   provider,
		summarizer: summ,
		exporter:   exp,
		logger:     log,
	}
}
