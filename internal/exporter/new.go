package exporter

import (
	"github.com/nguyentantai21042004/study-flow/internal/config"
	"github.com/nguyentantai21042004/study-flow/internal/logger"
)

type implExporter struct {
	outputDir string
	filename  string
	format    string
	logger    logger.Logger
}

// New creates an Exporter writing into outputDir in the configured format
// (txt, docx or both).
func New(cfg config.ExportConfig, outputDir string, log logger.Logger) Exporter {
	return &implExporter{
		outputDir: outputDir,
		filename:  cfg.Filename,
		format:    cfg.Format,
		logger:    log,
	}
}
