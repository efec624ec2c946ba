package exporter

import (
	"context"

	"github.com/nguyentantai21042004/study-flow/internal/study"
)

// Document is everything one processed video produces, ready to export.
type Document struct {
	VideoID    string
	Summary    string
	Bullets    []string
	Questions  []string
	Blanks     []study.Blank
	Transcript string
}

// Exporter renders a study document and writes it to the output directory.
// It returns the paths of the files written.
type Exporter interface {
	Export(ctx context.Context, doc Document) ([]string, error)
}
