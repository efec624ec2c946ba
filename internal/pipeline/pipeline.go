package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/nguyentantai21042004/study-flow/internal/exporter"
	"github.com/nguyentantai21042004/study-flow/internal/study"
	"github.com/nguyentantai21042004/study-flow/internal/summarizer"
	"github.com/nguyentantai21042004/study-flow/pkg/videoid"
)

// Process orchestrates one request: URL gate, transcript fetch,
// summarization, study generation, export. Gate and fetch failures
// short-circuit before the model is ever touched.
func (p *implPipeline) Process(ctx context.Context, rawURL string, style summarizer.Style) (*Result, error) {
	startTime := time.Now()

	id, err := videoid.Extract(rawURL)
	if err != nil {
		return nil, err
	}

	p.logger.Info(ctx, "========================================")
	p.logger.Info(ctx, "Processing video: %s (style=%s)", id, style)
	p.logger.Info(ctx, "========================================")

	transcriptText, err := p.provider.Fetch(ctx, id)
	if err != nil {
		return nil, err
	}

	summary, err := p.summarizer.Summarize(ctx, transcriptText, style, func(done, total int) {
		p.logger.Info(ctx, "Summarized chunk [%d/%d]", done, total)
	})
	if err != nil {
		return nil, fmt.Errorf("summarize: %w", err)
	}
	if summary == "" {
		p.logger.Warn(ctx, "All chunks failed to summarize; study material will be empty")
	}

	bullets := study.Bullets(summary, p.cfg.Study.MaxBullets)
	questions := study.OpenQuestions(summary, p.cfg.Study.MaxQuestions)
	blanks := study.FillInBlanks(summary, study.Options{
		Max:              p.cfg.Study.MaxBlanks,
		Marker:           p.cfg.Study.BlankMarker,
		MinSentenceWords: p.cfg.Study.MinSentenceWords,
		MinAnswerLen:     p.cfg.Study.MinAnswerLen,
	})
	p.logger.Info(ctx, "Study material: %d takeaways, %d questions, %d blanks",
		len(bullets), len(questions), len(blanks))

	doc := exporter.Document{
		VideoID:    id,
		Summary:    summary,
		Bullets:    bullets,
		Questions:  questions,
		Blanks:     blanks,
		Transcript: transcriptText,
	}

	paths, err := p.exporter.Export(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("export: %w", err)
	}

	p.logger.Info(ctx, "Processing completed in %s", time.Since(startTime))

	return &Result{
		VideoID:     id,
		Transcript:  transcriptText,
		Summary:     summary,
		Bullets:     bullets,
		Questions:   questions,
		Blanks:      blanks,
		OutputPaths: paths,
	}, nil
}
