package exporter

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/nguyentantai21042004/study-flow/pkg/videoid"
)

// FormatText serializes a document as a single plain-text export: a title
// banner with the video details, then fixed section headers in a fixed
// order. Sections with no content are omitted entirely, never left as an
// empty header; Summary and Full transcript always appear.
func FormatText(doc Document) string {
	var b strings.Builder

	b.WriteString("YouTube AI Summary + Study Notes\n")
	b.WriteString("================================\n\n")

	if doc.VideoID != "" {
		fmt.Fprintf(&b, "Video ID: %s\n", doc.VideoID)
		fmt.Fprintf(&b, "Thumbnail: %s\n\n", videoid.ThumbnailURL(doc.VideoID))
	}

	b.WriteString("Summary:\n\n")
	b.WriteString(doc.Summary + "\n\n")

	if len(doc.Bullets) > 0 {
		b.WriteString("Key takeaways:\n\n")
		for i, bullet := range doc.Bullets {
			fmt.Fprintf(&b, "%d. %s\n", i+1, bullet)
		}
		b.WriteString("\n")
	}

	if len(doc.Questions) > 0 {
		b.WriteString("Open questions:\n\n")
		for _, q := range doc.Questions {
			fmt.Fprintf(&b, "- %s\n", q)
		}
		b.WriteString("\n")
	}

	if len(doc.Blanks) > 0 {
		b.WriteString("Fill in the blanks:\n\n")
		for i, blank := range doc.Blanks {
			fmt.Fprintf(&b, "%d. %s\n", i+1, blank.Question)
			fmt.Fprintf(&b, "   Answer: %s\n", blank.Answer)
		}
		b.WriteString("\n")
	}

	b.WriteString("Full transcript:\n\n")
	b.WriteString(doc.Transcript)

	return b.String()
}

// Export writes the document in the configured format(s) and returns the
// written paths.
func (e *implExporter) Export(ctx context.Context, doc Document) ([]string, error) {
	if err := os.MkdirAll(e.outputDir, 0755); err != nil {
		return nil, fmt.Errorf("create output dir: %w", err)
	}

	var paths []string

	if e.format == "txt" || e.format == "both" {
		txtPath := filepath.Join(e.outputDir, e.filename)
		if err := os.WriteFile(txtPath, []byte(FormatText(doc)), 0644); err != nil {
			return nil, fmt.Errorf("write text export: %w", err)
		}
		e.logger.Info(ctx, "Wrote text export: %s", txtPath)
		paths = append(paths, txtPath)
	}

	if e.format == "docx" || e.format == "both" {
		base := strings.TrimSuffix(e.filename, filepath.Ext(e.filename))
		docxPath := filepath.Join(e.outputDir, base+".docx")
		if err := writeDocx(doc, docxPath); err != nil {
			return nil, fmt.Errorf("write docx export: %w", err)
		}
		e.logger.Info(ctx, "Wrote docx export: %s", docxPath)
		paths = append(paths, docxPath)
	}

	return paths, nil
}
