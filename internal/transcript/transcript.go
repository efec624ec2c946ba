package transcript

import (
	"context"
	"encoding/xml"
	"errors"
	"fmt"
	"html"
	"net/http"
	"strings"
)

var (
	// ErrNoTranscript means no configured language produced a transcript.
	ErrNoTranscript = errors.New("no transcript available for this video")
	// ErrEmptyTranscript means the transcript payload decoded to nothing.
	ErrEmptyTranscript = errors.New("transcript is empty or could not be parsed")
)

// timedText mirrors the XML payload of the timedtext endpoint.
type timedText struct {
	XMLName xml.Name       `xml:"transcript"`
	Texts   []timedTextRow `xml:"text"`
}

type timedTextRow struct {
	Start string `xml:"start,attr"`
	Dur   string `xml:"dur,attr"`
	Body  string `xml:",chardata"`
}

// Fetch tries each configured language in preference order and returns the
// first transcript found, with fragments joined by single spaces. Failures
// are not retried beyond the language walk.
func (p *implProvider) Fetch(ctx context.Context, videoID string) (string, error) {
	lastErr := error(ErrNoTranscript)

	for _, lang := range p.languages {
		text, err := p.fetchLanguage(ctx, videoID, lang)
		if err != nil {
			p.logger.Debug(ctx, "No %s transcript for %s: %v", lang, videoID, err)
			lastErr = err
			continue
		}
		p.logger.Info(ctx, "Fetched %s transcript for %s (%d characters)", lang, videoID, len(text))
		return text, nil
	}

	return "", fmt.Errorf("could not retrieve transcript: %w", lastErr)
}

func (p *implProvider) fetchLanguage(ctx context.Context, videoID, lang string) (string, error) {
	resp, err := p.client.R().
		SetContext(ctx).
		SetQueryParam("v", videoID).
		SetQueryParam("lang", lang).
		Get("")
	if err != nil {
		return "", fmt.Errorf("timedtext request: %w", err)
	}
	if resp.StatusCode() != http.StatusOK {
		return "", fmt.Errorf("timedtext status %d: %w", resp.StatusCode(), ErrNoTranscript)
	}

	var tt timedText
	if err := xml.Unmarshal(resp.Body(), &tt); err != nil {
		return "", fmt.Errorf("decode timedtext: %w", err)
	}
	if len(tt.Texts) == 0 {
		return "", ErrNoTranscript
	}

	parts := make([]string, 0, len(tt.Texts))
	for _, row := range tt.Texts {
		// Fragments may carry entities and internal newlines
		clean := strings.Join(strings.Fields(html.UnescapeString(row.Body)), " ")
		if clean != "" {
			parts = append(parts, clean)
		}
	}

	joined := strings.TrimSpace(strings.Join(parts, " "))
	if joined == "" {
		return "", ErrEmptyTranscript
	}
	return joined, nil
}
