package summarizer

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"github.com/nguyentantai21042004/study-flow/internal/config"
	"github.com/nguyentantai21042004/study-flow/internal/logger"
)

const summaryPrompt = `You are an expert at condensing video transcripts. Write an abstractive summary of the transcript below.

Requirements:
- The summary must be between %d and %d words long
- Plain prose only: no headings, no bullet points, no preamble
- End every sentence with a period
- Keep the topics in the order they appear in the transcript

Transcript:
---
%s
---`

type geminiModel struct {
	clients []*genai.Client
	current int
	model   string
	logger  logger.Logger
}

// NewGeminiModel returns a Model backed by the Gemini API, rotating
// through the supplied API keys on quota errors. Clients are built once
// up front; a construction failure here is fatal to the process, no
// request is served without a working model. Decoding is deterministic
// (temperature 0).
func NewGeminiModel(ctx context.Context, cfg config.GeminiConfig, log logger.Logger) (Model, error) {
	if len(cfg.APIKeys) == 0 {
		return nil, fmt.Errorf("at least one Gemini API key is required")
	}

	clients := make([]*genai.Client, 0, len(cfg.APIKeys))
	for i, key := range cfg.APIKeys {
		client, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  key,
			Backend: genai.BackendGeminiAPI,
		})
		if err != nil {
			return nil, fmt.Errorf("create Gemini client %d: %w", i+1, err)
		}
		clients = append(clients, client)
	}

	return &geminiModel{
		clients: clients,
		model:   cfg.Model,
		logger:  log,
	}, nil
}

// Summarize sends one chunk to Gemini. Rotates API keys on 429 / quota
// errors.
func (m *geminiModel) Summarize(ctx context.Context, text string, maxLength, minLength int) (string, error) {
	prompt := fmt.Sprintf(summaryPrompt, minLength, maxLength, text)
	genCfg := &genai.GenerateContentConfig{
		Temperature: genai.Ptr[float32](0),
	}

	var lastErr error
	for range m.clients {
		client := m.clients[m.current]

		result, err := client.Models.GenerateContent(ctx, m.model, genai.Text(prompt), genCfg)
		if err != nil {
			if isQuotaError(err) {
				m.logger.Warn(ctx, "Key %d rate limited, rotating...", m.current+1)
				m.rotateKey()
				lastErr = err
				continue
			}
			return "", fmt.Errorf("generate content: %w", err)
		}

		if result != nil && len(result.Candidates) > 0 && result.Candidates[0].Content != nil {
			var out string
			for _, part := range result.Candidates[0].Content.Parts {
				if part.Text != "" {
					out += part.Text
				}
			}
			return strings.TrimSpace(out), nil
		}

		return "", fmt.Errorf("empty response from Gemini")
	}

	return "", fmt.Errorf("all API keys exhausted: %w", lastErr)
}

func (m *geminiModel) rotateKey() {
	m.current = (m.current + 1) % len(m.clients)
}

func isQuotaError(err error) bool {
	msg := err.Error()
	return strings.Contains(msg, "429") ||
		strings.Contains(msg, "quota") ||
		strings.Contains(msg, "RESOURCE_EXHAUSTED")
}
