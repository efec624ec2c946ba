package transcript

import (
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/nguyentantai21042004/study-flow/internal/config"
	"github.com/nguyentantai21042004/study-flow/internal/logger"
)

type implProvider struct {
	client    *resty.Client
	languages []string
	logger    logger.Logger
}

// New creates a Provider that walks the configured language preference
// list against the timedtext endpoint.
func New(cfg config.TranscriptConfig, log logger.Logger) Provider {
	client := resty.New().
		SetBaseURL(cfg.Endpoint).
		SetTimeout(time.Duration(cfg.TimeoutSeconds) * time.Second)

	return &implProvider{
		client:    client,
		languages: cfg.Languages,
		logger:    log,
	}
}
