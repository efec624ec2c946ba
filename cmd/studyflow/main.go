package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/nguyentantai21042004/study-flow/internal/config"
	"github.com/nguyentantai21042004/study-flow/internal/exporter"
	"github.com/nguyentantai21042004/study-flow/internal/logger"
	"github.com/nguyentantai21042004/study-flow/internal/pipeline"
	"github.com/nguyentantai21042004/study-flow/internal/summarizer"
	"github.com/nguyentantai21042004/study-flow/internal/transcript"
	"github.com/nguyentantai21042004/study-flow/internal/watcher"
)

func main() {
	ctx := context.Background()

	configPath := flag.String("config", "config.yaml", "path to config file")
	rawURL := flag.String("url", "", "YouTube video URL to process")
	styleName := flag.String("style", "", "summary style: short, normal or detailed")
	watchMode := flag.Bool("watch", false, "watch the input directory for request files")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log := logger.New(cfg.Logging.Level)
	log.Info(ctx, "========================================")
	log.Info(ctx, "YouTube Study Pipeline")
	log.Info(ctx, "========================================")
	log.Info(ctx, "Configuration loaded successfully")

	if err := ensureDirectories(cfg); err != nil {
		log.Error(ctx, "Failed to create directories: %v", err)
		os.Exit(1)
	}

	// The model is the one process-wide resource: initialized once,
	// reused read-only across requests. No request is served without it.
	model, err := summarizer.NewGeminiModel(ctx, cfg.Gemini, log)
	if err != nil {
		log.Error(ctx, "Failed to initialize summarization model: %v", err)
		os.Exit(1)
	}
	log.Info(ctx, "Summarization model ready: %s", cfg.Gemini.Model)

	// Wire the pipeline
	provider := transcript.New(cfg.Transcript, log)
	summ := summarizer.New(cfg.Summarizer, model, log)
	exp := exporter.New(cfg.Export, cfg.Paths.Output, log)
	pipe := pipeline.New(cfg, provider, summ, exp, log)

	if *watchMode {
		runWatch(ctx, cfg, pipe, log)
		return
	}

	if strings.TrimSpace(*rawURL) == "" {
		fmt.Fprintln(os.Stderr, "Usage: studyflow -url <YouTube URL> [-style short|normal|detailed] [-watch]")
		os.Exit(1)
	}

	result, err := pipe.Process(ctx, *rawURL, summarizer.ParseStyle(*styleName))
	if err != nil {
		log.Error(ctx, "%v", err)
		os.Exit(1)
	}

	for _, p := range result.OutputPaths {
		log.Info(ctx, "Output: %s", p)
	}
}

// runWatch serves request files dropped into the input directory until a
// shutdown signal arrives.
func runWatch(ctx context.Context, cfg *config.Config, pipe pipeline.Pipeline, log logger.Logger) {
	handler := func(ctx context.Context, requestPath string) error {
		url, styleName, err := watcher.ParseRequest(requestPath)
		if err != nil {
			return err
		}
		if _, err := pipe.Process(ctx, url, summarizer.ParseStyle(styleName)); err != nil {
			return err
		}
		return archiveRequest(requestPath, cfg.Paths.Archived)
	}

	w, err := watcher.New(cfg.Paths.Input, handler, log)
	if err != nil {
		log.Error(ctx, "Failed to create watcher: %v", err)
		os.Exit(1)
	}
	defer w.Stop()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	// Setup graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	errChan := make(chan error, 1)
	go func() {
		if err := w.Start(ctx); err != nil && err != context.Canceled {
			errChan <- err
		}
	}()

	log.Info(ctx, "Monitoring: %s", cfg.Paths.Input)
	log.Info(ctx, "Output: %s", cfg.Paths.Output)
	log.Info(ctx, "Press Ctrl+C to stop")

	select {
	case <-sigChan:
		log.Info(ctx, "Shutdown signal received")
	case err := <-errChan:
		log.Error(ctx, "Watcher error: %v", err)
	}

	log.Info(ctx, "Shutting down gracefully...")
	cancel()
	log.Info(ctx, "YouTube Study Pipeline stopped")
}

// ensureDirectories creates required directories if they don't exist
func ensureDirectories(cfg *config.Config) error {
	dirs := []string{
		cfg.Paths.Input,
		cfg.Paths.Output,
		cfg.Paths.Archived,
	}

	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create directory %s: %w", dir, err)
		}
	}

	return nil
}

// archiveRequest moves a handled request file out of the input directory
// so it is not picked up again.
func archiveRequest(requestPath, archivedDir string) error {
	dest := filepath.Join(archivedDir, filepath.Base(requestPath))
	if err := os.Rename(requestPath, dest); err != nil {
		return fmt.Errorf("archive request: %w", err)
	}
	return nil
}
