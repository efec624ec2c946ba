package watcher

import (
	"fmt"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/nguyentantai21042004/study-flow/internal/logger"
)

// settleDelay is how long to wait after a Create event before reading the
// request file, so a writer that is still flushing content can finish.
const settleDelay = 500 * time.Millisecond

type implWatcher struct {
	inputDir    string
	handler     RequestHandler
	logger      logger.Logger
	watcher     *fsnotify.Watcher
	settleDelay time.Duration
}

// New creates a Watcher on inputDir
func New(inputDir string, handler RequestHandler, log logger.Logger) (Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create fsnotify watcher: %w", err)
	}

	if err := fsw.Add(inputDir); err != nil {
		fsw.Close()
		return nil, fmt.Errorf("watch %s: %w", inputDir, err)
	}

	return &implWatcher{
		inputDir:    inputDir,
		handler:     handler,
		logger:      log,
		watcher:     fsw,
		settleDelay: settleDelay,
	}, nil
}
