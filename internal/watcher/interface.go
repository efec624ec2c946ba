package watcher

import "context"

// RequestHandler processes one request file dropped into the input
// directory.
type RequestHandler func(ctx context.Context, requestPath string) error

// Watcher monitors the input directory for request files and hands them
// to the handler one at a time.
type Watcher interface {
	Start(ctx context.Context) error
	Stop()
}
