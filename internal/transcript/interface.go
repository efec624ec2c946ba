package transcript

import "context"

// Provider fetches the full transcript text for a video from an external
// transcript source.
type Provider interface {
	Fetch(ctx context.Context, videoID string) (string, error)
}
