package ingest

import (
	"context"
	"log/slog"
	"os"
)

// Handler processes one discovered document. A handler error is logged and the loop goes on.
type Handler func(ctx context.Context, path string) error

// Stats counts what a Watch loop did.
type Stats struct {
	Seen      int
	Succeeded int
	Failed    int
}

// Watch feeds every file emitted by the watcher to handle, sequentially, until ctx is done.
// A path is handled at most once per loop.
func Watch(ctx context.Context, cfg WatchConfig, handle Handler) (Stats, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	events, errs, err := StartWatcher(ctx, cfg)
	if err != nil {
		return Stats{}, err
	}

	var stats Stats
	done := map[string]struct{}{}
	for {
		select {
		case p, ok := <-events:
			if !ok {
				return stats, ctx.Err()
			}
			if _, dup := done[p]; dup {
				continue
			}
			if _, err := os.Stat(p); err != nil {
				// moved away before we got to it
				continue
			}
			done[p] = struct{}{}
			stats.Seen++
			if err := handle(ctx, p); err != nil {
				stats.Failed++
				logger.Warn("watch: document failed", "path", p, "error", err)
				continue
			}
			stats.Succeeded++
		case err, ok := <-errs:
			if ok {
				logger.Warn("watch: watcher error", "error", err)
			} else {
				errs = nil
			}
		}
	}
}
