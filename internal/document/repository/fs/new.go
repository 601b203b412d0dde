package fs

import (
	"context"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/hashicorp/golang-lru/v2/expirable"

	"scheduling-optimizer/internal/document"
	"scheduling-optimizer/pkg/log"
)

// Config holds filesystem repository settings.
type Config struct {
	CacheSize    int
	CacheTTL     time.Duration
	WatchEnabled bool
}

// fsRepository scans directory trees for PDFs. Scan results are cached
// per base directory; when watching is enabled, any filesystem event
// under a scanned tree drops the cached result for that tree.
type fsRepository struct {
	l     log.Logger
	cache *expirable.LRU[string, []document.PDF]

	watcher *fsnotify.Watcher // nil when watching is disabled
	// roots maps every watched directory to the base dir whose scan
	// it belongs to, so events can invalidate the right cache entry.
	roots *expirable.LRU[string, string]
}

// New creates a filesystem-backed document repository. Watch failures
// are not fatal: the repository degrades to TTL-only caching.
func New(l log.Logger, cfg Config) *fsRepository {
	size := cfg.CacheSize
	if size <= 0 {
		size = 64
	}

	repo := &fsRepository{
		l:     l,
		cache: expirable.NewLRU[string, []document.PDF](size, nil, cfg.CacheTTL),
		roots: expirable.NewLRU[string, string](size*16, nil, 0),
	}

	if cfg.WatchEnabled {
		watcher, err := fsnotify.NewWatcher()
		if err != nil {
			l.Warnf(context.Background(), "document.fs: watcher unavailable, falling back to TTL cache: %v", err)
		} else {
			repo.watcher = watcher
			go repo.watchLoop()
		}
	}

	return repo
}

// Close stops the filesystem watcher.
func (r *fsRepository) Close() error {
	if r.watcher == nil {
		return nil
	}
	return r.watcher.Close()
}

// watchLoop invalidates cached scans when their tree changes.
func (r *fsRepository) watchLoop() {
	ctx := context.Background()
	for {
		select {
		case event, ok := <-r.watcher.Events:
			if !ok {
				return
			}
			dir := event.Name
			for dir != "" {
				if base, found := r.roots.Get(dir); found {
					r.l.Debugf(ctx, "document.fs: %s changed, invalidating scan of %s", event.Name, base)
					r.cache.Remove(base)
					break
				}
				parent := parentDir(dir)
				if parent == dir {
					break
				}
				dir = parent
			}
		case err, ok := <-r.watcher.Errors:
			if !ok {
				return
			}
			r.l.Warnf(ctx, "document.fs: watcher error: %v", err)
		}
	}
}
