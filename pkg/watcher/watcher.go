package watcher

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/philipparndt/gotrack/pkg/trackfile"
)

// DefaultDebounce is the quiet period before a changed layout is reloaded
const DefaultDebounce = 100 * time.Millisecond

// LayoutFunc receives a freshly parsed layout after its file changed
type LayoutFunc func(path string, layout *trackfile.Layout)

// LayoutWatcher watches layout files and reloads them on change.
// Directories are watched instead of files so that editors which
// replace the file on save are still picked up.
type LayoutWatcher struct {
	watcher  *fsnotify.Watcher
	logger   *slog.Logger
	debounce time.Duration

	mu       sync.Mutex
	handlers map[string]LayoutFunc
	timers   map[string]*time.Timer
	dirs     map[string]int
}

// New creates a new layout watcher
func New(debounce time.Duration, logger *slog.Logger) (*LayoutWatcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}
	if logger == nil {
		logger = slog.Default()
	}
	if debounce <= 0 {
		debounce = DefaultDebounce
	}

	return &LayoutWatcher{
		watcher:  w,
		logger:   logger.With("component", "watcher"),
		debounce: debounce,
		handlers: make(map[string]LayoutFunc),
		timers:   make(map[string]*time.Timer),
		dirs:     make(map[string]int),
	}, nil
}

// Watch registers fn for changes to the layout file at path
func (lw *LayoutWatcher) Watch(path string, fn LayoutFunc) error {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("failed to resolve path %s: %w", path, err)
	}

	lw.mu.Lock()
	defer lw.mu.Unlock()

	if _, ok := lw.handlers[absPath]; !ok {
		dir := filepath.Dir(absPath)
		if lw.dirs[dir] == 0 {
			if err := lw.watcher.Add(dir); err != nil {
				return fmt.Errorf("failed to watch %s: %w", dir, err)
			}
		}
		lw.dirs[dir]++
	}
	lw.handlers[absPath] = fn
	return nil
}

// Unwatch stops watching the layout file at path
func (lw *LayoutWatcher) Unwatch(path string) error {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("failed to resolve path %s: %w", path, err)
	}

	lw.mu.Lock()
	defer lw.mu.Unlock()

	if _, ok := lw.handlers[absPath]; !ok {
		return nil
	}
	delete(lw.handlers, absPath)
	if t, ok := lw.timers[absPath]; ok {
		t.Stop()
		delete(lw.timers, absPath)
	}

	dir := filepath.Dir(absPath)
	lw.dirs[dir]--
	if lw.dirs[dir] == 0 {
		delete(lw.dirs, dir)
		return lw.watcher.Remove(dir)
	}
	return nil
}

// Start processes file events until ctx is done or the watcher is closed
func (lw *LayoutWatcher) Start(ctx context.Context) {
	go func() {
		for {
			select {
			case <-ctx.Done():
				return

			case event, ok := <-lw.watcher.Events:
				if !ok {
					return
				}
				if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Rename) {
					lw.schedule(event.Name)
				}

			case err, ok := <-lw.watcher.Errors:
				if !ok {
					return
				}
				lw.logger.Warn("watcher error", "error", err)
			}
		}
	}()
}

// schedule reloads path once no further events arrive within the debounce period
func (lw *LayoutWatcher) schedule(path string) {
	lw.mu.Lock()
	defer lw.mu.Unlock()

	fn, ok := lw.handlers[path]
	if !ok {
		return
	}

	if t, ok := lw.timers[path]; ok {
		t.Stop()
	}
	lw.timers[path] = time.AfterFunc(lw.debounce, func() {
		lw.reload(path, fn)
	})
}

func (lw *LayoutWatcher) reload(path string, fn LayoutFunc) {
	layout, err := trackfile.Parse(path)
	if err != nil {
		lw.logger.Warn("failed to reload layout", "path", path, "error", err)
		return
	}
	lw.logger.Debug("layout reloaded", "path", path, "anchors", layout.AnchorCount())
	fn(path, layout)
}

// Close stops the watcher and any pending reloads
func (lw *LayoutWatcher) Close() error {
	lw.mu.Lock()
	for _, t := range lw.timers {
		t.Stop()
	}
	lw.timers = make(map[string]*time.Timer)
	lw.mu.Unlock()

	return lw.watcher.Close()
}
