// Package observe re-runs callbacks when a watched file changes.
//
// It fills the role a DOM mutation observer plays in a browser: "on change
// of the input, render again". Rapid bursts of filesystem events are
// debounced into a single notification.
package observe

import (
	"context"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/teranos/rome/errors"
	"github.com/teranos/rome/logger"
)

// ChangeCallback is called with the path of the changed file
type ChangeCallback func(path string) error

// Watcher watches one file for changes and triggers callbacks
type Watcher struct {
	path           string
	watcher        *fsnotify.Watcher
	debouncePeriod time.Duration
	ignore         func(string) bool
	limiter        *rate.Limiter
	log            *zap.SugaredLogger

	mu            sync.Mutex
	callbacks     []ChangeCallback
	debounceTimer *time.Timer
	stopOnce      sync.Once
}

// Option configures a Watcher
type Option func(*Watcher)

// WithDebounce sets the quiet period before callbacks run. Zero disables
// debouncing.
func WithDebounce(d time.Duration) Option {
	return func(w *Watcher) { w.debouncePeriod = d }
}

// WithIgnore skips events whose file name matches
func WithIgnore(ignore func(path string) bool) Option {
	return func(w *Watcher) { w.ignore = ignore }
}

// WithRateLimit caps notifications at perMinute; notifications beyond the
// cap are dropped. Zero or less means unlimited.
func WithRateLimit(perMinute int) Option {
	return func(w *Watcher) {
		if perMinute <= 0 {
			w.limiter = nil
			return
		}
		w.limiter = rate.NewLimiter(rate.Limit(float64(perMinute)/60.0), 1)
	}
}

// DefaultDebounce is used when no WithDebounce option is given
const DefaultDebounce = 200 * time.Millisecond

// New creates a watcher for path.
//
// The parent directory is watched rather than the file itself so that
// editors which save by renaming a temporary file are still observed.
func New(path string, opts ...Option) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to resolve %s", path)
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, errors.Wrap(err, "failed to create fsnotify watcher")
	}
	if err := fw.Add(filepath.Dir(abs)); err != nil {
		fw.Close()
		return nil, errors.Wrapf(err, "failed to watch %s", path)
	}

	w := &Watcher{
		path:           abs,
		watcher:        fw,
		debouncePeriod: DefaultDebounce,
		log:            logger.Named("observe"),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w, nil
}

// Path returns the absolute path being watched
func (w *Watcher) Path() string {
	return w.path
}

// OnChange registers a callback to be called when the file changes
func (w *Watcher) OnChange(callback ChangeCallback) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.callbacks = append(w.callbacks, callback)
}

// Start watches until ctx is cancelled or Stop is called. It blocks.
func (w *Watcher) Start(ctx context.Context) error {
	defer w.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			if !w.relevant(event) {
				continue
			}
			w.log.Debugw("File change detected",
				logger.FieldFile, event.Name,
				logger.FieldOp, event.Op.String())
			w.schedule()

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			w.log.Warnw("Watcher error", logger.FieldError, err)
		}
	}
}

// Stop stops watching and cancels any pending notification
func (w *Watcher) Stop() error {
	var err error
	w.stopOnce.Do(func() {
		w.mu.Lock()
		if w.debounceTimer != nil {
			w.debounceTimer.Stop()
		}
		w.mu.Unlock()
		err = w.watcher.Close()
	})
	return err
}

// relevant keeps Write and Create events for the watched file only
func (w *Watcher) relevant(event fsnotify.Event) bool {
	if filepath.Clean(event.Name) != w.path {
		return false
	}
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
		return false
	}
	return w.ignore == nil || !w.ignore(event.Name)
}

// schedule debounces rapid file changes
func (w *Watcher) schedule() {
	if w.debouncePeriod <= 0 {
		w.notify()
		return
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	if w.debounceTimer != nil {
		w.debounceTimer.Stop()
	}
	w.debounceTimer = time.AfterFunc(w.debouncePeriod, w.notify)
}

// notify calls every callback; one failing callback does not stop the rest
func (w *Watcher) notify() {
	if w.limiter != nil && !w.limiter.Allow() {
		w.log.Debugw("Change notification rate limited", logger.FieldFile, w.path)
		return
	}

	w.mu.Lock()
	callbacks := make([]ChangeCallback, len(w.callbacks))
	copy(callbacks, w.callbacks)
	w.mu.Unlock()

	for _, callback := range callbacks {
		if err := callback(w.path); err != nil {
			w.log.Warnw("Change callback error", logger.FieldFile, w.path, logger.FieldError, err)
		}
	}
}
