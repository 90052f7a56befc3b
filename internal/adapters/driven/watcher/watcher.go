// Package watcher reports changes to catalog data on disk using fsnotify.
//
// It watches the local skills directory recursively and individual files
// such as the catalog document. Bursts of events (editors often write a
// file several times per save) are coalesced into a single callback.
package watcher

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/custodia-labs/capseek/internal/logger"
)

// DefaultDebounce is the quiet period after the last event before the
// callback fires.
const DefaultDebounce = 200 * time.Millisecond

// ErrStopped is returned by Watch after Stop.
var ErrStopped = errors.New("watcher stopped")

// Watcher monitors catalog directories and files.
type Watcher struct {
	fw       *fsnotify.Watcher
	debounce time.Duration
	done     chan struct{}
	wg       sync.WaitGroup

	mu      sync.Mutex
	started bool
	stopped bool
	dirs    []string
	files   map[string]bool
}

// New creates a new watcher. A non-positive debounce uses DefaultDebounce.
func New(debounce time.Duration) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	return &Watcher{
		fw:       fw,
		debounce: debounce,
		done:     make(chan struct{}),
		files:    make(map[string]bool),
	}, nil
}

// AddDir watches dir and every directory below it. A missing directory
// is skipped.
func (w *Watcher) AddDir(dir string) error {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return err
	}
	if _, err := os.Stat(abs); os.IsNotExist(err) {
		logger.Debug("watcher: %s does not exist, not watching", abs)
		return nil
	}

	w.mu.Lock()
	w.dirs = append(w.dirs, abs)
	w.mu.Unlock()

	return filepath.WalkDir(abs, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return nil // skip inaccessible paths
		}
		if !d.IsDir() {
			return nil
		}
		if path != abs && isHidden(d.Name()) {
			return filepath.SkipDir
		}
		return w.fw.Add(path)
	})
}

// AddFile watches a single file. Its parent directory is watched so that
// editors replacing the file by rename are still seen.
func (w *Watcher) AddFile(path string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return err
	}
	parent := filepath.Dir(abs)
	if _, err := os.Stat(parent); os.IsNotExist(err) {
		logger.Debug("watcher: %s does not exist, not watching %s", parent, abs)
		return nil
	}

	w.mu.Lock()
	w.files[abs] = true
	w.mu.Unlock()

	return w.fw.Add(parent)
}

// Watch starts delivering changes. onChange receives the last changed path
// of each burst and is called from the watcher goroutine.
func (w *Watcher) Watch(onChange func(path string)) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.stopped {
		return ErrStopped
	}
	if w.started {
		return errors.New("watcher already started")
	}
	w.started = true

	w.wg.Add(1)
	go w.loop(onChange)
	return nil
}

func (w *Watcher) loop(onChange func(path string)) {
	defer w.wg.Done()

	var (
		timer   *time.Timer
		fire    <-chan time.Time
		pending string
	)
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case event, ok := <-w.fw.Events:
			if !ok {
				return
			}
			if event.Has(fsnotify.Create) {
				w.followNewDir(event.Name)
			}
			if !w.relevant(event) {
				continue
			}
			pending = event.Name
			if timer == nil {
				timer = time.NewTimer(w.debounce)
				fire = timer.C
			} else {
				timer.Reset(w.debounce)
			}

		case <-fire:
			timer, fire = nil, nil
			logger.Debug("watcher: change detected at %s", pending)
			onChange(pending)

		case err, ok := <-w.fw.Errors:
			if !ok {
				return
			}
			logger.Debug("watcher: %v", err)

		case <-w.done:
			return
		}
	}
}

// followNewDir starts watching directories created inside a watched tree.
func (w *Watcher) followNewDir(path string) {
	info, err := os.Stat(path)
	if err != nil || !info.IsDir() || isHidden(info.Name()) {
		return
	}
	if w.underDir(path) {
		_ = w.fw.Add(path)
	}
}

func (w *Watcher) relevant(event fsnotify.Event) bool {
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) &&
		!event.Has(fsnotify.Remove) && !event.Has(fsnotify.Rename) {
		return false
	}

	w.mu.Lock()
	watchedFile := w.files[event.Name]
	w.mu.Unlock()
	if watchedFile {
		return true
	}

	base := filepath.Base(event.Name)
	if isHidden(base) || strings.HasSuffix(base, "~") || strings.HasSuffix(base, ".swp") {
		return false
	}
	return w.underDir(event.Name)
}

func (w *Watcher) underDir(path string) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	for _, dir := range w.dirs {
		if path == dir || strings.HasPrefix(path, dir+string(filepath.Separator)) {
			return true
		}
	}
	return false
}

// Stop ends monitoring and waits for the watcher goroutine to exit.
// No callback fires after Stop returns. Safe to call multiple times.
func (w *Watcher) Stop() error {
	w.mu.Lock()
	if w.stopped {
		w.mu.Unlock()
		return nil
	}
	w.stopped = true
	close(w.done)
	w.mu.Unlock()

	w.wg.Wait()
	return w.fw.Close()
}

func isHidden(name string) bool {
	return strings.HasPrefix(name, ".")
}
