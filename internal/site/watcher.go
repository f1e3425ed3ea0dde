package site

import (
	"fmt"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"
)

// Watcher reports changes to a set of files.
//
// It watches the containing directories rather than the files themselves, as
// editors commonly replace files on save.
type Watcher struct {
	w   *fsnotify.Watcher
	log zerolog.Logger

	mtx   sync.Mutex
	files map[string]struct{}
	dirs  map[string]int

	done chan struct{}
}

// NewWatcher starts a watcher calling onChange with the (cleaned) path of any
// watched file that is written, created or renamed.
// onChange is called from the watcher's own goroutine.
func NewWatcher(logger zerolog.Logger, onChange func(path string)) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("could not create file watcher: %w", err)
	}
	w := &Watcher{
		w:     fw,
		log:   logger,
		files: map[string]struct{}{},
		dirs:  map[string]int{},
		done:  make(chan struct{}),
	}
	go w.run(onChange)
	return w, nil
}

func (w *Watcher) run(onChange func(path string)) {
	defer close(w.done)
	for {
		select {
		case ev, ok := <-w.w.Events:
			if !ok {
				return
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) {
				continue
			}
			path := filepath.Clean(ev.Name)
			if !w.Watching(path) {
				continue
			}
			w.log.Debug().Str("file", path).Str("op", ev.Op.String()).Msg("watched file changed")
			onChange(path)
		case err, ok := <-w.w.Errors:
			if !ok {
				return
			}
			w.log.Warn().Err(err).Msg("file watcher error")
		}
	}
}

// Watching reports whether the given file is watched.
func (w *Watcher) Watching(path string) bool {
	w.mtx.Lock()
	defer w.mtx.Unlock()
	_, ok := w.files[filepath.Clean(path)]
	return ok
}

// Set replaces the set of watched files.
func (w *Watcher) Set(paths ...string) error {
	w.mtx.Lock()
	defer w.mtx.Unlock()

	wanted := map[string]struct{}{}
	for _, p := range paths {
		if p != "" {
			wanted[filepath.Clean(p)] = struct{}{}
		}
	}

	for p := range w.files {
		if _, keep := wanted[p]; keep {
			continue
		}
		delete(w.files, p)
		dir := filepath.Dir(p)
		w.dirs[dir]--
		if w.dirs[dir] == 0 {
			delete(w.dirs, dir)
			if err := w.w.Remove(dir); err != nil {
				w.log.Debug().Err(err).Str("dir", dir).Msg("could not stop watching directory")
			}
		}
	}

	for p := range wanted {
		if _, ok := w.files[p]; ok {
			continue
		}
		dir := filepath.Dir(p)
		if w.dirs[dir] == 0 {
			if err := w.w.Add(dir); err != nil {
				return fmt.Errorf("could not watch '%s': %w", dir, err)
			}
		}
		w.dirs[dir]++
		w.files[p] = struct{}{}
	}

	return nil
}

// Close stops the watcher.
func (w *Watcher) Close() error {
	err := w.w.Close()
	<-w.done
	return err
}
