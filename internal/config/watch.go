package config

import (
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// debounce is the quiet period after the last write before a reload;
// editors often write a file several times per save.
const debounce = 100 * time.Millisecond

// Update is one reload attempt of a watched config file.
type Update struct {
	Path   string
	Config JezzballConfig
	Err    error // read, parse or validation failure
}

// Watcher reloads a Jezzball config file whenever it changes on disk.
type Watcher struct {
	watcher *fsnotify.Watcher
	path    string
	Updates chan Update
	closeCh chan struct{}
	once    sync.Once
}

// NewWatcher watches path. The parent directory is watched rather than the
// file itself so that rename-on-save editors keep working.
func NewWatcher(path string) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := w.Add(filepath.Dir(abs)); err != nil {
		_ = w.Close()
		return nil, err
	}

	watcher := &Watcher{
		watcher: w,
		path:    abs,
		Updates: make(chan Update, 4),
		closeCh: make(chan struct{}),
	}
	go watcher.run()
	return watcher, nil
}

// Path returns the watched file.
func (w *Watcher) Path() string {
	return w.path
}

// Close stops watching. Updates is closed once the watch loop exits.
func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.closeCh)
		err = w.watcher.Close()
	})
	return err
}

func (w *Watcher) run() {
	defer close(w.Updates)

	timer := time.NewTimer(debounce)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			timer.Reset(debounce)
		case <-timer.C:
			if !w.send(w.load()) {
				return
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			if !w.send(Update{Path: w.path, Err: err}) {
				return
			}
		case <-w.closeCh:
			return
		}
	}
}

func (w *Watcher) load() Update {
	data, err := os.ReadFile(w.path)
	if err != nil {
		return Update{Path: w.path, Err: err}
	}
	cfg, err := ParseJezzball(data)
	return Update{Path: w.path, Config: cfg, Err: err}
}

func (w *Watcher) send(u Update) bool {
	select {
	case w.Updates <- u:
		return true
	case <-w.closeCh:
		return false
	}
}
