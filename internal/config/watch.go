package config

import (
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// reloadDebounce collapses the burst of events editors produce on save.
const reloadDebounce = 150 * time.Millisecond

// Reload is delivered by a Watcher each time the config file changes.
// Err is set when the new file fails to load or validate; Config is then nil.
type Reload struct {
	Config *Config
	Err    error
}

// Watcher reloads a config file when it changes on disk.
type Watcher struct {
	path    string
	fsw     *fsnotify.Watcher
	reloads chan Reload

	closeOnce sync.Once
	closeCh   chan struct{}
	wg        sync.WaitGroup
}

// Watch starts watching the config file at path. The parent directory is
// watched so that atomic rename-on-save is picked up.
func Watch(path string) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("config: watch %s: %w", path, err)
	}
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("config: watch %s: %w", path, err)
	}
	if err := fsw.Add(filepath.Dir(abs)); err != nil {
		_ = fsw.Close()
		return nil, fmt.Errorf("config: watch %s: %w", path, err)
	}

	w := &Watcher{
		path:    abs,
		fsw:     fsw,
		reloads: make(chan Reload, 1),
		closeCh: make(chan struct{}),
	}
	w.wg.Add(1)
	go w.loop()
	return w, nil
}

// Reloads returns the channel of reload results. It is closed by Close.
func (w *Watcher) Reloads() <-chan Reload { return w.reloads }

// Path returns the absolute path being watched.
func (w *Watcher) Path() string { return w.path }

// Close stops the watcher. Safe to call more than once.
func (w *Watcher) Close() error {
	var err error
	w.closeOnce.Do(func() {
		close(w.closeCh)
		err = w.fsw.Close()
		w.wg.Wait()
		close(w.reloads)
	})
	return err
}

func (w *Watcher) loop() {
	defer w.wg.Done()

	var (
		timer *time.Timer
		fire  <-chan time.Time
	)
	for {
		select {
		case <-w.closeCh:
			if timer != nil {
				timer.Stop()
			}
			return
		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != w.path {
				continue
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(reloadDebounce)
			} else {
				timer.Reset(reloadDebounce)
			}
			fire = timer.C
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			w.send(Reload{Err: fmt.Errorf("config: watch %s: %w", w.path, err)})
		case <-fire:
			fire = nil
			w.send(w.reload())
		}
	}
}

func (w *Watcher) reload() Reload {
	cfg, err := Load(w.path)
	if err != nil {
		return Reload{Err: err}
	}
	if err := cfg.Validate(); err != nil {
		return Reload{Err: fmt.Errorf("config: %s: %w", w.path, err)}
	}
	return Reload{Config: cfg}
}

// send delivers r, replacing any reload the consumer has not picked up yet.
func (w *Watcher) send(r Reload) {
	for {
		select {
		case w.reloads <- r:
			return
		case <-w.closeCh:
			return
		default:
		}
		select {
		case <-w.reloads:
		default:
		}
	}
}
