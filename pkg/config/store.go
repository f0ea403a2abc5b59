package config

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"
	"github.com/fsnotify/fsnotify"
)

// Store holds the current configuration snapshot. Providers call
// [Store.Carrier] on every fetch, so a reload takes effect on the next call.
type Store struct {
	path string
	cur  atomic.Pointer[Config]
}

// NewStore wraps a fixed configuration. A nil cfg uses Default().
func NewStore(cfg *Config) *Store {
	if cfg == nil {
		cfg = Default()
	}
	s := &Store{}
	s.cur.Store(cfg)
	return s
}

// Open loads path into a new Store that can later Reload and Watch it.
func Open(path string) (*Store, error) {
	cfg, err := Load(path)
	if err != nil {
		return nil, err
	}
	s := NewStore(cfg)
	s.path = path
	return s, nil
}

// Path returns the file backing the store, or "" for a fixed store.
func (s *Store) Path() string { return s.path }

// Current returns the active snapshot. Callers must not modify it.
func (s *Store) Current() *Config { return s.cur.Load() }

// Carrier returns the effective settings for a carrier id. Environment
// overrides are read on every call, so they apply without a reload.
func (s *Store) Carrier(name string) Carrier {
	return carrierEnv(name, s.Current().Carrier(name), os.LookupEnv)
}

// Reload re-reads the backing file. On failure the previous snapshot stays
// active.
func (s *Store) Reload() error {
	if s.path == "" {
		return nil
	}
	cfg, err := Load(s.path)
	if err != nil {
		return err
	}
	s.cur.Store(cfg)
	return nil
}

// Watch reloads the store whenever its file changes, until ctx is done.
// The parent directory is watched so editors that replace the file by
// rename are handled.
func (s *Store) Watch(ctx context.Context, logger *log.Logger) error {
	if s.path == "" {
		return fmt.Errorf("config store has no backing file")
	}
	absPath, err := filepath.Abs(s.path)
	if err != nil {
		return fmt.Errorf("resolve config path: %w", err)
	}
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	if err := watcher.Add(filepath.Dir(absPath)); err != nil {
		_ = watcher.Close()
		return fmt.Errorf("watch %s: %w", filepath.Dir(absPath), err)
	}

	go func() {
		defer watcher.Close()
		const debounce = 100 * time.Millisecond
		var timer *time.Timer
		for {
			select {
			case <-ctx.Done():
				if timer != nil {
					timer.Stop()
				}
				return
			case ev, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Clean(ev.Name) != absPath {
					continue
				}
				if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Chmod) {
					continue
				}
				if timer != nil {
					timer.Stop()
				}
				timer = time.AfterFunc(debounce, func() {
					if err := s.Reload(); err != nil {
						logger.Warn("config reload failed, keeping previous", "path", absPath, "err", err)
						return
					}
					logger.Info("config reloaded", "path", absPath)
				})
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				logger.Warn("config watcher error", "err", err)
			}
		}
	}()
	return nil
}
