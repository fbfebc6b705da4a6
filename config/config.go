// Package config loads the game's JSON settings file, creating it with
// defaults when missing, and hot-reloads it on change.
package config

import (
	"encoding/json"
	"errors"
	"log"
	"os"
	"path/filepath"
	"sync/atomic"
	"unicode/utf8"

	"github.com/fsnotify/fsnotify"
)

// Config holds the structure of the configuration
type Config struct {
	FPS   float64           `json:"fps"`
	Glyph string            `json:"glyph"`
	Keys  map[string]string `json:"keys,omitempty"`
}

// Default returns the built-in settings: 30 fps, full-block glyph, no
// key overrides.
func Default() Config {
	return Config{
		FPS:   30,
		Glyph: "█",
	}
}

// GlyphRune returns the configured draw glyph, falling back to the
// full block when the field is empty or not a single rune.
func (c Config) GlyphRune() rune {
	r, size := utf8.DecodeRuneInString(c.Glyph)
	if r == utf8.RuneError || size != len(c.Glyph) {
		return '█'
	}
	return r
}

// sanitized replaces out-of-range values with defaults.
func (c Config) sanitized() Config {
	if c.FPS <= 0 {
		c.FPS = Default().FPS
	}
	return c
}

// Load reads the config file. A missing file is created with defaults;
// unreadable or malformed content falls back to defaults with a log
// line, never an error.
func Load(path string) Config {
	cfg := Default()

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		save(path, cfg)
		return cfg
	}
	if err != nil {
		log.Printf("Config read failed, using defaults: %v", err)
		return cfg
	}

	if err := json.Unmarshal(data, &cfg); err != nil {
		log.Printf("Config parse failed, using defaults: %v", err)
		return Default()
	}
	return cfg.sanitized()
}

// save writes the settings to the file
func save(path string, cfg Config) {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		log.Printf("Config write failed: %v", err)
	}
}

// Store publishes the current config through an atomic pointer so the
// render loop and input reader pick up reloads without locking.
type Store struct {
	path    string
	current atomic.Pointer[Config]
	watcher *fsnotify.Watcher
}

// NewStore loads the config at path and returns a store for it.
func NewStore(path string) *Store {
	s := &Store{path: path}
	cfg := Load(path)
	s.current.Store(&cfg)
	return s
}

// Current returns the most recently loaded config.
func (s *Store) Current() Config {
	return *s.current.Load()
}

// reload re-reads the file and publishes the result.
func (s *Store) reload(onReload func(Config)) {
	cfg := Load(s.path)
	s.current.Store(&cfg)
	if onReload != nil {
		onReload(cfg)
	}
}

// Watch reloads the config when the file changes. The parent directory
// is watched so editors that replace the file atomically still
// trigger. onReload (optional) runs after each publish.
func (s *Store) Watch(onReload func(Config)) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	if err := watcher.Add(filepath.Dir(s.path)); err != nil {
		watcher.Close()
		return err
	}
	s.watcher = watcher

	go func() {
		for {
			select {
			case ev, ok := <-watcher.Events:
				if !ok {
					return
				}
				if ev.Name == s.path && ev.Op&(fsnotify.Write|fsnotify.Create) != 0 {
					s.reload(onReload)
				}
			case _, ok := <-watcher.Errors:
				if !ok {
					return
				}
			}
		}
	}()
	return nil
}

// Close stops the watcher, if any.
func (s *Store) Close() {
	if s.watcher != nil {
		s.watcher.Close()
	}
}
