package config

import (
	"os"
	"path/filepath"
	"testing"
)

// TestLoadMissingCreatesDefaults verifies a missing file yields the
// defaults and writes them back.
func TestLoadMissingCreatesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snaketerm.json")

	cfg := Load(path)

	if cfg.FPS != 30 {
		t.Errorf("Expected default fps 30, got %f", cfg.FPS)
	}
	if cfg.GlyphRune() != '█' {
		t.Errorf("Expected default glyph, got %q", cfg.GlyphRune())
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("Expected config file written back: %v", err)
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snaketerm.json")
	content := `{"fps": 60, "glyph": "#", "keys": {"quit": "x"}}`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg := Load(path)

	if cfg.FPS != 60 {
		t.Errorf("Expected fps 60, got %f", cfg.FPS)
	}
	if cfg.GlyphRune() != '#' {
		t.Errorf("Expected glyph '#', got %q", cfg.GlyphRune())
	}
	if cfg.Keys["quit"] != "x" {
		t.Errorf("Expected quit override, got %v", cfg.Keys)
	}
}

// TestLoadMalformedFallsBack verifies parse failures yield defaults
// rather than errors.
func TestLoadMalformedFallsBack(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snaketerm.json")
	if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg := Load(path)
	if cfg.FPS != 30 || cfg.GlyphRune() != '█' {
		t.Errorf("Expected defaults for malformed file, got %+v", cfg)
	}
}

// TestSanitized verifies out-of-range values fall back per field.
func TestSanitized(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snaketerm.json")
	if err := os.WriteFile(path, []byte(`{"fps": -5, "glyph": "abc"}`), 0644); err != nil {
		t.Fatal(err)
	}

	cfg := Load(path)
	if cfg.FPS != 30 {
		t.Errorf("Expected fps fallback 30, got %f", cfg.FPS)
	}
	if cfg.GlyphRune() != '█' {
		t.Errorf("Expected glyph fallback, got %q", cfg.GlyphRune())
	}
}

// TestStoreReload verifies the store republishes the file content on
// reload.
func TestStoreReload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snaketerm.json")
	store := NewStore(path)
	defer store.Close()

	if store.Current().FPS != 30 {
		t.Fatalf("Expected default fps, got %f", store.Current().FPS)
	}

	if err := os.WriteFile(path, []byte(`{"fps": 15, "glyph": "█"}`), 0644); err != nil {
		t.Fatal(err)
	}

	var notified Config
	store.reload(func(cfg Config) { notified = cfg })

	if store.Current().FPS != 15 {
		t.Errorf("Expected fps 15 after reload, got %f", store.Current().FPS)
	}
	if notified.FPS != 15 {
		t.Errorf("Expected reload callback with fps 15, got %f", notified.FPS)
	}
}

// TestWatchStartsAndCloses is a smoke test for the fsnotify wiring.
func TestWatchStartsAndCloses(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snaketerm.json")
	store := NewStore(path)

	if err := store.Watch(nil); err != nil {
		t.Fatalf("Watch: %v", err)
	}
	store.Close()
}
