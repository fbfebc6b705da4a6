package main

import (
	"log"
	"sync"

	"github.com/lixenwraith/snaketerm/audio"
	"github.com/lixenwraith/snaketerm/config"
	"github.com/lixenwraith/snaketerm/engine"
	"github.com/lixenwraith/snaketerm/input"
	"github.com/lixenwraith/snaketerm/terminal"
)

const configPath = "snaketerm.json"

func main() {
	// Config and keymap come up before the terminal switches modes, so
	// their log lines still reach a readable stderr.
	store := config.NewStore(configPath)

	keymap := input.DefaultKeymap()
	if err := keymap.ApplyOverrides(store.Current().Keys); err != nil {
		log.Printf("Ignoring %v", err)
	}

	beeper := audio.Open()
	defer beeper.Close()

	screen, err := terminal.Open()
	if err != nil {
		log.Fatalf("Failed to initialize terminal: %v", err)
	}
	defer screen.Close()

	width, height := screen.Size()
	game := engine.NewGame(width, height, engine.NewMonotonicTimeProvider())

	reader := input.NewReader(screen, keymap)
	// Hot reload is best effort; without a watcher the game keeps its
	// startup settings.
	_ = store.Watch(func(cfg config.Config) {
		km := input.DefaultKeymap()
		if km.ApplyOverrides(cfg.Keys) == nil {
			reader.SetKeymap(km)
		}
	})
	defer store.Close()

	settings := func() engine.Settings {
		cfg := store.Current()
		return engine.Settings{FPS: cfg.FPS, Glyph: cfg.GlyphRune()}
	}

	commands := make(chan engine.Command) // rendezvous handoff
	done := make(chan struct{})
	loop := engine.NewLoop(game, screen, commands, settings, beeper)

	var wg sync.WaitGroup
	wg.Add(2)

	go func() {
		defer wg.Done()
		reader.Run(commands, done)
	}()

	go func() {
		defer wg.Done()
		loop.Run()
		close(done)
		// Finalizing the screen unblocks the reader's PollEvent
		screen.Close()
	}()

	wg.Wait()
}
