package main

import (
	"fmt"
	"os"
	"runtime/debug"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vi-rogue/audio"
	"github.com/lixenwraith/vi-rogue/config"
	"github.com/lixenwraith/vi-rogue/constants"
	"github.com/lixenwraith/vi-rogue/logger"
	"github.com/lixenwraith/vi-rogue/modes"
	"github.com/lixenwraith/vi-rogue/render"
)

func main() {
	opts, err := parseFlags(os.Args[1:], os.Stderr)
	if err != nil {
		os.Exit(2)
	}

	// Logging is discarded when the file cannot be opened
	if err := logger.Init(opts.logPath, opts.logLevel); err != nil {
		fmt.Fprintf(os.Stderr, "Logging disabled: %v\n", err)
	}
	defer logger.Close()

	cfg, err := config.Load(opts.configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize screen: %v\n", err)
		os.Exit(1)
	}
	// Normal exit terminal cleanup
	defer screen.Fini()

	// Panic Recovery: Ensure terminal is reset even if the game crashes
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			fmt.Fprintf(os.Stderr, "\n\x1b[31mVI-ROGUE CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			logger.Log.WithField("panic", r).Error("crashed")
			os.Exit(1)
		}
	}()

	// Sound is optional; the game runs silent when the device is unavailable
	sound := audio.NewSoundManager()
	if err := sound.Initialize(); err != nil {
		logger.Log.WithError(err).Warn("audio initialization failed, continuing without sound")
	}
	sound.SetMuted(opts.mute)
	defer sound.Cleanup()

	ctx := modes.NewGameContext(modes.Options{
		Config:     cfg,
		SavesDir:   opts.savesDir,
		Sound:      sound,
		PulseDelay: constants.CombatPulseDelay,
	})
	renderer := render.NewRenderer(screen, cfg.Palette)
	ctx.Redraw = func() { renderer.RenderFrame(ctx) }

	ctx.Resize(screen.Size())
	if opts.seed != "" {
		ctx.NewGame(opts.seed)
	}

	inputHandler := modes.NewInputHandler(ctx)
	logger.Log.WithField("config", opts.configPath).Info("started")

	eventChan := make(chan tcell.Event, 256)
	// Input polling uses raw goroutine as it interacts directly with the terminal
	go func() {
		for {
			ev := screen.PollEvent()
			// Nil after Fini
			if ev == nil {
				close(eventChan)
				return
			}
			eventChan <- ev
		}
	}()

	renderer.RenderFrame(ctx)
	for ev := range eventChan {
		if !inputHandler.HandleEvent(ev) {
			logger.Log.Info("quit")
			return
		}
		if _, ok := ev.(*tcell.EventResize); ok {
			screen.Sync()
		}
		renderer.RenderFrame(ctx)
	}
}
