package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/debug"
	"time"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/term"

	"github.com/lixenwraith/planet-offline/asset"
	"github.com/lixenwraith/planet-offline/audio"
	"github.com/lixenwraith/planet-offline/config"
	"github.com/lixenwraith/planet-offline/constants"
	"github.com/lixenwraith/planet-offline/engine"
	"github.com/lixenwraith/planet-offline/game"
	"github.com/lixenwraith/planet-offline/level"
	"github.com/lixenwraith/planet-offline/modes"
	"github.com/lixenwraith/planet-offline/persistence"
	"github.com/lixenwraith/planet-offline/render"
	"github.com/lixenwraith/planet-offline/terrain"
	"github.com/lixenwraith/planet-offline/vmath"
)

var errNotTerminal = errors.New("stdout is not a terminal")

func main() {
	cfg, err := config.Load(os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		config.PrintUsage(os.Stderr)
		os.Exit(0)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "planet-offline: %v\n", err)
		os.Exit(2)
	}

	if err := run(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "planet-offline: %v\n", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config) error {
	if logFile := setupLogging(cfg.Debug); logFile != nil {
		defer logFile.Close()
	}

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return errNotTerminal
	}

	// Animation table is checked before the terminal is touched
	assets, err := asset.Default()
	if err != nil {
		return fmt.Errorf("assets: %w", err)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("terminal: %w", err)
	}
	// Normal exit terminal cleanup
	defer screen.Fini()

	// Panic Recovery: Ensure terminal is reset even if the game crashes
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			fmt.Fprintf(os.Stderr, "\n\x1b[31mPLANET: OFFLINE CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()

	screen.HideCursor()
	screen.SetStyle(tcell.StyleDefault.Background(render.Color(render.RgbBackground)))

	audioCfg := audio.DefaultAudioConfig().WithVolume(cfg.Volume)
	audioCfg.Muted = cfg.Mute
	sound := audio.NewSoundManager(audioCfg)
	if err := sound.Initialize(); err != nil {
		log.Printf("audio initialization failed: %v (continuing without audio)", err)
	}
	defer sound.Cleanup()

	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	store := persistence.NewFileStore(cfg.ScoreFile)
	log.Printf("seed %d, score file %s", seed, store.Path())

	keys := modes.NewKeyState()
	ctx := engine.NewGameContext(assets, sound, keys, terrain.New(terrain.DefaultSeed), vmath.NewFastRand(seed))
	g := game.New(ctx, store, level.Script)

	renderer := render.NewTerminalRenderer(screen)
	input := modes.NewInputHandler(keys, g)

	eventChan := make(chan tcell.Event, 256)
	// Input polling uses raw goroutine as it interacts directly with terminal
	go func() {
		defer func() {
			if r := recover(); r != nil {
				screen.Fini()
				fmt.Fprintf(os.Stderr, "\r\n\x1b[31mEVENT POLLER CRASHED: %v\x1b[0m\r\n", r)
				fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
				os.Exit(1)
			}
		}()

		for {
			ev := screen.PollEvent()
			if ev == nil {
				return // Screen finalized
			}
			eventChan <- ev
		}
	}()

	frameTicker := time.NewTicker(time.Second / time.Duration(cfg.FPS))
	defer frameTicker.Stop()

	var loadTimer <-chan time.Time
	g.Draw(renderer)

	for {
		select {
		case ev := <-eventChan:
			if _, ok := ev.(*tcell.EventResize); ok {
				screen.Sync()
				renderer.Resize()
			}
			if !input.HandleEvent(ev) {
				log.Printf("quit")
				return nil
			}
			if g.LoadPending() && loadTimer == nil {
				loadTimer = time.After(constants.LoadingDelay)
			}

		case <-loadTimer:
			loadTimer = nil
			g.CompleteLoad()

		case <-frameTicker.C:
			if g.Step() {
				g.Draw(renderer)
			}
			keys.Tick()
			if err := g.Err(); err != nil {
				return err
			}
		}
	}
}
