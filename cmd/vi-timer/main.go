package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vi-timer/audio"
	"github.com/lixenwraith/vi-timer/config"
	"github.com/lixenwraith/vi-timer/core"
	"github.com/lixenwraith/vi-timer/engine"
	"github.com/lixenwraith/vi-timer/input"
	"github.com/lixenwraith/vi-timer/timer"
)

// appFlags are the long options, everything else belongs to the timer
type appFlags struct {
	configPath string
	debug      bool
	mute       bool
	color      string
}

// splitArgs separates --long options from timer arguments
// Timer arguments keep their order since the last duration or clock token wins
func splitArgs(args []string) (flags, rest []string) {
	for _, a := range args {
		if strings.HasPrefix(a, "--") && len(a) > 2 {
			flags = append(flags, a)
			continue
		}
		rest = append(rest, a)
	}
	return flags, rest
}

func parseFlags(args []string, out io.Writer) (appFlags, error) {
	var f appFlags
	fs := flag.NewFlagSet("vi-timer", flag.ContinueOnError)
	fs.SetOutput(out)
	fs.StringVar(&f.configPath, "config", "vi-timer.yaml", "Path to YAML config")
	fs.BoolVar(&f.debug, "debug", false, "Write debug log to logs/vi-timer.log")
	fs.BoolVar(&f.mute, "mute", false, "Disable audio")
	fs.StringVar(&f.color, "color", "auto", "Color mode: auto, truecolor, 256")
	fs.Usage = func() {
		fmt.Fprintf(out, "usage: vi-timer [--config=PATH] [--debug] [--mute] [--color=MODE] [-p] [-e] [DURATION|clock]\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return f, err
	}
	if fs.NArg() > 0 {
		return f, fmt.Errorf("unexpected flag argument %q", fs.Arg(0))
	}
	return f, nil
}

// applyColorMode steers tcell's terminal capability detection
func applyColorMode(mode string) {
	switch mode {
	case "256":
		os.Setenv("TCELL_TRUECOLOR", "disable")
	case "truecolor", "true", "24bit":
		os.Setenv("COLORTERM", "truecolor")
	}
}

func loadConfig(path string) (*config.Config, error) {
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	config.ApplyEnv(cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	flagArgs, timerArgs := splitArgs(args)
	flags, err := parseFlags(flagArgs, os.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		fmt.Fprintf(os.Stderr, "vi-timer: %v\n", err)
		return 1
	}

	if logFile := setupLogging(flags.debug); logFile != nil {
		defer logFile.Close()
	}

	cfg, err := loadConfig(flags.configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "vi-timer: %v\n", err)
		return 1
	}

	var keys *input.KeyTable
	if len(cfg.Keys) > 0 {
		override, err := input.LoadKeyConfig(cfg.Keys)
		if err != nil {
			fmt.Fprintf(os.Stderr, "vi-timer: %v\n", err)
			return 1
		}
		keys = input.DefaultKeyTable()
		keys.Merge(override)
	}

	clock, err := timer.NewSystemWallClock(cfg.Clock.Timezone)
	if err != nil {
		fmt.Fprintf(os.Stderr, "vi-timer: timezone %q: %v\n", cfg.Clock.Timezone, err)
		return 1
	}

	state, err := timer.Initialize(timerArgs, clock)
	if err != nil {
		fmt.Fprintf(os.Stderr, "vi-timer: %v\n", err)
		return 1
	}
	log.Printf("starting: mode=%s args=%q", state.Mode(), timerArgs)

	applyColorMode(flags.color)
	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		return 1
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		return 1
	}
	core.SetCrashScreen(screen)
	defer func() {
		core.SetCrashScreen(nil)
		screen.Fini()
	}()
	// Panic Recovery: restore the terminal even if the loop crashes
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	screen.EnableMouse()
	screen.HideCursor()

	var sound audio.Player = audio.NopPlayer{}
	if cfg.Audio.Enabled && !flags.mute {
		sm := audio.NewSoundManager(cfg.Audio)
		if err := sm.Initialize(); err != nil {
			log.Printf("audio initialization failed: %v (continuing without audio)", err)
		} else {
			sound = sm
		}
	}
	defer sound.Cleanup()

	app := engine.NewApp(engine.AppConfig{
		Screen:  screen,
		Args:    timerArgs,
		Clock:   clock,
		State:   state,
		Display: cfg.Display,
		Keys:    keys,
		Sound:   sound,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := app.Run(ctx); err != nil {
		log.Printf("loop error: %v", err)
		return 1
	}
	log.Printf("exit")
	return 0
}
