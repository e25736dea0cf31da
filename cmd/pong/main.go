package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"runtime/debug"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/term-pong/audio"
	"github.com/lixenwraith/term-pong/config"
	"github.com/lixenwraith/term-pong/terminal"
)

var (
	configPath   = flag.String("config", "", "YAML file overriding the built-in defaults")
	debugFlag    = flag.Bool("debug", false, "Write logs to "+logDir+"/"+logFileName)
	logLevelFlag = flag.String("loglevel", "debug", "Log level with -debug: trace, debug, info, warn, error")
	seedFlag     = flag.Int64("seed", 0, "Serve randomness seed, 0 seeds from the clock")
	muteFlag     = flag.Bool("mute", false, "Start with sound muted")
	winningFlag  = flag.Int("winning-score", 0, "Points needed to win, 0 keeps the configured value")
	dumpConfig   = flag.Bool("print-config", false, "Print the default configuration and exit")
)

func main() {
	flag.Parse()

	if *dumpConfig {
		os.Stdout.Write(config.DefaultYAML())
		return
	}

	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "pong: %v\n", err)
		os.Exit(2)
	}

	logFile := setupLogging(*debugFlag)
	var logOut io.Writer
	if logFile != nil {
		defer logFile.Close()
		logOut = logFile
	}
	logs := newLoggers(logOut, *logLevelFlag)

	settings := audio.NewSettings(cfg.Audio)
	audio.ApplyEnv(settings)

	seed := *seedFlag
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	if !terminal.IsTerminal(os.Stdout) {
		fmt.Fprintln(os.Stderr, "pong: stdout is not a terminal")
		os.Exit(1)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		os.Exit(1)
	}
	screen.HideCursor()

	// Restore the terminal before printing so the trace is readable
	crash := func(r any) {
		terminal.EmergencyReset(os.Stdout)
		fmt.Fprintf(os.Stderr, "\r\n\x1b[31mPONG CRASHED: %v\x1b[0m\r\n", r)
		fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
		logs.pong.Criticalf("Crash: %v", r)
		os.Exit(1)
	}
	defer func() {
		if r := recover(); r != nil {
			crash(r)
		}
	}()

	g := newGame(screen, cfg, settings, options{seed: seed, muted: *muteFlag}, logs)
	g.run(crash)
	g.close()
	screen.Fini()
}

// loadConfig reads the optional config file and applies flag overrides
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(*configPath)
	if err != nil {
		return nil, err
	}
	if *winningFlag != 0 {
		cfg.Match.WinningScore = *winningFlag
		if err := cfg.Validate(); err != nil {
			return nil, fmt.Errorf("winning-score: %w", err)
		}
	}
	return cfg, nil
}
