package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/decred/slog"
)

const (
	logDir      = "logs"
	logFileName = "pong.log"
	maxLogSize  = 10 * 1024 * 1024 // 10 MB
)

// setupLogging routes the standard logger to logs/pong.log when debug is set
// An oversized log is renamed with a timestamp before a fresh one is opened
// Returns nil, with output discarded, when debug is off or the file cannot be opened
func setupLogging(debug bool) *os.File {
	if !debug {
		log.SetOutput(io.Discard)
		return nil
	}

	if err := os.MkdirAll(logDir, 0755); err != nil {
		log.SetOutput(io.Discard)
		return nil
	}

	logPath := filepath.Join(logDir, logFileName)
	if info, err := os.Stat(logPath); err == nil && info.Size() > maxLogSize {
		rotated := filepath.Join(logDir, fmt.Sprintf("pong-%s.log", time.Now().Format("20060102-150405")))
		_ = os.Rename(logPath, rotated)
	}

	logFile, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		log.SetOutput(io.Discard)
		return nil
	}

	log.SetOutput(logFile)
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
	return logFile
}

// loggers holds one leveled logger per subsystem over a shared backend
type loggers struct {
	pong  slog.Logger
	audio slog.Logger
	input slog.Logger
}

// newLoggers builds subsystem loggers writing to w at the named level
// Unknown level names fall back to info
func newLoggers(w io.Writer, level string) loggers {
	if w == nil {
		return loggers{pong: slog.Disabled, audio: slog.Disabled, input: slog.Disabled}
	}

	lvl, ok := slog.LevelFromString(level)
	if !ok {
		lvl = slog.LevelInfo
	}

	backend := slog.NewBackend(w)
	l := loggers{
		pong:  backend.Logger("PONG"),
		audio: backend.Logger("AUDI"),
		input: backend.Logger("INPT"),
	}
	for _, lg := range []slog.Logger{l.pong, l.audio, l.input} {
		lg.SetLevel(lvl)
	}
	return l
}
