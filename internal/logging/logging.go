package logging

import (
	"io"
	"log"
	"os"
	"path/filepath"

	"gopkg.in/natefinch/lumberjack.v2"

	"autocomplete/internal/config"
)

// Setup points the standard logger at a size-rotated file. The terminal is
// owned by the UI, so nothing is logged to stdout or stderr. The returned
// closer flushes and closes the file.
func Setup(settings config.LogSettings) io.Closer {
	if settings.File == "" {
		log.SetOutput(io.Discard)
		return nopCloser{}
	}

	if dir := filepath.Dir(settings.File); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			log.Printf("Could not create log directory: %v", err)
		}
	}

	logFile := &lumberjack.Logger{
		Filename:   settings.File,
		MaxSize:    settings.MaxSizeMB, // megabytes
		MaxBackups: settings.MaxBackups,
		MaxAge:     settings.MaxAgeDays, // days
	}
	log.SetOutput(logFile)
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
	return logFile
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
