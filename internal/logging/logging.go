package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Options configures the global logger.
type Options struct {
	// Folder enables a rotating main.log in this directory.
	Folder string
	Level  string
	// Console switches stdout to the human-readable console writer.
	Console bool
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// Setup configures the global zerolog logger. The returned closer flushes the
// log file, if any.
func Setup(opts Options) (io.Closer, error) {
	level := zerolog.InfoLevel
	if opts.Level != "" {
		l, err := zerolog.ParseLevel(opts.Level)
		if err != nil {
			return nil, fmt.Errorf("log level %q: %w", opts.Level, err)
		}
		level = l
	}
	zerolog.SetGlobalLevel(level)

	var stdout io.Writer = os.Stdout
	if opts.Console {
		stdout = zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: "15:04:05"}
	}

	if opts.Folder == "" {
		log.Logger = zerolog.New(stdout).With().Timestamp().Logger()
		return nopCloser{}, nil
	}

	if err := os.MkdirAll(opts.Folder, 0o755); err != nil {
		return nil, fmt.Errorf("creating log folder: %w", err)
	}
	logFile := &lumberjack.Logger{
		Filename:   filepath.Join(opts.Folder, "main.log"),
		MaxSize:    10, // MB
		MaxBackups: 5,
		MaxAge:     30, // days
		Compress:   true,
	}
	log.Logger = zerolog.New(zerolog.MultiLevelWriter(logFile, stdout)).With().Timestamp().Logger()
	return logFile, nil
}
