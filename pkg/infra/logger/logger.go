package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

type Options struct {
	// Level is a logrus level name. LOG_LEVEL in the environment wins.
	Level string
	// File receives JSON log lines. Empty disables file logging.
	File string
	// Console receives a copy of every entry. Nil disables it.
	Console io.Writer
}

// NewLogger builds the JSON logger shared by the server and the CLI. The
// returned close function flushes the file writer.
func NewLogger(opts Options) (*logrus.Logger, func(), error) {
	logger := logrus.New()

	logger.SetFormatter(&logrus.JSONFormatter{
		TimestampFormat: time.RFC3339,
		FieldMap: logrus.FieldMap{
			logrus.FieldKeyTime: "time",
			logrus.FieldKeyMsg:  "msg",
		},
	})
	logger.SetLevel(parseLevel(opts.Level))
	logger.SetOutput(io.Discard)

	closeFn := func() {}
	if opts.File != "" {
		logFile := filepath.Clean(opts.File)
		if strings.HasPrefix(logFile, "..") {
			return nil, nil, fmt.Errorf("invalid log file path %q: must not leave the working directory", opts.File)
		}
		if err := os.MkdirAll(filepath.Dir(logFile), 0750); err != nil {
			return nil, nil, fmt.Errorf("failed to create logs directory: %w", err)
		}
		asyncWriter, err := NewAsyncFileWriter(logFile, 32*1024)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to initialize async log writer: %w", err)
		}
		logger.SetOutput(asyncWriter)
		closeFn = asyncWriter.Close
	}

	if opts.Console != nil {
		logger.AddHook(NewConsoleHook(opts.Console))
	}

	return logger, closeFn, nil
}

func parseLevel(level string) logrus.Level {
	if env := os.Getenv("LOG_LEVEL"); env != "" {
		level = env
	}
	parsed, err := logrus.ParseLevel(strings.TrimSpace(level))
	if err != nil {
		return logrus.InfoLevel
	}
	return parsed
}
