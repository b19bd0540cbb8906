// ABOUTME: Logger factory selecting the logrus or zap backend from configuration
// ABOUTME: Routes output through a lumberjack rotating file when a log file is configured

package logger

import (
	"io"
	"os"

	"visual-summarizer-api/core/interfaces"
	logruslogger "visual-summarizer-api/infrastructure/logger/logrus"
	zaplogger "visual-summarizer-api/infrastructure/logger/zap"
	"visual-summarizer-api/pkg/config"

	"gopkg.in/natefinch/lumberjack.v2"
)

// New builds the configured logger. The returned closer flushes and closes the log file.
func New(cfg config.LogConfig) (interfaces.Logger, func() error) {
	var out io.Writer = os.Stdout
	var rotator *lumberjack.Logger
	if cfg.File != "" {
		rotator = &lumberjack.Logger{
			Filename:   cfg.File,
			MaxSize:    100, // megabytes
			MaxBackups: 3,
			MaxAge:     28, // days
			Compress:   true,
		}
		out = rotator
	}

	closeFile := func() error {
		if rotator != nil {
			return rotator.Close()
		}
		return nil
	}

	if cfg.Backend == "zap" {
		l := zaplogger.New(zaplogger.Options{Level: cfg.Level, Format: cfg.Format, Output: out})
		return l, func() error {
			_ = l.Sync()
			return closeFile()
		}
	}

	l := logruslogger.New(logruslogger.Options{Level: cfg.Level, Format: cfg.Format, Output: out})
	return l, closeFile
}
