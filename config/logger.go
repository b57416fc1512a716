package config

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

// NewLogger builds the application logger. When file is set, output goes to
// stdout and a rotated log file; the returned closer releases the file.
func NewLogger(level, file string) (*logrus.Logger, io.Closer) {
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	logger.SetLevel(lvl)

	if file == "" {
		logger.SetOutput(os.Stdout)
		return logger, nopCloser{}
	}

	rotated := &lumberjack.Logger{
		Filename:   file,
		MaxSize:    10,
		MaxBackups: 5,
		MaxAge:     28,
		LocalTime:  true,
	}
	logger.SetOutput(io.MultiWriter(os.Stdout, rotated))
	return logger, rotated
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
