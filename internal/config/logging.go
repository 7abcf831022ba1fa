package config

import (
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
	"github.com/snowzach/rotatefilehook"
)

func (c *Config) LogLevel() logrus.Level {
	if c.Development {
		return logrus.DebugLevel
	}
	level, err := logrus.ParseLevel(c.Log.Level)
	if err != nil {
		return logrus.InfoLevel
	}
	return level
}

// NewLogger builds the application logger. The terminal is used by the game,
// so entries only go to the rotating log file; without a log path they are
// dropped.
func NewLogger(c *Config) (*logrus.Logger, error) {
	log := logrus.New()
	log.SetOutput(io.Discard)
	log.SetLevel(c.LogLevel())
	log.SetFormatter(&logrus.TextFormatter{DisableColors: true, FullTimestamp: true})

	if c.Log.Path == "" {
		return log, nil
	}

	hook, err := rotatefilehook.NewRotateFileHook(rotatefilehook.RotateFileConfig{
		Filename:   c.Log.Path,
		MaxSize:    c.Log.MaxSize,
		MaxBackups: c.Log.MaxBackups,
		MaxAge:     c.Log.MaxAge,
		Level:      c.LogLevel(),
		Formatter:  &logrus.TextFormatter{DisableColors: true, FullTimestamp: true},
	})
	if err != nil {
		return nil, fmt.Errorf("unable to open log file %s: %w", c.Log.Path, err)
	}
	log.AddHook(hook)

	return log, nil
}
