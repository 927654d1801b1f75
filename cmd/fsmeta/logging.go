package main

import (
	"io"

	"github.com/sirupsen/logrus"
)

// NewLogger creates the logger used by the command line front end.
func NewLogger(w io.Writer, cfg *Config) (*logrus.Logger, error) {
	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, err
	}

	logger := logrus.New()
	logger.SetOutput(w)
	logger.SetLevel(level)

	if cfg.LogFormat == "json" {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{
			DisableColors:    true,
			FullTimestamp:    true,
			DisableTimestamp: false,
		})
	}
	return logger, nil
}
