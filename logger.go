package main

import (
	"fmt"
	"os"
	"path/filepath"

	"colorpicker/logger"
)

// setupLogging starts the process logger. Relative log files land under
// <baseDir>/logs.
func setupLogging(s LoggingSettings) error {
	path := s.File
	if path != "" && !filepath.IsAbs(path) {
		dir := filepath.Join(baseDir, "logs")
		if err := os.MkdirAll(dir, 0755); err != nil {
			fmt.Printf("could not create log directory: %v\n", err)
			path = ""
		} else {
			path = filepath.Join(dir, path)
		}
	}
	return logger.Init(s.Level, path)
}

func logError(format string, v ...interface{}) {
	logger.Sugar.Errorf(format, v...)
}

func logDebug(format string, v ...interface{}) {
	logger.Sugar.Debugf(format, v...)
}
