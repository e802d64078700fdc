// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package main

import (
	"log/slog"
	"os"
)

var logger = slog.Default()

// initLogger installs a text logger writing to stderr at level. Unknown
// levels fall back to INFO.
func initLogger(level string) *slog.Logger {
	var lv slog.Level
	if level == "" || lv.UnmarshalText([]byte(level)) != nil {
		lv = slog.LevelInfo
	}
	logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: lv,
	}))
	return logger
}

func getLogger(category string) *slog.Logger {
	return logger.With(slog.String("category", category))
}
