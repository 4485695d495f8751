package main

import (
	"io"
	"log/slog"
	"os"

	"gopkg.in/natefinch/lumberjack.v2"
)

// newLogger writes to stdout, and also to a rotating file when file is set.
// The returned func closes the file.
func newLogger(format, file string) (*slog.Logger, func() error) {
	var (
		out     io.Writer = os.Stdout
		closeFn           = func() error { return nil }
	)

	if file != "" {
		rotating := &lumberjack.Logger{
			Filename:  file,
			MaxSize:   50, // megabytes
			LocalTime: false,
			Compress:  true,
		}
		out = io.MultiWriter(os.Stdout, rotating)
		closeFn = rotating.Close
	}

	var handler slog.Handler
	switch format {
	case "json":
		handler = slog.NewJSONHandler(out, nil)
	default:
		handler = slog.NewTextHandler(out, nil)
	}

	return slog.New(handler), closeFn
}
