package logging

import (
	"io"

	"gopkg.in/natefinch/lumberjack.v2"
)

// RotatingFileOptions configures a size/age-bounded rotating log file,
// mirroring the fields the ambient stack's own file appender exposes.
type RotatingFileOptions struct {
	Filename   string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
	Compress   bool
}

// RotatingFileWriter returns an io.Writer that rotates the underlying file
// per opts, backed by lumberjack.
func RotatingFileWriter(opts RotatingFileOptions) io.Writer {
	return &lumberjack.Logger{
		Filename:   opts.Filename,
		MaxSize:    opts.MaxSizeMB,
		MaxBackups: opts.MaxBackups,
		MaxAge:     opts.MaxAgeDays,
		Compress:   opts.Compress,
	}
}
