package logging

import (
	"io"

	"gopkg.in/natefinch/lumberjack.v2"
)

// Rotation defaults for file sinks. Sized for a log that is kept for
// audit purposes rather than debugging: four weeks of history, capped
// before it can fill a small disk.
const (
	// rotateMaxSizeMB is the size a log file may reach before rotation.
	rotateMaxSizeMB = 100

	// rotateMaxBackups is the number of rotated files to retain.
	rotateMaxBackups = 3

	// rotateMaxAgeDays is the age in days after which rotated files are
	// deleted.
	rotateMaxAgeDays = 28
)

// NewRotatingFile returns a sink that writes to path with size-based
// rotation. Rotated files are compressed. The returned writer is safe
// for concurrent use and can be passed to WithSink.
func NewRotatingFile(path string) io.Writer {
	return &lumberjack.Logger{
		Filename:   path,
		MaxSize:    rotateMaxSizeMB,
		MaxBackups: rotateMaxBackups,
		MaxAge:     rotateMaxAgeDays,
		Compress:   true,
	}
}
