// Package logging builds the zap logger used by the command-line tool.
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Levels lists the accepted level names, most verbose first.
var Levels = []string{"DEBUG", "INFO", "WARNING", "ERROR", "CRITICAL"}

// ParseLevel maps a level name to a zap level. Matching is case-insensitive.
func ParseLevel(name string) (zapcore.Level, error) {
	switch strings.ToUpper(name) {
	case "DEBUG":
		return zapcore.DebugLevel, nil
	case "INFO":
		return zapcore.InfoLevel, nil
	case "WARNING":
		return zapcore.WarnLevel, nil
	case "ERROR":
		return zapcore.ErrorLevel, nil
	case "CRITICAL":
		return zapcore.DPanicLevel, nil
	}
	return zapcore.InfoLevel, fmt.Errorf("invalid log level: %q (must be one of %s)",
		name, strings.Join(Levels, ", "))
}

// New creates a console logger writing to stderr at the given level.
func New(level zapcore.Level) *zap.Logger {
	return NewWithWriter(os.Stderr, level)
}

// NewWithWriter creates a console logger writing to w.
// Records carry level, time, calling function and message.
func NewWithWriter(w io.Writer, level zapcore.Level) *zap.Logger {
	enc := zapcore.EncoderConfig{
		LevelKey:       "level",
		TimeKey:        "time",
		FunctionKey:    "func",
		MessageKey:     "msg",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.CapitalLevelEncoder,
		EncodeTime:     zapcore.ISO8601TimeEncoder,
		EncodeDuration: zapcore.StringDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
	}
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(enc), zapcore.AddSync(w), level)
	return zap.New(core, zap.AddCaller())
}
