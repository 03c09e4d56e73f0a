// Package logging builds the zap logger shared by the CLI and the server.
package logging

import (
	"io"
	"os"
	"strings"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	levelColors = map[zapcore.Level]string{
		zapcore.DebugLevel: "\033[36m",
		zapcore.InfoLevel:  "\033[32m",
		zapcore.WarnLevel:  "\033[33m",
		zapcore.ErrorLevel: "\033[31m",
		zapcore.FatalLevel: "\033[35m",
	}
	shortLevels = map[zapcore.Level]string{
		zapcore.DebugLevel: "DBG",
		zapcore.InfoLevel:  "INF",
		zapcore.WarnLevel:  "WRN",
		zapcore.ErrorLevel: "ERR",
		zapcore.FatalLevel: "FAT",
	}
	resetColor = "\033[0m"
)

// ParseLevel maps debug, info, warn and error to zap levels. Anything
// else is info.
func ParseLevel(level string) zapcore.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return zapcore.DebugLevel
	case "warn", "warning":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

// New returns a logger writing to stderr. format is "json" or "console".
func New(level, format string) *zap.Logger {
	return NewWithWriter(os.Stderr, level, format)
}

// NewWithWriter is New with an explicit destination.
func NewWithWriter(w io.Writer, level, format string) *zap.Logger {
	var encoder zapcore.Encoder
	if format == "json" {
		cfg := encoderConfig()
		cfg.EncodeLevel = zapcore.LowercaseLevelEncoder
		cfg.EncodeTime = zapcore.ISO8601TimeEncoder
		encoder = zapcore.NewJSONEncoder(cfg)
	} else {
		encoder = zapcore.NewConsoleEncoder(encoderConfig())
	}

	core := zapcore.NewCore(encoder, zapcore.AddSync(w), ParseLevel(level))
	return zap.New(core)
}

func encoderConfig() zapcore.EncoderConfig {
	return zapcore.EncoderConfig{
		TimeKey:        "time",
		LevelKey:       "level",
		MessageKey:     "msg",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    colorLevelEncoder,
		EncodeTime:     timeEncoder,
		EncodeDuration: zapcore.StringDurationEncoder,
	}
}

func timeEncoder(t time.Time, enc zapcore.PrimitiveArrayEncoder) {
	enc.AppendString(t.Format("15:04:05.000"))
}

func colorLevelEncoder(l zapcore.Level, enc zapcore.PrimitiveArrayEncoder) {
	short, ok := shortLevels[l]
	if !ok {
		short = strings.ToUpper(l.String())
	}
	enc.AppendString(levelColors[l] + short + resetColor)
}
