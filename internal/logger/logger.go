package logger

import (
	"context"
	"log/slog"
	"os"
)

var base *slog.Logger

func Init() {
	base = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(base)
}

func logAt(level slog.Level, msg string, fields map[string]any) {
	if base == nil {
		Init()
	}
	attrs := make([]any, 0, len(fields)*2)
	for k, v := range fields {
		attrs = append(attrs, k, v)
	}
	base.Log(context.Background(), level, msg, attrs...)
}

func Info(msg string, fields map[string]any) {
	logAt(slog.LevelInfo, msg, fields)
}

func Warn(msg string, fields map[string]any) {
	logAt(slog.LevelWarn, msg, fields)
}

func Error(msg string, fields map[string]any) {
	logAt(slog.LevelError, msg, fields)
}

func Fatal(msg string, fields map[string]any) {
	logAt(slog.LevelError, msg, fields)
	os.Exit(1)
}
