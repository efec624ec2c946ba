package logger

import (
	"context"
	"testing"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name  string
		level string
	}{
		{"debug level", "debug"},
		{"info level", "info"},
		{"warn level", "warn"},
		{"error level", "error"},
		{"unknown level", "verbose"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			log := New(tt.level)
			if log == nil {
				t.Error("New() returned nil")
			}
		})
	}
}

func TestLoggerLevels(t *testing.T) {
	ctx := context.Background()
	log := New("info")

	// These should not panic
	log.Debug(ctx, "debug message")
	log.Info(ctx, "info message")
	log.Warn(ctx, "warn message")
	log.Error(ctx, "error message")

	// Test with formatting
	log.Info(ctx, "formatted message: %s %d", "test", 123)
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  level
	}{
		{"debug", "debug", levelDebug},
		{"info", "info", levelInfo},
		{"warn", "warn", levelWarn},
		{"error", "error", levelError},
		{"mixed case", "DEBUG", levelDebug},
		{"padded", "  warn  ", levelWarn},
		{"unknown defaults to info", "trace", levelInfo},
		{"empty defaults to info", "", levelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := parseLevel(tt.input); got != tt.want {
				t.Errorf("parseLevel(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestLevelFiltering(t *testing.T) {
	tests := []struct {
		name        string
		configLevel string
		logLevel    level
		shouldLog   bool
	}{
		{"debug logs at debug level", "debug", levelDebug, true},
		{"info logs at debug level", "debug", levelInfo, true},
		{"debug doesn't log at info level", "info", levelDebug, false},
		{"info logs at info level", "info", levelInfo, true},
		{"error always logs", "debug", levelError, true},
		{"warn doesn't log at error level", "error", levelWarn, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			log := New(tt.configLevel).(*implLogger)
			got := tt.logLevel >= log.level
			if got != tt.shouldLog {
				t.Errorf("level %v at config %q: logged = %v, want %v", tt.logLevel, tt.configLevel, got, tt.shouldLog)
			}
		})
	}
}
