package utils

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	// LogLevelEnvironmentVariable selects the minimum level written to stderr.
	LogLevelEnvironmentVariable = "FOLDERTREE_LOG_LEVEL"

	loggerEncoding          = "console"
	loggerOutputPath        = "stderr"
	loggerMessageKey        = "message"
	invalidLogLevelTemplate = "invalid log level %q: %w"
)

// NewApplicationLogger builds the console logger used for traversal warnings
// and progress. An empty levelName selects info.
func NewApplicationLogger(levelName string) (*zap.Logger, error) {
	level := zapcore.InfoLevel
	if trimmed := strings.TrimSpace(levelName); trimmed != "" {
		parsed, parseError := zapcore.ParseLevel(strings.ToLower(trimmed))
		if parseError != nil {
			return nil, fmt.Errorf(invalidLogLevelTemplate, levelName, parseError)
		}
		level = parsed
	}

	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.TimeKey = ""
	encoderConfig.NameKey = ""
	encoderConfig.CallerKey = ""
	encoderConfig.StacktraceKey = ""
	encoderConfig.MessageKey = loggerMessageKey
	encoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder

	config := zap.Config{
		Level:             zap.NewAtomicLevelAt(level),
		Encoding:          loggerEncoding,
		EncoderConfig:     encoderConfig,
		OutputPaths:       []string{loggerOutputPath},
		ErrorOutputPaths:  []string{loggerOutputPath},
		DisableCaller:     true,
		DisableStacktrace: true,
	}
	return config.Build()
}
