// SPDX-License-Identifier: MIT

// Package logging builds the zap loggers used by the gldemo binaries.
package logging

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Encodings accepted by New.
const (
	EncodingJSON    = "json"
	EncodingConsole = "console"
)

// New returns a logger writing to stderr at the named level ("debug",
// "info", "warn", "error"). encoding is EncodingJSON or EncodingConsole.
func New(level, encoding string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("logging: %w", err)
	}
	switch encoding {
	case EncodingJSON, EncodingConsole:
	default:
		return nil, fmt.Errorf("logging: unknown encoding %q", encoding)
	}

	encCfg := zap.NewProductionEncoderConfig()
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	if encoding == EncodingConsole {
		encCfg.EncodeLevel = zapcore.CapitalLevelEncoder
	}

	config := zap.Config{
		Level:       zap.NewAtomicLevelAt(lvl),
		Development: false,
		Sampling: &zap.SamplingConfig{
			Initial:    100,
			Thereafter: 100,
		},
		Encoding:         encoding,
		EncoderConfig:    encCfg,
		OutputPaths:      []string{"stderr"},
		ErrorOutputPaths: []string{"stderr"},
		DisableCaller:    true,
	}

	return config.Build()
}

// OrNop returns l, or a no-op logger when l is nil.
func OrNop(l *zap.Logger) *zap.Logger {
	if l == nil {
		return zap.NewNop()
	}

	return l
}
