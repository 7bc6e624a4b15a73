// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package model

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// LogConfig configures the logging of a grid viewing application.
// Since the terminal belongs to the ui there is only a file sink which
// is rotated by size.  Without a filename nothing is logged.
type LogConfig struct {
	Level      string `toml:"level"`
	Format     string `toml:"format"`
	Filename   string `toml:"filename"`
	MaxSize    int    `toml:"max-size"`
	MaxDays    int    `toml:"max-days"`
	MaxBackups int    `toml:"max-backups"`
}

// NewLogger returns a logger according to given configuration.  An
// unknown level or format is an error wrapping [ErrConfig].
func NewLogger(cfg LogConfig) (*zap.Logger, error) {
	if cfg.Filename == "" {
		return zap.NewNop(), nil
	}
	lvl := zap.NewAtomicLevelAt(zap.InfoLevel)
	if cfg.Level != "" {
		if err := lvl.UnmarshalText([]byte(cfg.Level)); err != nil {
			return nil, fmt.Errorf("%wlog level: %v", ErrConfig, err)
		}
	}
	enc, err := encoder(cfg.Format)
	if err != nil {
		return nil, err
	}
	sink := zapcore.AddSync(&lumberjack.Logger{
		Filename:   cfg.Filename,
		MaxSize:    cfg.MaxSize,
		MaxAge:     cfg.MaxDays,
		MaxBackups: cfg.MaxBackups,
	})
	return zap.New(zapcore.NewCore(enc, sink, lvl), zap.AddCaller()), nil
}

func encoder(format string) (zapcore.Encoder, error) {
	ec := zap.NewProductionEncoderConfig()
	ec.EncodeTime = zapcore.ISO8601TimeEncoder
	switch format {
	case "", "console":
		return zapcore.NewConsoleEncoder(ec), nil
	case "json":
		return zapcore.NewJSONEncoder(ec), nil
	}
	return nil, fmt.Errorf("%wlog format: %s", ErrConfig, format)
}
