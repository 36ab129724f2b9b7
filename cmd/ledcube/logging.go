package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/lixenwraith/ledcube/config"
)

// setupLogging returns a no-op logger unless debug is enabled
// With debug, JSON lines go to Dir/File; a file over MaxSizeMB is renamed aside first
// The returned file is nil when logging is disabled
func setupLogging(cfg config.LoggingConfig) (*zap.Logger, *os.File, error) {
	if !cfg.Debug {
		return zap.NewNop(), nil, nil
	}

	if err := os.MkdirAll(cfg.Dir, 0755); err != nil {
		return nil, nil, fmt.Errorf("create log dir: %w", err)
	}

	path := filepath.Join(cfg.Dir, cfg.File)
	if info, err := os.Stat(path); err == nil && info.Size() > int64(cfg.MaxSizeMB)<<20 {
		ext := filepath.Ext(path)
		rotated := strings.TrimSuffix(path, ext) + "-" + time.Now().Format("20060102-150405") + ext
		if err := os.Rename(path, rotated); err != nil {
			return nil, nil, fmt.Errorf("rotate log: %w", err)
		}
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log: %w", err)
	}

	encCfg := zap.NewProductionEncoderConfig()
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	core := zapcore.NewCore(zapcore.NewJSONEncoder(encCfg), zapcore.AddSync(f), zapcore.DebugLevel)

	logger := zap.New(core, zap.AddCaller()).With(zap.String("session", uuid.NewString()))
	return logger, f, nil
}
