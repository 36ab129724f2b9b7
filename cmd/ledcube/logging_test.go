package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/lixenwraith/ledcube/config"
)

func testLogging(t *testing.T) config.LoggingConfig {
	cfg := config.DefaultConfig().Logging
	cfg.Dir = filepath.Join(t.TempDir(), "logs")
	return cfg
}

func TestSetupLogging_DisabledByDefault(t *testing.T) {
	cfg := testLogging(t)

	logger, logFile, err := setupLogging(cfg)
	if err != nil {
		t.Fatalf("setupLogging: %v", err)
	}
	if logFile != nil {
		t.Error("Expected nil log file when debug=false")
		logFile.Close()
	}
	if logger.Core().Enabled(0) {
		t.Error("Expected a no-op logger when debug=false")
	}

	if _, err := os.Stat(cfg.Dir); !os.IsNotExist(err) {
		t.Error("Expected no log directory when debug=false")
	}
}

func TestSetupLogging_EnabledWithDebug(t *testing.T) {
	cfg := testLogging(t)
	cfg.Debug = true

	logger, logFile, err := setupLogging(cfg)
	if err != nil {
		t.Fatalf("setupLogging: %v", err)
	}
	if logFile == nil {
		t.Fatal("Expected non-nil log file when debug=true")
	}
	defer logFile.Close()

	logger.Info("Test log message")
	if err := logger.Sync(); err != nil {
		t.Fatalf("Sync: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(cfg.Dir, cfg.File))
	if err != nil {
		t.Fatalf("Failed to read log file: %v", err)
	}
	line := string(data)
	if !strings.Contains(line, "Test log message") {
		t.Errorf("Expected message in log, got %q", line)
	}
	if !strings.Contains(line, `"session":`) {
		t.Errorf("Expected session field in log, got %q", line)
	}
}

func TestSetupLogging_Rotation(t *testing.T) {
	cfg := testLogging(t)
	cfg.Debug = true
	cfg.MaxSizeMB = 1

	if err := os.MkdirAll(cfg.Dir, 0755); err != nil {
		t.Fatalf("Failed to create logs directory: %v", err)
	}
	logPath := filepath.Join(cfg.Dir, cfg.File)

	// Just over the limit
	data := make([]byte, 1<<20+1)
	if err := os.WriteFile(logPath, data, 0644); err != nil {
		t.Fatalf("Failed to write log file: %v", err)
	}

	_, logFile, err := setupLogging(cfg)
	if err != nil {
		t.Fatalf("setupLogging: %v", err)
	}
	defer logFile.Close()

	entries, err := os.ReadDir(cfg.Dir)
	if err != nil {
		t.Fatalf("Failed to read logs directory: %v", err)
	}
	rotatedFound := false
	for _, entry := range entries {
		if entry.Name() != cfg.File && filepath.Ext(entry.Name()) == ".log" {
			rotatedFound = true
			break
		}
	}
	if !rotatedFound {
		t.Error("Expected to find rotated log file")
	}

	info, err := os.Stat(logPath)
	if err != nil {
		t.Fatalf("Failed to stat new log file: %v", err)
	}
	if info.Size() != 0 {
		t.Errorf("Expected a fresh log file, got %d bytes", info.Size())
	}
}

func TestSetupLogging_UnwritableDir(t *testing.T) {
	cfg := testLogging(t)
	cfg.Debug = true

	// A regular file where the directory should be
	if err := os.WriteFile(cfg.Dir, nil, 0644); err != nil {
		t.Fatal(err)
	}
	if _, _, err := setupLogging(cfg); err == nil {
		t.Error("Expected an error when the log dir cannot be created")
	}
}
