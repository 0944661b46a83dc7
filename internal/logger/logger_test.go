package logger

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

func TestInit(t *testing.T) {
	configDir := filepath.Join(t.TempDir(), "config")

	err := Init(Config{
		Debug:     false,
		ConfigDir: configDir,
	})
	if err != nil {
		t.Fatalf("Failed to initialize logger: %v", err)
	}

	// Verify log directory was created
	logDir := filepath.Join(configDir, "logs")
	if _, err := os.Stat(logDir); os.IsNotExist(err) {
		t.Errorf("Log directory was not created: %s", logDir)
	}

	if Logger == nil {
		t.Error("Logger is nil after initialization")
	}

	Debug("Test debug message")
	Info("Test info message")
	Warn("Test warning message")
	Error("Test error message")
}

func TestInitDebugMode(t *testing.T) {
	err := Init(Config{
		Debug:     true,
		ConfigDir: filepath.Join(t.TempDir(), "config"),
	})
	if err != nil {
		t.Fatalf("Failed to initialize logger in debug mode: %v", err)
	}
	if Logger.GetLevel() != log.DebugLevel {
		t.Errorf("level = %v, want debug", Logger.GetLevel())
	}
}

func TestSetOutputFiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf, log.WarnLevel)

	Info("hidden message")
	Warn("visible message", "session", "s-1")

	out := buf.String()
	if strings.Contains(out, "hidden message") {
		t.Errorf("info message logged at warn level: %q", out)
	}
	if !strings.Contains(out, "visible message") || !strings.Contains(out, "s-1") {
		t.Errorf("warn message missing: %q", out)
	}
}

func TestNilLoggerIsSafe(t *testing.T) {
	saved := Logger
	Logger = nil
	defer func() { Logger = saved }()

	Debug("no-op")
	Info("no-op")
	Warn("no-op")
	Error("no-op")
}
