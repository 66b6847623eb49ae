// internal/logging/logging_test.go
package logging

import (
	"bytes"
	"log"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDebugDisabled(t *testing.T) {
	DebugEnabled = false
	var buf bytes.Buffer
	log.SetOutput(&buf)
	defer log.SetOutput(os.Stderr)

	Debug("this should not appear")

	if buf.Len() > 0 {
		t.Errorf("Debug output when disabled: %s", buf.String())
	}
}

func TestDebugEnabled(t *testing.T) {
	DebugEnabled = true
	var buf bytes.Buffer
	log.SetOutput(&buf)
	defer log.SetOutput(os.Stderr)

	Debug("cycled %s to %d", "FPS", 120)

	if !bytes.Contains(buf.Bytes(), []byte("DEBUG: cycled FPS to 120")) {
		t.Errorf("Expected debug output, got: %s", buf.String())
	}
	DebugEnabled = false
}

func TestEnableWritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "debug.log")
	f, err := Enable(path)
	if err != nil {
		t.Fatalf("Enable: %v", err)
	}
	defer func() {
		log.SetOutput(os.Stderr)
		log.SetPrefix("")
		DebugEnabled = false
	}()

	Debug("saved %d bytes", 42)
	f.Close()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading log: %v", err)
	}
	if !strings.Contains(string(data), "DEBUG: saved 42 bytes") {
		t.Errorf("expected debug line in log file, got: %q", data)
	}
}

func TestDisable(t *testing.T) {
	DebugEnabled = true
	Disable()
	defer log.SetOutput(os.Stderr)

	if DebugEnabled {
		t.Error("expected DebugEnabled to be false after Disable")
	}
}

func TestEnvEnabled(t *testing.T) {
	tests := []struct {
		val  string
		want bool
	}{
		{"", false},
		{"0", false},
		{"1", true},
		{"yes", true},
	}
	for _, tt := range tests {
		t.Setenv("DEBUG", tt.val)
		if got := EnvEnabled(); got != tt.want {
			t.Errorf("DEBUG=%q: expected %v, got %v", tt.val, tt.want, got)
		}
	}
}
