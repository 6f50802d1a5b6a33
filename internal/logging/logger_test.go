package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNewLogger(t *testing.T) {
	t.Run("no file", func(t *testing.T) {
		l, err := NewLogger(LogLevelInfo, "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		defer l.Close()
		if l.level != LogLevelInfo {
			t.Errorf("level = %d, want %d", l.level, LogLevelInfo)
		}
		if l.file != nil {
			t.Error("file should be nil when no path given")
		}
	})

	t.Run("with file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "test.log")
		l, err := NewLogger(LogLevelDebug, path)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		defer l.Close()
		if l.fileLog == nil {
			t.Error("fileLog should not be nil")
		}
	})

	t.Run("invalid path", func(t *testing.T) {
		_, err := NewLogger(LogLevelInfo, "/nonexistent/dir/test.log")
		if err == nil {
			t.Error("expected error for invalid path")
		}
	})
}

func TestLogFileContents(t *testing.T) {
	path := filepath.Join(t.TempDir(), "inject.log")
	l, err := NewLogger(LogLevelDebug, path)
	if err != nil {
		t.Fatalf("NewLogger: %v", err)
	}

	l.Info("startup %s", "ok")
	l.LogInjection("127.0.0.1:6000", 0x042DA8E8, 344, 0)
	l.LogHex("ack", []byte{0x00, 0x00, 0x00, 0x00})
	l.Close()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	out := string(data)
	for _, want := range []string{"startup ok", "0x42DA8E8", "344", "00 00 00 00"} {
		if !strings.Contains(out, want) {
			t.Errorf("log file missing %q:\n%s", want, out)
		}
	}
}

func TestLogFileAppends(t *testing.T) {
	path := filepath.Join(t.TempDir(), "runs.log")
	for _, msg := range []string{"first run", "second run"} {
		l, err := NewLogger(LogLevelInfo, path)
		if err != nil {
			t.Fatalf("NewLogger: %v", err)
		}
		l.Info("%s", msg)
		l.Close()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	out := string(data)
	if !strings.Contains(out, "first run") || !strings.Contains(out, "second run") {
		t.Errorf("reopening the log file must not truncate it:\n%s", out)
	}
}

func TestLevelFiltering(t *testing.T) {
	path := filepath.Join(t.TempDir(), "quiet.log")
	l, err := NewLogger(LogLevelError, path)
	if err != nil {
		t.Fatalf("NewLogger: %v", err)
	}
	l.Debug("hidden debug")
	l.Info("hidden info")
	l.Error("shown error")
	l.Close()

	data, _ := os.ReadFile(path)
	out := string(data)
	if strings.Contains(out, "hidden") {
		t.Errorf("suppressed levels reached the file:\n%s", out)
	}
	if !strings.Contains(out, "shown error") {
		t.Errorf("error level missing:\n%s", out)
	}
}

func TestLevelFromFlags(t *testing.T) {
	if got := LevelFromFlags(false, false); got != LogLevelInfo {
		t.Errorf("default level = %d", got)
	}
	if got := LevelFromFlags(true, false); got != LogLevelVerbose {
		t.Errorf("verbose level = %d", got)
	}
	if got := LevelFromFlags(true, true); got != LogLevelDebug {
		t.Errorf("debug level = %d", got)
	}
}
