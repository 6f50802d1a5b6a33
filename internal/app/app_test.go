package app

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/jmassara/pkmforge/internal/config"
	"github.com/jmassara/pkmforge/internal/logging"
	"github.com/jmassara/pkmforge/internal/pkm"
	"github.com/jmassara/pkmforge/internal/server"
	"github.com/jmassara/pkmforge/internal/ui"
)

func createTestFile(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "record.bin")
	err := RunCreate(CreateOptions{
		OutputPath: path,
		Values:     ui.NewFormValues(config.TrainerDefaults{}),
		Log:        LogOptions{},
	})
	if err != nil {
		t.Fatalf("RunCreate: %v", err)
	}
	return path
}

func TestRunCreateWritesValidRecord(t *testing.T) {
	path := createTestFile(t)

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if len(data) != pkm.RecordLen {
		t.Fatalf("file is %d bytes, want %d", len(data), pkm.RecordLen)
	}

	record, err := pkm.Decode(data)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if record.Species != 25 || record.Nickname != "Pikachu" {
		t.Errorf("unexpected record: species %d nickname %q", record.Species, record.Nickname)
	}
}

func TestRunRead(t *testing.T) {
	path := createTestFile(t)

	if err := RunRead(ReadOptions{File: path, Hex: true}); err != nil {
		t.Fatalf("RunRead: %v", err)
	}
}

func TestRunReadCorruptRecord(t *testing.T) {
	path := createTestFile(t)

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	data[0x10] ^= 0xFF
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write corrupt file: %v", err)
	}

	if err := RunRead(ReadOptions{File: path}); err == nil {
		t.Error("strict read accepted corrupt record")
	}
	if err := RunRead(ReadOptions{File: path, Lenient: true}); err != nil {
		t.Errorf("lenient read rejected corrupt record: %v", err)
	}
}

func startEmulator(t *testing.T) *server.Server {
	t.Helper()
	logger, err := logging.NewLogger(logging.LogLevelSilent, "")
	if err != nil {
		t.Fatalf("create logger: %v", err)
	}
	cfg := server.DefaultConfig()
	cfg.Port = 0
	srv := server.NewServer(cfg, logger)
	if err := srv.Start(); err != nil {
		t.Fatalf("start server: %v", err)
	}
	t.Cleanup(func() { _ = srv.Stop() })
	return srv
}

func TestRunInjectEndToEnd(t *testing.T) {
	path := createTestFile(t)
	srv := startEmulator(t)
	pcapPath := filepath.Join(t.TempDir(), "exchange.pcap")

	err := RunInject(InjectOptions{
		File:     path,
		Host:     "127.0.0.1",
		Port:     srv.Addr().Port,
		Address:  "0x04000010",
		PCAPFile: pcapPath,
	})
	if err != nil {
		t.Fatalf("RunInject: %v", err)
	}

	if srv.WriteCount() != 1 {
		t.Errorf("server accepted %d writes, want 1", srv.WriteCount())
	}
	if _, err := os.Stat(pcapPath); err != nil {
		t.Errorf("capture file not written: %v", err)
	}
}

func TestRunInjectRejectedAddress(t *testing.T) {
	path := createTestFile(t)
	srv := startEmulator(t)

	err := RunInject(InjectOptions{
		File:    path,
		Host:    "127.0.0.1",
		Port:    srv.Addr().Port,
		Address: "0x10", // outside the emulator's memory window
	})
	if err == nil {
		t.Fatal("expected rejection")
	}
	if srv.WriteCount() != 0 {
		t.Errorf("server accepted %d writes, want 0", srv.WriteCount())
	}
}

func TestRunInjectWrongSizeFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "short.bin")
	if err := os.WriteFile(path, []byte("too short"), 0o644); err != nil {
		t.Fatalf("write file: %v", err)
	}
	srv := startEmulator(t)

	err := RunInject(InjectOptions{
		File:    path,
		Host:    "127.0.0.1",
		Port:    srv.Addr().Port,
		Address: "0x04000010",
	})
	if err == nil {
		t.Fatal("expected error for wrong-size file")
	}
}

func TestCodebookComplete(t *testing.T) {
	book := codebook()
	for name, table := range map[string]pkm.CodeTable{
		"species":   book.Species,
		"items":     book.Items,
		"moves":     book.Moves,
		"abilities": book.Abilities,
		"natures":   book.Natures,
		"balls":     book.Balls,
	} {
		if table == nil {
			t.Errorf("codebook %s table is nil", name)
		}
	}
}

func TestLoadConfigDefaultWhenUnset(t *testing.T) {
	cfg, err := loadConfig("")
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	if cfg.Device.Port != 6000 {
		t.Errorf("default device port = %d, want 6000", cfg.Device.Port)
	}
	if _, err := loadConfig(fmt.Sprintf("%s/missing.yaml", t.TempDir())); err == nil {
		t.Error("expected error for missing config file")
	}
}
