package app

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/jmassara/pkmforge/internal/config"
	"github.com/jmassara/pkmforge/internal/server"
)

type ServeOptions struct {
	ConfigPath string
	ListenIP   string
	Port       int
	MemoryBase string
	MemorySize string
	Lenient    bool
	Log        LogOptions
}

// RunServe starts the device emulator and blocks until interrupted.
func RunServe(opts ServeOptions) error {
	logger, err := newLogger(opts.Log)
	if err != nil {
		return fmt.Errorf("create logger: %w", err)
	}
	defer logger.Close()

	cfg, err := loadConfig(opts.ConfigPath)
	if err != nil {
		return err
	}
	if opts.ListenIP != "" {
		cfg.Emulator.ListenIP = opts.ListenIP
	}
	if opts.Port != 0 {
		cfg.Emulator.Port = opts.Port
	}
	if opts.MemoryBase != "" {
		cfg.Emulator.MemoryBase = opts.MemoryBase
	}
	if opts.MemorySize != "" {
		cfg.Emulator.MemorySize = opts.MemorySize
	}

	srvCfg := server.DefaultConfig()
	srvCfg.ListenIP = cfg.Emulator.ListenIP
	srvCfg.Port = cfg.Emulator.Port
	if srvCfg.MemoryBase, err = config.ParseAddress(cfg.Emulator.MemoryBase); err != nil {
		return fmt.Errorf("parse memory base: %w", err)
	}
	if srvCfg.MemorySize, err = config.ParseAddress(cfg.Emulator.MemorySize); err != nil {
		return fmt.Errorf("parse memory size: %w", err)
	}
	if cfg.Emulator.VerifyChecksums != nil {
		srvCfg.VerifyChecksums = *cfg.Emulator.VerifyChecksums
	}
	if opts.Lenient {
		srvCfg.VerifyChecksums = false
	}

	srv := server.NewServer(srvCfg, logger)
	if err := srv.Start(); err != nil {
		return fmt.Errorf("start server: %w", err)
	}

	fmt.Fprintf(os.Stdout, "Emulator listening on %s\n", srv.Addr())
	fmt.Fprintf(os.Stdout, "  Memory window: 0x%X + 0x%X\n", srvCfg.MemoryBase, srvCfg.MemorySize)
	fmt.Fprintf(os.Stdout, "  Checksum verification: %v\n", srvCfg.VerifyChecksums)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	<-sigChan

	fmt.Fprintf(os.Stdout, "\nShutting down emulator...\n")
	if err := srv.Stop(); err != nil {
		return fmt.Errorf("stop server: %w", err)
	}
	fmt.Fprintf(os.Stdout, "Writes accepted: %d\n", srv.WriteCount())
	return nil
}
