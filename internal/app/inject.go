package app

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/jmassara/pkmforge/internal/capture"
	"github.com/jmassara/pkmforge/internal/config"
	"github.com/jmassara/pkmforge/internal/errors"
	"github.com/jmassara/pkmforge/internal/inject"
	"github.com/jmassara/pkmforge/internal/pkm"
	"github.com/jmassara/pkmforge/internal/ui"
)

type InjectOptions struct {
	ConfigPath string
	File       string
	Host       string
	Port       int
	Address    string
	TimeoutMs  int
	Lenient    bool
	PCAPFile   string
	Log        LogOptions
}

// RunInject reads an encoded record file, validates it and writes it into
// the device's memory at the configured address. Flags override the
// configuration file; lenient mode skips the local checksum check and lets
// the device decide.
func RunInject(opts InjectOptions) error {
	logger, err := newLogger(opts.Log)
	if err != nil {
		return fmt.Errorf("create logger: %w", err)
	}
	defer logger.Close()

	cfg, err := loadConfig(opts.ConfigPath)
	if err != nil {
		return err
	}
	if opts.Host != "" {
		cfg.Device.Host = opts.Host
	}
	if opts.Port != 0 {
		cfg.Device.Port = opts.Port
	}
	if opts.Address != "" {
		cfg.Device.WriteAddress = opts.Address
	}
	if opts.TimeoutMs != 0 {
		cfg.Device.TimeoutMs = opts.TimeoutMs
	}

	address, err := config.ParseAddress(cfg.Device.WriteAddress)
	if err != nil {
		return fmt.Errorf("parse write address: %w", err)
	}

	data, err := os.ReadFile(opts.File)
	if err != nil {
		return fmt.Errorf("read record file: %w", err)
	}

	// Validate locally before touching the device.
	if opts.Lenient {
		if _, verified, err := pkm.DecodeLenient(data); err != nil {
			return errors.WrapRecordError(err, opts.File)
		} else if !verified {
			fmt.Fprintln(os.Stdout, ui.RenderWarning("checksum mismatch: injecting anyway"))
		}
	} else {
		if _, err := pkm.Decode(data); err != nil {
			return errors.WrapRecordError(err, opts.File)
		}
	}

	endpoint := cfg.Endpoint()
	timeout := time.Duration(cfg.Device.TimeoutMs) * time.Millisecond
	client := inject.NewClient(inject.Options{
		DialTimeout:     timeout,
		ResponseTimeout: timeout,
	})

	logger.Verbose("injecting %s (%d bytes) at 0x%X via %s", opts.File, len(data), address, endpoint)

	start := time.Now()
	ex, injectErr := client.Inject(context.Background(), endpoint, address, data)
	rtt := time.Since(start).Seconds() * 1000

	// Failed exchanges are captured too.
	if opts.PCAPFile != "" && ex != nil {
		if err := capture.WriteExchange(opts.PCAPFile, ex); err != nil {
			logger.Error("write capture: %v", err)
		} else {
			fmt.Fprintf(os.Stdout, "Exchange written to %s\n", opts.PCAPFile)
		}
	}

	if injectErr != nil {
		logger.Error("inject failed: %v", injectErr)
		return errors.WrapInjectionError(injectErr, endpoint)
	}

	logger.LogInjection(endpoint, address, len(data), inject.StatusOK)
	fmt.Fprintln(os.Stdout, ui.RenderSuccess(fmt.Sprintf(
		"Injected %d bytes at 0x%X to %s (RTT %.2fms)", len(data), address, endpoint, rtt)))
	return nil
}
