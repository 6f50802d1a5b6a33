package main

import (
	"github.com/spf13/cobra"

	"github.com/jmassara/pkmforge/internal/app"
)

type serveFlags struct {
	configPath string
	listenIP   string
	port       int
	memoryBase string
	memorySize string
	lenient    bool
	log        logFlags
}

func newServeCmd() *cobra.Command {
	flags := &serveFlags{}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the device emulator",
		Long: `Run a TCP emulator that accepts write-record commands the way the real
device does: it checks the command tag, the declared length, the target
address against its memory window, and the record checksum, then
acknowledges with a status word.

The emulator keeps accepted records in memory per address. It exists to
exercise the inject path without hardware; point "pkmforge inject" at it.

Press Ctrl+C to stop.`,
		Example: `  # Listen with the built-in defaults (127.0.0.1:6000)
  pkmforge serve

  # Accept records with bad checksums
  pkmforge serve --lenient

  # Serve a different memory window
  pkmforge serve --memory-base 0x08000000 --memory-size 0x01000000`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if handleHelpArg(cmd, args) {
				return nil
			}
			return app.RunServe(app.ServeOptions{
				ConfigPath: flags.configPath,
				ListenIP:   flags.listenIP,
				Port:       flags.port,
				MemoryBase: flags.memoryBase,
				MemorySize: flags.memorySize,
				Lenient:    flags.lenient,
				Log:        flags.log.options(),
			})
		},
	}

	cmd.Flags().StringVar(&flags.configPath, "config", "", "Configuration file (YAML)")
	cmd.Flags().StringVar(&flags.listenIP, "listen-ip", "", "Listen address (overrides config)")
	cmd.Flags().IntVar(&flags.port, "port", 0, "Listen TCP port (overrides config)")
	cmd.Flags().StringVar(&flags.memoryBase, "memory-base", "", "Writable window base address (overrides config)")
	cmd.Flags().StringVar(&flags.memorySize, "memory-size", "", "Writable window size (overrides config)")
	cmd.Flags().BoolVar(&flags.lenient, "lenient", false, "Accept records whose checksum does not match")
	registerLogFlags(cmd, &flags.log)

	return cmd
}
