package main

import (
	"github.com/spf13/cobra"

	"github.com/jmassara/pkmforge/internal/app"
)

type injectFlags struct {
	configPath string
	file       string
	host       string
	port       int
	address    string
	timeoutMs  int
	lenient    bool
	pcapFile   string
	log        logFlags
}

func newInjectCmd() *cobra.Command {
	flags := &injectFlags{}

	cmd := &cobra.Command{
		Use:   "inject",
		Short: "Write a record file into a device over TCP",
		Long: `Send a 344-byte record file to a device (or the pkmforge emulator) as a
write-record command. The record is validated locally before anything is
sent; --lenient skips the checksum check and lets the device decide.

Host, port, write address and timeout come from the configuration file
and can each be overridden with a flag. --pcap writes the exchange as
synthetic TCP frames for inspection in capture tooling; failed exchanges
are captured too.`,
		Example: `  # Inject using the configured device
  pkmforge inject --file pikachu.bin --config pkmforge.yaml

  # Inject to an explicit endpoint and address
  pkmforge inject --file pikachu.bin --host 192.168.1.73 --port 6000 --address 0x042DA8E8

  # Keep a capture of the exchange
  pkmforge inject --file pikachu.bin --pcap exchange.pcap`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if handleHelpArg(cmd, args) {
				return nil
			}
			if flags.file == "" {
				return missingFlagError(cmd, "--file")
			}
			return app.RunInject(app.InjectOptions{
				ConfigPath: flags.configPath,
				File:       flags.file,
				Host:       flags.host,
				Port:       flags.port,
				Address:    flags.address,
				TimeoutMs:  flags.timeoutMs,
				Lenient:    flags.lenient,
				PCAPFile:   flags.pcapFile,
				Log:        flags.log.options(),
			})
		},
	}

	cmd.Flags().StringVar(&flags.configPath, "config", "", "Configuration file (YAML)")
	cmd.Flags().StringVarP(&flags.file, "file", "f", "", "Record file to inject")
	cmd.Flags().StringVar(&flags.host, "host", "", "Device host (overrides config)")
	cmd.Flags().IntVar(&flags.port, "port", 0, "Device TCP port (overrides config)")
	cmd.Flags().StringVar(&flags.address, "address", "", "Write address, hex or decimal (overrides config)")
	cmd.Flags().IntVar(&flags.timeoutMs, "timeout", 0, "Dial/response timeout in milliseconds (overrides config)")
	cmd.Flags().BoolVar(&flags.lenient, "lenient", false, "Inject even when the checksum does not match")
	cmd.Flags().StringVar(&flags.pcapFile, "pcap", "", "Write the exchange to a pcap file")
	registerLogFlags(cmd, &flags.log)

	return cmd
}
