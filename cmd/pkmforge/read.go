package main

import (
	"github.com/spf13/cobra"

	"github.com/jmassara/pkmforge/internal/app"
)

type readFlags struct {
	file    string
	lenient bool
	hex     bool
	copy    bool
	log     logFlags
}

func newReadCmd() *cobra.Command {
	flags := &readFlags{}

	cmd := &cobra.Command{
		Use:   "read",
		Short: "Decode and display a record file",
		Long: `Decode a 344-byte record file and print its fields with codes resolved
to names.

By default the stored checksum must match the recomputed one; --lenient
decodes mismatched files anyway and prints both values, which is the way
to inspect a corrupt or hand-edited record.`,
		Example: `  # Inspect a record
  pkmforge read --file pikachu.bin

  # Inspect a corrupt record with a hex dump
  pkmforge read --file damaged.bin --lenient --hex

  # Copy the raw bytes to the clipboard
  pkmforge read --file pikachu.bin --copy`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if handleHelpArg(cmd, args) {
				return nil
			}
			if flags.file == "" {
				return missingFlagError(cmd, "--file")
			}
			return app.RunRead(app.ReadOptions{
				File:    flags.file,
				Lenient: flags.lenient,
				Hex:     flags.hex,
				Copy:    flags.copy,
				Log:     flags.log.options(),
			})
		},
	}

	cmd.Flags().StringVarP(&flags.file, "file", "f", "", "Record file to decode")
	cmd.Flags().BoolVar(&flags.lenient, "lenient", false, "Decode even when the checksum does not match")
	cmd.Flags().BoolVar(&flags.hex, "hex", false, "Print an annotated hex dump")
	cmd.Flags().BoolVar(&flags.copy, "copy", false, "Copy the record hex to the clipboard")
	registerLogFlags(cmd, &flags.log)

	return cmd
}
