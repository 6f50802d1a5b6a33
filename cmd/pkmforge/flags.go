package main

import (
	"github.com/spf13/cobra"

	"github.com/jmassara/pkmforge/internal/app"
)

type logFlags struct {
	verbose bool
	debug   bool
	logFile string
}

func registerLogFlags(cmd *cobra.Command, flags *logFlags) {
	cmd.Flags().BoolVarP(&flags.verbose, "verbose", "v", false, "Verbose output")
	cmd.Flags().BoolVar(&flags.debug, "debug", false, "Debug output including hex dumps")
	cmd.Flags().StringVar(&flags.logFile, "log-file", "", "Append log output to file")
}

func (f *logFlags) options() app.LogOptions {
	return app.LogOptions{
		Verbose: f.verbose,
		Debug:   f.debug,
		LogFile: f.logFile,
	}
}
