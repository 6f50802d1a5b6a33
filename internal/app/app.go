// Package app implements the command workflows behind the pkmforge CLI.
package app

import (
	"github.com/jmassara/pkmforge/internal/config"
	"github.com/jmassara/pkmforge/internal/gamedata"
	"github.com/jmassara/pkmforge/internal/logging"
	"github.com/jmassara/pkmforge/internal/pkm"
)

// LogOptions are the logging flags shared by every command.
type LogOptions struct {
	Verbose bool
	Debug   bool
	LogFile string
}

func newLogger(opts LogOptions) (*logging.Logger, error) {
	return logging.NewLogger(logging.LevelFromFlags(opts.Verbose, opts.Debug), opts.LogFile)
}

// loadConfig reads the configuration file when one was given and falls back
// to the built-in defaults otherwise.
func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		return config.DefaultConfig(), nil
	}
	return config.Load(path)
}

// codebook returns the field tables Encode validates against.
func codebook() pkm.Codebook {
	return pkm.Codebook{
		Species:   gamedata.Species,
		Items:     gamedata.Items,
		Moves:     gamedata.Moves,
		Abilities: gamedata.Abilities,
		Natures:   gamedata.Natures,
		Balls:     gamedata.BallItems,
	}
}
