package main

import (
	"github.com/spf13/cobra"

	"github.com/jmassara/pkmforge/internal/app"
	"github.com/jmassara/pkmforge/internal/config"
	"github.com/jmassara/pkmforge/internal/ui"
)

type createFlags struct {
	configPath  string
	output      string
	interactive bool
	log         logFlags

	species     string
	nickname    string
	level       string
	exp         string
	nature      string
	ability     string
	heldItem    string
	ball        string
	gender      string
	form        string
	pid         string
	tid         string
	sid         string
	otName      string
	language    string
	metLevel    string
	metLocation string
	eggLocation string
	ivs         string
	evs         string
	moves       []string
}

func newCreateCmd() *cobra.Command {
	return newCreateCmdWithFlags(&createFlags{})
}

func newCreateCmdWithFlags(flags *createFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a record file",
		Long: `Create a 344-byte record file from field values.

Without --interactive, fields come from flags; anything not given keeps the
quick-start defaults (Pikachu, level 5, perfect IVs). With --interactive a
terminal form walks through every field, seeded with the same defaults and
the trainer block of the configuration file.

Species, items, abilities, moves and balls are numeric codes; run
"pkmforge create --interactive" to browse them by name.`,
		Example: `  # Quick-start record with defaults
  pkmforge create --output pikachu.bin

  # Walk through every field interactively
  pkmforge create --interactive --output record.bin

  # Override selected fields
  pkmforge create --output record.bin --species 6 --level 100 --nickname Charry`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if handleHelpArg(cmd, args) {
				return nil
			}
			if flags.output == "" {
				return missingFlagError(cmd, "--output")
			}
			return app.RunCreate(app.CreateOptions{
				ConfigPath:  flags.configPath,
				OutputPath:  flags.output,
				Interactive: flags.interactive,
				Values:      flags.values(cmd),
				Log:         flags.log.options(),
			})
		},
	}

	cmd.Flags().StringVar(&flags.configPath, "config", "", "Configuration file (YAML)")
	cmd.Flags().StringVarP(&flags.output, "output", "o", "", "Output record file")
	cmd.Flags().BoolVarP(&flags.interactive, "interactive", "i", false, "Edit fields in a terminal form")
	cmd.Flags().StringVar(&flags.species, "species", "", "Species code")
	cmd.Flags().StringVar(&flags.nickname, "nickname", "", "Nickname (up to 12 characters)")
	cmd.Flags().StringVar(&flags.level, "level", "", "Level")
	cmd.Flags().StringVar(&flags.exp, "exp", "", "Experience points")
	cmd.Flags().StringVar(&flags.nature, "nature", "", "Nature code")
	cmd.Flags().StringVar(&flags.ability, "ability", "", "Ability code (0 = none)")
	cmd.Flags().StringVar(&flags.heldItem, "item", "", "Held item code (0 = none)")
	cmd.Flags().StringVar(&flags.ball, "ball", "", "Ball item code")
	cmd.Flags().StringVar(&flags.gender, "gender", "", "Gender (0 male, 1 female, 2 genderless)")
	cmd.Flags().StringVar(&flags.form, "form", "", "Form number")
	cmd.Flags().StringVar(&flags.pid, "pid", "", "PID (hex or decimal)")
	cmd.Flags().StringVar(&flags.tid, "tid", "", "Trainer ID")
	cmd.Flags().StringVar(&flags.sid, "sid", "", "Secret ID")
	cmd.Flags().StringVar(&flags.otName, "ot", "", "Original trainer name")
	cmd.Flags().StringVar(&flags.language, "language", "", "Language code")
	cmd.Flags().StringVar(&flags.metLevel, "met-level", "", "Met level (0-127)")
	cmd.Flags().StringVar(&flags.metLocation, "met-location", "", "Met location code")
	cmd.Flags().StringVar(&flags.eggLocation, "egg-location", "", "Egg location code")
	cmd.Flags().StringVar(&flags.ivs, "ivs", "", "Six comma-separated IVs, 0-31")
	cmd.Flags().StringVar(&flags.evs, "evs", "", "Six comma-separated EVs, 0-255")
	cmd.Flags().StringSliceVar(&flags.moves, "moves", nil, "Up to four move codes")
	registerLogFlags(cmd, &flags.log)

	return cmd
}

// values maps the given flags onto the form defaults, leaving untouched
// fields at their seed values.
func (f *createFlags) values(cmd *cobra.Command) *ui.FormValues {
	v := ui.NewFormValues(loadedDefaults(f.configPath))

	set := func(flag string, dst *string, src string) {
		if cmd.Flags().Changed(flag) {
			*dst = src
		}
	}
	set("species", &v.Species, f.species)
	set("nickname", &v.Nickname, f.nickname)
	set("level", &v.Level, f.level)
	set("exp", &v.EXP, f.exp)
	set("nature", &v.Nature, f.nature)
	set("ability", &v.Ability, f.ability)
	set("item", &v.HeldItem, f.heldItem)
	set("ball", &v.Ball, f.ball)
	set("gender", &v.Gender, f.gender)
	set("form", &v.Form, f.form)
	set("pid", &v.PID, f.pid)
	set("tid", &v.TID, f.tid)
	set("sid", &v.SID, f.sid)
	set("ot", &v.OTName, f.otName)
	set("language", &v.Language, f.language)
	set("met-level", &v.MetLevel, f.metLevel)
	set("met-location", &v.MetLocation, f.metLocation)
	set("egg-location", &v.EggLocation, f.eggLocation)
	set("ivs", &v.IVs, f.ivs)
	set("evs", &v.EVs, f.evs)
	for i, m := range f.moves {
		if i >= len(v.Moves) {
			break
		}
		v.Moves[i] = m
	}
	return v
}

// loadedDefaults fetches the trainer defaults from the configuration file
// when one was given. Load errors are surfaced later by RunCreate; the
// form seed just falls back to the built-ins.
func loadedDefaults(path string) config.TrainerDefaults {
	if path == "" {
		return config.DefaultConfig().Defaults
	}
	cfg, err := config.Load(path)
	if err != nil {
		return config.DefaultConfig().Defaults
	}
	return cfg.Defaults
}
