package app

import (
	"fmt"
	"os"

	"github.com/jmassara/pkmforge/internal/pkm"
	"github.com/jmassara/pkmforge/internal/ui"
)

type CreateOptions struct {
	ConfigPath  string
	OutputPath  string
	Interactive bool
	Values      *ui.FormValues
	Log         LogOptions
}

// RunCreate builds a record from the form values, encodes it and writes
// the 344-byte file. In interactive mode the values are edited in the
// terminal form first.
func RunCreate(opts CreateOptions) error {
	logger, err := newLogger(opts.Log)
	if err != nil {
		return fmt.Errorf("create logger: %w", err)
	}
	defer logger.Close()

	cfg, err := loadConfig(opts.ConfigPath)
	if err != nil {
		return err
	}

	values := opts.Values
	if values == nil {
		values = ui.NewFormValues(cfg.Defaults)
	}

	if opts.Interactive {
		if err := ui.BuildRecordForm(values).Run(); err != nil {
			return fmt.Errorf("run form: %w", err)
		}
	}

	record, err := values.Record()
	if err != nil {
		return err
	}

	data, err := pkm.Encode(record, codebook())
	if err != nil {
		return err
	}

	if err := os.WriteFile(opts.OutputPath, data, 0o644); err != nil {
		return fmt.Errorf("write record file: %w", err)
	}

	logger.Info("created %s (species %d)", opts.OutputPath, record.Species)

	fmt.Fprintln(os.Stdout, ui.RenderRecord(record))
	fmt.Fprintln(os.Stdout, ui.RenderSuccess(fmt.Sprintf("Wrote %d bytes to %s", len(data), opts.OutputPath)))
	return nil
}
