package app

import (
	"fmt"
	"os"

	"github.com/jmassara/pkmforge/internal/errors"
	"github.com/jmassara/pkmforge/internal/pkm"
	"github.com/jmassara/pkmforge/internal/ui"
)

type ReadOptions struct {
	File    string
	Lenient bool
	Hex     bool
	Copy    bool
	Log     LogOptions
}

// RunRead decodes a record file and prints it. Strict mode rejects a
// checksum mismatch; lenient mode decodes anyway and prints a warning.
func RunRead(opts ReadOptions) error {
	logger, err := newLogger(opts.Log)
	if err != nil {
		return fmt.Errorf("create logger: %w", err)
	}
	defer logger.Close()

	data, err := os.ReadFile(opts.File)
	if err != nil {
		return fmt.Errorf("read record file: %w", err)
	}
	logger.Verbose("read %d bytes from %s", len(data), opts.File)

	var record pkm.Record
	if opts.Lenient {
		decoded, verified, err := pkm.DecodeLenient(data)
		if err != nil {
			return errors.WrapRecordError(err, opts.File)
		}
		if !verified {
			stored, _ := pkm.StoredChecksum(data)
			computed := pkm.Sum(data[pkm.ChecksumSpanStart:])
			fmt.Fprintln(os.Stdout, ui.RenderWarning(fmt.Sprintf(
				"checksum mismatch: stored 0x%04X, computed 0x%04X (decoding anyway)", stored, computed)))
		}
		record = decoded
	} else {
		record, err = pkm.Decode(data)
		if err != nil {
			return errors.WrapRecordError(err, opts.File)
		}
	}

	fmt.Fprintln(os.Stdout, ui.RenderRecord(record))

	if opts.Hex {
		fmt.Fprintln(os.Stdout, ui.FormatRecordHex(data, true))
	}

	if opts.Copy {
		if err := ui.CopyRecordHex(data); err != nil {
			return fmt.Errorf("copy to clipboard: %w", err)
		}
		fmt.Fprintln(os.Stdout, ui.RenderSuccess("Record hex copied to clipboard"))
	}

	return nil
}
