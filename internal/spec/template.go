package spec

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
)

// DefaultTemplatePath is where the template command writes when no output is given.
const DefaultTemplatePath = "specs-template.yaml"

// ErrOutputExists is returned when the template target exists and force is not set.
var ErrOutputExists = errors.New("output file already exists, use --force to overwrite")

//go:embed templates/specs-template.yaml
var runTemplate []byte

// Template returns the starter Run file.
func Template() []byte {
	return runTemplate
}

// WriteTemplate writes the starter Run file to path. An existing file
// is only replaced when force is set.
func WriteTemplate(path string, force bool) error {
	flags := os.O_WRONLY | os.O_CREATE | os.O_TRUNC
	if !force {
		flags = os.O_WRONLY | os.O_CREATE | os.O_EXCL
	}

	f, err := os.OpenFile(path, flags, 0o644)
	if err != nil {
		if errors.Is(err, os.ErrExist) {
			return fmt.Errorf("%s: %w", path, ErrOutputExists)
		}
		return fmt.Errorf("failed to create %s: %w", path, err)
	}

	if _, err := f.Write(runTemplate); err != nil {
		f.Close()
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return f.Close()
}
