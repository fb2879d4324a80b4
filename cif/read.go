package cif

import (
	"io"
	"os"

	"github.com/nikandfor/errors"
)

// Read reads an entire CIF file from r, checks its syntax and extracts its
// data items. A syntax error is returned as a *ParseError and no data is
// extracted.
func Read(r io.Reader) (*CIF, error) {
	input, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "read cif")
	}
	return parse(string(input))
}

// Load is like Read, but reads the file at path.
func Load(path string) (*CIF, error) {
	input, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "load %v", path)
	}
	return parse(string(input))
}

// Validate checks the syntax of the CIF file read from r without extracting
// any data. It returns nil for a valid file and a *ParseError describing the
// first error otherwise.
func Validate(r io.Reader) error {
	input, err := io.ReadAll(r)
	if err != nil {
		return errors.Wrap(err, "read cif")
	}
	return validate(string(input))
}

// ValidateFile is like Validate, but reads the file at path.
func ValidateFile(path string) error {
	input, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrap(err, "load %v", path)
	}
	return validate(string(input))
}

func parse(input string) (*CIF, error) {
	if err := validate(input); err != nil {
		return nil, err
	}
	cif := &CIF{
		Blocks: make(map[string]*DataBlock, 10),
	}
	cif.Version, _ = versionComment(input)
	for _, b := range extract(input) {
		cif.add(b.DataBlock)
	}
	return cif, nil
}
