package celestial

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Parse decodes a YAML descriptor table. Unknown fields are rejected; values
// are taken as given. A table without a star gets DefaultStar.
func Parse(r io.Reader) (System, error) {
	var sys System

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&sys); err != nil {
		if errors.Is(err, io.EOF) {
			return System{}, fmt.Errorf("decode system: empty document")
		}
		return System{}, fmt.Errorf("decode system: %w", err)
	}

	if sys.Star == (StarDescriptor{}) {
		sys.Star = DefaultStar()
	}
	return sys, nil
}

// LoadFile reads a descriptor table from path.
func LoadFile(path string) (System, error) {
	f, err := os.Open(path)
	if err != nil {
		return System{}, fmt.Errorf("open system file: %w", err)
	}
	defer f.Close()

	sys, err := Parse(f)
	if err != nil {
		return System{}, fmt.Errorf("%s: %w", path, err)
	}
	return sys, nil
}

// Write encodes sys as YAML.
func Write(w io.Writer, sys System) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(sys); err != nil {
		return fmt.Errorf("encode system: %w", err)
	}
	return enc.Close()
}
