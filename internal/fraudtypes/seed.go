package fraudtypes

import (
	"context"
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed seed.yaml
var defaultSeed []byte

type seedFile struct {
	FraudTypes []RegisterCommand `yaml:"fraud_types"`
}

// DefaultSeed returns the built-in fraud type categories.
func DefaultSeed() ([]RegisterCommand, error) {
	return ParseSeed(defaultSeed)
}

// LoadSeed reads fraud type categories from a YAML file.
func LoadSeed(path string) ([]RegisterCommand, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed file: %w", err)
	}
	return ParseSeed(data)
}

// ParseSeed decodes a YAML document with a top-level fraud_types list.
// Every entry must carry a name.
func ParseSeed(data []byte) ([]RegisterCommand, error) {
	var f seedFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidSeed, err)
	}

	for i, cmd := range f.FraudTypes {
		if NormalizeName(cmd.Name) == "" {
			return nil, fmt.Errorf("%w: entry %d has no name", ErrInvalidSeed, i)
		}
	}

	return f.FraudTypes, nil
}

// SeedFrom seeds sys from the YAML file at path, or from DefaultSeed when
// path is empty. It returns how many fraud types were added.
func SeedFrom(ctx context.Context, sys System, path string) (int, error) {
	var (
		cmds []RegisterCommand
		err  error
	)

	if path != "" {
		cmds, err = LoadSeed(path)
	} else {
		cmds, err = DefaultSeed()
	}
	if err != nil {
		return 0, err
	}

	return sys.Seed(ctx, cmds)
}
