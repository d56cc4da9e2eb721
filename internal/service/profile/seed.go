package profile

import (
	"context"
	_ "embed"
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed seed.yaml
var defaultSeed []byte

type seedFile struct {
	Profiles []seedProfile `yaml:"profiles"`
}

type seedProfile struct {
	Name        string    `yaml:"name"`
	Description string    `yaml:"description"`
	Image       string    `yaml:"image"`
	Address     string    `yaml:"address"`
	Coordinates []float64 `yaml:"coordinates"`
	Interests   []string  `yaml:"interests"`
	Contact     struct {
		Email string `yaml:"email"`
		Phone string `yaml:"phone"`
	} `yaml:"contact"`
}

// raw converts the entry to form values so seed data passes the same checks as the
// admin form.
func (sp seedProfile) raw() (RawFields, error) {
	if len(sp.Coordinates) != 2 {
		return RawFields{}, fmt.Errorf("coordinates must be [latitude, longitude], got %d values", len(sp.Coordinates))
	}
	return RawFields{
		Name:        sp.Name,
		Description: sp.Description,
		Image:       sp.Image,
		Address:     sp.Address,
		Latitude:    strconv.FormatFloat(sp.Coordinates[0], 'f', -1, 64),
		Longitude:   strconv.FormatFloat(sp.Coordinates[1], 'f', -1, 64),
		Interests:   strings.Join(sp.Interests, ", "),
		Email:       sp.Contact.Email,
		Phone:       sp.Contact.Phone,
	}, nil
}

// DefaultSeed returns the built-in directory content.
func DefaultSeed(v *Validator) ([]Fields, error) {
	return LoadSeed(v, defaultSeed)
}

// LoadSeedFile reads seed profiles from a YAML file.
func LoadSeedFile(v *Validator, path string) ([]Fields, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("seed: %w", err)
	}
	return LoadSeed(v, data)
}

// LoadSeed parses YAML seed data and validates every entry.
func LoadSeed(v *Validator, data []byte) ([]Fields, error) {
	var file seedFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("seed: parse: %w", err)
	}

	out := make([]Fields, 0, len(file.Profiles))
	for i, sp := range file.Profiles {
		raw, err := sp.raw()
		if err != nil {
			return nil, fmt.Errorf("seed: profile %d: %w", i, err)
		}
		fields, err := v.Validate(raw)
		if err != nil {
			return nil, fmt.Errorf("seed: profile %d: %w", i, err)
		}
		out = append(out, fields)
	}
	return out, nil
}

// Seed adds the profiles to the store in order.
func Seed(ctx context.Context, store Store, seed []Fields) []Profile {
	out := make([]Profile, 0, len(seed))
	for _, f := range seed {
		out = append(out, store.Add(ctx, f))
	}
	return out
}
