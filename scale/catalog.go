package scale

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrUnknownScale is returned when a preset lookup fails.
var ErrUnknownScale = errors.New("unknown scale")

//go:embed presets.yaml
var defaultPresets []byte

// Preset is a named interval pattern.
type Preset struct {
	Name      string `yaml:"name"`
	Group     string `yaml:"group"`
	Intervals []int  `yaml:"intervals,flow"`
}

// Label is the display form, e.g. "Dorian (Modes)".
func (p Preset) Label() string {
	if p.Group == "" {
		return p.Name
	}
	return fmt.Sprintf("%s (%s)", p.Name, p.Group)
}

// Catalog is an ordered list of presets. Order matters: seeds pick presets
// by index.
type Catalog struct {
	Presets []Preset
}

// LoadCatalog decodes a YAML list of presets.
func LoadCatalog(r io.Reader) (*Catalog, error) {
	var presets []Preset
	if err := yaml.NewDecoder(r).Decode(&presets); err != nil {
		return nil, fmt.Errorf("decode scale catalog: %w", err)
	}
	if len(presets) == 0 {
		return nil, fmt.Errorf("scale catalog has no presets")
	}
	for i, p := range presets {
		if len(p.Intervals) == 0 {
			return nil, fmt.Errorf("preset %d %q: %w", i, p.Name, ErrInvalidPattern)
		}
	}
	return &Catalog{Presets: presets}, nil
}

// LoadCatalogFile reads a catalog from a YAML file.
func LoadCatalogFile(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return LoadCatalog(f)
}

// DefaultCatalog returns the built-in presets.
func DefaultCatalog() *Catalog {
	c, err := LoadCatalog(bytes.NewReader(defaultPresets))
	if err != nil {
		panic(fmt.Sprintf("built-in scale catalog: %v", err))
	}
	return c
}

// Len returns the number of presets.
func (c *Catalog) Len() int { return len(c.Presets) }

// At returns preset i.
func (c *Catalog) At(i int) (Preset, error) {
	if i < 0 || i >= len(c.Presets) {
		return Preset{}, fmt.Errorf("preset %d of %d: %w", i, len(c.Presets), ErrUnknownScale)
	}
	return c.Presets[i], nil
}

// Find returns the index of the preset with the given name (case-insensitive).
func (c *Catalog) Find(name string) (int, error) {
	for i, p := range c.Presets {
		if strings.EqualFold(p.Name, name) {
			return i, nil
		}
	}
	return -1, fmt.Errorf("%q: %w", name, ErrUnknownScale)
}
