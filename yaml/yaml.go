// Package yaml loads fumosay configuration files.
package yaml

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/fwojciec/fumosay"
	"gopkg.in/yaml.v3"
)

// configDTO is the on-disk format of a config file. Fields absent from the
// file keep the value the DTO was initialized with.
type configDTO struct {
	Width    int      `yaml:"width"`
	Style    string   `yaml:"style"`
	Think    bool     `yaml:"think"`
	NoBubble bool     `yaml:"no_bubble"`
	Color    string   `yaml:"color"`
	Theme    themeDTO `yaml:"theme"`
}

type themeDTO struct {
	Bubble int `yaml:"bubble"`
	Tail   int `yaml:"tail"`
	Art    int `yaml:"art"`
}

func toDTO(c fumosay.Config) configDTO {
	return configDTO{
		Width:    c.Width,
		Style:    c.Style,
		Think:    c.Think,
		NoBubble: c.NoBubble,
		Color:    string(c.Color),
		Theme: themeDTO{
			Bubble: c.Theme.Bubble,
			Tail:   c.Theme.Tail,
			Art:    c.Theme.Art,
		},
	}
}

func (d configDTO) config() fumosay.Config {
	return fumosay.Config{
		Width:    d.Width,
		Style:    d.Style,
		Think:    d.Think,
		NoBubble: d.NoBubble,
		Color:    fumosay.ColorMode(d.Color),
		Theme: fumosay.Theme{
			Bubble: d.Theme.Bubble,
			Tail:   d.Theme.Tail,
			Art:    d.Theme.Art,
		},
	}
}

// Unmarshal parses a config file on top of fumosay.DefaultConfig and
// validates the result. Unknown keys and mistyped values wrap
// fumosay.ErrValidation. An empty document yields the defaults.
func Unmarshal(data []byte) (fumosay.Config, error) {
	dto := toDTO(fumosay.DefaultConfig())

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&dto); err != nil && !errors.Is(err, io.EOF) {
		var typeErr *yaml.TypeError
		if errors.As(err, &typeErr) {
			return fumosay.Config{}, fmt.Errorf("unmarshal config: %w: %w", fumosay.ErrValidation, err)
		}
		return fumosay.Config{}, fmt.Errorf("unmarshal config: %w", err)
	}

	cfg := dto.config()
	if err := cfg.Validate(); err != nil {
		return fumosay.Config{}, err
	}
	return cfg, nil
}

// Load reads and parses the config file at path. A missing file returns an
// error satisfying errors.Is(err, os.ErrNotExist).
func Load(path string) (fumosay.Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is caller-provided configuration
	if err != nil {
		return fumosay.Config{}, fmt.Errorf("load config: %w", err)
	}
	cfg, err := Unmarshal(data)
	if err != nil {
		return fumosay.Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}
