// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package nodes

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"cogentcore.org/nodes/base/errors"
	"github.com/go-playground/validator/v10"
	"github.com/mitchellh/go-homedir"
	"github.com/pelletier/go-toml/v2"
)

// SettingsFilename is the name of the settings file in [SettingsDir].
const SettingsFilename = "settings.toml"

// Settings are the style parameters used by the default geometries,
// painter and connections. All sizes are in scene units.
type Settings struct {

	// Orientation is the initial orientation of new scenes.
	Orientation Orientation `toml:"orientation" validate:"gte=0,lte=1"`

	// PortSize is the diameter of a port circle.
	PortSize float32 `toml:"port_size" validate:"gt=0"`

	// PortSpacing is the distance between the centers of adjacent ports.
	PortSpacing float32 `toml:"port_spacing" validate:"gt=0"`

	// Padding is the space between the node outline and its contents.
	Padding float32 `toml:"padding" validate:"gte=0"`

	// FontSize is the height of the caption text.
	FontSize float32 `toml:"font_size" validate:"gt=0"`

	// CharWidth is the approximate advance of one caption character,
	// used to size nodes without depending on a font backend.
	CharWidth float32 `toml:"char_width" validate:"gt=0"`

	// MinWidth is the minimum width of a node.
	MinWidth float32 `toml:"min_width" validate:"gte=0"`

	// MinHeight is the minimum height of a node.
	MinHeight float32 `toml:"min_height" validate:"gte=0"`

	// CornerRadius is the radius of the rounded node outline.
	CornerRadius float32 `toml:"corner_radius" validate:"gte=0"`

	// ConnectionWidth is the stroke width of connections.
	ConnectionWidth float32 `toml:"connection_width" validate:"gt=0"`
}

// DefaultSettings returns the default settings.
func DefaultSettings() Settings {
	return Settings{
		Orientation:     Horizontal,
		PortSize:        8,
		PortSpacing:     20,
		Padding:         6,
		FontSize:        14,
		CharWidth:       8,
		MinWidth:        60,
		MinHeight:       40,
		CornerRadius:    3,
		ConnectionWidth: 3,
	}
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate returns an error describing every invalid field.
func (st *Settings) Validate() error {
	return validate.Struct(st)
}

// SettingsDir returns the directory where settings are stored by default.
func SettingsDir() (string, error) {
	home, err := homedir.Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "cogentcore-nodes"), nil
}

// DefaultSettingsFile returns the full path of the default settings file.
func DefaultSettingsFile() (string, error) {
	dir, err := SettingsDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, SettingsFilename), nil
}

// OpenSettings reads settings from the given TOML file, starting from
// [DefaultSettings] so that the file only needs to list overrides.
// A leading ~ in the filename is expanded to the home directory.
func OpenSettings(filename string) (Settings, error) {
	st := DefaultSettings()
	fn, err := homedir.Expand(filename)
	if err != nil {
		return st, err
	}
	b, err := os.ReadFile(fn)
	if err != nil {
		return st, err
	}
	if err := toml.NewDecoder(bytes.NewReader(b)).DisallowUnknownFields().Decode(&st); err != nil {
		return st, fmt.Errorf("nodes.OpenSettings: %s: %w", fn, err)
	}
	if err := st.Validate(); err != nil {
		return st, fmt.Errorf("nodes.OpenSettings: %s: %w", fn, err)
	}
	return st, nil
}

// OpenDefaultSettings reads the settings from [DefaultSettingsFile],
// returning [DefaultSettings] if the file does not exist.
func OpenDefaultSettings() (Settings, error) {
	fn, err := DefaultSettingsFile()
	if err != nil {
		return DefaultSettings(), err
	}
	st, err := OpenSettings(fn)
	if errors.Is(err, os.ErrNotExist) {
		return DefaultSettings(), nil
	}
	return st, err
}

// SaveSettings writes the given settings to the given TOML file,
// creating its directory if needed.
func SaveSettings(filename string, st Settings) error {
	if err := st.Validate(); err != nil {
		return err
	}
	fn, err := homedir.Expand(filename)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(fn), 0o755); err != nil {
		return err
	}
	b, err := toml.Marshal(st)
	if err != nil {
		return err
	}
	return os.WriteFile(fn, b, 0o644)
}
