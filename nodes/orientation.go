// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package nodes

import (
	"fmt"
	"strings"
)

// Orientation is the scene-wide layout direction of a node graph.
type Orientation int32

const (
	// Horizontal lays out data flowing left to right, with input
	// ports on the left edge of a node and output ports on the right.
	Horizontal Orientation = iota

	// Vertical lays out data flowing top to bottom, with input
	// ports on the top edge of a node and output ports on the bottom.
	Vertical
)

// OrientationValues returns all possible values for the type Orientation.
func OrientationValues() []Orientation { return []Orientation{Horizontal, Vertical} }

// String returns the string representation of this Orientation value.
func (o Orientation) String() string {
	switch o {
	case Horizontal:
		return "Horizontal"
	case Vertical:
		return "Vertical"
	}
	return fmt.Sprintf("Orientation(%d)", int32(o))
}

// SetString sets the Orientation value from its string representation,
// ignoring case, and returns an error if the string is invalid.
func (o *Orientation) SetString(s string) error {
	for _, v := range OrientationValues() {
		if strings.EqualFold(v.String(), s) {
			*o = v
			return nil
		}
	}
	return fmt.Errorf("%q is not a valid value for type Orientation", s)
}

// MarshalText implements the [encoding.TextMarshaler] interface.
func (o Orientation) MarshalText() ([]byte, error) { return []byte(o.String()), nil }

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
func (o *Orientation) UnmarshalText(text []byte) error { return o.SetString(string(text)) }

// Type implements the [pflag.Value] interface, so that an
// Orientation can be used directly as a command line flag.
func (o *Orientation) Type() string { return "orientation" }

// Set implements the [pflag.Value] interface.
func (o *Orientation) Set(s string) error { return o.SetString(s) }
