// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package nodes

import "cogentcore.org/nodes/math32"

// Menu describes a context menu to show at a scene position.
// Showing it is up to the view.
type Menu struct {

	// Pos is the scene position the menu was requested for.
	Pos math32.Vector2

	// Items are the menu items, in order.
	Items []MenuItem
}

// MenuItem is one item of a [Menu].
type MenuItem struct {
	Text string
	Func func()
}

// Add adds an item to the menu.
func (m *Menu) Add(text string, fun func()) *Menu {
	m.Items = append(m.Items, MenuItem{Text: text, Func: fun})
	return m
}

// MenuFunc makes the context menu of a scene for the given position,
// or returns nil for no menu.
type MenuFunc func(sc *Scene, pos math32.Vector2) *Menu

// SceneMenu returns the context menu for the given scene position.
// By default there is no menu; use [WithMenuFunc] to provide one.
func (sc *Scene) SceneMenu(pos math32.Vector2) *Menu {
	if sc.menuFunc == nil {
		return nil
	}
	return sc.menuFunc(sc, pos)
}
