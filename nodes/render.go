// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package nodes

import (
	"cogentcore.org/nodes/graph"
	"cogentcore.org/nodes/math32"
)

// Render is a display list of render [Item]s, in back to front order.
// Rasterizing it is up to the view that shows the scene.
type Render []Item

// Item is a union interface for render items: [Rect], [Circle], [Text] or [Curve].
type Item interface {
	isRenderItem()
}

// Add adds item(s) to render.
func (r *Render) Add(item ...Item) Render {
	*r = append(*r, item...)
	return *r
}

// Reset resets back to an empty Render state.
// It preserves the existing slice memory for re-use.
func (r *Render) Reset() Render {
	*r = (*r)[:0]
	return *r
}

// Rect is a rounded rectangle, the outline of a node.
type Rect struct {
	Box      math32.Box2
	Radius   float32
	Selected bool

	// Style is the node [graph.RoleStyle] value, if any.
	Style any
}

// Circle is a port.
type Circle struct {
	Center    math32.Vector2
	Radius    float32
	PortType  graph.PortType
	Connected bool
}

// Text is a single line of text starting at the baseline position Pos.
type Text struct {
	Pos  math32.Vector2
	Text string
	Size float32
}

// Curve is a cubic bezier from Start to End, a connection.
type Curve struct {
	Start, Control1, Control2, End math32.Vector2
	Width                          float32
	Draft                          bool
}

// interface assertions.
func (r *Rect) isRenderItem()   {}
func (c *Circle) isRenderItem() {}
func (t *Text) isRenderItem()   {}
func (c *Curve) isRenderItem()  {}
