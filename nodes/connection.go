// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package nodes

import (
	"cogentcore.org/nodes/graph"
	"cogentcore.org/nodes/math32"
)

// ConnectionObject is the visual representation of one connection,
// or of the draft connection while the user drags a new connection
// from a port. A draft has one end unbound, which follows the pointer.
type ConnectionObject struct {

	// ID is the id of the connection. For a draft,
	// one end is [graph.InvalidNodeID].
	ID graph.ConnectionID

	scene *Scene

	// out and in are the scene positions of the two ends.
	out, in math32.Vector2

	// grabsPointer is whether this connection captures pointer input.
	grabsPointer bool

	// updates counts the repaint requests for this connection.
	updates int
}

func newConnectionObject(sc *Scene, id graph.ConnectionID) *ConnectionObject {
	c := &ConnectionObject{ID: id, scene: sc}
	c.Move()
	if req := graph.RequiredPort(id); req != graph.PortNone {
		c.setEnd(req, c.End(graph.OppositePort(req)))
	}
	return c
}

// Scene returns the scene that owns this connection.
func (c *ConnectionObject) Scene() *Scene {
	return c.scene
}

// End returns the scene position of the given end of the connection.
func (c *ConnectionObject) End(pt graph.PortType) math32.Vector2 {
	if pt == graph.PortIn {
		return c.in
	}
	return c.out
}

func (c *ConnectionObject) setEnd(pt graph.PortType, pos math32.Vector2) {
	if pt == graph.PortIn {
		c.in = pos
	} else {
		c.out = pos
	}
}

// SetEndPoint moves the given end of the connection, which is how
// the unbound end of a draft follows the pointer.
func (c *ConnectionObject) SetEndPoint(pt graph.PortType, pos math32.Vector2) {
	c.setEnd(pt, pos)
	c.Update()
}

// Move places each bound end of the connection on its port,
// using the current node positions and geometry of the scene.
func (c *ConnectionObject) Move() {
	for _, pt := range []graph.PortType{graph.PortOut, graph.PortIn} {
		n := c.scene.NodeObject(graph.NodeIDOf(pt, c.ID))
		if n == nil {
			continue
		}
		c.setEnd(pt, n.PortScenePosition(pt, graph.PortIndexOf(pt, c.ID)))
	}
	c.Update()
}

// IsDraft returns whether this is an incomplete connection.
func (c *ConnectionObject) IsDraft() bool {
	return !graph.IsComplete(c.ID)
}

// GrabPointer makes this connection capture pointer input.
func (c *ConnectionObject) GrabPointer() {
	c.grabsPointer = true
}

// UngrabPointer releases pointer input.
func (c *ConnectionObject) UngrabPointer() {
	c.grabsPointer = false
}

// GrabsPointer returns whether this connection captures pointer input.
func (c *ConnectionObject) GrabsPointer() bool {
	return c.grabsPointer
}

// Update requests a repaint of the connection.
func (c *ConnectionObject) Update() {
	c.updates++
	c.scene.needsRender = true
}

// Updates returns the number of repaint requests made for this connection.
func (c *ConnectionObject) Updates() int {
	return c.updates
}

// ControlPoints returns the two inner control points of the cubic curve
// drawn from the out end to the in end. The curve leaves and enters
// ports along the flow direction of the scene orientation.
func (c *ConnectionObject) ControlPoints() (c1, c2 math32.Vector2) {
	const minOffset = 20
	d := c.in.Sub(c.out)
	if c.scene.orientation == Vertical {
		off := math32.Max(minOffset, math32.Abs(d.Y)*0.5)
		return c.out.Add(math32.Vec2(0, off)), c.in.Sub(math32.Vec2(0, off))
	}
	off := math32.Max(minOffset, math32.Abs(d.X)*0.5)
	return c.out.Add(math32.Vec2(off, 0)), c.in.Sub(math32.Vec2(off, 0))
}

// BoundingBox returns the box enclosing the curve and its control points.
func (c *ConnectionObject) BoundingBox() math32.Box2 {
	c1, c2 := c.ControlPoints()
	var b math32.Box2
	b.SetFromPoints([]math32.Vector2{c.out, c1, c2, c.in})
	return b
}

// Paint adds the connection curve to the given render.
func (c *ConnectionObject) Paint(r *Render) {
	c1, c2 := c.ControlPoints()
	r.Add(&Curve{Start: c.out, Control1: c1, Control2: c2, End: c.in, Width: c.scene.settings.ConnectionWidth, Draft: c.IsDraft()})
}
