// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package nodes

import (
	"cogentcore.org/nodes/graph"
	"cogentcore.org/nodes/math32"
)

// NodeObject is the visual representation of one node of the model.
// It is created and destroyed only by its [Scene].
type NodeObject struct {

	// ID is the id of the node in the model.
	ID graph.NodeID

	// Pos is the position of the top left of the node in the scene.
	Pos math32.Vector2

	// Selected is whether the node is selected.
	Selected bool

	scene *Scene

	// geometryChanged is set when the node size is stale,
	// until it is next painted.
	geometryChanged bool

	// updates counts the repaint requests for this node.
	updates int
}

func newNodeObject(sc *Scene, id graph.NodeID) (*NodeObject, error) {
	pos, err := graph.Position(sc.model, id)
	if err != nil {
		return nil, err
	}
	if err := sc.geometry.RecomputeSize(id); err != nil {
		return nil, err
	}
	return &NodeObject{ID: id, Pos: pos, scene: sc}, nil
}

// Scene returns the scene that owns this node.
func (n *NodeObject) Scene() *Scene {
	return n.scene
}

// SetPos moves the node to the given scene position,
// dragging its connections along.
func (n *NodeObject) SetPos(pos math32.Vector2) {
	if n.Pos == pos {
		return
	}
	n.Pos = pos
	n.MoveConnections()
}

// SetSelected sets whether the node is selected and requests a repaint.
func (n *NodeObject) SetSelected(sel bool) {
	if n.Selected == sel {
		return
	}
	n.Selected = sel
	n.Update()
}

// Update requests a repaint of the node.
func (n *NodeObject) Update() {
	n.updates++
	n.scene.needsRender = true
}

// Updates returns the number of repaint requests made for this node.
func (n *NodeObject) Updates() int {
	return n.updates
}

// SetGeometryChanged marks the cached size of the node as stale.
func (n *NodeObject) SetGeometryChanged() {
	n.geometryChanged = true
}

// GeometryChanged returns whether the node size changed since it was last painted.
func (n *NodeObject) GeometryChanged() bool {
	return n.geometryChanged
}

// BoundingBox returns the box in scene coordinates enclosing the node and its ports.
func (n *NodeObject) BoundingBox() math32.Box2 {
	return n.scene.geometry.BoundingBox(n.ID).Translate(n.Pos)
}

// BoundingBoxNoPorts returns the box in scene coordinates of the node outline.
func (n *NodeObject) BoundingBoxNoPorts() math32.Box2 {
	return math32.B2FromSize(n.Pos, n.scene.geometry.Size(n.ID))
}

// PortScenePosition returns the center of the given port in scene coordinates.
func (n *NodeObject) PortScenePosition(pt graph.PortType, index graph.PortIndex) math32.Vector2 {
	return n.Pos.Add(n.scene.geometry.PortPosition(n.ID, pt, index))
}

// MoveConnections repositions the visuals of every connection attached to the node.
func (n *NodeObject) MoveConnections() {
	for c := range n.scene.model.AllConnectionIDs(n.ID) {
		if co := n.scene.ConnectionObject(c); co != nil {
			co.Move()
		}
	}
}

// Paint paints the node with the current painter of the scene.
func (n *NodeObject) Paint(r *Render) {
	n.scene.painter.Paint(r, n)
	n.geometryChanged = false
}
