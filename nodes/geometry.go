// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package nodes

import (
	"unicode/utf8"

	"cogentcore.org/nodes/graph"
	"cogentcore.org/nodes/math32"
)

// Geometry computes and caches the layout of nodes for one [Orientation].
// All positions it returns are relative to the node position.
type Geometry interface {

	// Orientation returns the orientation this geometry lays out.
	Orientation() Orientation

	// RecomputeSize reads the node data from the model and updates
	// the cached layout of the given node.
	RecomputeSize(id graph.NodeID) error

	// Size returns the cached size of the given node, computing it
	// if it is not cached yet. It is zero for an unknown node.
	Size(id graph.NodeID) math32.Vector2

	// PortPosition returns the center of the given port.
	PortPosition(id graph.NodeID, pt graph.PortType, index graph.PortIndex) math32.Vector2

	// CaptionPosition returns the baseline start of the node caption.
	CaptionPosition(id graph.NodeID) math32.Vector2

	// BoundingBox returns the box enclosing the node outline and its ports.
	BoundingBox(id graph.NodeID) math32.Box2

	// Forget drops the cached layout of the given node, after it is deleted.
	Forget(id graph.NodeID)
}

// NewGeometry returns the default geometry for the given orientation.
func NewGeometry(o Orientation, model graph.Model, st *Settings) Geometry {
	if o == Vertical {
		return NewVerticalGeometry(model, st)
	}
	return NewHorizontalGeometry(model, st)
}

// layout is the cached geometry of one node.
type layout struct {
	size     math32.Vector2
	caption  string
	inPorts  uint
	outPorts uint
}

// geometryBase has the model access and size cache shared by the
// default geometries. The size function fills in the layout size
// from the other fields.
type geometryBase struct {
	model    graph.Model
	settings *Settings
	cache    map[graph.NodeID]*layout
	size     func(l *layout) math32.Vector2
}

func newGeometryBase(model graph.Model, st *Settings) geometryBase {
	return geometryBase{model: model, settings: st, cache: make(map[graph.NodeID]*layout)}
}

func (g *geometryBase) RecomputeSize(id graph.NodeID) error {
	l := &layout{}
	var err error
	if l.caption, err = graph.Caption(g.model, id); err != nil {
		return err
	}
	if l.inPorts, err = graph.PortCount(g.model, id, graph.PortIn); err != nil {
		return err
	}
	if l.outPorts, err = graph.PortCount(g.model, id, graph.PortOut); err != nil {
		return err
	}
	l.size = g.size(l)
	// an explicit size in the model can only grow the node
	if v, err := g.model.NodeData(id, graph.RoleSize); err == nil {
		if sz, ok := v.(math32.Vector2); ok {
			l.size = l.size.Max(sz)
		}
	}
	g.cache[id] = l
	return nil
}

// layoutOf returns the cached layout, computing it on a miss.
func (g *geometryBase) layoutOf(id graph.NodeID) *layout {
	if l, ok := g.cache[id]; ok {
		return l
	}
	if err := g.RecomputeSize(id); err != nil {
		return &layout{}
	}
	return g.cache[id]
}

func (g *geometryBase) Forget(id graph.NodeID) {
	delete(g.cache, id)
}

func (g *geometryBase) Size(id graph.NodeID) math32.Vector2 {
	return g.layoutOf(id).size
}

func (g *geometryBase) BoundingBox(id graph.NodeID) math32.Box2 {
	b := math32.B2FromSize(math32.Vector2{}, g.Size(id))
	b.ExpandByScalar(g.settings.PortSize / 2)
	return b
}

func (g *geometryBase) captionWidth(l *layout) float32 {
	return float32(utf8.RuneCountInString(l.caption)) * g.settings.CharWidth
}

func (g *geometryBase) captionHeight(l *layout) float32 {
	if l.caption == "" {
		return 0
	}
	return g.settings.FontSize + g.settings.Padding
}

// portOffset returns the distance of port index along the edge
// that ports are laid out on, from the start of the port area.
func (g *geometryBase) portOffset(index graph.PortIndex) float32 {
	return (float32(index) + 0.5) * g.settings.PortSpacing
}

// HorizontalGeometry lays out input ports down the left edge of a node
// and output ports down the right edge, under the caption.
type HorizontalGeometry struct {
	geometryBase
}

// NewHorizontalGeometry returns a new [HorizontalGeometry].
func NewHorizontalGeometry(model graph.Model, st *Settings) *HorizontalGeometry {
	g := &HorizontalGeometry{newGeometryBase(model, st)}
	g.size = g.computeSize
	return g
}

func (g *HorizontalGeometry) Orientation() Orientation { return Horizontal }

func (g *HorizontalGeometry) computeSize(l *layout) math32.Vector2 {
	st := g.settings
	ports := float32(max(l.inPorts, l.outPorts))
	w := math32.Max(st.MinWidth, g.captionWidth(l)+2*st.Padding)
	h := math32.Max(st.MinHeight, g.captionHeight(l)+ports*st.PortSpacing+2*st.Padding)
	return math32.Vec2(math32.Ceil(w), math32.Ceil(h))
}

func (g *HorizontalGeometry) PortPosition(id graph.NodeID, pt graph.PortType, index graph.PortIndex) math32.Vector2 {
	l := g.layoutOf(id)
	y := g.settings.Padding + g.captionHeight(l) + g.portOffset(index)
	if pt == graph.PortOut {
		return math32.Vec2(l.size.X, y)
	}
	return math32.Vec2(0, y)
}

func (g *HorizontalGeometry) CaptionPosition(id graph.NodeID) math32.Vector2 {
	l := g.layoutOf(id)
	x := (l.size.X - g.captionWidth(l)) / 2
	return math32.Vec2(x, g.settings.Padding+g.settings.FontSize)
}

// VerticalGeometry lays out input ports along the top edge of a node
// and output ports along the bottom edge, with the caption centered.
type VerticalGeometry struct {
	geometryBase
}

// NewVerticalGeometry returns a new [VerticalGeometry].
func NewVerticalGeometry(model graph.Model, st *Settings) *VerticalGeometry {
	g := &VerticalGeometry{newGeometryBase(model, st)}
	g.size = g.computeSize
	return g
}

func (g *VerticalGeometry) Orientation() Orientation { return Vertical }

func (g *VerticalGeometry) computeSize(l *layout) math32.Vector2 {
	st := g.settings
	ports := float32(max(l.inPorts, l.outPorts))
	w := math32.Max(st.MinWidth, math32.Max(g.captionWidth(l), ports*st.PortSpacing)+2*st.Padding)
	h := math32.Max(st.MinHeight, g.captionHeight(l)+st.PortSize+2*st.Padding)
	return math32.Vec2(math32.Ceil(w), math32.Ceil(h))
}

func (g *VerticalGeometry) PortPosition(id graph.NodeID, pt graph.PortType, index graph.PortIndex) math32.Vector2 {
	l := g.layoutOf(id)
	n := l.inPorts
	if pt == graph.PortOut {
		n = l.outPorts
	}
	// center the row of ports along the edge
	x := (l.size.X-float32(n)*g.settings.PortSpacing)/2 + g.portOffset(index)
	if pt == graph.PortOut {
		return math32.Vec2(x, l.size.Y)
	}
	return math32.Vec2(x, 0)
}

func (g *VerticalGeometry) CaptionPosition(id graph.NodeID) math32.Vector2 {
	l := g.layoutOf(id)
	x := (l.size.X - g.captionWidth(l)) / 2
	y := (l.size.Y + g.settings.FontSize) / 2
	return math32.Vec2(x, y)
}
