// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package nodes

import (
	"cogentcore.org/nodes/base/errors"
	"cogentcore.org/nodes/graph"
)

// Painter renders the visual representation of a node into a [Render].
// It is queried fresh every time a node is painted, so replacing the
// painter of a scene takes effect on the next render.
type Painter interface {
	Paint(r *Render, n *NodeObject)
}

// PainterFunc is a function that implements [Painter].
type PainterFunc func(r *Render, n *NodeObject)

func (f PainterFunc) Paint(r *Render, n *NodeObject) { f(r, n) }

// DefaultPainter paints a node as a rounded box with its caption
// and a circle for each port.
type DefaultPainter struct{}

func (DefaultPainter) Paint(r *Render, n *NodeObject) {
	sc := n.Scene()
	geom := sc.Geometry()
	model := sc.Model()
	st := sc.Settings()

	style := errors.Log1(model.NodeData(n.ID, graph.RoleStyle))
	r.Add(&Rect{Box: n.BoundingBoxNoPorts(), Radius: st.CornerRadius, Selected: n.Selected, Style: style})

	caption := errors.Log1(graph.Caption(model, n.ID))
	if caption != "" {
		r.Add(&Text{Pos: n.Pos.Add(geom.CaptionPosition(n.ID)), Text: caption, Size: st.FontSize})
	}

	for _, pt := range []graph.PortType{graph.PortIn, graph.PortOut} {
		cnt := errors.Log1(graph.PortCount(model, n.ID, pt))
		for i := range cnt {
			idx := graph.PortIndex(i)
			r.Add(&Circle{
				Center:    n.Pos.Add(geom.PortPosition(n.ID, pt, idx)),
				Radius:    st.PortSize / 2,
				PortType:  pt,
				Connected: len(model.Connections(n.ID, pt, idx)) > 0,
			})
		}
	}
}
