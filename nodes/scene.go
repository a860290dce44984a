// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package nodes provides a [Scene] that mirrors a [graph.Model] as
// node and connection visuals, keeping them in sync with the model
// as it changes and managing the draft connection that the user
// drags out of a port. Layout and painting are pluggable through
// [Geometry] and [Painter]. Showing the scene, and turning pointer
// input into scene calls, is up to a view.
package nodes

import (
	"log/slog"
	"slices"

	"cogentcore.org/nodes/base/errors"
	"cogentcore.org/nodes/base/ordmap"
	"cogentcore.org/nodes/graph"
	"cogentcore.org/nodes/math32"
	"cogentcore.org/nodes/undo"
)

// Scene contains the node and connection visuals of a [graph.Model].
// It subscribes to the change notifications of the model, and is the
// only thing that creates or destroys visuals. Like the model, it is
// not safe for concurrent use: all calls and notifications must
// happen on one goroutine.
type Scene struct {
	model    graph.Model
	settings Settings

	orientation Orientation

	// orientationSet is whether [WithOrientation] was given.
	orientationSet bool

	geometry Geometry
	painter     Painter

	undoStack *undo.Stack

	nodeObjects       *ordmap.Map[graph.NodeID, *NodeObject]
	connectionObjects *ordmap.Map[graph.ConnectionID, *ConnectionObject]

	// draft is the connection being dragged by the user, if any.
	// It is never in connectionObjects.
	draft *ConnectionObject

	menuFunc MenuFunc
	metrics  *Metrics
	logger   *slog.Logger

	// needsRender is set by any repaint request.
	needsRender bool
}

// Option configures a [Scene] in [NewScene].
type Option func(sc *Scene)

// WithOrientation sets the initial orientation, overriding the
// orientation of the settings whatever the option order.
func WithOrientation(o Orientation) Option {
	return func(sc *Scene) {
		sc.orientation = o
		sc.orientationSet = true
	}
}

// WithPainter sets the initial painter.
func WithPainter(p Painter) Option {
	return func(sc *Scene) { sc.painter = p }
}

// WithSettings sets the style settings, including the initial
// orientation unless [WithOrientation] is given.
func WithSettings(st Settings) Option {
	return func(sc *Scene) { sc.settings = st }
}

// WithMetrics records scene metrics to the given [Metrics].
func WithMetrics(m *Metrics) Option {
	return func(sc *Scene) { sc.metrics = m }
}

// WithLogger sets the logger, which is [slog.Default] otherwise.
func WithLogger(lg *slog.Logger) Option {
	return func(sc *Scene) { sc.logger = lg }
}

// WithMenuFunc sets the function that makes the scene context menu.
func WithMenuFunc(fun MenuFunc) Option {
	return func(sc *Scene) { sc.menuFunc = fun }
}

// NewScene returns a new scene for the given model, with a visual for
// every node and connection in it, subscribed to the changes of the model.
// Errors from the model while reading it are returned unchanged.
func NewScene(model graph.Model, opts ...Option) (*Scene, error) {
	sc := &Scene{
		model:             model,
		settings:          DefaultSettings(),
		painter:           DefaultPainter{},
		undoStack:         &undo.Stack{},
		nodeObjects:       ordmap.New[graph.NodeID, *NodeObject](),
		connectionObjects: ordmap.New[graph.ConnectionID, *ConnectionObject](),
		logger:            slog.Default(),
	}
	for _, opt := range opts {
		opt(sc)
	}
	if !sc.orientationSet {
		sc.orientation = sc.settings.Orientation
	}
	sc.geometry = NewGeometry(sc.orientation, model, &sc.settings)
	if err := sc.populate(); err != nil {
		return nil, err
	}
	sc.subscribe()
	return sc, nil
}

// subscribe connects the model notifications to the scene handlers.
func (sc *Scene) subscribe() {
	m := sc.model
	m.OnChange(graph.NodeCreated, func(ev graph.Event) { sc.OnNodeCreated(ev.NodeID) })
	m.OnChange(graph.NodeDeleted, func(ev graph.Event) { sc.OnNodeDeleted(ev.NodeID) })
	m.OnChange(graph.NodeUpdated, func(ev graph.Event) { sc.OnNodeUpdated(ev.NodeID) })
	m.OnChange(graph.NodePositionUpdated, func(ev graph.Event) { sc.OnNodePositionUpdated(ev.NodeID) })
	m.OnChange(graph.ConnectionCreated, func(ev graph.Event) { sc.OnConnectionCreated(ev.ConnectionID) })
	m.OnChange(graph.ConnectionDeleted, func(ev graph.Event) { sc.OnConnectionDeleted(ev.ConnectionID) })
	m.OnChange(graph.ModelReset, func(ev graph.Event) { sc.OnModelReset() })
}

// Model returns the model shown by the scene, through which it can
// also be changed.
func (sc *Scene) Model() graph.Model {
	return sc.model
}

// Settings returns the style settings of the scene.
func (sc *Scene) Settings() *Settings {
	return &sc.settings
}

// Geometry returns the current geometry.
func (sc *Scene) Geometry() Geometry {
	return sc.geometry
}

// Painter returns the current node painter.
func (sc *Scene) Painter() Painter {
	return sc.painter
}

// SetPainter replaces the node painter. Existing visuals are kept,
// and are painted with the new painter from the next render on.
func (sc *Scene) SetPainter(p Painter) {
	sc.painter = p
	sc.needsRender = true
}

// UndoStack returns the undo stack of the scene. It is owned by
// the scene and lives as long as it does.
func (sc *Scene) UndoStack() *undo.Stack {
	return sc.undoStack
}

// Orientation returns the current orientation.
func (sc *Scene) Orientation() Orientation {
	return sc.orientation
}

// SetOrientation sets the orientation. If it changes, the geometry is
// replaced by the default one for the new orientation, and every visual
// is rebuilt as on a model reset. If the rebuild fails, the previous
// orientation and geometry are kept, so that calling SetOrientation
// again retries the rebuild.
func (sc *Scene) SetOrientation(o Orientation) error {
	if sc.orientation == o {
		return nil
	}
	prevOrientation, prevGeometry := sc.orientation, sc.geometry
	sc.orientation = o
	sc.geometry = NewGeometry(o, sc.model, &sc.settings)
	if err := sc.reset(); err != nil {
		sc.orientation, sc.geometry = prevOrientation, prevGeometry
		return err
	}
	sc.logger.Debug("scene: orientation changed", "orientation", o)
	return nil
}

// NodeObject returns the visual of the given node, or nil if there is none.
func (sc *Scene) NodeObject(id graph.NodeID) *NodeObject {
	return sc.nodeObjects.ValueByKey(id)
}

// ConnectionObject returns the visual of the given connection, or nil
// if there is none. The draft connection is never returned.
func (sc *Scene) ConnectionObject(id graph.ConnectionID) *ConnectionObject {
	return sc.connectionObjects.ValueByKey(id)
}

// NodeObjects returns all node visuals, in the order they were made.
func (sc *Scene) NodeObjects() []*NodeObject {
	return sc.nodeObjects.Values()
}

// ConnectionObjects returns all connection visuals, in the order they were made.
func (sc *Scene) ConnectionObjects() []*ConnectionObject {
	return sc.connectionObjects.Values()
}

// NodeCount returns the number of node visuals.
func (sc *Scene) NodeCount() int {
	return sc.nodeObjects.Len()
}

// ConnectionCount returns the number of connection visuals, excluding the draft.
func (sc *Scene) ConnectionCount() int {
	return sc.connectionObjects.Len()
}

// MakeDraftConnection makes the draft connection for the given incomplete
// connection id, which captures pointer input until it is reset. The
// scene keeps ownership of it. It replaces any existing draft, so callers
// should call [Scene.ResetDraftConnection] first.
func (sc *Scene) MakeDraftConnection(id graph.ConnectionID) *ConnectionObject {
	if sc.draft != nil {
		sc.logger.Debug("scene: replacing draft connection", "connection", sc.draft.ID.String())
	}
	sc.draft = newConnectionObject(sc, id)
	sc.draft.GrabPointer()
	sc.metrics.RecordDraft()
	return sc.draft
}

// DraftConnection returns the draft connection, or nil if there is none.
func (sc *Scene) DraftConnection() *ConnectionObject {
	return sc.draft
}

// ResetDraftConnection discards the draft connection, if any.
// The model is not affected.
func (sc *Scene) ResetDraftConnection() {
	if sc.draft == nil {
		return
	}
	sc.draft.UngrabPointer()
	sc.draft = nil
	sc.needsRender = true
}

// ClearScene deletes every node from the model. The visuals are
// removed by the resulting model notifications.
func (sc *Scene) ClearScene() {
	for _, id := range graph.SortedNodeIDs(sc.model.AllNodeIDs()) {
		sc.model.DeleteNode(id)
	}
}

// NodeAt returns the topmost node whose bounding box contains the given
// scene position, or nil if there is none.
func (sc *Scene) NodeAt(pos math32.Vector2) *NodeObject {
	nodes := sc.nodeObjects.Values()
	for _, n := range slices.Backward(nodes) {
		if n.BoundingBox().ContainsPoint(pos) {
			return n
		}
	}
	return nil
}

// SelectedNodes returns the selected node visuals.
func (sc *Scene) SelectedNodes() []*NodeObject {
	var sel []*NodeObject
	for _, n := range sc.nodeObjects.All() {
		if n.Selected {
			sel = append(sel, n)
		}
	}
	return sel
}

// SelectBox selects the nodes whose bounding box intersects the given
// box, as for a rubber band drag, and deselects all others. The corners
// of the box may be given in any order. It returns the selected nodes.
func (sc *Scene) SelectBox(b math32.Box2) []*NodeObject {
	b = b.Canon()
	for _, n := range sc.nodeObjects.All() {
		n.SetSelected(b.IntersectsBox(n.BoundingBox()))
	}
	return sc.SelectedNodes()
}

// ClearSelection deselects all nodes.
func (sc *Scene) ClearSelection() {
	for _, n := range sc.nodeObjects.All() {
		n.SetSelected(false)
	}
}

// DeleteSelected deletes the selected nodes from the model, along with
// their connections. The visuals are removed by the resulting model
// notifications.
func (sc *Scene) DeleteSelected() {
	for _, n := range sc.SelectedNodes() {
		sc.model.DeleteNode(n.ID)
	}
}

// BoundingBox returns the box enclosing all node and connection visuals.
// It is empty if there are none.
func (sc *Scene) BoundingBox() math32.Box2 {
	b := math32.B2Empty()
	for _, n := range sc.nodeObjects.All() {
		b.ExpandByBox(n.BoundingBox())
	}
	for _, c := range sc.connectionObjects.All() {
		b.ExpandByBox(c.BoundingBox())
	}
	return b
}

// Render paints the whole scene into r: connections first, then nodes,
// then the draft connection on top.
func (sc *Scene) Render(r *Render) {
	for _, c := range sc.connectionObjects.All() {
		c.Paint(r)
	}
	for _, n := range sc.nodeObjects.All() {
		n.Paint(r)
	}
	if sc.draft != nil {
		sc.draft.Paint(r)
	}
}

// NeedsRender returns whether any repaint was requested since the
// last [Scene.ClearNeedsRender].
func (sc *Scene) NeedsRender() bool {
	return sc.needsRender
}

// ClearNeedsRender clears the repaint request, after the view has rendered.
func (sc *Scene) ClearNeedsRender() {
	sc.needsRender = false
}

// updateAttachedNode requests a repaint of the node on the given end
// of the connection, if it has a visual.
func (sc *Scene) updateAttachedNode(id graph.ConnectionID, pt graph.PortType) {
	if n := sc.NodeObject(graph.NodeIDOf(pt, id)); n != nil {
		n.Update()
	}
}

func (sc *Scene) countsChanged() {
	sc.metrics.SetCounts(sc.nodeObjects.Len(), sc.connectionObjects.Len())
}

// OnNodeCreated makes the visual for a new node. An existing visual
// for the same id is replaced.
func (sc *Scene) OnNodeCreated(id graph.NodeID) {
	sc.logger.Debug("scene: node created", "node", id)
	sc.metrics.RecordEvent(graph.NodeCreated)
	n, err := newNodeObject(sc, id)
	if errors.Log(err) != nil {
		return
	}
	if _, replaced := sc.nodeObjects.Add(id, n); replaced {
		sc.logger.Debug("scene: replaced existing node visual", "node", id)
	}
	n.Update()
	sc.countsChanged()
}

// OnNodeDeleted removes the visual of a deleted node, if any.
func (sc *Scene) OnNodeDeleted(id graph.NodeID) {
	sc.logger.Debug("scene: node deleted", "node", id)
	sc.metrics.RecordEvent(graph.NodeDeleted)
	sc.geometry.Forget(id)
	if _, ok := sc.nodeObjects.DeleteKey(id); ok {
		sc.needsRender = true
		sc.countsChanged()
	}
}

// OnNodePositionUpdated moves the visual of the node to its position in the model.
func (sc *Scene) OnNodePositionUpdated(id graph.NodeID) {
	sc.logger.Debug("scene: node position updated", "node", id)
	sc.metrics.RecordEvent(graph.NodePositionUpdated)
	n := sc.NodeObject(id)
	if n == nil {
		return
	}
	pos, err := graph.Position(sc.model, id)
	if errors.Log(err) != nil {
		return
	}
	n.SetPos(pos)
	n.Update()
}

// OnNodeUpdated recomputes the geometry of the node after its data
// changed, and repositions its connections.
func (sc *Scene) OnNodeUpdated(id graph.NodeID) {
	sc.logger.Debug("scene: node updated", "node", id)
	sc.metrics.RecordEvent(graph.NodeUpdated)
	n := sc.NodeObject(id)
	if n == nil {
		return
	}
	n.SetGeometryChanged()
	errors.Log(sc.geometry.RecomputeSize(id))
	n.Update()
	n.MoveConnections()
}

// OnConnectionCreated makes the visual for a new connection.
// The visuals of both of its nodes must already exist.
func (sc *Scene) OnConnectionCreated(id graph.ConnectionID) {
	sc.logger.Debug("scene: connection created", "connection", id.String())
	sc.metrics.RecordEvent(graph.ConnectionCreated)
	sc.connectionObjects.Add(id, newConnectionObject(sc, id))
	sc.updateAttachedNode(id, graph.PortOut)
	sc.updateAttachedNode(id, graph.PortIn)
	sc.countsChanged()
}

// OnConnectionDeleted removes the visual of a deleted connection, if
// any, and the draft connection if it has the same id.
func (sc *Scene) OnConnectionDeleted(id graph.ConnectionID) {
	sc.logger.Debug("scene: connection deleted", "connection", id.String())
	sc.metrics.RecordEvent(graph.ConnectionDeleted)
	sc.connectionObjects.DeleteKey(id)
	if sc.draft != nil && sc.draft.ID == id {
		sc.ResetDraftConnection()
	}
	sc.updateAttachedNode(id, graph.PortOut)
	sc.updateAttachedNode(id, graph.PortIn)
	sc.countsChanged()
}

// OnModelReset discards every visual and rebuilds them from the model.
func (sc *Scene) OnModelReset() {
	sc.logger.Debug("scene: model reset")
	sc.metrics.RecordEvent(graph.ModelReset)
	errors.Log(sc.reset())
}

// reset discards every visual, including the draft connection,
// and rebuilds them from the model.
func (sc *Scene) reset() error {
	for _, id := range sc.nodeObjects.Keys() {
		sc.geometry.Forget(id)
	}
	sc.connectionObjects.Reset()
	sc.nodeObjects.Reset()
	sc.ResetDraftConnection()
	sc.needsRender = true
	return sc.populate()
}
