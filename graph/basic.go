// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package graph

import (
	"fmt"
	"log/slog"

	"cogentcore.org/nodes/base/errors"
	"cogentcore.org/nodes/math32"
)

var (
	// ErrConnectionExists is returned when adding a connection that is already present.
	ErrConnectionExists = errors.New("graph: connection already exists")

	// ErrConnectionNotPossible is returned when adding a connection whose
	// nodes or ports do not exist, or whose input port is already taken.
	ErrConnectionNotPossible = errors.New("graph: connection not possible")

	// ErrInvalidNodeID is returned when adding a node with [InvalidNodeID].
	ErrInvalidNodeID = errors.New("graph: invalid node id")
)

// basicNode is the data stored for one node of a [Basic] model.
type basicNode struct {
	typ            string
	caption        string
	captionVisible bool
	position       math32.Vector2
	size           math32.Vector2
	inPorts        uint
	outPorts       uint
	style          any
	widget         any
}

// Basic is an in-memory [Model]. Every node has a configurable number of
// input and output ports; input ports accept one connection, output
// ports any number. It is not safe for concurrent use: like the scene
// observing it, it lives on a single goroutine.
type Basic struct {
	nodes       map[NodeID]*basicNode
	connections map[ConnectionID]struct{}
	nextID      NodeID
	listeners   Listeners

	// muted suppresses notifications while a [Basic.Reset] is running.
	muted bool
}

var _ Model = (*Basic)(nil)

// NewBasic returns a new empty [Basic] model.
func NewBasic() *Basic {
	return &Basic{
		nodes:       make(map[NodeID]*basicNode),
		connections: make(map[ConnectionID]struct{}),
	}
}

func (m *Basic) emit(ev Event) {
	if m.muted {
		return
	}
	slog.Debug("graph: notify", "event", ev.String())
	m.listeners.Call(ev)
}

// OnChange adds a listener for the given notification type.
func (m *Basic) OnChange(typ Types, fun func(ev Event)) {
	m.listeners.Add(typ, fun)
}

// NewNodeID returns an id that is not used by any node.
func (m *Basic) NewNodeID() NodeID {
	for {
		id := m.nextID
		m.nextID++
		if _, has := m.nodes[id]; !has && id != InvalidNodeID {
			return id
		}
	}
}

// AddNode adds a node of the given type, with one input and one output
// port and the type as caption, and returns its new id.
func (m *Basic) AddNode(typ string) NodeID {
	id := m.NewNodeID()
	m.AddNodeWithID(id, typ)
	return id
}

// AddNodeWithID adds a node with the given id, as in [Basic.AddNode].
// An existing node with the same id is replaced, along with its connections.
// [InvalidNodeID] is rejected with [ErrInvalidNodeID] and nothing is added.
func (m *Basic) AddNodeWithID(id NodeID, typ string) error {
	if id == InvalidNodeID {
		return fmt.Errorf("add node: %w", ErrInvalidNodeID)
	}
	if _, has := m.nodes[id]; has {
		m.DeleteNode(id)
	}
	m.nodes[id] = &basicNode{typ: typ, caption: typ, captionVisible: true, inPorts: 1, outPorts: 1}
	if id >= m.nextID {
		m.nextID = id + 1
	}
	m.emit(Event{Type: NodeCreated, NodeID: id})
	return nil
}

// AllNodeIDs returns the set of all node ids.
func (m *Basic) AllNodeIDs() map[NodeID]struct{} {
	ids := make(map[NodeID]struct{}, len(m.nodes))
	for id := range m.nodes {
		ids[id] = struct{}{}
	}
	return ids
}

// NodeExists returns whether the given node is in the model.
func (m *Basic) NodeExists(id NodeID) bool {
	_, has := m.nodes[id]
	return has
}

// Connections returns the set of connections attached to the given port.
func (m *Basic) Connections(id NodeID, pt PortType, index PortIndex) map[ConnectionID]struct{} {
	res := make(map[ConnectionID]struct{})
	for c := range m.connections {
		if NodeIDOf(pt, c) == id && PortIndexOf(pt, c) == index {
			res[c] = struct{}{}
		}
	}
	return res
}

// AllConnectionIDs returns the set of connections attached to any port of the given node.
func (m *Basic) AllConnectionIDs(id NodeID) map[ConnectionID]struct{} {
	res := make(map[ConnectionID]struct{})
	for c := range m.connections {
		if c.OutNodeID == id || c.InNodeID == id {
			res[c] = struct{}{}
		}
	}
	return res
}

// ConnectionExists returns whether the given connection is in the model.
func (m *Basic) ConnectionExists(c ConnectionID) bool {
	_, has := m.connections[c]
	return has
}

// ConnectionPossible returns whether the given connection could be added:
// it must be complete, both ports must exist, it must not already be
// present, and a port with [PolicyOne] must not already be connected.
func (m *Basic) ConnectionPossible(c ConnectionID) bool {
	if !IsComplete(c) || m.ConnectionExists(c) {
		return false
	}
	out, ok := m.nodes[c.OutNodeID]
	if !ok || uint(c.OutPortIndex) >= out.outPorts {
		return false
	}
	in, ok := m.nodes[c.InNodeID]
	if !ok || uint(c.InPortIndex) >= in.inPorts {
		return false
	}
	vacant := func(pt PortType) bool {
		id, index := NodeIDOf(pt, c), PortIndexOf(pt, c)
		policy, _ := m.PortData(id, pt, index, PortRoleConnectionPolicy).(ConnectionPolicy)
		return policy == PolicyMany || len(m.Connections(id, pt, index)) == 0
	}
	return vacant(PortOut) && vacant(PortIn)
}

// AddConnection adds the given connection.
func (m *Basic) AddConnection(c ConnectionID) error {
	if m.ConnectionExists(c) {
		return fmt.Errorf("add connection %v: %w", c, ErrConnectionExists)
	}
	if !m.ConnectionPossible(c) {
		return fmt.Errorf("add connection %v: %w", c, ErrConnectionNotPossible)
	}
	m.connections[c] = struct{}{}
	m.emit(Event{Type: ConnectionCreated, ConnectionID: c})
	return nil
}

// DeleteConnection removes the given connection, returning false
// if it is not present.
func (m *Basic) DeleteConnection(c ConnectionID) bool {
	if _, has := m.connections[c]; !has {
		return false
	}
	delete(m.connections, c)
	m.emit(Event{Type: ConnectionDeleted, ConnectionID: c})
	return true
}

// DeleteNode removes the node, after removing each of its connections.
func (m *Basic) DeleteNode(id NodeID) bool {
	if _, has := m.nodes[id]; !has {
		return false
	}
	for c := range m.AllConnectionIDs(id) {
		m.DeleteConnection(c)
	}
	delete(m.nodes, id)
	m.emit(Event{Type: NodeDeleted, NodeID: id})
	return true
}

// NodeData returns the data for the given role of the given node.
func (m *Basic) NodeData(id NodeID, role NodeRole) (any, error) {
	n, ok := m.nodes[id]
	if !ok {
		return nil, fmt.Errorf("node %d: %w", id, ErrNodeNotFound)
	}
	switch role {
	case RoleType:
		return n.typ, nil
	case RolePosition:
		return n.position, nil
	case RoleSize:
		return n.size, nil
	case RoleCaption:
		return n.caption, nil
	case RoleCaptionVisible:
		return n.captionVisible, nil
	case RoleStyle:
		return n.style, nil
	case RoleInPortCount:
		return n.inPorts, nil
	case RoleOutPortCount:
		return n.outPorts, nil
	case RoleWidget:
		return n.widget, nil
	}
	return nil, nil
}

// SetNodeData sets the data for the given role of the given node.
// Setting [RolePosition] emits [NodePositionUpdated]; other roles emit
// [NodeUpdated]. Reducing a port count first deletes the connections
// on the removed ports.
func (m *Basic) SetNodeData(id NodeID, role NodeRole, value any) bool {
	n, ok := m.nodes[id]
	if !ok {
		return false
	}
	switch role {
	case RolePosition:
		pos, ok := value.(math32.Vector2)
		if !ok {
			return false
		}
		n.position = pos
		m.emit(Event{Type: NodePositionUpdated, NodeID: id})
		return true
	case RoleType:
		s, ok := value.(string)
		if !ok {
			return false
		}
		n.typ = s
	case RoleSize:
		sz, ok := value.(math32.Vector2)
		if !ok {
			return false
		}
		n.size = sz
	case RoleCaption:
		s, ok := value.(string)
		if !ok {
			return false
		}
		n.caption = s
	case RoleCaptionVisible:
		b, ok := value.(bool)
		if !ok {
			return false
		}
		n.captionVisible = b
	case RoleStyle:
		n.style = value
	case RoleWidget:
		n.widget = value
	case RoleInPortCount, RoleOutPortCount:
		cnt, ok := value.(uint)
		if !ok {
			return false
		}
		pt := PortIn
		if role == RoleOutPortCount {
			pt = PortOut
		}
		for c := range m.AllConnectionIDs(id) {
			if NodeIDOf(pt, c) == id && uint(PortIndexOf(pt, c)) >= cnt {
				m.DeleteConnection(c)
			}
		}
		if pt == PortIn {
			n.inPorts = cnt
		} else {
			n.outPorts = cnt
		}
	default:
		return false
	}
	m.emit(Event{Type: NodeUpdated, NodeID: id})
	return true
}

// PortData returns the data for the given role of the given port.
// Input ports have [PolicyOne] and output ports [PolicyMany].
func (m *Basic) PortData(id NodeID, pt PortType, index PortIndex, role PortRole) any {
	if !m.NodeExists(id) {
		return nil
	}
	switch role {
	case PortRoleConnectionPolicy:
		if pt == PortIn {
			return PolicyOne
		}
		return PolicyMany
	case PortRoleCaptionVisible:
		return false
	case PortRoleCaption:
		return fmt.Sprintf("%s %d", pt, index)
	}
	return nil
}

// Reset runs the given function to mutate the model without emitting
// individual notifications, and then emits a single [ModelReset].
func (m *Basic) Reset(fun func(m *Basic)) {
	m.muted = true
	if fun != nil {
		fun(m)
	}
	m.muted = false
	m.emit(Event{Type: ModelReset})
}

// Clear removes all nodes and connections, emitting a single [ModelReset].
func (m *Basic) Clear() {
	m.Reset(func(m *Basic) {
		clear(m.nodes)
		clear(m.connections)
	})
}

// NodeCount returns the number of nodes.
func (m *Basic) NodeCount() int {
	return len(m.nodes)
}

// ConnectionCount returns the number of connections.
func (m *Basic) ConnectionCount() int {
	return len(m.connections)
}
