// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package graph defines the graph model that a node scene visualizes:
// node and connection identifiers, the [Model] interface used to query
// and mutate topology and per-node data, and the change notifications
// a model emits. [Basic] is an in-memory implementation.
package graph

import (
	"fmt"

	"cogentcore.org/nodes/base/errors"
	"cogentcore.org/nodes/math32"
)

// ErrNodeNotFound is returned for operations on a node id that is not in the model.
var ErrNodeNotFound = errors.New("graph: node not found")

// Model is the graph data model. It owns the topology and node data,
// and notifies subscribers of every change, synchronously and in order,
// on the goroutine that made the change.
type Model interface {

	// AllNodeIDs returns the set of all node ids. The returned
	// set is owned by the caller.
	AllNodeIDs() map[NodeID]struct{}

	// NodeExists returns whether the given node is in the model.
	NodeExists(id NodeID) bool

	// Connections returns the set of connections attached to the
	// given port. The returned set is owned by the caller.
	Connections(id NodeID, pt PortType, index PortIndex) map[ConnectionID]struct{}

	// AllConnectionIDs returns the set of connections attached to any
	// port of the given node. The returned set is owned by the caller.
	AllConnectionIDs(id NodeID) map[ConnectionID]struct{}

	// ConnectionExists returns whether the given connection is in the model.
	ConnectionExists(c ConnectionID) bool

	// NodeData returns the data for the given role of the given node.
	// It returns an error wrapping [ErrNodeNotFound] for an unknown node.
	NodeData(id NodeID, role NodeRole) (any, error)

	// SetNodeData sets the data for the given role of the given node,
	// returning false if the node is unknown or the role is read-only.
	SetNodeData(id NodeID, role NodeRole, value any) bool

	// PortData returns the data for the given role of the given port.
	PortData(id NodeID, pt PortType, index PortIndex, role PortRole) any

	// DeleteNode removes the node and all of its connections,
	// returning false if the node is unknown.
	DeleteNode(id NodeID) bool

	// OnChange adds a listener for the given notification type.
	OnChange(typ Types, fun func(ev Event))
}

// PortCount returns the number of ports of the given type on the given node.
func PortCount(m Model, id NodeID, pt PortType) (uint, error) {
	role := RoleOutPortCount
	if pt == PortIn {
		role = RoleInPortCount
	}
	v, err := m.NodeData(id, role)
	if err != nil {
		return 0, err
	}
	switch n := v.(type) {
	case uint:
		return n, nil
	case uint32:
		return uint(n), nil
	case int:
		if n >= 0 {
			return uint(n), nil
		}
	case nil:
		return 0, nil
	}
	return 0, fmt.Errorf("graph: node %d: %v is %T, not a port count", id, role, v)
}

// Position returns the scene position of the given node.
func Position(m Model, id NodeID) (math32.Vector2, error) {
	v, err := m.NodeData(id, RolePosition)
	if err != nil {
		return math32.Vector2{}, err
	}
	pos, _ := v.(math32.Vector2)
	return pos, nil
}

// Caption returns the caption of the given node, or "" if its caption
// is hidden.
func Caption(m Model, id NodeID) (string, error) {
	vis, err := m.NodeData(id, RoleCaptionVisible)
	if err != nil {
		return "", err
	}
	if b, ok := vis.(bool); ok && !b {
		return "", nil
	}
	v, err := m.NodeData(id, RoleCaption)
	if err != nil {
		return "", err
	}
	s, _ := v.(string)
	return s, nil
}
