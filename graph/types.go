// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package graph

import (
	"fmt"
	"math"
)

// NodeID is an opaque unique identifier for a node,
// stable for the lifetime of the node in its model.
type NodeID uint32

// InvalidNodeID is the sentinel for a node that is not (yet) known,
// such as the unbound end of a draft connection.
const InvalidNodeID NodeID = math.MaxUint32

// PortIndex is the index of a port within one side of a node.
type PortIndex uint32

// InvalidPortIndex is the sentinel for a port that is not (yet) known.
const InvalidPortIndex PortIndex = math.MaxUint32

// PortType is the direction of a port.
type PortType int32

const (
	// PortNone is the port type of an unbound connection end.
	PortNone PortType = iota

	// PortIn is an input port, where connections end.
	PortIn

	// PortOut is an output port, where connections start.
	PortOut
)

func (pt PortType) String() string {
	switch pt {
	case PortIn:
		return "In"
	case PortOut:
		return "Out"
	default:
		return "None"
	}
}

// OppositePort returns the port type on the other end of a connection.
func OppositePort(pt PortType) PortType {
	switch pt {
	case PortIn:
		return PortOut
	case PortOut:
		return PortIn
	default:
		return PortNone
	}
}

// ConnectionID identifies a directed connection from an output port
// to an input port. Two connections are equal iff all four fields match,
// so it can be used directly as a map key.
type ConnectionID struct {
	OutNodeID    NodeID
	OutPortIndex PortIndex
	InNodeID     NodeID
	InPortIndex  PortIndex
}

func (c ConnectionID) String() string {
	return fmt.Sprintf("(%s, %s) -> (%s, %s)",
		idString(uint32(c.OutNodeID), uint32(InvalidNodeID)), idString(uint32(c.OutPortIndex), uint32(InvalidPortIndex)),
		idString(uint32(c.InNodeID), uint32(InvalidNodeID)), idString(uint32(c.InPortIndex), uint32(InvalidPortIndex)))
}

func idString(v, invalid uint32) string {
	if v == invalid {
		return "?"
	}
	return fmt.Sprint(v)
}

// NodeRole is the kind of per-node data queried through [Model.NodeData].
type NodeRole int32

const (
	// RoleType is the type name of the node (string).
	RoleType NodeRole = iota

	// RolePosition is the scene position of the node ([math32.Vector2]).
	RolePosition

	// RoleSize is an explicit node size ([math32.Vector2]); zero means computed.
	RoleSize

	// RoleCaption is the caption shown on the node (string).
	RoleCaption

	// RoleCaptionVisible is whether the caption is shown (bool).
	RoleCaptionVisible

	// RoleStyle is an opaque style value for painters.
	RoleStyle

	// RoleInPortCount is the number of input ports (uint).
	RoleInPortCount

	// RoleOutPortCount is the number of output ports (uint).
	RoleOutPortCount

	// RoleWidget is an opaque embedded widget value.
	RoleWidget
)

var nodeRoleNames = [...]string{"Type", "Position", "Size", "Caption", "CaptionVisible", "Style", "InPortCount", "OutPortCount", "Widget"}

func (r NodeRole) String() string {
	if r < 0 || int(r) >= len(nodeRoleNames) {
		return fmt.Sprintf("NodeRole(%d)", int32(r))
	}
	return nodeRoleNames[r]
}

// PortRole is the kind of per-port data queried through [Model.PortData].
type PortRole int32

const (
	// PortRoleData is the data value carried by the port.
	PortRoleData PortRole = iota

	// PortRoleDataType is the name of the type carried by the port (string).
	PortRoleDataType

	// PortRoleConnectionPolicy is the [ConnectionPolicy] of the port.
	PortRoleConnectionPolicy

	// PortRoleCaptionVisible is whether the port caption is shown (bool).
	PortRoleCaptionVisible

	// PortRoleCaption is the caption of the port (string).
	PortRoleCaption
)

// ConnectionPolicy is how many connections a port accepts.
type ConnectionPolicy int32

const (
	// PolicyOne allows at most one connection on the port.
	PolicyOne ConnectionPolicy = iota

	// PolicyMany allows any number of connections on the port.
	PolicyMany
)
