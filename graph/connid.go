// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package graph

import (
	"cmp"
	"maps"
	"slices"
)

// NodeIDOf returns the node on the given side of the connection.
func NodeIDOf(pt PortType, c ConnectionID) NodeID {
	switch pt {
	case PortOut:
		return c.OutNodeID
	case PortIn:
		return c.InNodeID
	}
	return InvalidNodeID
}

// PortIndexOf returns the port index on the given side of the connection.
func PortIndexOf(pt PortType, c ConnectionID) PortIndex {
	switch pt {
	case PortOut:
		return c.OutPortIndex
	case PortIn:
		return c.InPortIndex
	}
	return InvalidPortIndex
}

// SetEnd returns a copy of c with the given side bound to the given node and port.
func SetEnd(c ConnectionID, pt PortType, id NodeID, index PortIndex) ConnectionID {
	switch pt {
	case PortOut:
		c.OutNodeID = id
		c.OutPortIndex = index
	case PortIn:
		c.InNodeID = id
		c.InPortIndex = index
	}
	return c
}

// MakeIncomplete returns the id of a draft connection that is bound on the
// given side to the given node and port, with the other side unbound.
func MakeIncomplete(id NodeID, pt PortType, index PortIndex) ConnectionID {
	c := ConnectionID{InvalidNodeID, InvalidPortIndex, InvalidNodeID, InvalidPortIndex}
	return SetEnd(c, pt, id, index)
}

// IsComplete returns whether both ends of the connection are bound.
func IsComplete(c ConnectionID) bool {
	return c.OutNodeID != InvalidNodeID && c.InNodeID != InvalidNodeID &&
		c.OutPortIndex != InvalidPortIndex && c.InPortIndex != InvalidPortIndex
}

// RequiredPort returns the side of an incomplete connection that still
// needs to be bound, or [PortNone] if it is complete or fully unbound.
func RequiredPort(c ConnectionID) PortType {
	outBound := c.OutNodeID != InvalidNodeID
	inBound := c.InNodeID != InvalidNodeID
	switch {
	case outBound && !inBound:
		return PortIn
	case inBound && !outBound:
		return PortOut
	}
	return PortNone
}

// CompareConnectionIDs orders connections by out node, out port,
// in node and then in port.
func CompareConnectionIDs(a, b ConnectionID) int {
	return cmp.Or(
		cmp.Compare(a.OutNodeID, b.OutNodeID),
		cmp.Compare(a.OutPortIndex, b.OutPortIndex),
		cmp.Compare(a.InNodeID, b.InNodeID),
		cmp.Compare(a.InPortIndex, b.InPortIndex),
	)
}

// SortedConnectionIDs returns the connections of the given set in
// [CompareConnectionIDs] order.
func SortedConnectionIDs(set map[ConnectionID]struct{}) []ConnectionID {
	return slices.SortedFunc(maps.Keys(set), CompareConnectionIDs)
}

// SortedNodeIDs returns the nodes of the given set in ascending order.
func SortedNodeIDs(set map[NodeID]struct{}) []NodeID {
	return slices.Sorted(maps.Keys(set))
}
