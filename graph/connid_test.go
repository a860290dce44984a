// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package graph

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConnectionID(t *testing.T) {
	c := ConnectionID{1, 0, 2, 3}
	assert.Equal(t, NodeID(1), NodeIDOf(PortOut, c))
	assert.Equal(t, NodeID(2), NodeIDOf(PortIn, c))
	assert.Equal(t, InvalidNodeID, NodeIDOf(PortNone, c))
	assert.Equal(t, PortIndex(3), PortIndexOf(PortIn, c))
	assert.True(t, IsComplete(c))
	assert.Equal(t, PortNone, RequiredPort(c))
	assert.Equal(t, "(1, 0) -> (2, 3)", c.String())

	m := map[ConnectionID]int{c: 1}
	assert.Equal(t, 1, m[ConnectionID{1, 0, 2, 3}])
	assert.NotContains(t, m, ConnectionID{1, 0, 2, 2})
}

func TestMakeIncomplete(t *testing.T) {
	c := MakeIncomplete(4, PortOut, 1)
	assert.False(t, IsComplete(c))
	assert.Equal(t, PortIn, RequiredPort(c))
	assert.Equal(t, "(4, 1) -> (?, ?)", c.String())

	c = SetEnd(c, PortIn, 5, 0)
	assert.True(t, IsComplete(c))
	assert.Equal(t, ConnectionID{4, 1, 5, 0}, c)

	assert.Equal(t, PortOut, RequiredPort(MakeIncomplete(2, PortIn, 0)))
	assert.Equal(t, PortIn, OppositePort(PortOut))
	assert.Equal(t, PortNone, OppositePort(PortNone))
}

func TestTypesString(t *testing.T) {
	assert.Equal(t, "NodeCreated", NodeCreated.String())
	assert.Equal(t, "ModelReset", ModelReset.String())
	assert.Equal(t, "Types(99)", Types(99).String())
	assert.Equal(t, "OutPortCount", RoleOutPortCount.String())
	assert.Equal(t, "ModelReset", Event{Type: ModelReset}.String())
	assert.Equal(t, "NodeDeleted 3", Event{Type: NodeDeleted, NodeID: 3}.String())
}

func TestSortedIDs(t *testing.T) {
	set := map[ConnectionID]struct{}{
		{2, 0, 1, 0}: {},
		{1, 1, 3, 0}: {},
		{1, 0, 3, 1}: {},
		{1, 0, 2, 0}: {},
	}
	assert.Equal(t, []ConnectionID{{1, 0, 2, 0}, {1, 0, 3, 1}, {1, 1, 3, 0}, {2, 0, 1, 0}}, SortedConnectionIDs(set))
	assert.Equal(t, []NodeID{1, 5, 9}, SortedNodeIDs(map[NodeID]struct{}{9: {}, 1: {}, 5: {}}))
}
