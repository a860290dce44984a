// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package nodes

import (
	"time"

	"cogentcore.org/nodes/graph"
)

// populate makes a visual for every node and connection of the model.
// Starting from each node that has not been reached yet, in ascending
// id order, it walks the graph breadth first along output ports only,
// making the node visuals as nodes are reached and recording every
// connection found. Connection visuals are made once all node visuals
// exist. Nodes only reachable through input ports, and isolated nodes,
// are the start of a later walk.
func (sc *Scene) populate() error {
	start := time.Now()
	toVisit := sc.model.AllNodeIDs()
	visited := make(map[graph.NodeID]struct{}, len(toVisit))
	found := make(map[graph.ConnectionID]struct{})
	var connections []graph.ConnectionID

	for _, first := range graph.SortedNodeIDs(toVisit) {
		if _, ok := toVisit[first]; !ok {
			continue
		}
		delete(toVisit, first)
		queue := []graph.NodeID{first}
		for len(queue) > 0 {
			id := queue[0]
			queue = queue[1:]
			if _, done := visited[id]; done {
				continue
			}
			visited[id] = struct{}{}

			n, err := newNodeObject(sc, id)
			if err != nil {
				return err
			}
			sc.nodeObjects.Add(id, n)

			nOut, err := graph.PortCount(sc.model, id, graph.PortOut)
			if err != nil {
				return err
			}
			for i := range nOut {
				conns := sc.model.Connections(id, graph.PortOut, graph.PortIndex(i))
				for _, c := range graph.SortedConnectionIDs(conns) {
					if _, dup := found[c]; !dup {
						found[c] = struct{}{}
						connections = append(connections, c)
					}
					if _, done := visited[c.InNodeID]; !done {
						delete(toVisit, c.InNodeID)
						queue = append(queue, c.InNodeID)
					}
				}
			}
		}
	}

	for _, c := range connections {
		sc.connectionObjects.Add(c, newConnectionObject(sc, c))
	}
	sc.needsRender = true
	sc.countsChanged()
	sc.metrics.ObservePopulate(time.Since(start))
	sc.logger.Debug("scene: populated", "nodes", sc.nodeObjects.Len(), "connections", sc.connectionObjects.Len())
	return nil
}
