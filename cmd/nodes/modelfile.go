// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"cogentcore.org/nodes/base/errors"
	"cogentcore.org/nodes/graph"
	"cogentcore.org/nodes/math32"
	"gopkg.in/yaml.v3"
)

// modelFile is the YAML description of a graph model.
type modelFile struct {
	Nodes       []nodeSpec       `yaml:"nodes"`
	Connections []connectionSpec `yaml:"connections"`
}

// nodeSpec is one node of a [modelFile]. Unset port counts
// keep the one input and one output port of a new node.
type nodeSpec struct {
	ID       graph.NodeID `yaml:"id"`
	Type     string       `yaml:"type"`
	Caption  *string      `yaml:"caption"`
	Hidden   bool         `yaml:"hide_caption"`
	Position [2]float32   `yaml:"position,flow"`
	Size     [2]float32   `yaml:"size,flow"`
	In       *uint        `yaml:"in"`
	Out      *uint        `yaml:"out"`
}

// connectionSpec is one connection of a [modelFile], given as
// [node, port] pairs for its output and input ends.
type connectionSpec struct {
	Out [2]uint32 `yaml:"out,flow"`
	In  [2]uint32 `yaml:"in,flow"`
}

func (c connectionSpec) id() graph.ConnectionID {
	return graph.ConnectionID{
		OutNodeID:    graph.NodeID(c.Out[0]),
		OutPortIndex: graph.PortIndex(c.Out[1]),
		InNodeID:     graph.NodeID(c.In[0]),
		InPortIndex:  graph.PortIndex(c.In[1]),
	}
}

// openModelFile reads a model file. Unknown fields are an error,
// and an empty file is an empty model.
func openModelFile(filename string) (*modelFile, error) {
	b, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	mf := &modelFile{}
	dec := yaml.NewDecoder(bytes.NewReader(b))
	dec.KnownFields(true)
	if err := dec.Decode(mf); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return mf, nil
}

// load replaces the contents of the model with the model file,
// emitting a single [graph.ModelReset]. Nodes and connections that
// cannot be added are skipped and reported in the returned error.
func (mf *modelFile) load(m *graph.Basic) error {
	var errs []error
	m.Reset(func(m *graph.Basic) {
		for id := range m.AllNodeIDs() {
			m.DeleteNode(id)
		}
		for _, ns := range mf.Nodes {
			if err := m.AddNodeWithID(ns.ID, ns.Type); err != nil {
				errs = append(errs, err)
				continue
			}
			if ns.Caption != nil {
				m.SetNodeData(ns.ID, graph.RoleCaption, *ns.Caption)
			}
			if ns.Hidden {
				m.SetNodeData(ns.ID, graph.RoleCaptionVisible, false)
			}
			m.SetNodeData(ns.ID, graph.RolePosition, math32.Vec2(ns.Position[0], ns.Position[1]))
			m.SetNodeData(ns.ID, graph.RoleSize, math32.Vec2(ns.Size[0], ns.Size[1]))
			if ns.In != nil {
				m.SetNodeData(ns.ID, graph.RoleInPortCount, *ns.In)
			}
			if ns.Out != nil {
				m.SetNodeData(ns.ID, graph.RoleOutPortCount, *ns.Out)
			}
		}
		for _, cs := range mf.Connections {
			errs = append(errs, m.AddConnection(cs.id()))
		}
	})
	return errors.Join(errs...)
}
