// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"cogentcore.org/nodes/graph"
	"cogentcore.org/nodes/math32"
	"cogentcore.org/nodes/nodes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testModel = `
nodes:
  - id: 1
    type: source
    position: [0, 0]
    out: 2
  - id: 2
    type: sink
    caption: Sink
    position: [200, 0]
connections:
  - out: [1, 0]
    in: [2, 0]
  - out: [1, 1]
    in: [2, 0]
`

func writeModel(t *testing.T, content string) string {
	fn := filepath.Join(t.TempDir(), "model.yaml")
	require.NoError(t, os.WriteFile(fn, []byte(content), 0o644))
	return fn
}

func TestModelFile(t *testing.T) {
	mf, err := openModelFile(writeModel(t, testModel))
	require.NoError(t, err)
	require.Len(t, mf.Nodes, 2)

	m := graph.NewBasic()
	resets := 0
	m.OnChange(graph.ModelReset, func(ev graph.Event) { resets++ })
	// the second connection takes an input port that is already used
	assert.ErrorIs(t, mf.load(m), graph.ErrConnectionNotPossible)
	assert.Equal(t, 1, resets)
	assert.Equal(t, 2, m.NodeCount())
	assert.Equal(t, 1, m.ConnectionCount())

	caption, err := graph.Caption(m, 2)
	require.NoError(t, err)
	assert.Equal(t, "Sink", caption)
	pos, err := graph.Position(m, 2)
	require.NoError(t, err)
	assert.Equal(t, math32.Vec2(200, 0), pos)
	outs, err := graph.PortCount(m, 1, graph.PortOut)
	require.NoError(t, err)
	assert.Equal(t, uint(2), outs)

	// loading again replaces everything
	empty, err := openModelFile(writeModel(t, ""))
	require.NoError(t, err)
	require.NoError(t, empty.load(m))
	assert.Equal(t, 0, m.NodeCount())
	assert.Equal(t, 2, resets)
}

func TestModelFileUnknownField(t *testing.T) {
	_, err := openModelFile(writeModel(t, "nodes:\n  - id: 1\n    colour: red\n"))
	assert.Error(t, err)
}

func TestModelFileInvalidNodeID(t *testing.T) {
	mf, err := openModelFile(writeModel(t, "nodes:\n  - id: 4294967295\n    type: bad\n  - id: 1\n    type: ok\n"))
	require.NoError(t, err)
	m := graph.NewBasic()
	assert.ErrorIs(t, mf.load(m), graph.ErrInvalidNodeID)
	assert.Equal(t, 1, m.NodeCount())
	assert.True(t, m.NodeExists(1))
}

func TestPrintScene(t *testing.T) {
	mf, err := openModelFile(writeModel(t, testModel))
	require.NoError(t, err)
	m := graph.NewBasic()
	mf.load(m)
	sc, err := nodes.NewScene(m)
	require.NoError(t, err)

	var b bytes.Buffer
	printScene(&b, sc)
	out := b.String()
	assert.Contains(t, out, "scene Horizontal, 2 nodes, 1 connections")
	assert.Contains(t, out, `node 2 "Sink"`)
	assert.Contains(t, out, "(1, 0) -> (2, 0) (60, 36) -> (200, 36)")
}

func TestRootCmd(t *testing.T) {
	fn := writeModel(t, testModel)
	settings := filepath.Join(t.TempDir(), "settings.toml")
	require.NoError(t, nodes.SaveSettings(settings, nodes.DefaultSettings()))

	cmd := rootCmd()
	var b bytes.Buffer
	cmd.SetOut(&b)
	cmd.SetArgs([]string{"--settings", settings, "-q", "--orientation", "vertical", fn})
	require.NoError(t, cmd.Execute())
	assert.Contains(t, b.String(), "scene Vertical")

	cmd = rootCmd()
	b.Reset()
	cmd.SetOut(&b)
	cmd.SetArgs([]string{"--settings", settings, "settings"})
	require.NoError(t, cmd.Execute())
	assert.Contains(t, b.String(), "orientation = 'Horizontal'")

	cmd = rootCmd()
	cmd.SetOut(&b)
	cmd.SetErr(&b)
	cmd.SetArgs([]string{"--orientation", "diagonal", fn})
	assert.Error(t, cmd.Execute())
}

func TestRootCmdMetrics(t *testing.T) {
	fn := writeModel(t, testModel)
	settings := filepath.Join(t.TempDir(), "settings.toml")
	require.NoError(t, nodes.SaveSettings(settings, nodes.DefaultSettings()))

	cmd := rootCmd()
	var b bytes.Buffer
	cmd.SetOut(&b)
	cmd.SetArgs([]string{"--settings", settings, "-q", "--metrics", fn})
	require.NoError(t, cmd.Execute())
	out := b.String()
	assert.Contains(t, out, "scene Horizontal, 2 nodes, 1 connections")
	assert.Contains(t, out, "nodes_scene_node_objects 2")
	assert.Contains(t, out, "nodes_scene_connection_objects 1")
	assert.Contains(t, out, "# TYPE nodes_scene_populate_duration_seconds histogram")

	cmd = rootCmd()
	b.Reset()
	cmd.SetOut(&b)
	cmd.SetArgs([]string{"--settings", settings, "-q", fn})
	require.NoError(t, cmd.Execute())
	assert.NotContains(t, b.String(), "nodes_scene_node_objects")
}
