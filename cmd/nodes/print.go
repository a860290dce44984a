// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"

	"cogentcore.org/nodes/base/errors"
	"cogentcore.org/nodes/graph"
	"cogentcore.org/nodes/nodes"
	"github.com/muesli/termenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
)

// printScene writes the laid out node and connection visuals of the
// scene to w, styled for the terminal behind w if there is one.
func printScene(w io.Writer, sc *nodes.Scene) {
	out := termenv.NewOutput(w)
	head := func(s string) string {
		return out.String(s).Bold().String()
	}
	id := func(s string) string {
		return out.String(s).Foreground(out.Color("6")).String()
	}
	faint := func(s string) string {
		return out.String(s).Faint().String()
	}

	geom := sc.Geometry()
	fmt.Fprintf(w, "%s %s, %d nodes, %d connections\n", head("scene"), sc.Orientation(), sc.NodeCount(), sc.ConnectionCount())
	for _, n := range sc.NodeObjects() {
		caption := errors.Log1(graph.Caption(sc.Model(), n.ID))
		fmt.Fprintf(w, "  %s %-12q at %v size %v\n", id(fmt.Sprintf("node %d", n.ID)), caption, n.Pos, geom.Size(n.ID))
		for _, pt := range []graph.PortType{graph.PortIn, graph.PortOut} {
			cnt := errors.Log1(graph.PortCount(sc.Model(), n.ID, pt))
			for i := range cnt {
				idx := graph.PortIndex(i)
				fmt.Fprintf(w, "    %s %v\n", faint(fmt.Sprintf("%s %d", pt, idx)), n.PortScenePosition(pt, idx))
			}
		}
	}
	for _, c := range sc.ConnectionObjects() {
		fmt.Fprintf(w, "  %s %v %s %v\n", id(c.ID.String()), c.End(graph.PortOut), faint("->"), c.End(graph.PortIn))
	}
	bb := sc.BoundingBox()
	if !bb.IsEmpty() {
		fmt.Fprintf(w, "%s %v %v\n", head("bounds"), bb.Min, bb.Max)
	}
}

// printMetrics writes the metrics gathered from g to w
// in the prometheus text format.
func printMetrics(w io.Writer, g prometheus.Gatherer) error {
	mfs, err := g.Gather()
	if err != nil {
		return err
	}
	for _, mf := range mfs {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return err
		}
	}
	return nil
}
