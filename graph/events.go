// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package graph

import "fmt"

// Types is the type of a change notification emitted by a [Model].
type Types int32

const (
	// UnknownType is the zero value.
	UnknownType Types = iota

	// NodeCreated is sent after a node has been added. [Event.NodeID] is set.
	NodeCreated

	// NodeDeleted is sent after a node has been removed, and after
	// a [ConnectionDeleted] for each of its connections. [Event.NodeID] is set.
	NodeDeleted

	// NodeUpdated is sent after node data other than its position
	// has changed (caption, port counts, style). [Event.NodeID] is set.
	NodeUpdated

	// NodePositionUpdated is sent after the position of a node has
	// changed. [Event.NodeID] is set.
	NodePositionUpdated

	// ConnectionCreated is sent after a connection has been added.
	// [Event.ConnectionID] is set.
	ConnectionCreated

	// ConnectionDeleted is sent after a connection has been removed.
	// [Event.ConnectionID] is set.
	ConnectionDeleted

	// ModelReset is sent after the model has changed in a way that is
	// not described by the other notifications, and everything derived
	// from it must be rebuilt.
	ModelReset

	typesN
)

var typesNames = [...]string{"UnknownType", "NodeCreated", "NodeDeleted", "NodeUpdated", "NodePositionUpdated", "ConnectionCreated", "ConnectionDeleted", "ModelReset"}

func (tp Types) String() string {
	if tp < 0 || tp >= typesN {
		return fmt.Sprintf("Types(%d)", int32(tp))
	}
	return typesNames[tp]
}

// TypesValues returns all the notification types, excluding [UnknownType].
func TypesValues() []Types {
	return []Types{NodeCreated, NodeDeleted, NodeUpdated, NodePositionUpdated, ConnectionCreated, ConnectionDeleted, ModelReset}
}

// Event is one change notification.
type Event struct {
	Type         Types
	NodeID       NodeID
	ConnectionID ConnectionID
}

func (ev Event) String() string {
	switch ev.Type {
	case ConnectionCreated, ConnectionDeleted:
		return ev.Type.String() + " " + ev.ConnectionID.String()
	case ModelReset:
		return ev.Type.String()
	}
	return fmt.Sprintf("%s %d", ev.Type, ev.NodeID)
}

// Listeners registers lists of listener functions
// to receive different notification types.
// Listeners are closures with all context captured.
type Listeners map[Types][]func(ev Event)

// Init ensures that map is constructed
func (ls *Listeners) Init() {
	if *ls != nil {
		return
	}
	*ls = make(map[Types][]func(Event))
}

// Add adds a function for given type
func (ls *Listeners) Add(typ Types, fun func(Event)) {
	ls.Init()
	(*ls)[typ] = append((*ls)[typ], fun)
}

// Call calls all functions for the given event, synchronously and in
// the order they were added, so that notifications are seen in the
// order the model emits them.
func (ls Listeners) Call(ev Event) {
	for _, fun := range ls[ev.Type] {
		fun(ev)
	}
}
