// Copyright (c) 2021, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package undo provides a command based undo / redo stack.
// Each [Command] knows how to apply and revert one user action,
// and the [Stack] records them in order.
package undo

import (
	"log/slog"
	"sync"
)

// Command is one undoable action.
type Command interface {
	// Redo applies the action. It is called when the command is
	// first pushed, and again on every redo.
	Redo()

	// Undo reverts the action.
	Undo()

	// Text is a description of this action, for the user to see.
	Text() string
}

// Func is a [Command] built from closures.
type Func struct {
	Action   string
	DoFunc   func()
	UndoFunc func()
}

func (f *Func) Redo() {
	if f.DoFunc != nil {
		f.DoFunc()
	}
}

func (f *Func) Undo() {
	if f.UndoFunc != nil {
		f.UndoFunc()
	}
}

func (f *Func) Text() string { return f.Action }

// Stack is the undo stack, managing the undo / redo process.
// The zero value is ready to use.
type Stack struct {

	// Index is the number of commands that are currently applied.
	// The command at Index-1 is the one that will be undone if the user hits undo.
	Index int

	// Commands is the list of saved commands.
	Commands []Command

	// Limit is the maximum number of commands to retain; 0 is unlimited.
	// The oldest commands are dropped first.
	Limit int

	// clean is the Index at which the document was last marked clean,
	// or -1 if that state is no longer reachable.
	clean int

	// Mu is the mutex that protects updates.
	Mu sync.Mutex
}

// Push applies the given command and records it as the next
// command to be undone. Any commands that were undone are discarded.
func (us *Stack) Push(cmd Command) {
	cmd.Redo()
	us.Mu.Lock()
	defer us.Mu.Unlock()
	if us.Index < len(us.Commands) {
		if us.clean > us.Index {
			us.clean = -1
		}
		us.Commands = us.Commands[:us.Index]
	}
	us.Commands = append(us.Commands, cmd)
	us.Index++
	if us.Limit > 0 && len(us.Commands) > us.Limit {
		drop := len(us.Commands) - us.Limit
		us.Commands = us.Commands[drop:]
		us.Index -= drop
		us.clean -= drop
		if us.clean < 0 {
			us.clean = -1
		}
	}
	slog.Debug("undo: push", "action", cmd.Text(), "index", us.Index)
}

// CanUndo returns true if there is at least one command available to undo.
func (us *Stack) CanUndo() bool {
	us.Mu.Lock()
	defer us.Mu.Unlock()
	return us.Index > 0
}

// CanRedo returns true if there is at least one command available to redo.
func (us *Stack) CanRedo() bool {
	us.Mu.Lock()
	defer us.Mu.Unlock()
	return us.Index < len(us.Commands)
}

// Undo reverts the current command and moves the index back.
// It returns false if there is nothing to undo.
func (us *Stack) Undo() bool {
	us.Mu.Lock()
	if us.Index <= 0 {
		us.Mu.Unlock()
		return false
	}
	us.Index--
	cmd := us.Commands[us.Index]
	us.Mu.Unlock()
	cmd.Undo()
	return true
}

// Redo re-applies the next command and moves the index forward.
// It returns false if there is nothing to redo.
func (us *Stack) Redo() bool {
	us.Mu.Lock()
	if us.Index >= len(us.Commands) {
		us.Mu.Unlock()
		return false
	}
	cmd := us.Commands[us.Index]
	us.Index++
	us.Mu.Unlock()
	cmd.Redo()
	return true
}

// UndoText returns the description of the command that would be undone,
// or "" if none.
func (us *Stack) UndoText() string {
	us.Mu.Lock()
	defer us.Mu.Unlock()
	if us.Index <= 0 {
		return ""
	}
	return us.Commands[us.Index-1].Text()
}

// RedoText returns the description of the command that would be redone,
// or "" if none.
func (us *Stack) RedoText() string {
	us.Mu.Lock()
	defer us.Mu.Unlock()
	if us.Index >= len(us.Commands) {
		return ""
	}
	return us.Commands[us.Index].Text()
}

// Count returns the number of recorded commands.
func (us *Stack) Count() int {
	us.Mu.Lock()
	defer us.Mu.Unlock()
	return len(us.Commands)
}

// Clear removes all commands and marks the current state as clean.
func (us *Stack) Clear() {
	us.Mu.Lock()
	defer us.Mu.Unlock()
	us.Commands = nil
	us.Index = 0
	us.clean = 0
}

// SetClean marks the current index as the clean (saved) state.
func (us *Stack) SetClean() {
	us.Mu.Lock()
	defer us.Mu.Unlock()
	us.clean = us.Index
}

// IsClean returns whether the stack is at the clean state.
// A new stack is clean.
func (us *Stack) IsClean() bool {
	us.Mu.Lock()
	defer us.Mu.Unlock()
	return us.clean == us.Index
}
