// The MIT License (MIT)
//
// Copyright (c) 2019 West Damron
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

// Package netlist provides the circuit substrate the sort engine operates on:
// typed wires, logic nets with driver/consumer maps, and the module boundary
// model with its open/seal lifecycle.
package netlist

import (
	"github.com/hdlkit/wiresorts/sorts"
)

// WireKind discriminates wire nodes.
type WireKind uint8

const (
	// Regular is an ordinary internal wire.
	Regular WireKind = iota
	// Const is a wire with a fixed value and no driving net.
	Const
	// Register is a clocked element; it breaks the combinational chain.
	Register
	// Input is a top-level circuit input.
	Input
	// Output is a top-level circuit output.
	Output
	// ModInput is a wire on a module's input boundary.
	ModInput
	// ModOutput is a wire on a module's output boundary.
	ModOutput
)

func (k WireKind) String() string {
	switch k {
	case Regular:
		return "Regular"
	case Const:
		return "Const"
	case Register:
		return "Register"
	case Input:
		return "Input"
	case Output:
		return "Output"
	case ModInput:
		return "ModInput"
	case ModOutput:
		return "ModOutput"
	}
	return "Unknown"
}

// IsBoundary reports whether k marks a module boundary wire.
func (k WireKind) IsBoundary() bool { return k == ModInput || k == ModOutput }

// Wire is an immutable-identity node in the netlist. Boundary wires
// additionally carry an owning module, an optional sort ascription, and a
// sort slot filled exactly once when the owning module is sealed.
type Wire struct {
	id    int
	name  string
	width int
	kind  WireKind
	owner *Module
	asc   sorts.Ascription
	sort  sorts.Sort
}

// ID returns the wire's scope-unique id.
func (w *Wire) ID() int { return w.id }

// Name returns the wire's declared name.
func (w *Wire) Name() string { return w.name }

// Width returns the wire's bit width.
func (w *Wire) Width() int { return w.width }

// Kind returns the wire's kind.
func (w *Wire) Kind() WireKind { return w.kind }

// Module returns the module the wire belongs to, or nil for wires created at
// the top level of the scope.
func (w *Wire) Module() *Module { return w.owner }

// Ascription returns the sort ascription the wire was declared with, if any.
func (w *Wire) Ascription() sorts.Ascription { return w.asc }

// Sort returns the wire's computed sort, or nil if the owning module has not
// been sealed yet (or the wire is not a boundary wire).
func (w *Wire) Sort() sorts.Sort { return w.sort }

// SetSort installs the computed sort. Only the sort annotator calls this, and
// only once per wire.
func (w *Wire) SetSort(s sorts.Sort) { w.sort = s }

// OriginalName returns the name the wire was declared with.
func (w *Wire) OriginalName() string { return w.name }

func (w *Wire) String() string { return w.name }

// QualifiedName returns the wire's name prefixed with its owning module's
// name, for use in error reports.
func (w *Wire) QualifiedName() string {
	if w.owner == nil {
		return w.name
	}
	return w.owner.Name() + "." + w.name
}
