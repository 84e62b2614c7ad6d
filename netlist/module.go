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

package netlist

import (
	"fmt"
	"hash/fnv"
	"strconv"
	"strings"

	"github.com/hdlkit/wiresorts/sorts"
)

// Module exposes two disjoint, named boundary wire sets; its internal wiring
// is private to it. A module is open while its body is being elaborated and
// sealed afterwards; sorts exist only on sealed modules.
//
// The supermodule reference is a lookup handle only. The scope owns all
// modules.
type Module struct {
	name    string
	defName string
	scope   *Scope
	inputs  []*Wire
	outputs []*Wire
	byName  map[string]*Wire
	subs    []*Module
	super   *Module
	sealed  bool
	shape   string
}

// Name returns the module's instance name, unique within its enclosing scope.
func (m *Module) Name() string { return m.name }

// DefName returns the name of the module definition this instance was built
// from. Instances of the same definition share it.
func (m *Module) DefName() string { return m.defName }

// Scope returns the netlist scope containing the module's wiring.
func (m *Module) Scope() *Scope { return m.scope }

// Sealed reports whether the module's definition is complete.
func (m *Module) Sealed() bool { return m.sealed }

// Inputs returns the module's input boundary wires in declaration order.
func (m *Module) Inputs() []*Wire { return m.inputs }

// Outputs returns the module's output boundary wires in declaration order.
func (m *Module) Outputs() []*Wire { return m.outputs }

// Submodules returns the modules defined inside m.
func (m *Module) Submodules() []*Module { return m.subs }

// Supermodule returns the enclosing module, or nil for a top-level module.
func (m *Module) Supermodule() *Module { return m.super }

// Input returns the input boundary wire declared with the given name.
func (m *Module) Input(name string) (*Wire, bool) {
	w, ok := m.byName[name]
	if !ok || w.kind != ModInput {
		return nil, false
	}
	return w, true
}

// Output returns the output boundary wire declared with the given name.
func (m *Module) Output(name string) (*Wire, bool) {
	w, ok := m.byName[name]
	if !ok || w.kind != ModOutput {
		return nil, false
	}
	return w, true
}

// Wire returns the boundary wire declared with the given name, or a
// descriptive error when no such wire exists.
func (m *Module) Wire(name string) (*Wire, error) {
	if w, ok := m.byName[name]; ok {
		return w, nil
	}
	return nil, fmt.Errorf(
		"module %q has no boundary wire named %q; boundary wires must be "+
			"declared with DeclareInput or DeclareOutput on the module that owns them",
		m.name, name)
}

func (m *Module) declare(width int, name string, kind WireKind, asc sorts.Ascription) (*Wire, error) {
	if m.sealed {
		return nil, fmt.Errorf("cannot declare %q on sealed module %q", name, m.name)
	}
	if m.scope.openModule() != m {
		return nil, fmt.Errorf("cannot declare %q: module %q is not the innermost open module", name, m.name)
	}
	if name == "" {
		return nil, fmt.Errorf("must supply a non-empty name for a boundary wire of module %q", m.name)
	}
	if _, ok := m.byName[name]; ok {
		return nil, fmt.Errorf("module %q already declares a boundary wire named %q", m.name, name)
	}
	w := m.scope.addWire(width, name, kind)
	w.asc = asc
	m.byName[name] = w
	return w, nil
}

// DeclareInput adds an input boundary wire to the open module. The optional
// ascription is validated against the computed sort when the module seals.
func (m *Module) DeclareInput(width int, name string, asc sorts.Ascription) (*Wire, error) {
	if err := sorts.CheckInputAscription(asc, name); err != nil {
		return nil, err
	}
	w, err := m.declare(width, name, ModInput, asc)
	if err != nil {
		return nil, err
	}
	m.inputs = append(m.inputs, w)
	return w, nil
}

// DeclareOutput adds an output boundary wire to the open module.
func (m *Module) DeclareOutput(width int, name string, asc sorts.Ascription) (*Wire, error) {
	if err := sorts.CheckOutputAscription(asc, name); err != nil {
		return nil, err
	}
	w, err := m.declare(width, name, ModOutput, asc)
	if err != nil {
		return nil, err
	}
	m.outputs = append(m.outputs, w)
	return w, nil
}

// CheckBoundary verifies the boundary-connectivity invariants: every declared
// input is read by at least one internal net, and every declared output is
// driven by exactly one internal net. It must pass before sort inference.
func (m *Module) CheckBoundary() error {
	for _, w := range m.inputs {
		if len(m.scope.ConsumersOf(w)) == 0 {
			return fmt.Errorf(
				"invalid module %q: input %q is not connected to any internal logic",
				m.name, w.name)
		}
	}
	for _, w := range m.outputs {
		if _, ok := m.scope.DriverOf(w); !ok {
			return fmt.Errorf(
				"invalid module %q: output %q is not connected to any internal logic",
				m.name, w.name)
		}
	}
	return nil
}

// ShapeKey identifies the module's structural shape for sort-cache reuse.
// The key combines the definition name with a fingerprint of the internal net
// topology, so same-named definitions that differ structurally (for example
// through width parameters) do not collide.
func (m *Module) ShapeKey() string {
	if m.sealed && m.shape != "" {
		return m.shape
	}
	key := m.defName + ":" + strconv.FormatUint(m.fingerprint(), 16)
	if m.sealed {
		m.shape = key
	}
	return key
}

// fingerprint hashes the module's internal net topology: operators, operator
// parameters, and for every touched wire its kind, width and position in a
// local first-appearance numbering. Boundary wires of the module contribute
// their declared names, which makes name-based remapping of cached sorts
// sound. Wires of other modules contribute their own module's shape.
func (m *Module) fingerprint() uint64 {
	h := fnv.New64a()
	local := make(map[*Wire]int)
	writeInt := func(v int) {
		h.Write([]byte(strconv.Itoa(v)))
		h.Write([]byte{'|'})
	}
	writeStr := func(s string) {
		h.Write([]byte(s))
		h.Write([]byte{'|'})
	}
	writeWire := func(w *Wire) {
		num, ok := local[w]
		if !ok {
			num = len(local)
			local[w] = num
		}
		writeInt(num)
		writeInt(int(w.kind))
		writeInt(w.width)
		switch {
		case w.owner == m && w.kind.IsBoundary():
			writeStr(w.name)
		case w.owner != nil && w.owner != m:
			writeStr(w.owner.ShapeKey())
			writeStr(w.name)
		}
	}
	for _, n := range m.scope.nets {
		if n.owner != m {
			continue
		}
		writeInt(int(n.op))
		if n.mem != nil {
			if n.mem.async {
				writeInt(1)
			} else {
				writeInt(0)
			}
		}
		for _, b := range n.bits {
			writeInt(b)
		}
		if n.dest != nil {
			writeWire(n.dest)
		}
		for _, a := range n.args {
			writeWire(a)
		}
	}
	return h.Sum64()
}

// String renders the module with the sorts of its boundary wires, as far as
// they have been computed.
func (m *Module) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Module %q (%s)\n", m.name, m.defName)
	sb.WriteString("  Inputs:\n")
	for _, w := range m.inputs {
		fmt.Fprintf(&sb, "    %s: %s\n", w.name, sortString(w.sort))
	}
	sb.WriteString("  Outputs:\n")
	for _, w := range m.outputs {
		fmt.Fprintf(&sb, "    %s: %s\n", w.name, sortString(w.sort))
	}
	return sb.String()
}

func sortString(s sorts.Sort) string {
	if s == nil {
		return "(unannotated)"
	}
	return s.String()
}
