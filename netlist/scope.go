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
	"strconv"
)

// Scope is the netlist container for one circuit-construction session. It
// owns all wires, nets and modules, allocates wire ids, and maintains the
// derived driver and consumer maps.
//
// A scope cannot be used concurrently.
type Scope struct {
	wires     []*Wire
	nets      []*Net
	drivers   map[*Wire]*Net
	consumers map[*Wire][]*Net
	toplevel  []*Module
	open      []*Module
}

// NewScope creates an empty scope.
func NewScope() *Scope {
	return &Scope{
		drivers:   make(map[*Wire]*Net),
		consumers: make(map[*Wire][]*Net),
	}
}

func (sc *Scope) addWire(width int, name string, kind WireKind) *Wire {
	w := &Wire{
		id:    len(sc.wires),
		name:  name,
		width: width,
		kind:  kind,
		owner: sc.openModule(),
	}
	sc.wires = append(sc.wires, w)
	return w
}

// NewWire creates an ordinary internal wire. An empty name is replaced by a
// generated temporary name.
func (sc *Scope) NewWire(width int, name string) *Wire {
	if name == "" {
		name = "t" + strconv.Itoa(len(sc.wires))
	}
	return sc.addWire(width, name, Regular)
}

// NewConst creates a constant wire. Constants have no driving net.
func (sc *Scope) NewConst(width int, name string) *Wire {
	if name == "" {
		name = "c" + strconv.Itoa(len(sc.wires))
	}
	return sc.addWire(width, name, Const)
}

// NewRegister creates a register wire. Its next-cycle value is set with
// SetRegisterInput.
func (sc *Scope) NewRegister(width int, name string) *Wire {
	return sc.addWire(width, name, Register)
}

// NewInput creates a top-level circuit input.
func (sc *Scope) NewInput(width int, name string) *Wire {
	return sc.addWire(width, name, Input)
}

// NewOutput creates a top-level circuit output.
func (sc *Scope) NewOutput(width int, name string) *Wire {
	return sc.addWire(width, name, Output)
}

// WireCount returns the number of wires allocated in the scope.
func (sc *Scope) WireCount() int { return len(sc.wires) }

// Wires returns all wires in creation order.
func (sc *Scope) Wires() []*Wire { return sc.wires }

// Nets returns all nets in insertion order.
func (sc *Scope) Nets() []*Net { return sc.nets }

// DriverOf returns the unique net driving w, if any.
func (sc *Scope) DriverOf(w *Wire) (*Net, bool) {
	n, ok := sc.drivers[w]
	return n, ok
}

// ConsumersOf returns the nets reading w.
func (sc *Scope) ConsumersOf(w *Wire) []*Net { return sc.consumers[w] }

func (sc *Scope) insert(n *Net) error {
	if n.op == OpMemWrite && n.dest != nil {
		return fmt.Errorf("memory write nets must not have a destination wire")
	}
	if (n.op == OpMemRead || n.op == OpMemWrite) && n.mem == nil {
		return fmt.Errorf("%s nets require a memory block; use MemRead or MemWrite", n.op)
	}
	if n.op != OpMemWrite {
		if n.dest == nil {
			return fmt.Errorf("%s net requires a destination wire", n.op)
		}
		if prev, ok := sc.drivers[n.dest]; ok {
			return fmt.Errorf("wire %q is already driven by %s", n.dest.QualifiedName(), prev)
		}
		if n.dest.kind == Const {
			return fmt.Errorf("constant wire %q cannot be driven", n.dest.QualifiedName())
		}
	}
	n.owner = sc.openModule()
	sc.nets = append(sc.nets, n)
	if n.dest != nil {
		sc.drivers[n.dest] = n
	}
	for _, a := range n.args {
		sc.consumers[a] = append(sc.consumers[a], n)
	}
	return nil
}

// AddNet inserts a logic net driving dest from args. Use MemRead, MemWrite
// and Select for nets carrying operator parameters.
func (sc *Scope) AddNet(op Op, dest *Wire, args ...*Wire) (*Net, error) {
	n := &Net{op: op, dest: dest, args: args}
	if err := sc.insert(n); err != nil {
		return nil, err
	}
	return n, nil
}

// Assign wires src to dst.
func (sc *Scope) Assign(dst, src *Wire) error {
	_, err := sc.AddNet(OpWire, dst, src)
	return err
}

// Unary applies op to a, returning a fresh result wire.
func (sc *Scope) Unary(op Op, a *Wire) *Wire {
	dest := sc.NewWire(a.width, "")
	if _, err := sc.AddNet(op, dest, a); err != nil {
		panic(err)
	}
	return dest
}

// Binary applies op to a and b, returning a fresh result wire sized to the
// wider argument.
func (sc *Scope) Binary(op Op, a, b *Wire) *Wire {
	width := a.width
	if b.width > width {
		width = b.width
	}
	dest := sc.NewWire(width, "")
	if _, err := sc.AddNet(op, dest, a, b); err != nil {
		panic(err)
	}
	return dest
}

// Select extracts the given bit indices from a.
func (sc *Scope) Select(a *Wire, bits ...int) *Wire {
	dest := sc.NewWire(len(bits), "")
	n := &Net{op: OpSelect, dest: dest, args: []*Wire{a}, bits: bits}
	if err := sc.insert(n); err != nil {
		panic(err)
	}
	return dest
}

// SetRegisterInput drives register r's next-cycle value from src.
func (sc *Scope) SetRegisterInput(r, src *Wire) error {
	if r.kind != Register {
		return fmt.Errorf("wire %q is not a register", r.QualifiedName())
	}
	_, err := sc.AddNet(OpRegister, r, src)
	return err
}

// MemRead reads width bits from mem at addr, returning the result wire.
func (sc *Scope) MemRead(mem *MemBlock, addr *Wire, width int) (*Wire, error) {
	dest := sc.NewWire(width, "")
	n := &Net{op: OpMemRead, dest: dest, args: []*Wire{addr}, mem: mem}
	if err := sc.insert(n); err != nil {
		return nil, err
	}
	return dest, nil
}

// MemWrite writes data to mem at addr. Write nets have no destination wire.
func (sc *Scope) MemWrite(mem *MemBlock, addr, data *Wire) error {
	n := &Net{op: OpMemWrite, args: []*Wire{addr, data}, mem: mem}
	return sc.insert(n)
}

// openModule returns the innermost module currently being defined, or nil.
func (sc *Scope) openModule() *Module {
	if len(sc.open) == 0 {
		return nil
	}
	return sc.open[len(sc.open)-1]
}

// InnermostOpen returns the module new wires and nets would currently belong
// to, or nil when no module is open.
func (sc *Scope) InnermostOpen() *Module { return sc.openModule() }

// OpenModule starts the definition of a new module. While the module is open,
// wires and nets created in the scope belong to it. If another module is
// already open, the new module becomes its submodule.
func (sc *Scope) OpenModule(name, defName string) (*Module, error) {
	if name == "" {
		return nil, fmt.Errorf("must supply a non-empty module name")
	}
	super := sc.openModule()
	siblings := sc.toplevel
	if super != nil {
		siblings = super.subs
	}
	for _, m := range siblings {
		if m.name == name {
			return nil, fmt.Errorf("module name %q is already in use in its enclosing scope", name)
		}
	}
	m := &Module{
		name:    name,
		defName: defName,
		scope:   sc,
		byName:  make(map[string]*Wire),
		super:   super,
	}
	if super != nil {
		super.subs = append(super.subs, m)
	} else {
		sc.toplevel = append(sc.toplevel, m)
	}
	sc.open = append(sc.open, m)
	return m, nil
}

// CloseModule ends the definition of m, which must be the innermost open
// module, and marks it sealed. Callers are expected to run boundary checks
// and sort annotation before closing.
func (sc *Scope) CloseModule(m *Module) error {
	if sc.openModule() != m {
		return fmt.Errorf("module %q is not the innermost open module", m.name)
	}
	sc.open = sc.open[:len(sc.open)-1]
	m.sealed = true
	return nil
}

// TopLevelModules returns the modules defined directly in the scope, outside
// any enclosing module.
func (sc *Scope) TopLevelModules() []*Module { return sc.toplevel }
