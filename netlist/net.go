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
	"strings"
)

// Op tags a logic net with its operator.
type Op uint8

const (
	// OpWire copies its single argument to its destination.
	OpWire Op = iota
	OpNot
	OpAnd
	OpOr
	OpXor
	OpAdd
	OpSub
	OpMul
	OpEq
	OpLt
	// OpSelect extracts the configured bit indices from its argument.
	OpSelect
	OpConcat
	// OpRegister drives a register wire from its next-value argument.
	OpRegister
	// OpMemRead reads from a memory; it is combinational only when the memory
	// is asynchronous.
	OpMemRead
	// OpMemWrite writes to a memory. Write nets have no destination wire.
	OpMemWrite
)

func (op Op) String() string {
	switch op {
	case OpWire:
		return "wire"
	case OpNot:
		return "not"
	case OpAnd:
		return "and"
	case OpOr:
		return "or"
	case OpXor:
		return "xor"
	case OpAdd:
		return "add"
	case OpSub:
		return "sub"
	case OpMul:
		return "mul"
	case OpEq:
		return "eq"
	case OpLt:
		return "lt"
	case OpSelect:
		return "select"
	case OpConcat:
		return "concat"
	case OpRegister:
		return "register"
	case OpMemRead:
		return "memread"
	case OpMemWrite:
		return "memwrite"
	}
	return "unknown"
}

// MemBlock is a handle to a memory referenced by read and write nets.
type MemBlock struct {
	name  string
	async bool
}

// NewMemBlock creates a memory handle. Reads from an asynchronous memory are
// combinational; reads from a synchronous one are not.
func NewMemBlock(name string, asynchronous bool) *MemBlock {
	return &MemBlock{name: name, async: asynchronous}
}

func (m *MemBlock) Name() string { return m.name }

// Asynchronous reports whether reads from this memory happen in the same
// cycle as their address.
func (m *MemBlock) Asynchronous() bool { return m.async }

// Net is an edge in the netlist: an operator applied to an ordered list of
// argument wires, driving at most one destination wire. Only memory writes
// have no destination.
type Net struct {
	op    Op
	args  []*Wire
	dest  *Wire
	bits  []int
	mem   *MemBlock
	owner *Module
}

// Op returns the net's operator tag.
func (n *Net) Op() Op { return n.op }

// Args returns the net's argument wires in order.
func (n *Net) Args() []*Wire { return n.args }

// Dest returns the net's destination wire, or nil for memory writes.
func (n *Net) Dest() *Wire { return n.dest }

// Mem returns the memory handle for memread/memwrite nets, nil otherwise.
func (n *Net) Mem() *MemBlock { return n.mem }

// SelectedBits returns the bit indices for select nets, nil otherwise.
func (n *Net) SelectedBits() []int { return n.bits }

// Module returns the module whose definition created the net, or nil for
// top-level wiring.
func (n *Net) Module() *Module { return n.owner }

func (n *Net) String() string {
	var sb strings.Builder
	if n.dest != nil {
		sb.WriteString(n.dest.Name())
		sb.WriteString(" <- ")
	}
	sb.WriteString(n.op.String())
	sb.WriteByte('(')
	for i, a := range n.args {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(a.Name())
	}
	sb.WriteByte(')')
	return sb.String()
}
