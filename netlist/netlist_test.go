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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hdlkit/wiresorts/sorts"
)

func TestWireAllocation(t *testing.T) {
	sc := NewScope()
	a := sc.NewWire(4, "a")
	b := sc.NewWire(8, "")
	c := sc.NewConst(1, "")

	assert.Equal(t, 0, a.ID())
	assert.Equal(t, 1, b.ID())
	assert.Equal(t, 2, c.ID())
	assert.Equal(t, 3, sc.WireCount())
	assert.Equal(t, "t1", b.Name(), "unnamed wires get generated temporaries")
	assert.Equal(t, "c2", c.Name())
	assert.Equal(t, Regular, a.Kind())
	assert.Equal(t, Const, c.Kind())
	assert.Nil(t, a.Module())
	assert.Equal(t, "a", a.QualifiedName())
}

func TestSingleDriverEnforced(t *testing.T) {
	sc := NewScope()
	a := sc.NewWire(4, "a")
	b := sc.NewWire(4, "b")
	d := sc.NewWire(4, "d")

	require.NoError(t, sc.Assign(d, a))
	err := sc.Assign(d, b)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already driven")

	drv, ok := sc.DriverOf(d)
	require.True(t, ok)
	assert.Equal(t, OpWire, drv.Op())
	assert.Equal(t, []*Wire{a}, drv.Args())
}

func TestConstCannotBeDriven(t *testing.T) {
	sc := NewScope()
	a := sc.NewWire(4, "a")
	c := sc.NewConst(4, "c")

	err := sc.Assign(c, a)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cannot be driven")
}

func TestMemWriteHasNoDestination(t *testing.T) {
	sc := NewScope()
	mem := NewMemBlock("ram", false)
	addr := sc.NewWire(4, "addr")
	data := sc.NewWire(8, "data")
	bad := sc.NewWire(8, "bad")

	_, err := sc.AddNet(OpMemWrite, bad, addr, data)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "must not have a destination")

	require.NoError(t, sc.MemWrite(mem, addr, data))
	assert.Len(t, sc.ConsumersOf(addr), 1)
	assert.Len(t, sc.ConsumersOf(data), 1)
}

func TestMemoryNetsRequireMemBlock(t *testing.T) {
	sc := NewScope()
	addr := sc.NewWire(4, "addr")
	data := sc.NewWire(8, "data")
	dest := sc.NewWire(8, "dest")

	_, err := sc.AddNet(OpMemRead, dest, addr)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "memory block")

	_, err = sc.AddNet(OpMemWrite, nil, addr, data)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "memory block")

	_, ok := sc.DriverOf(dest)
	assert.False(t, ok, "rejected nets must not be installed")
}

func TestSetRegisterInput(t *testing.T) {
	sc := NewScope()
	r := sc.NewRegister(4, "r")
	a := sc.NewWire(4, "a")

	require.Error(t, sc.SetRegisterInput(a, r), "only registers take a next-cycle input")
	require.NoError(t, sc.SetRegisterInput(r, a))
	drv, ok := sc.DriverOf(r)
	require.True(t, ok)
	assert.Equal(t, OpRegister, drv.Op())
}

func TestBinaryResultWidth(t *testing.T) {
	sc := NewScope()
	a := sc.NewWire(4, "a")
	b := sc.NewWire(6, "b")
	d := sc.Binary(OpAdd, a, b)
	assert.Equal(t, 6, d.Width())

	sel := sc.Select(d, 0, 2, 4)
	assert.Equal(t, 3, sel.Width())
	drv, ok := sc.DriverOf(sel)
	require.True(t, ok)
	assert.Equal(t, []int{0, 2, 4}, drv.SelectedBits())
}

func TestModuleLifecycle(t *testing.T) {
	sc := NewScope()
	m, err := sc.OpenModule("m", "M")
	require.NoError(t, err)

	a, err := m.DeclareInput(4, "a", nil)
	require.NoError(t, err)
	b, err := m.DeclareOutput(4, "b", nil)
	require.NoError(t, err)
	assert.Equal(t, ModInput, a.Kind())
	assert.Equal(t, ModOutput, b.Kind())
	assert.Equal(t, m, a.Module())
	assert.Equal(t, "m.a", a.QualifiedName())

	require.NoError(t, sc.Assign(b, a))
	require.NoError(t, m.CheckBoundary())
	require.NoError(t, sc.CloseModule(m))
	assert.True(t, m.Sealed())
	assert.Equal(t, []*Module{m}, sc.TopLevelModules())

	_, err = m.DeclareInput(4, "late", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "sealed")
}

func TestModuleNamesUniqueAmongSiblings(t *testing.T) {
	sc := NewScope()
	m, err := sc.OpenModule("m", "M")
	require.NoError(t, err)
	require.NoError(t, sc.CloseModule(m))

	_, err = sc.OpenModule("m", "Other")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already in use")

	_, err = sc.OpenModule("", "Anon")
	require.Error(t, err)
}

func TestNestedModules(t *testing.T) {
	sc := NewScope()
	outer, err := sc.OpenModule("outer", "Outer")
	require.NoError(t, err)
	inner, err := sc.OpenModule("inner", "Inner")
	require.NoError(t, err)

	assert.Equal(t, outer, inner.Supermodule())
	assert.Equal(t, []*Module{inner}, outer.Submodules())
	assert.Equal(t, []*Module{outer}, sc.TopLevelModules())

	// The outer module is not innermost while inner is open.
	require.Error(t, sc.CloseModule(outer))
	_, err = outer.DeclareInput(4, "a", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "innermost")

	require.NoError(t, sc.CloseModule(inner))
	require.NoError(t, sc.CloseModule(outer))
}

func TestBoundaryDeclarationErrors(t *testing.T) {
	sc := NewScope()
	m, err := sc.OpenModule("m", "M")
	require.NoError(t, err)

	_, err = m.DeclareInput(4, "", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "non-empty name")

	_, err = m.DeclareInput(4, "a", nil)
	require.NoError(t, err)
	_, err = m.DeclareOutput(4, "a", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already declares")
}

func TestAscriptionDirectionValidated(t *testing.T) {
	sc := NewScope()
	m, err := sc.OpenModule("m", "M")
	require.NoError(t, err)

	_, err = m.DeclareInput(4, "a", sorts.KindAscription{Kind: sorts.KindGiving})
	require.Error(t, err, "output sorts cannot be ascribed to inputs")

	_, err = m.DeclareOutput(4, "b", sorts.KindAscription{Kind: sorts.KindNeeded})
	require.Error(t, err, "input sorts cannot be ascribed to outputs")

	_, err = m.DeclareInput(4, "a", sorts.KindAscription{Kind: sorts.KindFree})
	require.NoError(t, err)
	_, err = m.DeclareOutput(4, "b", sorts.KindAscription{Kind: sorts.KindGiving})
	require.NoError(t, err)
}

func TestCheckBoundaryInvariants(t *testing.T) {
	sc := NewScope()
	m, err := sc.OpenModule("m", "M")
	require.NoError(t, err)
	a, err := m.DeclareInput(4, "a", nil)
	require.NoError(t, err)
	b, err := m.DeclareOutput(4, "b", nil)
	require.NoError(t, err)

	err = m.CheckBoundary()
	require.Error(t, err)
	assert.Contains(t, err.Error(), `input "a"`)

	tmp := sc.Unary(OpNot, a)
	err = m.CheckBoundary()
	require.Error(t, err)
	assert.Contains(t, err.Error(), `output "b"`)

	require.NoError(t, sc.Assign(b, tmp))
	require.NoError(t, m.CheckBoundary())
}

func TestWireLookup(t *testing.T) {
	sc := NewScope()
	m, err := sc.OpenModule("m", "M")
	require.NoError(t, err)
	a, err := m.DeclareInput(4, "a", nil)
	require.NoError(t, err)

	got, err := m.Wire("a")
	require.NoError(t, err)
	assert.Equal(t, a, got)

	_, err = m.Wire("nope")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `no boundary wire named "nope"`)

	_, ok := m.Input("a")
	assert.True(t, ok)
	_, ok = m.Output("a")
	assert.False(t, ok, "a is an input, not an output")
}

func buildShapeModule(t *testing.T, sc *Scope, name string, width int) *Module {
	t.Helper()
	m, err := sc.OpenModule(name, "Shape")
	require.NoError(t, err)
	a, err := m.DeclareInput(width, "a", nil)
	require.NoError(t, err)
	b, err := m.DeclareOutput(width, "b", nil)
	require.NoError(t, err)
	require.NoError(t, sc.Assign(b, sc.Unary(OpNot, a)))
	require.NoError(t, sc.CloseModule(m))
	return m
}

func TestShapeKeyStableAcrossInstances(t *testing.T) {
	sc := NewScope()
	m1 := buildShapeModule(t, sc, "m1", 4)
	m2 := buildShapeModule(t, sc, "m2", 4)
	m3 := buildShapeModule(t, sc, "m3", 8)

	assert.Equal(t, m1.ShapeKey(), m2.ShapeKey(),
		"instances of one definition share a shape")
	assert.NotEqual(t, m1.ShapeKey(), m3.ShapeKey(),
		"width parameters change the shape")
	assert.Contains(t, m1.ShapeKey(), "Shape:")
}

func TestShapeKeySeparatesDefinitions(t *testing.T) {
	sc := NewScope()
	m1 := buildShapeModule(t, sc, "m1", 4)

	m2, err := sc.OpenModule("m2", "OtherDef")
	require.NoError(t, err)
	a, err := m2.DeclareInput(4, "a", nil)
	require.NoError(t, err)
	b, err := m2.DeclareOutput(4, "b", nil)
	require.NoError(t, err)
	require.NoError(t, sc.Assign(b, sc.Unary(OpNot, a)))
	require.NoError(t, sc.CloseModule(m2))

	// Same internal topology under a different definition name.
	assert.NotEqual(t, m1.ShapeKey(), m2.ShapeKey())
}

func TestModuleString(t *testing.T) {
	sc := NewScope()
	m := buildShapeModule(t, sc, "m", 4)

	rendered := m.String()
	assert.Contains(t, rendered, `Module "m" (Shape)`)
	assert.Contains(t, rendered, "a: (unannotated)")

	in, ok := m.Input("a")
	require.True(t, ok)
	out, ok := m.Output("b")
	require.True(t, ok)
	out.SetSort(sorts.Dependent{DependsOn: sorts.NewWireSet(in)})
	in.SetSort(sorts.Needed{AwaitedBy: sorts.NewWireSet(out)})

	rendered = m.String()
	assert.Contains(t, rendered, "a: Needed (needed by: b)")
	assert.Contains(t, rendered, "b: Dependent (depends on: a)")
}

func TestNetString(t *testing.T) {
	sc := NewScope()
	a := sc.NewWire(4, "a")
	b := sc.NewWire(4, "b")
	d := sc.NewWire(4, "d")
	n, err := sc.AddNet(OpAnd, d, a, b)
	require.NoError(t, err)
	assert.Equal(t, "d <- and(a, b)", n.String())

	mem := NewMemBlock("ram", false)
	require.NoError(t, sc.MemWrite(mem, a, b))
	nets := sc.Nets()
	assert.Equal(t, "memwrite(a, b)", nets[len(nets)-1].String())
}
