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

package sorts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubWire satisfies BoundaryWire for tests of this package alone.
type stubWire struct {
	name string
}

func (w *stubWire) OriginalName() string { return w.name }
func (w *stubWire) String() string       { return w.name }

func wires(names ...string) []BoundaryWire {
	ws := make([]BoundaryWire, len(names))
	for i, n := range names {
		ws[i] = &stubWire{name: n}
	}
	return ws
}

func TestWireSetOrdering(t *testing.T) {
	ws := wires("c", "a", "b")
	set := NewWireSet(ws...)

	assert.Equal(t, 3, set.Len())
	assert.Equal(t, []string{"a", "b", "c"}, set.Names(),
		"iteration order follows names, not insertion")

	var seen []string
	set.Range(func(w BoundaryWire) bool {
		seen = append(seen, w.OriginalName())
		return true
	})
	assert.Equal(t, []string{"a", "b", "c"}, seen)
}

func TestWireSetLookup(t *testing.T) {
	ws := wires("a", "b")
	set := NewWireSet(ws...)

	got, ok := set.Get("a")
	require.True(t, ok)
	assert.Equal(t, ws[0], got)
	assert.True(t, set.Has("b"))
	assert.False(t, set.Has("z"))

	// Contains compares identity, not just names.
	assert.True(t, set.Contains(ws[0]))
	assert.False(t, set.Contains(&stubWire{name: "a"}))
}

func TestWireSetEqualNames(t *testing.T) {
	set := NewWireSet(wires("a", "b")...)
	assert.True(t, set.EqualNames([]string{"b", "a"}))
	assert.False(t, set.EqualNames([]string{"a"}))
	assert.False(t, set.EqualNames([]string{"a", "b", "c"}))
	assert.True(t, EmptyWireSet.EqualNames(nil))
}

func TestWireSetImmutability(t *testing.T) {
	base := NewWireSet(wires("a")...)
	grown := base.Builder().Add(&stubWire{name: "b"}).Build()

	assert.Equal(t, 1, base.Len(), "building from a set must not mutate it")
	assert.Equal(t, 2, grown.Len())
	assert.True(t, EmptyWireSet.IsEmpty())
	assert.Nil(t, EmptyWireSet.Names())
}

func TestSortMembers(t *testing.T) {
	ws := wires("out")
	needed := Needed{AwaitedBy: NewWireSet(ws...)}

	assert.True(t, Free{}.Members().IsEmpty())
	assert.True(t, Giving{}.Members().IsEmpty())
	assert.Equal(t, []string{"out"}, needed.Members().Names())
}

func TestSortStrings(t *testing.T) {
	assert.Equal(t, "Free", Free{}.String())
	assert.Equal(t, "Giving", Giving{}.String())

	needed := Needed{AwaitedBy: NewWireSet(wires("w9", "w8")...)}
	assert.Equal(t, "Needed (needed by: w8, w9)", needed.String())

	dep := Dependent{DependsOn: NewWireSet(wires("a")...)}
	assert.Equal(t, "Dependent (depends on: a)", dep.String())
}

func TestKinds(t *testing.T) {
	assert.Equal(t, KindFree, KindOf(Free{}))
	assert.Equal(t, KindNeeded, KindOf(Needed{}))
	assert.Equal(t, KindGiving, KindOf(Giving{}))
	assert.Equal(t, KindDependent, KindOf(Dependent{}))

	assert.True(t, KindFree.IsInput())
	assert.True(t, KindNeeded.IsInput())
	assert.False(t, KindGiving.IsInput())
	assert.True(t, KindGiving.IsOutput())
	assert.True(t, KindDependent.IsOutput())
	assert.False(t, KindNeeded.IsOutput())
}

func TestKindAscription(t *testing.T) {
	a := KindAscription{Kind: KindNeeded}
	assert.True(t, a.Matches(Needed{AwaitedBy: NewWireSet(wires("x")...)}),
		"kind ascriptions ignore the member set")
	assert.False(t, a.Matches(Free{}))
	assert.Equal(t, "Needed", a.String())
}

func TestExactAscription(t *testing.T) {
	a := ExactAscription{Kind: KindDependent, Peers: []string{"b", "a"}}
	assert.True(t, a.Matches(Dependent{DependsOn: NewWireSet(wires("a", "b")...)}))
	assert.False(t, a.Matches(Dependent{DependsOn: NewWireSet(wires("a")...)}))
	assert.False(t, a.Matches(Giving{}))
	assert.Equal(t, "Dependent (a, b)", a.String())

	empty := ExactAscription{Kind: KindGiving}
	assert.True(t, empty.Matches(Giving{}))
	assert.Equal(t, "Giving", empty.String())
}

func TestAscriptionDirection(t *testing.T) {
	require.NoError(t, CheckInputAscription(nil, "a"))
	require.NoError(t, CheckInputAscription(KindAscription{Kind: KindFree}, "a"))
	require.NoError(t, CheckOutputAscription(KindAscription{Kind: KindDependent}, "b"))

	err := CheckInputAscription(KindAscription{Kind: KindGiving}, "a")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "must be Free or Needed")

	err = CheckOutputAscription(ExactAscription{Kind: KindNeeded, Peers: []string{"x"}}, "b")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "must be Giving or Dependent")
}
