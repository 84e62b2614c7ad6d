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
	"github.com/benbjohnson/immutable"
)

var emptyMap = immutable.NewSortedMap(nil)

// EmptyWireSet is the empty set of boundary wires.
var EmptyWireSet = WireSet{emptyMap}

// WireSet is an immutable set of boundary wires, ordered and keyed by
// original name. Boundary-wire names are unique within a module, so a set
// never holds wires of more than one module.
type WireSet struct {
	m *immutable.SortedMap
}

// NewWireSet creates a set containing the given wires.
func NewWireSet(wires ...BoundaryWire) WireSet {
	if len(wires) == 0 {
		return EmptyWireSet
	}
	b := NewWireSetBuilder()
	for _, w := range wires {
		b.Add(w)
	}
	return b.Build()
}

// SingletonWireSet creates a set containing a single wire.
func SingletonWireSet(w BoundaryWire) WireSet {
	return WireSet{emptyMap.Set(w.OriginalName(), w)}
}

// Len returns the number of wires in the set.
func (s WireSet) Len() int {
	if s.m == nil {
		return 0
	}
	return s.m.Len()
}

// IsEmpty reports whether the set contains no wires.
func (s WireSet) IsEmpty() bool { return s.Len() == 0 }

// Get returns the wire declared with the given name.
func (s WireSet) Get(name string) (BoundaryWire, bool) {
	if s.m == nil {
		return nil, false
	}
	w, ok := s.m.Get(name)
	if !ok {
		return nil, false
	}
	return w.(BoundaryWire), true
}

// Has reports whether the set contains a wire declared with the given name.
func (s WireSet) Has(name string) bool {
	_, ok := s.Get(name)
	return ok
}

// Contains reports whether the set contains exactly w.
func (s WireSet) Contains(w BoundaryWire) bool {
	found, ok := s.Get(w.OriginalName())
	return ok && found == w
}

// Range iterates over wires in name order.
// If f returns false, iteration will be stopped.
func (s WireSet) Range(f func(BoundaryWire) bool) {
	if s.m == nil {
		return
	}
	iter := s.m.Iterator()
	for !iter.Done() {
		_, w := iter.Next()
		if !f(w.(BoundaryWire)) {
			return
		}
	}
}

// Names returns the declared names of all wires in the set, in name order.
func (s WireSet) Names() []string {
	if s.Len() == 0 {
		return nil
	}
	names := make([]string, 0, s.Len())
	iter := s.m.Iterator()
	for !iter.Done() {
		k, _ := iter.Next()
		names = append(names, k.(string))
	}
	return names
}

// EqualNames reports whether the set contains exactly the given names.
func (s WireSet) EqualNames(names []string) bool {
	if s.Len() != len(names) {
		return false
	}
	for _, name := range names {
		if !s.Has(name) {
			return false
		}
	}
	return true
}

// Builder converts the set to a builder for modification, without mutating
// the existing set.
func (s WireSet) Builder() WireSetBuilder {
	imm := s.m
	if imm == nil {
		imm = emptyMap
	}
	return WireSetBuilder{immutable.NewSortedMapBuilder(imm)}
}

// WireSetBuilder enables in-place updates of a set before finalization.
type WireSetBuilder struct {
	b *immutable.SortedMapBuilder
}

func NewWireSetBuilder() WireSetBuilder {
	return WireSetBuilder{immutable.NewSortedMapBuilder(emptyMap)}
}

// Add inserts a wire into the builder.
func (b WireSetBuilder) Add(w BoundaryWire) WireSetBuilder {
	b.b.Set(w.OriginalName(), w)
	return b
}

// Len returns the number of wires in the builder.
func (b WireSetBuilder) Len() int {
	if b.b == nil {
		return 0
	}
	return b.b.Len()
}

// Build finalizes the builder into an immutable set.
func (b WireSetBuilder) Build() WireSet {
	if b.b == nil {
		return EmptyWireSet
	}
	return WireSet{b.b.Map()}
}
