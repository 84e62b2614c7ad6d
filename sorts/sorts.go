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

// Package sorts defines the classification assigned to module boundary wires.
//
// A sort describes a boundary wire's combinational dependency profile within
// its own module: Free and Needed apply to module inputs, Giving and Dependent
// to module outputs. Needed and Dependent carry the set of peer boundary wires
// the classification refers to.
package sorts

// BoundaryWire is a module boundary wire as seen by the sort model.
type BoundaryWire interface {
	// OriginalName returns the name the wire was declared with. Member sets
	// are keyed by it, and cached sorts are remapped onto new module
	// instances through it.
	OriginalName() string
	String() string
}

// Sort is the base interface for all sorts.
type Sort interface {
	SortName() string
	// Members returns the peer set carried by the sort: the awaited-by set
	// for Needed, the depends-on set for Dependent, and the empty set for
	// Free and Giving.
	Members() WireSet
	String() string
}

// InputSort is implemented by the sorts assignable to module inputs.
type InputSort interface {
	Sort
	inputSort()
}

// OutputSort is implemented by the sorts assignable to module outputs.
type OutputSort interface {
	Sort
	outputSort()
}

// Free is the sort for module inputs that are not combinationally connected
// to any of their module's outputs.
type Free struct{}

// Needed is the sort for module inputs that combinationally reach one or more
// of their module's outputs.
type Needed struct {
	AwaitedBy WireSet
}

// Giving is the sort for module outputs that do not combinationally depend on
// any of their module's inputs.
type Giving struct{}

// Dependent is the sort for module outputs that combinationally depend on one
// or more of their module's inputs.
type Dependent struct {
	DependsOn WireSet
}

func (Free) SortName() string      { return "Free" }
func (Needed) SortName() string    { return "Needed" }
func (Giving) SortName() string    { return "Giving" }
func (Dependent) SortName() string { return "Dependent" }

func (Free) Members() WireSet        { return EmptyWireSet }
func (s Needed) Members() WireSet    { return s.AwaitedBy }
func (Giving) Members() WireSet      { return EmptyWireSet }
func (s Dependent) Members() WireSet { return s.DependsOn }

func (Free) inputSort()    {}
func (Needed) inputSort()  {}
func (Giving) outputSort() {}

func (Dependent) outputSort() {}

// Kind identifies a sort variant without its member set.
type Kind uint8

const (
	KindFree Kind = iota
	KindNeeded
	KindGiving
	KindDependent
)

func (k Kind) String() string {
	switch k {
	case KindFree:
		return "Free"
	case KindNeeded:
		return "Needed"
	case KindGiving:
		return "Giving"
	case KindDependent:
		return "Dependent"
	}
	return "Unknown"
}

// IsInput reports whether k is a kind assignable to module inputs.
func (k Kind) IsInput() bool { return k == KindFree || k == KindNeeded }

// IsOutput reports whether k is a kind assignable to module outputs.
func (k Kind) IsOutput() bool { return k == KindGiving || k == KindDependent }

// KindOf returns the variant tag of s.
func KindOf(s Sort) Kind {
	switch s.(type) {
	case Free:
		return KindFree
	case Needed:
		return KindNeeded
	case Giving:
		return KindGiving
	case Dependent:
		return KindDependent
	}
	panic("unknown sort " + s.SortName())
}
