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

package util

import (
	"github.com/bits-and-blooms/bitset"
)

// Visited tracks which wire ids a work-list traversal has already expanded.
//
// Growth is monotonic and membership-only, so traversal results do not depend
// on the order in which wires are taken off the work list.
type Visited struct {
	bits *bitset.BitSet
}

// NewVisited creates a visited set sized for n wire ids. Ids beyond n are
// still accepted; the underlying bit set grows as needed.
func NewVisited(n int) *Visited {
	return &Visited{bits: bitset.New(uint(n))}
}

// Mark records id as visited, reporting whether it was previously unvisited.
func (v *Visited) Mark(id int) bool {
	if v.bits.Test(uint(id)) {
		return false
	}
	v.bits.Set(uint(id))
	return true
}

// Has reports whether id has been visited.
func (v *Visited) Has(id int) bool { return v.bits.Test(uint(id)) }

// Count returns the number of visited ids.
func (v *Visited) Count() int { return int(v.bits.Count()) }
