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

// wiresorts infers, for every module boundary wire in a circuit, a sort
// describing its combinational dependency profile, and uses these sorts to
// verify that wiring two modules' boundary wires together can never close a
// same-cycle combinational loop.
//
// Each module is traversed once, when its definition is sealed; composing
// previously-analyzed modules only requires local checks that jump over
// module interiors through their boundary sorts, never a re-traversal of the
// flattened netlist.
//
//
// The four sorts:
//
//   * Free — an input not combinationally connected to any of its module's outputs
//   * Needed — an input that combinationally reaches some of its module's outputs
//   * Giving — an output not combinationally dependent on any of its module's inputs
//   * Dependent — an output that combinationally depends on some of its module's inputs
//
// Registers and synchronous memory reads absorb traversal: a path through
// them is not combinational. Sorts may be ascribed at declaration time and
// are validated against the inferred result when the module seals. Computed
// sorts are cached per module shape, so repeated instantiations of one
// definition are annotated without re-traversal.
//
// The engine is single-threaded and synchronous. All state belongs to a
// Session; independent circuits must use independent sessions.
package wiresorts
