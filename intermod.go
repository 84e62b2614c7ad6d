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

package wiresorts

import (
	log "github.com/sirupsen/logrus"

	"github.com/hdlkit/wiresorts/internal/util"
	"github.com/hdlkit/wiresorts/netlist"
	"github.com/hdlkit/wiresorts/sorts"
)

// reachMap maps a module output wire to the set of module inputs (of any
// module in the collection) it combinationally affects through wiring outside
// module interiors.
type reachMap map[*netlist.Wire]wireSet

// reachability computes the intermodular reachability map for a collection
// of composing modules. For every input a backward work list runs over the
// enclosing scope's wiring, jumping over any module interior it passes
// through — including the input's own module — via the depends-on sets of
// its sorts. Registers and synchronous memory reads still absorb traversal.
//
// The result is driven by the connection graph currently present and is
// recomputed on demand, never cached across graph mutation.
func (s *Session) reachability(modules []*netlist.Module) (reachMap, error) {
	sc := s.scope
	reach := make(reachMap)
	for _, m := range modules {
		for _, o := range m.Outputs() {
			reach[o] = make(wireSet)
		}
	}

	for _, m := range modules {
		for _, input := range m.Inputs() {
			var work util.Worklist[*netlist.Wire]
			work.Push(input)
			seen := util.NewVisited(sc.WireCount())

			for {
				w, ok := work.Pop()
				if !ok {
					break
				}
				if !seen.Mark(w.ID()) {
					continue
				}

				if w != input && w.Kind() == netlist.ModOutput {
					if _, ok := reach[w]; ok {
						reach[w][input] = true
					}
				}

				if w.Kind() == netlist.ModOutput {
					// Skip over the module interior using its sort instead
					// of descending into its nets.
					if w.Sort() == nil {
						return nil, internalErrorf(
							"output %q of module %q is not annotated: modules must be sealed before checking their composition",
							w.Name(), w.Module().Name())
					}
					var err error
					w.Sort().Members().Range(func(bw sorts.BoundaryWire) bool {
						affector, ok := bw.(*netlist.Wire)
						if !ok {
							err = internalErrorf("sort member %q of wire %q is not a netlist wire", bw, w.Name())
							return false
						}
						work.Push(affector)
						return true
					})
					if err != nil {
						return nil, err
					}
					continue
				}

				// Registers break the combinational chain.
				if w.Kind() == netlist.Register {
					continue
				}
				drv, ok := sc.DriverOf(w)
				if !ok {
					continue
				}
				if drv.Op() == netlist.OpMemRead && !drv.Mem().Asynchronous() {
					continue
				}
				if drv.Op() == netlist.OpMemWrite {
					continue
				}
				work.Push(drv.Args()...)
			}
		}
	}
	log.Debugf("intermodular reachability computed over %d module(s)", len(modules))
	return reach, nil
}
