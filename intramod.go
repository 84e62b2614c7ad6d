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

type wireSet map[*netlist.Wire]bool

// intramodularMaps computes, for each output of m, the set of m's inputs it
// combinationally depends on, and for each input the set of outputs it
// reaches — both confined strictly to wiring owned by m. Every boundary wire
// has an entry, empty for pure Free/Giving wires.
//
// One backward work-list traversal runs per output. The forward map is the
// exact inverse of the backward map and is derived by inversion, so the two
// can never disagree. Results are a monotone fixed point over a finite wire
// set: they do not depend on work-list order.
func (s *Session) intramodularMaps(m *netlist.Module) (dependsOn, neededBy map[*netlist.Wire]wireSet, err error) {
	sc := m.Scope()
	dependsOn = make(map[*netlist.Wire]wireSet, len(m.Outputs()))
	neededBy = make(map[*netlist.Wire]wireSet, len(m.Inputs()))
	for _, in := range m.Inputs() {
		neededBy[in] = make(wireSet)
	}

	for _, output := range m.Outputs() {
		deps := make(wireSet)
		dependsOn[output] = deps

		var work util.Worklist[*netlist.Wire]
		work.Push(output)
		seen := util.NewVisited(sc.WireCount())

		for {
			a, ok := work.Pop()
			if !ok {
				break
			}
			if !seen.Mark(a.ID()) {
				continue
			}

			// Registers break the combinational chain.
			if a.Kind() == netlist.Register {
				continue
			}

			if a.Module() != m {
				// A wire of a nested submodule: jump over its interior
				// instead of descending into it.
				more, jumpErr := jumpSubmoduleOutput(sc, m, a)
				if jumpErr != nil {
					return nil, nil, jumpErr
				}
				work.Push(more...)
				continue
			}

			if a != output && a.Kind() == netlist.ModInput {
				deps[a] = true
			}
			drv, ok := sc.DriverOf(a)
			if !ok {
				continue
			}
			if drv.Op() == netlist.OpMemRead && !drv.Mem().Asynchronous() {
				continue
			}
			if drv.Op() == netlist.OpMemWrite {
				return nil, nil, internalErrorf(
					"memory write net %s reached backward from wire %q in module %q: write nets have no destination",
					drv, a.Name(), m.Name())
			}
			if a.Kind() == netlist.ModInput {
				// The module's own input terminates the path.
				continue
			}
			work.Push(drv.Args()...)
		}
		log.Debugf("module %q: output %q depends on %d input(s)", m.Name(), output.Name(), len(deps))
	}

	for output, deps := range dependsOn {
		for input := range deps {
			neededBy[input][output] = true
		}
	}
	return dependsOn, neededBy, nil
}

// jumpSubmoduleOutput substitutes a sealed submodule's depends-on set for its
// interior: traversal continues from the drivers of the inputs the output
// depends on.
func jumpSubmoduleOutput(sc *netlist.Scope, m *netlist.Module, a *netlist.Wire) ([]*netlist.Wire, error) {
	if a.Kind() != netlist.ModOutput {
		return nil, internalErrorf(
			"wire %q of module %q reached while traversing module %q: connections crossing a module boundary must go through its outputs",
			a.Name(), a.Module().Name(), m.Name())
	}
	if a.Sort() == nil {
		return nil, internalErrorf(
			"submodule %q of %q is not annotated: submodules must be sealed before their supermodule",
			a.Module().Name(), m.Name())
	}
	var more []*netlist.Wire
	var err error
	a.Sort().Members().Range(func(bw sorts.BoundaryWire) bool {
		affector, ok := bw.(*netlist.Wire)
		if !ok {
			err = internalErrorf("sort member %q of wire %q is not a netlist wire", bw, a.Name())
			return false
		}
		if drv, ok := sc.DriverOf(affector); ok {
			more = append(more, drv.Args()...)
		}
		return true
	})
	if err != nil {
		return nil, err
	}
	return more, nil
}
