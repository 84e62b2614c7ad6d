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
	"sort"

	log "github.com/sirupsen/logrus"

	"github.com/hdlkit/wiresorts/netlist"
	"github.com/hdlkit/wiresorts/sorts"
)

// CheckConnection reports whether wiring output into input would close a
// combinational loop, either directly or transitively through connections
// already present. It must run before the physical connection is installed.
//
// If either wire's module is still being defined, the check is skipped: the
// boundary connectivity is not knowable yet and is re-validated when the
// enclosing module seals.
func (s *Session) CheckConnection(output, input *netlist.Wire) error {
	if output.Kind() != netlist.ModOutput || input.Kind() != netlist.ModInput {
		return internalErrorf(
			"connection check requires a module output and a module input, got %s %q and %s %q",
			output.Kind(), output.QualifiedName(), input.Kind(), input.QualifiedName())
	}
	if output.Sort() == nil || input.Sort() == nil {
		log.Debugf("skipping connection check %s -> %s: a module is still being defined",
			output.QualifiedName(), input.QualifiedName())
		return nil
	}

	depends := output.Sort().Members()
	awaited := input.Sort().Members()

	// The 1-hop loop needs no reachability: the output already depends on
	// this very input, or the input already awaits this very output.
	if depends.Contains(input) || awaited.Contains(output) {
		return &ConnectionError{Output: output, Input: input}
	}
	if depends.IsEmpty() || awaited.IsEmpty() {
		return nil
	}

	reach, err := s.reachability(composingModules(s.scope, output, input))
	if err != nil {
		return err
	}
	var bad bool
	depends.Range(func(r sorts.BoundaryWire) bool {
		awaited.Range(func(n sorts.BoundaryWire) bool {
			if reach[n.(*netlist.Wire)][r.(*netlist.Wire)] {
				bad = true
			}
			return !bad
		})
		return !bad
	})
	if bad {
		return &ConnectionError{Output: output, Input: input}
	}
	return nil
}

// composingModules returns the modules sharing an enclosing scope with the
// two endpoints of a proposed connection.
func composingModules(sc *netlist.Scope, output, input *netlist.Wire) []*netlist.Module {
	siblings := func(w *netlist.Wire) []*netlist.Module {
		if super := w.Module().Supermodule(); super != nil {
			return super.Submodules()
		}
		return sc.TopLevelModules()
	}
	modules := siblings(output)
	if input.Module().Supermodule() != output.Module().Supermodule() {
		present := make(map[*netlist.Module]bool, len(modules))
		for _, m := range modules {
			present[m] = true
		}
		for _, m := range siblings(input) {
			if !present[m] {
				modules = append(modules, m)
			}
		}
	}
	return modules
}

// VerifyInterconnects runs the well-connectedness check in batch over all
// connections between super's submodules, or between the top-level modules
// when super is nil. Every ill-formed connection found is reported.
func (s *Session) VerifyInterconnects(super *netlist.Module) error {
	container := "Top"
	modules := s.scope.TopLevelModules()
	if super != nil {
		container = super.Name()
		modules = super.Submodules()
	}
	if len(modules) == 0 {
		return nil
	}

	reach, err := s.reachability(modules)
	if err != nil {
		return err
	}

	var bad []*ConnectionError
	for _, m := range modules {
		for _, output := range m.Outputs() {
			if output.Sort() == nil {
				return internalErrorf(
					"cannot check well-connectedness of output %q: module %q is not annotated",
					output.Name(), m.Name())
			}
			for _, input := range sortedWires(reach[output]) {
				if input.Sort() == nil {
					return internalErrorf(
						"cannot check well-connectedness of input %q: module %q is not annotated",
						input.Name(), input.Module().Name())
				}
				if conn := transitiveLoop(reach, output, input); conn != nil {
					bad = append(bad, conn)
				}
			}
		}
	}
	if len(bad) > 0 {
		return &InterconnectError{Container: container, Bad: bad}
	}
	return nil
}

// transitiveLoop checks one existing output-to-input path for a closed
// combinational loop through the modules' sorts.
func transitiveLoop(reach reachMap, output, input *netlist.Wire) *ConnectionError {
	depends, isDependent := output.Sort().(sorts.Dependent)
	awaited, isNeeded := input.Sort().(sorts.Needed)
	if !isDependent || !isNeeded {
		return nil
	}
	var bad bool
	depends.DependsOn.Range(func(r sorts.BoundaryWire) bool {
		awaited.AwaitedBy.Range(func(n sorts.BoundaryWire) bool {
			if reach[n.(*netlist.Wire)][r.(*netlist.Wire)] {
				bad = true
			}
			return !bad
		})
		return !bad
	})
	if bad {
		return &ConnectionError{Output: output, Input: input}
	}
	return nil
}

func sortedWires(ws wireSet) []*netlist.Wire {
	wires := make([]*netlist.Wire, 0, len(ws))
	for w := range ws {
		wires = append(wires, w)
	}
	sort.Slice(wires, func(i, j int) bool {
		return wires[i].QualifiedName() < wires[j].QualifiedName()
	})
	return wires
}
