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

	"github.com/hdlkit/wiresorts/netlist"
	"github.com/hdlkit/wiresorts/sorts"
)

// annotate sets the sort on every boundary wire of m. Modules sharing m's
// shape reuse the memoized sort map with wire identities remapped through the
// declared boundary names, skipping traversal entirely.
func (s *Session) annotate(m *netlist.Module) error {
	key := m.ShapeKey()
	if cached, ok := s.shapeSorts[key]; ok {
		log.Debugf("module %q: reusing cached sorts for shape %q", m.Name(), key)
		return s.applyCachedSorts(m, cached)
	}

	log.Debugf("annotating module %q with %d input(s) and %d output(s)",
		m.Name(), len(m.Inputs()), len(m.Outputs()))
	dependsOn, neededBy, err := s.intramodularMaps(m)
	if err != nil {
		return err
	}

	sortmap := make(map[string]sorts.Sort, len(m.Inputs())+len(m.Outputs()))
	for _, in := range m.Inputs() {
		var sort sorts.InputSort = sorts.Free{}
		if reached := neededBy[in]; len(reached) > 0 {
			sort = sorts.Needed{AwaitedBy: buildWireSet(reached)}
		}
		if err := installSort(in, sort); err != nil {
			return err
		}
		sortmap[in.OriginalName()] = sort
	}
	for _, out := range m.Outputs() {
		var sort sorts.OutputSort = sorts.Giving{}
		if deps := dependsOn[out]; len(deps) > 0 {
			sort = sorts.Dependent{DependsOn: buildWireSet(deps)}
		}
		if err := installSort(out, sort); err != nil {
			return err
		}
		sortmap[out.OriginalName()] = sort
	}

	s.shapeSorts[key] = sortmap
	return nil
}

// installSort validates the wire's ascription, if present, against the
// computed sort, then stores the computed sort in its place.
func installSort(w *netlist.Wire, sort sorts.Sort) error {
	if asc := w.Ascription(); asc != nil && !asc.Matches(sort) {
		return &AscriptionError{Wire: w, Declared: asc, Computed: sort}
	}
	w.SetSort(sort)
	return nil
}

func buildWireSet(ws wireSet) sorts.WireSet {
	b := sorts.NewWireSetBuilder()
	for w := range ws {
		b.Add(w)
	}
	return b.Build()
}

// applyCachedSorts clones the memoized sort map onto m's boundary wires,
// substituting each member wire through m's matching boundary name.
func (s *Session) applyCachedSorts(m *netlist.Module, cached map[string]sorts.Sort) error {
	for _, in := range m.Inputs() {
		sort, ok := cached[in.OriginalName()]
		if !ok {
			return internalErrorf(
				"cached sorts for shape %q carry no entry for input %q of module %q",
				m.ShapeKey(), in.Name(), m.Name())
		}
		remapped, err := remapSort(m, sort)
		if err != nil {
			return err
		}
		if err := installSort(in, remapped); err != nil {
			return err
		}
	}
	for _, out := range m.Outputs() {
		sort, ok := cached[out.OriginalName()]
		if !ok {
			return internalErrorf(
				"cached sorts for shape %q carry no entry for output %q of module %q",
				m.ShapeKey(), out.Name(), m.Name())
		}
		remapped, err := remapSort(m, sort)
		if err != nil {
			return err
		}
		if err := installSort(out, remapped); err != nil {
			return err
		}
	}
	return nil
}

func remapSort(m *netlist.Module, sort sorts.Sort) (sorts.Sort, error) {
	switch sort := sort.(type) {
	case sorts.Free:
		return sorts.Free{}, nil
	case sorts.Giving:
		return sorts.Giving{}, nil
	case sorts.Needed:
		members, err := remapMembers(m, sort.AwaitedBy, m.Output)
		if err != nil {
			return nil, err
		}
		return sorts.Needed{AwaitedBy: members}, nil
	case sorts.Dependent:
		members, err := remapMembers(m, sort.DependsOn, m.Input)
		if err != nil {
			return nil, err
		}
		return sorts.Dependent{DependsOn: members}, nil
	}
	return nil, internalErrorf("unknown cached sort %s for module %q", sort.SortName(), m.Name())
}

func remapMembers(m *netlist.Module, members sorts.WireSet, lookup func(string) (*netlist.Wire, bool)) (sorts.WireSet, error) {
	b := sorts.NewWireSetBuilder()
	var err error
	members.Range(func(bw sorts.BoundaryWire) bool {
		w, ok := lookup(bw.OriginalName())
		if !ok {
			err = internalErrorf(
				"cached sort for shape %q names boundary wire %q, which module %q does not declare",
				m.ShapeKey(), bw.OriginalName(), m.Name())
			return false
		}
		b.Add(w)
		return true
	})
	if err != nil {
		return sorts.EmptyWireSet, err
	}
	return b.Build(), nil
}
