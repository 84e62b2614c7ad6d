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
	"fmt"

	"github.com/hdlkit/wiresorts/netlist"
	"github.com/hdlkit/wiresorts/sorts"
)

// Session is the context for one circuit-construction session. It owns the
// netlist scope and the per-shape sort cache.
//
// A session cannot be used concurrently; concurrent construction of multiple
// circuits must use independent sessions.
type Session struct {
	scope      *netlist.Scope
	shapeSorts map[string]map[string]sorts.Sort
}

// NewSession creates an empty session.
func NewSession() *Session {
	return &Session{
		scope:      netlist.NewScope(),
		shapeSorts: make(map[string]map[string]sorts.Sort),
	}
}

// Scope returns the session's netlist scope.
func (s *Session) Scope() *netlist.Scope { return s.scope }

// Reset discards the session's circuit and sort cache, as if starting a new
// session.
func (s *Session) Reset() {
	s.scope = netlist.NewScope()
	s.shapeSorts = make(map[string]map[string]sorts.Sort)
}

// NewModule opens a new module definition. Wires and nets created in the
// scope until the matching Seal belong to the module; opening a module while
// another is open creates a submodule.
func (s *Session) NewModule(name, defName string) (*netlist.Module, error) {
	return s.scope.OpenModule(name, defName)
}

// Seal completes the definition of m: the boundary-connectivity invariants
// are checked, every boundary wire receives its sort (validated against any
// ascription), and the module is closed. Sorts are computed exactly once per
// module instance, here.
func (s *Session) Seal(m *netlist.Module) error {
	if m.Sealed() {
		return fmt.Errorf("module %q is already sealed", m.Name())
	}
	// Refuse before annotating: sealing out of nesting order must not leave
	// an annotated-but-open module behind.
	if s.scope.InnermostOpen() != m {
		return fmt.Errorf("module %q is not the innermost open module", m.Name())
	}
	if err := m.CheckBoundary(); err != nil {
		return err
	}
	if err := s.annotate(m); err != nil {
		return err
	}
	return s.scope.CloseModule(m)
}

// Define opens a module, runs build to elaborate its body, and seals it.
func (s *Session) Define(name, defName string, build func(m *netlist.Module) error) (*netlist.Module, error) {
	m, err := s.NewModule(name, defName)
	if err != nil {
		return nil, err
	}
	if err := build(m); err != nil {
		return nil, err
	}
	if err := s.Seal(m); err != nil {
		return nil, err
	}
	return m, nil
}

// Connect wires src into dst. When the connection joins a sealed module's
// output to a sealed module's input, it is first checked for
// well-connectedness; on rejection the netlist is left untouched. Boundary
// connectivity involving a module still being defined is re-validated once
// the enclosing module seals.
func (s *Session) Connect(dst, src *netlist.Wire) error {
	if dst.Kind() == netlist.ModInput && src.Kind() == netlist.ModOutput {
		if err := s.CheckConnection(src, dst); err != nil {
			return err
		}
	}
	return s.scope.Assign(dst, src)
}
