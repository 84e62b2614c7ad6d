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
	"strings"

	"github.com/hdlkit/wiresorts/netlist"
	"github.com/hdlkit/wiresorts/sorts"
)

// AscriptionError reports a declared sort that does not match the computed
// sort. The declaration must be fixed by the caller; nothing is retried.
type AscriptionError struct {
	Wire     *netlist.Wire
	Declared sorts.Ascription
	Computed sorts.Sort
}

func (e *AscriptionError) Error() string {
	return fmt.Sprintf(
		"unmatched sort ascription on wire %q in module %q: declared %s, computed %s",
		e.Wire.Name(), e.Wire.Module().Name(), e.Declared, e.Computed)
}

// ConnectionError reports a proposed boundary connection that would close a
// combinational loop. The connection is rejected before the netlist is
// touched; the circuit is left unmodified.
type ConnectionError struct {
	Output *netlist.Wire
	Input  *netlist.Wire
}

func (e *ConnectionError) Error() string {
	return fmt.Sprintf(
		"invalid intermodular connection from output %q to input %q: it would close a combinational loop",
		e.Output.QualifiedName(), e.Input.QualifiedName())
}

// InterconnectError reports every ill-formed connection found by a batch
// well-connectedness pass over a module collection.
type InterconnectError struct {
	// Container names the enclosing module, or "Top" for the top level.
	Container string
	Bad       []*ConnectionError
}

func (e *InterconnectError) Error() string {
	pairs := make([]string, len(e.Bad))
	for i, b := range e.Bad {
		pairs[i] = fmt.Sprintf("(%s -> %s)", b.Output.QualifiedName(), b.Input.QualifiedName())
	}
	return fmt.Sprintf(
		"invalid intermodular connections detected in %q: %s",
		e.Container, strings.Join(pairs, ", "))
}

// InternalError reports a violated engine invariant: a defect in the
// surrounding system rather than user error. Continuing past one would
// produce silently wrong reachability results, so they fail loudly.
type InternalError struct {
	msg string
}

func (e *InternalError) Error() string { return "internal: " + e.msg }

func internalErrorf(format string, args ...interface{}) *InternalError {
	return &InternalError{msg: fmt.Sprintf(format, args...)}
}
