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
	"fmt"
	"sort"
	"strings"
)

// Ascription is a user-declared expectation for a wire's sort, written at
// declaration time and checked against the computed sort once the wire's
// module is sealed.
type Ascription interface {
	AscribedKind() Kind
	// Matches reports whether the computed sort satisfies the ascription.
	Matches(s Sort) bool
	String() string
}

// KindAscription expects any sort of the given variant, regardless of its
// member set.
type KindAscription struct {
	Kind Kind
}

func (a KindAscription) AscribedKind() Kind { return a.Kind }

func (a KindAscription) Matches(s Sort) bool { return KindOf(s) == a.Kind }

func (a KindAscription) String() string { return a.Kind.String() }

// ExactAscription expects a sort of the given variant whose member set
// carries exactly the named peer wires. Peers are named rather than
// referenced because ascriptions are written before the peer wires exist.
type ExactAscription struct {
	Kind  Kind
	Peers []string
}

func (a ExactAscription) AscribedKind() Kind { return a.Kind }

func (a ExactAscription) Matches(s Sort) bool {
	if KindOf(s) != a.Kind {
		return false
	}
	return s.Members().EqualNames(a.Peers)
}

func (a ExactAscription) String() string {
	if len(a.Peers) == 0 {
		return a.Kind.String()
	}
	peers := make([]string, len(a.Peers))
	copy(peers, a.Peers)
	sort.Strings(peers)
	return a.Kind.String() + " (" + strings.Join(peers, ", ") + ")"
}

// CheckInputAscription rejects ascriptions whose variant cannot apply to a
// module input.
func CheckInputAscription(a Ascription, wirename string) error {
	if a == nil || a.AscribedKind().IsInput() {
		return nil
	}
	return fmt.Errorf(
		"invalid sort ascription for input %q (must be Free or Needed, got %s)",
		wirename, a.AscribedKind())
}

// CheckOutputAscription rejects ascriptions whose variant cannot apply to a
// module output.
func CheckOutputAscription(a Ascription, wirename string) error {
	if a == nil || a.AscribedKind().IsOutput() {
		return nil
	}
	return fmt.Errorf(
		"invalid sort ascription for output %q (must be Giving or Dependent, got %s)",
		wirename, a.AscribedKind())
}
