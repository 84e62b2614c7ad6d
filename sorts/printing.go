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
	"strings"
)

func (Free) String() string { return "Free" }

func (Giving) String() string { return "Giving" }

func (s Needed) String() string {
	return "Needed (needed by: " + memberString(s.AwaitedBy) + ")"
}

func (s Dependent) String() string {
	return "Dependent (depends on: " + memberString(s.DependsOn) + ")"
}

func memberString(s WireSet) string {
	var sb strings.Builder
	first := true
	s.Range(func(w BoundaryWire) bool {
		if !first {
			sb.WriteString(", ")
		}
		first = false
		sb.WriteString(w.String())
		return true
	})
	return sb.String()
}
