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

// Worklist is a LIFO stack driving the traversal loops. Paired with a Visited
// set it keeps traversal iterative and recursion-free.
//
// The zero value is an empty list.
type Worklist[T any] struct {
	items []T
}

// Push adds items to the list.
func (w *Worklist[T]) Push(items ...T) {
	w.items = append(w.items, items...)
}

// Pop removes and returns the most recently pushed item.
func (w *Worklist[T]) Pop() (T, bool) {
	if len(w.items) == 0 {
		var zero T
		return zero, false
	}
	item := w.items[len(w.items)-1]
	w.items = w.items[:len(w.items)-1]
	return item, true
}

// Len returns the number of pending items.
func (w *Worklist[T]) Len() int { return len(w.items) }
