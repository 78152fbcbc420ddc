// Copyright 2024 The uplc-go Authors
// This file is part of the uplc-go library.
//
// The uplc-go library is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// The uplc-go library is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with the uplc-go library. If not, see <http://www.gnu.org/licenses/>.

// Package arena provides the per-evaluation bookkeeping object of
// component A of the design: an Arena counts the value and continuation
// nodes that one evaluation reports through Track.
//
// It is a counter, not an allocator. It allocates nothing, hands out no
// memory and owns none: terms, values, environments and frames are
// ordinary Go allocations owned by the runtime GC, and Reset does not
// release them. This mirrors the teacher's per-request scratch buffers
// (e.g. core/vm.Memory) being owned by one Interpreter.Run call.
package arena

// Arena counts the nodes tracked during a single evaluation.
type Arena struct {
	allocs int
}

// New returns a fresh Arena for one evaluation.
func New() *Arena {
	return &Arena{}
}

// Track records that a value was allocated for this evaluation. Callers
// are not required to route every allocation through Track; it exists so
// tests and diagnostics can observe allocation volume without the arena
// needing to own the actual memory.
func (a *Arena) Track() {
	a.allocs++
}

// Allocs reports how many nodes were tracked since the arena was created
// or last reset.
func (a *Arena) Allocs() int {
	return a.allocs
}

// Reset prepares the arena for reuse by a new evaluation by setting the
// count back to zero. Values obtained from a prior evaluation are not
// affected.
func (a *Arena) Reset() {
	a.allocs = 0
}
