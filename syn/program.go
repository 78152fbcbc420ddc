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

package syn

import "github.com/uplc-go/uplc/binder"

// Program pairs a version with the term it governs (the unit the flat
// codec and the evaluator driver operate on, spec.md §3/§6).
type Program[B binder.Binder] struct {
	Version Version
	Term    *Term[B]
}

func NewProgram[B binder.Binder](v Version, t *Term[B]) *Program[B] {
	return &Program[B]{Version: v, Term: t}
}
