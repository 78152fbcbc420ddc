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

package machine

import (
	"github.com/uplc-go/uplc/binder"
	"github.com/uplc-go/uplc/syn"
	"github.com/uplc-go/uplc/value"
)

// Term is the concrete term type the CEK machine reduces: plain de Bruijn
// indices only, matching package value's binder choice.
type Term = syn.Term[binder.DeBruijn]

type stateKind uint8

const (
	stateCompute stateKind = iota
	stateReturn
	stateDone
)

// state is the machine's three-constructor transition state (spec.md
// §4.4: Compute | Return | Done).
type state struct {
	kind stateKind

	context *Context
	env     value.Env
	term    *Term

	value *value.Value

	done *Term
}

func computeState(context *Context, env value.Env, term *Term) state {
	return state{kind: stateCompute, context: context, env: env, term: term}
}

func returnState(context *Context, v *value.Value) state {
	return state{kind: stateReturn, context: context, value: v}
}

func doneState(term *Term) state {
	return state{kind: stateDone, done: term}
}
