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

// Package machine implements the CEK abstract machine (component D): the
// Compute/Return/Done state loop that reduces a Term to a Value under an
// ex-budget meter, driving package builtin's saturation bookkeeping and
// package value's runtime representation (spec.md §4, "The CEK Machine").
package machine

import (
	"github.com/uplc-go/uplc/value"
)

// ctxKind tags the seven-frame continuation stack the reference evaluator
// calls Context (spec.md §4.4, "evaluation context").
type ctxKind uint8

const (
	ctxNoFrame ctxKind = iota
	ctxAwaitArg
	ctxAwaitFunTerm
	ctxAwaitFunValue
	ctxForce
	ctxConstr
	ctxCases
)

// Context is the CEK machine's continuation stack: an immutable,
// singly-linked chain of frames rooted at NoFrame.
type Context struct {
	kind ctxKind
	next *Context

	// ctxAwaitArg
	function *value.Value

	// ctxAwaitFunTerm
	argEnv value.Env
	argTerm *Term

	// ctxAwaitFunValue
	argument *value.Value

	// ctxConstr
	constrEnv   value.Env
	constrTag   uint64
	constrTerms []*Term
	constrVals  []*value.Value

	// ctxCases
	caseEnv      value.Env
	caseBranches []*Term
}

// NoFrame is the empty continuation: reaching it while returning a value
// means evaluation is done.
var NoFrame = &Context{kind: ctxNoFrame}

func frameAwaitArg(function *value.Value, next *Context) *Context {
	return &Context{kind: ctxAwaitArg, function: function, next: next}
}

func frameAwaitFunTerm(env value.Env, argument *Term, next *Context) *Context {
	return &Context{kind: ctxAwaitFunTerm, argEnv: env, argTerm: argument, next: next}
}

func frameAwaitFunValue(argument *value.Value, next *Context) *Context {
	return &Context{kind: ctxAwaitFunValue, argument: argument, next: next}
}

func frameForce(next *Context) *Context {
	return &Context{kind: ctxForce, next: next}
}

func frameConstrEmpty(env value.Env, tag uint64, terms []*Term, next *Context) *Context {
	return &Context{kind: ctxConstr, constrEnv: env, constrTag: tag, constrTerms: terms, next: next}
}

func frameConstr(env value.Env, tag uint64, terms []*Term, values []*value.Value, next *Context) *Context {
	return &Context{kind: ctxConstr, constrEnv: env, constrTag: tag, constrTerms: terms, constrVals: values, next: next}
}

func frameCases(env value.Env, branches []*Term, next *Context) *Context {
	return &Context{kind: ctxCases, caseEnv: env, caseBranches: branches, next: next}
}
