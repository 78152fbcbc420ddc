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
	"testing"

	"github.com/uplc-go/uplc/binder"
	"github.com/uplc-go/uplc/syn"
)

func builtinTerm(fn syn.DefaultFunction) *Term {
	return syn.Builtin[binder.DeBruijn](fn)
}

func apply(fun *Term, args ...*Term) *Term {
	for _, a := range args {
		fun = syn.Apply[binder.DeBruijn](fun, a)
	}
	return fun
}

func TestRunAddInteger(t *testing.T) {
	term := apply(builtinTerm(syn.AddInteger), intTerm(2), intTerm(3))

	m := newMachine()
	result, err := m.Run(term)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Kind != syn.TermConstant || result.Constant.Integer.Int64() != 5 {
		t.Fatalf("expected 5, got %+v", result)
	}
}

func TestRunIfThenElse(t *testing.T) {
	trueTerm := syn.ConstantTerm[binder.DeBruijn](syn.NewBool(true))
	ite := syn.Force[binder.DeBruijn](builtinTerm(syn.IfThenElse))
	term := apply(ite, trueTerm, intTerm(1), intTerm(2))

	m := newMachine()
	result, err := m.Run(term)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Kind != syn.TermConstant || result.Constant.Integer.Int64() != 1 {
		t.Fatalf("expected the then-branch (1), got %+v", result)
	}

	falseTerm := syn.ConstantTerm[binder.DeBruijn](syn.NewBool(false))
	term2 := apply(ite, falseTerm, intTerm(1), intTerm(2))
	m2 := newMachine()
	result2, err := m2.Run(term2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result2.Kind != syn.TermConstant || result2.Constant.Integer.Int64() != 2 {
		t.Fatalf("expected the else-branch (2), got %+v", result2)
	}
}

func TestRunUnexpectedBuiltinTermArgWhenForceMissing(t *testing.T) {
	trueTerm := syn.ConstantTerm[binder.DeBruijn](syn.NewBool(true))
	// ifThenElse needs one Force before its value arguments; applying it
	// directly must fail rather than silently accept the argument as if
	// it were the missing type abstraction.
	term := apply(builtinTerm(syn.IfThenElse), trueTerm, intTerm(1), intTerm(2))

	m := newMachine()
	_, err := m.Run(term)
	cekErr, ok := err.(*Error)
	if !ok {
		t.Fatalf("expected a *Error, got %T (%v)", err, err)
	}
	if cekErr.Kind != UnexpectedBuiltinTermArg {
		t.Fatalf("expected UnexpectedBuiltinTermArg, got %v", cekErr.Kind)
	}
}

// TestRunFibonacciByYCombinator mirrors spec.md's end-to-end scenario of
// running a small recursive program (the reference benchmark suite's
// fibonacci-by-self-application) through the full CEK loop, combining
// Lambda/Apply, IfThenElse, LessThanEqualsInteger and SubtractInteger.
func TestRunFibonacciByYCombinator(t *testing.T) {
	// fib = \self n -> force (force ifThenElse (lessThanEqualsInteger n 1) (delay n)
	//                    (delay (addInteger (self self (n-1)) (self self (n-2)))))
	// applied via self-application (self self) instead of a Y-combinator
	// fixpoint wrapper, the usual untyped encoding of recursion. Both
	// branches are delayed because ifThenElse evaluates all its arguments.
	selfVar := func() *Term { return syn.Var[binder.DeBruijn](binder.DeBruijn(2)) }
	nVar := func() *Term { return syn.Var[binder.DeBruijn](binder.DeBruijn(1)) }

	ite := syn.Force[binder.DeBruijn](builtinTerm(syn.IfThenElse))
	lte := builtinTerm(syn.LessThanEqualsInteger)
	sub := builtinTerm(syn.SubtractInteger)
	add := builtinTerm(syn.AddInteger)

	body := syn.Force[binder.DeBruijn](apply(ite,
		apply(lte, nVar(), intTerm(1)),
		syn.Delay[binder.DeBruijn](nVar()),
		syn.Delay[binder.DeBruijn](apply(add,
			apply(selfVar(), selfVar(), apply(sub, nVar(), intTerm(1))),
			apply(selfVar(), selfVar(), apply(sub, nVar(), intTerm(2))),
		)),
	))
	fib := syn.Lambda[binder.DeBruijn](binder.DeBruijn(0),
		syn.Lambda[binder.DeBruijn](binder.DeBruijn(0), body))

	term := apply(fib, fib, intTerm(10))

	m := newMachine()
	result, err := m.Run(term)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Kind != syn.TermConstant || result.Constant.Integer.Int64() != 55 {
		t.Fatalf("expected fib(10) == 55, got %+v", result)
	}
}
