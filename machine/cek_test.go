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
	"github.com/uplc-go/uplc/builtin"
	"github.com/uplc-go/uplc/costmodel"
	"github.com/uplc-go/uplc/syn"
)

func newMachine() *Machine {
	return New(costmodel.MachineBudget(), costmodel.NewMachineCosts(), costmodel.DefaultBuiltinCostModel, builtin.SemanticsV2)
}

func intTerm(i int64) *Term {
	return syn.ConstantTerm[binder.DeBruijn](syn.NewIntegerI64(i))
}

func varTerm(idx uint64) *Term {
	return syn.Var[binder.DeBruijn](binder.DeBruijn(idx))
}

func TestRunConstantIsAlreadyNormalForm(t *testing.T) {
	m := newMachine()
	result, err := m.Run(intTerm(42))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Kind != syn.TermConstant || result.Constant.Integer.Int64() != 42 {
		t.Fatalf("unexpected result term: %+v", result)
	}

	info := m.Info(costmodel.MachineBudget())
	if info.ConsumedBudget.Cpu <= 0 {
		t.Fatalf("expected nonzero consumed CPU budget")
	}
	if info.Allocs <= 0 {
		t.Fatalf("expected the arena to have tracked at least one node, got %d", info.Allocs)
	}
}

// TestRunIdentityApplication exercises the ordinary Apply/Lambda path: the
// identity function applied to 9 must reduce to the constant 9.
func TestRunIdentityApplication(t *testing.T) {
	identity := syn.Lambda[binder.DeBruijn](binder.DeBruijn(0), varTerm(1))
	term := syn.Apply[binder.DeBruijn](identity, intTerm(9))

	m := newMachine()
	result, err := m.Run(term)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Kind != syn.TermConstant || result.Constant.Integer.Int64() != 9 {
		t.Fatalf("unexpected result term: %+v", result)
	}
}

// TestRunCaseBranchFieldOrder pins down transferArgStack's field-to-parameter
// mapping: a Case branch with N curried lambda parameters must see its
// matched Constr's fields bound in the same left-to-right order they were
// written in, i.e. the branch behaves exactly as if it had been applied to
// the fields as nested ordinary Apply terms (spec.md §4.4, "Case branch
// application"). This is a regression test for the transferArgStack
// application-order bug: flipping the loop in transferArgStack would swap
// which field each de Bruijn index resolves to, and this test would catch
// it either way.
func TestRunCaseBranchFieldOrder(t *testing.T) {
	constr := syn.Constr[binder.DeBruijn](0, []*Term{intTerm(10), intTerm(20)})

	// Branch: \x y -> x, picking out the first field.
	selectFirst := syn.Lambda[binder.DeBruijn](binder.DeBruijn(0),
		syn.Lambda[binder.DeBruijn](binder.DeBruijn(0), varTerm(2)))
	term := syn.Case[binder.DeBruijn](constr, []*Term{selectFirst})

	m := newMachine()
	result, err := m.Run(term)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Kind != syn.TermConstant || result.Constant.Integer.Int64() != 10 {
		t.Fatalf("expected the first field (10) selected by de Bruijn index 2, got %+v", result)
	}

	// Branch: \x y -> y, picking out the second field.
	selectSecond := syn.Lambda[binder.DeBruijn](binder.DeBruijn(0),
		syn.Lambda[binder.DeBruijn](binder.DeBruijn(0), varTerm(1)))
	term2 := syn.Case[binder.DeBruijn](constr, []*Term{selectSecond})

	m2 := newMachine()
	result2, err := m2.Run(term2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result2.Kind != syn.TermConstant || result2.Constant.Integer.Int64() != 20 {
		t.Fatalf("expected the second field (20) selected by de Bruijn index 1, got %+v", result2)
	}
}

func TestRunMissingCaseBranch(t *testing.T) {
	constr := syn.Constr[binder.DeBruijn](1, nil)
	term := syn.Case[binder.DeBruijn](constr, []*Term{intTerm(0)})

	m := newMachine()
	_, err := m.Run(term)
	cekErr, ok := err.(*Error)
	if !ok {
		t.Fatalf("expected a *Error, got %T (%v)", err, err)
	}
	if cekErr.Kind != MissingCaseBranch {
		t.Fatalf("expected MissingCaseBranch, got %v", cekErr.Kind)
	}
}

func TestRunNonConstrScrutinized(t *testing.T) {
	term := syn.Case[binder.DeBruijn](intTerm(5), []*Term{intTerm(0)})

	m := newMachine()
	_, err := m.Run(term)
	cekErr, ok := err.(*Error)
	if !ok {
		t.Fatalf("expected a *Error, got %T (%v)", err, err)
	}
	if cekErr.Kind != NonConstrScrutinized {
		t.Fatalf("expected NonConstrScrutinized, got %v", cekErr.Kind)
	}
}

func TestRunExplicitError(t *testing.T) {
	m := newMachine()
	_, err := m.Run(syn.Error[binder.DeBruijn]())
	cekErr, ok := err.(*Error)
	if !ok {
		t.Fatalf("expected a *Error, got %T (%v)", err, err)
	}
	if cekErr.Kind != ExplicitErrorTerm {
		t.Fatalf("expected ExplicitErrorTerm, got %v", cekErr.Kind)
	}
}

func TestRunOpenTermEvaluated(t *testing.T) {
	m := newMachine()
	_, err := m.Run(varTerm(1))
	cekErr, ok := err.(*Error)
	if !ok {
		t.Fatalf("expected a *Error, got %T (%v)", err, err)
	}
	if cekErr.Kind != OpenTermEvaluated {
		t.Fatalf("expected OpenTermEvaluated, got %v", cekErr.Kind)
	}
}

func TestRunNonFunctionApplication(t *testing.T) {
	term := syn.Apply[binder.DeBruijn](intTerm(1), intTerm(2))

	m := newMachine()
	_, err := m.Run(term)
	cekErr, ok := err.(*Error)
	if !ok {
		t.Fatalf("expected a *Error, got %T (%v)", err, err)
	}
	if cekErr.Kind != NonFunctionApplication {
		t.Fatalf("expected NonFunctionApplication, got %v", cekErr.Kind)
	}
}

// TestRunOutOfExBudget confirms an exhausted budget reports OutOfEx rather
// than running forever or panicking: a tiny starting budget can't even
// cover the machine's own startup charge.
func TestRunOutOfExBudget(t *testing.T) {
	m := New(costmodel.NewExBudget(1, 1), costmodel.NewMachineCosts(), costmodel.DefaultBuiltinCostModel, builtin.SemanticsV2)
	_, err := m.Run(intTerm(1))
	cekErr, ok := err.(*Error)
	if !ok {
		t.Fatalf("expected a *Error, got %T (%v)", err, err)
	}
	if cekErr.Kind != OutOfEx {
		t.Fatalf("expected OutOfEx, got %v", cekErr.Kind)
	}
	if !cekErr.Budget.IsNegative() {
		t.Fatalf("expected the reported remaining budget to be negative, got %+v", cekErr.Budget)
	}
}

// TestRunStepSlippageAccounting exercises the 200-unbudgeted-step slippage
// path end to end: a long chain of nested identity applications runs well
// past the threshold, so the run must fold unbudgeted steps into the
// spent budget more than once without losing precision or erroring.
func TestRunStepSlippageAccounting(t *testing.T) {
	term := intTerm(0)
	for i := 0; i < 500; i++ {
		identity := syn.Lambda[binder.DeBruijn](binder.DeBruijn(0), varTerm(1))
		term = syn.Apply[binder.DeBruijn](identity, term)
	}

	m := newMachine()
	result, err := m.Run(term)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Kind != syn.TermConstant || result.Constant.Integer.Int64() != 0 {
		t.Fatalf("unexpected result term: %+v", result)
	}

	info := m.Info(costmodel.MachineBudget())
	if info.ConsumedBudget.Cpu <= 0 || info.ConsumedBudget.Mem <= 0 {
		t.Fatalf("expected nonzero consumed budget after 500 applications, got %+v", info.ConsumedBudget)
	}
}
