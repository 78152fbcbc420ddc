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

package eval

import (
	"testing"

	"github.com/uplc-go/uplc/binder"
	"github.com/uplc-go/uplc/builtin"
	"github.com/uplc-go/uplc/syn"
)

func constantProgram(version syn.Version, i int64) *Program {
	term := syn.ConstantTerm[binder.DeBruijn](syn.NewIntegerI64(i))
	return syn.NewProgram(version, term)
}

func TestOptionsForVersionSelectsSemantics(t *testing.T) {
	v1opts := OptionsForVersion(syn.PlutusV1)
	if v1opts.Semantics != builtin.SemanticsV1 {
		t.Fatalf("expected SemanticsV1 for %s, got %v", syn.PlutusV1, v1opts.Semantics)
	}

	v3opts := OptionsForVersion(syn.PlutusV2)
	if v3opts.Semantics != builtin.SemanticsV2 {
		t.Fatalf("expected SemanticsV2 for %s, got %v", syn.PlutusV2, v3opts.Semantics)
	}
}

func TestEvalConstantIsAlreadyNormalForm(t *testing.T) {
	program := constantProgram(syn.PlutusV2, 42)

	result := Eval(program, DefaultOptions())
	if result.Err != nil {
		t.Fatalf("unexpected error: %v", result.Err)
	}
	if result.Term.Kind != syn.TermConstant {
		t.Fatalf("expected a constant term back, got kind %v", result.Term.Kind)
	}
	if result.Term.Constant.Integer.Int64() != 42 {
		t.Fatalf("expected constant 42, got %v", result.Term.Constant.Integer)
	}
	if result.Info.ConsumedBudget.Cpu <= 0 {
		t.Fatalf("expected some CPU budget to be consumed for startup + one step")
	}
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	program := constantProgram(syn.PlutusV1, 7)

	data, err := EncodeProgram(program)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	decoded, err := DecodeProgram(data)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !decoded.Version.Equal(program.Version) {
		t.Fatalf("version mismatch: got %s, want %s", decoded.Version, program.Version)
	}
	if decoded.Term.Kind != syn.TermConstant || decoded.Term.Constant.Integer.Int64() != 7 {
		t.Fatalf("unexpected decoded term: %+v", decoded.Term)
	}
}
