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

// Package eval is the driver tying the flat codec, the cost model and the
// CEK machine together into the single entry point a caller actually
// wants: decode a program, run it, get back a term or a diagnosed
// failure plus the resources it consumed (spec.md §6, "Evaluation
// entry points").
package eval

import (
	"github.com/uplc-go/uplc/binder"
	"github.com/uplc-go/uplc/builtin"
	"github.com/uplc-go/uplc/costmodel"
	"github.com/uplc-go/uplc/flat"
	"github.com/uplc-go/uplc/machine"
	"github.com/uplc-go/uplc/params"
	"github.com/uplc-go/uplc/syn"
)

// Program is the plain de-Bruijn program the machine evaluates; the flat
// codec decodes straight into this shape since no textual name
// information is needed past parsing.
type Program = syn.Program[binder.DeBruijn]

// Result is what Eval returns: either the reduced term or the error that
// stopped evaluation, plus the resources consumed getting there
// (spec.md §6, "EvalResult").
type Result struct {
	Term *syn.Term[binder.DeBruijn]
	Err  error
	Info machine.Info
}

// Options configures one evaluation: which protocol version's builtin
// semantics and cost parameters to apply, and how much budget to start
// with (spec.md §6, "protocol-version-gated semantics").
type Options struct {
	Budget       costmodel.ExBudget
	Semantics    builtin.Semantics
	CostModel    builtin.CostModel
	MachineCosts costmodel.MachineCosts
}

// DefaultOptions returns the V2 semantics, mainnet-shaped default
// machine budget and the built-in cost-model table (spec.md §4.1/§4.2).
// Callers that already know a program's version should use
// OptionsForVersion instead, so the right builtin semantics apply.
func DefaultOptions() Options {
	return optionsWithSemantics(builtin.SemanticsV2)
}

// OptionsForVersion picks builtin semantics from a Program's version
// triple exactly the way the reference driver does (spec.md §6, "Selects
// BuiltinSemantics::V1 when version is 1.0.0, V2 when 1.1.0"), leaving
// the cost model, machine step costs and starting budget at their
// defaults.
func OptionsForVersion(version syn.Version) Options {
	return optionsWithSemantics(params.ConfigForVersion(version).Semantics)
}

func optionsWithSemantics(semantics builtin.Semantics) Options {
	return Options{
		Budget:       costmodel.MachineBudget(),
		Semantics:    semantics,
		CostModel:    costmodel.DefaultBuiltinCostModel,
		MachineCosts: costmodel.NewMachineCosts(),
	}
}

// DecodeProgram parses a flat-encoded byte slice into plain de-Bruijn
// syntax, the only binder representation the CEK machine accepts
// (spec.md §4.3, "Flat decode entry point").
func DecodeProgram(data []byte) (*Program, error) {
	return flat.DecodeProgram[binder.DeBruijn](data, binder.DeBruijnKind, func(b binder.Binder) binder.DeBruijn {
		return b.(binder.DeBruijn)
	})
}

// EncodeProgram serializes a plain de-Bruijn program back to its flat
// binary form.
func EncodeProgram(p *Program) ([]byte, error) {
	return flat.EncodeProgram[binder.DeBruijn](p)
}

// Eval runs a decoded program to normal form under opts, exactly as a
// ledger-rule validator would invoke the evaluator against a script
// context (spec.md §6).
func Eval(program *Program, opts Options) Result {
	m := machine.New(opts.Budget, opts.MachineCosts, opts.CostModel, opts.Semantics)
	term, err := m.Run(program.Term)
	return Result{
		Term: term,
		Err:  err,
		Info: m.Info(opts.Budget),
	}
}

// EvalScript decodes the flat-encoded data and evaluates it, the shape
// most callers (a CLI, a ledger rule) actually want. Builtin semantics
// are selected from the decoded program's own version triple
// (OptionsForVersion); overrides may replace Budget, CostModel and
// MachineCosts, leaving the zero value for a field to keep the
// version-derived default. overrides.Semantics is not consulted: the
// semantics always come from the version triple.
func EvalScript(data []byte, overrides Options) Result {
	program, err := DecodeProgram(data)
	if err != nil {
		return Result{Err: err}
	}
	opts := OptionsForVersion(program.Version)
	if overrides.Budget != (costmodel.ExBudget{}) {
		opts.Budget = overrides.Budget
	}
	if overrides.CostModel != nil {
		opts.CostModel = overrides.CostModel
	}
	if overrides.MachineCosts != (costmodel.MachineCosts{}) {
		opts.MachineCosts = overrides.MachineCosts
	}
	return Eval(program, opts)
}
