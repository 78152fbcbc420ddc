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

package costmodel

// ExBudget is the two-dimensional (memory, cpu) resource counter the CEK
// machine spends on every step and every builtin application (spec.md
// §3, §4.1).
type ExBudget struct {
	Mem, Cpu int64
}

func NewExBudget(mem, cpu int64) ExBudget { return ExBudget{Mem: mem, Cpu: cpu} }

// Sub returns b minus o; the machine subtracts spent budget from what
// remains and signals OutOfEx once either component goes negative.
func (b ExBudget) Sub(o ExBudget) ExBudget {
	return ExBudget{Mem: b.Mem - o.Mem, Cpu: b.Cpu - o.Cpu}
}

// Occurrences scales both components by n, used when a cost function's
// result must be charged n times (e.g. per-byte BLS scalar multiplication).
func (b ExBudget) Occurrences(n int64) ExBudget {
	return ExBudget{Mem: b.Mem * n, Cpu: b.Cpu * n}
}

// IsNegative reports whether either component has gone below zero, the
// OutOfEx condition (spec.md §7).
func (b ExBudget) IsNegative() bool {
	return b.Mem < 0 || b.Cpu < 0
}

// MachineBudget is the default budget a top-level evaluation starts with.
func MachineBudget() ExBudget { return ExBudget{Mem: 14_000_000, Cpu: 10_000_000_000} }

// MachineMaxBudget is the absolute ceiling a budget is never allowed to
// request above (used to bound script parameters, not running budgets).
func MachineMaxBudget() ExBudget { return ExBudget{Mem: 14_000_000_000_000, Cpu: 10_000_000_000_000_000} }

// StartupBudget is spent once before a program begins reducing.
func StartupBudget() ExBudget { return ExBudget{Mem: 100, Cpu: 100} }

// perStepBudget is the shared constant every step kind below charges;
// only startup and the absence-of-builtin-discount cases differ from it
// (spec.md §4.1: "fixed machine-step costs, 100 mem / 16000 cpu").
var perStepBudget = ExBudget{Mem: 100, Cpu: 16000}

// StepKind enumerates the nine CEK transition kinds MachineCosts indexes,
// in the reference evaluator's declared array order.
type StepKind int

const (
	StepConstant StepKind = iota
	StepVar
	StepLambda
	StepApply
	StepDelay
	StepForce
	StepBuiltin
	StepConstr
	StepCase
)

// MachineCosts is the fixed per-step-kind budget table.
type MachineCosts [9]ExBudget

// NewMachineCosts builds the table; every step currently costs the same
// fixed budget in the reference cost model, but callers index by StepKind
// rather than assuming that invariant so a future cost model revision
// that differentiates step costs stays a one-line change here.
func NewMachineCosts() MachineCosts {
	return MachineCosts{
		StepConstant: perStepBudget,
		StepVar:      perStepBudget,
		StepLambda:   perStepBudget,
		StepApply:    perStepBudget,
		StepDelay:    perStepBudget,
		StepForce:    perStepBudget,
		StepBuiltin:  perStepBudget,
		StepConstr:   perStepBudget,
		StepCase:     perStepBudget,
	}
}

func (m MachineCosts) Get(k StepKind) ExBudget { return m[k] }
