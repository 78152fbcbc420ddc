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
	"fmt"

	"github.com/uplc-go/uplc/costmodel"
)

// ErrorKind enumerates the CEK machine's failure taxonomy (spec.md §7):
// every way a Compute/Return transition can refuse to produce the next
// state, on top of whatever a builtin.Error reports.
type ErrorKind string

const (
	ExplicitErrorTerm            ErrorKind = "explicit_error_term"
	NonFunctionApplication       ErrorKind = "non_function_application"
	OpenTermEvaluated            ErrorKind = "open_term_evaluated"
	OutOfEx                      ErrorKind = "out_of_budget"
	UnexpectedBuiltinTermArg     ErrorKind = "unexpected_builtin_term_argument"
	NonPolymorphicInstantiation  ErrorKind = "non_polymorphic_instantiation"
	BuiltinTermArgumentExpected  ErrorKind = "builtin_term_argument_expected"
	NonConstrScrutinized         ErrorKind = "non_constr_scrutinized"
	MissingCaseBranch            ErrorKind = "missing_case_branch"
	BuiltinRuntimeError          ErrorKind = "builtin_runtime_error"
)

// Error is the CEK machine's single failure type (spec.md §7,
// "EvalResult.term is either a Term or one of these failures").
type Error struct {
	Kind   ErrorKind
	Detail string

	// Budget is populated only for OutOfEx: the (already negative)
	// remaining budget at the point the machine ran out.
	Budget costmodel.ExBudget
}

func (e *Error) Error() string {
	if e.Detail == "" {
		return "machine: " + string(e.Kind)
	}
	return fmt.Sprintf("machine: %s: %s", e.Kind, e.Detail)
}

func errExplicitError() *Error {
	return &Error{Kind: ExplicitErrorTerm, Detail: "evaluation hit an Error term"}
}

func errNonFunctionApplication() *Error {
	return &Error{Kind: NonFunctionApplication, Detail: "applied argument to a non-function value"}
}

func errOpenTermEvaluated(idx uint64) *Error {
	return &Error{Kind: OpenTermEvaluated, Detail: fmt.Sprintf("variable index %d has no binding in scope", idx)}
}

func errOutOfEx(remaining costmodel.ExBudget) *Error {
	return &Error{Kind: OutOfEx, Detail: "ex-budget exhausted", Budget: remaining}
}

func errUnexpectedBuiltinTermArg() *Error {
	return &Error{Kind: UnexpectedBuiltinTermArg, Detail: "builtin received a value argument where a Force was expected"}
}

func errNonPolymorphicInstantiation() *Error {
	return &Error{Kind: NonPolymorphicInstantiation, Detail: "forced a value that is not a Delay or a polymorphic builtin"}
}

func errBuiltinTermArgumentExpected() *Error {
	return &Error{Kind: BuiltinTermArgumentExpected, Detail: "builtin with no remaining forces cannot be forced further"}
}

func errNonConstrScrutinized() *Error {
	return &Error{Kind: NonConstrScrutinized, Detail: "case scrutinized a non-Constr value"}
}

func errMissingCaseBranch(tag uint64, numBranches int) *Error {
	return &Error{Kind: MissingCaseBranch, Detail: fmt.Sprintf("constructor tag %d has no matching branch among %d", tag, numBranches)}
}

func errBuiltinRuntime(err error) *Error {
	return &Error{Kind: BuiltinRuntimeError, Detail: err.Error()}
}
