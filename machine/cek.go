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
	"github.com/uplc-go/uplc/arena"
	"github.com/uplc-go/uplc/builtin"
	"github.com/uplc-go/uplc/costmodel"
	"github.com/uplc-go/uplc/syn"
	"github.com/uplc-go/uplc/value"
)

// slippage is the number of unbudgeted steps the machine tolerates before
// folding them into ex_budget, trading a little budget-accounting
// precision for not spending on every single step (spec.md §4.1,
// "step-and-maybe-spend slippage").
const slippage = 200

// Info is what a completed (successful or not) run reports alongside its
// resulting term: the budget actually spent and any trace log lines
// emitted along the way (spec.md §6, "EvalResult").
type Info struct {
	ConsumedBudget costmodel.ExBudget
	Logs           []string

	// Allocs is the number of Value/Context nodes the arena tracked
	// during the run, a diagnostic only: it never feeds back into the
	// budget or the result term (spec.md, component A, "Arena ownership
	// for recursive graphs").
	Allocs int
}

// Machine is one CEK evaluation: a mutable budget meter plus the cost
// model and builtin-semantics version it was configured with (spec.md
// §4, "The CEK Machine").
type Machine struct {
	costs     costmodel.MachineCosts
	builtins  builtin.CostModel
	semantics builtin.Semantics

	budget          costmodel.ExBudget
	unbudgetedSteps [10]int64

	logs  []string
	arena *arena.Arena
}

// New creates a Machine starting with initialBudget, charging nothing
// yet; Run spends the startup budget as its first action.
func New(initialBudget costmodel.ExBudget, costs costmodel.MachineCosts, builtins builtin.CostModel, semantics builtin.Semantics) *Machine {
	return &Machine{
		costs:     costs,
		builtins:  builtins,
		semantics: semantics,
		budget:    initialBudget,
		arena:     arena.New(),
	}
}

// Info returns the budget consumed and logs emitted so far; call after
// Run returns (successfully or not) to retrieve EvalResult.info.
func (m *Machine) Info(initialBudget costmodel.ExBudget) Info {
	return Info{
		ConsumedBudget: initialBudget.Sub(m.budget),
		Logs:           m.logs,
		Allocs:         m.arena.Allocs(),
	}
}

// Run reduces term to normal form under the machine's budget, returning
// the discharged result term or the first Error encountered (spec.md §4,
// "evaluation entry point").
func (m *Machine) Run(term *Term) (*Term, error) {
	if err := m.spendBudget(costmodel.StartupBudget()); err != nil {
		return nil, err
	}

	st := computeState(NoFrame, value.EmptyEnv, term)

	for {
		var err error
		switch st.kind {
		case stateCompute:
			st, err = m.compute(st.context, st.env, st.term)
		case stateReturn:
			st, err = m.returnCompute(st.context, st.value)
		case stateDone:
			return st.done, nil
		}
		if err != nil {
			return nil, err
		}
	}
}

func (m *Machine) compute(context *Context, env value.Env, term *Term) (state, error) {
	switch term.Kind {
	case syn.TermVar:
		if err := m.stepAndMaybeSpend(costmodel.StepVar); err != nil {
			return state{}, err
		}
		idx := term.Var.Index()
		v, ok := env.Lookup(idx)
		if !ok {
			return state{}, errOpenTermEvaluated(idx)
		}
		return returnState(context, v), nil

	case syn.TermLambda:
		if err := m.stepAndMaybeSpend(costmodel.StepLambda); err != nil {
			return state{}, err
		}
		v := value.NewLambda(term.LambdaBody, env)
		m.arena.Track()
		return returnState(context, v), nil

	case syn.TermApply:
		if err := m.stepAndMaybeSpend(costmodel.StepApply); err != nil {
			return state{}, err
		}
		frame := frameAwaitFunTerm(env, term.ApplyArg, context)
		m.arena.Track()
		return computeState(frame, env, term.ApplyFun), nil

	case syn.TermDelay:
		if err := m.stepAndMaybeSpend(costmodel.StepDelay); err != nil {
			return state{}, err
		}
		v := value.NewDelay(term.DelayBody, env)
		m.arena.Track()
		return returnState(context, v), nil

	case syn.TermForce:
		if err := m.stepAndMaybeSpend(costmodel.StepForce); err != nil {
			return state{}, err
		}
		frame := frameForce(context)
		m.arena.Track()
		return computeState(frame, env, term.ForceBody), nil

	case syn.TermConstr:
		if err := m.stepAndMaybeSpend(costmodel.StepConstr); err != nil {
			return state{}, err
		}
		if len(term.ConstrFields) == 0 {
			v := value.NewConstr(term.ConstrTag, nil)
			m.arena.Track()
			return returnState(context, v), nil
		}
		first, rest := term.ConstrFields[0], term.ConstrFields[1:]
		frame := frameConstrEmpty(env, term.ConstrTag, rest, context)
		m.arena.Track()
		return computeState(frame, env, first), nil

	case syn.TermCase:
		if err := m.stepAndMaybeSpend(costmodel.StepCase); err != nil {
			return state{}, err
		}
		frame := frameCases(env, term.CaseBranches, context)
		m.arena.Track()
		return computeState(frame, env, term.CaseScrutinee), nil

	case syn.TermConstant:
		if err := m.stepAndMaybeSpend(costmodel.StepConstant); err != nil {
			return state{}, err
		}
		v := value.NewCon(term.Constant)
		m.arena.Track()
		return returnState(context, v), nil

	case syn.TermBuiltin:
		if err := m.stepAndMaybeSpend(costmodel.StepBuiltin); err != nil {
			return state{}, err
		}
		v := value.NewBuiltin(term.Builtin)
		m.arena.Track()
		return returnState(context, v), nil

	case syn.TermError:
		return state{}, errExplicitError()

	default:
		return state{}, errExplicitError()
	}
}

func (m *Machine) returnCompute(context *Context, v *value.Value) (state, error) {
	switch context.kind {
	case ctxAwaitFunTerm:
		frame := frameAwaitArg(v, context.next)
		m.arena.Track()
		return computeState(frame, context.argEnv, context.argTerm), nil

	case ctxAwaitArg:
		return m.applyEvaluate(context.next, context.function, v)

	case ctxAwaitFunValue:
		return m.applyEvaluate(context.next, v, context.argument)

	case ctxForce:
		return m.forceEvaluate(context.next, v)

	case ctxConstr:
		values := make([]*value.Value, len(context.constrVals)+1)
		copy(values, context.constrVals)
		values[len(context.constrVals)] = v

		if len(context.constrTerms) == 0 {
			result := value.NewConstr(context.constrTag, values)
			m.arena.Track()
			return returnState(context.next, result), nil
		}
		first, rest := context.constrTerms[0], context.constrTerms[1:]
		frame := frameConstr(context.constrEnv, context.constrTag, rest, values, context.next)
		m.arena.Track()
		return computeState(frame, context.constrEnv, first), nil

	case ctxCases:
		if v.Kind != value.KindConstr {
			return state{}, errNonConstrScrutinized()
		}
		if int(v.ConstrTag) >= len(context.caseBranches) {
			return state{}, errMissingCaseBranch(v.ConstrTag, len(context.caseBranches))
		}
		branch := context.caseBranches[v.ConstrTag]
		frame := transferArgStack(v.ConstrFields, context.next)
		m.arena.Track()
		return computeState(frame, context.caseEnv, branch), nil

	case ctxNoFrame:
		if m.unbudgetedSteps[9] > 0 {
			if err := m.spendUnbudgetedSteps(); err != nil {
				return state{}, err
			}
		}
		term := value.Discharge(v)
		return doneState(term), nil

	default:
		return state{}, errExplicitError()
	}
}

// transferArgStack wraps a Constr's discharged fields as a chain of
// FrameAwaitFunValue continuations, last field first, so field 0's frame
// is on top and the matched Case branch is applied to the fields one at a
// time in order, exactly as if they had been written out as nested Apply
// terms (spec.md §4.4, "Case branch application").
func transferArgStack(fields []*value.Value, context *Context) *Context {
	for i := len(fields) - 1; i >= 0; i-- {
		context = frameAwaitFunValue(fields[i], context)
	}
	return context
}

func (m *Machine) forceEvaluate(context *Context, v *value.Value) (state, error) {
	switch v.Kind {
	case value.KindDelay:
		return computeState(context, v.DelayEnv, v.DelayBody), nil

	case value.KindBuiltin:
		rt := &builtin.Runtime{Fun: v.Builtin, Forces: v.BuiltinForce, Args: v.BuiltinArgs}
		if !rt.NeedsForce() {
			return state{}, errBuiltinTermArgumentExpected()
		}
		forced := rt.Force()
		if forced.IsReady() {
			result, err := m.callBuiltin(forced)
			if err != nil {
				return state{}, err
			}
			return returnState(context, result), nil
		}
		m.arena.Track()
		return returnState(context, runtimeToValue(forced)), nil

	default:
		return state{}, errNonPolymorphicInstantiation()
	}
}

func (m *Machine) applyEvaluate(context *Context, function, argument *value.Value) (state, error) {
	switch function.Kind {
	case value.KindLambda:
		newEnv := function.LambdaEnv.Push(argument)
		return computeState(context, newEnv, function.LambdaBody), nil

	case value.KindBuiltin:
		rt := &builtin.Runtime{Fun: function.Builtin, Forces: function.BuiltinForce, Args: function.BuiltinArgs}
		if rt.NeedsForce() || !rt.IsArrow() {
			return state{}, errUnexpectedBuiltinTermArg()
		}
		pushed := rt.Push(argument)
		if pushed.IsReady() {
			result, err := m.callBuiltin(pushed)
			if err != nil {
				return state{}, err
			}
			return returnState(context, result), nil
		}
		m.arena.Track()
		return returnState(context, runtimeToValue(pushed)), nil

	default:
		return state{}, errNonFunctionApplication()
	}
}

func runtimeToValue(rt *builtin.Runtime) *value.Value {
	return &value.Value{Kind: value.KindBuiltin, Builtin: rt.Fun, BuiltinForce: rt.Forces, BuiltinArgs: rt.Args}
}

func (m *Machine) callBuiltin(rt *builtin.Runtime) (*value.Value, error) {
	result, err := builtin.Call(m.builtins, m.semantics, rt.Fun, rt.Args, m.spendBudget, m.trace)
	if err != nil {
		return nil, errBuiltinRuntime(err)
	}
	return result, nil
}

func (m *Machine) trace(msg string) {
	m.logs = append(m.logs, msg)
}

func (m *Machine) stepAndMaybeSpend(step costmodel.StepKind) error {
	m.unbudgetedSteps[step]++
	m.unbudgetedSteps[9]++

	if m.unbudgetedSteps[9] >= slippage {
		return m.spendUnbudgetedSteps()
	}
	return nil
}

func (m *Machine) spendUnbudgetedSteps() error {
	for kind := costmodel.StepKind(0); kind < 9; kind++ {
		unspent := m.costs.Get(kind).Occurrences(m.unbudgetedSteps[kind])
		if err := m.spendBudget(unspent); err != nil {
			return err
		}
		m.unbudgetedSteps[kind] = 0
	}
	m.unbudgetedSteps[9] = 0
	return nil
}

func (m *Machine) spendBudget(spend costmodel.ExBudget) error {
	m.budget = m.budget.Sub(spend)
	if m.budget.IsNegative() {
		return errOutOfEx(m.budget)
	}
	return nil
}
