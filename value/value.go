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

// Package value holds the CEK machine's runtime value representation
// (component A, spec.md §3) as a leaf package with no dependency on
// either package builtin or package machine. Both depend on it instead
// of on each other: a handful of builtins (ifThenElse, chooseUnit,
// chooseList, trace) must inspect or return arbitrary runtime Values, not
// just Constants, which would otherwise force builtin to import machine
// and machine to import builtin.
//
// Only the plain de Bruijn binder representation appears here: by the
// time a Term reaches the CEK machine it has already been flat-decoded
// (or produced directly with de Bruijn binders), matching the reference
// evaluator's Binder = NamedDeBruijn-at-the-syntax-layer /
// DeBruijn-at-the-machine-layer split (spec.md §9, "binder polymorphism
// note").
package value

import (
	"github.com/uplc-go/uplc/binder"
	"github.com/uplc-go/uplc/syn"
)

// Term is the concrete term type the CEK machine reduces.
type Term = syn.Term[binder.DeBruijn]

// Kind tags the five-constructor runtime value universe: Con | Lambda |
// Builtin | Delay | Constr (spec.md §3).
type Kind uint8

const (
	KindCon Kind = iota
	KindLambda
	KindBuiltin
	KindDelay
	KindConstr
)

// Value is the CEK machine's runtime value.
type Value struct {
	Kind Kind

	Con *syn.Constant // KindCon

	LambdaBody *Term // KindLambda
	LambdaEnv  Env   // KindLambda

	Builtin      syn.DefaultFunction // KindBuiltin
	BuiltinForce int                 // how many Force applications have already been stripped
	BuiltinArgs  []*Value            // accumulated arguments

	DelayBody *Term // KindDelay
	DelayEnv  Env   // KindDelay

	ConstrTag    uint64
	ConstrFields []*Value
}

// Env is the runtime environment a closure captures: an immutable cons
// list of Values, looked up by de Bruijn index (component A, §4.4).
type Env struct {
	parent *Env
	v      *Value
}

// EmptyEnv is the environment a top-level program starts evaluating in.
var EmptyEnv = Env{}

// Push returns a new environment with v bound at index 1, pushing every
// existing binding's index up by one (spec.md §4.4).
func (e Env) Push(v *Value) Env {
	return Env{parent: &e, v: v}
}

// Lookup resolves a 1-based de Bruijn index against the environment.
func (e Env) Lookup(idx uint64) (*Value, bool) {
	cur := &e
	for i := uint64(1); i < idx; i++ {
		if cur.parent == nil {
			return nil, false
		}
		cur = cur.parent
	}
	if cur.v == nil {
		return nil, false
	}
	return cur.v, true
}

func NewCon(c *syn.Constant) *Value { return &Value{Kind: KindCon, Con: c} }

func NewLambda(body *Term, env Env) *Value {
	return &Value{Kind: KindLambda, LambdaBody: body, LambdaEnv: env}
}

func NewDelay(body *Term, env Env) *Value {
	return &Value{Kind: KindDelay, DelayBody: body, DelayEnv: env}
}

func NewBuiltin(fn syn.DefaultFunction) *Value {
	return &Value{Kind: KindBuiltin, Builtin: fn}
}

func NewConstr(tag uint64, fields []*Value) *Value {
	return &Value{Kind: KindConstr, ConstrTag: tag, ConstrFields: fields}
}

// AsCon unwraps a constant, the shape required by most builtin argument
// positions (spec.md §7: a non-Con argument here is a builtin type error).
func (v *Value) AsCon() (*syn.Constant, bool) {
	if v == nil || v.Kind != KindCon {
		return nil, false
	}
	return v.Con, true
}

// AsBool unwraps a boolean constant specifically, used by ifThenElse and
// the comparison builtins' callers.
func (v *Value) AsBool() (bool, bool) {
	c, ok := v.AsCon()
	if !ok || c.Kind != syn.CBool {
		return false, false
	}
	return c.Bool, true
}

// Discharge converts a runtime Value back into a Term, re-embedding a
// captured environment as nested Lambda/Apply nodes around the body (the
// operation the reference evaluator calls "discharging" a value when it
// must be turned back into syntax, e.g. inside Force/Delay under
// extended-literal builtins). Discharge is idempotent on values with an
// empty captured environment (spec.md §8, "discharge is idempotent on
// already-closed values").
func Discharge(v *Value) *Term {
	switch v.Kind {
	case KindCon:
		return syn.ConstantTerm[binder.DeBruijn](v.Con)
	case KindBuiltin:
		t := syn.Builtin[binder.DeBruijn](v.Builtin)
		for i := 0; i < v.BuiltinForce; i++ {
			t = syn.Force(t)
		}
		for _, arg := range v.BuiltinArgs {
			t = syn.Apply(t, Discharge(arg))
		}
		return t
	case KindDelay:
		return syn.Delay(dischargeInEnv(v.DelayBody, v.DelayEnv))
	case KindLambda:
		return syn.Lambda[binder.DeBruijn](binder.DeBruijn(0), substituteFree(v.LambdaBody, v.LambdaEnv, 1))
	case KindConstr:
		fields := make([]*Term, len(v.ConstrFields))
		for i, f := range v.ConstrFields {
			fields[i] = Discharge(f)
		}
		return syn.Constr[binder.DeBruijn](v.ConstrTag, fields)
	default:
		return syn.Error[binder.DeBruijn]()
	}
}

// dischargeInEnv substitutes every free variable of body that resolves in
// env with its discharged value, leaving variables beyond env's depth
// untouched (they are bound further out, by a binder not yet discharged).
func dischargeInEnv(body *Term, env Env) *Term {
	return substituteFree(body, env, 0)
}

func substituteFree(t *Term, env Env, depth uint64) *Term {
	switch t.Kind {
	case syn.TermVar:
		idx := t.Var.Index()
		if idx <= depth {
			return t
		}
		if val, ok := env.Lookup(idx - depth); ok {
			return Discharge(val)
		}
		return t
	case syn.TermDelay:
		return syn.Delay(substituteFree(t.DelayBody, env, depth))
	case syn.TermForce:
		return syn.Force(substituteFree(t.ForceBody, env, depth))
	case syn.TermLambda:
		return syn.Lambda(t.LambdaParam, substituteFree(t.LambdaBody, env, depth+1))
	case syn.TermApply:
		return syn.Apply(substituteFree(t.ApplyFun, env, depth), substituteFree(t.ApplyArg, env, depth))
	case syn.TermConstr:
		fields := make([]*Term, len(t.ConstrFields))
		for i, f := range t.ConstrFields {
			fields[i] = substituteFree(f, env, depth)
		}
		return syn.Constr(t.ConstrTag, fields)
	case syn.TermCase:
		branches := make([]*Term, len(t.CaseBranches))
		for i, b := range t.CaseBranches {
			branches[i] = substituteFree(b, env, depth)
		}
		return syn.Case(substituteFree(t.CaseScrutinee, env, depth), branches)
	default:
		return t
	}
}
