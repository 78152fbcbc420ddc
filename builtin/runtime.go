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

// Package builtin implements component B's run side: the ~75 default
// function handlers (spec.md §5) and the partial-application bookkeeping
// the CEK machine drives them through (spec.md §4, "builtin saturation").
package builtin

import (
	"github.com/uplc-go/uplc/syn"
	"github.com/uplc-go/uplc/value"
)

// Semantics selects between the two builtin behavior revisions the
// reference evaluator distinguishes (currently only consByteString's
// out-of-range-byte handling differs): V1 wraps modulo 256, V2 rejects
// the application outright (spec.md §5, "consByteString").
type Semantics int

const (
	SemanticsV1 Semantics = iota
	SemanticsV2
)

// arity is the number of value arguments (post type-abstraction) each
// DefaultFunction takes before it is ready to run.
var arity = map[syn.DefaultFunction]int{
	syn.AddInteger: 2, syn.SubtractInteger: 2, syn.MultiplyInteger: 2,
	syn.DivideInteger: 2, syn.QuotientInteger: 2, syn.RemainderInteger: 2, syn.ModInteger: 2,
	syn.EqualsInteger: 2, syn.LessThanInteger: 2, syn.LessThanEqualsInteger: 2,
	syn.AppendByteString: 2, syn.ConsByteString: 2, syn.SliceByteString: 3,
	syn.LengthOfByteString: 1, syn.IndexByteString: 2,
	syn.EqualsByteString: 2, syn.LessThanByteString: 2, syn.LessThanEqualsByteString: 2,
	syn.Sha2_256: 1, syn.Sha3_256: 1, syn.Blake2b_256: 1, syn.Blake2b_224: 1, syn.Keccak_256: 1,
	syn.VerifyEd25519Signature: 3, syn.VerifyEcdsaSecp256k1Signature: 3, syn.VerifySchnorrSecp256k1Signature: 3,
	syn.AppendString: 2, syn.EqualsString: 2, syn.EncodeUtf8: 1, syn.DecodeUtf8: 1,
	syn.IfThenElse: 3, syn.ChooseUnit: 2, syn.Trace: 2,
	syn.FstPair: 1, syn.SndPair: 1,
	syn.ChooseList: 3, syn.MkCons: 2, syn.HeadList: 1, syn.TailList: 1, syn.NullList: 1,
	syn.ChooseData: 6, syn.ConstrData: 2, syn.MapData: 1, syn.ListData: 1, syn.IData: 1, syn.BData: 1,
	syn.UnConstrData: 1, syn.UnMapData: 1, syn.UnListData: 1, syn.UnIData: 1, syn.UnBData: 1,
	syn.EqualsData: 2, syn.SerialiseData: 1, syn.MkPairData: 2, syn.MkNilData: 1, syn.MkNilPairData: 1,
	syn.Bls12_381_G1_add: 2, syn.Bls12_381_G1_neg: 1, syn.Bls12_381_G1_scalarMul: 2,
	syn.Bls12_381_G1_equal: 2, syn.Bls12_381_G1_hashToGroup: 2,
	syn.Bls12_381_G1_compress: 1, syn.Bls12_381_G1_uncompress: 1,
	syn.Bls12_381_G2_add: 2, syn.Bls12_381_G2_neg: 1, syn.Bls12_381_G2_scalarMul: 2,
	syn.Bls12_381_G2_equal: 2, syn.Bls12_381_G2_hashToGroup: 2,
	syn.Bls12_381_G2_compress: 1, syn.Bls12_381_G2_uncompress: 1,
	syn.Bls12_381_millerLoop: 2, syn.Bls12_381_mulMlResult: 2, syn.Bls12_381_finalVerify: 2,
	syn.IntegerToByteString: 3, syn.ByteStringToInteger: 2,
}

// forceCount is the number of leading type abstractions (Force
// applications) a builtin's polymorphic signature requires before its
// value arguments can be supplied (spec.md §4, "Force counting").
var forceCount = map[syn.DefaultFunction]int{
	syn.IfThenElse: 1, syn.ChooseUnit: 1, syn.Trace: 1,
	syn.FstPair: 2, syn.SndPair: 2,
	syn.ChooseList: 2, syn.MkCons: 1, syn.HeadList: 1, syn.TailList: 1, syn.NullList: 1,
	syn.ChooseData: 1,
}

// Arity returns how many value arguments fun needs before Call can run it.
func Arity(fun syn.DefaultFunction) int { return arity[fun] }

// ForceCount returns how many Force applications fun's signature requires
// first; zero for every monomorphic (non-polymorphic) builtin.
func ForceCount(fun syn.DefaultFunction) int { return forceCount[fun] }

// Runtime accumulates a builtin's pending forces and arguments as the
// machine's apply_evaluate keeps discharging Apply/Force nodes onto a
// partially-applied builtin value (mirrors the reference Runtime<V>).
type Runtime struct {
	Fun    syn.DefaultFunction
	Forces int
	Args   []*value.Value
}

// NewRuntime starts a fresh zero-argument, zero-force accumulator for fun.
func NewRuntime(fun syn.DefaultFunction) *Runtime {
	return &Runtime{Fun: fun}
}

// Force returns a copy with one more Force application recorded.
func (r *Runtime) Force() *Runtime {
	return &Runtime{Fun: r.Fun, Forces: r.Forces + 1, Args: r.Args}
}

// Push returns a copy with arg appended to the accumulated arguments.
func (r *Runtime) Push(arg *value.Value) *Runtime {
	args := make([]*value.Value, len(r.Args), len(r.Args)+1)
	copy(args, r.Args)
	args = append(args, arg)
	return &Runtime{Fun: r.Fun, Forces: r.Forces, Args: args}
}

// NeedsForce reports whether fun's signature still expects another Force
// before it will accept arguments.
func (r *Runtime) NeedsForce() bool { return r.Forces < ForceCount(r.Fun) }

// IsArrow reports whether fun can still accept more value arguments.
func (r *Runtime) IsArrow() bool { return len(r.Args) < Arity(r.Fun) }

// IsReady reports whether fun has received exactly as many arguments as
// its arity demands and Call can now run it.
func (r *Runtime) IsReady() bool { return len(r.Args) == Arity(r.Fun) }
