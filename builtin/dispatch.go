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

package builtin

import (
	"bytes"
	"math/big"

	"github.com/uplc-go/uplc/costmodel"
	"github.com/uplc-go/uplc/syn"
	"github.com/uplc-go/uplc/value"
)

// CostModel is the builtin-indexed parameter table Call charges against;
// package machine supplies costmodel.DefaultBuiltinCostModel (or a
// protocol-parameter-derived variant read at startup).
type CostModel = map[syn.DefaultFunction]costmodel.BuiltinCostFunction

func costOf(costs CostModel, fun syn.DefaultFunction, sizes ...int64) costmodel.ExBudget {
	bcf := costs[fun]
	return costmodel.ExBudget{Mem: bcf.Mem(sizes), Cpu: bcf.Cpu(sizes)}
}

// conSize and valueSize compute the ex-mem measure used as a cost-function
// input size for a Con-wrapped constant and for an arbitrary runtime
// Value respectively (spec.md §4.2). valueSize measures a constant by its
// ex-mem and any non-constant value (a lambda, delay, builtin or constr,
// such as a delayed ifThenElse branch) as a token size of 1.
func conSize(c *syn.Constant) int64 { return costmodel.ExMem(c) }

func valueSize(v *value.Value) int64 {
	if c, ok := v.AsCon(); ok {
		return costmodel.ExMem(c)
	}
	return 1
}

// Call runs a fully-saturated builtin: it charges the cost model's budget
// for the given semantics version first, via spend, then executes and
// returns the result (or the builtin.Error/division-by-zero/etc failure).
// trace receives the string argument of every Trace application, exactly
// once per call (spec.md §5, "trace").
func Call(
	costs CostModel,
	semantics Semantics,
	fun syn.DefaultFunction,
	args []*value.Value,
	spend func(costmodel.ExBudget) error,
	trace func(string),
) (*value.Value, error) {
	switch fun {
	case syn.AddInteger:
		return callIntInt(costs, fun, spend, args, func(a, b *big.Int) *big.Int { return new(big.Int).Add(a, b) })
	case syn.SubtractInteger:
		return callIntInt(costs, fun, spend, args, func(a, b *big.Int) *big.Int { return new(big.Int).Sub(a, b) })
	case syn.MultiplyInteger:
		return callIntInt(costs, fun, spend, args, func(a, b *big.Int) *big.Int { return new(big.Int).Mul(a, b) })
	case syn.DivideInteger:
		return divideInteger(costs, spend, args)
	case syn.QuotientInteger:
		return quotientInteger(costs, spend, args)
	case syn.RemainderInteger:
		return remainderInteger(costs, spend, args)
	case syn.ModInteger:
		return modInteger(costs, spend, args)
	case syn.EqualsInteger:
		return callIntBool(costs, fun, spend, args, func(a, b *big.Int) bool { return a.Cmp(b) == 0 })
	case syn.LessThanInteger:
		return callIntBool(costs, fun, spend, args, func(a, b *big.Int) bool { return a.Cmp(b) < 0 })
	case syn.LessThanEqualsInteger:
		return callIntBool(costs, fun, spend, args, func(a, b *big.Int) bool { return a.Cmp(b) <= 0 })

	case syn.AppendByteString:
		return appendByteString(costs, spend, args)
	case syn.ConsByteString:
		return consByteString(costs, semantics, spend, args)
	case syn.SliceByteString:
		return sliceByteString(costs, spend, args)
	case syn.LengthOfByteString:
		return lengthOfByteString(costs, spend, args)
	case syn.IndexByteString:
		return indexByteString(costs, spend, args)
	case syn.EqualsByteString:
		return callBsBsBool(costs, fun, spend, args, func(a, b []byte) bool { return bytes.Equal(a, b) })
	case syn.LessThanByteString:
		return callBsBsBool(costs, fun, spend, args, func(a, b []byte) bool { return bytes.Compare(a, b) < 0 })
	case syn.LessThanEqualsByteString:
		return callBsBsBool(costs, fun, spend, args, func(a, b []byte) bool { return bytes.Compare(a, b) <= 0 })

	case syn.Sha2_256, syn.Sha3_256, syn.Blake2b_256, syn.Blake2b_224, syn.Keccak_256:
		return hashBuiltin(costs, fun, spend, args)
	case syn.VerifyEd25519Signature, syn.VerifyEcdsaSecp256k1Signature, syn.VerifySchnorrSecp256k1Signature:
		return verifySignature(costs, fun, spend, args)

	case syn.AppendString:
		return appendString(costs, spend, args)
	case syn.EqualsString:
		return callStrStrBool(costs, fun, spend, args, func(a, b string) bool { return a == b })
	case syn.EncodeUtf8:
		return encodeUtf8(costs, spend, args)
	case syn.DecodeUtf8:
		return decodeUtf8(costs, spend, args)

	case syn.IfThenElse:
		return ifThenElse(costs, spend, args)
	case syn.ChooseUnit:
		return chooseUnit(costs, spend, args)
	case syn.Trace:
		return traceBuiltin(costs, spend, trace, args)
	case syn.FstPair:
		return fstPair(costs, spend, args)
	case syn.SndPair:
		return sndPair(costs, spend, args)
	case syn.ChooseList:
		return chooseList(costs, spend, args)
	case syn.MkCons:
		return mkCons(costs, spend, args)
	case syn.HeadList:
		return headList(costs, spend, args)
	case syn.TailList:
		return tailList(costs, spend, args)
	case syn.NullList:
		return nullList(costs, spend, args)

	case syn.ChooseData:
		return chooseData(costs, spend, args)
	case syn.ConstrData:
		return constrData(costs, spend, args)
	case syn.MapData:
		return mapData(costs, spend, args)
	case syn.ListData:
		return listData(costs, spend, args)
	case syn.IData:
		return iData(costs, spend, args)
	case syn.BData:
		return bData(costs, spend, args)
	case syn.UnConstrData:
		return unConstrData(costs, spend, args)
	case syn.UnMapData:
		return unMapData(costs, spend, args)
	case syn.UnListData:
		return unListData(costs, spend, args)
	case syn.UnIData:
		return unIData(costs, spend, args)
	case syn.UnBData:
		return unBData(costs, spend, args)
	case syn.EqualsData:
		return equalsData(costs, spend, args)
	case syn.SerialiseData:
		return serialiseData(costs, spend, args)
	case syn.MkPairData:
		return mkPairData(costs, spend, args)
	case syn.MkNilData:
		return mkNilData(costs, spend, args)
	case syn.MkNilPairData:
		return mkNilPairData(costs, spend, args)

	case syn.Bls12_381_G1_add, syn.Bls12_381_G1_neg, syn.Bls12_381_G1_scalarMul, syn.Bls12_381_G1_equal,
		syn.Bls12_381_G1_hashToGroup, syn.Bls12_381_G1_compress, syn.Bls12_381_G1_uncompress,
		syn.Bls12_381_G2_add, syn.Bls12_381_G2_neg, syn.Bls12_381_G2_scalarMul, syn.Bls12_381_G2_equal,
		syn.Bls12_381_G2_hashToGroup, syn.Bls12_381_G2_compress, syn.Bls12_381_G2_uncompress,
		syn.Bls12_381_millerLoop, syn.Bls12_381_mulMlResult, syn.Bls12_381_finalVerify:
		return blsBuiltin(costs, fun, spend, args)

	case syn.IntegerToByteString:
		return integerToByteString(costs, spend, args)
	case syn.ByteStringToInteger:
		return byteStringToInteger(costs, spend, args)

	default:
		return nil, &Error{Kind: "unknown_builtin", Detail: "no handler registered"}
	}
}
