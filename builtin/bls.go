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
	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"

	"github.com/uplc-go/uplc/costmodel"
	"github.com/uplc-go/uplc/crypto"
	"github.com/uplc-go/uplc/syn"
	"github.com/uplc-go/uplc/value"
)

// Ex-mem word sizes for the three BLS types, matching costmodel.ExMem's
// fixed placeholders for CG1/CG2/CMlResult constants.
const (
	g1ExMem       = 18
	g2ExMem       = 36
	mlResultExMem = 144
)

func unwrapG1(v *value.Value) (*bls12381.G1Affine, error) {
	c, err := unwrapConstant(v)
	if err != nil {
		return nil, err
	}
	if c.Kind != syn.CG1 {
		return nil, typeMismatch("bls12_381_G1_element", v)
	}
	return c.G1, nil
}

func unwrapG2(v *value.Value) (*bls12381.G2Affine, error) {
	c, err := unwrapConstant(v)
	if err != nil {
		return nil, err
	}
	if c.Kind != syn.CG2 {
		return nil, typeMismatch("bls12_381_G2_element", v)
	}
	return c.G2, nil
}

func unwrapMlResult(v *value.Value) (*bls12381.GT, error) {
	c, err := unwrapConstant(v)
	if err != nil {
		return nil, err
	}
	if c.Kind != syn.CMlResult {
		return nil, typeMismatch("bls12_381_MlResult", v)
	}
	return c.MlResult, nil
}

func g1Add(costs CostModel, spend func(costmodel.ExBudget) error, args []*value.Value) (*value.Value, error) {
	a, err := unwrapG1(args[0])
	if err != nil {
		return nil, err
	}
	b, err := unwrapG1(args[1])
	if err != nil {
		return nil, err
	}
	if err := spend(costOf(costs, syn.Bls12_381_G1_add, g1ExMem, g1ExMem)); err != nil {
		return nil, err
	}
	return value.NewCon(syn.NewG1(crypto.G1Add(a, b))), nil
}

func g1Neg(costs CostModel, spend func(costmodel.ExBudget) error, args []*value.Value) (*value.Value, error) {
	a, err := unwrapG1(args[0])
	if err != nil {
		return nil, err
	}
	if err := spend(costOf(costs, syn.Bls12_381_G1_neg, g1ExMem)); err != nil {
		return nil, err
	}
	return value.NewCon(syn.NewG1(crypto.G1Neg(a))), nil
}

// g1ScalarMul takes the scalar as its first argument (integer, point) per
// the reference evaluator's argument order. gnark-crypto's
// ScalarMultiplication accepts any signed big.Int, so unlike the reference
// implementation this does not pre-reduce the scalar modulo the group
// order before multiplying.
func g1ScalarMul(costs CostModel, spend func(costmodel.ExBudget) error, args []*value.Value) (*value.Value, error) {
	scalar, err := unwrapInteger(args[0])
	if err != nil {
		return nil, err
	}
	p, err := unwrapG1(args[1])
	if err != nil {
		return nil, err
	}
	if err := spend(costOf(costs, syn.Bls12_381_G1_scalarMul, costmodel.IntegerExMem(scalar), g1ExMem)); err != nil {
		return nil, err
	}
	return value.NewCon(syn.NewG1(crypto.G1ScalarMul(scalar, p))), nil
}

func g1Equal(costs CostModel, spend func(costmodel.ExBudget) error, args []*value.Value) (*value.Value, error) {
	a, err := unwrapG1(args[0])
	if err != nil {
		return nil, err
	}
	b, err := unwrapG1(args[1])
	if err != nil {
		return nil, err
	}
	if err := spend(costOf(costs, syn.Bls12_381_G1_equal, g1ExMem, g1ExMem)); err != nil {
		return nil, err
	}
	return value.NewCon(syn.NewBool(crypto.G1Equal(a, b))), nil
}

func g1Compress(costs CostModel, spend func(costmodel.ExBudget) error, args []*value.Value) (*value.Value, error) {
	a, err := unwrapG1(args[0])
	if err != nil {
		return nil, err
	}
	if err := spend(costOf(costs, syn.Bls12_381_G1_compress, g1ExMem)); err != nil {
		return nil, err
	}
	return value.NewCon(syn.NewByteString(crypto.G1Compress(a))), nil
}

func g1Uncompress(costs CostModel, spend func(costmodel.ExBudget) error, args []*value.Value) (*value.Value, error) {
	b, err := unwrapByteString(args[0])
	if err != nil {
		return nil, err
	}
	if err := spend(costOf(costs, syn.Bls12_381_G1_uncompress, costmodel.ByteStringExMem(b))); err != nil {
		return nil, err
	}
	p, err := crypto.G1Uncompress(b)
	if err != nil {
		return nil, &Error{Kind: "bls12_381_g1_uncompress", Detail: err.Error()}
	}
	return value.NewCon(syn.NewG1(p)), nil
}

func g1HashToGroup(costs CostModel, spend func(costmodel.ExBudget) error, args []*value.Value) (*value.Value, error) {
	msg, err := unwrapByteString(args[0])
	if err != nil {
		return nil, err
	}
	dst, err := unwrapByteString(args[1])
	if err != nil {
		return nil, err
	}
	if err := spend(costOf(costs, syn.Bls12_381_G1_hashToGroup, costmodel.ByteStringExMem(msg), costmodel.ByteStringExMem(dst))); err != nil {
		return nil, err
	}
	p, err := crypto.G1HashToGroup(msg, dst)
	if err != nil {
		return nil, &Error{Kind: "bls12_381_g1_hash_to_group", Detail: err.Error()}
	}
	return value.NewCon(syn.NewG1(p)), nil
}

func g2Add(costs CostModel, spend func(costmodel.ExBudget) error, args []*value.Value) (*value.Value, error) {
	a, err := unwrapG2(args[0])
	if err != nil {
		return nil, err
	}
	b, err := unwrapG2(args[1])
	if err != nil {
		return nil, err
	}
	if err := spend(costOf(costs, syn.Bls12_381_G2_add, g2ExMem, g2ExMem)); err != nil {
		return nil, err
	}
	return value.NewCon(syn.NewG2(crypto.G2Add(a, b))), nil
}

func g2Neg(costs CostModel, spend func(costmodel.ExBudget) error, args []*value.Value) (*value.Value, error) {
	a, err := unwrapG2(args[0])
	if err != nil {
		return nil, err
	}
	if err := spend(costOf(costs, syn.Bls12_381_G2_neg, g2ExMem)); err != nil {
		return nil, err
	}
	return value.NewCon(syn.NewG2(crypto.G2Neg(a))), nil
}

func g2ScalarMul(costs CostModel, spend func(costmodel.ExBudget) error, args []*value.Value) (*value.Value, error) {
	scalar, err := unwrapInteger(args[0])
	if err != nil {
		return nil, err
	}
	p, err := unwrapG2(args[1])
	if err != nil {
		return nil, err
	}
	if err := spend(costOf(costs, syn.Bls12_381_G2_scalarMul, costmodel.IntegerExMem(scalar), g2ExMem)); err != nil {
		return nil, err
	}
	return value.NewCon(syn.NewG2(crypto.G2ScalarMul(scalar, p))), nil
}

func g2Equal(costs CostModel, spend func(costmodel.ExBudget) error, args []*value.Value) (*value.Value, error) {
	a, err := unwrapG2(args[0])
	if err != nil {
		return nil, err
	}
	b, err := unwrapG2(args[1])
	if err != nil {
		return nil, err
	}
	if err := spend(costOf(costs, syn.Bls12_381_G2_equal, g2ExMem, g2ExMem)); err != nil {
		return nil, err
	}
	return value.NewCon(syn.NewBool(crypto.G2Equal(a, b))), nil
}

func g2Compress(costs CostModel, spend func(costmodel.ExBudget) error, args []*value.Value) (*value.Value, error) {
	a, err := unwrapG2(args[0])
	if err != nil {
		return nil, err
	}
	if err := spend(costOf(costs, syn.Bls12_381_G2_compress, g2ExMem)); err != nil {
		return nil, err
	}
	return value.NewCon(syn.NewByteString(crypto.G2Compress(a))), nil
}

func g2Uncompress(costs CostModel, spend func(costmodel.ExBudget) error, args []*value.Value) (*value.Value, error) {
	b, err := unwrapByteString(args[0])
	if err != nil {
		return nil, err
	}
	if err := spend(costOf(costs, syn.Bls12_381_G2_uncompress, costmodel.ByteStringExMem(b))); err != nil {
		return nil, err
	}
	p, err := crypto.G2Uncompress(b)
	if err != nil {
		return nil, &Error{Kind: "bls12_381_g2_uncompress", Detail: err.Error()}
	}
	return value.NewCon(syn.NewG2(p)), nil
}

func g2HashToGroup(costs CostModel, spend func(costmodel.ExBudget) error, args []*value.Value) (*value.Value, error) {
	msg, err := unwrapByteString(args[0])
	if err != nil {
		return nil, err
	}
	dst, err := unwrapByteString(args[1])
	if err != nil {
		return nil, err
	}
	if err := spend(costOf(costs, syn.Bls12_381_G2_hashToGroup, costmodel.ByteStringExMem(msg), costmodel.ByteStringExMem(dst))); err != nil {
		return nil, err
	}
	p, err := crypto.G2HashToGroup(msg, dst)
	if err != nil {
		return nil, &Error{Kind: "bls12_381_g2_hash_to_group", Detail: err.Error()}
	}
	return value.NewCon(syn.NewG2(p)), nil
}

func millerLoop(costs CostModel, spend func(costmodel.ExBudget) error, args []*value.Value) (*value.Value, error) {
	p, err := unwrapG1(args[0])
	if err != nil {
		return nil, err
	}
	q, err := unwrapG2(args[1])
	if err != nil {
		return nil, err
	}
	if err := spend(costOf(costs, syn.Bls12_381_millerLoop, g1ExMem, g2ExMem)); err != nil {
		return nil, err
	}
	r, err := crypto.MillerLoop(p, q)
	if err != nil {
		return nil, &Error{Kind: "bls12_381_miller_loop", Detail: err.Error()}
	}
	return value.NewCon(syn.NewMlResult(r)), nil
}

func mulMlResult(costs CostModel, spend func(costmodel.ExBudget) error, args []*value.Value) (*value.Value, error) {
	a, err := unwrapMlResult(args[0])
	if err != nil {
		return nil, err
	}
	b, err := unwrapMlResult(args[1])
	if err != nil {
		return nil, err
	}
	if err := spend(costOf(costs, syn.Bls12_381_mulMlResult, mlResultExMem, mlResultExMem)); err != nil {
		return nil, err
	}
	return value.NewCon(syn.NewMlResult(crypto.MulMlResult(a, b))), nil
}

func finalVerify(costs CostModel, spend func(costmodel.ExBudget) error, args []*value.Value) (*value.Value, error) {
	a, err := unwrapMlResult(args[0])
	if err != nil {
		return nil, err
	}
	b, err := unwrapMlResult(args[1])
	if err != nil {
		return nil, err
	}
	if err := spend(costOf(costs, syn.Bls12_381_finalVerify, mlResultExMem, mlResultExMem)); err != nil {
		return nil, err
	}
	return value.NewCon(syn.NewBool(crypto.FinalVerify(a, b))), nil
}

// blsBuiltin routes the whole BLS12-381 family (spec.md §5,
// "BLS12-381 primitives") to its per-operation handler.
func blsBuiltin(costs CostModel, fun syn.DefaultFunction, spend func(costmodel.ExBudget) error, args []*value.Value) (*value.Value, error) {
	switch fun {
	case syn.Bls12_381_G1_add:
		return g1Add(costs, spend, args)
	case syn.Bls12_381_G1_neg:
		return g1Neg(costs, spend, args)
	case syn.Bls12_381_G1_scalarMul:
		return g1ScalarMul(costs, spend, args)
	case syn.Bls12_381_G1_equal:
		return g1Equal(costs, spend, args)
	case syn.Bls12_381_G1_compress:
		return g1Compress(costs, spend, args)
	case syn.Bls12_381_G1_uncompress:
		return g1Uncompress(costs, spend, args)
	case syn.Bls12_381_G1_hashToGroup:
		return g1HashToGroup(costs, spend, args)
	case syn.Bls12_381_G2_add:
		return g2Add(costs, spend, args)
	case syn.Bls12_381_G2_neg:
		return g2Neg(costs, spend, args)
	case syn.Bls12_381_G2_scalarMul:
		return g2ScalarMul(costs, spend, args)
	case syn.Bls12_381_G2_equal:
		return g2Equal(costs, spend, args)
	case syn.Bls12_381_G2_compress:
		return g2Compress(costs, spend, args)
	case syn.Bls12_381_G2_uncompress:
		return g2Uncompress(costs, spend, args)
	case syn.Bls12_381_G2_hashToGroup:
		return g2HashToGroup(costs, spend, args)
	case syn.Bls12_381_millerLoop:
		return millerLoop(costs, spend, args)
	case syn.Bls12_381_mulMlResult:
		return mulMlResult(costs, spend, args)
	case syn.Bls12_381_finalVerify:
		return finalVerify(costs, spend, args)
	default:
		return nil, &Error{Kind: "unknown_builtin", Detail: "not a bls12_381 builtin"}
	}
}
