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

import "github.com/uplc-go/uplc/syn"

// BuiltinCostFunction pairs a builtin's declared arity with its mem/cpu
// cost functions, type-erased to a uniform []int64 signature so package
// builtin can dispatch through one table regardless of arity (spec.md
// §4.2, "Built-in runtime cost dispatch contract").
type BuiltinCostFunction struct {
	Arity int
	Mem   func(args []int64) int64
	Cpu   func(args []int64) int64
}

func one(mem, cpu OneArgument) BuiltinCostFunction {
	return BuiltinCostFunction{
		Arity: 1,
		Mem:   func(a []int64) int64 { return mem.Cost(a[0]) },
		Cpu:   func(a []int64) int64 { return cpu.Cost(a[0]) },
	}
}

func two(mem, cpu TwoArguments) BuiltinCostFunction {
	return BuiltinCostFunction{
		Arity: 2,
		Mem:   func(a []int64) int64 { return mem.Cost(a[0], a[1]) },
		Cpu:   func(a []int64) int64 { return cpu.Cost(a[0], a[1]) },
	}
}

func three(mem, cpu ThreeArguments) BuiltinCostFunction {
	return BuiltinCostFunction{
		Arity: 3,
		Mem:   func(a []int64) int64 { return mem.Cost(a[0], a[1], a[2]) },
		Cpu:   func(a []int64) int64 { return cpu.Cost(a[0], a[1], a[2]) },
	}
}

func six(mem, cpu SixArguments) BuiltinCostFunction {
	return BuiltinCostFunction{
		Arity: 6,
		Mem:   func(a []int64) int64 { return mem.Cost([6]int64{a[0], a[1], a[2], a[3], a[4], a[5]}) },
		Cpu:   func(a []int64) int64 { return cpu.Cost([6]int64{a[0], a[1], a[2], a[3], a[4], a[5]}) },
	}
}

// DefaultBuiltinCostModel is the Plutus V3-shaped parameter table: every
// DefaultFunction's cost function family matches the reference cost
// model's documented shape (MaxSize for symmetric arithmetic, MinSize for
// short-circuiting comparisons, LinearInX/Y for single-operand scans,
// ConstantCost for fixed-shape cryptography, and so on); the numeric
// coefficients are representative placeholders rather than the exact
// mainnet-calibrated constants (see DESIGN.md).
var DefaultBuiltinCostModel = map[syn.DefaultFunction]BuiltinCostFunction{
	syn.AddInteger:                       two(MaxSizeCost(1, 1), MaxSizeCost(205665, 812)),
	syn.SubtractInteger:                  two(MaxSizeCost(1, 1), MaxSizeCost(205665, 812)),
	syn.MultiplyInteger:                  two(AddedSizesCost(0, 1), AddedSizesCost(90434, 732)),
	syn.DivideInteger:                    two(AddedSizesCost(0, 1), AddedSizesCost(196500, 453240)),
	syn.QuotientInteger:                  two(AddedSizesCost(0, 1), AddedSizesCost(196500, 453240)),
	syn.RemainderInteger:                 two(AddedSizesCost(0, 1), AddedSizesCost(196500, 453240)),
	syn.ModInteger:                       two(AddedSizesCost(0, 1), AddedSizesCost(196500, 453240)),
	syn.EqualsInteger:                    two(ConstantCost2(1), MinSizeCost(208512, 421)),
	syn.LessThanInteger:                  two(ConstantCost2(1), MinSizeCost(208896, 511)),
	syn.LessThanEqualsInteger:            two(ConstantCost2(1), MinSizeCost(204924, 473)),
	syn.AppendByteString:                 two(AddedSizesCost(0, 1), AddedSizesCost(1000, 571)),
	syn.ConsByteString:                   two(AddedSizesCost(0, 1), LinearInY(72010, 178)),
	syn.SliceByteString:                  three(LinearInZ3(4, 0), LinearInZ3(20000, 13)),
	syn.LengthOfByteString:               one(ConstantCost1(10), ConstantCost1(1000)),
	syn.IndexByteString:                  two(ConstantCost2(1), ConstantCost2(57667)),
	syn.EqualsByteString:                 two(ConstantCost2(1), LinearOnDiagonalCost(245000, 216773, 62)),
	syn.LessThanByteString:               two(ConstantCost2(1), MinSizeCost(197145, 156)),
	syn.LessThanEqualsByteString:         two(ConstantCost2(1), MinSizeCost(197145, 156)),
	syn.Sha2_256:                         one(ConstantCost1(4), LinearCost1(2261318, 64)),
	syn.Sha3_256:                         one(ConstantCost1(4), LinearCost1(1373720, 205)),
	syn.Blake2b_256:                      one(ConstantCost1(4), LinearCost1(201305, 8356)),
	syn.Blake2b_224:                      one(ConstantCost1(4), LinearCost1(207616, 8310)),
	syn.Keccak_256:                       one(ConstantCost1(4), LinearCost1(2261318, 64)),
	syn.VerifyEd25519Signature:           three(ConstantCost3(10), LinearInZ3(53384111, 14333)),
	syn.VerifyEcdsaSecp256k1Signature:    three(ConstantCost3(10), ConstantCost3(35892428)),
	syn.VerifySchnorrSecp256k1Signature:  three(ConstantCost3(10), LinearInZ3(38477462, 20),
	),
	syn.AppendString:                     two(AddedSizesCost(4, 1), AddedSizesCost(1000, 24177)),
	syn.EqualsString:                     two(ConstantCost2(1), LinearOnDiagonalCost(187594, 187594, 1),
	),
	syn.EncodeUtf8:                       one(LinearCost1(4, 2), LinearCost1(1000, 5600)),
	syn.DecodeUtf8:                       one(LinearCost1(4, 2), LinearCost1(497525, 14068)),
	syn.IfThenElse:                       three(ConstantCost3(1), ConstantCost3(80556)),
	syn.ChooseUnit:                       two(ConstantCost2(4), ConstantCost2(46417)),
	syn.Trace:                            two(ConstantCost2(32), ConstantCost2(212342)),
	syn.FstPair:                          one(ConstantCost1(32), ConstantCost1(80436)),
	syn.SndPair:                          one(ConstantCost1(32), ConstantCost1(85931)),
	syn.ChooseList:                       three(ConstantCost3(32), ConstantCost3(175354)),
	syn.MkCons:                           two(ConstantCost2(32), ConstantCost2(72362)),
	syn.HeadList:                         one(ConstantCost1(32), ConstantCost1(43249)),
	syn.TailList:                         one(ConstantCost1(32), ConstantCost1(41182)),
	syn.NullList:                         one(ConstantCost1(32), ConstantCost1(60091)),
	syn.ChooseData:                       six(ConstantCost6(32), ConstantCost6(94375)),
	syn.ConstrData:                       two(ConstantCost2(32), ConstantCost2(22151)),
	syn.MapData:                          one(ConstantCost1(32), ConstantCost1(64832)),
	syn.ListData:                         one(ConstantCost1(32), ConstantCost1(52467)),
	syn.IData:                            one(ConstantCost1(32), ConstantCost1(22151)),
	syn.BData:                            one(ConstantCost1(32), ConstantCost1(22151)),
	syn.UnConstrData:                     one(ConstantCost1(32), ConstantCost1(38314)),
	syn.UnMapData:                        one(ConstantCost1(32), ConstantCost1(38314)),
	syn.UnListData:                       one(ConstantCost1(32), ConstantCost1(32247)),
	syn.UnIData:                          one(ConstantCost1(32), ConstantCost1(43357)),
	syn.UnBData:                          one(ConstantCost1(32), ConstantCost1(31220)),
	syn.EqualsData:                       two(ConstantCost2(1), MinSizeCost(898148, 27279)),
	syn.SerialiseData:                    one(LinearCost1(0, 2), LinearCost1(955506, 213312)),
	syn.MkPairData:                       two(ConstantCost2(32), ConstantCost2(11546)),
	syn.MkNilData:                        one(ConstantCost1(32), ConstantCost1(7243)),
	syn.MkNilPairData:                    one(ConstantCost1(32), ConstantCost1(7391)),
	syn.Bls12_381_G1_add:                 two(ConstantCost2(18), ConstantCost2(962335)),
	syn.Bls12_381_G1_neg:                 one(ConstantCost1(18), ConstantCost1(267229)),
	syn.Bls12_381_G1_scalarMul:           two(ConstantCost2(18), LinearInX(76433, 8868)),
	syn.Bls12_381_G1_equal:               two(ConstantCost2(1), ConstantCost2(442008)),
	syn.Bls12_381_G1_hashToGroup:         two(ConstantCost2(18), LinearInY(2523123, 223)),
	syn.Bls12_381_G1_compress:            one(ConstantCost1(18), ConstantCost1(280685)),
	syn.Bls12_381_G1_uncompress:          one(ConstantCost1(18), ConstantCost1(269579)),
	syn.Bls12_381_G2_add:                 two(ConstantCost2(36), ConstantCost2(1016822)),
	syn.Bls12_381_G2_neg:                 one(ConstantCost1(36), ConstantCost1(284546)),
	syn.Bls12_381_G2_scalarMul:           two(ConstantCost2(36), LinearInX(126690, 16664)),
	syn.Bls12_381_G2_equal:               two(ConstantCost2(1), ConstantCost2(452657)),
	syn.Bls12_381_G2_hashToGroup:         two(ConstantCost2(36), LinearInY(2844929, 728)),
	syn.Bls12_381_G2_compress:            one(ConstantCost1(36), ConstantCost1(481738)),
	syn.Bls12_381_G2_uncompress:          one(ConstantCost1(36), ConstantCost1(840073)),
	syn.Bls12_381_millerLoop:             two(ConstantCost2(144), ConstantCost2(2462539)),
	syn.Bls12_381_mulMlResult:            two(ConstantCost2(144), ConstantCost2(194219)),
	syn.Bls12_381_finalVerify:            two(ConstantCost2(1), ConstantCost2(995358)),
	syn.IntegerToByteString:              three(LinearInZ3(0, 1), LinearInZ3(1293828, 28716)),
	syn.ByteStringToInteger:              two(LinearInY(0, 1), LinearInY(1065384, 2697)),
}
