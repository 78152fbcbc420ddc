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

package syn

import "github.com/uplc-go/uplc/binder"

// TermKind tags the ten-constructor term grammar (spec.md §3, flat tags
// Var=0 .. Case=9).
type TermKind uint8

const (
	TermVar TermKind = iota
	TermDelay
	TermLambda
	TermApply
	TermConstant
	TermForce
	TermError
	TermBuiltin
	TermConstr
	TermCase
)

// Term is a generic node parameterized over the binder representation B,
// matching the reference Term<name> polymorphism (component C).
type Term[B binder.Binder] struct {
	Kind TermKind

	Var B // TermVar

	DelayBody *Term[B] // Delay

	LambdaParam B        // Lambda
	LambdaBody  *Term[B] // Lambda

	ApplyFun *Term[B] // Apply
	ApplyArg *Term[B] // Apply

	Constant *Constant // Constant

	ForceBody *Term[B] // Force

	// Error carries no payload; its presence is the Kind tag itself.

	Builtin DefaultFunction // Builtin

	ConstrTag    uint64     // Constr
	ConstrFields []*Term[B] // Constr

	CaseScrutinee *Term[B]   // Case
	CaseBranches  []*Term[B] // Case
}

func Var[B binder.Binder](v B) *Term[B] { return &Term[B]{Kind: TermVar, Var: v} }

func Delay[B binder.Binder](body *Term[B]) *Term[B] {
	return &Term[B]{Kind: TermDelay, DelayBody: body}
}

func Lambda[B binder.Binder](param B, body *Term[B]) *Term[B] {
	return &Term[B]{Kind: TermLambda, LambdaParam: param, LambdaBody: body}
}

func Apply[B binder.Binder](fun, arg *Term[B]) *Term[B] {
	return &Term[B]{Kind: TermApply, ApplyFun: fun, ApplyArg: arg}
}

func ConstantTerm[B binder.Binder](c *Constant) *Term[B] {
	return &Term[B]{Kind: TermConstant, Constant: c}
}

func Force[B binder.Binder](body *Term[B]) *Term[B] {
	return &Term[B]{Kind: TermForce, ForceBody: body}
}

func Error[B binder.Binder]() *Term[B] { return &Term[B]{Kind: TermError} }

func Builtin[B binder.Binder](fn DefaultFunction) *Term[B] {
	return &Term[B]{Kind: TermBuiltin, Builtin: fn}
}

func Constr[B binder.Binder](tag uint64, fields []*Term[B]) *Term[B] {
	return &Term[B]{Kind: TermConstr, ConstrTag: tag, ConstrFields: fields}
}

func Case[B binder.Binder](scrutinee *Term[B], branches []*Term[B]) *Term[B] {
	return &Term[B]{Kind: TermCase, CaseScrutinee: scrutinee, CaseBranches: branches}
}

// DefaultFunction is the closed set of 75 builtin primitives (spec.md
// §3 and §4.2). Declared here, not in package builtin, because Term must
// be able to name a builtin without importing the package that evaluates
// it (builtin imports syn, not the other way around).
type DefaultFunction uint8

const (
	AddInteger DefaultFunction = iota
	SubtractInteger
	MultiplyInteger
	DivideInteger
	QuotientInteger
	RemainderInteger
	ModInteger
	EqualsInteger
	LessThanInteger
	LessThanEqualsInteger
	AppendByteString
	ConsByteString
	SliceByteString
	LengthOfByteString
	IndexByteString
	EqualsByteString
	LessThanByteString
	LessThanEqualsByteString
	Sha2_256
	Sha3_256
	Blake2b_256
	Blake2b_224
	Keccak_256
	VerifyEd25519Signature
	VerifyEcdsaSecp256k1Signature
	VerifySchnorrSecp256k1Signature
	AppendString
	EqualsString
	EncodeUtf8
	DecodeUtf8
	IfThenElse
	ChooseUnit
	Trace
	FstPair
	SndPair
	ChooseList
	MkCons
	HeadList
	TailList
	NullList
	ChooseData
	ConstrData
	MapData
	ListData
	IData
	BData
	UnConstrData
	UnMapData
	UnListData
	UnIData
	UnBData
	EqualsData
	SerialiseData
	MkPairData
	MkNilData
	MkNilPairData
	Bls12_381_G1_add
	Bls12_381_G1_neg
	Bls12_381_G1_scalarMul
	Bls12_381_G1_equal
	Bls12_381_G1_compress
	Bls12_381_G1_uncompress
	Bls12_381_G1_hashToGroup
	Bls12_381_G2_add
	Bls12_381_G2_neg
	Bls12_381_G2_scalarMul
	Bls12_381_G2_equal
	Bls12_381_G2_compress
	Bls12_381_G2_uncompress
	Bls12_381_G2_hashToGroup
	Bls12_381_millerLoop
	Bls12_381_mulMlResult
	Bls12_381_finalVerify
	IntegerToByteString
	ByteStringToInteger
)

// NumDefaultFunctions is the size of the closed builtin universe.
const NumDefaultFunctions = int(ByteStringToInteger) + 1
