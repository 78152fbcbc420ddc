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

import (
	"math/big"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
)

// ConstantKind tags the closed universe of constants (C, spec.md §3).
type ConstantKind uint8

const (
	CInteger ConstantKind = iota
	CByteString
	CString
	CBool
	CUnit
	CData
	CProtoList
	CProtoPair
	CG1
	CG2
	CMlResult
)

// Constant is the type-erased-at-the-value-level, typed-at-construction
// constant universe. Exactly one of the fields matching Kind is populated;
// the zero value of the others is ignored.
type Constant struct {
	Kind ConstantKind

	Integer    *big.Int
	ByteString []byte
	String     string
	Bool       bool

	Data *Data

	// ProtoList and ProtoPair both carry their element type(s) alongside
	// the values (spec.md §3: "Every ProtoList carries its element type
	// and every ProtoPair both component types").
	ListType *Type
	List     []*Constant

	PairFst, PairSnd         *Type
	PairFirst, PairSecond    *Constant

	G1        *bls12381.G1Affine
	G2        *bls12381.G2Affine
	MlResult  *bls12381.GT
}

func NewInteger(i *big.Int) *Constant { return &Constant{Kind: CInteger, Integer: i} }

func NewIntegerI64(i int64) *Constant { return &Constant{Kind: CInteger, Integer: big.NewInt(i)} }

func NewByteString(b []byte) *Constant { return &Constant{Kind: CByteString, ByteString: b} }

func NewString(s string) *Constant { return &Constant{Kind: CString, String: s} }

func NewBool(b bool) *Constant { return &Constant{Kind: CBool, Bool: b} }

func NewUnit() *Constant { return &Constant{Kind: CUnit} }

func NewData(d *Data) *Constant { return &Constant{Kind: CData, Data: d} }

func NewProtoList(elem *Type, items []*Constant) *Constant {
	return &Constant{Kind: CProtoList, ListType: elem, List: items}
}

func NewProtoPair(t1, t2 *Type, a, b *Constant) *Constant {
	return &Constant{Kind: CProtoPair, PairFst: t1, PairSnd: t2, PairFirst: a, PairSecond: b}
}

func NewG1(p *bls12381.G1Affine) *Constant { return &Constant{Kind: CG1, G1: p} }

func NewG2(p *bls12381.G2Affine) *Constant { return &Constant{Kind: CG2, G2: p} }

func NewMlResult(p *bls12381.GT) *Constant { return &Constant{Kind: CMlResult, MlResult: p} }

// TypeOf returns the Type describing this constant's shape.
func (c *Constant) TypeOf() *Type {
	switch c.Kind {
	case CInteger:
		return Integer()
	case CByteString:
		return ByteString()
	case CString:
		return StringT()
	case CBool:
		return Bool()
	case CUnit:
		return Unit()
	case CData:
		return DataT()
	case CProtoList:
		return List(c.ListType)
	case CProtoPair:
		return Pair(c.PairFst, c.PairSnd)
	case CG1:
		return G1()
	case CG2:
		return G2()
	case CMlResult:
		return MlResult()
	default:
		return nil
	}
}

// Equal performs structural equality, used by equalsData and by the
// roundtrip property (spec.md §8).
func (c *Constant) Equal(o *Constant) bool {
	if c == nil || o == nil {
		return c == o
	}
	if c.Kind != o.Kind {
		return false
	}
	switch c.Kind {
	case CInteger:
		return c.Integer.Cmp(o.Integer) == 0
	case CByteString:
		if len(c.ByteString) != len(o.ByteString) {
			return false
		}
		for i := range c.ByteString {
			if c.ByteString[i] != o.ByteString[i] {
				return false
			}
		}
		return true
	case CString:
		return c.String == o.String
	case CBool:
		return c.Bool == o.Bool
	case CUnit:
		return true
	case CData:
		return c.Data.Equal(o.Data)
	case CProtoList:
		if !c.ListType.Equal(o.ListType) || len(c.List) != len(o.List) {
			return false
		}
		for i := range c.List {
			if !c.List[i].Equal(o.List[i]) {
				return false
			}
		}
		return true
	case CProtoPair:
		return c.PairFst.Equal(o.PairFst) && c.PairSnd.Equal(o.PairSnd) &&
			c.PairFirst.Equal(o.PairFirst) && c.PairSecond.Equal(o.PairSecond)
	case CG1:
		return c.G1.Equal(o.G1)
	case CG2:
		return c.G2.Equal(o.G2)
	case CMlResult:
		return c.MlResult.Equal(o.MlResult)
	default:
		return false
	}
}
