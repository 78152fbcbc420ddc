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

// Package syn holds the term/constant/type/program data model (components
// B and part of D): the abstract syntax evaluated by the CEK machine.
package syn

// TypeKind tags the small grammar of constant types (τ, spec.md §3).
type TypeKind uint8

const (
	TInteger TypeKind = iota
	TByteString
	TString
	TUnit
	TBool
	TList
	TPair
	TData
	TG1
	TG2
	TMlResult
)

// Type is the constant-type grammar: Integer | Bool | String | ByteString |
// Unit | List(t) | Pair(t,t) | Data | G1 | G2 | MlResult.
type Type struct {
	Kind  TypeKind
	Elem  *Type // List
	Fst   *Type // Pair
	Snd   *Type // Pair
}

func Integer() *Type    { return &Type{Kind: TInteger} }
func ByteString() *Type { return &Type{Kind: TByteString} }
func StringT() *Type    { return &Type{Kind: TString} }
func Unit() *Type       { return &Type{Kind: TUnit} }
func Bool() *Type       { return &Type{Kind: TBool} }
func DataT() *Type      { return &Type{Kind: TData} }
func G1() *Type         { return &Type{Kind: TG1} }
func G2() *Type         { return &Type{Kind: TG2} }
func MlResult() *Type   { return &Type{Kind: TMlResult} }

func List(elem *Type) *Type { return &Type{Kind: TList, Elem: elem} }

func Pair(fst, snd *Type) *Type { return &Type{Kind: TPair, Fst: fst, Snd: snd} }

// Equal reports structural equality between two types.
func (t *Type) Equal(o *Type) bool {
	if t == nil || o == nil {
		return t == o
	}
	if t.Kind != o.Kind {
		return false
	}
	switch t.Kind {
	case TList:
		return t.Elem.Equal(o.Elem)
	case TPair:
		return t.Fst.Equal(o.Fst) && t.Snd.Equal(o.Snd)
	default:
		return true
	}
}

func (t *Type) String() string {
	switch t.Kind {
	case TInteger:
		return "integer"
	case TByteString:
		return "bytestring"
	case TString:
		return "string"
	case TUnit:
		return "unit"
	case TBool:
		return "bool"
	case TList:
		return "list(" + t.Elem.String() + ")"
	case TPair:
		return "pair(" + t.Fst.String() + ", " + t.Snd.String() + ")"
	case TData:
		return "data"
	case TG1:
		return "bls12_381_G1_element"
	case TG2:
		return "bls12_381_G2_element"
	case TMlResult:
		return "bls12_381_MlResult"
	default:
		return "unknown"
	}
}
