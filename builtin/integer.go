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
	"fmt"
	"math/big"

	"github.com/uplc-go/uplc/costmodel"
	"github.com/uplc-go/uplc/syn"
	"github.com/uplc-go/uplc/value"
)

func callIntInt(costs CostModel, fun syn.DefaultFunction, spend func(costmodel.ExBudget) error, args []*value.Value, op func(a, b *big.Int) *big.Int) (*value.Value, error) {
	a, err := unwrapInteger(args[0])
	if err != nil {
		return nil, err
	}
	b, err := unwrapInteger(args[1])
	if err != nil {
		return nil, err
	}
	if err := spend(costOf(costs, fun, costmodel.IntegerExMem(a), costmodel.IntegerExMem(b))); err != nil {
		return nil, err
	}
	return value.NewCon(syn.NewInteger(op(a, b))), nil
}

func callIntBool(costs CostModel, fun syn.DefaultFunction, spend func(costmodel.ExBudget) error, args []*value.Value, op func(a, b *big.Int) bool) (*value.Value, error) {
	a, err := unwrapInteger(args[0])
	if err != nil {
		return nil, err
	}
	b, err := unwrapInteger(args[1])
	if err != nil {
		return nil, err
	}
	if err := spend(costOf(costs, fun, costmodel.IntegerExMem(a), costmodel.IntegerExMem(b))); err != nil {
		return nil, err
	}
	return value.NewCon(syn.NewBool(op(a, b))), nil
}

func divisionByZero(a, b *big.Int) error {
	return &Error{Kind: "division_by_zero", Detail: fmt.Sprintf("cannot divide %s by zero", a.String())}
}

// divideInteger implements floor division: the quotient rounds toward
// negative infinity, matching the reference evaluator's rug::Integer
// Div impl (spec.md §5, "divideInteger").
func divideInteger(costs CostModel, spend func(costmodel.ExBudget) error, args []*value.Value) (*value.Value, error) {
	a, err := unwrapInteger(args[0])
	if err != nil {
		return nil, err
	}
	b, err := unwrapInteger(args[1])
	if err != nil {
		return nil, err
	}
	if err := spend(costOf(costs, syn.DivideInteger, costmodel.IntegerExMem(a), costmodel.IntegerExMem(b))); err != nil {
		return nil, err
	}
	if b.Sign() == 0 {
		return nil, divisionByZero(a, b)
	}
	return value.NewCon(syn.NewInteger(floorDiv(a, b))), nil
}

// quotientInteger truncates toward zero (Go's built-in Quo/Rem semantics).
func quotientInteger(costs CostModel, spend func(costmodel.ExBudget) error, args []*value.Value) (*value.Value, error) {
	a, err := unwrapInteger(args[0])
	if err != nil {
		return nil, err
	}
	b, err := unwrapInteger(args[1])
	if err != nil {
		return nil, err
	}
	if err := spend(costOf(costs, syn.QuotientInteger, costmodel.IntegerExMem(a), costmodel.IntegerExMem(b))); err != nil {
		return nil, err
	}
	if b.Sign() == 0 {
		return nil, divisionByZero(a, b)
	}
	return value.NewCon(syn.NewInteger(new(big.Int).Quo(a, b))), nil
}

func remainderInteger(costs CostModel, spend func(costmodel.ExBudget) error, args []*value.Value) (*value.Value, error) {
	a, err := unwrapInteger(args[0])
	if err != nil {
		return nil, err
	}
	b, err := unwrapInteger(args[1])
	if err != nil {
		return nil, err
	}
	if err := spend(costOf(costs, syn.RemainderInteger, costmodel.IntegerExMem(a), costmodel.IntegerExMem(b))); err != nil {
		return nil, err
	}
	if b.Sign() == 0 {
		return nil, divisionByZero(a, b)
	}
	return value.NewCon(syn.NewInteger(new(big.Int).Rem(a, b))), nil
}

// modInteger is the remainder of floor division: it takes the sign of the
// divisor (mod(-7, 2) = 1, mod(7, -2) = -1).
func modInteger(costs CostModel, spend func(costmodel.ExBudget) error, args []*value.Value) (*value.Value, error) {
	a, err := unwrapInteger(args[0])
	if err != nil {
		return nil, err
	}
	b, err := unwrapInteger(args[1])
	if err != nil {
		return nil, err
	}
	if err := spend(costOf(costs, syn.ModInteger, costmodel.IntegerExMem(a), costmodel.IntegerExMem(b))); err != nil {
		return nil, err
	}
	if b.Sign() == 0 {
		return nil, divisionByZero(a, b)
	}
	m := new(big.Int).Mod(a, b) // Go's Mod is already Euclidean (result has sign of divisor's absolute value, >= 0)
	if b.Sign() < 0 && m.Sign() != 0 {
		m.Add(m, b)
	}
	return value.NewCon(syn.NewInteger(m)), nil
}

// floorDiv computes a/b rounded toward negative infinity.
func floorDiv(a, b *big.Int) *big.Int {
	q, m := new(big.Int), new(big.Int)
	q.QuoRem(a, b, m)
	if m.Sign() != 0 && (m.Sign() < 0) != (b.Sign() < 0) {
		q.Sub(q, big.NewInt(1))
	}
	return q
}

const integerToByteStringMaxOutputLength = 8192

func integerToByteString(costs CostModel, spend func(costmodel.ExBudget) error, args []*value.Value) (*value.Value, error) {
	endianness, err := unwrapBool(args[0])
	if err != nil {
		return nil, err
	}
	size, err := unwrapInteger(args[1])
	if err != nil {
		return nil, err
	}
	input, err := unwrapInteger(args[2])
	if err != nil {
		return nil, err
	}
	if size.Sign() < 0 {
		return nil, &Error{Kind: "integer_to_byte_string_negative_size", Detail: "requested size is negative"}
	}
	if size.Cmp(big.NewInt(integerToByteStringMaxOutputLength)) > 0 {
		return nil, &Error{Kind: "integer_to_byte_string_size_too_big", Detail: fmt.Sprintf("requested size %s exceeds maximum %d", size.String(), integerToByteStringMaxOutputLength)}
	}

	sizeI64 := size.Int64()
	sizeExMem := int64(0)
	if sizeI64 != 0 {
		sizeExMem = (sizeI64-1)/8 + 1
	}
	if err := spend(costOf(costs, syn.IntegerToByteString, boolExMem, sizeExMem, costmodel.IntegerExMem(input))); err != nil {
		return nil, err
	}

	if input.Sign() < 0 {
		return nil, &Error{Kind: "integer_to_byte_string_negative_input", Detail: "input integer is negative"}
	}

	sizeUsize := int(sizeI64)

	if input.Sign() == 0 {
		return value.NewCon(syn.NewByteString(make([]byte, sizeUsize))), nil
	}

	bytes := input.Bytes() // big-endian, minimal length
	if sizeUsize == 0 && len(bytes) > integerToByteStringMaxOutputLength {
		return nil, &Error{Kind: "integer_to_byte_string_size_too_big", Detail: fmt.Sprintf("auto-sized output would need %d bytes, exceeding maximum %d", len(bytes), integerToByteStringMaxOutputLength)}
	}
	if sizeUsize != 0 && len(bytes) > sizeUsize {
		return nil, &Error{Kind: "integer_to_byte_string_size_too_small", Detail: fmt.Sprintf("requested size %d is smaller than the %d bytes required", sizeUsize, len(bytes))}
	}

	if !endianness {
		reversed := make([]byte, len(bytes))
		for i, b := range bytes {
			reversed[len(bytes)-1-i] = b
		}
		bytes = reversed
	}

	if sizeUsize == 0 {
		return value.NewCon(syn.NewByteString(bytes)), nil
	}

	padded := make([]byte, sizeUsize)
	if endianness {
		copy(padded[sizeUsize-len(bytes):], bytes)
	} else {
		copy(padded, bytes)
	}
	return value.NewCon(syn.NewByteString(padded)), nil
}

func byteStringToInteger(costs CostModel, spend func(costmodel.ExBudget) error, args []*value.Value) (*value.Value, error) {
	endianness, err := unwrapBool(args[0])
	if err != nil {
		return nil, err
	}
	b, err := unwrapByteString(args[1])
	if err != nil {
		return nil, err
	}
	if err := spend(costOf(costs, syn.ByteStringToInteger, boolExMem, costmodel.ByteStringExMem(b))); err != nil {
		return nil, err
	}
	n := new(big.Int)
	if endianness {
		n.SetBytes(b) // already big-endian (MSF)
	} else {
		reversed := make([]byte, len(b))
		for i, v := range b {
			reversed[len(b)-1-i] = v
		}
		n.SetBytes(reversed)
	}
	return value.NewCon(syn.NewInteger(n)), nil
}

// boolExMem is the fixed ex-mem measure for a Bool constant, used as a
// cost-function input size wherever a builtin takes a leading endianness
// flag (spec.md §4.2: "Bool constants carry ex-mem 1").
const boolExMem = 1
