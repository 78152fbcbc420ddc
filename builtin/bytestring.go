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

func callBsBsBool(costs CostModel, fun syn.DefaultFunction, spend func(costmodel.ExBudget) error, args []*value.Value, op func(a, b []byte) bool) (*value.Value, error) {
	a, err := unwrapByteString(args[0])
	if err != nil {
		return nil, err
	}
	b, err := unwrapByteString(args[1])
	if err != nil {
		return nil, err
	}
	if err := spend(costOf(costs, fun, costmodel.ByteStringExMem(a), costmodel.ByteStringExMem(b))); err != nil {
		return nil, err
	}
	return value.NewCon(syn.NewBool(op(a, b))), nil
}

func appendByteString(costs CostModel, spend func(costmodel.ExBudget) error, args []*value.Value) (*value.Value, error) {
	a, err := unwrapByteString(args[0])
	if err != nil {
		return nil, err
	}
	b, err := unwrapByteString(args[1])
	if err != nil {
		return nil, err
	}
	if err := spend(costOf(costs, syn.AppendByteString, costmodel.ByteStringExMem(a), costmodel.ByteStringExMem(b))); err != nil {
		return nil, err
	}
	out := make([]byte, 0, len(a)+len(b))
	out = append(out, a...)
	out = append(out, b...)
	return value.NewCon(syn.NewByteString(out)), nil
}

// consByteString prepends one byte, derived from arg1 mod 256 under V1
// semantics (wrap) or rejected outright if out of byte range under V2
// (spec.md §5, "consByteString" REDESIGN note).
func consByteString(costs CostModel, semantics Semantics, spend func(costmodel.ExBudget) error, args []*value.Value) (*value.Value, error) {
	n, err := unwrapInteger(args[0])
	if err != nil {
		return nil, err
	}
	bs, err := unwrapByteString(args[1])
	if err != nil {
		return nil, err
	}
	if err := spend(costOf(costs, syn.ConsByteString, costmodel.IntegerExMem(n), costmodel.ByteStringExMem(bs))); err != nil {
		return nil, err
	}

	var b byte
	switch semantics {
	case SemanticsV1:
		wrapped := new(big.Int).Mod(n, big.NewInt(256))
		b = byte(wrapped.Int64())
	default:
		if n.Sign() < 0 || n.Cmp(big.NewInt(255)) > 0 {
			return nil, &Error{Kind: "byte_string_cons_not_a_byte", Detail: fmt.Sprintf("%s is not a valid byte", n.String())}
		}
		b = byte(n.Int64())
	}

	out := make([]byte, 0, len(bs)+1)
	out = append(out, b)
	out = append(out, bs...)
	return value.NewCon(syn.NewByteString(out)), nil
}

func sliceByteString(costs CostModel, spend func(costmodel.ExBudget) error, args []*value.Value) (*value.Value, error) {
	skipArg, err := unwrapInteger(args[0])
	if err != nil {
		return nil, err
	}
	takeArg, err := unwrapInteger(args[1])
	if err != nil {
		return nil, err
	}
	bs, err := unwrapByteString(args[2])
	if err != nil {
		return nil, err
	}
	if err := spend(costOf(costs, syn.SliceByteString, costmodel.IntegerExMem(skipArg), costmodel.IntegerExMem(takeArg), costmodel.ByteStringExMem(bs))); err != nil {
		return nil, err
	}

	skip := 0
	if skipArg.Sign() > 0 {
		skip = int(skipArg.Int64())
	}
	take := 0
	if takeArg.Sign() > 0 {
		take = int(takeArg.Int64())
	}
	end := skip + take
	if skip > len(bs) {
		skip = len(bs)
	}
	if end > len(bs) {
		end = len(bs)
	}
	if end < skip {
		end = skip
	}
	return value.NewCon(syn.NewByteString(append([]byte(nil), bs[skip:end]...))), nil
}

func lengthOfByteString(costs CostModel, spend func(costmodel.ExBudget) error, args []*value.Value) (*value.Value, error) {
	bs, err := unwrapByteString(args[0])
	if err != nil {
		return nil, err
	}
	if err := spend(costOf(costs, syn.LengthOfByteString, costmodel.ByteStringExMem(bs))); err != nil {
		return nil, err
	}
	return value.NewCon(syn.NewIntegerI64(int64(len(bs)))), nil
}

func indexByteString(costs CostModel, spend func(costmodel.ExBudget) error, args []*value.Value) (*value.Value, error) {
	bs, err := unwrapByteString(args[0])
	if err != nil {
		return nil, err
	}
	idx, err := unwrapInteger(args[1])
	if err != nil {
		return nil, err
	}
	if err := spend(costOf(costs, syn.IndexByteString, costmodel.ByteStringExMem(bs), costmodel.IntegerExMem(idx))); err != nil {
		return nil, err
	}
	if idx.Sign() < 0 || idx.Cmp(big.NewInt(int64(len(bs)))) >= 0 {
		return nil, &Error{Kind: "byte_string_out_of_bounds", Detail: fmt.Sprintf("index %s out of bounds for length %d", idx.String(), len(bs))}
	}
	return value.NewCon(syn.NewIntegerI64(int64(bs[idx.Int64()]))), nil
}
