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
	"unicode/utf8"

	"github.com/uplc-go/uplc/costmodel"
	"github.com/uplc-go/uplc/syn"
	"github.com/uplc-go/uplc/value"
)

func callStrStrBool(costs CostModel, fun syn.DefaultFunction, spend func(costmodel.ExBudget) error, args []*value.Value, op func(a, b string) bool) (*value.Value, error) {
	a, err := unwrapString(args[0])
	if err != nil {
		return nil, err
	}
	b, err := unwrapString(args[1])
	if err != nil {
		return nil, err
	}
	if err := spend(costOf(costs, fun, costmodel.StringExMem(a), costmodel.StringExMem(b))); err != nil {
		return nil, err
	}
	return value.NewCon(syn.NewBool(op(a, b))), nil
}

func appendString(costs CostModel, spend func(costmodel.ExBudget) error, args []*value.Value) (*value.Value, error) {
	a, err := unwrapString(args[0])
	if err != nil {
		return nil, err
	}
	b, err := unwrapString(args[1])
	if err != nil {
		return nil, err
	}
	if err := spend(costOf(costs, syn.AppendString, costmodel.StringExMem(a), costmodel.StringExMem(b))); err != nil {
		return nil, err
	}
	return value.NewCon(syn.NewString(a + b)), nil
}

func encodeUtf8(costs CostModel, spend func(costmodel.ExBudget) error, args []*value.Value) (*value.Value, error) {
	s, err := unwrapString(args[0])
	if err != nil {
		return nil, err
	}
	if err := spend(costOf(costs, syn.EncodeUtf8, costmodel.StringExMem(s))); err != nil {
		return nil, err
	}
	return value.NewCon(syn.NewByteString([]byte(s))), nil
}

func decodeUtf8(costs CostModel, spend func(costmodel.ExBudget) error, args []*value.Value) (*value.Value, error) {
	b, err := unwrapByteString(args[0])
	if err != nil {
		return nil, err
	}
	if err := spend(costOf(costs, syn.DecodeUtf8, costmodel.ByteStringExMem(b))); err != nil {
		return nil, err
	}
	if !utf8.Valid(b) {
		return nil, &Error{Kind: "decode_utf8", Detail: "bytestring is not valid utf8"}
	}
	return value.NewCon(syn.NewString(string(b))), nil
}
