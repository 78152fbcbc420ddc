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

	"github.com/uplc-go/uplc/syn"
	"github.com/uplc-go/uplc/value"
)

// Error is a builtin application failure (spec.md §7: division by zero,
// argument type mismatch, out-of-bounds index, malformed cryptographic
// input). Package machine wraps these into its own MachineError taxonomy
// rather than inspecting Kind directly, but Kind is exported for tests
// and diagnostics.
type Error struct {
	Kind   string
	Detail string
}

func (e *Error) Error() string { return "builtin: " + e.Detail }

func typeMismatch(want string, got *value.Value) error {
	return &Error{Kind: "type_mismatch", Detail: fmt.Sprintf("expected %s argument, got %v", want, got.Kind)}
}

func unwrapInteger(v *value.Value) (*big.Int, error) {
	c, ok := v.AsCon()
	if !ok || c.Kind != syn.CInteger {
		return nil, typeMismatch("integer", v)
	}
	return c.Integer, nil
}

func unwrapByteString(v *value.Value) ([]byte, error) {
	c, ok := v.AsCon()
	if !ok || c.Kind != syn.CByteString {
		return nil, typeMismatch("bytestring", v)
	}
	return c.ByteString, nil
}

func unwrapString(v *value.Value) (string, error) {
	c, ok := v.AsCon()
	if !ok || c.Kind != syn.CString {
		return "", typeMismatch("string", v)
	}
	return c.String, nil
}

func unwrapUnit(v *value.Value) error {
	c, ok := v.AsCon()
	if !ok || c.Kind != syn.CUnit {
		return typeMismatch("unit", v)
	}
	return nil
}

func unwrapBool(v *value.Value) (bool, error) {
	b, ok := v.AsBool()
	if !ok {
		return false, typeMismatch("bool", v)
	}
	return b, nil
}

func unwrapData(v *value.Value) (*syn.Data, error) {
	c, ok := v.AsCon()
	if !ok || c.Kind != syn.CData {
		return nil, typeMismatch("data", v)
	}
	return c.Data, nil
}

func unwrapList(v *value.Value) (*syn.Type, []*syn.Constant, error) {
	c, ok := v.AsCon()
	if !ok || c.Kind != syn.CProtoList {
		return nil, nil, typeMismatch("list", v)
	}
	return c.ListType, c.List, nil
}

func unwrapPair(v *value.Value) (*syn.Constant, *syn.Constant, error) {
	c, ok := v.AsCon()
	if !ok || c.Kind != syn.CProtoPair {
		return nil, nil, typeMismatch("pair", v)
	}
	return c.PairFirst, c.PairSecond, nil
}

func unwrapConstant(v *value.Value) (*syn.Constant, error) {
	c, ok := v.AsCon()
	if !ok {
		return nil, typeMismatch("constant", v)
	}
	return c, nil
}
