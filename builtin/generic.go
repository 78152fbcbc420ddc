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
	"github.com/uplc-go/uplc/costmodel"
	"github.com/uplc-go/uplc/syn"
	"github.com/uplc-go/uplc/value"
)

func ifThenElse(costs CostModel, spend func(costmodel.ExBudget) error, args []*value.Value) (*value.Value, error) {
	cond, err := unwrapBool(args[0])
	if err != nil {
		return nil, err
	}
	if err := spend(costOf(costs, syn.IfThenElse, boolExMem, valueSize(args[1]), valueSize(args[2]))); err != nil {
		return nil, err
	}
	if cond {
		return args[1], nil
	}
	return args[2], nil
}

func chooseUnit(costs CostModel, spend func(costmodel.ExBudget) error, args []*value.Value) (*value.Value, error) {
	if err := unwrapUnit(args[0]); err != nil {
		return nil, err
	}
	if err := spend(costOf(costs, syn.ChooseUnit, 1, valueSize(args[1]))); err != nil {
		return nil, err
	}
	return args[1], nil
}

func traceBuiltin(costs CostModel, spend func(costmodel.ExBudget) error, trace func(string), args []*value.Value) (*value.Value, error) {
	msg, err := unwrapString(args[0])
	if err != nil {
		return nil, err
	}
	if err := spend(costOf(costs, syn.Trace, costmodel.StringExMem(msg), valueSize(args[1]))); err != nil {
		return nil, err
	}
	if trace != nil {
		trace(msg)
	}
	return args[1], nil
}

func fstPair(costs CostModel, spend func(costmodel.ExBudget) error, args []*value.Value) (*value.Value, error) {
	first, second, err := unwrapPair(args[0])
	if err != nil {
		return nil, err
	}
	if err := spend(costOf(costs, syn.FstPair, conSize(first)+conSize(second))); err != nil {
		return nil, err
	}
	return value.NewCon(first), nil
}

func sndPair(costs CostModel, spend func(costmodel.ExBudget) error, args []*value.Value) (*value.Value, error) {
	first, second, err := unwrapPair(args[0])
	if err != nil {
		return nil, err
	}
	if err := spend(costOf(costs, syn.SndPair, conSize(first)+conSize(second))); err != nil {
		return nil, err
	}
	return value.NewCon(second), nil
}

func protoListExMem(items []*syn.Constant) int64 {
	var sum int64
	for _, it := range items {
		sum += conSize(it)
	}
	return sum
}

func chooseList(costs CostModel, spend func(costmodel.ExBudget) error, args []*value.Value) (*value.Value, error) {
	_, items, err := unwrapList(args[0])
	if err != nil {
		return nil, err
	}
	if err := spend(costOf(costs, syn.ChooseList, protoListExMem(items), valueSize(args[1]), valueSize(args[2]))); err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return args[1], nil
	}
	return args[2], nil
}

func mkCons(costs CostModel, spend func(costmodel.ExBudget) error, args []*value.Value) (*value.Value, error) {
	item, err := unwrapConstant(args[0])
	if err != nil {
		return nil, err
	}
	typ, items, err := unwrapList(args[1])
	if err != nil {
		return nil, err
	}
	if err := spend(costOf(costs, syn.MkCons, conSize(item), protoListExMem(items))); err != nil {
		return nil, err
	}
	if !item.TypeOf().Equal(typ) {
		return nil, &Error{Kind: "mk_cons_type_mismatch", Detail: "cons element type does not match list element type"}
	}
	newItems := make([]*syn.Constant, 0, len(items)+1)
	newItems = append(newItems, item)
	newItems = append(newItems, items...)
	return value.NewCon(syn.NewProtoList(typ, newItems)), nil
}

func headList(costs CostModel, spend func(costmodel.ExBudget) error, args []*value.Value) (*value.Value, error) {
	_, items, err := unwrapList(args[0])
	if err != nil {
		return nil, err
	}
	if err := spend(costOf(costs, syn.HeadList, protoListExMem(items))); err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, &Error{Kind: "empty_list", Detail: "headList on an empty list"}
	}
	return value.NewCon(items[0]), nil
}

func tailList(costs CostModel, spend func(costmodel.ExBudget) error, args []*value.Value) (*value.Value, error) {
	typ, items, err := unwrapList(args[0])
	if err != nil {
		return nil, err
	}
	if err := spend(costOf(costs, syn.TailList, protoListExMem(items))); err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, &Error{Kind: "empty_list", Detail: "tailList on an empty list"}
	}
	return value.NewCon(syn.NewProtoList(typ, items[1:])), nil
}

func nullList(costs CostModel, spend func(costmodel.ExBudget) error, args []*value.Value) (*value.Value, error) {
	_, items, err := unwrapList(args[0])
	if err != nil {
		return nil, err
	}
	if err := spend(costOf(costs, syn.NullList, protoListExMem(items))); err != nil {
		return nil, err
	}
	return value.NewCon(syn.NewBool(len(items) == 0)), nil
}
