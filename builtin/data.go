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
	"github.com/uplc-go/uplc/flat"
	"github.com/uplc-go/uplc/syn"
	"github.com/uplc-go/uplc/value"
)

// chooseData dispatches on the five-constructor Data universe in
// declaration order: Constr, Map, List, Integer, ByteString (spec.md §5,
// "chooseData").
func chooseData(costs CostModel, spend func(costmodel.ExBudget) error, args []*value.Value) (*value.Value, error) {
	d, err := unwrapData(args[0])
	if err != nil {
		return nil, err
	}
	if err := spend(costOf(costs, syn.ChooseData, d.ExMem(), valueSize(args[1]), valueSize(args[2]), valueSize(args[3]), valueSize(args[4]), valueSize(args[5]))); err != nil {
		return nil, err
	}
	switch d.Kind {
	case syn.DConstr:
		return args[1], nil
	case syn.DMap:
		return args[2], nil
	case syn.DList:
		return args[3], nil
	case syn.DInteger:
		return args[4], nil
	default:
		return args[5], nil
	}
}

func constrData(costs CostModel, spend func(costmodel.ExBudget) error, args []*value.Value) (*value.Value, error) {
	tag, err := unwrapInteger(args[0])
	if err != nil {
		return nil, err
	}
	typ, fields, err := unwrapList(args[1])
	if err != nil {
		return nil, err
	}
	if err := spend(costOf(costs, syn.ConstrData, costmodel.IntegerExMem(tag), protoListExMem(fields))); err != nil {
		return nil, err
	}
	if typ.Kind != syn.TData {
		return nil, typeMismatch("list(data)", args[1])
	}
	dataFields := make([]*syn.Data, len(fields))
	for i, f := range fields {
		dataFields[i] = f.Data
	}
	return value.NewCon(syn.NewData(syn.NewDataConstr(tag.Uint64(), dataFields))), nil
}

func mapData(costs CostModel, spend func(costmodel.ExBudget) error, args []*value.Value) (*value.Value, error) {
	typ, items, err := unwrapList(args[0])
	if err != nil {
		return nil, err
	}
	if typ.Kind != syn.TPair || typ.Fst.Kind != syn.TData || typ.Snd.Kind != syn.TData {
		return nil, typeMismatch("list(pair(data, data))", args[0])
	}
	if err := spend(costOf(costs, syn.MapData, protoListExMem(items))); err != nil {
		return nil, err
	}
	pairs := make([]syn.DataPair, len(items))
	for i, it := range items {
		pairs[i] = syn.DataPair{Key: it.PairFirst.Data, Value: it.PairSecond.Data}
	}
	return value.NewCon(syn.NewData(syn.NewDataMap(pairs))), nil
}

func listData(costs CostModel, spend func(costmodel.ExBudget) error, args []*value.Value) (*value.Value, error) {
	typ, items, err := unwrapList(args[0])
	if err != nil {
		return nil, err
	}
	if err := spend(costOf(costs, syn.ListData, protoListExMem(items))); err != nil {
		return nil, err
	}
	if typ.Kind != syn.TData {
		return nil, typeMismatch("list(data)", args[0])
	}
	fields := make([]*syn.Data, len(items))
	for i, it := range items {
		fields[i] = it.Data
	}
	return value.NewCon(syn.NewData(syn.NewDataList(fields))), nil
}

func iData(costs CostModel, spend func(costmodel.ExBudget) error, args []*value.Value) (*value.Value, error) {
	n, err := unwrapInteger(args[0])
	if err != nil {
		return nil, err
	}
	if err := spend(costOf(costs, syn.IData, costmodel.IntegerExMem(n))); err != nil {
		return nil, err
	}
	return value.NewCon(syn.NewData(syn.NewDataInteger(n))), nil
}

func bData(costs CostModel, spend func(costmodel.ExBudget) error, args []*value.Value) (*value.Value, error) {
	b, err := unwrapByteString(args[0])
	if err != nil {
		return nil, err
	}
	if err := spend(costOf(costs, syn.BData, costmodel.ByteStringExMem(b))); err != nil {
		return nil, err
	}
	return value.NewCon(syn.NewData(syn.NewDataByteString(b))), nil
}

func unConstrData(costs CostModel, spend func(costmodel.ExBudget) error, args []*value.Value) (*value.Value, error) {
	d, err := unwrapData(args[0])
	if err != nil {
		return nil, err
	}
	if d.Kind != syn.DConstr {
		return nil, typeMismatch("Constr data", args[0])
	}
	if err := spend(costOf(costs, syn.UnConstrData, dataListExMem(d.Fields))); err != nil {
		return nil, err
	}
	fieldConsts := make([]*syn.Constant, len(d.Fields))
	for i, f := range d.Fields {
		fieldConsts[i] = syn.NewData(f)
	}
	pair := syn.NewProtoPair(syn.Integer(), syn.List(syn.DataT()),
		syn.NewIntegerI64(int64(d.Tag)), syn.NewProtoList(syn.DataT(), fieldConsts))
	return value.NewCon(pair), nil
}

func unMapData(costs CostModel, spend func(costmodel.ExBudget) error, args []*value.Value) (*value.Value, error) {
	d, err := unwrapData(args[0])
	if err != nil {
		return nil, err
	}
	if d.Kind != syn.DMap {
		return nil, typeMismatch("Map data", args[0])
	}
	if err := spend(costOf(costs, syn.UnMapData, dataMapExMem(d.Map))); err != nil {
		return nil, err
	}
	items := make([]*syn.Constant, len(d.Map))
	for i, p := range d.Map {
		items[i] = syn.NewProtoPair(syn.DataT(), syn.DataT(), syn.NewData(p.Key), syn.NewData(p.Value))
	}
	return value.NewCon(syn.NewProtoList(syn.Pair(syn.DataT(), syn.DataT()), items)), nil
}

func unListData(costs CostModel, spend func(costmodel.ExBudget) error, args []*value.Value) (*value.Value, error) {
	d, err := unwrapData(args[0])
	if err != nil {
		return nil, err
	}
	if d.Kind != syn.DList {
		return nil, typeMismatch("List data", args[0])
	}
	if err := spend(costOf(costs, syn.UnListData, dataListExMem(d.List))); err != nil {
		return nil, err
	}
	items := make([]*syn.Constant, len(d.List))
	for i, it := range d.List {
		items[i] = syn.NewData(it)
	}
	return value.NewCon(syn.NewProtoList(syn.DataT(), items)), nil
}

func unIData(costs CostModel, spend func(costmodel.ExBudget) error, args []*value.Value) (*value.Value, error) {
	d, err := unwrapData(args[0])
	if err != nil {
		return nil, err
	}
	if d.Kind != syn.DInteger {
		return nil, typeMismatch("Integer data", args[0])
	}
	if err := spend(costOf(costs, syn.UnIData, costmodel.IntegerExMem(d.Integer))); err != nil {
		return nil, err
	}
	return value.NewCon(syn.NewInteger(d.Integer)), nil
}

func unBData(costs CostModel, spend func(costmodel.ExBudget) error, args []*value.Value) (*value.Value, error) {
	d, err := unwrapData(args[0])
	if err != nil {
		return nil, err
	}
	if d.Kind != syn.DByteString {
		return nil, typeMismatch("ByteString data", args[0])
	}
	if err := spend(costOf(costs, syn.UnBData, costmodel.ByteStringExMem(d.ByteString))); err != nil {
		return nil, err
	}
	return value.NewCon(syn.NewByteString(d.ByteString)), nil
}

func equalsData(costs CostModel, spend func(costmodel.ExBudget) error, args []*value.Value) (*value.Value, error) {
	a, err := unwrapData(args[0])
	if err != nil {
		return nil, err
	}
	b, err := unwrapData(args[1])
	if err != nil {
		return nil, err
	}
	if err := spend(costOf(costs, syn.EqualsData, a.ExMem(), b.ExMem())); err != nil {
		return nil, err
	}
	return value.NewCon(syn.NewBool(a.Equal(b))), nil
}

// serialiseData CBOR-encodes a Data value into the bytestring layer,
// reusing the same sub-encoding the Flat binary codec wraps literals in
// (spec.md §4.3, "Data CBOR sub-encoding").
func serialiseData(costs CostModel, spend func(costmodel.ExBudget) error, args []*value.Value) (*value.Value, error) {
	d, err := unwrapData(args[0])
	if err != nil {
		return nil, err
	}
	if err := spend(costOf(costs, syn.SerialiseData, d.ExMem())); err != nil {
		return nil, err
	}
	encoded, err := flat.EncodeData(d)
	if err != nil {
		return nil, &Error{Kind: "serialise_data", Detail: err.Error()}
	}
	return value.NewCon(syn.NewByteString(encoded)), nil
}

func mkPairData(costs CostModel, spend func(costmodel.ExBudget) error, args []*value.Value) (*value.Value, error) {
	a, err := unwrapData(args[0])
	if err != nil {
		return nil, err
	}
	b, err := unwrapData(args[1])
	if err != nil {
		return nil, err
	}
	if err := spend(costOf(costs, syn.MkPairData, a.ExMem(), b.ExMem())); err != nil {
		return nil, err
	}
	return value.NewCon(syn.NewProtoPair(syn.DataT(), syn.DataT(), syn.NewData(a), syn.NewData(b))), nil
}

func mkNilData(costs CostModel, spend func(costmodel.ExBudget) error, args []*value.Value) (*value.Value, error) {
	if err := unwrapUnit(args[0]); err != nil {
		return nil, err
	}
	if err := spend(costOf(costs, syn.MkNilData, 1)); err != nil {
		return nil, err
	}
	return value.NewCon(syn.NewProtoList(syn.DataT(), nil)), nil
}

func mkNilPairData(costs CostModel, spend func(costmodel.ExBudget) error, args []*value.Value) (*value.Value, error) {
	if err := unwrapUnit(args[0]); err != nil {
		return nil, err
	}
	if err := spend(costOf(costs, syn.MkNilPairData, 1)); err != nil {
		return nil, err
	}
	return value.NewCon(syn.NewProtoList(syn.Pair(syn.DataT(), syn.DataT()), nil)), nil
}

func dataListExMem(items []*syn.Data) int64 {
	var sum int64
	for _, it := range items {
		sum += it.ExMem()
	}
	return sum
}

func dataMapExMem(pairs []syn.DataPair) int64 {
	var sum int64
	for _, p := range pairs {
		sum += p.Key.ExMem() + p.Value.ExMem()
	}
	return sum
}
