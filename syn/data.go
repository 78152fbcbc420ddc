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

import "math/big"

// DataKind tags the ledger-exposed structured value (d, spec.md §3).
type DataKind uint8

const (
	DConstr DataKind = iota
	DMap
	DInteger
	DByteString
	DList
)

// DataPair is one (key, value) entry of a Data Map.
type DataPair struct {
	Key, Value *Data
}

// Data is the structured value exposed to scripts through the Data
// builtin family and the CBOR sub-encoding of §4.3.
type Data struct {
	Kind DataKind

	Tag    uint64
	Fields []*Data // Constr

	Map []DataPair

	Integer *big.Int

	ByteString []byte

	List []*Data
}

func NewDataConstr(tag uint64, fields []*Data) *Data {
	return &Data{Kind: DConstr, Tag: tag, Fields: fields}
}

func NewDataMap(pairs []DataPair) *Data { return &Data{Kind: DMap, Map: pairs} }

func NewDataInteger(i *big.Int) *Data { return &Data{Kind: DInteger, Integer: i} }

func NewDataByteString(b []byte) *Data { return &Data{Kind: DByteString, ByteString: b} }

func NewDataList(items []*Data) *Data { return &Data{Kind: DList, List: items} }

// Equal performs the structural comparison used by equalsData.
func (d *Data) Equal(o *Data) bool {
	if d == nil || o == nil {
		return d == o
	}
	if d.Kind != o.Kind {
		return false
	}
	switch d.Kind {
	case DConstr:
		if d.Tag != o.Tag || len(d.Fields) != len(o.Fields) {
			return false
		}
		for i := range d.Fields {
			if !d.Fields[i].Equal(o.Fields[i]) {
				return false
			}
		}
		return true
	case DMap:
		if len(d.Map) != len(o.Map) {
			return false
		}
		for i := range d.Map {
			if !d.Map[i].Key.Equal(o.Map[i].Key) || !d.Map[i].Value.Equal(o.Map[i].Value) {
				return false
			}
		}
		return true
	case DInteger:
		return d.Integer.Cmp(o.Integer) == 0
	case DByteString:
		if len(d.ByteString) != len(o.ByteString) {
			return false
		}
		for i := range d.ByteString {
			if d.ByteString[i] != o.ByteString[i] {
				return false
			}
		}
		return true
	case DList:
		if len(d.List) != len(o.List) {
			return false
		}
		for i := range d.List {
			if !d.List[i].Equal(o.List[i]) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// ExMem computes the recursive memory size used by the cost model: 4 plus
// the recursive ex-mem of contents (spec.md §4.2).
func (d *Data) ExMem() int64 {
	if d == nil {
		return 4
	}
	switch d.Kind {
	case DConstr:
		var sum int64
		for _, f := range d.Fields {
			sum += f.ExMem()
		}
		return 4 + sum
	case DMap:
		var sum int64
		for _, p := range d.Map {
			sum += p.Key.ExMem() + p.Value.ExMem()
		}
		return 4 + sum
	case DList:
		var sum int64
		for _, it := range d.List {
			sum += it.ExMem()
		}
		return 4 + sum
	case DInteger:
		return 4 + integerExMem(d.Integer)
	case DByteString:
		return 4 + byteStringExMem(d.ByteString)
	default:
		return 4
	}
}

// integerExMem and byteStringExMem are defined here (rather than only in
// package costmodel) because Data.ExMem must recurse through them and
// costmodel is a higher-level package that depends on syn, not vice versa.
func integerExMem(n *big.Int) int64 {
	if n.Sign() == 0 {
		return 1
	}
	bits := n.BitLen()
	return int64(bits/64) + 1
}

func byteStringExMem(b []byte) int64 {
	if len(b) == 0 {
		return 1
	}
	return int64((len(b)-1)/8) + 1
}
