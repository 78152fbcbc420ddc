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

package flat

import (
	"encoding/binary"
	"math/big"

	"github.com/fxamacker/cbor/v2"
	"github.com/uplc-go/uplc/syn"
)

// This file hand-rolls the Data <-> CBOR sub-encoding's exact tag scheme
// (spec.md §4.3, §9): constructor tags 0-6 map to CBOR tags 121-127,
// tags 7-127 map to 1280-1400, and wider tags fall back to tag 102
// wrapping [tag, fields]; bytestrings over 64 bytes use indefinite-length
// 64-byte chunking. The reflection-based Marshal/Unmarshal surface of
// github.com/fxamacker/cbor/v2 cannot express this dynamic tag/chunking
// scheme directly, so it is used only for the one leaf case it is a
// genuine fit for: integers whose magnitude overflows a 64-bit CBOR
// argument, where its native *big.Int bignum (tag 2/3) support produces
// the canonical bytes directly (see DESIGN.md).
const dataByteStringChunkSize = 64

func cborHeader(major byte, arg uint64) []byte {
	switch {
	case arg < 24:
		return []byte{major<<5 | byte(arg)}
	case arg <= 0xff:
		return []byte{major<<5 | 24, byte(arg)}
	case arg <= 0xffff:
		b := make([]byte, 3)
		b[0] = major<<5 | 25
		binary.BigEndian.PutUint16(b[1:], uint16(arg))
		return b
	case arg <= 0xffffffff:
		b := make([]byte, 5)
		b[0] = major<<5 | 26
		binary.BigEndian.PutUint32(b[1:], uint32(arg))
		return b
	default:
		b := make([]byte, 9)
		b[0] = major<<5 | 27
		binary.BigEndian.PutUint64(b[1:], arg)
		return b
	}
}

func cborEncodeByteString(b []byte) []byte {
	if len(b) <= dataByteStringChunkSize {
		return append(cborHeader(2, uint64(len(b))), b...)
	}
	out := []byte{0x5f}
	for i := 0; i < len(b); i += dataByteStringChunkSize {
		end := i + dataByteStringChunkSize
		if end > len(b) {
			end = len(b)
		}
		chunk := b[i:end]
		out = append(out, cborHeader(2, uint64(len(chunk)))...)
		out = append(out, chunk...)
	}
	return append(out, 0xff)
}

func cborEncodeInteger(n *big.Int) ([]byte, error) {
	if n.Sign() >= 0 && n.BitLen() <= 64 {
		return cborHeader(0, n.Uint64()), nil
	}
	if n.Sign() < 0 {
		mag := new(big.Int).Neg(n)
		mag.Sub(mag, big.NewInt(1))
		if mag.BitLen() <= 64 {
			return cborHeader(1, mag.Uint64()), nil
		}
	}
	b, err := cbor.Marshal(n)
	if err != nil {
		return nil, errEncodeCbor(err.Error())
	}
	return b, nil
}

func cborEncodeArray(items []*syn.Data) ([]byte, error) {
	out := cborHeader(4, uint64(len(items)))
	for _, it := range items {
		b, err := EncodeData(it)
		if err != nil {
			return nil, err
		}
		out = append(out, b...)
	}
	return out, nil
}

// EncodeData serializes a Data value into its embedded CBOR form.
func EncodeData(d *syn.Data) ([]byte, error) {
	switch d.Kind {
	case syn.DInteger:
		return cborEncodeInteger(d.Integer)
	case syn.DByteString:
		return cborEncodeByteString(d.ByteString), nil
	case syn.DList:
		return cborEncodeArray(d.List)
	case syn.DMap:
		out := cborHeader(5, uint64(len(d.Map)))
		for _, p := range d.Map {
			kb, err := EncodeData(p.Key)
			if err != nil {
				return nil, err
			}
			vb, err := EncodeData(p.Value)
			if err != nil {
				return nil, err
			}
			out = append(out, kb...)
			out = append(out, vb...)
		}
		return out, nil
	case syn.DConstr:
		fieldsBytes, err := cborEncodeArray(d.Fields)
		if err != nil {
			return nil, err
		}
		switch {
		case d.Tag <= 6:
			return append(cborHeader(6, 121+d.Tag), fieldsBytes...), nil
		case d.Tag <= 127:
			return append(cborHeader(6, 1280+(d.Tag-7)), fieldsBytes...), nil
		default:
			inner := cborHeader(4, 2)
			inner = append(inner, cborHeader(0, d.Tag)...)
			inner = append(inner, fieldsBytes...)
			return append(cborHeader(6, 102), inner...), nil
		}
	default:
		return nil, errEncodeCbor("unknown data kind")
	}
}

type cborHeaderInfo struct {
	major      byte
	arg        uint64
	indefinite bool
	pos        int
}

func decodeCborHeader(data []byte, pos int) (cborHeaderInfo, error) {
	if pos >= len(data) {
		return cborHeaderInfo{}, errDecodeCbor("unexpected end of buffer")
	}
	b := data[pos]
	major := b >> 5
	info := b & 0x1f
	pos++
	var arg uint64
	indefinite := false
	switch {
	case info < 24:
		arg = uint64(info)
	case info == 24:
		if pos+1 > len(data) {
			return cborHeaderInfo{}, errDecodeCbor("truncated argument")
		}
		arg = uint64(data[pos])
		pos++
	case info == 25:
		if pos+2 > len(data) {
			return cborHeaderInfo{}, errDecodeCbor("truncated argument")
		}
		arg = uint64(binary.BigEndian.Uint16(data[pos : pos+2]))
		pos += 2
	case info == 26:
		if pos+4 > len(data) {
			return cborHeaderInfo{}, errDecodeCbor("truncated argument")
		}
		arg = uint64(binary.BigEndian.Uint32(data[pos : pos+4]))
		pos += 4
	case info == 27:
		if pos+8 > len(data) {
			return cborHeaderInfo{}, errDecodeCbor("truncated argument")
		}
		arg = binary.BigEndian.Uint64(data[pos : pos+8])
		pos += 8
	case info == 31:
		indefinite = true
	default:
		return cborHeaderInfo{}, errDecodeCbor("reserved additional info value")
	}
	return cborHeaderInfo{major: major, arg: arg, indefinite: indefinite, pos: pos}, nil
}

func decodeCborByteString(data []byte, pos int) ([]byte, int, error) {
	h, err := decodeCborHeader(data, pos)
	if err != nil {
		return nil, 0, err
	}
	if h.major != 2 {
		return nil, 0, errDecodeCbor("expected byte string")
	}
	if !h.indefinite {
		end := h.pos + int(h.arg)
		if end > len(data) {
			return nil, 0, errDecodeCbor("truncated byte string")
		}
		out := make([]byte, h.arg)
		copy(out, data[h.pos:end])
		return out, end, nil
	}
	var out []byte
	pos = h.pos
	for pos < len(data) && data[pos] != 0xff {
		chunk, next, err := decodeCborByteString(data, pos)
		if err != nil {
			return nil, 0, err
		}
		out = append(out, chunk...)
		pos = next
	}
	if pos >= len(data) {
		return nil, 0, errDecodeCbor("unterminated indefinite byte string")
	}
	return out, pos + 1, nil
}

// decodeDataItem decodes one CBOR-encoded Data value starting at pos,
// returning the value and the position immediately after it.
func decodeDataItem(data []byte, pos int) (*syn.Data, int, error) {
	h, err := decodeCborHeader(data, pos)
	if err != nil {
		return nil, 0, err
	}
	switch h.major {
	case 0:
		return syn.NewDataInteger(new(big.Int).SetUint64(h.arg)), h.pos, nil
	case 1:
		n := new(big.Int).SetUint64(h.arg)
		n.Add(n, big.NewInt(1))
		n.Neg(n)
		return syn.NewDataInteger(n), h.pos, nil
	case 2:
		b, next, err := decodeCborByteString(data, pos)
		if err != nil {
			return nil, 0, err
		}
		return syn.NewDataByteString(b), next, nil
	case 4:
		items, next, err := decodeCborArray(data, pos)
		if err != nil {
			return nil, 0, err
		}
		return syn.NewDataList(items), next, nil
	case 5:
		var pairs []syn.DataPair
		cur := h.pos
		count := int(h.arg)
		readOne := !h.indefinite
		for {
			if readOne {
				if count == 0 {
					break
				}
				count--
			} else if cur < len(data) && data[cur] == 0xff {
				cur++
				break
			}
			key, next, err := decodeDataItem(data, cur)
			if err != nil {
				return nil, 0, err
			}
			val, next2, err := decodeDataItem(data, next)
			if err != nil {
				return nil, 0, err
			}
			pairs = append(pairs, syn.DataPair{Key: key, Value: val})
			cur = next2
		}
		return syn.NewDataMap(pairs), cur, nil
	case 6:
		switch {
		case h.arg >= 121 && h.arg <= 127:
			fields, next, err := decodeCborArray(data, h.pos)
			if err != nil {
				return nil, 0, err
			}
			return syn.NewDataConstr(h.arg-121, fields), next, nil
		case h.arg >= 1280 && h.arg <= 1400:
			fields, next, err := decodeCborArray(data, h.pos)
			if err != nil {
				return nil, 0, err
			}
			return syn.NewDataConstr((h.arg-1280)+7, fields), next, nil
		case h.arg == 102:
			innerH, err := decodeCborHeader(data, h.pos)
			if err != nil {
				return nil, 0, err
			}
			if innerH.major != 4 || innerH.arg != 2 {
				return nil, 0, errDecodeCbor("malformed tag-102 data wrapper")
			}
			tagItem, next, err := decodeDataItem(data, innerH.pos)
			if err != nil {
				return nil, 0, err
			}
			if tagItem.Kind != syn.DInteger {
				return nil, 0, errDecodeCbor("tag-102 constructor tag must be an integer")
			}
			fields, next2, err := decodeCborArray(data, next)
			if err != nil {
				return nil, 0, err
			}
			return syn.NewDataConstr(tagItem.Integer.Uint64(), fields), next2, nil
		case h.arg == 2:
			b, next, err := decodeCborByteString(data, h.pos)
			if err != nil {
				return nil, 0, err
			}
			return syn.NewDataInteger(new(big.Int).SetBytes(b)), next, nil
		case h.arg == 3:
			b, next, err := decodeCborByteString(data, h.pos)
			if err != nil {
				return nil, 0, err
			}
			n := new(big.Int).SetBytes(b)
			n.Add(n, big.NewInt(1))
			n.Neg(n)
			return syn.NewDataInteger(n), next, nil
		default:
			return nil, 0, errDecodeCbor("unsupported data tag")
		}
	default:
		return nil, 0, errDecodeCbor("unsupported data major type")
	}
}

func decodeCborArray(data []byte, pos int) ([]*syn.Data, int, error) {
	h, err := decodeCborHeader(data, pos)
	if err != nil {
		return nil, 0, err
	}
	if h.major != 4 {
		return nil, 0, errDecodeCbor("expected array")
	}
	var items []*syn.Data
	cur := h.pos
	if h.indefinite {
		for cur < len(data) && data[cur] != 0xff {
			item, next, err := decodeDataItem(data, cur)
			if err != nil {
				return nil, 0, err
			}
			items = append(items, item)
			cur = next
		}
		if cur >= len(data) {
			return nil, 0, errDecodeCbor("unterminated indefinite array")
		}
		return items, cur + 1, nil
	}
	for i := uint64(0); i < h.arg; i++ {
		item, next, err := decodeDataItem(data, cur)
		if err != nil {
			return nil, 0, err
		}
		items = append(items, item)
		cur = next
	}
	return items, cur, nil
}

// DecodeData deserializes the embedded-CBOR encoding of a Data value.
func DecodeData(b []byte) (*syn.Data, error) {
	d, pos, err := decodeDataItem(b, 0)
	if err != nil {
		return nil, err
	}
	if pos != len(b) {
		return nil, errDecodeCbor("trailing bytes after data item")
	}
	return d, nil
}
