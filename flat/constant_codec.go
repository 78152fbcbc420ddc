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

import "github.com/uplc-go/uplc/syn"

// encodeType appends the constant-type tag sequence for t to tags, the
// same scheme used both standalone and recursively inside ProtoList /
// ProtoPair type headers (spec.md §4.3).
func encodeType(t *syn.Type, tags []uint8) ([]uint8, error) {
	switch t.Kind {
	case syn.TInteger:
		return append(tags, TagInteger), nil
	case syn.TByteString:
		return append(tags, TagByteString), nil
	case syn.TString:
		return append(tags, TagString), nil
	case syn.TUnit:
		return append(tags, TagUnit), nil
	case syn.TBool:
		return append(tags, TagBool), nil
	case syn.TData:
		return append(tags, TagData), nil
	case syn.TList:
		tags = append(tags, TagProtoListA, TagProtoListB)
		return encodeType(t.Elem, tags)
	case syn.TPair:
		tags = append(tags, TagProtoPairA, TagProtoPairB, TagProtoPairC)
		tags, err := encodeType(t.Fst, tags)
		if err != nil {
			return nil, err
		}
		return encodeType(t.Snd, tags)
	case syn.TG1, syn.TG2, syn.TMlResult:
		return nil, errBlsNotSupported()
	default:
		return nil, errBlsNotSupported()
	}
}

// decodeTypeTags parses a flat tag sequence back into a syn.Type, reading
// from the front of tags and returning what's left (mirrors decode_term's
// slice-pattern matching in the reference decoder).
func decodeTypeTags(tags []uint8) (*syn.Type, []uint8, error) {
	if len(tags) == 0 {
		return nil, nil, errUnknownConstantTag("empty type tag sequence")
	}
	switch tags[0] {
	case TagInteger:
		return syn.Integer(), tags[1:], nil
	case TagByteString:
		return syn.ByteString(), tags[1:], nil
	case TagString:
		return syn.StringT(), tags[1:], nil
	case TagUnit:
		return syn.Unit(), tags[1:], nil
	case TagBool:
		return syn.Bool(), tags[1:], nil
	case TagData:
		return syn.DataT(), tags[1:], nil
	case TagProtoListA:
		if len(tags) < 2 || tags[1] != TagProtoListB {
			return nil, nil, errUnknownConstantTag("malformed list type tag")
		}
		elem, rest, err := decodeTypeTags(tags[2:])
		if err != nil {
			return nil, nil, err
		}
		return syn.List(elem), rest, nil
	case TagProtoPairA:
		if len(tags) < 3 || tags[1] != TagProtoPairB || tags[2] != TagProtoPairC {
			return nil, nil, errUnknownConstantTag("malformed pair type tag")
		}
		fst, rest, err := decodeTypeTags(tags[3:])
		if err != nil {
			return nil, nil, err
		}
		snd, rest2, err := decodeTypeTags(rest)
		if err != nil {
			return nil, nil, err
		}
		return syn.Pair(fst, snd), rest2, nil
	default:
		return nil, nil, errUnknownConstantTag("unrecognized type tag")
	}
}

func encodeConstantTagList(e *Encoder, tags []uint8) error {
	return EncodeList(e, tags, func(e *Encoder, b uint8) error {
		return e.SafeBits(ConstTagWidth, b)
	})
}

func decodeConstantTagList(d *Decoder) ([]uint8, error) {
	return DecodeList(d, func(d *Decoder) (uint8, error) { return d.Bits(ConstTagWidth) })
}

func encodeConstant(e *Encoder, c *syn.Constant) error {
	switch c.Kind {
	case syn.CInteger:
		if err := encodeConstantTagList(e, []uint8{TagInteger}); err != nil {
			return err
		}
		e.Integer(c.Integer)
		return nil
	case syn.CByteString:
		if err := encodeConstantTagList(e, []uint8{TagByteString}); err != nil {
			return err
		}
		return e.Bytes(c.ByteString)
	case syn.CString:
		if err := encodeConstantTagList(e, []uint8{TagString}); err != nil {
			return err
		}
		return e.UTF8(c.String)
	case syn.CUnit:
		return encodeConstantTagList(e, []uint8{TagUnit})
	case syn.CBool:
		if err := encodeConstantTagList(e, []uint8{TagBool}); err != nil {
			return err
		}
		e.Bool(c.Bool)
		return nil
	case syn.CData:
		if err := encodeConstantTagList(e, []uint8{TagData}); err != nil {
			return err
		}
		cbor, err := EncodeData(c.Data)
		if err != nil {
			return err
		}
		return e.Bytes(cbor)
	case syn.CProtoList:
		tags, err := encodeType(syn.List(c.ListType), nil)
		if err != nil {
			return err
		}
		if err := encodeConstantTagList(e, tags); err != nil {
			return err
		}
		return EncodeList(e, c.List, encodeConstantValue)
	case syn.CProtoPair:
		tags, err := encodeType(syn.Pair(c.PairFst, c.PairSnd), nil)
		if err != nil {
			return err
		}
		if err := encodeConstantTagList(e, tags); err != nil {
			return err
		}
		if err := encodeConstantValue(e, c.PairFirst); err != nil {
			return err
		}
		return encodeConstantValue(e, c.PairSecond)
	case syn.CG1, syn.CG2, syn.CMlResult:
		return errBlsNotSupported()
	default:
		return errBlsNotSupported()
	}
}

// encodeConstantValue encodes just the value payload, used for ProtoList
// elements and ProtoPair components once the type header is written.
func encodeConstantValue(e *Encoder, c *syn.Constant) error {
	switch c.Kind {
	case syn.CInteger:
		e.Integer(c.Integer)
		return nil
	case syn.CByteString:
		return e.Bytes(c.ByteString)
	case syn.CString:
		return e.UTF8(c.String)
	case syn.CUnit:
		return nil
	case syn.CBool:
		e.Bool(c.Bool)
		return nil
	case syn.CData:
		cbor, err := EncodeData(c.Data)
		if err != nil {
			return err
		}
		return e.Bytes(cbor)
	case syn.CProtoList:
		return EncodeList(e, c.List, encodeConstantValue)
	case syn.CProtoPair:
		if err := encodeConstantValue(e, c.PairFirst); err != nil {
			return err
		}
		return encodeConstantValue(e, c.PairSecond)
	default:
		return errBlsNotSupported()
	}
}

func decodeConstant(d *Decoder) (*syn.Constant, error) {
	tags, err := decodeConstantTagList(d)
	if err != nil {
		return nil, err
	}
	if len(tags) == 1 {
		switch tags[0] {
		case TagInteger:
			v, err := d.Integer()
			if err != nil {
				return nil, err
			}
			return syn.NewInteger(v), nil
		case TagByteString:
			b, err := d.Bytes()
			if err != nil {
				return nil, err
			}
			return syn.NewByteString(b), nil
		case TagString:
			s, err := d.UTF8()
			if err != nil {
				return nil, err
			}
			return syn.NewString(s), nil
		case TagUnit:
			return syn.NewUnit(), nil
		case TagBool:
			b, err := d.Bit()
			if err != nil {
				return nil, err
			}
			return syn.NewBool(b), nil
		case TagData:
			cbor, err := d.Bytes()
			if err != nil {
				return nil, err
			}
			data, err := DecodeData(cbor)
			if err != nil {
				return nil, err
			}
			return syn.NewData(data), nil
		}
	}
	typ, rest, err := decodeTypeTags(tags)
	if err != nil {
		return nil, err
	}
	if len(rest) != 0 {
		return nil, errUnknownConstantTag("trailing type tags")
	}
	switch typ.Kind {
	case syn.TList:
		items, err := DecodeList(d, func(d *Decoder) (*syn.Constant, error) { return decodeConstantValue(d, typ.Elem) })
		if err != nil {
			return nil, err
		}
		return syn.NewProtoList(typ.Elem, items), nil
	case syn.TPair:
		first, err := decodeConstantValue(d, typ.Fst)
		if err != nil {
			return nil, err
		}
		second, err := decodeConstantValue(d, typ.Snd)
		if err != nil {
			return nil, err
		}
		return syn.NewProtoPair(typ.Fst, typ.Snd, first, second), nil
	default:
		return nil, errUnknownConstantTag("unsupported nested constant type")
	}
}

func decodeConstantValue(d *Decoder, typ *syn.Type) (*syn.Constant, error) {
	switch typ.Kind {
	case syn.TInteger:
		v, err := d.Integer()
		if err != nil {
			return nil, err
		}
		return syn.NewInteger(v), nil
	case syn.TByteString:
		b, err := d.Bytes()
		if err != nil {
			return nil, err
		}
		return syn.NewByteString(b), nil
	case syn.TString:
		s, err := d.UTF8()
		if err != nil {
			return nil, err
		}
		return syn.NewString(s), nil
	case syn.TUnit:
		return syn.NewUnit(), nil
	case syn.TBool:
		b, err := d.Bit()
		if err != nil {
			return nil, err
		}
		return syn.NewBool(b), nil
	case syn.TData:
		cbor, err := d.Bytes()
		if err != nil {
			return nil, err
		}
		data, err := DecodeData(cbor)
		if err != nil {
			return nil, err
		}
		return syn.NewData(data), nil
	case syn.TList:
		items, err := DecodeList(d, func(d *Decoder) (*syn.Constant, error) { return decodeConstantValue(d, typ.Elem) })
		if err != nil {
			return nil, err
		}
		return syn.NewProtoList(typ.Elem, items), nil
	case syn.TPair:
		first, err := decodeConstantValue(d, typ.Fst)
		if err != nil {
			return nil, err
		}
		second, err := decodeConstantValue(d, typ.Snd)
		if err != nil {
			return nil, err
		}
		return syn.NewProtoPair(typ.Fst, typ.Snd, first, second), nil
	default:
		return nil, errUnknownConstantTag("unsupported nested constant type")
	}
}
