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

import "math/big"

// Encoder is a MSB-first bit-packed byte buffer builder, mirroring the
// reference Decoder byte-for-byte (buffer grows by one byte every time
// UsedBits wraps past 8).
type Encoder struct {
	Buffer   []byte
	usedBits int
}

func NewEncoder() *Encoder {
	return &Encoder{Buffer: make([]byte, 0, 64)}
}

// Bits writes the low numBits bits of b, most-significant bit first.
func (e *Encoder) Bits(numBits int, b uint8) {
	if len(e.Buffer) == 0 || e.usedBits == 0 {
		e.Buffer = append(e.Buffer, 0)
	}
	for numBits > 0 {
		last := len(e.Buffer) - 1
		free := 8 - e.usedBits
		take := numBits
		if take > free {
			take = free
		}
		shift := numBits - take
		chunk := (b >> uint(shift)) & ((1 << uint(take)) - 1)
		e.Buffer[last] |= chunk << uint(free-take)
		e.usedBits += take
		numBits -= take
		if e.usedBits == 8 {
			e.usedBits = 0
			if numBits > 0 {
				e.Buffer = append(e.Buffer, 0)
			}
		}
	}
}

// Bit writes a single bit.
func (e *Encoder) Bit(v bool) {
	if v {
		e.Bits(1, 1)
	} else {
		e.Bits(1, 0)
	}
}

// Bool is an alias for Bit matching the reference naming (spec.md §4.3).
func (e *Encoder) Bool(v bool) { e.Bit(v) }

// Word encodes an unsigned value as 7-bit little-endian groups with a
// continuation bit, the inverse of Decoder.Word.
func (e *Encoder) Word(v uint64) {
	for {
		chunk := uint8(v & 0x7f)
		v >>= 7
		if v != 0 {
			e.Bits(8, chunk|0x80)
		} else {
			e.Bits(8, chunk)
			return
		}
	}
}

// BigWord encodes an arbitrary-precision non-negative integer the same way
// as Word but without a 64-bit ceiling, used for zigzagged Integer constants.
func (e *Encoder) BigWord(v *big.Int) {
	n := new(big.Int).Set(v)
	mask := big.NewInt(0x7f)
	zero := big.NewInt(0)
	for {
		chunk := new(big.Int).And(n, mask)
		n.Rsh(n, 7)
		if n.Cmp(zero) != 0 {
			e.Bits(8, uint8(chunk.Uint64())|0x80)
		} else {
			e.Bits(8, uint8(chunk.Uint64()))
			return
		}
	}
}

// Integer zigzags a signed integer and encodes it as a BigWord (spec.md
// §8, "ZigZag is involutive").
func (e *Encoder) Integer(n *big.Int) {
	e.BigWord(ZigZag(n))
}

// Filler byte-aligns the buffer by writing 0 bits up to the last bit of
// the current byte, then a terminal 1 bit — the mirror image of Decoder's
// "read zero bits until a 1" terminator (spec.md §4.3).
func (e *Encoder) Filler() {
	for e.usedBits != 7 {
		e.Bits(1, 0)
	}
	e.Bits(1, 1)
}

// byteAlign is the filler written immediately before a byte-array block
// (spec.md §4.3: "bytes" is always preceded by a filler).
func (e *Encoder) byteAlign() {
	e.Filler()
}

// Bytes writes a filler then the chunked byte-array encoding: one length
// byte (0-255) followed by that many bytes, repeated, terminated by a
// zero-length chunk.
func (e *Encoder) Bytes(b []byte) error {
	e.byteAlign()
	for len(b) > 0 {
		n := len(b)
		if n > 255 {
			n = 255
		}
		e.Buffer = append(e.Buffer, uint8(n))
		e.Buffer = append(e.Buffer, b[:n]...)
		b = b[n:]
	}
	e.Buffer = append(e.Buffer, 0)
	return nil
}

// UTF8 encodes a string as its raw utf8 bytes via Bytes.
func (e *Encoder) UTF8(s string) error {
	return e.Bytes([]byte(s))
}

// EncodeList encodes n items with a continuation bit before each,
// mirroring DecodeList (spec.md §4.3, "list(x)").
func EncodeList[T any](e *Encoder, items []T, f func(*Encoder, T) error) error {
	for _, it := range items {
		e.Bits(1, 1)
		if err := f(e, it); err != nil {
			return err
		}
	}
	e.Bits(1, 0)
	return nil
}

// SafeBits writes numBits bits of b after checking b fits, matching the
// reference encoder's overflow guard on tag values.
func (e *Encoder) SafeBits(numBits int, b uint8) error {
	if numBits < 8 && b >= (1<<uint(numBits)) {
		return errOverflow(b, numBits)
	}
	e.Bits(numBits, b)
	return nil
}
