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

package costmodel

import (
	"math/big"

	"github.com/uplc-go/uplc/syn"
)

// wordSize is the machine word the reference cost model measures Integer
// and ByteString memory usage in units of (spec.md §4.2, "ex-mem").
const wordSize = 8

// IntegerExMem returns 1 for zero, otherwise floor(bitlen/64)+1 64-bit
// words — the reference evaluator's Integer memory usage measure.
func IntegerExMem(n *big.Int) int64 {
	if n.Sign() == 0 {
		return 1
	}
	return int64(n.BitLen()/64) + 1
}

// ByteStringExMem returns ceil(len/8) 64-bit words, minimum 1.
func ByteStringExMem(b []byte) int64 {
	if len(b) == 0 {
		return 1
	}
	return int64((len(b)-1)/wordSize) + 1
}

// StringExMem measures a decoded UTF-8 string by its rune count, matching
// the reference cost model's String memory usage measure.
func StringExMem(s string) int64 {
	return int64(len([]rune(s)))
}

// ExMem is the recursive memory-size measure over the whole Constant
// universe (spec.md §4.2/§3).
func ExMem(c *syn.Constant) int64 {
	switch c.Kind {
	case syn.CInteger:
		return IntegerExMem(c.Integer)
	case syn.CByteString:
		return ByteStringExMem(c.ByteString)
	case syn.CString:
		return StringExMem(c.String)
	case syn.CUnit:
		return 1
	case syn.CBool:
		return 1
	case syn.CData:
		return c.Data.ExMem()
	case syn.CProtoList:
		var sum int64
		for _, it := range c.List {
			sum += ExMem(it)
		}
		return sum
	case syn.CProtoPair:
		return ExMem(c.PairFirst) + ExMem(c.PairSecond)
	case syn.CG1:
		return 18 // 18 64-bit words (144 bytes), per the reference BLS cost model
	case syn.CG2:
		return 36 // 36 64-bit words (288 bytes)
	case syn.CMlResult:
		return 144 // Fq12 pairing result
	default:
		return 0
	}
}
