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

// ZigZag maps a signed integer to its unsigned wire representation:
// non-negative n -> 2n, negative n -> -2n-1 (spec.md §4.3, §8 "ZigZag is
// involutive").
func ZigZag(n *big.Int) *big.Int {
	z := new(big.Int)
	if n.Sign() >= 0 {
		return z.Lsh(n, 1)
	}
	z.Lsh(n, 1)
	z.Neg(z)
	return z.Sub(z, big.NewInt(1))
}

// UnZigZag inverts ZigZag: (n >> 1) XOR -(n & 1). When the low bit is 1,
// XOR with all-ones is bitwise-not, i.e. -(shifted) - 1.
func UnZigZag(n *big.Int) *big.Int {
	bit := new(big.Int).And(n, big.NewInt(1))
	shifted := new(big.Int).Rsh(n, 1)
	if bit.Sign() == 0 {
		return shifted
	}
	return shifted.Neg(shifted).Sub(shifted, big.NewInt(1))
}
