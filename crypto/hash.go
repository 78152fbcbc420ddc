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

// Package crypto wraps the hash functions, signature schemes and BLS12-381
// operations the builtin layer needs (spec.md §5, "Cryptographic
// primitives"), in the same thin-wrapper style the teacher's crypto
// package uses around golang.org/x/crypto.
package crypto

import (
	"crypto/sha256"

	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/sha3"
)

// Sha2_256 returns the SHA-256 digest of data. Left on the standard
// library: no third-party SHA-256 implementation in the pack offers
// anything crypto/sha256 doesn't (see DESIGN.md).
func Sha2_256(data []byte) []byte {
	sum := sha256.Sum256(data)
	return sum[:]
}

// Sha3_256 returns the (non-legacy, NIST) SHA3-256 digest of data.
func Sha3_256(data []byte) []byte {
	sum := sha3.Sum256(data)
	return sum[:]
}

// Keccak256 returns the pre-NIST Keccak-256 digest, the hash Ethereum and
// the teacher's own crypto.Keccak256 use under the sha3 legacy constructor.
func Keccak256(data []byte) []byte {
	d := sha3.NewLegacyKeccak256()
	d.Write(data)
	return d.Sum(nil)
}

// Blake2b256 returns the 32-byte BLAKE2b digest.
func Blake2b256(data []byte) []byte {
	sum := blake2b.Sum256(data)
	return sum[:]
}

// Blake2b224 returns the 28-byte (224-bit) BLAKE2b digest, used by
// blake2b_224 for script-hash-sized output.
func Blake2b224(data []byte) []byte {
	h, err := blake2b.New(28, nil)
	if err != nil {
		// 28 is always a valid blake2b output size (1..64); this path
		// cannot be reached.
		panic(err)
	}
	h.Write(data)
	return h.Sum(nil)
}
