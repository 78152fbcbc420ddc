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

package crypto

import (
	"fmt"
	"math/big"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
)

// G1Add, G1Neg and G1ScalarMul wrap the curve's affine group law; every
// BLS builtin that is not a hash-to-curve or (un)compress operation is a
// thin pass-through to gnark-crypto (spec.md §5, "BLS12-381 primitives").
func G1Add(a, b *bls12381.G1Affine) *bls12381.G1Affine {
	var r bls12381.G1Affine
	r.Add(a, b)
	return &r
}

func G1Neg(a *bls12381.G1Affine) *bls12381.G1Affine {
	var r bls12381.G1Affine
	r.Neg(a)
	return &r
}

func G1ScalarMul(scalar *big.Int, a *bls12381.G1Affine) *bls12381.G1Affine {
	var r bls12381.G1Affine
	r.ScalarMultiplication(a, scalar)
	return &r
}

func G1Equal(a, b *bls12381.G1Affine) bool { return a.Equal(b) }

// G1Compress returns the 48-byte compressed serialization.
func G1Compress(a *bls12381.G1Affine) []byte {
	b := a.Bytes()
	return b[:]
}

// G1Uncompress parses a 48-byte compressed point, rejecting anything not
// on the curve or not in the correct subgroup.
func G1Uncompress(b []byte) (*bls12381.G1Affine, error) {
	if len(b) != 48 {
		return nil, fmt.Errorf("crypto: bls12_381 G1 compressed point must be 48 bytes, got %d", len(b))
	}
	var p bls12381.G1Affine
	if _, err := p.SetBytes(b); err != nil {
		return nil, fmt.Errorf("crypto: bls12_381 G1 decompress: %w", err)
	}
	return &p, nil
}

// G1HashToGroup hashes msg to a G1 point under the given domain separation
// tag, per the IETF hash-to-curve draft gnark-crypto implements.
func G1HashToGroup(msg, dst []byte) (*bls12381.G1Affine, error) {
	p, err := bls12381.HashToG1(msg, dst)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func G2Add(a, b *bls12381.G2Affine) *bls12381.G2Affine {
	var r bls12381.G2Affine
	r.Add(a, b)
	return &r
}

func G2Neg(a *bls12381.G2Affine) *bls12381.G2Affine {
	var r bls12381.G2Affine
	r.Neg(a)
	return &r
}

func G2ScalarMul(scalar *big.Int, a *bls12381.G2Affine) *bls12381.G2Affine {
	var r bls12381.G2Affine
	r.ScalarMultiplication(a, scalar)
	return &r
}

func G2Equal(a, b *bls12381.G2Affine) bool { return a.Equal(b) }

// G2Compress returns the 96-byte compressed serialization.
func G2Compress(a *bls12381.G2Affine) []byte {
	b := a.Bytes()
	return b[:]
}

func G2Uncompress(b []byte) (*bls12381.G2Affine, error) {
	if len(b) != 96 {
		return nil, fmt.Errorf("crypto: bls12_381 G2 compressed point must be 96 bytes, got %d", len(b))
	}
	var p bls12381.G2Affine
	if _, err := p.SetBytes(b); err != nil {
		return nil, fmt.Errorf("crypto: bls12_381 G2 decompress: %w", err)
	}
	return &p, nil
}

func G2HashToGroup(msg, dst []byte) (*bls12381.G2Affine, error) {
	p, err := bls12381.HashToG2(msg, dst)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// MillerLoop pairs a single (G1, G2) point pair, leaving the final
// exponentiation for MulMlResult/FinalVerify to fold together, matching
// the reference evaluator's un-exponentiated intermediate MlResult.
func MillerLoop(p *bls12381.G1Affine, q *bls12381.G2Affine) (*bls12381.GT, error) {
	r, err := bls12381.MillerLoop([]bls12381.G1Affine{*p}, []bls12381.G2Affine{*q})
	if err != nil {
		return nil, err
	}
	return &r, nil
}

func MulMlResult(a, b *bls12381.GT) *bls12381.GT {
	var r bls12381.GT
	r.Mul(a, b)
	return &r
}

// FinalVerify applies the final exponentiation to both sides and compares
// them, the pairing-equality check finalVerify exposes to scripts.
func FinalVerify(a, b *bls12381.GT) bool {
	ea := bls12381.FinalExponentiation(a)
	eb := bls12381.FinalExponentiation(b)
	return ea.Equal(&eb)
}
