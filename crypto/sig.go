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
	"crypto/ed25519"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/decred/dcrd/dcrec/secp256k1/v4/ecdsa"
	"github.com/decred/dcrd/dcrec/secp256k1/v4/schnorr"
)

// VerifyEd25519Signature verifies a raw Ed25519 signature over msg using a
// 32-byte public key (spec.md §5: verifyEd25519Signature returns false on
// any malformed input rather than erroring, matching the reference
// evaluator's non-throwing verify builtins).
func VerifyEd25519Signature(pubKey, msg, sig []byte) bool {
	if len(pubKey) != ed25519.PublicKeySize || len(sig) != ed25519.SignatureSize {
		return false
	}
	return ed25519.Verify(ed25519.PublicKey(pubKey), msg, sig)
}

// VerifyEcdsaSecp256k1Signature verifies a 64-byte compact (r||s) ECDSA
// signature over a 32-byte message digest, using a 33-byte compressed
// secp256k1 public key (the format Plutus's verifyEcdsaSecp256k1Signature
// builtin requires).
func VerifyEcdsaSecp256k1Signature(pubKey, msg, sig []byte) bool {
	if len(msg) != 32 || len(sig) != 64 {
		return false
	}
	pk, err := secp256k1.ParsePubKey(pubKey)
	if err != nil {
		return false
	}
	var r, s secp256k1.ModNScalar
	if r.SetByteSlice(sig[:32]) {
		return false // overflowed the group order
	}
	if s.SetByteSlice(sig[32:]) {
		return false
	}
	signature := ecdsa.NewSignature(&r, &s)
	return signature.Verify(msg, pk)
}

// VerifySchnorrSecp256k1Signature verifies a BIP340 Schnorr signature over
// an arbitrary-length message using a 32-byte x-only public key.
func VerifySchnorrSecp256k1Signature(pubKey, msg, sig []byte) bool {
	pk, err := schnorr.ParsePubKey(pubKey)
	if err != nil {
		return false
	}
	signature, err := schnorr.ParseSignature(sig)
	if err != nil {
		return false
	}
	return signature.Verify(msg, pk)
}
