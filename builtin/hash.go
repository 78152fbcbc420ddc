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
	"github.com/uplc-go/uplc/crypto"
	"github.com/uplc-go/uplc/syn"
	"github.com/uplc-go/uplc/value"
)

func hashBuiltin(costs CostModel, fun syn.DefaultFunction, spend func(costmodel.ExBudget) error, args []*value.Value) (*value.Value, error) {
	msg, err := unwrapByteString(args[0])
	if err != nil {
		return nil, err
	}
	if err := spend(costOf(costs, fun, costmodel.ByteStringExMem(msg))); err != nil {
		return nil, err
	}
	var digest []byte
	switch fun {
	case syn.Sha2_256:
		digest = crypto.Sha2_256(msg)
	case syn.Sha3_256:
		digest = crypto.Sha3_256(msg)
	case syn.Blake2b_256:
		digest = crypto.Blake2b256(msg)
	case syn.Blake2b_224:
		digest = crypto.Blake2b224(msg)
	case syn.Keccak_256:
		digest = crypto.Keccak256(msg)
	}
	return value.NewCon(syn.NewByteString(digest)), nil
}

func verifySignature(costs CostModel, fun syn.DefaultFunction, spend func(costmodel.ExBudget) error, args []*value.Value) (*value.Value, error) {
	pubKey, err := unwrapByteString(args[0])
	if err != nil {
		return nil, err
	}
	msg, err := unwrapByteString(args[1])
	if err != nil {
		return nil, err
	}
	sig, err := unwrapByteString(args[2])
	if err != nil {
		return nil, err
	}
	if err := spend(costOf(costs, fun, costmodel.ByteStringExMem(pubKey), costmodel.ByteStringExMem(msg), costmodel.ByteStringExMem(sig))); err != nil {
		return nil, err
	}
	var ok bool
	switch fun {
	case syn.VerifyEd25519Signature:
		ok = crypto.VerifyEd25519Signature(pubKey, msg, sig)
	case syn.VerifyEcdsaSecp256k1Signature:
		ok = crypto.VerifyEcdsaSecp256k1Signature(pubKey, msg, sig)
	case syn.VerifySchnorrSecp256k1Signature:
		ok = crypto.VerifySchnorrSecp256k1Signature(pubKey, msg, sig)
	}
	return value.NewCon(syn.NewBool(ok)), nil
}
