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
	"math/big"
	"testing"

	"github.com/uplc-go/uplc/binder"
	"github.com/uplc-go/uplc/syn"
)

func TestZigZagInvolution(t *testing.T) {
	cases := []int64{0, 1, -1, 2, -2, 1000, -1000, 1 << 40, -(1 << 40)}
	for _, c := range cases {
		n := big.NewInt(c)
		z := ZigZag(n)
		if z.Sign() < 0 {
			t.Fatalf("ZigZag(%d) produced a negative wire value %s", c, z)
		}
		back := UnZigZag(z)
		if back.Cmp(n) != 0 {
			t.Fatalf("UnZigZag(ZigZag(%d)) = %s, want %d", c, back, c)
		}
	}
}

func TestBitsRoundTrip(t *testing.T) {
	e := NewEncoder()
	e.Bits(3, 0x5)
	e.Bits(1, 0x1)
	e.Bits(7, 0x3f)
	e.Filler()

	d := NewDecoder(e.Buffer)
	b, err := d.Bits(3)
	if err != nil || b != 0x5 {
		t.Fatalf("first field: got %d, %v", b, err)
	}
	b, err = d.Bits(1)
	if err != nil || b != 0x1 {
		t.Fatalf("second field: got %d, %v", b, err)
	}
	b, err = d.Bits(7)
	if err != nil || b != 0x3f {
		t.Fatalf("third field: got %d, %v", b, err)
	}
	if err := d.Filler(); err != nil {
		t.Fatalf("filler: %v", err)
	}
}

func TestWordRoundTrip(t *testing.T) {
	for _, v := range []uint64{0, 1, 127, 128, 300, 1 << 20, 1 << 40} {
		e := NewEncoder()
		e.Word(v)
		d := NewDecoder(e.Buffer)
		got, err := d.Word()
		if err != nil {
			t.Fatalf("Word(%d): %v", v, err)
		}
		if got != v {
			t.Fatalf("Word(%d) round-tripped as %d", v, got)
		}
	}
}

func TestUTF8RoundTrip(t *testing.T) {
	e := NewEncoder()
	if err := e.UTF8("hello, uplc"); err != nil {
		t.Fatalf("encode: %v", err)
	}
	d := NewDecoder(e.Buffer)
	got, err := d.UTF8()
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got != "hello, uplc" {
		t.Fatalf("got %q, want %q", got, "hello, uplc")
	}
}

func TestBytesRoundTripAcrossChunkBoundary(t *testing.T) {
	// byteArray chunks in groups of up to 255 bytes; exercise a payload
	// that crosses one chunk boundary.
	payload := make([]byte, 300)
	for i := range payload {
		payload[i] = byte(i)
	}
	e := NewEncoder()
	if err := e.Bytes(payload); err != nil {
		t.Fatalf("encode: %v", err)
	}
	d := NewDecoder(e.Buffer)
	got, err := d.Bytes()
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(got) != len(payload) {
		t.Fatalf("got %d bytes, want %d", len(got), len(payload))
	}
	for i := range payload {
		if got[i] != payload[i] {
			t.Fatalf("byte %d: got %d, want %d", i, got[i], payload[i])
		}
	}
}

func deBruijnWrap(b binder.Binder) binder.DeBruijn { return b.(binder.DeBruijn) }

func TestProgramRoundTripWithConstrCase(t *testing.T) {
	fields := []*syn.Term[binder.DeBruijn]{
		syn.ConstantTerm[binder.DeBruijn](syn.NewIntegerI64(10)),
		syn.ConstantTerm[binder.DeBruijn](syn.NewIntegerI64(20)),
	}
	constr := syn.Constr[binder.DeBruijn](0, fields)
	branch := syn.Lambda[binder.DeBruijn](binder.DeBruijn(0),
		syn.Lambda[binder.DeBruijn](binder.DeBruijn(0), syn.Var[binder.DeBruijn](binder.DeBruijn(1))))
	term := syn.Case[binder.DeBruijn](constr, []*syn.Term[binder.DeBruijn]{branch})
	program := syn.NewProgram(syn.PlutusV2, term)

	data, err := EncodeProgram[binder.DeBruijn](program)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	decoded, err := DecodeProgram[binder.DeBruijn](data, binder.DeBruijnKind, deBruijnWrap)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !decoded.Version.Equal(program.Version) {
		t.Fatalf("version mismatch: got %s, want %s", decoded.Version, program.Version)
	}
	if decoded.Term.Kind != syn.TermCase {
		t.Fatalf("expected a decoded Case term, got kind %v", decoded.Term.Kind)
	}
	if decoded.Term.CaseScrutinee.Kind != syn.TermConstr {
		t.Fatalf("expected the scrutinee to decode back to a Constr term")
	}
	if len(decoded.Term.CaseScrutinee.ConstrFields) != 2 {
		t.Fatalf("expected 2 decoded Constr fields, got %d", len(decoded.Term.CaseScrutinee.ConstrFields))
	}
}
