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

// Package binder implements component C: polymorphism over the variable
// representation carried by a Term. Three representations are supported,
// matching the reference evaluator: plain de Bruijn indices (what the CEK
// machine actually runs on), named de Bruijn (index plus a display name,
// produced by a textual parser), and bare textual Name (pre-resolution).
//
// Writer and Reader are kept free of any dependency on package flat so
// that flat can depend on binder without a cycle; *flat.Encoder and
// *flat.Decoder satisfy these interfaces structurally.
package binder

// Writer is the subset of flat.Encoder a Binder needs to serialize itself.
type Writer interface {
	Bits(numBits int, b uint8)
	Word(v uint64)
	UTF8(s string) error
}

// Reader is the subset of flat.Decoder a Binder needs to deserialize.
type Reader interface {
	Bits(numBits int) (uint8, error)
	Word() (uint64, error)
	UTF8() (string, error)
}

// Binder is implemented by every concrete variable representation.
type Binder interface {
	// Index returns the de Bruijn index used for environment lookup.
	Index() uint64
	EncodeVar(w Writer) error
	EncodeParameter(w Writer) error
}

// Kind decodes a concrete Binder representation. There is exactly one Kind
// value per representation (DeBruijnKind, NamedDeBruijnKind, NameKind);
// the flat decoder is parameterized by a Kind the way the reference
// decoder is parameterized by the Binder::var_decode/parameter_decode
// associated functions.
type Kind interface {
	DecodeVar(r Reader) (Binder, error)
	DecodeParameter(r Reader) (Binder, error)
}

// DeBruijn is a plain de Bruijn index: the only representation the CEK
// machine needs to run a program (component C, §4.4).
type DeBruijn uint64

func (d DeBruijn) Index() uint64 { return uint64(d) }

func (d DeBruijn) EncodeVar(w Writer) error {
	w.Word(uint64(d))
	return nil
}

func (d DeBruijn) EncodeParameter(w Writer) error { return nil }

type deBruijnKind struct{}

// DeBruijnKind is the Kind for plain de Bruijn binders.
var DeBruijnKind Kind = deBruijnKind{}

func (deBruijnKind) DecodeVar(r Reader) (Binder, error) {
	i, err := r.Word()
	if err != nil {
		return nil, err
	}
	return DeBruijn(i), nil
}

// parameter_decode for plain de Bruijn consumes no bits and yields index 0;
// the binding position itself carries no information at encode time.
func (deBruijnKind) DecodeParameter(r Reader) (Binder, error) {
	return DeBruijn(0), nil
}

// NamedDeBruijn carries a display name alongside the de Bruijn index used
// for evaluation. Both var and parameter positions encode text + index,
// matching the reference encoder exactly (see SPEC_FULL.md component C).
type NamedDeBruijn struct {
	Text  string
	Index_ uint64
}

func (n NamedDeBruijn) Index() uint64 { return n.Index_ }

func (n NamedDeBruijn) EncodeVar(w Writer) error {
	if err := w.UTF8(n.Text); err != nil {
		return err
	}
	w.Word(n.Index_)
	return nil
}

func (n NamedDeBruijn) EncodeParameter(w Writer) error {
	return n.EncodeVar(w)
}

type namedDeBruijnKind struct{}

var NamedDeBruijnKind Kind = namedDeBruijnKind{}

func (namedDeBruijnKind) DecodeVar(r Reader) (Binder, error) {
	text, err := r.UTF8()
	if err != nil {
		return nil, err
	}
	idx, err := r.Word()
	if err != nil {
		return nil, err
	}
	return NamedDeBruijn{Text: text, Index_: idx}, nil
}

func (k namedDeBruijnKind) DecodeParameter(r Reader) (Binder, error) {
	return k.DecodeVar(r)
}

// Name is the bare textual representation produced directly by a textual
// parser, before de Bruijn resolution (unique carries whatever disambiguator
// the parser assigned; it plays no role in evaluation).
type Name struct {
	Text   string
	Unique uint64
}

// Index is not meaningful before de Bruijn resolution; Name is never used
// to drive the CEK machine directly (see SPEC_FULL.md §3, "Binder
// abstraction"), so this simply surfaces the unique counter.
func (n Name) Index() uint64 { return n.Unique }

func (n Name) EncodeVar(w Writer) error {
	if err := w.UTF8(n.Text); err != nil {
		return err
	}
	w.Word(n.Unique)
	return nil
}

func (n Name) EncodeParameter(w Writer) error {
	return n.EncodeVar(w)
}

type nameKind struct{}

var NameKind Kind = nameKind{}

func (nameKind) DecodeVar(r Reader) (Binder, error) {
	text, err := r.UTF8()
	if err != nil {
		return nil, err
	}
	u, err := r.Word()
	if err != nil {
		return nil, err
	}
	return Name{Text: text, Unique: u}, nil
}

func (k nameKind) DecodeParameter(r Reader) (Binder, error) {
	return k.DecodeVar(r)
}
